package content

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wildgrove/encounter-api/internal/entities/game"
	"github.com/wildgrove/encounter-api/internal/errors"
)

// Raw YAML schema. Mirrors the content files; normalized into the game
// entities at load time.

type rawWeighted struct {
	Ref    string `yaml:"ref"`
	Weight int64  `yaml:"weight"`
}

type rawMap struct {
	ID               string        `yaml:"id"`
	Slug             string        `yaml:"slug"`
	Name             string        `yaml:"name"`
	LevelMin         int32         `yaml:"level_min"`
	LevelMax         int32         `yaml:"level_max"`
	EncounterRate    float64       `yaml:"encounter_rate"`
	ItemDropRate     float64       `yaml:"item_drop_rate"`
	RequiredSearches int64         `yaml:"required_searches"`
	UnlockSourceMap  string        `yaml:"unlock_source_map"`
	Species          []rawWeighted `yaml:"species"`
	Items            []rawWeighted `yaml:"items"`
}

type rawSpecies struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	CaptureRate int32  `yaml:"capture_rate"`
	BaseHP      int32  `yaml:"base_hp"`
	BaseAttack  int32  `yaml:"base_attack"`
	BaseDefense int32  `yaml:"base_defense"`
	BaseSpeed   int32  `yaml:"base_speed"`
}

type rawItem struct {
	ID                string  `yaml:"id"`
	Name              string  `yaml:"name"`
	Kind              string  `yaml:"kind"`
	CaptureMultiplier float64 `yaml:"capture_multiplier"`
}

type rawMove struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Power int32  `yaml:"power"`
	Cost  int32  `yaml:"cost"`
}

type rawTrainerCreature struct {
	Species string `yaml:"species"`
	Level   int32  `yaml:"level"`
}

type rawTrainer struct {
	ID           string               `yaml:"id"`
	Name         string               `yaml:"name"`
	Team         []rawTrainerCreature `yaml:"team"`
	RewardCoins  int64                `yaml:"reward_coins"`
	RewardExp    int64                `yaml:"reward_exp"`
	PrizeSpecies string               `yaml:"prize_species"`
	PrizeLevel   int32                `yaml:"prize_level"`
}

type mapsFile struct {
	Maps []rawMap `yaml:"maps"`
}

type speciesFile struct {
	Species []rawSpecies `yaml:"species"`
}

type itemsFile struct {
	Items []rawItem `yaml:"items"`
}

type movesFile struct {
	Moves []rawMove `yaml:"moves"`
}

type trainersFile struct {
	Trainers     []rawTrainer `yaml:"trainers"`
	TrainerOrder []string     `yaml:"trainer_order"`
}

// FileStore serves content from YAML files loaded once at startup
type FileStore struct {
	mapsByID   map[string]*game.MapDefinition
	mapsBySlug map[string]*game.MapDefinition
	mapOrder   []string
	species    map[string]*game.Species
	items      map[string]*game.Item
	moves      map[string]*game.Move
	trainers   map[string]*game.Trainer
	order      []string
}

// Config holds the configuration for the file store
type Config struct {
	// Dir contains maps.yaml, species.yaml, items.yaml, moves.yaml and
	// trainers.yaml. Missing files load as empty sections.
	Dir string
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if c == nil || c.Dir == "" {
		return errors.InvalidArgument("content directory is required")
	}
	return nil
}

// NewFileStore loads and validates all content files under cfg.Dir
func NewFileStore(cfg *Config) (*FileStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		mf mapsFile
		sf speciesFile
		nf itemsFile
		vf movesFile
		tf trainersFile
	)
	if err := readYAML(filepath.Join(cfg.Dir, "maps.yaml"), &mf); err != nil {
		return nil, errors.Wrap(err, "failed to load maps.yaml")
	}
	if err := readYAML(filepath.Join(cfg.Dir, "species.yaml"), &sf); err != nil {
		return nil, errors.Wrap(err, "failed to load species.yaml")
	}
	if err := readYAML(filepath.Join(cfg.Dir, "items.yaml"), &nf); err != nil {
		return nil, errors.Wrap(err, "failed to load items.yaml")
	}
	if err := readYAML(filepath.Join(cfg.Dir, "moves.yaml"), &vf); err != nil {
		return nil, errors.Wrap(err, "failed to load moves.yaml")
	}
	if err := readYAML(filepath.Join(cfg.Dir, "trainers.yaml"), &tf); err != nil {
		return nil, errors.Wrap(err, "failed to load trainers.yaml")
	}

	s := &FileStore{
		mapsByID:   make(map[string]*game.MapDefinition),
		mapsBySlug: make(map[string]*game.MapDefinition),
		species:    make(map[string]*game.Species),
		items:      make(map[string]*game.Item),
		moves:      make(map[string]*game.Move),
		trainers:   make(map[string]*game.Trainer),
		order:      tf.TrainerOrder,
	}

	for _, r := range mf.Maps {
		m := &game.MapDefinition{
			ID:                r.ID,
			Slug:              r.Slug,
			Name:              r.Name,
			LevelMin:          r.LevelMin,
			LevelMax:          r.LevelMax,
			EncounterRate:     r.EncounterRate,
			ItemDropRate:      r.ItemDropRate,
			RequiredSearches:  r.RequiredSearches,
			UnlockSourceMapID: r.UnlockSourceMap,
			Species:           convertWeighted(r.Species),
			Items:             convertWeighted(r.Items),
		}
		s.mapsByID[m.ID] = m
		s.mapsBySlug[m.Slug] = m
		s.mapOrder = append(s.mapOrder, m.ID)
	}

	for _, r := range sf.Species {
		s.species[r.ID] = &game.Species{
			ID:          r.ID,
			Name:        r.Name,
			CaptureRate: r.CaptureRate,
			BaseHP:      r.BaseHP,
			BaseAttack:  r.BaseAttack,
			BaseDefense: r.BaseDefense,
			BaseSpeed:   r.BaseSpeed,
		}
	}

	for _, r := range nf.Items {
		s.items[r.ID] = &game.Item{
			ID:                r.ID,
			Name:              r.Name,
			Kind:              game.ItemKind(r.Kind),
			CaptureMultiplier: r.CaptureMultiplier,
		}
	}

	for _, r := range vf.Moves {
		s.moves[r.ID] = &game.Move{
			ID:    r.ID,
			Name:  r.Name,
			Type:  r.Type,
			Power: r.Power,
			Cost:  r.Cost,
		}
	}

	for _, r := range tf.Trainers {
		tr := &game.Trainer{
			ID:             r.ID,
			Name:           r.Name,
			RewardCoins:    r.RewardCoins,
			RewardExp:      r.RewardExp,
			PrizeSpeciesID: r.PrizeSpecies,
			PrizeLevel:     r.PrizeLevel,
		}
		for _, tc := range r.Team {
			tr.Team = append(tr.Team, game.TrainerCreature{
				SpeciesID: tc.Species,
				Level:     tc.Level,
			})
		}
		s.trainers[tr.ID] = tr
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Ensure FileStore implements Store
var _ Store = (*FileStore)(nil)

// GetMap retrieves a map definition by ID
func (s *FileStore) GetMap(_ context.Context, id string) (*game.MapDefinition, error) {
	m, ok := s.mapsByID[id]
	if !ok {
		return nil, errors.NotFoundf("map %s not found", id)
	}
	return copyMap(m), nil
}

// GetMapBySlug retrieves a map definition by its URL slug
func (s *FileStore) GetMapBySlug(_ context.Context, slug string) (*game.MapDefinition, error) {
	m, ok := s.mapsBySlug[slug]
	if !ok {
		return nil, errors.NotFoundf("map %s not found", slug)
	}
	return copyMap(m), nil
}

// ListMaps returns all map definitions in file order
func (s *FileStore) ListMaps(_ context.Context) ([]*game.MapDefinition, error) {
	out := make([]*game.MapDefinition, 0, len(s.mapOrder))
	for _, id := range s.mapOrder {
		out = append(out, copyMap(s.mapsByID[id]))
	}
	return out, nil
}

// GetSpecies retrieves a species by ID
func (s *FileStore) GetSpecies(_ context.Context, id string) (*game.Species, error) {
	sp, ok := s.species[id]
	if !ok {
		return nil, errors.NotFoundf("species %s not found", id)
	}
	out := *sp
	return &out, nil
}

// GetItem retrieves an item by ID
func (s *FileStore) GetItem(_ context.Context, id string) (*game.Item, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, errors.NotFoundf("item %s not found", id)
	}
	out := *it
	return &out, nil
}

// GetMove retrieves a move by ID
func (s *FileStore) GetMove(_ context.Context, id string) (*game.Move, error) {
	mv, ok := s.moves[id]
	if !ok {
		return nil, errors.NotFoundf("move %s not found", id)
	}
	out := *mv
	return &out, nil
}

// GetTrainer retrieves a trainer by ID
func (s *FileStore) GetTrainer(_ context.Context, id string) (*game.Trainer, error) {
	tr, ok := s.trainers[id]
	if !ok {
		return nil, errors.NotFoundf("trainer %s not found", id)
	}
	out := *tr
	out.Team = append([]game.TrainerCreature(nil), tr.Team...)
	return &out, nil
}

// TrainerOrder returns the configured trainer rotation roster
func (s *FileStore) TrainerOrder(_ context.Context) ([]string, error) {
	return append([]string(nil), s.order...), nil
}

// readYAML loads a YAML file. Missing files decode as the zero value.
func readYAML(path string, out interface{}) error {
	b, err := os.ReadFile(path) // #nosec G304 // paths come from server config
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(b, out)
}

func convertWeighted(raw []rawWeighted) []game.WeightedEntry {
	out := make([]game.WeightedEntry, 0, len(raw))
	for _, r := range raw {
		out = append(out, game.WeightedEntry{RefID: r.Ref, Weight: r.Weight})
	}
	return out
}

func copyMap(m *game.MapDefinition) *game.MapDefinition {
	out := *m
	out.Species = append([]game.WeightedEntry(nil), m.Species...)
	out.Items = append([]game.WeightedEntry(nil), m.Items...)
	return &out
}
