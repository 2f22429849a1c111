package content

import (
	"fmt"

	"github.com/wildgrove/encounter-api/internal/entities/game"
	"github.com/wildgrove/encounter-api/internal/errors"
)

// validate checks the loaded content for internal consistency: rates inside
// [0,1], capture rates inside [1,255], non-negative weights, and resolvable
// cross-references. It runs once at load so the engine never has to re-check
// content invariants per request.
func (s *FileStore) validate() error {
	vb := errors.NewValidationBuilder()

	for id, m := range s.mapsByID {
		field := func(name string) string { return fmt.Sprintf("maps[%s].%s", id, name) }

		errors.ValidateRequired(field("slug"), m.Slug, vb)
		errors.ValidateUnitInterval(field("encounter_rate"), m.EncounterRate, vb)
		errors.ValidateUnitInterval(field("item_drop_rate"), m.ItemDropRate, vb)

		if m.LevelMin < 1 || m.LevelMax < m.LevelMin {
			vb.InvalidField(field("level_range"), "level_min must be >= 1 and level_max >= level_min")
		}
		if m.RequiredSearches < 0 {
			vb.InvalidField(field("required_searches"), "must not be negative")
		}
		if m.RequiredSearches > 0 && m.UnlockSourceMapID == "" {
			vb.InvalidField(field("unlock_source_map"), "required when required_searches > 0")
		}
		if m.UnlockSourceMapID != "" {
			if _, ok := s.mapsByID[m.UnlockSourceMapID]; !ok {
				vb.Fieldf(field("unlock_source_map"), "references unknown map %s", m.UnlockSourceMapID)
			}
			if m.UnlockSourceMapID == id {
				vb.InvalidField(field("unlock_source_map"), "map cannot unlock itself")
			}
		}

		s.validateTable(field("species"), m.Species, s.speciesExists, vb)
		s.validateTable(field("items"), m.Items, s.itemExists, vb)
	}

	for id, sp := range s.species {
		field := fmt.Sprintf("species[%s].capture_rate", id)
		errors.ValidateRange(field, int(sp.CaptureRate), 1, 255, vb)
		if sp.BaseHP < 1 {
			vb.InvalidField(fmt.Sprintf("species[%s].base_hp", id), "must be >= 1")
		}
	}

	for id, it := range s.items {
		if it.Kind == game.ItemKindCaptureTool && it.CaptureMultiplier <= 0 {
			vb.InvalidField(fmt.Sprintf("items[%s].capture_multiplier", id), "capture tools need a positive multiplier")
		}
	}

	for id, tr := range s.trainers {
		field := func(name string) string { return fmt.Sprintf("trainers[%s].%s", id, name) }

		if len(tr.Team) == 0 {
			vb.InvalidField(field("team"), "must have at least one member")
		}
		for i, tc := range tr.Team {
			if !s.speciesExists(tc.SpeciesID) {
				vb.Fieldf(field("team"), "member %d references unknown species %s", i, tc.SpeciesID)
			}
			if tc.Level < 1 {
				vb.Fieldf(field("team"), "member %d level must be >= 1", i)
			}
		}
		if tr.PrizeSpeciesID != "" && !s.speciesExists(tr.PrizeSpeciesID) {
			vb.Fieldf(field("prize_species"), "references unknown species %s", tr.PrizeSpeciesID)
		}
	}

	for i, id := range s.order {
		if _, ok := s.trainers[id]; !ok {
			vb.Fieldf("trainer_order", "entry %d references unknown trainer %s", i, id)
		}
	}

	return vb.Build()
}

func (s *FileStore) validateTable(field string, entries []game.WeightedEntry, exists func(string) bool, vb *errors.ValidationBuilder) {
	for i, e := range entries {
		if e.Weight < 0 {
			vb.Fieldf(field, "entry %d weight must not be negative", i)
		}
		if !exists(e.RefID) {
			vb.Fieldf(field, "entry %d references unknown ID %s", i, e.RefID)
		}
	}
}

func (s *FileStore) speciesExists(id string) bool {
	_, ok := s.species[id]
	return ok
}

func (s *FileStore) itemExists(id string) bool {
	_, ok := s.items[id]
	return ok
}
