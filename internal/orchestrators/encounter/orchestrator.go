// Package encounter implements the wild encounter orchestrator: map searches,
// the per-player encounter session lifecycle, and capture resolution.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/wildgrove/encounter-api/internal/orchestrators/encounter Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wildgrove/encounter-api/internal/clients/collection"
	"github.com/wildgrove/encounter-api/internal/clients/inventory"
	"github.com/wildgrove/encounter-api/internal/content"
	"github.com/wildgrove/encounter-api/internal/engine"
	"github.com/wildgrove/encounter-api/internal/entities/game"
	"github.com/wildgrove/encounter-api/internal/errors"
	"github.com/wildgrove/encounter-api/internal/pkg/idgen"
	"github.com/wildgrove/encounter-api/internal/pkg/rng"
	encountersession "github.com/wildgrove/encounter-api/internal/repositories/encounter_session"
	mapprogress "github.com/wildgrove/encounter-api/internal/repositories/map_progress"
)

const (
	// SearchExp is the map experience granted per search
	SearchExp = 10

	// CaptureExp is the map experience granted on a successful capture
	CaptureExp = 25

	// DefaultSessionTTL bounds how long an untouched encounter stays open;
	// expiry counts as FLED
	DefaultSessionTTL = 30 * time.Minute
)

// Service defines the interface for encounter operations
type Service interface {
	// Search rolls for a wild encounter and an item drop on a map
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// GetMapState reports a map's unlock gate and the player's progress
	GetMapState(ctx context.Context, input *GetMapStateInput) (*GetMapStateOutput, error)

	// Attack damages the encountered creature
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// Catch attempts a capture with the basic tool
	Catch(ctx context.Context, input *CatchInput) (*CatchOutput, error)

	// UseCaptureTool attempts a capture with a specific tool, consuming one
	UseCaptureTool(ctx context.Context, input *UseCaptureToolInput) (*CatchOutput, error)

	// Run flees the encounter
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	SessionRepo  encountersession.Repository
	ProgressRepo mapprogress.Repository
	Content      content.Store
	Collection   collection.Client
	Inventory    inventory.Client
	IDGenerator  idgen.Generator
	Random       rng.Source

	// SessionTTL overrides DefaultSessionTTL when positive
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.ProgressRepo == nil {
		vb.RequiredField("ProgressRepo")
	}
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.Collection == nil {
		vb.RequiredField("Collection")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo  encountersession.Repository
	progressRepo mapprogress.Repository
	content      content.Store
	collection   collection.Client
	inventory    inventory.Client
	idGen        idgen.Generator
	random       rng.Source
	sessionTTL   time.Duration
}

// NewOrchestrator creates a new encounter orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		sessionRepo:  cfg.SessionRepo,
		progressRepo: cfg.ProgressRepo,
		content:      cfg.Content,
		collection:   cfg.Collection,
		inventory:    cfg.Inventory,
		idGen:        cfg.IDGenerator,
		random:       cfg.Random,
		sessionTTL:   ttl,
	}, nil
}

// Search performs one search on a map: unlock check, active-session check,
// search counter, then the independent encounter and item-drop rolls
func (o *orchestrator) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("MapSlug", input.MapSlug, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	mapDef, err := o.content.GetMapBySlug(ctx, input.MapSlug)
	if err != nil {
		return nil, err
	}

	if err := o.checkUnlocked(ctx, input.PlayerID, mapDef); err != nil {
		return nil, err
	}

	// Fail fast before touching the counter; the SetNX on session create
	// still closes the race between two concurrent searches
	if _, err := o.sessionRepo.GetActive(ctx, encountersession.GetInput{PlayerID: input.PlayerID}); err == nil {
		return nil, errors.EncounterAlreadyActive("an encounter is already in progress")
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	// Exactly one increment per accepted search, whatever the rolls do
	progressOut, err := o.progressRepo.RecordSearch(ctx, mapprogress.RecordSearchInput{
		PlayerID:  input.PlayerID,
		MapID:     mapDef.ID,
		ExpGained: SearchExp,
	})
	if err != nil {
		return nil, err
	}

	output := &SearchOutput{
		Progress: toMapProgress(progressOut.Progress),
	}

	if o.random.Float64() < mapDef.EncounterRate {
		if err := o.rollEncounter(ctx, input.PlayerID, mapDef, output); err != nil {
			return nil, err
		}
	}

	// The drop gate is independent of the encounter gate
	if o.random.Float64() < mapDef.ItemDropRate {
		if err := o.rollItemDrop(ctx, input.PlayerID, mapDef, output); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "search completed",
		"player_id", input.PlayerID,
		"map_id", mapDef.ID,
		"encounter_id", output.EncounterID,
		"total_searches", output.Progress.TotalSearches,
	)

	return output, nil
}

func (o *orchestrator) rollEncounter(ctx context.Context, playerID string, mapDef *game.MapDefinition, output *SearchOutput) error {
	speciesID, ok := engine.Draw(mapDef.Species, o.random)
	if !ok {
		return nil
	}

	species, err := o.content.GetSpecies(ctx, speciesID)
	if err != nil {
		return errors.Wrapf(err, "map %s references unknown species %s", mapDef.ID, speciesID)
	}

	level := mapDef.LevelMin
	if span := mapDef.LevelMax - mapDef.LevelMin; span > 0 {
		level += int32(o.random.Int64N(int64(span) + 1))
	}
	maxHP := engine.HPForLevel(species.BaseHP, level)

	session := &encountersession.Session{
		ID:       o.idGen.Generate(),
		PlayerID: playerID,
		MapID:    mapDef.ID,
		Creature: game.CreatureSnapshot{
			SpeciesID:   species.ID,
			Name:        species.Name,
			Level:       level,
			CurrentHP:   maxHP,
			MaxHP:       maxHP,
			Defense:     engine.StatForLevel(species.BaseDefense, level),
			CaptureRate: species.CaptureRate,
		},
	}

	created, err := o.sessionRepo.Create(ctx, encountersession.CreateInput{
		Session: session,
		TTL:     o.sessionTTL,
	})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			// A concurrent search won the slot
			return errors.EncounterAlreadyActive("an encounter is already in progress")
		}
		return err
	}

	output.EncounterID = created.Session.ID
	output.Creature = &WildCreature{
		SpeciesID: species.ID,
		Name:      species.Name,
		Level:     level,
		HP:        maxHP,
		MaxHP:     maxHP,
	}
	return nil
}

func (o *orchestrator) rollItemDrop(ctx context.Context, playerID string, mapDef *game.MapDefinition, output *SearchOutput) error {
	itemID, ok := engine.Draw(mapDef.Items, o.random)
	if !ok {
		return nil
	}

	item, err := o.content.GetItem(ctx, itemID)
	if err != nil {
		return errors.Wrapf(err, "map %s references unknown item %s", mapDef.ID, itemID)
	}

	if _, err := o.inventory.GrantItem(ctx, &inventory.GrantItemInput{
		PlayerID: playerID,
		ItemID:   item.ID,
		Quantity: 1,
	}); err != nil {
		return err
	}

	output.Item = &ItemDrop{
		ItemID:   item.ID,
		Name:     item.Name,
		Quantity: 1,
	}
	return nil
}

// GetMapState reports the unlock gate and the player's counters for a map
func (o *orchestrator) GetMapState(ctx context.Context, input *GetMapStateInput) (*GetMapStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("MapSlug", input.MapSlug, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	mapDef, err := o.content.GetMapBySlug(ctx, input.MapSlug)
	if err != nil {
		return nil, err
	}

	progressOut, err := o.progressRepo.Get(ctx, mapprogress.GetInput{
		PlayerID: input.PlayerID,
		MapID:    mapDef.ID,
	})
	if err != nil {
		return nil, err
	}

	output := &GetMapStateOutput{
		MapID:    mapDef.ID,
		Name:     mapDef.Name,
		Progress: toMapProgress(progressOut.Progress),
	}

	if !hasUnlockGate(mapDef) {
		return output, nil
	}

	sourceMap, err := o.content.GetMap(ctx, mapDef.UnlockSourceMapID)
	if err != nil {
		return nil, err
	}
	sourceProgress, err := o.progressRepo.Get(ctx, mapprogress.GetInput{
		PlayerID: input.PlayerID,
		MapID:    sourceMap.ID,
	})
	if err != nil {
		return nil, err
	}

	output.Locked = sourceProgress.Progress.TotalSearches < mapDef.RequiredSearches
	output.Unlock = &UnlockStatus{
		RequiredSearches: mapDef.RequiredSearches,
		CurrentSearches:  sourceProgress.Progress.TotalSearches,
		SourceMapID:      sourceMap.ID,
		SourceMapName:    sourceMap.Name,
	}

	return output, nil
}

// Attack strikes the encountered creature with the player's active battler
// using the default strike power. Reaching 0 HP resolves the session
// DEFEATED; a defeated wild creature grants nothing.
func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("EncounterID", input.EncounterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.activeSession(ctx, input.PlayerID, input.EncounterID)
	if err != nil {
		if errors.IsNoActiveEncounter(err) {
			// A duplicate of the resolving attack replays the result
			if replay := o.replayResolution(ctx, input.PlayerID, input.EncounterID, encountersession.OutcomeDefeated); replay != nil {
				return &AttackOutput{
					HP:       0,
					MaxHP:    replay.MaxHP,
					Defeated: true,
					Message:  "The wild creature fainted!",
				}, nil
			}
		}
		return nil, err
	}

	attackerOut, err := o.collection.GetActiveCreature(ctx, &collection.GetActiveCreatureInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	damage := engine.AttackDamage(0, attackerOut.Creature.Attack, session.Creature.Defense)
	session.Creature.CurrentHP = engine.ApplyDamage(session.Creature.CurrentHP, damage)

	if session.Creature.CurrentHP > 0 {
		if err := o.sessionRepo.Update(ctx, session); err != nil {
			return nil, err
		}
		return &AttackOutput{
			Damage:  damage,
			HP:      session.Creature.CurrentHP,
			MaxHP:   session.Creature.MaxHP,
			Message: fmt.Sprintf("%s took %d damage!", session.Creature.Name, damage),
		}, nil
	}

	if _, err := o.sessionRepo.Resolve(ctx, encountersession.ResolveInput{
		PlayerID: input.PlayerID,
		Resolution: &encountersession.Resolution{
			SessionID: session.ID,
			Outcome:   encountersession.OutcomeDefeated,
			MaxHP:     session.Creature.MaxHP,
		},
	}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "wild creature defeated",
		"player_id", input.PlayerID,
		"session_id", session.ID,
		"species_id", session.Creature.SpeciesID,
	)

	return &AttackOutput{
		Damage:   damage,
		HP:       0,
		MaxHP:    session.Creature.MaxHP,
		Defeated: true,
		Message:  fmt.Sprintf("The wild %s fainted!", session.Creature.Name),
	}, nil
}

// Catch attempts a capture with the basic tool (multiplier 1, nothing
// consumed)
func (o *orchestrator) Catch(ctx context.Context, input *CatchInput) (*CatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	return o.attemptCapture(ctx, input.PlayerID, input.EncounterID, 1)
}

// UseCaptureTool attempts a capture with a configured tool, consuming one
// unit whether or not the attempt succeeds
func (o *orchestrator) UseCaptureTool(ctx context.Context, input *UseCaptureToolInput) (*CatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("EncounterID", input.EncounterID, vb)
	errors.ValidateRequired("ToolID", input.ToolID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	item, err := o.content.GetItem(ctx, input.ToolID)
	if err != nil {
		return nil, err
	}
	if item.Kind != game.ItemKindCaptureTool {
		return nil, errors.InvalidCaptureToolf("%s is not a capture tool", item.Name)
	}

	// Check the session before consuming so a stale request cannot burn a
	// tool; a duplicate of the successful catch is replayed below without
	// consuming another
	if _, err := o.activeSession(ctx, input.PlayerID, input.EncounterID); err != nil {
		if errors.IsNoActiveEncounter(err) {
			if replay := o.replayResolution(ctx, input.PlayerID, input.EncounterID, encountersession.OutcomeCaught); replay != nil {
				return replayCatchOutput(replay), nil
			}
		}
		return nil, err
	}

	if _, err := o.inventory.ConsumeItem(ctx, &inventory.ConsumeItemInput{
		PlayerID: input.PlayerID,
		ItemID:   item.ID,
	}); err != nil {
		return nil, err
	}

	return o.attemptCapture(ctx, input.PlayerID, input.EncounterID, item.CaptureMultiplier)
}

func (o *orchestrator) attemptCapture(ctx context.Context, playerID, encounterID string, toolMultiplier float64) (*CatchOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", playerID, vb)
	errors.ValidateRequired("EncounterID", encounterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.activeSession(ctx, playerID, encounterID)
	if err != nil {
		if errors.IsNoActiveEncounter(err) {
			if replay := o.replayResolution(ctx, playerID, encounterID, encountersession.OutcomeCaught); replay != nil {
				return replayCatchOutput(replay), nil
			}
		}
		return nil, err
	}

	creature := session.Creature
	chance := engine.CaptureChance(creature.CaptureRate, creature.CurrentHP, creature.MaxHP, toolMultiplier)

	if !engine.AttemptCapture(chance, o.random) {
		// The creature stays; a failed attempt costs nothing but the tool
		return &CatchOutput{
			Caught:  false,
			Chance:  chance,
			Message: fmt.Sprintf("%s broke free!", creature.Name),
		}, nil
	}

	created, err := o.collection.CreateCreature(ctx, &collection.CreateCreatureInput{
		Grant: &game.RewardGrant{
			Source:    game.RewardSourceCapture,
			PlayerID:  playerID,
			SpeciesID: creature.SpeciesID,
			Level:     creature.Level,
		},
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.sessionRepo.Resolve(ctx, encountersession.ResolveInput{
		PlayerID: playerID,
		Resolution: &encountersession.Resolution{
			SessionID:  session.ID,
			Outcome:    encountersession.OutcomeCaught,
			Caught:     true,
			Chance:     chance,
			CreatureID: created.Creature.ID,
			MaxHP:      creature.MaxHP,
		},
	}); err != nil {
		return nil, err
	}

	if _, err := o.progressRepo.AddExp(ctx, mapprogress.AddExpInput{
		PlayerID: playerID,
		MapID:    session.MapID,
		Exp:      CaptureExp,
	}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "wild creature caught",
		"player_id", playerID,
		"session_id", session.ID,
		"species_id", creature.SpeciesID,
		"chance", chance,
	)

	return &CatchOutput{
		Caught:   true,
		Chance:   chance,
		Message:  fmt.Sprintf("Gotcha! %s was caught!", creature.Name),
		Creature: created.Creature,
	}, nil
}

// Run flees the encounter unconditionally
func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("EncounterID", input.EncounterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.activeSession(ctx, input.PlayerID, input.EncounterID)
	if err != nil {
		if errors.IsNoActiveEncounter(err) {
			if replay := o.replayResolution(ctx, input.PlayerID, input.EncounterID, encountersession.OutcomeFled); replay != nil {
				return &RunOutput{Message: "Got away safely!"}, nil
			}
		}
		return nil, err
	}

	if _, err := o.sessionRepo.Resolve(ctx, encountersession.ResolveInput{
		PlayerID: input.PlayerID,
		Resolution: &encountersession.Resolution{
			SessionID: session.ID,
			Outcome:   encountersession.OutcomeFled,
		},
	}); err != nil {
		return nil, err
	}

	return &RunOutput{Message: "Got away safely!"}, nil
}

// activeSession loads the player's active session and checks it is the one
// the request names
func (o *orchestrator) activeSession(ctx context.Context, playerID, encounterID string) (*encountersession.Session, error) {
	out, err := o.sessionRepo.GetActive(ctx, encountersession.GetInput{PlayerID: playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NoActiveEncounter("no active encounter")
		}
		return nil, err
	}
	if out.Session.ID != encounterID {
		return nil, errors.NoActiveEncounter("encounter ID does not match the active encounter")
	}
	return out.Session, nil
}

// replayResolution returns the resolution record when a duplicate of the
// resolving request arrives inside the idempotency window, nil otherwise
func (o *orchestrator) replayResolution(ctx context.Context, playerID, encounterID string, want encountersession.Outcome) *encountersession.Resolution {
	out, err := o.sessionRepo.GetResolution(ctx, encountersession.GetResolutionInput{
		PlayerID:  playerID,
		SessionID: encounterID,
	})
	if err != nil || out.Resolution.Outcome != want {
		return nil
	}
	return out.Resolution
}

func replayCatchOutput(resolution *encountersession.Resolution) *CatchOutput {
	return &CatchOutput{
		Caught:  resolution.Caught,
		Chance:  resolution.Chance,
		Message: "Gotcha! The creature was caught!",
	}
}

func (o *orchestrator) checkUnlocked(ctx context.Context, playerID string, mapDef *game.MapDefinition) error {
	if !hasUnlockGate(mapDef) {
		return nil
	}

	sourceProgress, err := o.progressRepo.Get(ctx, mapprogress.GetInput{
		PlayerID: playerID,
		MapID:    mapDef.UnlockSourceMapID,
	})
	if err != nil {
		return err
	}
	if sourceProgress.Progress.TotalSearches < mapDef.RequiredSearches {
		return errors.MapLockedf("%s unlocks after %d searches on %s",
			mapDef.Name, mapDef.RequiredSearches, mapDef.UnlockSourceMapID)
	}
	return nil
}

func hasUnlockGate(mapDef *game.MapDefinition) bool {
	return mapDef.RequiredSearches > 0 && mapDef.UnlockSourceMapID != ""
}

func toMapProgress(p *mapprogress.Progress) *MapProgress {
	return &MapProgress{
		TotalSearches: p.TotalSearches,
		MapExp:        p.MapExp,
		MapLevel:      engine.LevelFromExp(p.MapExp),
		ExpToNext:     engine.ExpToNext(p.MapExp),
	}
}
