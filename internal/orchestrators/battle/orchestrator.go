// Package battle implements the trainer battle orchestrator: team snapshot
// creation, turn-by-turn damage with forward-only advancement, and
// settlement with an idempotent prize claim.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/wildgrove/encounter-api/internal/orchestrators/battle Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wildgrove/encounter-api/internal/clients/collection"
	"github.com/wildgrove/encounter-api/internal/content"
	"github.com/wildgrove/encounter-api/internal/engine"
	"github.com/wildgrove/encounter-api/internal/entities/game"
	"github.com/wildgrove/encounter-api/internal/errors"
	"github.com/wildgrove/encounter-api/internal/pkg/idgen"
	trainerbattle "github.com/wildgrove/encounter-api/internal/repositories/trainer_battle"
)

const (
	// VictoryExpPerLevel scales the defeated team's summed levels into
	// creature experience
	VictoryExpPerLevel = 30

	// VictoryHappiness is granted to the player's creature on victory
	VictoryHappiness = 5

	// Fallbacks used when a trainer's reward fields are unset, scaled by
	// the trainer's strongest team member
	FallbackCoinsPerLevel = 20
	FallbackExpPerLevel   = 10
)

// Service defines the interface for trainer battle operations
type Service interface {
	// StartBattle snapshots the trainer's team into a new battle
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// Attack plays one move against the current opposing creature
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// ResolveBattle settles a completed battle exactly once
	ResolveBattle(ctx context.Context, input *ResolveBattleInput) (*ResolveBattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	BattleRepo  trainerbattle.Repository
	Content     content.Store
	Collection  collection.Client
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.Collection == nil {
		vb.RequiredField("Collection")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	battleRepo trainerbattle.Repository
	content    content.Store
	collection collection.Client
	idGen      idgen.Generator
}

// NewOrchestrator creates a new battle orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		battleRepo: cfg.BattleRepo,
		content:    cfg.Content,
		collection: cfg.Collection,
		idGen:      cfg.IDGenerator,
	}, nil
}

// StartBattle builds the team snapshot from the trainer template and stores
// the battle. The player needs a usable creature before the gate opens.
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("TrainerID", input.TrainerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	trainer, err := o.content.GetTrainer(ctx, input.TrainerID)
	if err != nil {
		return nil, err
	}

	if _, err := o.collection.GetActiveCreature(ctx, &collection.GetActiveCreatureInput{
		PlayerID: input.PlayerID,
	}); err != nil {
		return nil, err
	}

	team := make([]game.BattleCreature, 0, len(trainer.Team))
	for _, member := range trainer.Team {
		species, err := o.content.GetSpecies(ctx, member.SpeciesID)
		if err != nil {
			return nil, errors.Wrapf(err, "trainer %s references unknown species %s", trainer.ID, member.SpeciesID)
		}
		maxHP := engine.HPForLevel(species.BaseHP, member.Level)
		team = append(team, game.BattleCreature{
			SpeciesID: species.ID,
			Name:      species.Name,
			Level:     member.Level,
			CurrentHP: maxHP,
			MaxHP:     maxHP,
			Attack:    engine.StatForLevel(species.BaseAttack, member.Level),
			Defense:   engine.StatForLevel(species.BaseDefense, member.Level),
			Speed:     engine.StatForLevel(species.BaseSpeed, member.Level),
		})
	}

	created, err := o.battleRepo.Create(ctx, trainerbattle.CreateInput{
		Battle: &trainerbattle.Battle{
			ID:        o.idGen.Generate(),
			PlayerID:  input.PlayerID,
			TrainerID: trainer.ID,
			Team:      team,
		},
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "trainer battle started",
		"player_id", input.PlayerID,
		"trainer_id", trainer.ID,
		"battle_id", created.Battle.ID,
		"team_size", len(team),
	)

	views := make([]BattleCreatureView, len(team))
	for i := range team {
		views[i] = toView(&team[i])
	}
	opponent := toView(created.Battle.Current())

	return &StartBattleOutput{
		BattleID:    created.Battle.ID,
		TrainerID:   trainer.ID,
		TrainerName: trainer.Name,
		Team:        views,
		Opponent:    &opponent,
	}, nil
}

// Attack plays one content-defined move: spends its MP cost, applies the
// damage formula, and advances past fainted team members
func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("BattleID", input.BattleID, vb)
	errors.ValidateRequired("MoveID", input.MoveID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	battle, err := o.activeBattle(ctx, input.PlayerID, input.BattleID)
	if err != nil {
		return nil, err
	}
	if battle.State == trainerbattle.StateComplete {
		return nil, errors.BattleAlreadyComplete("the battle is over; resolve it to collect rewards")
	}

	move, err := o.content.GetMove(ctx, input.MoveID)
	if err != nil {
		return nil, err
	}

	attackerOut, err := o.collection.GetActiveCreature(ctx, &collection.GetActiveCreatureInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}
	attacker := attackerOut.Creature

	remainingMP := attacker.MP
	if move.Cost > 0 {
		spent, err := o.collection.SpendMana(ctx, &collection.SpendManaInput{
			CreatureID: attacker.ID,
			Amount:     move.Cost,
		})
		if err != nil {
			return nil, err
		}
		remainingMP = spent.RemainingMP
	}

	target := battle.Current()
	damage := engine.AttackDamage(move.Power, attacker.Attack, target.Defense)
	target.CurrentHP = engine.ApplyDamage(target.CurrentHP, damage)

	output := &AttackOutput{
		Damage: damage,
		HP:     target.CurrentHP,
		MaxHP:  target.MaxHP,
		Player: &PlayerState{
			CreatureID: attacker.ID,
			MP:         remainingMP,
			MaxMP:      attacker.MaxMP,
		},
		Message: fmt.Sprintf("%s took %d damage!", target.Name, damage),
	}

	if target.CurrentHP == 0 {
		output.Fainted = true
		advanceIfFainted(battle)
		if battle.State == trainerbattle.StateComplete {
			output.Complete = true
			output.Message = "The trainer has no creatures left!"
		} else {
			next := toView(battle.Current())
			output.Next = &next
			output.Message = fmt.Sprintf("%s fainted! %s was sent out!", target.Name, next.Name)
		}
	}

	if err := o.battleRepo.Update(ctx, battle); err != nil {
		return nil, err
	}

	return output, nil
}

// ResolveBattle settles a completed battle: creature experience and
// happiness, coins and trainer experience, the one-time prize claim, and the
// rotation advance. A duplicate resolve returns the stored settlement.
func (o *orchestrator) ResolveBattle(ctx context.Context, input *ResolveBattleInput) (*ResolveBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("TrainerID", input.TrainerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	trainer, err := o.content.GetTrainer(ctx, input.TrainerID)
	if err != nil {
		return nil, err
	}

	var battle *trainerbattle.Battle
	battleOut, err := o.battleRepo.GetActive(ctx, trainerbattle.GetInput{PlayerID: input.PlayerID})
	if err == nil {
		battle = battleOut.Battle
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	// A duplicate resolve replays the stored settlement, but only for the
	// battle that produced it; a rematch inside the settlement window is a
	// new battle and settles on its own
	if stored, err := o.battleRepo.GetSettlement(ctx, trainerbattle.GetSettlementInput{
		PlayerID:  input.PlayerID,
		TrainerID: trainer.ID,
	}); err == nil {
		if battle == nil || battle.TrainerID != trainer.ID || battle.ID == stored.Settlement.BattleID {
			return o.replaySettlement(ctx, input.PlayerID, trainer, stored.Settlement)
		}
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	if battle == nil {
		return nil, errors.NotFound("no battle to resolve")
	}
	if battle.TrainerID != trainer.ID {
		return nil, errors.InvalidArgumentf("active battle is against %s, not %s", battle.TrainerID, trainer.ID)
	}
	if battle.State != trainerbattle.StateComplete {
		return nil, errors.BattleNotComplete("the trainer still has creatures standing")
	}

	// Creature gains scale with the defeated team
	var teamLevels int64
	var topLevel int32
	for i := range battle.Team {
		teamLevels += int64(battle.Team[i].Level)
		if battle.Team[i].Level > topLevel {
			topLevel = battle.Team[i].Level
		}
	}
	expGained := teamLevels * VictoryExpPerLevel

	activeOut, err := o.collection.GetActiveCreature(ctx, &collection.GetActiveCreatureInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	grant, err := o.collection.GrantCreatureExp(ctx, &collection.GrantCreatureExpInput{
		CreatureID: activeOut.Creature.ID,
		Exp:        expGained,
		Happiness:  VictoryHappiness,
	})
	if err != nil {
		return nil, err
	}

	coins := trainer.RewardCoins
	if coins == 0 {
		coins = int64(topLevel) * FallbackCoinsPerLevel
	}
	trainerExp := trainer.RewardExp
	if trainerExp == 0 {
		trainerExp = int64(topLevel) * FallbackExpPerLevel
	}
	if _, err := o.collection.GrantPlayerRewards(ctx, &collection.GrantPlayerRewardsInput{
		PlayerID:   input.PlayerID,
		Coins:      coins,
		TrainerExp: trainerExp,
	}); err != nil {
		return nil, err
	}

	prize, err := o.grantPrize(ctx, input.PlayerID, trainer)
	if err != nil {
		return nil, err
	}

	settlement := &trainerbattle.Settlement{
		BattleID:          battle.ID,
		PlayerID:          input.PlayerID,
		TrainerID:         trainer.ID,
		CoinsAwarded:      coins,
		TrainerExpAwarded: trainerExp,
		CreatureExpGained: expGained,
		LevelsGained:      grant.LevelsGained,
	}
	if prize != nil && !prize.AlreadyClaimed {
		settlement.PrizeAwarded = true
		settlement.PrizeCreatureID = prize.CreatureID
	}
	if _, err := o.battleRepo.SaveSettlement(ctx, trainerbattle.SaveSettlementInput{
		Settlement: settlement,
	}); err != nil {
		return nil, err
	}

	nextTrainerID, err := o.advanceRotation(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "trainer battle settled",
		"player_id", input.PlayerID,
		"trainer_id", trainer.ID,
		"coins", coins,
		"creature_exp", expGained,
		"prize_awarded", settlement.PrizeAwarded,
	)

	return &ResolveBattleOutput{
		Creature: &CreatureResult{
			CreatureID:      grant.Creature.ID,
			ExpGained:       expGained,
			LevelsGained:    grant.LevelsGained,
			HappinessGained: VictoryHappiness,
			ExpToNext:       grant.ExpToNext,
		},
		Rewards: &RewardsResult{
			Coins:      coins,
			TrainerExp: trainerExp,
			Prize:      prize,
		},
		NextTrainerID: nextTrainerID,
	}, nil
}

// grantPrize runs the one-time claim. Exactly one settlement per (player,
// trainer) wins the SetNX and grants the creature; every later one reports
// alreadyClaimed.
func (o *orchestrator) grantPrize(ctx context.Context, playerID string, trainer *game.Trainer) (*PrizeResult, error) {
	if trainer.PrizeSpeciesID == "" {
		return nil, nil
	}

	species, err := o.content.GetSpecies(ctx, trainer.PrizeSpeciesID)
	if err != nil {
		return nil, errors.Wrapf(err, "trainer %s references unknown prize species", trainer.ID)
	}

	claim, err := o.battleRepo.ClaimPrize(ctx, trainerbattle.ClaimPrizeInput{
		PlayerID:  playerID,
		TrainerID: trainer.ID,
	})
	if err != nil {
		return nil, err
	}
	if !claim.Won {
		return &PrizeResult{
			SpeciesID:      species.ID,
			Name:           species.Name,
			AlreadyClaimed: true,
		}, nil
	}

	created, err := o.collection.CreateCreature(ctx, &collection.CreateCreatureInput{
		Grant: &game.RewardGrant{
			Source:    game.RewardSourceBattleVictory,
			PlayerID:  playerID,
			SpeciesID: trainer.PrizeSpeciesID,
			Level:     trainer.PrizeLevel,
		},
	})
	if err != nil {
		return nil, err
	}

	return &PrizeResult{
		SpeciesID:  species.ID,
		Name:       species.Name,
		CreatureID: created.Creature.ID,
	}, nil
}

// replaySettlement rebuilds the resolve response from the stored record so
// duplicate requests see the same success
func (o *orchestrator) replaySettlement(ctx context.Context, playerID string, trainer *game.Trainer, settlement *trainerbattle.Settlement) (*ResolveBattleOutput, error) {
	var prize *PrizeResult
	if trainer.PrizeSpeciesID != "" {
		species, err := o.content.GetSpecies(ctx, trainer.PrizeSpeciesID)
		if err != nil {
			return nil, err
		}
		prize = &PrizeResult{
			SpeciesID:      species.ID,
			Name:           species.Name,
			CreatureID:     settlement.PrizeCreatureID,
			AlreadyClaimed: !settlement.PrizeAwarded,
		}
	}

	nextTrainerID, err := o.currentRotation(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return &ResolveBattleOutput{
		Creature: &CreatureResult{
			ExpGained:       settlement.CreatureExpGained,
			LevelsGained:    settlement.LevelsGained,
			HappinessGained: VictoryHappiness,
		},
		Rewards: &RewardsResult{
			Coins:      settlement.CoinsAwarded,
			TrainerExp: settlement.TrainerExpAwarded,
			Prize:      prize,
		},
		NextTrainerID:   nextTrainerID,
		AlreadyResolved: true,
	}, nil
}

// advanceRotation moves the player forward in the roster and names the next
// opponent
func (o *orchestrator) advanceRotation(ctx context.Context, playerID string) (string, error) {
	order, err := o.content.TrainerOrder(ctx)
	if err != nil {
		return "", err
	}
	if len(order) == 0 {
		return "", nil
	}

	advanced, err := o.battleRepo.AdvanceRotation(ctx, trainerbattle.AdvanceRotationInput{
		PlayerID: playerID,
	})
	if err != nil {
		return "", err
	}

	return order[advanced.Position%int64(len(order))], nil
}

func (o *orchestrator) currentRotation(ctx context.Context, playerID string) (string, error) {
	order, err := o.content.TrainerOrder(ctx)
	if err != nil {
		return "", err
	}
	if len(order) == 0 {
		return "", nil
	}

	position, err := o.battleRepo.GetRotation(ctx, trainerbattle.GetRotationInput{
		PlayerID: playerID,
	})
	if err != nil {
		return "", err
	}

	return order[position.Position%int64(len(order))], nil
}

// activeBattle loads the player's active battle and checks it is the one the
// request names
func (o *orchestrator) activeBattle(ctx context.Context, playerID, battleID string) (*trainerbattle.Battle, error) {
	out, err := o.battleRepo.GetActive(ctx, trainerbattle.GetInput{PlayerID: playerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("no active battle")
		}
		return nil, err
	}
	if out.Battle.ID != battleID {
		return nil, errors.NotFoundf("battle %s is not the active battle", battleID)
	}
	return out.Battle, nil
}

// advanceIfFainted moves currentIndex forward past fainted members; if none
// remain the battle completes. The index never moves backward.
func advanceIfFainted(battle *trainerbattle.Battle) {
	for int(battle.CurrentIndex) < len(battle.Team) {
		if battle.Team[battle.CurrentIndex].CurrentHP > 0 {
			return
		}
		battle.CurrentIndex++
	}
	battle.State = trainerbattle.StateComplete
}

func toView(c *game.BattleCreature) BattleCreatureView {
	return BattleCreatureView{
		SpeciesID: c.SpeciesID,
		Name:      c.Name,
		Level:     c.Level,
		HP:        c.CurrentHP,
		MaxHP:     c.MaxHP,
	}
}
