package v1alpha1

import (
	"github.com/wildgrove/encounter-api/internal/orchestrators/battle"
	"github.com/wildgrove/encounter-api/internal/orchestrators/encounter"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type searchRequest struct {
	MapSlug string `json:"map_slug"`
}

type creatureResponse struct {
	SpeciesID string `json:"species_id"`
	Name      string `json:"name"`
	Level     int32  `json:"level"`
	HP        int32  `json:"hp"`
	MaxHP     int32  `json:"max_hp"`
}

type itemDropResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type mapProgressResponse struct {
	TotalSearches int64 `json:"total_searches"`
	MapExp        int64 `json:"map_exp"`
	MapLevel      int32 `json:"map_level"`
	ExpToNext     int64 `json:"exp_to_next"`
}

type searchResponse struct {
	EncounterID string               `json:"encounter_id,omitempty"`
	Creature    *creatureResponse    `json:"creature,omitempty"`
	Item        *itemDropResponse    `json:"item,omitempty"`
	Progress    *mapProgressResponse `json:"progress"`
}

type unlockResponse struct {
	RequiredSearches int64  `json:"required_searches"`
	CurrentSearches  int64  `json:"current_searches"`
	SourceMapID      string `json:"source_map_id"`
	SourceMapName    string `json:"source_map_name"`
}

type mapStateResponse struct {
	MapID    string               `json:"map_id"`
	Name     string               `json:"name"`
	Locked   bool                 `json:"locked"`
	Unlock   *unlockResponse      `json:"unlock,omitempty"`
	Progress *mapProgressResponse `json:"progress"`
}

type attackResponse struct {
	Damage   int32  `json:"damage"`
	HP       int32  `json:"hp"`
	MaxHP    int32  `json:"max_hp"`
	Defeated bool   `json:"defeated"`
	Message  string `json:"message"`
}

type catchRequest struct {
	ToolID string `json:"tool_id,omitempty"`
}

type caughtCreatureResponse struct {
	CreatureID string `json:"creature_id"`
	SpeciesID  string `json:"species_id"`
	Name       string `json:"name"`
	Level      int32  `json:"level"`
}

type catchResponse struct {
	Caught   bool                    `json:"caught"`
	Chance   float64                 `json:"chance"`
	Message  string                  `json:"message"`
	Creature *caughtCreatureResponse `json:"creature,omitempty"`
}

type runResponse struct {
	Message string `json:"message"`
}

type startBattleRequest struct {
	TrainerID string `json:"trainer_id"`
}

type startBattleResponse struct {
	BattleID    string             `json:"battle_id"`
	TrainerID   string             `json:"trainer_id"`
	TrainerName string             `json:"trainer_name"`
	Team        []creatureResponse `json:"team"`
	Opponent    *creatureResponse  `json:"opponent"`
}

type battleAttackRequest struct {
	MoveID string `json:"move_id"`
}

type playerStateResponse struct {
	CreatureID string `json:"creature_id"`
	MP         int32  `json:"mp"`
	MaxMP      int32  `json:"max_mp"`
}

type battleAttackResponse struct {
	Damage   int32                `json:"damage"`
	HP       int32                `json:"hp"`
	MaxHP    int32                `json:"max_hp"`
	Fainted  bool                 `json:"fainted"`
	Next     *creatureResponse    `json:"next,omitempty"`
	Complete bool                 `json:"complete"`
	Player   *playerStateResponse `json:"player"`
	Message  string               `json:"message"`
}

type resolveBattleRequest struct {
	TrainerID string `json:"trainer_id"`
}

type creatureResultResponse struct {
	CreatureID      string `json:"creature_id,omitempty"`
	ExpGained       int64  `json:"exp_gained"`
	LevelsGained    int32  `json:"levels_gained"`
	HappinessGained int32  `json:"happiness_gained"`
	ExpToNext       int64  `json:"exp_to_next,omitempty"`
}

type prizeResponse struct {
	SpeciesID      string `json:"species_id"`
	Name           string `json:"name"`
	CreatureID     string `json:"creature_id,omitempty"`
	AlreadyClaimed bool   `json:"already_claimed"`
}

type rewardsResponse struct {
	Coins      int64          `json:"coins"`
	TrainerExp int64          `json:"trainer_exp"`
	Prize      *prizeResponse `json:"prize,omitempty"`
}

type resolveBattleResponse struct {
	Creature        *creatureResultResponse `json:"creature"`
	Rewards         *rewardsResponse        `json:"rewards"`
	NextTrainerID   string                  `json:"next_trainer_id,omitempty"`
	AlreadyResolved bool                    `json:"already_resolved"`
}

func toSearchResponse(output *encounter.SearchOutput) searchResponse {
	resp := searchResponse{
		EncounterID: output.EncounterID,
		Progress:    toProgressResponse(output.Progress),
	}
	if output.Creature != nil {
		resp.Creature = &creatureResponse{
			SpeciesID: output.Creature.SpeciesID,
			Name:      output.Creature.Name,
			Level:     output.Creature.Level,
			HP:        output.Creature.HP,
			MaxHP:     output.Creature.MaxHP,
		}
	}
	if output.Item != nil {
		resp.Item = &itemDropResponse{
			ItemID:   output.Item.ItemID,
			Name:     output.Item.Name,
			Quantity: output.Item.Quantity,
		}
	}
	return resp
}

func toProgressResponse(p *encounter.MapProgress) *mapProgressResponse {
	if p == nil {
		return nil
	}
	return &mapProgressResponse{
		TotalSearches: p.TotalSearches,
		MapExp:        p.MapExp,
		MapLevel:      p.MapLevel,
		ExpToNext:     p.ExpToNext,
	}
}

func toMapStateResponse(output *encounter.GetMapStateOutput) mapStateResponse {
	resp := mapStateResponse{
		MapID:    output.MapID,
		Name:     output.Name,
		Locked:   output.Locked,
		Progress: toProgressResponse(output.Progress),
	}
	if output.Unlock != nil {
		resp.Unlock = &unlockResponse{
			RequiredSearches: output.Unlock.RequiredSearches,
			CurrentSearches:  output.Unlock.CurrentSearches,
			SourceMapID:      output.Unlock.SourceMapID,
			SourceMapName:    output.Unlock.SourceMapName,
		}
	}
	return resp
}

func toCatchResponse(output *encounter.CatchOutput) catchResponse {
	resp := catchResponse{
		Caught:  output.Caught,
		Chance:  output.Chance,
		Message: output.Message,
	}
	if output.Creature != nil {
		resp.Creature = &caughtCreatureResponse{
			CreatureID: output.Creature.ID,
			SpeciesID:  output.Creature.SpeciesID,
			Name:       output.Creature.Name,
			Level:      output.Creature.Level,
		}
	}
	return resp
}

func toBattleCreatureResponse(v *battle.BattleCreatureView) *creatureResponse {
	if v == nil {
		return nil
	}
	return &creatureResponse{
		SpeciesID: v.SpeciesID,
		Name:      v.Name,
		Level:     v.Level,
		HP:        v.HP,
		MaxHP:     v.MaxHP,
	}
}

func toStartBattleResponse(output *battle.StartBattleOutput) startBattleResponse {
	team := make([]creatureResponse, len(output.Team))
	for i := range output.Team {
		team[i] = *toBattleCreatureResponse(&output.Team[i])
	}
	return startBattleResponse{
		BattleID:    output.BattleID,
		TrainerID:   output.TrainerID,
		TrainerName: output.TrainerName,
		Team:        team,
		Opponent:    toBattleCreatureResponse(output.Opponent),
	}
}

func toBattleAttackResponse(output *battle.AttackOutput) battleAttackResponse {
	resp := battleAttackResponse{
		Damage:   output.Damage,
		HP:       output.HP,
		MaxHP:    output.MaxHP,
		Fainted:  output.Fainted,
		Next:     toBattleCreatureResponse(output.Next),
		Complete: output.Complete,
		Message:  output.Message,
	}
	if output.Player != nil {
		resp.Player = &playerStateResponse{
			CreatureID: output.Player.CreatureID,
			MP:         output.Player.MP,
			MaxMP:      output.Player.MaxMP,
		}
	}
	return resp
}

func toResolveBattleResponse(output *battle.ResolveBattleOutput) resolveBattleResponse {
	resp := resolveBattleResponse{
		NextTrainerID:   output.NextTrainerID,
		AlreadyResolved: output.AlreadyResolved,
	}
	if output.Creature != nil {
		resp.Creature = &creatureResultResponse{
			CreatureID:      output.Creature.CreatureID,
			ExpGained:       output.Creature.ExpGained,
			LevelsGained:    output.Creature.LevelsGained,
			HappinessGained: output.Creature.HappinessGained,
			ExpToNext:       output.Creature.ExpToNext,
		}
	}
	if output.Rewards != nil {
		resp.Rewards = &rewardsResponse{
			Coins:      output.Rewards.Coins,
			TrainerExp: output.Rewards.TrainerExp,
		}
		if output.Rewards.Prize != nil {
			resp.Rewards.Prize = &prizeResponse{
				SpeciesID:      output.Rewards.Prize.SpeciesID,
				Name:           output.Rewards.Prize.Name,
				CreatureID:     output.Rewards.Prize.CreatureID,
				AlreadyClaimed: output.Rewards.Prize.AlreadyClaimed,
			}
		}
	}
	return resp
}
