// Package v1alpha1 exposes the engine over JSON HTTP. Routes are registered
// on a standard mux with method+path patterns; the error payload carries the
// transport-agnostic code so clients can branch without parsing messages.
package v1alpha1

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/wildgrove/encounter-api/internal/errors"
	"github.com/wildgrove/encounter-api/internal/orchestrators/battle"
	"github.com/wildgrove/encounter-api/internal/orchestrators/encounter"
)

// Config holds the dependencies for the API handler
type Config struct {
	EncounterService encounter.Service
	BattleService    battle.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
	}
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}

	return vb.Build()
}

// Handler routes API requests to the orchestrators
type Handler struct {
	encounters encounter.Service
	battles    battle.Service
}

// NewHandler creates a new API handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		encounters: cfg.EncounterService,
		battles:    cfg.BattleService,
	}, nil
}

// Register attaches all v1alpha1 routes to the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/players/{playerID}/search", h.search)
	mux.HandleFunc("GET /v1alpha1/players/{playerID}/maps/{mapSlug}", h.getMapState)
	mux.HandleFunc("POST /v1alpha1/players/{playerID}/encounters/{encounterID}/attack", h.attack)
	mux.HandleFunc("POST /v1alpha1/players/{playerID}/encounters/{encounterID}/catch", h.catch)
	mux.HandleFunc("POST /v1alpha1/players/{playerID}/encounters/{encounterID}/run", h.run)
	mux.HandleFunc("POST /v1alpha1/players/{playerID}/battles", h.startBattle)
	mux.HandleFunc("POST /v1alpha1/players/{playerID}/battles/{battleID}/attack", h.battleAttack)
	mux.HandleFunc("POST /v1alpha1/players/{playerID}/battles/resolve", h.resolveBattle)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.encounters.Search(r.Context(), &encounter.SearchInput{
		PlayerID: r.PathValue("playerID"),
		MapSlug:  req.MapSlug,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSearchResponse(output))
}

func (h *Handler) getMapState(w http.ResponseWriter, r *http.Request) {
	output, err := h.encounters.GetMapState(r.Context(), &encounter.GetMapStateInput{
		PlayerID: r.PathValue("playerID"),
		MapSlug:  r.PathValue("mapSlug"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMapStateResponse(output))
}

func (h *Handler) attack(w http.ResponseWriter, r *http.Request) {
	output, err := h.encounters.Attack(r.Context(), &encounter.AttackInput{
		PlayerID:    r.PathValue("playerID"),
		EncounterID: r.PathValue("encounterID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, attackResponse{
		Damage:   output.Damage,
		HP:       output.HP,
		MaxHP:    output.MaxHP,
		Defeated: output.Defeated,
		Message:  output.Message,
	})
}

// catch serves both the bare attempt and the tool-assisted one; the tool ID
// is an optional body field
func (h *Handler) catch(w http.ResponseWriter, r *http.Request) {
	var req catchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	playerID := r.PathValue("playerID")
	encounterID := r.PathValue("encounterID")

	var output *encounter.CatchOutput
	var err error
	if req.ToolID == "" {
		output, err = h.encounters.Catch(r.Context(), &encounter.CatchInput{
			PlayerID:    playerID,
			EncounterID: encounterID,
		})
	} else {
		output, err = h.encounters.UseCaptureTool(r.Context(), &encounter.UseCaptureToolInput{
			PlayerID:    playerID,
			EncounterID: encounterID,
			ToolID:      req.ToolID,
		})
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCatchResponse(output))
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	output, err := h.encounters.Run(r.Context(), &encounter.RunInput{
		PlayerID:    r.PathValue("playerID"),
		EncounterID: r.PathValue("encounterID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, runResponse{Message: output.Message})
}

func (h *Handler) startBattle(w http.ResponseWriter, r *http.Request) {
	var req startBattleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.battles.StartBattle(r.Context(), &battle.StartBattleInput{
		PlayerID:  r.PathValue("playerID"),
		TrainerID: req.TrainerID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStartBattleResponse(output))
}

func (h *Handler) battleAttack(w http.ResponseWriter, r *http.Request) {
	var req battleAttackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.battles.Attack(r.Context(), &battle.AttackInput{
		PlayerID: r.PathValue("playerID"),
		BattleID: r.PathValue("battleID"),
		MoveID:   req.MoveID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBattleAttackResponse(output))
}

func (h *Handler) resolveBattle(w http.ResponseWriter, r *http.Request) {
	var req resolveBattleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.battles.ResolveBattle(r.Context(), &battle.ResolveBattleInput{
		PlayerID:  r.PathValue("playerID"),
		TrainerID: req.TrainerID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResolveBattleResponse(output))
}

// decodeBody fills v from the request body; an empty body leaves v zero
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && err != io.EOF {
		writeError(w, r, errors.InvalidArgument("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}

	writeJSON(w, status, errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
	})
}
