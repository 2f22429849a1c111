// Package errors provides the structured error handling used across the
// encounter API.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Dedicated codes for game preconditions (MAP_LOCKED, NO_ACTIVE_ENCOUNTER, ...)
//   - HTTP status mapping for the handler layer
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("map not found")
//	err := errors.MapLockedf("map %s requires %d searches on %s", slug, need, src)
//
// Adding metadata:
//
//	err := errors.NoActiveEncounter("no active encounter").
//	    WithMeta("player_id", playerID).
//	    WithMeta("encounter_id", encounterID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get map progress")
//	}
//
// Storage failures keep their own codes so callers can distinguish a retryable
// backend outage (UNAVAILABLE/INTERNAL) from a domain precondition failure.
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsEncounterAlreadyActive(err) {
//	    // Reject the new search, keep the existing session
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	status := code.HTTPStatus()
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_id", input.PlayerID, vb)
//	errors.ValidateRange("capture_rate", int(rate), 1, 255, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
