package errors

import "net/http"

// Code represents an error code
type Code string

// Transport-agnostic error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

// Game error codes. These are precondition failures the client must be able
// to tell apart, so they carry their own codes instead of sharing
// FAILED_PRECONDITION.
const (
	CodeMapLocked              Code = "MAP_LOCKED"
	CodeEncounterAlreadyActive Code = "ENCOUNTER_ALREADY_ACTIVE"
	CodeNoActiveEncounter      Code = "NO_ACTIVE_ENCOUNTER"
	CodeBattleNotComplete      Code = "BATTLE_NOT_COMPLETE"
	CodeBattleAlreadyComplete  Code = "BATTLE_ALREADY_COMPLETE"
	CodeInvalidCaptureTool     Code = "INVALID_CAPTURE_TOOL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument, CodeOutOfRange, CodeInvalidCaptureTool:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeAborted:
		return http.StatusConflict
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeResourceExhausted:
		return http.StatusTooManyRequests
	case CodeFailedPrecondition, CodeBattleNotComplete:
		return http.StatusPreconditionFailed
	case CodeMapLocked:
		return http.StatusLocked
	case CodeEncounterAlreadyActive, CodeNoActiveEncounter, CodeBattleAlreadyComplete:
		return http.StatusConflict
	case CodeUnimplemented:
		return http.StatusNotImplemented
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
