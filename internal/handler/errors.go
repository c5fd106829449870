package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/handler/gen"
)

// Error codes used in gen.ErrorDetail.Code.
const (
	CodeInvalidArgument = "invalid_argument"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeTooLarge        = "request_too_large"
	CodeInternal        = "internal_error"
)

// invalidArgumentBody returns an ErrorResponse for a domain.ErrInvalidArgument failure.
func invalidArgumentBody(err error) gen.ErrorResponse {
	return errorBody(CodeInvalidArgument, unwrapMessage(err, domain.ErrInvalidArgument))
}

// notFoundBody returns an ErrorResponse for a missing resource.
func notFoundBody(err error) gen.ErrorResponse {
	return errorBody(CodeNotFound, unwrapMessage(err, domain.ErrNotFound))
}

// conflictBody returns an ErrorResponse for an action refused by dependent state.
func conflictBody(err error) gen.ErrorResponse {
	return errorBody(CodeConflict, unwrapMessage(err, domain.ErrConflict))
}

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// WriteError writes an ErrorResponse with the given status outside any
// generated response type, e.g. from middleware or binding hooks.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody(code, message))
}

// requestErrorHandler answers path, query and body binding failures with 400,
// or 413 when the body exceeded the http.MaxBytesReader limit.
func requestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteError(w, http.StatusRequestEntityTooLarge, CodeTooLarge, "request body too large")
		return
	}
	WriteError(w, http.StatusBadRequest, CodeInvalidArgument, err.Error())
}

// unwrapMessage extracts the human-readable part that follows the sentinel in
// a wrapped error, e.g.
// "service.X: invalid argument: the trip does not exist" → "the trip does not exist".
// Errors without a message after the sentinel return the sentinel text.
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if !errors.Is(err, sentinel) {
		return msg
	}
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 && len(msg) > i+len(marker) {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}
