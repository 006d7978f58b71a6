package api

import (
	"errors"
	"net/http"

	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

var errBadRequest = errors.New("bad request")

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrSnapshotNotFound), errors.Is(err, shopping.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrIndexOutOfRange),
		errors.Is(err, types.ErrEditInProgress),
		errors.Is(err, types.ErrNotEditing):
		return http.StatusConflict
	case errors.Is(err, types.ErrInvalidCategory),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrEmptyText),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), struct {
		Error string `json:"error"`
	}{err.Error()})
}
