package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/eventdesk/agendahub/internal/assets"
	"github.com/eventdesk/agendahub/internal/core"
	"github.com/eventdesk/agendahub/internal/logging"
	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/store"
	"github.com/eventdesk/agendahub/internal/workbook"
)

// writeJSON encodes v as the response body. Encoding errors are logged
// only, since the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError sends the standard error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// decodeJSON reads the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// respondError maps domain errors to HTTP statuses. Unrecognized errors
// become 500s with a generic message; the real error goes to the log.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		missingSheet *workbook.MissingSheetError
		missingCols  *workbook.MissingColumnsError
		fetchErr     *workbook.FetchError
		missingField *core.MissingFieldError
	)

	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "resource not found")

	case errors.Is(err, core.ErrTooManyImports):
		w.Header().Set("Retry-After", "30")
		writeError(w, http.StatusTooManyRequests, err.Error())

	case errors.Is(err, core.ErrAlreadyReviewed):
		writeError(w, http.StatusConflict, err.Error())

	case errors.As(err, &missingSheet), errors.As(err, &missingCols):
		writeError(w, http.StatusUnprocessableEntity, err.Error())

	case errors.As(err, &fetchErr):
		writeError(w, http.StatusBadGateway, err.Error())

	case errors.As(err, &missingField):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, assets.ErrUnsupportedType):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, assets.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())

	default:
		logging.FromContext(r.Context()).Error("request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
