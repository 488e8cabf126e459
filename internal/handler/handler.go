package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"agromart/internal/middleware"
	"agromart/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError coerces err into a domain error (anything unclassified becomes
// an unexpected error carrying defaultMessage) and writes it.
func writeError(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, err error, defaultMessage string) {
	apiErr := model.Wrap(err, defaultMessage)

	evt := logger.Warn()
	if apiErr.Status >= http.StatusInternalServerError {
		evt = logger.Error().Err(apiErr.Unwrap())
	}
	evt.Str("message", apiErr.Message).Int("status", apiErr.Status).Msg("request failed")

	writeJSON(w, apiErr.Status, ErrorBody{
		Message:   apiErr.Message,
		Detail:    apiErr.Detail,
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
}

// parseID extracts a numeric path variable. An unparsable id is reported as
// not-found with the entity-specific message.
func parseID(r *http.Request, name, errMessage string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, model.NotFound(errMessage)
	}
	return id, nil
}

// decodePayload reads the request body into dst. It reports empty=true for
// an absent body or a bare {} so callers can distinguish "nothing sent" from
// "wrong fields sent"; unrecognised fields are dropped by the decode.
func decodePayload(r *http.Request, dst interface{}) (empty bool, err error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return false, err
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return true, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return false, err
	}
	if len(probe) == 0 {
		return true, nil
	}

	return false, json.Unmarshal(body, dst)
}
