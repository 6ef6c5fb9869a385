package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"atelier-be/internal/logger"

	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; every API payload here is tiny.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, errorBody{Error: message})
}

// RespondInternal logs the real error and answers with a generic message.
func RespondInternal(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

var ErrInvalidJSON = errors.New("invalid request body")

// DecodeJSON reads a bounded JSON body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer io.Copy(io.Discard, r.Body)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return ErrInvalidJSON
	}
	return nil
}
