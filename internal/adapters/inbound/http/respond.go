package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	statusCode, resp := toError(err)
	respondJSON(w, statusCode, resp)
}

func respondInvalidBody(w http.ResponseWriter) {
	respondError(w, domain.NewValidationErr("invalid request body"))
}

// streamWriter delays the response headers until the first write so that a
// failure before any output can still be answered with a JSON error.
type streamWriter struct {
	w           http.ResponseWriter
	flusher     http.Flusher
	contentType string
	started     bool
}

func newStreamWriter(w http.ResponseWriter, contentType string) (*streamWriter, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}
	return &streamWriter{w: w, flusher: flusher, contentType: contentType}, true
}

func (s *streamWriter) write(p []byte) error {
	if !s.started {
		s.w.Header().Set("Content-Type", s.contentType)
		s.w.Header().Set("Cache-Control", "no-cache")
		s.w.Header().Set("Connection", "keep-alive")
		s.w.Header().Set("X-Content-Type-Options", "nosniff")
		s.w.WriteHeader(http.StatusOK)
		s.started = true
	}
	if _, err := s.w.Write(p); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// abort tears down a response whose status line is already sent. The client
// sees a truncated body instead of a clean end of stream.
func (s *streamWriter) abort() {
	panic(http.ErrAbortHandler)
}
