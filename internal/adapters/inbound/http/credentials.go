package http

import (
	"net/http"
	"strings"
)

// bearerCredential extracts the inference API key from the Authorization
// header. An absent or malformed header yields an empty credential, which the
// use cases reject before any upstream call.
func bearerCredential(r *http.Request) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
