package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerCredential(t *testing.T) {
	tests := map[string]struct {
		header   string
		expected string
	}{
		"bearer":           {header: "Bearer ms-123", expected: "ms-123"},
		"case-insensitive": {header: "bearer ms-123", expected: "ms-123"},
		"padded":           {header: "  Bearer   ms-123  ", expected: "ms-123"},
		"missing":          {header: "", expected: ""},
		"other-scheme":     {header: "Basic dXNlcjpwYXNz", expected: ""},
		"scheme-only":      {header: "Bearer", expected: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.expected, bearerCredential(req))
		})
	}
}
