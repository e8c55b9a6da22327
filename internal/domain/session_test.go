package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTitleFrom(t *testing.T) {
	tests := map[string]struct {
		text     string
		expected string
	}{
		"short":     {"  A red fox  ", "A red fox"},
		"blank":     {"   ", "New Session"},
		"truncated": {strings.Repeat("a", 40), strings.Repeat("a", MaxSessionTitleLength)},
		"multibyte": {strings.Repeat("狐", 35), strings.Repeat("狐", MaxSessionTitleLength)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SessionTitleFrom(tt.text))
		})
	}
}

func TestSession_Validate(t *testing.T) {
	assert.NoError(t, Session{Kind: SessionKind_Chat, Title: "t"}.Validate())
	assert.Equal(t, NewValidationErr("session title cannot be empty"), Session{Kind: SessionKind_Chat}.Validate())
	assert.Equal(t, NewValidationErr("invalid session kind: audio"), Session{Kind: "audio", Title: "t"}.Validate())
}
