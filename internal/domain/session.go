package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxSessionTitleLength bounds titles derived from prompts or first messages.
const MaxSessionTitleLength = 30

// SessionKind identifies which module a session belongs to.
type SessionKind string

const (
	SessionKind_Chat   SessionKind = "chat"
	SessionKind_Vision SessionKind = "vision"
	SessionKind_Image  SessionKind = "image"
)

// Valid reports whether k is a known session kind.
func (k SessionKind) Valid() bool {
	switch k {
	case SessionKind_Chat, SessionKind_Vision, SessionKind_Image:
		return true
	}
	return false
}

// Session is a persisted chat, vision or image workspace.
type Session struct {
	ID        uuid.UUID
	Kind      SessionKind
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks if the session has valid data.
func (s Session) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return NewValidationErr("session title cannot be empty")
	}
	if !s.Kind.Valid() {
		return NewValidationErr(fmt.Sprintf("invalid session kind: %s", s.Kind))
	}
	return nil
}

// SessionTitleFrom derives a session title from a prompt or first message.
func SessionTitleFrom(text string) string {
	title := strings.TrimSpace(text)
	if title == "" {
		return "New Session"
	}
	runes := []rune(title)
	if len(runes) > MaxSessionTitleLength {
		return string(runes[:MaxSessionTitleLength])
	}
	return title
}

// SessionMessage is a chat or vision message stored in a session.
type SessionMessage struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Role      ChatRole
	Content   string
	Reasoning string
	Images    []string
	CreatedAt time.Time
}

// SessionRepository is the explicit store for sessions and their content.
type SessionRepository interface {
	// CreateSession creates a new session of the given kind and title.
	CreateSession(ctx context.Context, kind SessionKind, title string) (Session, error)
	// GetSession returns the session with the given ID and whether it was found.
	GetSession(ctx context.Context, id uuid.UUID) (Session, bool, error)
	// ListSessions returns all sessions, most recently updated first.
	ListSessions(ctx context.Context) ([]Session, error)
	// RenameSession changes the title of a session.
	RenameSession(ctx context.Context, id uuid.UUID, title string, updatedAt time.Time) error
	// DeleteSession removes a session and its content.
	DeleteSession(ctx context.Context, id uuid.UUID) error
	// AppendMessages appends messages to a session in order.
	AppendMessages(ctx context.Context, id uuid.UUID, messages []SessionMessage) error
	// ListMessages returns the messages of a session in creation order.
	ListMessages(ctx context.Context, id uuid.UUID) ([]SessionMessage, error)
	// AppendImage adds a generated image to the session gallery.
	AppendImage(ctx context.Context, record GeneratedImageRecord) error
	// ListImages returns the session gallery, newest first.
	ListImages(ctx context.Context, id uuid.UUID) ([]GeneratedImageRecord, error)
}
