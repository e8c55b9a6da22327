package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// SessionDetails is a session with its messages or gallery, depending on its kind.
type SessionDetails struct {
	Session  domain.Session
	Messages []domain.SessionMessage
	Images   []domain.GeneratedImageRecord
}

// ManageSessions defines the interface for the session management use cases
type ManageSessions interface {
	Create(ctx context.Context, kind domain.SessionKind, title string) (domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (SessionDetails, error)
	Rename(ctx context.Context, id uuid.UUID, title string) (domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AppendMessages(ctx context.Context, id uuid.UUID, messages []domain.SessionMessage) error
	ListImages(ctx context.Context, id uuid.UUID) ([]domain.GeneratedImageRecord, error)
}

// ManageSessionsImpl is the implementation of the ManageSessions use cases
type ManageSessionsImpl struct {
	repo         domain.SessionRepository
	timeProvider domain.CurrentTimeProvider
}

// NewManageSessionsImpl creates a new instance of ManageSessionsImpl
func NewManageSessionsImpl(repo domain.SessionRepository, timeProvider domain.CurrentTimeProvider) ManageSessionsImpl {
	return ManageSessionsImpl{repo: repo, timeProvider: timeProvider}
}

// Create creates an empty session. A blank title becomes "New Session".
func (uc ManageSessionsImpl) Create(ctx context.Context, kind domain.SessionKind, title string) (domain.Session, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !kind.Valid() {
		err := domain.NewValidationErr(fmt.Sprintf("invalid session kind: %s", kind))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Session{}, err
	}
	session, err := uc.repo.CreateSession(spanCtx, kind, domain.SessionTitleFrom(title))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, err
	}
	return session, nil
}

// List returns all sessions, most recently updated first.
func (uc ManageSessionsImpl) List(ctx context.Context) ([]domain.Session, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	sessions, err := uc.repo.ListSessions(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return sessions, nil
}

// Get returns the session with its content.
func (uc ManageSessionsImpl) Get(ctx context.Context, id uuid.UUID) (SessionDetails, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	details, err := uc.get(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return SessionDetails{}, err
	}
	return details, nil
}

func (uc ManageSessionsImpl) get(ctx context.Context, id uuid.UUID) (SessionDetails, error) {
	session, err := uc.mustGet(ctx, id)
	if err != nil {
		return SessionDetails{}, err
	}
	details := SessionDetails{Session: session}
	if session.Kind == domain.SessionKind_Image {
		details.Images, err = uc.repo.ListImages(ctx, id)
	} else {
		details.Messages, err = uc.repo.ListMessages(ctx, id)
	}
	if err != nil {
		return SessionDetails{}, err
	}
	return details, nil
}

// Rename changes the session title.
func (uc ManageSessionsImpl) Rename(ctx context.Context, id uuid.UUID, title string) (domain.Session, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	session, err := uc.rename(spanCtx, id, title)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, err
	}
	return session, nil
}

func (uc ManageSessionsImpl) rename(ctx context.Context, id uuid.UUID, title string) (domain.Session, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Session{}, domain.NewValidationErr("session title cannot be empty")
	}
	session, err := uc.mustGet(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	session.Title = title
	session.UpdatedAt = uc.timeProvider.Now()
	if err := uc.repo.RenameSession(ctx, id, session.Title, session.UpdatedAt); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Delete removes the session and its content.
func (uc ManageSessionsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := uc.mustGet(spanCtx, id)
	if err == nil {
		err = uc.repo.DeleteSession(spanCtx, id)
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// AppendMessages stores messages produced outside of a streaming call.
func (uc ManageSessionsImpl) AppendMessages(ctx context.Context, id uuid.UUID, messages []domain.SessionMessage) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := uc.appendMessages(spanCtx, id, messages)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (uc ManageSessionsImpl) appendMessages(ctx context.Context, id uuid.UUID, messages []domain.SessionMessage) error {
	if len(messages) == 0 {
		return domain.NewValidationErr("messages cannot be empty")
	}
	session, err := uc.mustGet(ctx, id)
	if err != nil {
		return err
	}
	if session.Kind == domain.SessionKind_Image {
		return domain.NewValidationErr("image sessions do not hold messages")
	}
	now := uc.timeProvider.Now()
	for i := range messages {
		if !messages[i].Role.Valid() {
			return domain.NewValidationErr(fmt.Sprintf("invalid chat role: %s", messages[i].Role))
		}
		if messages[i].ID == uuid.Nil {
			messages[i].ID = uuid.New()
		}
		messages[i].SessionID = id
		messages[i].CreatedAt = now
	}
	return uc.repo.AppendMessages(ctx, id, messages)
}

// ListImages returns the gallery of an image session.
func (uc ManageSessionsImpl) ListImages(ctx context.Context, id uuid.UUID) ([]domain.GeneratedImageRecord, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	images, err := uc.listImages(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return images, nil
}

func (uc ManageSessionsImpl) listImages(ctx context.Context, id uuid.UUID) ([]domain.GeneratedImageRecord, error) {
	if _, err := uc.mustGet(ctx, id); err != nil {
		return nil, err
	}
	return uc.repo.ListImages(ctx, id)
}

func (uc ManageSessionsImpl) mustGet(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	session, found, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	if !found {
		return domain.Session{}, domain.NewNotFoundErr(fmt.Sprintf("session %s not found", id))
	}
	return session, nil
}

// InitManageSessions is the initializer for the ManageSessions use cases
type InitManageSessions struct {
	Repo         domain.SessionRepository   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the ManageSessions use cases in the dependency container
func (i InitManageSessions) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ManageSessions](NewManageSessionsImpl(i.Repo, i.TimeProvider))
	return ctx, nil
}
