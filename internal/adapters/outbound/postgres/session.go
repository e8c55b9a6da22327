package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var sessionFields = []string{
	"id",
	"kind",
	"title",
	"created_at",
	"updated_at",
}

var sessionMessageFields = []string{
	"id",
	"session_id",
	"role",
	"content",
	"reasoning",
	"images",
	"created_at",
}

var generatedImageFields = []string{
	"id",
	"session_id",
	"url",
	"prompt",
	"model",
	"size",
	"created_at",
}

// SessionRepository is a PostgreSQL implementation of domain.SessionRepository.
type SessionRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *sql.DB) SessionRepository {
	return SessionRepository{
		db: db,
		sb: newStatementBuilder(db),
	}
}

// CreateSession creates a session with an auto-generated ID and timestamps.
func (r SessionRepository) CreateSession(ctx context.Context, kind domain.SessionKind, title string) (domain.Session, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session.kind", string(kind)),
	))
	defer span.End()

	now := time.Now().UTC()
	input := domain.Session{
		ID:        uuid.New(),
		Kind:      kind,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := input.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, err
	}

	var created domain.Session
	err := r.sb.
		Insert("sessions").
		Columns(sessionFields...).
		Values(
			input.ID,
			input.Kind,
			input.Title,
			input.CreatedAt,
			input.UpdatedAt,
		).
		Suffix("RETURNING id, kind, title, created_at, updated_at").
		QueryRowContext(spanCtx).
		Scan(
			&created.ID,
			&created.Kind,
			&created.Title,
			&created.CreatedAt,
			&created.UpdatedAt,
		)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, err
	}

	return created, nil
}

// GetSession retrieves a session by ID.
func (r SessionRepository) GetSession(ctx context.Context, id uuid.UUID) (domain.Session, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var session domain.Session
	err := r.sb.
		Select(sessionFields...).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&session.ID,
			&session.Kind,
			&session.Title,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
	if err == sql.ErrNoRows {
		return domain.Session{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Session{}, false, err
	}

	return session, true, nil
}

// ListSessions returns every session, most recently updated first.
func (r SessionRepository) ListSessions(ctx context.Context) ([]domain.Session, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := r.sb.
		Select(sessionFields...).
		From("sessions").
		OrderBy("updated_at DESC", "created_at DESC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	sessions := []domain.Session{}
	for rows.Next() {
		var session domain.Session
		err := rows.Scan(
			&session.ID,
			&session.Kind,
			&session.Title,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return sessions, nil
}

// RenameSession updates the title and modification time of a session.
func (r SessionRepository) RenameSession(ctx context.Context, id uuid.UUID, title string, updatedAt time.Time) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Update("sessions").
		Set("title", title).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// DeleteSession deletes a session. Messages and images go with it through
// ON DELETE CASCADE.
func (r SessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := r.sb.
		Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// AppendMessages inserts messages in order and bumps the session's updated_at
// in the same transaction.
func (r SessionRepository) AppendMessages(ctx context.Context, id uuid.UUID, messages []domain.SessionMessage) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("messages.count", len(messages)),
	))
	defer span.End()

	if len(messages) == 0 {
		return nil
	}

	err := runInTx(spanCtx, r.db, func(sb squirrel.StatementBuilderType) error {
		insert := sb.
			Insert("session_messages").
			Columns(sessionMessageFields...)
		var lastAt time.Time
		for _, m := range messages {
			images, err := marshalImages(m.Images)
			if err != nil {
				return err
			}
			insert = insert.Values(
				m.ID,
				id,
				m.Role,
				m.Content,
				m.Reasoning,
				images,
				m.CreatedAt,
			)
			if m.CreatedAt.After(lastAt) {
				lastAt = m.CreatedAt
			}
		}
		if _, err := insert.ExecContext(spanCtx); err != nil {
			return err
		}
		return touchSession(spanCtx, sb, id, lastAt)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// ListMessages returns the messages of a session in the order they were appended.
func (r SessionRepository) ListMessages(ctx context.Context, id uuid.UUID) ([]domain.SessionMessage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := r.sb.
		Select(sessionMessageFields...).
		From("session_messages").
		Where(squirrel.Eq{"session_id": id}).
		OrderBy("created_at ASC", "seq ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	messages := []domain.SessionMessage{}
	for rows.Next() {
		var (
			m      domain.SessionMessage
			images []byte
		)
		err := rows.Scan(
			&m.ID,
			&m.SessionID,
			&m.Role,
			&m.Content,
			&m.Reasoning,
			&images,
			&m.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		m.Images, err = unmarshalImages(images)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return messages, nil
}

// AppendImage adds a generated image to a session gallery and bumps the
// session's updated_at in the same transaction.
func (r SessionRepository) AppendImage(ctx context.Context, record domain.GeneratedImageRecord) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session.id", record.SessionID.String()),
	))
	defer span.End()

	err := runInTx(spanCtx, r.db, func(sb squirrel.StatementBuilderType) error {
		_, err := sb.
			Insert("generated_images").
			Columns(generatedImageFields...).
			Values(
				record.ID,
				record.SessionID,
				record.URL,
				record.Prompt,
				record.Model,
				record.Size,
				record.CreatedAt,
			).
			ExecContext(spanCtx)
		if err != nil {
			return err
		}
		return touchSession(spanCtx, sb, record.SessionID, record.CreatedAt)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// ListImages returns the gallery of a session, newest first.
func (r SessionRepository) ListImages(ctx context.Context, id uuid.UUID) ([]domain.GeneratedImageRecord, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := r.sb.
		Select(generatedImageFields...).
		From("generated_images").
		Where(squirrel.Eq{"session_id": id}).
		OrderBy("created_at DESC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	images := []domain.GeneratedImageRecord{}
	for rows.Next() {
		var img domain.GeneratedImageRecord
		err := rows.Scan(
			&img.ID,
			&img.SessionID,
			&img.URL,
			&img.Prompt,
			&img.Model,
			&img.Size,
			&img.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return images, nil
}

func touchSession(ctx context.Context, sb squirrel.StatementBuilderType, id uuid.UUID, updatedAt time.Time) error {
	_, err := sb.
		Update("sessions").
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ExecContext(ctx)
	return err
}

func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("encode message images: %w", err)
	}
	return data, nil
}

func unmarshalImages(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var images []string
	if err := json.Unmarshal(data, &images); err != nil {
		return nil, fmt.Errorf("decode message images: %w", err)
	}
	if len(images) == 0 {
		return nil, nil
	}
	return images, nil
}

// InitSessionRepository is a Symbiont initializer for SessionRepository.
type InitSessionRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the SessionRepository in the dependency container.
func (i InitSessionRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SessionRepository](NewSessionRepository(i.DB))
	return ctx, nil
}
