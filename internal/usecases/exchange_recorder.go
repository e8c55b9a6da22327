package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/google/uuid"
)

// exchangeRecorder appends a completed user/assistant exchange to a session.
// A recorder without a session is a no-op.
type exchangeRecorder struct {
	repo         domain.SessionRepository
	timeProvider domain.CurrentTimeProvider
	sessionID    *uuid.UUID
}

// newExchangeRecorder checks that the session exists before anything is streamed.
func newExchangeRecorder(ctx context.Context, repo domain.SessionRepository, timeProvider domain.CurrentTimeProvider, sessionID *uuid.UUID) (exchangeRecorder, error) {
	r := exchangeRecorder{repo: repo, timeProvider: timeProvider, sessionID: sessionID}
	if sessionID == nil {
		return r, nil
	}
	_, found, err := repo.GetSession(ctx, *sessionID)
	if err != nil {
		return r, err
	}
	if !found {
		return r, domain.NewNotFoundErr(fmt.Sprintf("session %s not found", sessionID))
	}
	return r, nil
}

func (r exchangeRecorder) record(ctx context.Context, user *domain.LLMChatMessage, answer, reasoning string) error {
	if r.sessionID == nil {
		return nil
	}
	now := r.timeProvider.Now()

	var messages []domain.SessionMessage
	if user != nil {
		messages = append(messages, domain.SessionMessage{
			ID:        uuid.New(),
			SessionID: *r.sessionID,
			Role:      domain.ChatRole_User,
			Content:   user.Content,
			Images:    user.Images,
			CreatedAt: now,
		})
	}
	messages = append(messages, domain.SessionMessage{
		ID:        uuid.New(),
		SessionID: *r.sessionID,
		Role:      domain.ChatRole_Assistant,
		Content:   answer,
		Reasoning: reasoning,
		CreatedAt: now,
	})
	return r.repo.AppendMessages(ctx, *r.sessionID, messages)
}

func lastUserMessage(messages []domain.LLMChatMessage) *domain.LLMChatMessage {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.ChatRole_User {
			return &messages[i]
		}
	}
	return nil
}
