package domain

import "strings"

// ChatKind selects the endpoint flavour for a chat completion.
type ChatKind string

const (
	ChatKind_Chat   ChatKind = "chat"
	ChatKind_Vision ChatKind = "vision"
)

// LLMChatMessage represents a message in a chat completion request.
// Images holds image URLs or data URLs and is only used by vision requests.
type LLMChatMessage struct {
	Role    ChatRole
	Content string
	Images  []string
}

// Validate checks the message role and that it carries some content.
// Assistant turns may be empty: a reasoning-only answer is recorded without text.
func (m LLMChatMessage) Validate() error {
	if !m.Role.Valid() {
		return NewValidationErr("invalid chat role: " + string(m.Role))
	}
	if m.Role == ChatRole_Assistant {
		return nil
	}
	if strings.TrimSpace(m.Content) == "" && len(m.Images) == 0 {
		return NewValidationErr("chat message content cannot be empty")
	}
	return nil
}

// LLMChatRequest is a provider-agnostic streaming chat completion request.
// Mechanism is resolved from the model catalogue by the caller.
type LLMChatRequest struct {
	Kind            ChatKind
	Model           string
	Messages        []LLMChatMessage
	EnableReasoning bool
	Mechanism       ReasoningMechanism
}

// Validate checks that the request can be sent upstream.
func (r LLMChatRequest) Validate() error {
	if r.Model == "" {
		return NewValidationErr("model cannot be empty")
	}
	if len(r.Messages) == 0 {
		return NewValidationErr("messages cannot be empty")
	}
	for _, m := range r.Messages {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}
