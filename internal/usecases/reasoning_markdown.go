package usecases

import (
	"strings"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
)

const (
	reasoningHeading   = "> **Thinking Process:**\n> "
	reasoningSeparator = "\n\n---\n\n"
)

// ReasoningMarkdown renders stream increments as one markdown text: reasoning
// as a block quote under a heading, then a horizontal rule, then the answer.
// The heading and the rule are each written at most once.
type ReasoningMarkdown struct {
	emit             func(text string) error
	startedReasoning bool
	endedReasoning   bool
}

// NewReasoningMarkdown creates a renderer writing text to emit.
func NewReasoningMarkdown(emit func(text string) error) *ReasoningMarkdown {
	return &ReasoningMarkdown{emit: emit}
}

// Write renders one increment.
func (m *ReasoningMarkdown) Write(inc domain.StreamIncrement) error {
	var b strings.Builder
	switch inc.Kind {
	case domain.StreamIncrementKind_Reasoning:
		if !m.startedReasoning {
			b.WriteString(reasoningHeading)
			m.startedReasoning = true
		}
		b.WriteString(strings.ReplaceAll(inc.Text, "\n", "\n> "))
	case domain.StreamIncrementKind_Answer:
		if m.startedReasoning && !m.endedReasoning {
			b.WriteString(reasoningSeparator)
			m.endedReasoning = true
		}
		b.WriteString(inc.Text)
	default:
		return nil
	}
	return m.emit(b.String())
}
