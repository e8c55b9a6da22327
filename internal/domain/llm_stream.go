package domain

import "strings"

// StreamIncrementKind tags a piece of streamed model output.
type StreamIncrementKind string

const (
	StreamIncrementKind_Reasoning StreamIncrementKind = "reasoning"
	StreamIncrementKind_Answer    StreamIncrementKind = "answer"
)

// StreamIncrement is one ordered piece of reasoning or answer text.
// Once an answer increment is seen the model is not expected to return to
// reasoning, but this is not enforced.
type StreamIncrement struct {
	Kind StreamIncrementKind
	Text string
}

// ReasoningIncrement builds a reasoning increment.
func ReasoningIncrement(text string) StreamIncrement {
	return StreamIncrement{Kind: StreamIncrementKind_Reasoning, Text: text}
}

// AnswerIncrement builds an answer increment.
func AnswerIncrement(text string) StreamIncrement {
	return StreamIncrement{Kind: StreamIncrementKind_Answer, Text: text}
}

// StreamIncrementCallback is called for each increment in arrival order.
// Returning an error aborts the stream.
type StreamIncrementCallback func(inc StreamIncrement) error

// StreamTranscript accumulates increments into full reasoning and answer
// strings. The zero value is ready to use; it must not be copied after use.
type StreamTranscript struct {
	reasoning strings.Builder
	answer    strings.Builder
}

// Apply appends inc to the matching text.
func (t *StreamTranscript) Apply(inc StreamIncrement) {
	switch inc.Kind {
	case StreamIncrementKind_Reasoning:
		t.reasoning.WriteString(inc.Text)
	case StreamIncrementKind_Answer:
		t.answer.WriteString(inc.Text)
	}
}

// Reasoning returns the reasoning text received so far.
func (t *StreamTranscript) Reasoning() string {
	return t.reasoning.String()
}

// Answer returns the answer text received so far.
func (t *StreamTranscript) Answer() string {
	return t.answer.String()
}
