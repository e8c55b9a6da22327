package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamTranscript_Apply(t *testing.T) {
	var tr StreamTranscript
	for _, inc := range []StreamIncrement{
		ReasoningIncrement("let me "),
		ReasoningIncrement("think"),
		AnswerIncrement("The answer"),
		AnswerIncrement(" is 4."),
		{Kind: "unknown", Text: "ignored"},
	} {
		tr.Apply(inc)
	}

	assert.Equal(t, "let me think", tr.Reasoning())
	assert.Equal(t, "The answer is 4.", tr.Answer())
}

func TestStreamTranscript_ManyIncrements(t *testing.T) {
	var tr StreamTranscript
	for range 10000 {
		tr.Apply(ReasoningIncrement("ab"))
	}
	tr.Apply(AnswerIncrement("done"))

	assert.Len(t, tr.Reasoning(), 20000)
	assert.Equal(t, "done", tr.Answer())
}
