package modelrunner

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
)

var (
	dataPrefix = []byte("data: ")
	doneLine   = []byte("data: [DONE]")
)

// Transcoder turns an upstream server-sent event byte stream into ordered
// reasoning and answer increments. Chunk boundaries are arbitrary: a line
// is only parsed once its terminating newline has been seen, so the output
// does not depend on how the bytes were segmented.
type Transcoder struct {
	onIncrement domain.StreamIncrementCallback
	buf         []byte
}

// NewTranscoder creates a Transcoder delivering increments to onIncrement.
func NewTranscoder(onIncrement domain.StreamIncrementCallback) *Transcoder {
	return &Transcoder{onIncrement: onIncrement}
}

// Write consumes a chunk of the stream. Complete lines are parsed and the
// trailing partial line is kept for the next call. The only error returned
// is one produced by the increment callback.
func (t *Transcoder) Write(chunk []byte) (int, error) {
	t.buf = append(t.buf, chunk...)
	last := bytes.LastIndexByte(t.buf, '\n')
	if last < 0 {
		return len(chunk), nil
	}

	complete := t.buf[:last]
	rest := t.buf[last+1:]
	for len(complete) > 0 {
		var line []byte
		line, complete, _ = bytes.Cut(complete, []byte{'\n'})
		if err := t.line(line); err != nil {
			return len(chunk), err
		}
	}
	// a single "data:" line may be split over many chunks, keep the remainder only
	t.buf = append(t.buf[:0:0], rest...)
	return len(chunk), nil
}

// Pending returns the bytes of the incomplete trailing line.
func (t *Transcoder) Pending() []byte {
	return t.buf
}

func (t *Transcoder) line(raw []byte) error {
	line := bytes.TrimSpace(raw)
	if len(line) == 0 || bytes.Equal(line, doneLine) {
		return nil
	}
	if !bytes.HasPrefix(line, dataPrefix) {
		return nil
	}

	var chunk StreamChunk
	if err := json.Unmarshal(line[len(dataPrefix):], &chunk); err != nil {
		return nil
	}
	if len(chunk.Choices) == 0 {
		return nil
	}

	delta := chunk.Choices[0].Delta
	if delta.ReasoningContent != "" {
		if err := t.onIncrement(domain.ReasoningIncrement(delta.ReasoningContent)); err != nil {
			return err
		}
	}
	if delta.Content != "" {
		if err := t.onIncrement(domain.AnswerIncrement(delta.Content)); err != nil {
			return err
		}
	}
	return nil
}

// Transcode reads r until end of stream, feeding every chunk to a
// Transcoder. An unterminated last line is discarded. Read failures other
// than io.EOF are reported as domain.TransportErr.
func Transcode(r io.Reader, onIncrement domain.StreamIncrementCallback) error {
	t := NewTranscoder(onIncrement)
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := t.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return domain.NewTransportErr(err)
		}
	}
}
