package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/common"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/usecases"
	"github.com/google/uuid"
)

const (
	chatContentType   = "text/plain; charset=utf-8"
	visionContentType = "text/event-stream"
)

// chatLine is one NDJSON line of the chat stream. Exactly one field is set.
type chatLine struct {
	Reasoning string `json:"r,omitempty"`
	Content   string `json:"c,omitempty"`
}

func (api StudioServer) StreamChat(w http.ResponseWriter, r *http.Request) {
	req := gen.StreamChatJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidBody(w)
		return
	}

	stream, ok := newStreamWriter(w, chatContentType)
	if !ok {
		respondJSON(w, http.StatusInternalServerError, newErrorResp(gen.INTERNALERROR, "streaming not supported"))
		return
	}

	input := usecases.StreamChatInput{
		Model:          common.Deref(req.Model),
		Messages:       toLLMChatMessages(req.Messages),
		EnableThinking: common.Deref(req.EnableThinking),
	}

	err := api.StreamChatUseCase.Execute(r.Context(), bearerCredential(r), input, func(inc domain.StreamIncrement) error {
		line := chatLine{}
		switch inc.Kind {
		case domain.StreamIncrementKind_Reasoning:
			line.Reasoning = inc.Text
		case domain.StreamIncrementKind_Answer:
			line.Content = inc.Text
		}
		if line == (chatLine{}) {
			return nil
		}
		data, err := json.Marshal(line)
		if err != nil {
			return err
		}
		return stream.write(append(data, '\n'))
	}, streamOptions(req.SessionId)...)
	if err != nil {
		api.Logger.Printf("StreamChat: error during streaming: %v", err)
		if !stream.started {
			respondError(w, err)
			return
		}
		stream.abort()
	}
}

func (api StudioServer) StreamVision(w http.ResponseWriter, r *http.Request) {
	req := gen.StreamVisionJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidBody(w)
		return
	}

	stream, ok := newStreamWriter(w, visionContentType)
	if !ok {
		respondJSON(w, http.StatusInternalServerError, newErrorResp(gen.INTERNALERROR, "streaming not supported"))
		return
	}

	input := usecases.StreamVisionInput{
		Model:    common.Deref(req.Model),
		Messages: toLLMChatMessages(req.Messages),
	}

	err := api.StreamVisionUseCase.Execute(r.Context(), bearerCredential(r), input, func(text string) error {
		if text == "" {
			return nil
		}
		return stream.write([]byte(text))
	}, streamOptions(req.SessionId)...)
	if err != nil {
		api.Logger.Printf("StreamVision: error during streaming: %v", err)
		if !stream.started {
			respondError(w, err)
			return
		}
		stream.abort()
	}
}

func streamOptions(sessionID *uuid.UUID) []usecases.StreamOption {
	if sessionID == nil {
		return nil
	}
	return []usecases.StreamOption{usecases.WithSessionID(*sessionID)}
}
