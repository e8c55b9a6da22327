package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/common"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
)

func (api StudioServer) ListSessions(w http.ResponseWriter, r *http.Request, params gen.ListSessionsParams) {
	var kind domain.SessionKind
	if params.Kind != nil {
		kind = domain.SessionKind(*params.Kind)
		if !kind.Valid() {
			respondError(w, domain.NewValidationErr(fmt.Sprintf("invalid session kind: %s", kind)))
			return
		}
	}

	sessions, err := api.ManageSessionsUseCase.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := gen.SessionListResp{Sessions: []gen.Session{}}
	for _, s := range sessions {
		if kind != "" && s.Kind != kind {
			continue
		}
		resp.Sessions = append(resp.Sessions, toSession(s))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api StudioServer) CreateSession(w http.ResponseWriter, r *http.Request) {
	req := gen.CreateSessionJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidBody(w)
		return
	}

	session, err := api.ManageSessionsUseCase.Create(r.Context(), domain.SessionKind(req.Kind), common.Deref(req.Title))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toSession(session))
}

func (api StudioServer) GetSession(w http.ResponseWriter, r *http.Request, sessionId gen.SessionId) {
	details, err := api.ManageSessionsUseCase.Get(r.Context(), sessionId)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := gen.SessionDetailResp{Session: toSession(details.Session)}
	if details.Session.Kind == domain.SessionKind_Image {
		resp.Images = common.Ptr(toGeneratedImages(details.Images))
	} else {
		messages := []gen.SessionMessage{}
		for _, m := range details.Messages {
			messages = append(messages, toSessionMessage(m))
		}
		resp.Messages = &messages
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api StudioServer) RenameSession(w http.ResponseWriter, r *http.Request, sessionId gen.SessionId) {
	req := gen.RenameSessionJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidBody(w)
		return
	}

	session, err := api.ManageSessionsUseCase.Rename(r.Context(), sessionId, req.Title)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toSession(session))
}

func (api StudioServer) DeleteSession(w http.ResponseWriter, r *http.Request, sessionId gen.SessionId) {
	if err := api.ManageSessionsUseCase.Delete(r.Context(), sessionId); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api StudioServer) ListSessionImages(w http.ResponseWriter, r *http.Request, sessionId gen.SessionId) {
	records, err := api.ManageSessionsUseCase.ListImages(r.Context(), sessionId)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gen.GeneratedImageListResp{Images: toGeneratedImages(records)})
}

func (api StudioServer) AppendSessionMessages(w http.ResponseWriter, r *http.Request, sessionId gen.SessionId) {
	req := gen.AppendSessionMessagesJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidBody(w)
		return
	}

	if err := api.ManageSessionsUseCase.AppendMessages(r.Context(), sessionId, toNewSessionMessages(req.Messages)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
