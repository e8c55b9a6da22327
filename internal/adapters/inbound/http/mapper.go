package http

import (
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/common"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// toError maps a use case error to the HTTP status and error body returned to
// the caller. Upstream rejections keep the gateway status and body.
func toError(err error) (int, gen.ErrorResp) {
	var (
		valErr        *domain.ValidationErr
		credErr       *domain.MissingCredentialErr
		nfErr         *domain.NotFoundErr
		submissionErr *domain.SubmissionErr
		upstreamErr   *domain.UpstreamHTTPErr
		transportErr  *domain.TransportErr
		protocolErr   *domain.ProtocolViolationErr
	)
	switch {
	case errors.As(err, &valErr):
		return http.StatusBadRequest, newErrorResp(gen.BADREQUEST, valErr.Error())
	case errors.As(err, &credErr):
		return http.StatusBadRequest, newErrorResp(gen.BADREQUEST, credErr.Error())
	case errors.As(err, &nfErr):
		return http.StatusNotFound, newErrorResp(gen.NOTFOUND, nfErr.Error())
	case errors.As(err, &submissionErr):
		if errors.As(submissionErr.Cause, &upstreamErr) && upstreamErr.StatusCode >= 400 && upstreamErr.StatusCode < 500 {
			return upstreamErr.StatusCode, newErrorResp(gen.UPSTREAMERROR, upstreamErr.Body)
		}
		return http.StatusBadGateway, newErrorResp(gen.BADGATEWAY, submissionErr.Error())
	case errors.As(err, &upstreamErr):
		return upstreamStatus(upstreamErr.StatusCode), newErrorResp(gen.UPSTREAMERROR, upstreamErr.Body)
	case errors.As(err, &transportErr):
		return http.StatusBadGateway, newErrorResp(gen.BADGATEWAY, transportErr.Error())
	case errors.As(err, &protocolErr):
		return http.StatusBadGateway, newErrorResp(gen.BADGATEWAY, protocolErr.Error())
	default:
		return http.StatusInternalServerError, newErrorResp(gen.INTERNALERROR, "internal server error")
	}
}

func upstreamStatus(code int) int {
	if code < 400 || code > 599 {
		return http.StatusBadGateway
	}
	return code
}

func newErrorResp(code gen.ErrorCode, message string) gen.ErrorResp {
	return gen.ErrorResp{
		Error: gen.Error{
			Code:    code,
			Message: message,
		},
	}
}

func toLLMChatMessages(messages []gen.ChatMessage) []domain.LLMChatMessage {
	out := make([]domain.LLMChatMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, domain.LLMChatMessage{
			Role:    domain.ChatRole(m.Role),
			Content: m.Content,
			Images:  common.Deref(m.Images),
		})
	}
	return out
}

func toNewSessionMessages(messages []gen.NewSessionMessage) []domain.SessionMessage {
	out := make([]domain.SessionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, domain.SessionMessage{
			Role:      domain.ChatRole(m.Role),
			Content:   m.Content,
			Reasoning: common.Deref(m.Reasoning),
			Images:    common.Deref(m.Images),
		})
	}
	return out
}

func toImageParams(req gen.ImageGenerationRequest) domain.ImageParams {
	params := domain.ImageParams{
		Model:          common.Deref(req.Model),
		Prompt:         req.Prompt,
		NegativePrompt: common.Deref(req.NegativePrompt),
		Size:           common.Deref(req.Size),
		Steps:          req.Steps,
		Guidance:       req.Guidance,
		Seed:           req.Seed,
	}
	for _, l := range common.Deref(req.Loras) {
		params.Loras = append(params.Loras, domain.LoraWeight{Repo: l.Repo, Weight: l.Weight})
	}
	return params
}

func toImageTaskStatus(s domain.ImageTaskStatus) gen.ImageTaskStatus {
	switch s {
	case domain.ImageTaskStatus_Succeeded:
		return gen.SUCCEED
	case domain.ImageTaskStatus_Failed:
		return gen.FAILED
	default:
		return gen.RUNNING
	}
}

func toImageTaskResp(job domain.ImageJob) gen.ImageTaskResp {
	resp := gen.ImageTaskResp{
		TaskId:       job.ID,
		TaskStatus:   toImageTaskStatus(job.Status),
		OutputImages: []string{},
	}
	resp.OutputImages = append(resp.OutputImages, job.ResultURLs...)
	return resp
}

func toSession(s domain.Session) gen.Session {
	return gen.Session{
		Id:        openapi_types.UUID(s.ID),
		Kind:      gen.SessionKind(s.Kind),
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSessionMessage(m domain.SessionMessage) gen.SessionMessage {
	msg := gen.SessionMessage{
		Id:        openapi_types.UUID(m.ID),
		Role:      gen.ChatRole(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.Reasoning != "" {
		msg.Reasoning = common.Ptr(m.Reasoning)
	}
	if len(m.Images) > 0 {
		msg.Images = common.Ptr(m.Images)
	}
	return msg
}

func toGeneratedImage(r domain.GeneratedImageRecord) gen.GeneratedImage {
	return gen.GeneratedImage{
		Id:        openapi_types.UUID(r.ID),
		Url:       r.URL,
		Prompt:    r.Prompt,
		Model:     r.Model,
		Size:      r.Size,
		CreatedAt: r.CreatedAt,
	}
}

func toGeneratedImages(records []domain.GeneratedImageRecord) []gen.GeneratedImage {
	images := []gen.GeneratedImage{}
	for _, r := range records {
		images = append(images, toGeneratedImage(r))
	}
	return images
}

func toModelVariant(v domain.ModelVariant) gen.ModelVariant {
	return gen.ModelVariant{
		Id:        v.ID,
		Mechanism: gen.ReasoningMechanism(v.Mechanism),
	}
}

func toModelCatalogue(c domain.ModelCatalogue) gen.ModelCatalogueResp {
	resp := gen.ModelCatalogueResp{
		Defaults: gen.DefaultModels{
			Chat:   c.Defaults.Chat,
			Vision: c.Defaults.Vision,
			Image:  c.Defaults.Image,
		},
		Series: []gen.ModelSeries{},
	}
	for _, s := range c.Series {
		series := gen.ModelSeries{
			Key:             s.Key,
			Name:            s.DisplayName,
			Provider:        s.Provider,
			Instruct:        toModelVariant(s.Instruct),
			SwitchByModelId: s.SwitchIsByModelID,
		}
		if s.Thinking != nil {
			series.Thinking = common.Ptr(toModelVariant(*s.Thinking))
		}
		resp.Series = append(resp.Series, series)
	}
	return resp
}
