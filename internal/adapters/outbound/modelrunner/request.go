package modelrunner

import (
	"github.com/cleitonmarx/symbiont-ai-studio/internal/common"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/domain"
)

// VisionMaxTokens caps the completion length of vision requests.
const VisionMaxTokens = 4096

// BuildChatRequest translates a domain chat request into the upstream wire
// body. The reasoning toggle is placed where the resolved mechanism expects it.
func BuildChatRequest(req domain.LLMChatRequest) ChatRequest {
	out := ChatRequest{
		Model:    req.Model,
		Stream:   true,
		Messages: make([]ChatMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, toChatMessage(m, req.Kind == domain.ChatKind_Vision))
	}

	if req.Kind == domain.ChatKind_Vision {
		// vision models get both toggles
		out.MaxTokens = common.Ptr(VisionMaxTokens)
		out.EnableThinking = common.Ptr(req.EnableReasoning)
		out.ChatTemplateKwargs = &ChatTemplateKwargs{EnableThinking: req.EnableReasoning}
		return out
	}

	switch req.Mechanism {
	case domain.ReasoningMechanism_TemplateArgument:
		kwargs := &ChatTemplateKwargs{EnableThinking: req.EnableReasoning}
		if req.EnableReasoning {
			kwargs.ClearThinking = common.Ptr(false)
		}
		out.ChatTemplateKwargs = kwargs
	case domain.ReasoningMechanism_NativeFlag:
		out.EnableThinking = common.Ptr(req.EnableReasoning)
	default:
		out.EnableThinking = common.Ptr(false)
	}
	return out
}

func toChatMessage(m domain.LLMChatMessage, multimodal bool) ChatMessage {
	if !multimodal && len(m.Images) == 0 {
		return ChatMessage{Role: string(m.Role), Content: m.Content}
	}
	parts := make([]ContentPart, 0, len(m.Images)+1)
	if m.Content != "" {
		parts = append(parts, ContentPart{Type: "text", Text: m.Content})
	}
	for _, img := range m.Images {
		parts = append(parts, ContentPart{Type: "image_url", ImageURL: &ImageURL{URL: img}})
	}
	return ChatMessage{Role: string(m.Role), Content: parts}
}

// BuildImageRequest translates image parameters into the submission body.
// Blank LoRA entries are dropped; a single adapter at full weight is sent
// as a bare repository name.
func BuildImageRequest(params domain.ImageParams) ImageGenerationRequest {
	size := params.Size
	if size == "" {
		size = domain.DefaultImageSize
	}
	out := ImageGenerationRequest{
		Model:          params.Model,
		Prompt:         params.Prompt,
		N:              1,
		Size:           size,
		NegativePrompt: params.NegativePrompt,
		Steps:          params.Steps,
		Guidance:       params.Guidance,
		Seed:           params.Seed,
	}

	loras := params.ActiveLoras()
	switch {
	case len(loras) == 0:
	case len(loras) == 1 && loras[0].Weight == 1.0:
		out.Loras = &LoraSpec{Repo: loras[0].Repo}
	default:
		weights := make(map[string]float64, len(loras))
		for _, l := range loras {
			weights[l.Repo] = l.Weight
		}
		out.Loras = &LoraSpec{Weights: weights}
	}
	return out
}
