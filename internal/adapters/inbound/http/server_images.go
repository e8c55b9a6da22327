package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-studio/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-studio/internal/usecases"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (api StudioServer) SubmitImageGeneration(w http.ResponseWriter, r *http.Request) {
	req := gen.SubmitImageGenerationJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInvalidBody(w)
		return
	}

	result, err := api.SubmitImageUseCase.Execute(r.Context(), bearerCredential(r), usecases.SubmitImageInput{
		Params:    toImageParams(req),
		SessionID: req.SessionId,
	})
	if err != nil {
		api.Logger.Printf("SubmitImageGeneration: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, gen.ImageGenerationResp{
		TaskId:    result.Job.ID,
		SessionId: openapi_types.UUID(result.SessionID),
	})
}

func (api StudioServer) GetImageTask(w http.ResponseWriter, r *http.Request, taskId string) {
	job, err := api.GetImageTaskUseCase.Query(r.Context(), bearerCredential(r), taskId)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toImageTaskResp(job))
}

func (api StudioServer) CancelImageTask(w http.ResponseWriter, r *http.Request, taskId string) {
	if err := api.CancelImageTaskUseCase.Execute(r.Context(), taskId); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
