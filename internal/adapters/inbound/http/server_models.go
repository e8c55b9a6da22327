package http

import "net/http"

func (api StudioServer) ListAvailableModels(w http.ResponseWriter, r *http.Request) {
	catalogue, err := api.ListModelsUseCase.Query(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toModelCatalogue(catalogue))
}
