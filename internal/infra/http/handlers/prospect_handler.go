package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/outreach-engine/internal/usecase"
)

type ProspectHandler struct {
	FindProspects *usecase.FindProspectsUseCase
}

func NewProspectHandler(findProspects *usecase.FindProspectsUseCase) *ProspectHandler {
	return &ProspectHandler{FindProspects: findProspects}
}

func (h *ProspectHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var input usecase.FindProspectsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{Error: "Invalid JSON"})
		return
	}

	output, err := h.FindProspects.Execute(r.Context(), input)
	if err != nil {
		writeCycleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(output)
}
