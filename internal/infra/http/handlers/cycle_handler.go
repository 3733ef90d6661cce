package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/outreach-engine/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-engine/internal/usecase"
)

// CycleHandler expõe os dois ciclos do engine como endpoints de disparo
// manual. O scheduler interno usa os mesmos usecases.
type CycleHandler struct {
	CheckReplies *usecase.CheckRepliesUseCase
	FollowUps    *usecase.FollowUpUseCase
}

func NewCycleHandler(checkReplies *usecase.CheckRepliesUseCase, followUps *usecase.FollowUpUseCase) *CycleHandler {
	return &CycleHandler{
		CheckReplies: checkReplies,
		FollowUps:    followUps,
	}
}

func (h *CycleHandler) HandleCheckReplies(w http.ResponseWriter, r *http.Request) {
	summary, err := h.CheckReplies.Execute(r.Context())
	if err != nil {
		writeCycleError(w, err)
		return
	}

	middleware.RecordRepliesDetected(summary.Advanced)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summary)
}

func (h *CycleHandler) HandleFollowUps(w http.ResponseWriter, r *http.Request) {
	summary, err := h.FollowUps.Execute(r.Context())
	if err != nil {
		writeCycleError(w, err)
		return
	}

	middleware.RecordDraftsCreated(summary.Advanced)
	middleware.RecordLeadsRevoked(summary.Revoked)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summary)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeCycleError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	// Erro de configuração (coluna faltando etc) é culpa do setup, não do servidor.
	if usecase.IsDomainError(err) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
