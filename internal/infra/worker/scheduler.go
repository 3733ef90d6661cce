package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/outreach-engine/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-engine/internal/usecase"
)

// Scheduler roda os dois ciclos do engine numa cadência fixa enquanto o
// servidor está de pé. Primeiro verifica respostas, depois follow-ups:
// um lead que respondeu nunca deve receber follow-up na mesma rodada.
type Scheduler struct {
	checkReplies *usecase.CheckRepliesUseCase
	followUps    *usecase.FollowUpUseCase
	tickInterval time.Duration
}

func NewScheduler(checkReplies *usecase.CheckRepliesUseCase, followUps *usecase.FollowUpUseCase, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &Scheduler{
		checkReplies: checkReplies,
		followUps:    followUps,
		tickInterval: interval,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	log.Printf("🕒 Scheduler de outreach iniciado (intervalo %s)", s.tickInterval)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Scheduler de outreach encerrado")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if summary, err := s.checkReplies.Execute(ctx); err != nil {
		log.Printf("❌ Ciclo de respostas falhou: %v", err)
		middleware.RecordIntegrationError("check_replies")
	} else {
		middleware.RecordRepliesDetected(summary.Advanced)
	}

	if summary, err := s.followUps.Execute(ctx); err != nil {
		log.Printf("❌ Ciclo de follow-up falhou: %v", err)
		middleware.RecordIntegrationError("follow_ups")
	} else {
		middleware.RecordDraftsCreated(summary.Advanced)
		middleware.RecordLeadsRevoked(summary.Revoked)
	}
}
