package usecase

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-engine/internal/entity"
)

// FollowUpAfterDays é o limiar de dias corridos desde o último contato
// para o lead entrar no ciclo de follow-up.
const FollowUpAfterDays = 3

// FollowUpUseCase é o ciclo de follow-up: leads 'Sent' parados há 3+ dias
// avançam um step e recebem um rascunho com o template do novo step.
// No step 3 o lead é revogado em vez de receber novo follow-up.
type FollowUpUseCase struct {
	Store    RowStore
	Delivery Delivery
	RunLog   RunLogRepository
}

func NewFollowUpUseCase(store RowStore, delivery Delivery, runLog RunLogRepository) *FollowUpUseCase {
	return &FollowUpUseCase{
		Store:    store,
		Delivery: delivery,
		RunLog:   runLog,
	}
}

func (uc *FollowUpUseCase) Execute(ctx context.Context) (*CycleSummary, error) {
	startedAt := time.Now()
	summary := &CycleSummary{}
	today := time.Now()

	table, err := uc.Store.ReadTable(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "ROW_STORE_READ", Message: "falha ao ler a planilha: " + err.Error()}
	}
	if len(table) == 0 {
		log.Println("📭 Planilha vazia, nada para analisar")
		return summary, nil
	}

	schema, err := entity.ResolveSchema(table[0])
	if err != nil {
		return nil, &DomainError{Code: "MISSING_COLUMN", Message: err.Error()}
	}
	if !schema.HasFollowUpColumns() {
		return nil, &DomainError{
			Code:    "MISSING_COLUMN",
			Message: "planilha sem as colunas 'Step' e 'Last_Date'; follow-up indisponível",
		}
	}

	for i, row := range table[1:] {
		lead := schema.LeadAt(i+2, row)
		if lead.Status != entity.StatusSent {
			continue
		}

		step, ok := lead.StepNumber()
		if !ok {
			continue
		}

		if entity.DaysSince(lead.LastDate, today) < FollowUpAfterDays {
			continue
		}
		summary.Checked++

		switch {
		case step < entity.MaxFollowUpStep:
			uc.advanceLead(ctx, schema, lead, step+1, today, summary)

		case step == entity.MaxFollowUpStep:
			// Follow-ups esgotados: estado terminal.
			log.Printf("🛑 %s: step 3 concluído sem resposta, revogando", lead.Email)
			if err := uc.Store.WriteCell(ctx, lead.Row, schema.Status, entity.StatusRevoked); err != nil {
				log.Printf("❌ %s: falha ao revogar: %v", lead.Email, err)
				summary.Errors++
				continue
			}
			summary.Revoked++

		default:
			// Step acima de 3 não deveria existir; defensivo.
			log.Printf("⚠️ %s: step %d fora da progressão, pulando", lead.Email, step)
		}
	}

	log.Printf("🏁 Follow-up concluído: %d elegíveis, %d rascunhos, %d revogados, %d erros",
		summary.Checked, summary.Advanced, summary.Revoked, summary.Errors)

	uc.saveRunLog(ctx, startedAt, summary)
	return summary, nil
}

func (uc *FollowUpUseCase) advanceLead(ctx context.Context, schema entity.Schema, lead entity.Lead, newStep int, today time.Time, summary *CycleSummary) {
	subject, body, ok := TemplateFor(newStep, lead.Owner)
	if !ok {
		return
	}

	log.Printf("📨 %s: criando follow-up step %d", lead.Email, newStep)

	deliveryID, err := uc.Delivery.Deliver(ctx, lead.Email, subject, body)
	if err != nil {
		// Sem write-back: o lead continua 'Sent' e stale, então a próxima
		// execução tenta de novo.
		log.Printf("❌ %s: falha ao entregar follow-up: %v", lead.Email, err)
		summary.Errors++
		return
	}
	if deliveryID != "" {
		log.Printf("📝 %s: rascunho %s criado", lead.Email, deliveryID)
	}

	writes := []struct {
		col   int
		value string
	}{
		{schema.Step, strconv.Itoa(newStep)},
		{schema.Status, entity.StatusDraftCreated},
		{schema.LastDate, today.Format("2006-01-02")},
	}
	for _, w := range writes {
		if err := uc.Store.WriteCell(ctx, lead.Row, w.col, w.value); err != nil {
			log.Printf("❌ %s: falha ao gravar célula: %v", lead.Email, err)
			summary.Errors++
			return
		}
	}
	summary.Advanced++
}

func (uc *FollowUpUseCase) saveRunLog(ctx context.Context, startedAt time.Time, summary *CycleSummary) {
	if uc.RunLog == nil {
		return
	}
	run := &entity.RunLog{
		ID:         uuid.New().String(),
		RunType:    entity.RunTypeFollowUps,
		Checked:    summary.Checked,
		Advanced:   summary.Advanced,
		Errors:     summary.Errors,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if err := uc.RunLog.Save(ctx, run); err != nil {
		log.Printf("⚠️ Falha ao gravar run log (ignorando): %v", err)
	}
}
