package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-engine/internal/entity"
)

// CheckRepliesUseCase é o ciclo de verificação de resposta: para cada lead
// 'Sent', resolve a thread no diretório de conversas e, se alguém respondeu,
// grava Status='Replied' e Step='Stop' de volta na planilha.
type CheckRepliesUseCase struct {
	Store  RowStore
	Mail   MailDirectory
	RunLog RunLogRepository
}

func NewCheckRepliesUseCase(store RowStore, mail MailDirectory, runLog RunLogRepository) *CheckRepliesUseCase {
	return &CheckRepliesUseCase{
		Store:  store,
		Mail:   mail,
		RunLog: runLog,
	}
}

func (uc *CheckRepliesUseCase) Execute(ctx context.Context) (*CycleSummary, error) {
	startedAt := time.Now()
	summary := &CycleSummary{}

	table, err := uc.Store.ReadTable(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "ROW_STORE_READ", Message: "falha ao ler a planilha: " + err.Error()}
	}
	if len(table) == 0 {
		log.Println("📭 Planilha vazia, nada para verificar")
		return summary, nil
	}

	schema, err := entity.ResolveSchema(table[0])
	if err != nil {
		return nil, &DomainError{Code: "MISSING_COLUMN", Message: err.Error()}
	}

	self, err := uc.Mail.SelfIdentity(ctx)
	if err != nil || self == "" {
		return nil, &DomainError{Code: "MISSING_IDENTITY", Message: "não foi possível resolver a identidade do operador"}
	}

	for i, row := range table[1:] {
		lead := schema.LeadAt(i+2, row) // +2: pula header, linhas são 1-based
		if !lead.EligibleForReplyCheck() {
			continue
		}
		summary.Checked++

		threadID, err := uc.Mail.FindOutboundThread(ctx, lead.Email, self)
		if err != nil {
			// Falha na resolução vale como "sem resposta": nunca derruba o lote.
			log.Printf("⚠️ %s: erro ao buscar thread, pulando: %v", lead.Email, err)
			continue
		}
		if threadID == "" {
			log.Printf("➖ %s: nenhuma mensagem enviada encontrada, pulando", lead.Email)
			continue
		}

		thread, err := uc.Mail.GetThread(ctx, threadID)
		if err != nil {
			log.Printf("⚠️ %s: erro ao ler thread %s, assumindo sem resposta: %v", lead.Email, threadID, err)
			continue
		}

		if !thread.HasReplyFrom(self) {
			continue
		}

		log.Printf("✅ %s: resposta encontrada, atualizando planilha", lead.Email)

		if err := uc.Store.WriteCell(ctx, lead.Row, schema.Status, entity.StatusReplied); err != nil {
			log.Printf("❌ %s: falha ao gravar Status: %v", lead.Email, err)
			summary.Errors++
			continue
		}
		if schema.Step != entity.ColumnMissing {
			if err := uc.Store.WriteCell(ctx, lead.Row, schema.Step, entity.StepStop); err != nil {
				log.Printf("❌ %s: falha ao gravar Step: %v", lead.Email, err)
				summary.Errors++
				continue
			}
		}
		summary.Advanced++
	}

	log.Printf("🏁 Verificação concluída: %d verificados, %d com resposta, %d erros",
		summary.Checked, summary.Advanced, summary.Errors)

	uc.saveRunLog(ctx, startedAt, summary)
	return summary, nil
}

func (uc *CheckRepliesUseCase) saveRunLog(ctx context.Context, startedAt time.Time, summary *CycleSummary) {
	if uc.RunLog == nil {
		return
	}
	run := &entity.RunLog{
		ID:         uuid.New().String(),
		RunType:    entity.RunTypeCheckReplies,
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
