package usecase

import (
	"context"

	"github.com/xavierca1/outreach-engine/internal/entity"
	"github.com/xavierca1/outreach-engine/internal/infra/queue"
)

// RowStore é a planilha de leads vista como tabela genérica.
// row é 1-based (notação A1), col é o índice 0-based da coluna.
type RowStore interface {
	ReadTable(ctx context.Context) ([][]string, error)
	WriteCell(ctx context.Context, row, col int, value string) error
	AppendRow(ctx context.Context, values []string) error
}

// MailDirectory é o diretório de conversas (Gmail): identidade do operador,
// resolução de thread pela mensagem enviada mais recente e leitura da thread.
type MailDirectory interface {
	SelfIdentity(ctx context.Context) (string, error)

	// FindOutboundThread busca a mensagem enviada mais recente
	// "to:recipient from:self" e devolve o ID da thread dela.
	// Devolve "" quando nenhuma mensagem enviada foi encontrada.
	FindOutboundThread(ctx context.Context, to, from string) (string, error)

	GetThread(ctx context.Context, threadID string) (entity.Thread, error)
}

// Delivery entrega um follow-up. A implementação padrão cria um rascunho
// no Gmail; a alternativa envia direto via SMTP. Devolve o ID gerado pelo
// provedor (pode ser vazio no envio direto).
type Delivery interface {
	Deliver(ctx context.Context, to, subject, body string) (string, error)
}

// QueueProducerInterface publica prospects qualificados na fila de ingestão.
type QueueProducerInterface interface {
	PublishProspect(ctx context.Context, payload queue.ProspectPayload) error
}

// RunLogRepository persiste o resumo de uma execução. Opcional: os ciclos
// funcionam sem banco configurado.
type RunLogRepository interface {
	Save(ctx context.Context, run *entity.RunLog) error
}

// PlaceSearcher busca negócios locais (uma página por chamada).
type PlaceSearcher interface {
	Search(ctx context.Context, query string, start int) ([]entity.Prospect, error)
}

// CycleSummary é o resumo exibido no fim de cada execução de ciclo.
type CycleSummary struct {
	Checked  int `json:"checked"`
	Advanced int `json:"advanced"`
	Revoked  int `json:"revoked,omitempty"`
	Errors   int `json:"errors"`
}
