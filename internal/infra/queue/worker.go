package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RowAppender é o pedaço do row store que o worker precisa: anexar uma
// linha nova no fim da planilha.
type RowAppender interface {
	AppendRow(ctx context.Context, values []string) error
}

// IngestWorker consome prospects da fila e anexa cada um como linha nova
// na planilha de leads.
type IngestWorker struct {
	Channel *amqp.Channel
	Store   RowAppender
}

func NewIngestWorker(ch *amqp.Channel, store RowAppender) *IngestWorker {
	return &IngestWorker{
		Channel: ch,
		Store:   store,
	}
}

func (w *IngestWorker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ProspectPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [INGEST] JSON inválido: %s", err)
				// Mensagem podre: rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [INGEST] Anexando prospect '%s' na planilha", payload.Name)

			if err := w.Store.AppendRow(context.Background(), payload.SheetRow()); err != nil {
				log.Printf("❌ [INGEST] Falha ao anexar linha: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Ingest worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
