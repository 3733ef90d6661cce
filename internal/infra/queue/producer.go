package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ProspectPayload é o prospect qualificado publicado para ingestão na
// planilha. Email fica vazio até o enriquecimento manual/externo.
type ProspectPayload struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Owner   string  `json:"owner"`
	Email   string  `json:"email,omitempty"`
	Website string  `json:"website"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Snippet string  `json:"snippet"`
}

// SheetRow monta a linha na ordem canônica da planilha:
// Business Name, Owner, Email, Website, Rating, Review Count, Status, Step, Last_Date.
func (p ProspectPayload) SheetRow() []string {
	return []string{
		p.Name,
		p.Owner,
		p.Email,
		p.Website,
		strconv.FormatFloat(p.Rating, 'f', 1, 64),
		strconv.Itoa(p.Reviews),
		"", // Status: preenchido quando o primeiro email sai
		"", // Step
		"", // Last_Date
	}
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishProspect(ctx context.Context, payload ProspectPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
