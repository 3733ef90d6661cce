package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/xavierca1/outreach-engine/internal/config"
	"github.com/xavierca1/outreach-engine/internal/infra/database"
	"github.com/xavierca1/outreach-engine/internal/infra/gmail"
	"github.com/xavierca1/outreach-engine/internal/infra/mail"
	"github.com/xavierca1/outreach-engine/internal/infra/sheets"
	"github.com/xavierca1/outreach-engine/internal/usecase"
)

// newRowStore monta o adaptador de planilha a partir da config validada.
func newRowStore(cfg config.Config) (*sheets.Client, error) {
	if err := cfg.ValidateSheet(); err != nil {
		return nil, err
	}
	return sheets.NewClient(cfg.GoogleToken, cfg.SheetID, cfg.SheetName), nil
}

// newDelivery escolhe o modo de entrega: rascunho no Gmail (padrão) ou
// envio direto via SMTP.
func newDelivery(cfg config.Config, gmailClient *gmail.Client) (usecase.Delivery, error) {
	switch cfg.Delivery {
	case config.DeliveryDraft:
		return gmailClient, nil
	case config.DeliverySMTP:
		if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
			return nil, fmt.Errorf("entrega smtp exige MAIL_HOST e MAIL_FROM")
		}
		return mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom), nil
	default:
		return nil, fmt.Errorf("OUTREACH_DELIVERY inválido: %q", cfg.Delivery)
	}
}

// openRunLog conecta no Postgres quando configurado. Sem banco o run log
// simplesmente não é persistido (devolve interface nil de verdade).
func openRunLog(cfg config.Config) (usecase.RunLogRepository, *sql.DB) {
	if !cfg.HasDatabase() {
		return nil, nil
	}
	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Printf("⚠️ Banco indisponível, run log desativado: %v", err)
		return nil, nil
	}
	return database.NewRunLogRepository(db), db
}
