package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Modos de entrega de follow-up.
const (
	DeliveryDraft = "draft" // cria rascunho no Gmail (padrão)
	DeliverySMTP  = "smtp"  // envia direto via SMTP
)

// Config carrega tudo do ambiente uma vez e circula por valor pelos
// construtores. Nada de estado global: dois engines no mesmo processo
// podem apontar para planilhas diferentes.
type Config struct {
	SheetID     string
	SheetName   string
	GoogleToken string

	SerpAPIKey string

	DatabaseURL string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	Delivery          string
	ProspectsPath     string
	SchedulerInterval time.Duration
	Port              string
}

func Load() Config {
	godotenv.Load()

	return Config{
		SheetID:     os.Getenv("GOOGLE_SHEET_ID"),
		SheetName:   envOr("SHEET_NAME", "Sheet1"),
		GoogleToken: os.Getenv("GOOGLE_API_TOKEN"),

		SerpAPIKey: os.Getenv("SERPAPI_KEY"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		RabbitUser: envOr("RABBITMQ_USER", "user"),
		RabbitPass: envOr("RABBITMQ_PASS", "password"),
		RabbitHost: envOr("RABBITMQ_HOST", "localhost"),
		RabbitPort: envOr("RABBITMQ_PORT", "5672"),

		SMTPHost: os.Getenv("MAIL_HOST"),
		SMTPPort: envInt("MAIL_PORT", 587),
		SMTPUser: os.Getenv("MAIL_USER"),
		SMTPPass: os.Getenv("MAIL_PASS"),
		SMTPFrom: os.Getenv("MAIL_FROM"),

		Delivery:          envOr("OUTREACH_DELIVERY", DeliveryDraft),
		ProspectsPath:     envOr("PROSPECTS_PATH", "directives/prospects.md"),
		SchedulerInterval: time.Duration(envInt("SCHEDULER_INTERVAL_MINUTES", 30)) * time.Minute,
		Port:              envOr("PORT", "8080"),
	}
}

// ValidateSheet confere o mínimo para qualquer ciclo rodar. Falha aqui é
// erro de configuração: aborta antes de processar qualquer lead.
func (c Config) ValidateSheet() error {
	if c.SheetID == "" {
		return errors.New("GOOGLE_SHEET_ID não configurado")
	}
	if c.GoogleToken == "" {
		return errors.New("GOOGLE_API_TOKEN não configurado")
	}
	return nil
}

func (c Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
