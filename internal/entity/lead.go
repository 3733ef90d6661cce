package entity

import (
	"strconv"
	"strings"
	"time"
)

// Status do ciclo de vida de um lead na planilha.
// Qualquer outro valor livre é ignorado pelo engine.
const (
	StatusSent         = "Sent"
	StatusReplied      = "Replied"
	StatusDraftCreated = "Draft Created"
	StatusRevoked      = "Revoked"
)

// StepStop é o marcador escrito na coluna Step quando o lead responde.
const StepStop = "Stop"

// MaxFollowUpStep é o último follow-up. Depois disso o lead é revogado.
const MaxFollowUpStep = 3

// Lead é uma linha da planilha materializada. Row é o número da linha
// (1-based, como na notação A1) e serve de identidade para os write-backs.
type Lead struct {
	Row      int
	Email    string
	Owner    string
	Status   string
	Step     string
	LastDate string
}

// EligibleForReplyCheck: Status 'Sent' e um email minimamente válido.
func (l *Lead) EligibleForReplyCheck() bool {
	return l.Status == StatusSent && l.Email != "" && strings.Contains(l.Email, "@")
}

// StepNumber converte a coluna Step para inteiro. Valor não-numérico
// significa "não elegível", nunca erro.
func (l *Lead) StepNumber() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(l.Step))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Formatos de data aceitos na coluna Last_Date, na ordem de tentativa.
var dateFormats = []string{
	"2006-01-02", // YYYY-MM-DD
	"01/02/2006", // MM/DD/YYYY
	"02/01/2006", // DD/MM/YYYY
}

// DaysSince calcula quantos dias inteiros se passaram desde dateStr.
// Data que não parseia em nenhum formato vira 0 dias: o lead nunca
// fica elegível por engano.
func DaysSince(dateStr string, today time.Time) int {
	dateStr = strings.TrimSpace(dateStr)
	for _, layout := range dateFormats {
		dt, err := time.Parse(layout, dateStr)
		if err != nil {
			continue
		}
		y, m, d := today.Date()
		midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		days := int(midnight.Sub(dt).Hours() / 24)
		if days < 0 {
			return 0
		}
		return days
	}
	return 0
}
