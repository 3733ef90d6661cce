package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/outreach-engine/internal/entity"
)

// TemplateFor devolve assunto e corpo do follow-up para o step dado.
// Só existem templates para os steps 2 e 3; qualquer outro step devolve
// ok=false e o chamador pula o lead. Função pura: mesma entrada, mesma saída.
func TemplateFor(step int, owner string) (subject, body string, ok bool) {
	name := salutationName(owner)

	switch step {
	case 2:
		subject = "Following up: AI Receptionist"
		body = fmt.Sprintf(`Hi %s,

Just checking if you saw my previous email. I know things get buried!

Are you still dealing with missed calls during busy hours?

Best,
YourPlumberAI Team`, name)

	case 3:
		subject = "Last try: AI Receptionist"
		body = fmt.Sprintf(`Hi %s,

I haven't heard back, so I assume you're all set with your current phone handling.

I'll stop reaching out now. If you ever need to automate your lead capture, feel free to reply.

Best,
YourPlumberAI Team`, name)

	default:
		return "", "", false
	}

	return subject, body, true
}

// salutationName troca o sentinela "Not found" (ou vazio) por uma
// saudação genérica.
func salutationName(owner string) string {
	owner = strings.TrimSpace(owner)
	if owner == "" || strings.EqualFold(owner, entity.OwnerNotFound) {
		return "there"
	}
	return owner
}
