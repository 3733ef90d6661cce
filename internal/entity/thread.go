package entity

import (
	"net/mail"
	"regexp"
	"strings"
)

// Message é uma mensagem dentro de uma thread de conversa. From é o header
// cru do remetente ("Nome <email@dominio.com>" ou só o endereço); SentByMe
// indica que a mensagem saiu da nossa caixa (equivalente ao label SENT).
type Message struct {
	From     string
	SentByMe bool
}

// Thread é o agrupamento transitório de mensagens de um lead. Não é
// persistida: é re-resolvida a cada verificação de resposta.
type Thread struct {
	ID       string
	Messages []Message
}

var addressPattern = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)

// NormalizeAddress extrai o endereço puro de um header From e normaliza
// para minúsculas. Header vazio ou irreconhecível vira "".
func NormalizeAddress(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if addr, err := mail.ParseAddress(header); err == nil {
		return strings.ToLower(addr.Address)
	}
	if m := addressPattern.FindString(header); m != "" {
		return strings.ToLower(m)
	}
	return strings.ToLower(header)
}

// HasReplyFrom decide se existe alguma mensagem recebida (não enviada por
// nós) na thread. Uma mensagem conta como resposta quando o remetente
// normalizado difere da nossa identidade E ela não está marcada como
// enviada. Mensagem sem remetente é pulada.
func (t Thread) HasReplyFrom(self string) bool {
	self = strings.ToLower(strings.TrimSpace(self))

	for _, msg := range t.Messages {
		if strings.TrimSpace(msg.From) == "" {
			continue
		}
		sender := NormalizeAddress(msg.From)
		if sender != self && !msg.SentByMe {
			return true
		}
	}
	return false
}
