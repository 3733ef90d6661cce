package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/xavierca1/outreach-engine/internal/entity"
)

// Client fala com a API REST do Gmail (users/me). Implementa o diretório
// de conversas do engine e também a entrega padrão de follow-up (rascunho).
type Client struct {
	apiToken string
	baseURL  string
}

func NewClient(apiToken string) *Client {
	return &Client{
		apiToken: apiToken,
		baseURL:  "https://gmail.googleapis.com/gmail/v1/users/me",
	}
}

// SelfIdentity devolve o endereço da caixa autenticada.
func (c *Client) SelfIdentity(ctx context.Context) (string, error) {
	body, err := c.do(ctx, "GET", c.baseURL+"/profile", nil)
	if err != nil {
		return "", err
	}

	var result struct {
		EmailAddress string `json:"emailAddress"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	return result.EmailAddress, nil
}

// FindOutboundThread busca a mensagem enviada mais recente para o
// destinatário (maxResults=1) e devolve o threadId dela. Só o primeiro
// candidato é inspecionado: conversas simultâneas com o mesmo endereço
// não são desambiguadas.
func (c *Client) FindOutboundThread(ctx context.Context, to, from string) (string, error) {
	query := url.QueryEscape(fmt.Sprintf("to:%s from:%s", to, from))
	endpoint := fmt.Sprintf("%s/messages?q=%s&maxResults=1", c.baseURL, query)

	body, err := c.do(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}

	var list struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return "", err
	}
	if len(list.Messages) == 0 {
		return "", nil
	}

	endpoint = fmt.Sprintf("%s/messages/%s?format=metadata&metadataHeaders=From", c.baseURL, list.Messages[0].ID)
	body, err = c.do(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}

	var msg struct {
		ThreadID string `json:"threadId"`
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		return "", err
	}
	return msg.ThreadID, nil
}

// GetThread carrega os metadados da thread: header From e labels de cada
// mensagem. O label SENT vira a flag SentByMe.
func (c *Client) GetThread(ctx context.Context, threadID string) (entity.Thread, error) {
	endpoint := fmt.Sprintf("%s/threads/%s?format=metadata&metadataHeaders=From", c.baseURL, threadID)

	body, err := c.do(ctx, "GET", endpoint, nil)
	if err != nil {
		return entity.Thread{}, err
	}

	var result struct {
		Messages []struct {
			LabelIDs []string `json:"labelIds"`
			Payload  struct {
				Headers []struct {
					Name  string `json:"name"`
					Value string `json:"value"`
				} `json:"headers"`
			} `json:"payload"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return entity.Thread{}, err
	}

	thread := entity.Thread{ID: threadID}
	for _, m := range result.Messages {
		var from string
		for _, h := range m.Payload.Headers {
			if strings.EqualFold(h.Name, "From") {
				from = h.Value
				break
			}
		}

		sentByMe := false
		for _, label := range m.LabelIDs {
			if label == "SENT" {
				sentByMe = true
				break
			}
		}

		thread.Messages = append(thread.Messages, entity.Message{
			From:     from,
			SentByMe: sentByMe,
		})
	}

	return thread, nil
}

// CreateDraft monta a mensagem RFC822 crua, codifica em base64 url-safe
// e cria o rascunho.
func (c *Client) CreateDraft(ctx context.Context, to, subject, body string) (string, error) {
	raw := base64.URLEncoding.EncodeToString([]byte(buildRawMessage(to, subject, body)))

	payload := map[string]interface{}{
		"message": map[string]string{
			"raw": raw,
		},
	}

	respBody, err := c.do(ctx, "POST", c.baseURL+"/drafts", payload)
	if err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("rascunho não criado")
	}
	return result.ID, nil
}

// Deliver faz o Client servir como entrega padrão de follow-up.
func (c *Client) Deliver(ctx context.Context, to, subject, body string) (string, error) {
	return c.CreateDraft(ctx, to, subject, body)
}

func buildRawMessage(to, subject, body string) string {
	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gmail api: status %d - %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
