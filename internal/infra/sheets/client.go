package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client fala com a API de values do Google Sheets. Implementa o RowStore
// do engine: leitura da tabela inteira, escrita de célula única e append
// de linha. O token OAuth já vem pronto (o bootstrap de credenciais fica
// fora daqui).
type Client struct {
	apiToken      string
	spreadsheetID string
	sheetName     string
	baseURL       string
}

func NewClient(apiToken, spreadsheetID, sheetName string) *Client {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	return &Client{
		apiToken:      apiToken,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		baseURL:       "https://sheets.googleapis.com/v4/spreadsheets",
	}
}

// ReadTable lê a faixa larga A:Z da aba: primeira linha é o cabeçalho,
// o resto são leads.
func (c *Client) ReadTable(ctx context.Context) ([][]string, error) {
	rangeName := fmt.Sprintf("%s!A:Z", c.sheetName)
	endpoint := fmt.Sprintf("%s/%s/values/%s", c.baseURL, c.spreadsheetID, url.PathEscape(rangeName))

	body, err := c.do(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Values [][]string `json:"values"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("resposta inesperada do Sheets: %w", err)
	}

	return result.Values, nil
}

// WriteCell grava um único valor. row é 1-based e col é 0-based; a
// conversão para notação A1 acontece aqui.
func (c *Client) WriteCell(ctx context.Context, row, col int, value string) error {
	rangeName := fmt.Sprintf("%s!%s%d", c.sheetName, columnLetter(col+1), row)
	endpoint := fmt.Sprintf("%s/%s/values/%s?valueInputOption=RAW",
		c.baseURL, c.spreadsheetID, url.PathEscape(rangeName))

	payload := map[string]interface{}{
		"values": [][]string{{value}},
	}

	_, err := c.do(ctx, "PUT", endpoint, payload)
	return err
}

// AppendRow anexa uma linha depois da última linha preenchida da aba.
func (c *Client) AppendRow(ctx context.Context, values []string) error {
	rangeName := fmt.Sprintf("%s!A:Z", c.sheetName)
	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=RAW&insertDataOption=INSERT_ROWS",
		c.baseURL, c.spreadsheetID, url.PathEscape(rangeName))

	payload := map[string]interface{}{
		"values": [][]string{values},
	}

	_, err := c.do(ctx, "POST", endpoint, payload)
	return err
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

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets api: status %d - %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// columnLetter converte número de coluna 1-based para letra estilo Excel
// (A..Z, AA, AB, ...).
func columnLetter(n int) string {
	result := ""
	for n > 0 {
		n--
		result = string(rune('A'+n%26)) + result
		n /= 26
	}
	return result
}
