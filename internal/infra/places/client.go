package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/xavierca1/outreach-engine/internal/entity"
)

// Client busca negócios locais via SerpApi (engine google_maps).
type Client struct {
	apiKey  string
	baseURL string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://serpapi.com/search.json",
	}
}

// Search devolve uma página de resultados a partir do offset dado.
// O filtro de qualificação fica no usecase; aqui só tem mapeamento.
func (c *Client) Search(ctx context.Context, query string, start int) ([]entity.Prospect, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("serpapi não configurado")
	}

	params := url.Values{}
	params.Set("engine", "google_maps")
	params.Set("q", query)
	params.Set("type", "search")
	params.Set("api_key", c.apiKey)
	params.Set("start", strconv.Itoa(start))
	params.Set("hl", "en") // Força inglês

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi: status %d - %s", resp.StatusCode, string(body))
	}

	var result struct {
		LocalResults []struct {
			Title   string  `json:"title"`
			Rating  float64 `json:"rating"`
			Reviews int     `json:"reviews"`
			Website string  `json:"website"`
		} `json:"local_results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	prospects := make([]entity.Prospect, 0, len(result.LocalResults))
	for _, r := range result.LocalResults {
		prospects = append(prospects, entity.Prospect{
			Name:    r.Title,
			Rating:  r.Rating,
			Reviews: r.Reviews,
			Website: r.Website,
		})
	}

	return prospects, nil
}
