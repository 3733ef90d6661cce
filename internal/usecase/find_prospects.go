package usecase

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-engine/internal/entity"
	"github.com/xavierca1/outreach-engine/internal/infra/queue"
)

// MaxProspectsPerRun é o teto por execução para não estourar a cota da
// API de busca.
const MaxProspectsPerRun = 20

// pageSize é o tamanho de página da busca de places.
const pageSize = 20

type FindProspectsInput struct {
	City  string `json:"city"`
	Limit int    `json:"limit"`
}

type FindProspectsOutput struct {
	Found int `json:"found"`
}

// FindProspectsUseCase busca negócios locais, filtra por rating/reviews,
// grava o resultado no arquivo Markdown de prospects e publica cada
// qualificado na fila de ingestão da planilha.
type FindProspectsUseCase struct {
	Places     PlaceSearcher
	Queue      QueueProducerInterface
	OutputPath string
}

func NewFindProspectsUseCase(places PlaceSearcher, producer QueueProducerInterface, outputPath string) *FindProspectsUseCase {
	return &FindProspectsUseCase{
		Places:     places,
		Queue:      producer,
		OutputPath: outputPath,
	}
}

func (uc *FindProspectsUseCase) Execute(ctx context.Context, input FindProspectsInput) (*FindProspectsOutput, error) {
	if input.City == "" {
		return nil, &DomainError{Code: "MISSING_CITY", Message: "cidade é obrigatória"}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxProspectsPerRun {
		log.Printf("⚠️ Limite %d acima do teto de %d, ajustando", limit, MaxProspectsPerRun)
		limit = MaxProspectsPerRun
	}

	query := fmt.Sprintf("Plumbers near %s", input.City)
	log.Printf("🔎 Buscando '%s' (limite %d)", query, limit)

	var prospects []entity.Prospect
	for start := 0; len(prospects) < limit; start += pageSize {
		page, err := uc.Places.Search(ctx, query, start)
		if err != nil {
			if len(prospects) == 0 {
				return nil, &TechnicalError{Code: "PLACES_SEARCH", Message: "falha na busca de places: " + err.Error()}
			}
			log.Printf("⚠️ Erro na paginação, mantendo %d resultados: %v", len(prospects), err)
			break
		}
		if len(page) == 0 {
			break
		}
		log.Printf("  📄 Página com %d resultados (offset %d)", len(page), start)

		for _, p := range page {
			if len(prospects) >= limit {
				break
			}
			if !p.Qualified() {
				continue
			}
			p.ID = uuid.New().String()
			if p.Snippet == "" {
				p.Snippet = "Potential candidate based on rating."
			}
			if p.Owner == "" {
				p.Owner = entity.OwnerNotFound
			}
			prospects = append(prospects, p)
		}
	}

	if len(prospects) == 0 {
		log.Println("📭 Nenhum prospect passou nos critérios")
		return &FindProspectsOutput{Found: 0}, nil
	}

	if err := appendProspectsMarkdown(uc.OutputPath, prospects); err != nil {
		return nil, &TechnicalError{Code: "MARKDOWN_WRITE", Message: "falha ao gravar prospects: " + err.Error()}
	}
	log.Printf("💾 %d prospect(s) gravados em %s", len(prospects), uc.OutputPath)

	if uc.Queue != nil {
		for _, p := range prospects {
			payload := queue.ProspectPayload{
				ID:      p.ID,
				Name:    p.Name,
				Owner:   p.Owner,
				Website: p.Website,
				Rating:  p.Rating,
				Reviews: p.Reviews,
				Snippet: p.Snippet,
			}
			if err := uc.Queue.PublishProspect(ctx, payload); err != nil {
				log.Printf("⚠️ Falha ao publicar prospect '%s' na fila: %v", p.Name, err)
			}
		}
	}

	return &FindProspectsOutput{Found: len(prospects)}, nil
}

// appendProspectsMarkdown grava os prospects no formato de seções '##'
// consumido pelo resto do pipeline. Sempre em modo append.
func appendProspectsMarkdown(path string, prospects []entity.Prospect) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, p := range prospects {
		website := p.Website
		if website == "" {
			website = "Not found"
		}
		_, err := fmt.Fprintf(f, "## %s\n- **Rating**: %.1f (%d reviews)\n- **Website**: %s\n- **Snippet**: %q\n- **Owner**: %s\n\n",
			p.Name, p.Rating, p.Reviews, website, p.Snippet, p.Owner)
		if err != nil {
			return err
		}
	}
	return nil
}
