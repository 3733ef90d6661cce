package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/outreach-engine/internal/entity"
	"github.com/xavierca1/outreach-engine/internal/infra/queue"
)

func prospectsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "directives", "prospects.md")
}

func TestFindProspectsFiltraEQualifica(t *testing.T) {
	ctx := context.Background()
	searcher := new(MockPlaceSearcher)
	producer := new(MockQueueProducer)
	out := prospectsFile(t)

	page := []entity.Prospect{
		{Name: "Joe's Plumbing", Rating: 4.1, Reviews: 55, Website: "joesplumbing.com"},
		{Name: "Five Star Pipes", Rating: 4.9, Reviews: 200}, // nota alta demais
		{Name: "Shady Drains", Rating: 3.9, Reviews: 4},      // poucos reviews
		{Name: "Old Faucets", Rating: 3.5, Reviews: 30},      // bordas inclusivas
	}
	searcher.On("Search", ctx, "Plumbers near Las Vegas, NV", 0).Return(page, nil).Once()
	searcher.On("Search", ctx, "Plumbers near Las Vegas, NV", 20).Return([]entity.Prospect{}, nil).Once()
	producer.On("PublishProspect", ctx, mock.AnythingOfType("queue.ProspectPayload")).Return(nil)

	uc := NewFindProspectsUseCase(searcher, producer, out)
	output, err := uc.Execute(ctx, FindProspectsInput{City: "Las Vegas, NV", Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 2, output.Found)
	producer.AssertNumberOfCalls(t, "PublishProspect", 2)

	content, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "## Joe's Plumbing")
	assert.Contains(t, string(content), "## Old Faucets")
	assert.Contains(t, string(content), "- **Rating**: 4.1 (55 reviews)")
	assert.Contains(t, string(content), "- **Owner**: Not found")
	assert.NotContains(t, string(content), "Five Star Pipes")
}

func TestFindProspectsRespeitaTeto(t *testing.T) {
	ctx := context.Background()
	searcher := new(MockPlaceSearcher)

	var page []entity.Prospect
	for i := 0; i < 30; i++ {
		page = append(page, entity.Prospect{Name: "P", Rating: 4.0, Reviews: 50})
	}
	searcher.On("Search", ctx, mock.Anything, 0).Return(page, nil).Once()

	uc := NewFindProspectsUseCase(searcher, nil, prospectsFile(t))
	output, err := uc.Execute(ctx, FindProspectsInput{City: "Reno, NV", Limit: 99})

	assert.NoError(t, err)
	assert.Equal(t, MaxProspectsPerRun, output.Found)
}

func TestFindProspectsCidadeObrigatoria(t *testing.T) {
	uc := NewFindProspectsUseCase(new(MockPlaceSearcher), nil, prospectsFile(t))

	_, err := uc.Execute(context.Background(), FindProspectsInput{City: ""})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestFindProspectsSemResultados(t *testing.T) {
	ctx := context.Background()
	searcher := new(MockPlaceSearcher)
	out := prospectsFile(t)

	searcher.On("Search", ctx, mock.Anything, 0).Return([]entity.Prospect{}, nil).Once()

	uc := NewFindProspectsUseCase(searcher, nil, out)
	output, err := uc.Execute(ctx, FindProspectsInput{City: "Nowhere, KS", Limit: 5})

	assert.NoError(t, err)
	assert.Equal(t, 0, output.Found)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr)) // sem prospects, sem arquivo
}

// Falha na fila não derruba a execução: o Markdown já foi gravado.
func TestFindProspectsFalhaNaFilaNaoEhFatal(t *testing.T) {
	ctx := context.Background()
	searcher := new(MockPlaceSearcher)
	producer := new(MockQueueProducer)

	searcher.On("Search", ctx, mock.Anything, 0).Return([]entity.Prospect{
		{Name: "Joe's Plumbing", Rating: 4.1, Reviews: 55},
	}, nil).Once()
	searcher.On("Search", ctx, mock.Anything, 20).Return([]entity.Prospect{}, nil).Once()
	producer.On("PublishProspect", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := NewFindProspectsUseCase(searcher, producer, prospectsFile(t))
	output, err := uc.Execute(ctx, FindProspectsInput{City: "Reno, NV", Limit: 5})

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Found)
}

func TestProspectPayloadSheetRow(t *testing.T) {
	p := queue.ProspectPayload{
		Name:    "Joe's Plumbing",
		Owner:   "Not found",
		Website: "joesplumbing.com",
		Rating:  4.1,
		Reviews: 55,
	}

	row := p.SheetRow()

	assert.Equal(t, []string{"Joe's Plumbing", "Not found", "", "joesplumbing.com", "4.1", "55", "", "", ""}, row)
}
