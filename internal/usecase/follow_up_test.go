package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/outreach-engine/internal/entity"
)

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

func TestFollowUpAvancaStep(t *testing.T) {
	ctx := context.Background()
	store := new(MockRowStore)
	delivery := new(MockDelivery)

	store.On("ReadTable", ctx).Return(sheetTable(leadRow("Joe", "joe@plumb.com", "Sent", "1", daysAgo(5))), nil)
	delivery.On("Deliver", ctx, "joe@plumb.com", "Following up: AI Receptionist", mock.MatchedBy(func(body string) bool {
		return len(body) > 0
	})).Return("draft-1", nil)
	store.On("WriteCell", ctx, 2, 7, "2").Return(nil)
	store.On("WriteCell", ctx, 2, 6, entity.StatusDraftCreated).Return(nil)
	store.On("WriteCell", ctx, 2, 8, time.Now().Format("2006-01-02")).Return(nil)

	uc := NewFollowUpUseCase(store, delivery, nil)
	summary, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Checked)
	assert.Equal(t, 1, summary.Advanced)
	assert.Equal(t, 0, summary.Errors)
	delivery.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestFollowUpPersonalizaComDono(t *testing.T) {
	ctx := context.Background()
	store := new(MockRowStore)
	delivery := new(MockDelivery)

	store.On("ReadTable", ctx).Return(sheetTable(leadRow("Alex", "a@b.com", "Sent", "2", daysAgo(4))), nil)
	delivery.On("Deliver", ctx, "a@b.com", "Last try: AI Receptionist", mock.MatchedBy(func(body string) bool {
		return len(body) > 8 && body[:8] == "Hi Alex," // owner presente vai na saudação
	})).Return("draft-9", nil)
	store.On("WriteCell", ctx, 2, mock.AnythingOfType("int"), mock.AnythingOfType("string")).Return(nil)

	uc := NewFollowUpUseCase(store, delivery, nil)
	summary, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Advanced)
	delivery.AssertExpectations(t)
}

func TestFollowUpStep3Revoga(t *testing.T) {
	ctx := context.Background()
	store := new(MockRowStore)
	delivery := new(MockDelivery)

	store.On("ReadTable", ctx).Return(sheetTable(leadRow("Joe", "joe@plumb.com", "Sent", "3", daysAgo(10))), nil)
	store.On("WriteCell", ctx, 2, 6, entity.StatusRevoked).Return(nil)

	uc := NewFollowUpUseCase(store, delivery, nil)
	summary, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Revoked)
	assert.Equal(t, 0, summary.Advanced)
	delivery.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	store.AssertCalled(t, "WriteCell", ctx, 2, 6, entity.StatusRevoked)
}

// Falha na entrega: nenhum write-back, o lead continua 'Sent' e stale para
// a próxima execução tentar de novo.
func TestFollowUpFalhaNaEntregaNaoMexeNaPlanilha(t *testing.T) {
	ctx := context.Background()
	store := new(MockRowStore)
	delivery := new(MockDelivery)

	store.On("ReadTable", ctx).Return(sheetTable(leadRow("Joe", "joe@plumb.com", "Sent", "1", daysAgo(5))), nil)
	delivery.On("Deliver", ctx, "joe@plumb.com", mock.Anything, mock.Anything).Return("", errors.New("smtp timeout"))

	uc := NewFollowUpUseCase(store, delivery, nil)
	summary, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Advanced)
	assert.Equal(t, 1, summary.Errors)
	store.AssertNotCalled(t, "WriteCell", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFollowUpIgnoraNaoElegiveis(t *testing.T) {
	ctx := context.Background()
	store := new(MockRowStore)
	delivery := new(MockDelivery)

	store.On("ReadTable", ctx).Return(sheetTable(
		leadRow("Joe", "joe@plumb.com", "Replied", "Stop", daysAgo(10)), // terminal
		leadRow("Ana", "ana@pipes.com", "Sent", "1", daysAgo(2)),        // fresco demais
		leadRow("Bob", "bob@drains.com", "Sent", "x", daysAgo(10)),      // step não numérico
		leadRow("Eva", "eva@taps.com", "Sent", "1", "data quebrada"),    // data ilegível = 0 dias
		leadRow("Leo", "leo@sinks.com", "Sent", "7", daysAgo(10)),       // fora da progressão
	), nil)

	uc := NewFollowUpUseCase(store, delivery, nil)
	summary, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Advanced)
	assert.Equal(t, 0, summary.Revoked)
	delivery.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "WriteCell", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Step 0 avança para 1, mas não existe template de step 1 (o primeiro email
// é do pipeline de envio, não do follow-up): nada acontece.
func TestFollowUpStepZeroSemTemplate(t *testing.T) {
	ctx := context.Background()
	store := new(MockRowStore)
	delivery := new(MockDelivery)

	store.On("ReadTable", ctx).Return(sheetTable(leadRow("Joe", "joe@plumb.com", "Sent", "0", daysAgo(5))), nil)

	uc := NewFollowUpUseCase(store, delivery, nil)
	summary, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Checked)
	assert.Equal(t, 0, summary.Advanced)
	delivery.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFollowUpExigeColunasDeStepEData(t *testing.T) {
	ctx := context.Background()
	store := new(MockRowStore)
	delivery := new(MockDelivery)

	store.On("ReadTable", ctx).Return([][]string{{"Status", "Email", "Owner"}}, nil)

	uc := NewFollowUpUseCase(store, delivery, nil)
	_, err := uc.Execute(ctx)

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestFollowUpErroDeLeituraEhTecnico(t *testing.T) {
	ctx := context.Background()
	store := new(MockRowStore)
	delivery := new(MockDelivery)

	store.On("ReadTable", ctx).Return(nil, fmt.Errorf("503 service unavailable"))

	uc := NewFollowUpUseCase(store, delivery, nil)
	_, err := uc.Execute(ctx)

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
}
