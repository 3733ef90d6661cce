package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/outreach-engine/internal/entity"
	"github.com/xavierca1/outreach-engine/internal/infra/queue"
)

// MockRowStore
type MockRowStore struct {
	mock.Mock
}

func (m *MockRowStore) ReadTable(ctx context.Context) ([][]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

func (m *MockRowStore) WriteCell(ctx context.Context, row, col int, value string) error {
	args := m.Called(ctx, row, col, value)
	return args.Error(0)
}

func (m *MockRowStore) AppendRow(ctx context.Context, values []string) error {
	args := m.Called(ctx, values)
	return args.Error(0)
}

// MockMailDirectory
type MockMailDirectory struct {
	mock.Mock
}

func (m *MockMailDirectory) SelfIdentity(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockMailDirectory) FindOutboundThread(ctx context.Context, to, from string) (string, error) {
	args := m.Called(ctx, to, from)
	return args.String(0), args.Error(1)
}

func (m *MockMailDirectory) GetThread(ctx context.Context, threadID string) (entity.Thread, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(entity.Thread), args.Error(1)
}

// MockDelivery
type MockDelivery struct {
	mock.Mock
}

func (m *MockDelivery) Deliver(ctx context.Context, to, subject, body string) (string, error) {
	args := m.Called(ctx, to, subject, body)
	return args.String(0), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishProspect(ctx context.Context, payload queue.ProspectPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockPlaceSearcher
type MockPlaceSearcher struct {
	mock.Mock
}

func (m *MockPlaceSearcher) Search(ctx context.Context, query string, start int) ([]entity.Prospect, error) {
	args := m.Called(ctx, query, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Prospect), args.Error(1)
}

// MockRunLogRepository
type MockRunLogRepository struct {
	mock.Mock
}

func (m *MockRunLogRepository) Save(ctx context.Context, run *entity.RunLog) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}
