package events

import (
	"context"

	"lukrum-models-go/internal/lukrum"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of the lukrum.Client interface.
type MockClient struct {
	mock.Mock
}

var _ lukrum.Client = (*MockClient)(nil)

func (m *MockClient) GetModels(ctx context.Context, filters lukrum.ModelFilters) ([]lukrum.Model, error) {
	args := m.Called(ctx, filters)
	models, _ := args.Get(0).([]lukrum.Model)
	return models, args.Error(1)
}

func (m *MockClient) GetModelByUUID(ctx context.Context, uuid string) (*lukrum.Model, error) {
	args := m.Called(ctx, uuid)
	model, _ := args.Get(0).(*lukrum.Model)
	return model, args.Error(1)
}

func (m *MockClient) CreateModel(ctx context.Context, req lukrum.ModelCreateRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockClient) UpdateModel(ctx context.Context, modelID int64, req lukrum.ModelUpdateRequest) error {
	args := m.Called(ctx, modelID, req)
	return args.Error(0)
}

func (m *MockClient) DeleteModel(ctx context.Context, modelID int64) error {
	args := m.Called(ctx, modelID)
	return args.Error(0)
}

func (m *MockClient) GetActiveStats(ctx context.Context) (*lukrum.ActiveStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*lukrum.ActiveStats)
	return stats, args.Error(1)
}

func (m *MockClient) GetEntryGranularities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	granularities, _ := args.Get(0).([]string)
	return granularities, args.Error(1)
}

func (m *MockClient) GetExitGranularities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	granularities, _ := args.Get(0).([]string)
	return granularities, args.Error(1)
}

func (m *MockClient) GetTradeHistory(ctx context.Context, query lukrum.TradeHistoryQuery) (*lukrum.TradeHistoryResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(*lukrum.TradeHistoryResponse)
	return resp, args.Error(1)
}

func (m *MockClient) GetModelStats(ctx context.Context, modelID int64) (*lukrum.ModelStats, error) {
	args := m.Called(ctx, modelID)
	stats, _ := args.Get(0).(*lukrum.ModelStats)
	return stats, args.Error(1)
}
