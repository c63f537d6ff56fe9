package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"lukrum-models-go/internal/lukrum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// byOrder matches a trade-history query by its sort key.
func byOrder(orderBy string) interface{} {
	return mock.MatchedBy(func(q lukrum.TradeHistoryQuery) bool {
		return q.OrderBy == orderBy
	})
}

func TestBuildModelEvents_RowPerEventKind(t *testing.T) {
	model := lukrum.Model{ID: 1, Instrument: "EURUSD", EntryGranularity: "5M"}

	// Trade 1 is closed, trade 2 is still open. The open-time stream yields
	// both; the close-time stream yields only trade 1.
	closed := lukrum.TradeRecord{
		ID: 1, ModelID: 1, Instrument: "EURUSD", TradeType: "LONG", TradeResult: "TP",
		TsOpen: strPtr("2025-03-01T10:00:00Z"), TsClose: strPtr("2025-03-01T15:00:00Z"),
		OpenPrice: 1.08, ClosePrice: 1.09, TP: 1.09, SL: 1.07, Pips: 100,
	}
	open := lukrum.TradeRecord{
		ID: 2, ModelID: 1, Instrument: "EURUSD", TradeType: "SHORT",
		TsOpen: strPtr("2025-03-02T10:00:00Z"), TsClose: nil,
		OpenPrice: 1.10, TP: 1.09, SL: 1.11,
	}

	mockClient := new(MockClient)
	mockClient.On("GetTradeHistory", mock.Anything, byOrder(lukrum.OrderByTsOpen)).Return(&lukrum.TradeHistoryResponse{
		Trades: []lukrum.TradeRecord{closed, open},
	}, nil).Once()
	mockClient.On("GetTradeHistory", mock.Anything, byOrder(lukrum.OrderByTsClose)).Return(&lukrum.TradeHistoryResponse{
		Trades: []lukrum.TradeRecord{closed, open},
	}, nil).Once()

	rows, err := buildModelEvents(context.Background(), mockClient, zap.NewNop(), model, time.Time{}, 100)

	assert.NoError(t, err)
	// Two OPEN rows plus one CLOSE row: a trade yields one row per
	// timestamp it actually has.
	if assert.Len(t, rows, 3) {
		openClosed, openStill, closeRow := rows[0], rows[1], rows[2]

		assert.Equal(t, EventOpen, openClosed.Kind)
		assert.Equal(t, lukrum.InstrumentEURUSD, openClosed.Instrument)
		assert.Equal(t, "5M", openClosed.EntryGranularity)
		assert.Equal(t, lukrum.TradeLong, openClosed.Direction)
		assert.Equal(t, 1.08, openClosed.Price)
		assert.Equal(t, 1.09, openClosed.TP)
		assert.Equal(t, 1.07, openClosed.SL)
		assert.Zero(t, openClosed.Pips)

		assert.Equal(t, EventOpen, openStill.Kind)
		assert.Equal(t, lukrum.TradeShort, openStill.Direction)

		assert.Equal(t, EventClose, closeRow.Kind)
		assert.Equal(t, 1.09, closeRow.Price)
		assert.Equal(t, 100.0, closeRow.Pips)
		assert.Zero(t, closeRow.TP)
		assert.Zero(t, closeRow.SL)
		if assert.NotNil(t, closeRow.Ts) {
			assert.True(t, closeRow.Ts.Equal(time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)))
		}
	}
	mockClient.AssertExpectations(t)
}

func TestBuildModelEvents_ModelInstrumentFallback(t *testing.T) {
	model := lukrum.Model{ID: 4, Instrument: "GBPJPY", EntryGranularity: "15M"}

	// The trade row omits the instrument code entirely.
	mockClient := new(MockClient)
	mockClient.On("GetTradeHistory", mock.Anything, byOrder(lukrum.OrderByTsOpen)).Return(&lukrum.TradeHistoryResponse{
		Trades: []lukrum.TradeRecord{{ID: 1, TradeType: "LONG", TsOpen: strPtr("2025-03-01T10:00:00Z")}},
	}, nil).Once()
	mockClient.On("GetTradeHistory", mock.Anything, byOrder(lukrum.OrderByTsClose)).Return(&lukrum.TradeHistoryResponse{}, nil).Once()

	rows, err := buildModelEvents(context.Background(), mockClient, zap.NewNop(), model, time.Time{}, 100)

	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, lukrum.InstrumentGBPJPY, rows[0].Instrument)
	}
}

func TestBuildModelEvents_FetchErrorDiscardsPartialRows(t *testing.T) {
	model := lukrum.Model{ID: 2, Instrument: "EURUSD"}
	fetchErr := errors.New("connection reset")

	mockClient := new(MockClient)
	mockClient.On("GetTradeHistory", mock.Anything, byOrder(lukrum.OrderByTsOpen)).Return(&lukrum.TradeHistoryResponse{
		Trades: []lukrum.TradeRecord{{ID: 1, TsOpen: strPtr("2025-03-01T10:00:00Z")}},
	}, nil).Once()
	mockClient.On("GetTradeHistory", mock.Anything, byOrder(lukrum.OrderByTsClose)).Return(nil, fetchErr).Once()

	rows, err := buildModelEvents(context.Background(), mockClient, zap.NewNop(), model, time.Time{}, 100)

	assert.ErrorIs(t, err, fetchErr)
	assert.Contains(t, err.Error(), "model 2")
	assert.Nil(t, rows)
	mockClient.AssertExpectations(t)
}
