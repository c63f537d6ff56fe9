package events

import (
	"context"
	"fmt"
	"time"

	"lukrum-models-go/internal/lukrum"

	"go.uber.org/zap"
)

// buildModelEvents collects the full event row list for one model: all OPEN
// rows from the open-time traversal, then all CLOSE rows from the close-time
// traversal. Any fetch failure aborts the model without a partial result.
// The caller supplies the client, so each worker runs on its own session.
func buildModelEvents(ctx context.Context, client lukrum.Client, logger *zap.Logger, model lukrum.Model, since time.Time, pageSize int) ([]MarketEvent, error) {
	var rows []MarketEvent

	opens := newTradePager(ctx, client, logger, model.ID, lukrum.OrderByTsOpen, since, pageSize)
	for t, ok := opens.Next(); ok; t, ok = opens.Next() {
		rows = append(rows, newEvent(model, t, EventOpen))
	}
	if err := opens.Err(); err != nil {
		return nil, fmt.Errorf("model %d: fetching opened trades: %w", model.ID, err)
	}

	closes := newTradePager(ctx, client, logger, model.ID, lukrum.OrderByTsClose, since, pageSize)
	for t, ok := closes.Next(); ok; t, ok = closes.Next() {
		rows = append(rows, newEvent(model, t, EventClose))
	}
	if err := closes.Err(); err != nil {
		return nil, fmt.Errorf("model %d: fetching closed trades: %w", model.ID, err)
	}

	logger.Debug("Built model event rows", zap.Int64("model_id", model.ID), zap.Int("rows", len(rows)))
	return rows, nil
}

// newEvent maps one normalized trade to the open or close half of its event
// pair. OPEN rows carry the trade's target prices and open price; CLOSE rows
// carry the close price and the realized pip delta.
func newEvent(model lukrum.Model, t Trade, kind EventKind) MarketEvent {
	ev := MarketEvent{
		ModelID:          model.ID,
		Instrument:       t.Instrument,
		EntryGranularity: model.EntryGranularity,
		Kind:             kind,
		Direction:        t.Direction,
	}
	if ev.Instrument == "" {
		// The trade row may omit the instrument; fall back to the model's.
		if inst, ok := lukrum.ParseInstrument(model.Instrument); ok {
			ev.Instrument = inst
		}
	}

	switch kind {
	case EventOpen:
		ev.Ts = t.TsOpen
		ev.TP = t.TP
		ev.SL = t.SL
		ev.Price = t.OpenPrice
	case EventClose:
		ev.Ts = t.TsClose
		ev.Price = t.ClosePrice
		ev.Pips = t.Pips
	}
	return ev
}
