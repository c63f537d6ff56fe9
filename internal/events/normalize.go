package events

import (
	"time"

	"lukrum-models-go/internal/lukrum"
)

// Trade is a trade record with its wire-level fields resolved: timestamps as
// absolute UTC instants and string codes as enumerations.
type Trade struct {
	ID        int64
	ModelID   int64
	ModelUUID string

	// Instrument is empty when the raw code is not in the vocabulary.
	Instrument lukrum.Instrument

	// Direction keeps the raw code when it does not resolve, so unknown
	// trade types survive normalization.
	Direction lukrum.TradeDirection

	Result lukrum.TradeResult

	TsOpen  *time.Time
	TsClose *time.Time

	OpenPrice  float64
	ClosePrice float64
	TP         float64
	SL         float64
	Pips       float64
	Balance    float64
	Score      float64
}

// eventTimeLayouts are the accepted wire formats for trade timestamps, tried
// in order: RFC-2822 style first (with named zone or numeric offset), then
// ISO-8601 with and without an explicit zone.
var eventTimeLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseEventTime resolves a wire timestamp to a UTC instant. Unparseable or
// nil inputs resolve to nil rather than an error.
func parseEventTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// normalizeTrade converts one raw trade record into its canonical form.
// It never fails: an unrecognized instrument is dropped, an unrecognized
// trade direction is passed through raw, and an unparseable timestamp
// becomes nil.
func normalizeTrade(rec lukrum.TradeRecord) Trade {
	t := Trade{
		ID:         rec.ID,
		ModelID:    rec.ModelID,
		ModelUUID:  rec.ModelUUID,
		Result:     lukrum.TradeResult(rec.TradeResult),
		TsOpen:     parseEventTime(rec.TsOpen),
		TsClose:    parseEventTime(rec.TsClose),
		OpenPrice:  rec.OpenPrice,
		ClosePrice: rec.ClosePrice,
		TP:         rec.TP,
		SL:         rec.SL,
		Pips:       rec.Pips,
		Balance:    rec.Balance,
		Score:      rec.Score,
	}

	if inst, ok := lukrum.ParseInstrument(rec.Instrument); ok {
		t.Instrument = inst
	}

	if dir, ok := lukrum.ParseTradeDirection(rec.TradeType); ok {
		t.Direction = dir
	} else {
		t.Direction = lukrum.TradeDirection(rec.TradeType)
	}

	return t
}
