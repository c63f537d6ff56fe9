package events

import (
	"time"

	"lukrum-models-go/internal/lukrum"
)

// EventKind marks a row as the opening or closing half of a trade.
type EventKind string

const (
	EventOpen  EventKind = "OPEN"
	EventClose EventKind = "CLOSE"
)

// MarketEvent is one row of the aggregated trade-event stream: either the
// open or the close of a single trade. TP, SL and Price are taken from the
// side of the trade the row represents; Pips is only set on CLOSE rows.
type MarketEvent struct {
	ModelID          int64                 `json:"model_id"`
	Instrument       lukrum.Instrument     `json:"instrument,omitempty"`
	EntryGranularity string                `json:"entry_granularity"`
	Ts               *time.Time            `json:"ts"`
	Kind             EventKind             `json:"event"`
	Direction        lukrum.TradeDirection `json:"trade"`
	TP               float64               `json:"tp"`
	SL               float64               `json:"sl"`
	Price            float64               `json:"price"`
	Pips             float64               `json:"pip"`
}
