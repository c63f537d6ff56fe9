package lukrum

// Instrument is a currency pair traded by a model. The vocabulary is closed:
// codes outside it do not resolve.
type Instrument string

const (
	InstrumentEURUSD Instrument = "EURUSD"
	InstrumentGBPUSD Instrument = "GBPUSD"
	InstrumentUSDJPY Instrument = "USDJPY"
	InstrumentUSDCHF Instrument = "USDCHF"
	InstrumentAUDUSD Instrument = "AUDUSD"
	InstrumentUSDCAD Instrument = "USDCAD"
	InstrumentNZDUSD Instrument = "NZDUSD"
	InstrumentEURGBP Instrument = "EURGBP"
	InstrumentEURJPY Instrument = "EURJPY"
	InstrumentGBPJPY Instrument = "GBPJPY"
)

var instruments = map[string]Instrument{
	string(InstrumentEURUSD): InstrumentEURUSD,
	string(InstrumentGBPUSD): InstrumentGBPUSD,
	string(InstrumentUSDJPY): InstrumentUSDJPY,
	string(InstrumentUSDCHF): InstrumentUSDCHF,
	string(InstrumentAUDUSD): InstrumentAUDUSD,
	string(InstrumentUSDCAD): InstrumentUSDCAD,
	string(InstrumentNZDUSD): InstrumentNZDUSD,
	string(InstrumentEURGBP): InstrumentEURGBP,
	string(InstrumentEURJPY): InstrumentEURJPY,
	string(InstrumentGBPJPY): InstrumentGBPJPY,
}

// ParseInstrument resolves a raw instrument code. Unknown codes return
// ok=false and the zero Instrument.
func ParseInstrument(code string) (Instrument, bool) {
	i, ok := instruments[code]
	return i, ok
}

// TradeDirection is the side of a trade.
type TradeDirection string

const (
	TradeLong  TradeDirection = "LONG"
	TradeShort TradeDirection = "SHORT"
)

// ParseTradeDirection resolves a raw trade-type code. Unknown codes return
// ok=false; callers keep the raw value in that case.
func ParseTradeDirection(code string) (TradeDirection, bool) {
	switch TradeDirection(code) {
	case TradeLong:
		return TradeLong, true
	case TradeShort:
		return TradeShort, true
	default:
		return "", false
	}
}

// TradeResult is the outcome of a closed trade. Open trades carry the empty
// value.
type TradeResult string

const (
	ResultTakeProfit TradeResult = "TP"
	ResultStopLoss   TradeResult = "SL"
)

// Model is a configured trading strategy instance as returned by the API.
type Model struct {
	ID               int64  `json:"id"`
	ModelUUID        string `json:"model_uuid"`
	Name             string `json:"name"`
	Active           int    `json:"active"`
	ExitType         string `json:"exit_type"`
	TPPips           int    `json:"tp_pips"`
	SLPips           int    `json:"sl_pips"`
	Instrument       string `json:"instrument"`
	EntryGranularity string `json:"entry_granularity"`
	ExitGranularity  string `json:"exit_granularity"`
}

// TradeRecord is one raw trade-history row as decoded from the API. The
// timestamp fields keep their wire representation; normalization happens in
// the events package.
type TradeRecord struct {
	ID          int64   `json:"id"`
	ModelID     int64   `json:"model_id"`
	ModelUUID   string  `json:"model_uuid"`
	Instrument  string  `json:"instrument"`
	TradeType   string  `json:"trade_type"`
	TradeResult string  `json:"trade_result"`
	TsOpen      *string `json:"ts_open"`
	TsClose     *string `json:"ts_close"`
	OpenPrice   float64 `json:"open_price"`
	ClosePrice  float64 `json:"close_price"`
	TP          float64 `json:"tp"`
	SL          float64 `json:"sl"`
	Pips        float64 `json:"pips"`
	Balance     float64 `json:"balance"`
	Score       float64 `json:"score"`
}

// TradeHistoryResponse is the paged envelope of the /trade-history endpoint.
type TradeHistoryResponse struct {
	Count  int           `json:"count"`
	Trades []TradeRecord `json:"trades"`
}

// ModelStats holds aggregated statistics for one model's trade history.
type ModelStats struct {
	ModelID     int64   `json:"model_id"`
	TotalTrades int     `json:"total_trades"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"win_rate"`
	TotalPips   float64 `json:"total_pips"`
	AveragePips float64 `json:"average_pips"`
}

// ActiveStats holds counts of active models grouped by instrument and
// entry/exit granularity.
type ActiveStats struct {
	Total           int            `json:"total"`
	ByInstrument    map[string]int `json:"by_instrument"`
	ByEntryGranular map[string]int `json:"by_entry_granularity"`
	ByExitGranular  map[string]int `json:"by_exit_granularity"`
}

// ModelCreateRequest is the body of POST /models.
type ModelCreateRequest struct {
	Name             string `json:"name"`
	ModelUUID        string `json:"model_uuid"`
	Active           int    `json:"active"`
	ExitType         string `json:"exit_type"`
	TPPips           int    `json:"tp_pips"`
	SLPips           int    `json:"sl_pips"`
	Instrument       string `json:"instrument"`
	EntryGranularity string `json:"entry_granularity"`
	ExitGranularity  string `json:"exit_granularity"`
}

// ModelUpdateRequest is the body of PUT /models/{id}. Nil fields are left
// unchanged by the server.
type ModelUpdateRequest struct {
	Name            *string `json:"name,omitempty"`
	Active          *int    `json:"active,omitempty"`
	ExitType        *string `json:"exit_type,omitempty"`
	TPPips          *int    `json:"tp_pips,omitempty"`
	SLPips          *int    `json:"sl_pips,omitempty"`
	ExitGranularity *string `json:"exit_granularity,omitempty"`
}
