package lukrum

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Sort keys accepted by the /trade-history endpoint.
const (
	OrderByTsOpen  = "ts_open"
	OrderByTsClose = "ts_close"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// tsQueryLayout is the timestamp format the API accepts in filter parameters.
const tsQueryLayout = "2006-01-02 15:04:05"

// TradeHistoryQuery holds the filter set of the /trade-history endpoint.
// Zero-valued fields are not sent.
type TradeHistoryQuery struct {
	ModelID      int64
	ModelUUID    string
	TradeType    string
	TradeResult  string
	TsOpenStart  *time.Time
	TsOpenEnd    *time.Time
	TsCloseStart *time.Time
	TsCloseEnd   *time.Time
	MinPips      *float64
	MaxPips      *float64
	MinBalance   *float64
	MaxBalance   *float64
	Open         *bool
	Limit        int
	Offset       int
	OrderBy      string
	Order        string
}

// GetTradeHistory fetches one page of trade history matching the query.
func (c *RestClient) GetTradeHistory(ctx context.Context, query TradeHistoryQuery) (*TradeHistoryResponse, error) {
	req := c.client.R().SetResult(&TradeHistoryResponse{})

	if query.ModelID != 0 {
		req.SetQueryParam("model_id", strconv.FormatInt(query.ModelID, 10))
	}
	if query.ModelUUID != "" {
		req.SetQueryParam("model_uuid", query.ModelUUID)
	}
	if query.TradeType != "" {
		req.SetQueryParam("trade_type", query.TradeType)
	}
	if query.TradeResult != "" {
		req.SetQueryParam("trade_result", query.TradeResult)
	}
	if query.TsOpenStart != nil {
		req.SetQueryParam("ts_open_start", query.TsOpenStart.UTC().Format(tsQueryLayout))
	}
	if query.TsOpenEnd != nil {
		req.SetQueryParam("ts_open_end", query.TsOpenEnd.UTC().Format(tsQueryLayout))
	}
	if query.TsCloseStart != nil {
		req.SetQueryParam("ts_close_start", query.TsCloseStart.UTC().Format(tsQueryLayout))
	}
	if query.TsCloseEnd != nil {
		req.SetQueryParam("ts_close_end", query.TsCloseEnd.UTC().Format(tsQueryLayout))
	}
	if query.MinPips != nil {
		req.SetQueryParam("min_pips", strconv.FormatFloat(*query.MinPips, 'f', -1, 64))
	}
	if query.MaxPips != nil {
		req.SetQueryParam("max_pips", strconv.FormatFloat(*query.MaxPips, 'f', -1, 64))
	}
	if query.MinBalance != nil {
		req.SetQueryParam("min_balance", strconv.FormatFloat(*query.MinBalance, 'f', -1, 64))
	}
	if query.MaxBalance != nil {
		req.SetQueryParam("max_balance", strconv.FormatFloat(*query.MaxBalance, 'f', -1, 64))
	}
	if query.Open != nil {
		req.SetQueryParam("open", strconv.FormatBool(*query.Open))
	}
	if query.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(query.Offset))
	}
	if query.OrderBy != "" {
		req.SetQueryParam("order_by", query.OrderBy)
	}
	if query.Order != "" {
		req.SetQueryParam("order", query.Order)
	}

	resp, err := c.doRequest(ctx, "GET", "/trade-history", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get trade history: %w", err)
	}

	return resp.Result().(*TradeHistoryResponse), nil
}

// GetModelStats fetches aggregated statistics for one model's trade history.
func (c *RestClient) GetModelStats(ctx context.Context, modelID int64) (*ModelStats, error) {
	req := c.client.R().SetResult(&ModelStats{})

	path := "/trade-history/stats/" + strconv.FormatInt(modelID, 10)
	resp, err := c.doRequest(ctx, "GET", path, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for model %d: %w", modelID, err)
	}

	return resp.Result().(*ModelStats), nil
}
