package events

import (
	"context"
	"time"

	"lukrum-models-go/internal/lukrum"

	"go.uber.org/zap"
)

// tradePager walks one sorted trade-history stream for a single model,
// page by page, in the manner of sql.Rows: call Next until it returns
// false, then check Err. The traversal is not restartable.
//
// The offset always advances by the page size, not by the number of rows
// kept, so it stays aligned with the remote's absolute offset space even
// when rows are skipped. Traversal ends when the remote returns a page
// shorter than the page size.
type tradePager struct {
	ctx      context.Context
	client   lukrum.Client
	logger   *zap.Logger
	modelID  int64
	orderBy  string
	since    time.Time
	pageSize int

	offset int
	buf    []Trade
	done   bool
	err    error
}

func newTradePager(ctx context.Context, client lukrum.Client, logger *zap.Logger, modelID int64, orderBy string, since time.Time, pageSize int) *tradePager {
	return &tradePager{
		ctx:      ctx,
		client:   client,
		logger:   logger,
		modelID:  modelID,
		orderBy:  orderBy,
		since:    since,
		pageSize: pageSize,
	}
}

// Next yields the next normalized trade in sort order. It returns false when
// the stream is exhausted or a fetch failed; Err distinguishes the two.
func (p *tradePager) Next() (Trade, bool) {
	for {
		if len(p.buf) > 0 {
			t := p.buf[0]
			p.buf = p.buf[1:]
			return t, true
		}
		if p.done || p.err != nil {
			return Trade{}, false
		}
		p.fetchPage()
	}
}

// Err reports the failure that ended the traversal, if any.
func (p *tradePager) Err() error {
	return p.err
}

func (p *tradePager) fetchPage() {
	query := lukrum.TradeHistoryQuery{
		ModelID: p.modelID,
		Limit:   p.pageSize,
		Offset:  p.offset,
		OrderBy: p.orderBy,
		Order:   lukrum.OrderAsc,
	}
	if !p.since.IsZero() {
		since := p.since
		if p.orderBy == lukrum.OrderByTsClose {
			query.TsCloseStart = &since
		} else {
			query.TsOpenStart = &since
		}
	}

	resp, err := p.client.GetTradeHistory(p.ctx, query)
	if err != nil {
		p.err = err
		return
	}

	p.logger.Debug("Fetched trade history page",
		zap.Int64("model_id", p.modelID),
		zap.String("order_by", p.orderBy),
		zap.Int("offset", p.offset),
		zap.Int("rows", len(resp.Trades)),
	)

	for _, rec := range resp.Trades {
		t := normalizeTrade(rec)
		// When walking by close time, rows without a close timestamp have
		// not closed yet; they are skipped but still occupy offset space.
		if p.orderBy == lukrum.OrderByTsClose && t.TsClose == nil {
			continue
		}
		p.buf = append(p.buf, t)
	}

	if len(resp.Trades) < p.pageSize {
		p.done = true
	}
	p.offset += p.pageSize
}
