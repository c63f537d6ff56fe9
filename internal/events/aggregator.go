package events

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"lukrum-models-go/internal/config"
	"lukrum-models-go/internal/lukrum"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize   = 500
	defaultMaxWorkers = 8
)

// Aggregator reconstructs the globally time-ordered trade-event stream
// across many models. It holds no state between runs.
type Aggregator struct {
	cfg    *config.Config
	logger *zap.Logger

	// newClient builds a transport session. Every worker calls it once so
	// no session is shared across goroutines.
	newClient func() lukrum.Client
}

// NewAggregator creates an aggregator backed by the real REST client.
func NewAggregator(cfg *config.Config, logger *zap.Logger) *Aggregator {
	a := &Aggregator{cfg: cfg, logger: logger}
	a.newClient = func() lukrum.Client {
		return lukrum.NewRestClient(&a.cfg.API, a.logger)
	}
	return a
}

// StreamOptions selects the models and the window of the aggregation run.
type StreamOptions struct {
	Active     bool
	ModelUUIDs []string
	StartDate  time.Time
	PageSize   int
	MaxWorkers int
}

// BuildTradeEventStream fetches the trade history of every selected model,
// maps each trade to its OPEN and CLOSE event rows, and returns all rows
// sorted by event timestamp. The run is fail-fast: the first model fetch
// that fails cancels the in-flight workers and is returned as the only
// error; no partial stream is produced.
func (a *Aggregator) BuildTradeEventStream(ctx context.Context, opts StreamOptions) ([]MarketEvent, error) {
	for _, u := range opts.ModelUUIDs {
		if _, err := uuid.Parse(u); err != nil {
			return nil, &lukrum.ValidationError{
				APIError: lukrum.APIError{
					StatusCode: http.StatusBadRequest,
					Message:    "invalid model uuid: " + u,
					Endpoint:   "/models",
				},
				Details: []lukrum.ValidationDetail{{Field: "uuids", Message: err.Error()}},
			}
		}
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	models, err := a.newClient().GetModels(ctx, lukrum.ModelFilters{
		UUIDs:  opts.ModelUUIDs,
		Active: &opts.Active,
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("Starting trade event aggregation",
		zap.Int("models", len(models)),
		zap.Int("max_workers", maxWorkers),
		zap.Int("page_size", pageSize),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	var mu sync.Mutex
	var all []MarketEvent

	for _, m := range models {
		model := m
		g.Go(func() error {
			// Each worker owns its own transport session.
			client := a.newClient()
			rows, err := buildModelEvents(gctx, client, a.logger, model, opts.StartDate, pageSize)
			if err != nil {
				return err
			}
			mu.Lock()
			all = append(all, rows...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortEvents(all)

	a.logger.Info("Trade event aggregation complete", zap.Int("rows", len(all)))
	return all, nil
}

// sortEvents orders rows by event timestamp ascending, nil timestamps first.
// The sort is stable; rows with equal timestamps keep their input order.
func sortEvents(rows []MarketEvent) {
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := rows[i].Ts, rows[j].Ts
		if ti == nil || tj == nil {
			return ti == nil && tj != nil
		}
		return ti.Before(*tj)
	})
}
