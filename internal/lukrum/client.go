package lukrum

import (
	"context"
	"fmt"

	"lukrum-models-go/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client defines the interface for the Lukrum Models API client.
type Client interface {
	GetModels(ctx context.Context, filters ModelFilters) ([]Model, error)
	GetModelByUUID(ctx context.Context, uuid string) (*Model, error)
	CreateModel(ctx context.Context, req ModelCreateRequest) error
	UpdateModel(ctx context.Context, modelID int64, req ModelUpdateRequest) error
	DeleteModel(ctx context.Context, modelID int64) error
	GetActiveStats(ctx context.Context) (*ActiveStats, error)
	GetEntryGranularities(ctx context.Context) ([]string, error)
	GetExitGranularities(ctx context.Context) ([]string, error)
	GetTradeHistory(ctx context.Context, query TradeHistoryQuery) (*TradeHistoryResponse, error)
	GetModelStats(ctx context.Context, modelID int64) (*ModelStats, error)
}

// RestClient is a client for the Lukrum Models API.
// It implements the Client interface.
type RestClient struct {
	client  *resty.Client
	apiKey  string
	logger  *zap.Logger
	limiter *rate.Limiter
}

// ensure RestClient implements the interface
var _ Client = (*RestClient)(nil)

// NewRestClient creates a new Lukrum Models API client. Each call builds an
// independent resty session; concurrent workers construct their own client
// rather than sharing one.
func NewRestClient(cfg *config.API, logger *zap.Logger) *RestClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	// rate.Limit is requests per second.
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)

	return &RestClient{
		client:  client,
		apiKey:  cfg.ApiKey,
		logger:  logger,
		limiter: limiter,
	}
}

// doRequest executes one request against the API, pacing it through the rate
// limiter and translating non-2xx responses into the typed error taxonomy.
// Failed requests are not retried here.
func (c *RestClient) doRequest(ctx context.Context, method, path string, req *resty.Request) (*resty.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	req.SetContext(ctx)
	req.SetError(&errorBody{})
	if c.apiKey != "" {
		req.SetHeader("X-API-Key", c.apiKey)
	}

	c.logger.Debug("Executing request", zap.String("method", method), zap.String("path", path))
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}

	if resp.IsError() {
		body, _ := resp.Error().(*errorBody)
		apiErr := newAPIError(resp.StatusCode(), path, body)
		c.logger.Warn("API returned an error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.Error(apiErr),
		)
		return nil, apiErr
	}

	return resp, nil
}
