package lukrum

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ModelFilters narrows the result of GetModels. Zero-valued fields are not
// sent to the API.
type ModelFilters struct {
	UUIDs            []string
	Active           *bool
	EntryGranularity []string
	ExitGranularity  []string
}

// GetModels fetches all models matching the given filters.
func (c *RestClient) GetModels(ctx context.Context, filters ModelFilters) ([]Model, error) {
	type modelsResponse struct {
		Models []Model `json:"models"`
	}

	req := c.client.R().SetResult(&modelsResponse{})

	if len(filters.UUIDs) > 0 {
		req.SetQueryParam("uuids", strings.Join(filters.UUIDs, ","))
	}
	if filters.Active != nil {
		active := "0"
		if *filters.Active {
			active = "1"
		}
		req.SetQueryParam("active", active)
	}
	if len(filters.EntryGranularity) > 0 {
		req.SetQueryParam("entry_granularity", strings.Join(filters.EntryGranularity, ","))
	}
	if len(filters.ExitGranularity) > 0 {
		req.SetQueryParam("exit_granularity", strings.Join(filters.ExitGranularity, ","))
	}

	resp, err := c.doRequest(ctx, "GET", "/models", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get models: %w", err)
	}

	result := resp.Result().(*modelsResponse)
	return result.Models, nil
}

// GetModelByUUID fetches a single model by its UUID.
func (c *RestClient) GetModelByUUID(ctx context.Context, uuid string) (*Model, error) {
	req := c.client.R().SetResult(&Model{})

	resp, err := c.doRequest(ctx, "GET", "/models/"+uuid, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get model %s: %w", uuid, err)
	}

	return resp.Result().(*Model), nil
}

// CreateModel creates a new model.
func (c *RestClient) CreateModel(ctx context.Context, body ModelCreateRequest) error {
	req := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	if _, err := c.doRequest(ctx, "POST", "/models", req); err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}
	return nil
}

// UpdateModel updates a model by ID.
func (c *RestClient) UpdateModel(ctx context.Context, modelID int64, body ModelUpdateRequest) error {
	req := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	path := "/models/" + strconv.FormatInt(modelID, 10)
	if _, err := c.doRequest(ctx, "PUT", path, req); err != nil {
		return fmt.Errorf("failed to update model %d: %w", modelID, err)
	}
	return nil
}

// DeleteModel deletes a model by ID.
func (c *RestClient) DeleteModel(ctx context.Context, modelID int64) error {
	path := "/models/" + strconv.FormatInt(modelID, 10)
	if _, err := c.doRequest(ctx, "DELETE", path, c.client.R()); err != nil {
		return fmt.Errorf("failed to delete model %d: %w", modelID, err)
	}
	return nil
}

// GetActiveStats fetches counts of active models grouped by instrument and
// entry/exit granularity.
func (c *RestClient) GetActiveStats(ctx context.Context) (*ActiveStats, error) {
	req := c.client.R().SetResult(&ActiveStats{})

	resp, err := c.doRequest(ctx, "GET", "/models/active_stats", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get active stats: %w", err)
	}

	return resp.Result().(*ActiveStats), nil
}

// GetEntryGranularities fetches the distinct entry granularities in use.
func (c *RestClient) GetEntryGranularities(ctx context.Context) ([]string, error) {
	type granularitiesResponse struct {
		EntryGranularities []string `json:"entry_granularities"`
	}

	req := c.client.R().SetResult(&granularitiesResponse{})

	resp, err := c.doRequest(ctx, "GET", "/models/entry_granularities", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry granularities: %w", err)
	}

	return resp.Result().(*granularitiesResponse).EntryGranularities, nil
}

// GetExitGranularities fetches the distinct exit granularities in use.
func (c *RestClient) GetExitGranularities(ctx context.Context) ([]string, error) {
	type granularitiesResponse struct {
		ExitGranularities []string `json:"exit_granularities"`
	}

	req := c.client.R().SetResult(&granularitiesResponse{})

	resp, err := c.doRequest(ctx, "GET", "/models/exit_granularities", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get exit granularities: %w", err)
	}

	return resp.Result().(*granularitiesResponse).ExitGranularities, nil
}
