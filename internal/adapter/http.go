package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/blueprint-utils/internal/config"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/policy"
	"github.com/MKhiriev/blueprint-utils/internal/utils"
	"github.com/MKhiriev/blueprint-utils/models"
)

type httpBlueprintClient struct {
	client *utils.HTTPClient
	prefix string

	logger *logger.Logger
}

// NewHTTPBlueprintClient constructs an HTTP implementation of
// [BlueprintClient]. The bearer token and API key from cfg, when set, are
// attached to every request.
func NewHTTPBlueprintClient(cfg config.ClientConfig, logger *logger.Logger) (BlueprintClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if token := strings.TrimSpace(cfg.Token); token != "" {
		client.SetAuthToken(token)
	}
	if cfg.APIKey != "" {
		client.SetHeader(policy.APIKeyHeader, cfg.APIKey)
	}

	return &httpBlueprintClient{
		client: client,
		prefix: strings.TrimRight(cfg.Prefix, "/"),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlueprintClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpBlueprintClient) Count(ctx context.Context, model string, where Where) (int64, error) {
	return h.count(ctx, h.path(model, "count"), where)
}

func (h *httpBlueprintClient) AssociationCount(ctx context.Context, model, id, collection string, where Where) (int64, error) {
	return h.count(ctx, h.path(model, url.PathEscape(id), collection, "count"), where)
}

func (h *httpBlueprintClient) count(ctx context.Context, path string, where Where) (int64, error) {
	req := h.client.R().SetContext(ctx)
	if err := setWhere(req, where); err != nil {
		return 0, err
	}

	var result models.CountResponse
	resp, err := req.SetResult(&result).Get(path)
	if err != nil {
		return 0, fmt.Errorf("count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	h.logger.Debug().Str("path", path).Int64("count", result.Count).Msg("count received")
	return result.Count, nil
}

func (h *httpBlueprintClient) Associations(ctx context.Context, model string) ([]models.Association, error) {
	var result models.AssociationsResponse
	if err := h.get(ctx, h.path(model, "associations"), &result); err != nil {
		return nil, err
	}
	return result.Associations, nil
}

func (h *httpBlueprintClient) Schema(ctx context.Context, model string) (models.Attributes, error) {
	var result models.SchemaResponse
	if err := h.get(ctx, h.path(model, "schema"), &result); err != nil {
		return nil, err
	}
	return result.Schema, nil
}

func (h *httpBlueprintClient) Filters(ctx context.Context, model string) ([]models.Filter, error) {
	var result models.FiltersResponse
	if err := h.get(ctx, h.path(model, "filters"), &result); err != nil {
		return nil, err
	}
	return result.Filters, nil
}

func (h *httpBlueprintClient) Titles(ctx context.Context, model string) (map[string]string, error) {
	var result models.TitlesResponse
	if err := h.get(ctx, h.path(model, "titles"), &result); err != nil {
		return nil, err
	}
	return result.Titles, nil
}

func (h *httpBlueprintClient) get(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpBlueprintClient) path(segments ...string) string {
	return h.prefix + "/" + strings.Join(segments, "/")
}

func setWhere(req *resty.Request, where Where) error {
	if len(where) == 0 {
		return nil
	}
	raw, err := json.Marshal(where)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWhere, err)
	}
	req.SetQueryParam("where", string(raw))
	return nil
}
