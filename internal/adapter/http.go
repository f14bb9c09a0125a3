package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/utils"
	"github.com/MKhiriev/go-grocery-list/models"
)

const (
	itemsPath          = "/api/items"
	completedItemsPath = "/api/items/completed"
	versionPath        = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] for the base URL in cfg.
// A missing scheme defaults to http; a trailing slash is dropped.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
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

func (h *httpServerAdapter) GetItems(ctx context.Context) ([]models.GroceryItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(itemsPath)
	if err != nil {
		return nil, h.transportError("get items", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	items := make([]models.GroceryItem, 0)
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: items: %w", ErrDecodingResponse, err)
	}
	if items == nil {
		items = []models.GroceryItem{}
	}

	return items, nil
}

func (h *httpServerAdapter) AddItem(ctx context.Context, item models.NewItem) (models.GroceryItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post(itemsPath)
	if err != nil {
		return models.GroceryItem{}, h.transportError("add item", err)
	}

	return decodeItem(resp)
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Patch(itemPath(id))
	if err != nil {
		return models.GroceryItem{}, h.transportError("update item", err)
	}

	return decodeItem(resp)
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(itemPath(id))
	if err != nil {
		return h.transportError("delete item", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ClearCompleted(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(completedItemsPath)
	if err != nil {
		return h.transportError("clear completed", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", h.transportError("get version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) transportError(op string, err error) error {
	h.logger.Err(err).Str("op", op).Msg("request to server failed")
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}

func decodeItem(resp *resty.Response) (models.GroceryItem, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.GroceryItem{}, err
	}

	var item models.GroceryItem
	if err := json.Unmarshal(resp.Body(), &item); err != nil {
		return models.GroceryItem{}, fmt.Errorf("%w: item: %w", ErrDecodingResponse, err)
	}

	return item, nil
}

func itemPath(id int64) string {
	return itemsPath + "/" + strconv.FormatInt(id, 10)
}
