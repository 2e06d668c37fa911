package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and configures
// the underlying resty client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli, logger: log}, nil
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
		return "", fmt.Errorf("parse address: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address %q has no host", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) GetSyncRecord(ctx context.Context, fileID string) (models.SyncRecord, error) {
	var record models.SyncRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&record).
		SetPathParam("fileID", fileID).
		Get("/api/records/{fileID}")
	if err != nil {
		return models.SyncRecord{}, fmt.Errorf("get sync record request: %w", ErrRemoteUnavailable)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncRecord{}, err
	}

	record.Source = models.SourceAuthoritative
	return record, nil
}

func (h *httpServerAdapter) ListRecords(ctx context.Context, userID string) ([]models.SyncRecord, error) {
	var records []models.SyncRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&records).
		SetQueryParam("user_id", userID).
		Get("/api/records")
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", ErrRemoteUnavailable)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Source = models.SourceAuthoritative
	}
	return records, nil
}

func (h *httpServerAdapter) Checkout(ctx context.Context, fileID, userID, machineID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CheckoutRequest{FileID: fileID, UserID: userID, MachineID: machineID}).
		Post("/api/records/checkout")
	if err != nil {
		return fmt.Errorf("checkout request: %w", ErrRemoteUnavailable)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Checkin(ctx context.Context, req models.CheckinRequest) (int64, error) {
	var result models.CheckinResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/records/checkin")
	if err != nil {
		return 0, fmt.Errorf("checkin request: %w", ErrRemoteUnavailable)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}
	if !result.Success {
		return 0, fmt.Errorf("checkin rejected: %s", result.Error)
	}

	return result.NewVersion, nil
}

func (h *httpServerAdapter) FirstCheckin(ctx context.Context, req models.FirstCheckinRequest) (models.SyncRecord, error) {
	var record models.SyncRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&record).
		Post("/api/records")
	if err != nil {
		return models.SyncRecord{}, fmt.Errorf("first checkin request: %w", ErrRemoteUnavailable)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncRecord{}, err
	}

	record.Source = models.SourceAuthoritative
	return record, nil
}

func (h *httpServerAdapter) IsMachineOnline(ctx context.Context, userID, machineID string) (bool, error) {
	var result models.PresenceResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetQueryParams(map[string]string{
			"user_id":    userID,
			"machine_id": machineID,
		}).
		Get("/api/presence")
	if err != nil {
		return false, fmt.Errorf("presence request: %w", ErrRemoteUnavailable)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Online, nil
}

func (h *httpServerAdapter) ForceRelease(ctx context.Context, fileID, adminUserID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"file_id": fileID, "admin_user_id": adminUserID}).
		Post("/api/records/force-release")
	if err != nil {
		return fmt.Errorf("force release request: %w", ErrRemoteUnavailable)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DownloadContent(ctx context.Context, fileID string) (io.ReadCloser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetPathParam("fileID", fileID).
		Get("/api/records/{fileID}/content")
	if err != nil {
		return nil, fmt.Errorf("download content request: %w", ErrRemoteUnavailable)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		body := resp.RawBody()
		if body != nil {
			_ = body.Close()
		}
		if resp.StatusCode() == 404 {
			return nil, fmt.Errorf("%w: content of %s", ErrNotFound, fileID)
		}
		return nil, fmt.Errorf("%w: download content http %d", ErrRemoteUnavailable, resp.StatusCode())
	}

	return resp.RawBody(), nil
}

func (h *httpServerAdapter) UndoCheckout(ctx context.Context, fileID, userID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"file_id": fileID, "user_id": userID}).
		Post("/api/records/undo-checkout")
	if err != nil {
		return fmt.Errorf("undo checkout request: %w", ErrRemoteUnavailable)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteRecord(ctx context.Context, fileID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("fileID", fileID).
		Delete("/api/records/{fileID}")
	if err != nil {
		return fmt.Errorf("delete record request: %w", ErrRemoteUnavailable)
	}

	return mapHTTPError(resp)
}
