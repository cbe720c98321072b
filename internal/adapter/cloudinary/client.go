// Package cloudinary removes uploaded documents from the media host.
// Uploads happen directly from the storefront client; the backend only needs
// the destroy side to clean up after finished orders.
package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrDestroyFailed indicates the media host refused to delete the asset.
var ErrDestroyFailed = errors.New("media destroy failed")

// Client exposes media host operations used by the cleanup flow.
type Client interface {
	Destroy(ctx context.Context, remoteID string) error
}

// HTTPClient implements Client via the Cloudinary admin upload API.
type HTTPClient struct {
	baseURL    *url.URL
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	logger     *slog.Logger

	// now is swappable in tests to make signatures deterministic.
	now func() time.Time
}

type destroyResponse struct {
	Result string `json:"result"`
}

// NewHTTPClient creates a media host client with default timeout.
func NewHTTPClient(cloudName, apiKey, apiSecret string, logger *slog.Logger) (*HTTPClient, error) {
	return newHTTPClient("https://api.cloudinary.com", cloudName, apiKey, apiSecret, logger)
}

func newHTTPClient(baseURL, cloudName, apiKey, apiSecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse media host url: %w", err)
	}
	if cloudName == "" {
		return nil, fmt.Errorf("cloud name must be provided")
	}
	return &HTTPClient{
		baseURL:   parsed,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}, nil
}

// Destroy deletes an uploaded asset by its public identifier. A "not found"
// result counts as success: the asset is gone either way.
func (c *HTTPClient) Destroy(ctx context.Context, remoteID string) error {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	signature := c.sign("public_id=" + remoteID + "&timestamp=" + timestamp)

	form := url.Values{}
	form.Set("public_id", remoteID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", signature)

	endpoint := c.baseURL.JoinPath("/v1_1/", c.cloudName, "/image/destroy")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("media destroy request failed",
			slog.String("remote_id", remoteID),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("media host error: %s", resp.Status)
	}

	var data destroyResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return err
	}
	switch data.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrDestroyFailed, data.Result)
	}
}

func (c *HTTPClient) sign(params string) string {
	sum := sha1.Sum([]byte(params + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
