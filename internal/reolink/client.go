package reolink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/spec-kit/camera-gateway/internal/config"
	"github.com/spec-kit/camera-gateway/internal/domain"
)

// Client talks to the Reolink cloud and owns the single upstream session.
//
// Authentication is lazy: nothing happens until a camera operation needs a
// token, and re-authentication is triggered only by token absence, never by
// the stored expiry. Concurrent authentication attempts are permitted; the
// last writer wins and the outcome is idempotent.
type Client struct {
	baseURL    string
	email      string
	password   string
	cameraUID  string
	sessionTTL time.Duration

	http   *retryablehttp.Client
	logger *zap.Logger

	mu      sync.Mutex
	session domain.UpstreamSession
}

// NewClient builds a client from upstream configuration. Every vendor call is
// bounded by the configured timeout and performed exactly once; no retries.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.Logger = nil
	rc.HTTPClient.Timeout = cfg.Timeout()

	return &Client{
		baseURL:    cfg.BaseURL,
		email:      cfg.Email,
		password:   cfg.Password,
		cameraUID:  cfg.CameraUID,
		sessionTTL: cfg.SessionTTL(),
		http:       rc,
		logger:     logger,
	}
}

// Authenticate performs a full login against the vendor cloud. On success the
// cached session is replaced and true is returned. On vendor-reported failure
// or any network error the previous session fields are left untouched and
// false is returned.
func (c *Client) Authenticate(ctx context.Context) bool {
	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/login", loginRequest{
		Email:    c.email,
		Password: c.password,
	}, "", &resp)
	if err != nil {
		c.logger.Error("upstream authentication error", zap.Error(err))
		return false
	}
	if resp.Code != 0 {
		c.logger.Warn("upstream authentication failed", zap.String("msg", resp.Msg))
		return false
	}

	c.mu.Lock()
	c.session = domain.UpstreamSession{
		AccessToken:  resp.Data.AccessToken,
		RefreshToken: resp.Data.RefreshToken,
		ExpiresAt:    time.Now().Add(c.sessionTTL),
	}
	c.mu.Unlock()

	c.logger.Info("authenticated with upstream")
	return true
}

// ensureAuthenticated authenticates only when no access token is held. The
// stored expiry is deliberately not consulted; a cached token may be stale
// for up to its full lifetime before a vendor rejection surfaces it.
func (c *Client) ensureAuthenticated(ctx context.Context) {
	if c.accessToken() == "" {
		c.Authenticate(ctx)
	}
}

// GetCameraStatus queries the camera and maps the vendor payload to the
// client-facing shape. Pan/tilt/zoom are fixed placeholders; the vendor does
// not report live PTZ position on this endpoint.
func (c *Client) GetCameraStatus(ctx context.Context, cameraUID string) (*domain.CameraStatus, error) {
	c.ensureAuthenticated(ctx)

	var resp cameraResponse
	url := fmt.Sprintf("%s/camera/%s", c.baseURL, cameraUID)
	if err := c.doJSON(ctx, http.MethodGet, url, nil, c.accessToken(), &resp); err != nil {
		return nil, err
	}
	if resp.Code != 0 {
		return nil, fmt.Errorf("%s", resp.Msg)
	}

	status := "Offline"
	if resp.Data.Status == 1 {
		status = "Online"
	}
	return &domain.CameraStatus{
		Status: status,
		Name:   resp.Data.Name,
		UID:    resp.Data.UID,
		Pan:    0,
		Tilt:   0,
		Zoom:   1,
	}, nil
}

// PTZControl sends a single-axis movement command. The vendor body carries
// exactly one key, the direction, mapped to its value.
func (c *Client) PTZControl(ctx context.Context, cameraUID string, direction string, value int) domain.CommandResult {
	c.ensureAuthenticated(ctx)

	var resp commandResponse
	url := fmt.Sprintf("%s/camera/%s/ptz", c.baseURL, cameraUID)
	payload := map[string]int{direction: value}
	if err := c.doJSON(ctx, http.MethodPost, url, payload, c.accessToken(), &resp); err != nil {
		return domain.CommandResult{Success: false, Error: err.Error()}
	}
	if resp.Code != 0 {
		return domain.CommandResult{Success: false, Error: resp.Msg}
	}
	return domain.CommandResult{Success: true, Message: fmt.Sprintf("%s command sent", direction)}
}

// RecallPreset moves the camera to a stored preset position.
func (c *Client) RecallPreset(ctx context.Context, cameraUID string, presetID string) domain.CommandResult {
	c.ensureAuthenticated(ctx)

	var resp commandResponse
	url := fmt.Sprintf("%s/camera/%s/preset/%s", c.baseURL, cameraUID, presetID)
	if err := c.doJSON(ctx, http.MethodPost, url, nil, c.accessToken(), &resp); err != nil {
		return domain.CommandResult{Success: false, Error: err.Error()}
	}
	if resp.Code != 0 {
		return domain.CommandResult{Success: false, Error: resp.Msg}
	}
	return domain.CommandResult{Success: true, Message: "Preset recalled"}
}

// GetPresets lists stored presets. Any failure, vendor-reported or network,
// is swallowed to an empty list; this endpoint never surfaces errors.
func (c *Client) GetPresets(ctx context.Context, cameraUID string) []domain.Preset {
	c.ensureAuthenticated(ctx)

	var resp presetsResponse
	url := fmt.Sprintf("%s/camera/%s/presets", c.baseURL, cameraUID)
	if err := c.doJSON(ctx, http.MethodGet, url, nil, c.accessToken(), &resp); err != nil {
		c.logger.Warn("get presets failed", zap.Error(err))
		return []domain.Preset{}
	}
	if resp.Code != 0 {
		return []domain.Preset{}
	}
	if resp.Data.Presets == nil {
		return []domain.Preset{}
	}
	return resp.Data.Presets
}

// CameraUID returns the configured camera identifier.
func (c *Client) CameraUID() string {
	return c.cameraUID
}

// SessionSnapshot returns a copy of the cached upstream session.
func (c *Client) SessionSnapshot() domain.UpstreamSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Client) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.AccessToken
}

// doJSON performs one bounded HTTP exchange and decodes the JSON response.
// Non-2xx statuses are reported as errors so callers can convert them into
// operation-shaped values.
func (c *Client) doJSON(ctx context.Context, method, url string, body interface{}, bearer string, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
