// Package seeucafe is the typed HTTP client for the cafe's delivery API.
// Every call reports failure explicitly as one of the apperr kinds; nothing
// is coerced into a default value.
package seeucafe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"courier-agent/internal/apperr"
	"courier-agent/internal/domain"
)

// TokenSource supplies the current bearer token, empty when unauthenticated.
type TokenSource interface {
	Token() string
}

// Client issues typed requests against the delivery API.
type Client struct {
	baseURL *url.URL
	httpc   *http.Client
	tokens  TokenSource
}

// NewClient creates a delivery API client for the given base URL
// (e.g. "http://localhost:3000/api").
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", apperr.ErrBadURL, baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: u,
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
	}, nil
}

// Login authenticates the courier by employee code. On success it returns
// the courier profile and the bearer token issued by the server (empty when
// the server issues none).
func (c *Client) Login(ctx context.Context, employeeCode string) (*domain.Courier, string, error) {
	var resp loginResponse
	status, err := c.doJSON(ctx, http.MethodPost, c.endpoint("auth", "employee-login"),
		loginRequest{EmployeeID: employeeCode}, &resp)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if !resp.Success {
		return nil, "", fmt.Errorf("login: %w", apperr.NewServerError(status, resp.Message))
	}
	if resp.Employee == nil {
		return nil, "", fmt.Errorf("login: missing employee in response: %w", apperr.ErrDecoding)
	}
	courier := employeeToDomain(*resp.Employee)
	return &courier, resp.Token, nil
}

// FetchDeliveries lists the courier's assigned deliveries, optionally
// filtered by status.
func (c *Client) FetchDeliveries(ctx context.Context, courierID int64, status *domain.Status) ([]domain.Delivery, *Pagination, error) {
	u := c.endpoint("deliveries")
	q := u.Query()
	q.Set("employeeId", strconv.FormatInt(courierID, 10))
	if status != nil {
		q.Set("status", string(*status))
	}
	u.RawQuery = q.Encode()

	var resp deliveryListResponse
	if _, err := c.doJSON(ctx, http.MethodGet, u, nil, &resp); err != nil {
		return nil, nil, fmt.Errorf("fetch deliveries: %w", err)
	}
	return deliveriesToDomain(resp.Data), resp.Pagination, nil
}

// UpdateStatus patches a delivery's status and returns the server's
// authoritative view of the delivery.
func (c *Client) UpdateStatus(ctx context.Context, deliveryID int64, status domain.Status, notes string) (domain.Delivery, error) {
	u := c.endpoint("deliveries", strconv.FormatInt(deliveryID, 10), "status")

	var resp deliveryDTO
	body := updateStatusRequest{Status: string(status), Notes: notes}
	if _, err := c.doJSON(ctx, http.MethodPatch, u, body, &resp); err != nil {
		return domain.Delivery{}, fmt.Errorf("update status: %w", err)
	}
	return deliveryToDomain(resp), nil
}

// UpdateLocation mirrors the courier's current position to the server for
// the given delivery. The response body is opaque and discarded.
func (c *Client) UpdateLocation(ctx context.Context, deliveryID int64, sample domain.LocationSample) error {
	u := c.endpoint("deliveries", strconv.FormatInt(deliveryID, 10), "location")

	body := locationUpdateRequest{
		Latitude:       sample.Latitude,
		Longitude:      sample.Longitude,
		LocationNote:   sample.Note,
		NotifyCustomer: sample.NotifyCustomer,
	}
	if _, err := c.doJSON(ctx, http.MethodPatch, u, body, nil); err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

func (c *Client) endpoint(parts ...string) *url.URL {
	return c.baseURL.JoinPath(parts...)
}

// doJSON performs one request/response round trip. It returns the HTTP
// status so callers can attach it to ServerError for success:false bodies.
func (c *Client) doJSON(ctx context.Context, method string, u *url.URL, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", apperr.ErrEncoding, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrBadURL, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read body: %v", apperr.ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return resp.StatusCode, apperr.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		return resp.StatusCode, apperr.NewServerError(resp.StatusCode, eb.text())
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: %v", apperr.ErrDecoding, err)
		}
	}
	return resp.StatusCode, nil
}
