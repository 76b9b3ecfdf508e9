package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"attendance_dashboard/models"
)

var (
	ErrNotConfigured    = errors.New("upstream url not configured")
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
)

const maxBodyBytes = 32 << 20

// Observer receives the outcome of every upstream request.
type Observer interface {
	ObserveUpstream(target string, d time.Duration, err error)
}

// Client reads the attendance and health feeds. Requests are not retried.
type Client struct {
	attendanceURL string
	healthURL     string
	httpClient    *http.Client
	observer      Observer
}

func NewClient(attendanceURL, healthURL string, httpClient *http.Client, observer Observer) *Client {
	if httpClient == nil {
		httpClient = DefaultHTTPClient(10 * time.Second)
	}
	return &Client{
		attendanceURL: strings.TrimSpace(attendanceURL),
		healthURL:     strings.TrimSpace(healthURL),
		httpClient:    httpClient,
		observer:      observer,
	}
}

func DefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (c *Client) FetchAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	var body models.AttendanceListResponse
	if err := c.getJSON(ctx, "attendance", c.attendanceURL, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

func (c *Client) FetchHealth(ctx context.Context) ([]models.HealthReading, error) {
	var body models.HealthListResponse
	if err := c.getJSON(ctx, "health", c.healthURL, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

func (c *Client) getJSON(ctx context.Context, target, url string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveUpstream(target, time.Since(start), err)
		}
	}()

	if url == "" {
		return fmt.Errorf("%s: %w", target, ErrNotConfigured)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error building %s request: %w", target, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error requesting %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned %d: %w", target, resp.StatusCode, ErrUnexpectedStatus)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("error reading %s response: %w", target, err)
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error decoding %s response: %w", target, err)
	}
	return nil
}
