// Package openmeteo implements rainfall.Archive against the Open-Meteo
// historical weather API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/diyakohli02/rwh-assessment-service/internal/rainfall"
)

// Client implements rainfall.Archive using the Open-Meteo archive endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an Open-Meteo archive client bounded by the given timeout.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://archive-api.open-meteo.com/v1/archive",
		logger:  logger,
	}
}

// DailyPrecipitation fetches the daily precipitation totals (mm) for one
// calendar year at the given coordinates. Days the archive has no value for
// come back as zero.
func (c *Client) DailyPrecipitation(ctx context.Context, coords rainfall.Coordinates, year int) ([]float64, error) {
	params := url.Values{
		"latitude":   {strconv.FormatFloat(coords.Lat, 'f', 6, 64)},
		"longitude":  {strconv.FormatFloat(coords.Lon, 'f', 6, 64)},
		"start_date": {fmt.Sprintf("%d-01-01", year)},
		"end_date":   {fmt.Sprintf("%d-12-31", year)},
		"daily":      {"precipitation_sum"},
		"timezone":   {"auto"},
	}
	fullURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("archive request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
	}

	var archive response
	if err := json.NewDecoder(resp.Body).Decode(&archive); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if archive.Error {
		return nil, fmt.Errorf("open-meteo API error: %s", archive.Reason)
	}
	if archive.Daily == nil || archive.Daily.PrecipitationSum == nil {
		return nil, fmt.Errorf("open-meteo response missing precipitation data")
	}

	// Null entries mark days without a measurement; treat them as dry.
	daily := make([]float64, len(archive.Daily.PrecipitationSum))
	for i, v := range archive.Daily.PrecipitationSum {
		if v != nil {
			daily[i] = *v
		}
	}
	return daily, nil
}

// Open-Meteo API response types.

type response struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
	Daily  *daily `json:"daily"`
}

type daily struct {
	Time             []string   `json:"time"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
}
