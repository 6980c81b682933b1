// Package forecast fetches avalanche forecasts from the Avalanche Canada API
// and renders them onto a TFT display.
package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production Avalanche Canada API endpoint.
const DefaultBaseURL = "https://api.avalanche.ca"

// Forecast is the point-forecast product for one location.
type Forecast struct {
	Report Report `json:"report"`
}

// Report carries the forecast body.
type Report struct {
	Title         string         `json:"title"`
	DangerRatings []DangerRating `json:"dangerRatings"`
}

// DangerRating holds one day's ratings for the three elevation bands.
type DangerRating struct {
	Date    DisplayDate `json:"date"`
	Ratings BandRatings `json:"ratings"`
}

// DisplayDate is a date with a human-readable rendering.
type DisplayDate struct {
	Display string `json:"display"`
}

// BandRatings groups the per-elevation-band ratings.
type BandRatings struct {
	Alpine        Band `json:"alp"`
	Treeline      Band `json:"tln"`
	BelowTreeline Band `json:"btl"`
}

// Band is one elevation band's rating.
type Band struct {
	Rating Rating `json:"rating"`
}

// Rating is a danger rating with its machine value ("low", "moderate",
// "considerable", "high", "extreme") and display text.
type Rating struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

// Client fetches forecasts. The zero value uses the production API and
// http.DefaultClient.
type Client struct {
	// HTTPClient overrides the HTTP client used for requests.
	HTTPClient *http.Client

	// BaseURL overrides the API endpoint, for testing.
	BaseURL string
}

// Point fetches the forecast for a latitude/longitude.
func (c *Client) Point(ctx context.Context, lat, lon float64) (*Forecast, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{
		"lat":  []string{strconv.FormatFloat(lat, 'f', -1, 64)},
		"long": []string{strconv.FormatFloat(lon, 'f', -1, 64)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		base+"/forecasts/en/products/point?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast: unexpected status %s", resp.Status)
	}

	var f Forecast
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("forecast: decode failed: %w", err)
	}
	return &f, nil
}

// Timeout is a sensible per-request deadline for use with Point.
const Timeout = 30 * time.Second
