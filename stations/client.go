package stations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Source yields a fresh station snapshot. Satisfied by Client; the name
// cache depends on this interface so tests can substitute a fake feed.
type Source interface {
	FetchStations(ctx context.Context) ([]Station, error)
}

// Client is an HTTP client for the station status feed.
type Client struct {
	feedURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given feed URL.
func NewClient(feedURL string, timeout time.Duration) *Client {
	return &Client{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchStations retrieves the feed and flattens each feature's properties
// into a Station. The numeric feed id becomes the string station id.
func (c *Client) FetchStations(ctx context.Context) ([]Station, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", c.feedURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.feedURL)
	}
	var doc feedDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode station feed: %w", err)
	}

	out := make([]Station, 0, len(doc.Features))
	for _, f := range doc.Features {
		p := f.Properties
		bikes := p.Bikes
		if bikes == nil {
			bikes = []BikeInfo{}
		}
		out = append(out, Station{
			ID:                     strconv.Itoa(p.ID),
			Name:                   p.Name,
			Lat:                    p.Latitude,
			Lng:                    p.Longitude,
			BikesAvailable:         p.BikesAvailable,
			DocksAvailable:         p.DocksAvailable,
			TotalDocks:             p.TotalDocks,
			ClassicBikesAvailable:  p.ClassicBikesAvailable,
			ElectricBikesAvailable: p.ElectricBikesAvailable,
			SmartBikesAvailable:    p.SmartBikesAvailable,
			KioskStatus:            p.KioskStatus,
			KioskPublicStatus:      p.KioskPublicStatus,
			AddressStreet:          p.AddressStreet,
			AddressCity:            p.AddressCity,
			AddressState:           p.AddressState,
			AddressZipCode:         p.AddressZipCode,
			Bikes:                  bikes,
		})
	}
	return out, nil
}
