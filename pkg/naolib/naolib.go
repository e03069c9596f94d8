// Package naolib talks to the Naolib (TAN) open data API for the Nantes
// transit network. It performs no caching; the stop directory cache sits
// above it and arrivals are always fetched live.
package naolib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/naolametric/naolametric/pkg/transit"
	"github.com/naolametric/naolametric/pkg/util"
)

const userAgent = "naolametric"

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// AllStops retrieves the full stop directory in one call. Either the
// complete set is returned or an error is; there are no partial results.
func (c *Client) AllStops(ctx context.Context) ([]transit.Stop, error) {
	var stops []transit.Stop
	if err := c.getJSON(ctx, fmt.Sprintf("%s/arrets.json", c.endpoint), &stops); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("%w: stop directory missing", transit.ErrUpstreamBadResponse)
		}
		return nil, err
	}

	// Records without a code can never be looked up, drop them at the
	// boundary.
	util.InPlaceFilter(&stops, func(stop transit.Stop) bool {
		return stop.Code != ""
	})

	return stops, nil
}

// StopArrivals retrieves live arrivals for one stop, preserving upstream
// ordering (soonest first). The Naolib endpoint takes no filter parameters
// so line and direction filters are applied client side.
func (c *Client) StopArrivals(ctx context.Context, stopCode string, line string, direction transit.Direction) ([]transit.Arrival, error) {
	var arrivals []transit.Arrival
	err := c.getJSON(ctx, fmt.Sprintf("%s/tempsattente.json/%s", c.endpoint, stopCode), &arrivals)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("stop %s: %w", stopCode, transit.ErrUnknownStop)
		}
		return nil, err
	}

	util.InPlaceFilter(&arrivals, func(arrival transit.Arrival) bool {
		if line != "" && !strings.EqualFold(arrival.Line, line) {
			return false
		}
		if direction != transit.DirectionNone && arrival.Direction != direction {
			return false
		}
		return true
	})

	return arrivals, nil
}

var errNotFound = errors.New("not found")

func (c *Client) getJSON(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", transit.ErrUpstreamUnreachable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts are reported the same as any other transport
		// failure.
		return fmt.Errorf("%w: %s", transit.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", transit.ErrUpstreamBadResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", transit.ErrUpstreamUnreachable, err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: %s", transit.ErrUpstreamBadResponse, err)
	}

	return nil
}
