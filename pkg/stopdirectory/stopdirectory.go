// Package stopdirectory owns the in-memory catalog of every stop on the
// network. The catalog lives in immutable generations swapped atomically by
// a background refresh, so readers are never blocked and never observe a
// half replaced directory.
package stopdirectory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/naolametric/naolametric/pkg/transit"
	"github.com/rs/zerolog/log"
)

// StopSource provides the full upstream stop directory.
type StopSource interface {
	AllStops(ctx context.Context) ([]transit.Stop, error)
}

// generation is one complete immutable snapshot of the directory.
type generation struct {
	number uint64

	byCode  map[string]transit.Stop
	ordered []transit.Stop
}

type Directory struct {
	source          StopSource
	popularCodes    []string
	refreshInterval time.Duration

	current         atomic.Pointer[generation]
	refreshFailures atomic.Uint64
}

func NewDirectory(source StopSource, popularCodes []string, refreshInterval time.Duration) *Directory {
	return &Directory{
		source:          source,
		popularCodes:    popularCodes,
		refreshInterval: refreshInterval,
	}
}

// Populate fetches the full stop set and swaps it in as a new generation.
// On failure the previously served generation, if any, stays authoritative.
func (d *Directory) Populate(ctx context.Context) error {
	stops, err := d.source.AllStops(ctx)
	if err != nil {
		return err
	}

	if len(stops) == 0 {
		// An empty directory would validate nothing and reject
		// everything; treat it as a bad upstream payload.
		return fmt.Errorf("%w: empty stop directory", transit.ErrUpstreamBadResponse)
	}

	next := &generation{
		byCode:  make(map[string]transit.Stop, len(stops)),
		ordered: make([]transit.Stop, 0, len(stops)),
	}

	for _, stop := range stops {
		code := strings.ToUpper(stop.Code)
		if _, exists := next.byCode[code]; exists {
			continue
		}
		next.byCode[code] = stop
		next.ordered = append(next.ordered, stop)
	}

	sort.Slice(next.ordered, func(i, j int) bool {
		return next.ordered[i].Code < next.ordered[j].Code
	})

	if previous := d.current.Load(); previous != nil {
		next.number = previous.number + 1
	}

	d.current.Store(next)

	log.Info().
		Uint64("generation", next.number).
		Int("stops", len(next.byCode)).
		Msg("Stop directory populated")

	return nil
}

// PopulateWithRetry performs the blocking first population, retrying with
// exponential backoff until the upstream answers or the deadline passes.
func (d *Directory) PopulateWithRetry(ctx context.Context, maxElapsed time.Duration) error {
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = maxElapsed

	return backoff.Retry(func() error {
		err := d.Populate(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Stop directory population failed, retrying")
		}
		return err
	}, backoff.WithContext(retryBackoff, ctx))
}

// Run refreshes the directory on a fixed interval until the context is
// cancelled. Refresh failures are logged and counted; the previous
// generation keeps serving.
func (d *Directory) Run(ctx context.Context) {
	ticker := time.NewTicker(d.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.Populate(ctx); err != nil {
				d.refreshFailures.Add(1)
				log.Error().
					Err(err).
					Uint64("failures", d.refreshFailures.Load()).
					Msg("Stop directory refresh failed, keeping previous generation")
			}
		}
	}
}

// Ready reports whether the first successful population has completed.
func (d *Directory) Ready() bool {
	return d.current.Load() != nil
}

// Generation returns the number of the currently served generation.
func (d *Directory) Generation() uint64 {
	if gen := d.current.Load(); gen != nil {
		return gen.number
	}
	return 0
}

// RefreshFailures returns how many background refreshes have failed since
// start.
func (d *Directory) RefreshFailures() uint64 {
	return d.refreshFailures.Load()
}

// StopCount returns the size of the current generation.
func (d *Directory) StopCount() int {
	if gen := d.current.Load(); gen != nil {
		return len(gen.byCode)
	}
	return 0
}

// Lookup finds a stop by exact code, case insensitively, against the
// current generation.
func (d *Directory) Lookup(code string) (transit.Stop, bool) {
	gen := d.current.Load()
	if gen == nil {
		return transit.Stop{}, false
	}

	stop, exists := gen.byCode[strings.ToUpper(code)]
	return stop, exists
}

// Search returns stops whose name or code contains the given substring,
// case insensitively, ordered by stop code and truncated to limit.
func (d *Directory) Search(substring string, limit int) []transit.Stop {
	gen := d.current.Load()
	if gen == nil {
		return nil
	}

	substring = strings.ToLower(substring)

	var matches []transit.Stop
	for _, stop := range gen.ordered {
		if substring != "" &&
			!strings.Contains(strings.ToLower(stop.Name), substring) &&
			!strings.Contains(strings.ToLower(stop.Code), substring) {
			continue
		}

		matches = append(matches, stop)
		if limit > 0 && len(matches) >= limit {
			break
		}
	}

	return matches
}

// PopularStops resolves the curated shortlist against the current
// generation, preserving the curated order. Codes the upstream no longer
// knows are silently dropped.
func (d *Directory) PopularStops() []transit.Stop {
	gen := d.current.Load()
	if gen == nil {
		return nil
	}

	stops := make([]transit.Stop, 0, len(d.popularCodes))
	for _, code := range d.popularCodes {
		if stop, exists := gen.byCode[strings.ToUpper(code)]; exists {
			stops = append(stops, stop)
		}
	}

	return stops
}
