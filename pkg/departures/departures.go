// Package departures resolves a validated query into display-ready frames:
// it validates against the stop directory, fetches live arrivals from the
// upstream and renders each retained arrival as one frame.
package departures

import (
	"context"
	"fmt"

	"github.com/naolametric/naolametric/pkg/transit"
	"github.com/naolametric/naolametric/pkg/util"
)

// ArrivalSource provides live arrivals for one stop, with optional line and
// direction filters applied.
type ArrivalSource interface {
	StopArrivals(ctx context.Context, stopCode string, line string, direction transit.Direction) ([]transit.Arrival, error)
}

// StopLookup is the slice of the stop directory the resolver needs.
type StopLookup interface {
	Lookup(code string) (transit.Stop, bool)
}

type Resolver struct {
	directory StopLookup
	upstream  ArrivalSource

	defaultLimit       int
	maxLimit           int
	maxTerminusDisplay int
}

func NewResolver(directory StopLookup, upstream ArrivalSource, defaultLimit int, maxLimit int, maxTerminusDisplay int) *Resolver {
	return &Resolver{
		directory: directory,
		upstream:  upstream,

		defaultLimit:       defaultLimit,
		maxLimit:           maxLimit,
		maxTerminusDisplay: maxTerminusDisplay,
	}
}

// ResolveArrivals runs the full pipeline for one query. Validation order is
// fixed: stop code first, then direction; a query broken in both dimensions
// reports the unknown stop. The resolver never retries; one upstream call
// per request, bounded by the context.
func (r *Resolver) ResolveArrivals(ctx context.Context, query transit.Query) (transit.FrameResponse, error) {
	if _, exists := r.directory.Lookup(query.Stop); !exists {
		return transit.FrameResponse{}, fmt.Errorf("stop %s: %w", query.Stop, transit.ErrUnknownStop)
	}

	if query.Direction != transit.DirectionNone && !query.Direction.Valid() {
		return transit.FrameResponse{}, fmt.Errorf("direction %d: %w", query.Direction, transit.ErrInvalidDirection)
	}

	arrivals, err := r.upstream.StopArrivals(ctx, query.Stop, query.Line, query.Direction)
	if err != nil {
		return transit.FrameResponse{}, err
	}

	if len(arrivals) == 0 {
		return transit.NoArrivalsFrame(), nil
	}

	limit := r.clampLimit(query.Limit)
	if len(arrivals) > limit {
		arrivals = arrivals[:limit]
	}

	frames := make([]transit.DisplayFrame, 0, len(arrivals))
	for _, arrival := range arrivals {
		frames = append(frames, r.renderFrame(arrival, query.ShowTerminus))
	}

	return transit.FrameResponse{Frames: frames}, nil
}

func (r *Resolver) clampLimit(limit int) int {
	if limit <= 0 {
		return r.defaultLimit
	}
	if limit > r.maxLimit {
		return r.maxLimit
	}
	return limit
}

func (r *Resolver) renderFrame(arrival transit.Arrival, showTerminus bool) transit.DisplayFrame {
	wait := arrival.WaitMinutes
	if wait < 0 {
		// Upstream occasionally reports a passage slightly in the
		// past; show it as due now.
		wait = 0
	}

	var text string
	if showTerminus {
		terminus := arrival.Destination
		if len([]rune(terminus)) > r.maxTerminusDisplay {
			terminus = util.TrimString(terminus, r.maxTerminusDisplay-1) + "."
		}
		text = fmt.Sprintf("%s %s %dmn", arrival.Line, terminus, wait)
	} else {
		text = fmt.Sprintf("L%s %dmn", arrival.Line, wait)
	}

	return transit.DisplayFrame{
		Icon: transit.IconForLine(arrival.Line),
		Text: text,
	}
}
