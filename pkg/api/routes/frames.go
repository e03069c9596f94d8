package routes

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/naolametric/naolametric/pkg/transit"
	"github.com/rs/zerolog/log"
)

// FrameResolver resolves a validated query into LaMetric frames.
type FrameResolver interface {
	ResolveArrivals(ctx context.Context, query transit.Query) (transit.FrameResponse, error)
}

// Caller-facing error vocabulary. The LaMetric display is 37px wide so
// these stay terse.
const (
	errorTextNoStop   = "No stop"
	errorTextBadStop  = "Bad stop"
	errorTextBadDir   = "Bad dir"
	errorTextUpstream = "API err"
)

func FramesRouter(router fiber.Router, resolver FrameResolver, defaultStop string) {
	router.Get("/", getFrames(resolver, defaultStop))
}

func getFrames(resolver FrameResolver, defaultStop string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stopCode := strings.ToUpper(c.Query("stop"))
		if stopCode == "" {
			stopCode = strings.ToUpper(defaultStop)
		}

		if stopCode == "" {
			c.Status(fiber.StatusBadRequest)
			return c.JSON(transit.ErrorFrame(errorTextNoStop))
		}

		query := transit.Query{
			Stop:         stopCode,
			Line:         strings.ToUpper(c.Query("line")),
			Direction:    transit.Direction(c.QueryInt("direction")),
			Limit:        c.QueryInt("limit"),
			ShowTerminus: c.QueryBool("show_terminus"),
		}

		response, err := resolver.ResolveArrivals(c.UserContext(), query)
		if err != nil {
			return frameError(c, err)
		}

		return c.JSON(response)
	}
}

func frameError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, transit.ErrUnknownStop):
		c.Status(fiber.StatusBadRequest)
		return c.JSON(transit.ErrorFrame(errorTextBadStop))
	case errors.Is(err, transit.ErrInvalidDirection):
		c.Status(fiber.StatusBadRequest)
		return c.JSON(transit.ErrorFrame(errorTextBadDir))
	default:
		// Unreachable and bad-response failures render the same to
		// the display; the distinction lives in the logs.
		log.Error().Err(err).Msg("Arrivals lookup failed")
		c.Status(fiber.StatusBadGateway)
		return c.JSON(transit.ErrorFrame(errorTextUpstream))
	}
}
