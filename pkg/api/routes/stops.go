package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/naolametric/naolametric/pkg/transit"
)

// StopDirectory is the slice of the stop directory cache the gateway needs.
type StopDirectory interface {
	Search(substring string, limit int) []transit.Stop
	PopularStops() []transit.Stop
	Ready() bool
}

func StopsRouter(router fiber.Router, directory StopDirectory, maxResults int) {
	router.Get("/stops", searchStops(directory, maxResults))
	router.Get("/popular-stops", getPopularStops(directory))
}

func searchStops(directory StopDirectory, maxResults int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !directory.Ready() {
			c.Status(fiber.StatusServiceUnavailable)
			return c.JSON(fiber.Map{
				"error": "Stop directory not ready",
			})
		}

		limit := c.QueryInt("limit", maxResults)
		if limit < 1 || limit > maxResults {
			limit = maxResults
		}

		stops := directory.Search(strings.ToLower(c.Query("search")), limit)
		if stops == nil {
			stops = []transit.Stop{}
		}

		return c.JSON(stops)
	}
}

func getPopularStops(directory StopDirectory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !directory.Ready() {
			c.Status(fiber.StatusServiceUnavailable)
			return c.JSON(fiber.Map{
				"error": "Stop directory not ready",
			})
		}

		stops := directory.PopularStops()
		if stops == nil {
			stops = []transit.Stop{}
		}

		return c.JSON(stops)
	}
}
