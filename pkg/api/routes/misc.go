package routes

import (
	"github.com/gofiber/fiber/v2"
)

const apiVersion = "v1.0"

// HealthReporter exposes directory readiness for the health surface.
type HealthReporter interface {
	Ready() bool
}

func MiscRouter(router fiber.Router, health HealthReporter) {
	router.Get("/health", getHealth(health))
	router.Get("/version", getVersion)
	router.Get("/info", getInfo)
}

func getHealth(health HealthReporter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !health.Ready() {
			c.Status(fiber.StatusServiceUnavailable)
			return c.SendString("Not ready")
		}

		return c.SendString("OK")
	}
}

func getVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": apiVersion,
	})
}

func getInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "NaoLaMetric",
		"version":     apiVersion,
		"description": "LaMetric Time frames for the Nantes transit network (TAN/Naolib)",
		"endpoints": []fiber.Map{
			{"path": "/", "method": "GET", "description": "Upcoming arrivals as LaMetric frames"},
			{"path": "/stops", "method": "GET", "description": "Stop search"},
			{"path": "/popular-stops", "method": "GET", "description": "Curated popular stops"},
			{"path": "/health", "method": "GET", "description": "Service health"},
			{"path": "/info", "method": "GET", "description": "API documentation"},
		},
		"parameters": []fiber.Map{
			{"name": "stop", "type": "string", "required": true, "description": "Stop code (COMM, GSNO...)"},
			{"name": "line", "type": "string", "required": false, "description": "Line filter (1, 2, C1...)"},
			{"name": "direction", "type": "integer", "required": false, "description": "Direction (1 or 2)"},
			{"name": "limit", "type": "integer", "required": false, "description": "Result count (1-10)"},
			{"name": "show_terminus", "type": "boolean", "required": false, "description": "Include destination"},
		},
		"examples": []fiber.Map{
			{"description": "Arrivals at Commerce", "url": "/?stop=COMM"},
			{"description": "Line 1 towards direction 1", "url": "/?stop=COMM&line=1&direction=1"},
			{"description": "5 arrivals with terminus", "url": "/?stop=GSNO&limit=5&show_terminus=true"},
			{"description": "Search stops", "url": "/stops?search=gare"},
		},
	})
}
