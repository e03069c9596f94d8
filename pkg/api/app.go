package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/naolametric/naolametric/pkg/api/routes"
	"github.com/naolametric/naolametric/pkg/config"
)

// Directory is everything the gateway needs from the stop directory cache.
type Directory interface {
	routes.StopDirectory
	routes.HealthReporter
}

// CreateServer wires up the fiber application. Listening is left to the
// caller so tests can drive the app directly.
func CreateServer(cfg config.AppConfig, resolver routes.FrameResolver, directory Directory) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	routes.FramesRouter(webApp, resolver, cfg.DefaultStop)
	routes.StopsRouter(webApp, directory, cfg.Display.MaxSearchResults)
	routes.MiscRouter(webApp, directory)

	return webApp
}

func SetupServer(listen string, cfg config.AppConfig, resolver routes.FrameResolver, directory Directory) error {
	return CreateServer(cfg, resolver, directory).Listen(listen)
}
