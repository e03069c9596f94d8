package api

import (
	"context"
	"time"

	"github.com/naolametric/naolametric/pkg/config"
	"github.com/naolametric/naolametric/pkg/departures"
	"github.com/naolametric/naolametric/pkg/naolib"
	"github.com/naolametric/naolametric/pkg/stopdirectory"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v2"
)

const initialPopulateMaxElapsed = 5 * time.Minute

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the LaMetric frames web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides config",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to the configuration file",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					listen := c.String("listen")
					if listen == "" {
						listen = cfg.Listen
					}

					client := naolib.NewClient(
						cfg.Upstream.Endpoint,
						time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
					)

					directory := stopdirectory.NewDirectory(
						client,
						cfg.Directory.PopularStops,
						time.Duration(cfg.Directory.RefreshMinutes)*time.Minute,
					)

					ctx := context.Background()

					// The directory is useless to callers before its
					// first population, so block on it.
					if err := directory.PopulateWithRetry(ctx, initialPopulateMaxElapsed); err != nil {
						return err
					}

					resolver := departures.NewResolver(
						directory,
						client,
						cfg.Display.DefaultLimit,
						cfg.Display.MaxLimit,
						cfg.Display.MaxTerminusDisplay,
					)

					var wg conc.WaitGroup
					wg.Go(func() {
						directory.Run(ctx)
					})
					wg.Go(func() {
						if err := SetupServer(listen, cfg, resolver, directory); err != nil {
							log.Fatal().Err(err).Msg("Web server failed")
						}
					})
					wg.Wait()

					return nil
				},
			},
		},
	}
}
