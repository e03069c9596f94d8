package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/naolametric/naolametric/pkg/util"
	"gopkg.in/yaml.v3"
)

// Curated shortlist of well known Nantes stops, used when no override is
// configured. Order is display order.
var defaultPopularStops = []string{
	"COMM", "GSNO", "CRQU", "HVNA", "OGVA", "NETR", "VTOU",
	"SDON", "OTAG", "BOFA", "DCAN", "BJOI", "FMIT", "HALU",
}

func defaults() AppConfig {
	return AppConfig{
		Listen: ":8080",
		Upstream: UpstreamConfig{
			Endpoint:       "https://open.tan.fr/ewp",
			TimeoutSeconds: 10,
		},
		Directory: DirectoryConfig{
			RefreshMinutes: 60,
			PopularStops:   defaultPopularStops,
		},
		Display: DisplayConfig{
			DefaultLimit:       2,
			MaxLimit:           10,
			MaxSearchResults:   500,
			MaxTerminusDisplay: 12,
		},
	}
}

// Load builds the application configuration from defaults, an optional YAML
// file and NAOLAMETRIC_* environment overrides, then validates it. A missing
// file is not an error; defaults plus environment are enough to run.
func Load(path string) (AppConfig, error) {
	cfg := defaults()

	if path == "" {
		path = "config.yml"
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return AppConfig{}, err
	}

	applyEnvironment(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func applyEnvironment(cfg *AppConfig) {
	env := util.GetEnvironmentVariables()

	if env["PORT"] != "" {
		cfg.Listen = ":" + env["PORT"]
	}
	if env["NAOLAMETRIC_LISTEN"] != "" {
		cfg.Listen = env["NAOLAMETRIC_LISTEN"]
	}
	if env["NAOLAMETRIC_STOP_CODE"] != "" {
		cfg.DefaultStop = env["NAOLAMETRIC_STOP_CODE"]
	}
	if env["NAOLAMETRIC_UPSTREAM_ENDPOINT"] != "" {
		cfg.Upstream.Endpoint = env["NAOLAMETRIC_UPSTREAM_ENDPOINT"]
	}
	if env["NAOLAMETRIC_UPSTREAM_TIMEOUT"] != "" {
		if n, err := strconv.Atoi(env["NAOLAMETRIC_UPSTREAM_TIMEOUT"]); err == nil {
			cfg.Upstream.TimeoutSeconds = n
		}
	}
	if env["NAOLAMETRIC_REFRESH_MINUTES"] != "" {
		if n, err := strconv.Atoi(env["NAOLAMETRIC_REFRESH_MINUTES"]); err == nil {
			cfg.Directory.RefreshMinutes = n
		}
	}
}
