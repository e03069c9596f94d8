package config

// UpstreamConfig describes the Naolib open-data API connection.
type UpstreamConfig struct {
	Endpoint       string `yaml:"endpoint" validate:"required,url"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" validate:"gt=0"`
}

// DirectoryConfig controls the stop directory cache.
type DirectoryConfig struct {
	RefreshMinutes int `yaml:"refreshMinutes" validate:"gt=0"`

	// PopularStops overrides the curated default shortlist. Codes are
	// resolved against the live directory, unknown ones are dropped.
	PopularStops []string `yaml:"popularStops"`
}

// DisplayConfig bounds what gets rendered for the LaMetric client.
type DisplayConfig struct {
	DefaultLimit       int `yaml:"defaultLimit" validate:"gt=0"`
	MaxLimit           int `yaml:"maxLimit" validate:"gt=0"`
	MaxSearchResults   int `yaml:"maxSearchResults" validate:"gt=0"`
	MaxTerminusDisplay int `yaml:"maxTerminusDisplay" validate:"gt=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Listen      string `yaml:"listen" validate:"required"`
	DefaultStop string `yaml:"defaultStop"`

	Upstream  UpstreamConfig  `yaml:"upstream"`
	Directory DirectoryConfig `yaml:"directory"`
	Display   DisplayConfig   `yaml:"display"`
}
