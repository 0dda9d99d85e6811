package config

import "time"

// Config holds runtime configuration for the client.
type Config struct {
	LogLevel      string
	LogFormat     string
	LiveInterval  time.Duration
	SnapshotDir   string
	ScrapeBaseURL string
	SportsDB      SportsDBConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		LogLevel:      envOrDefault(envLogLevel, ""),
		LogFormat:     envOrDefault(envLogFormat, ""),
		LiveInterval:  durationEnvOrDefault(envLiveInterval, defaultLiveInterval),
		SnapshotDir:   envOrDefault(envSnapshotDir, defaultSnapshotDir),
		ScrapeBaseURL: envOrDefault(envScrapeBaseURL, defaultScrapeBaseURL),
		SportsDB:      loadSportsDB(),
		Metrics:       loadMetrics(),
	}
}
