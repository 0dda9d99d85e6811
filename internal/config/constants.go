package config

import "time"

const (
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envLiveInterval = "LIVE_POLL_INTERVAL"
	envSnapshotDir  = "SNAPSHOT_DIR"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// Live data goes stale fast; anything slower makes the score ticker lag.
	defaultLiveInterval = 30 * time.Second
	defaultSnapshotDir  = "data/widget"
	defaultMetricsPort  = "9090"
)
