package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP handler,
// and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "unrivaled-games-service"
	}

	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, nil, err
	}
	promHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	opts := []sdkmetric.Option{sdkmetric.WithReader(promExp)}

	if cfg.OtlpEndpoint != "" {
		otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.OtlpEndpoint)}
		if cfg.OtlpInsecure {
			otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
		}
		otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second))))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := newOtelInstruments(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

type otelInstruments struct {
	ctx             context.Context
	sourceFetches   metric.Int64Counter
	sourceErrors    metric.Int64Counter
	sourceLatencyMs metric.Float64Histogram
	cacheLookups    metric.Int64Counter
	scrapeFallbacks metric.Int64Counter
	liveCycles      metric.Int64Counter
	liveErrors      metric.Int64Counter
	liveLatencyMs   metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("unrivaled-games-service")

	sourceFetches, err := meter.Int64Counter("source_fetches_total")
	if err != nil {
		return nil, err
	}
	sourceErrors, err := meter.Int64Counter("source_errors_total")
	if err != nil {
		return nil, err
	}
	sourceLatency, err := meter.Float64Histogram("source_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	cacheLookups, err := meter.Int64Counter("cache_lookups_total")
	if err != nil {
		return nil, err
	}
	scrapeFallbacks, err := meter.Int64Counter("scrape_fallbacks_total")
	if err != nil {
		return nil, err
	}
	liveCycles, err := meter.Int64Counter("live_poll_cycles_total")
	if err != nil {
		return nil, err
	}
	liveErrors, err := meter.Int64Counter("live_poll_errors_total")
	if err != nil {
		return nil, err
	}
	liveLatency, err := meter.Float64Histogram("live_poll_cycle_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:             context.Background(),
		sourceFetches:   sourceFetches,
		sourceErrors:    sourceErrors,
		sourceLatencyMs: sourceLatency,
		cacheLookups:    cacheLookups,
		scrapeFallbacks: scrapeFallbacks,
		liveCycles:      liveCycles,
		liveErrors:      liveErrors,
		liveLatencyMs:   liveLatency,
	}, nil
}

func (o *otelInstruments) recordSourceFetch(source string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrSource, source))
	o.sourceFetches.Add(o.ctx, 1, attrs)
	o.sourceLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.sourceErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordCache(source string, hit bool) {
	if o == nil {
		return
	}
	o.cacheLookups.Add(o.ctx, 1, metric.WithAttributes(
		attribute.String(AttrSource, source),
		attribute.Bool(AttrHit, hit),
	))
}

func (o *otelInstruments) recordScrapeFallback() {
	if o == nil {
		return
	}
	o.scrapeFallbacks.Add(o.ctx, 1)
}

func (o *otelInstruments) recordLiveCycle(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.liveCycles.Add(o.ctx, 1)
	o.liveLatencyMs.Record(o.ctx, float64(duration.Milliseconds()))
	if err != nil {
		o.liveErrors.Add(o.ctx, 1)
	}
}
