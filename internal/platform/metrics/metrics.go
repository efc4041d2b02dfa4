package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "patientintake"

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter

	IntakeSessions           metric.Int64Counter
	IntakeSubmissions        metric.Int64Counter
	IntakeValidationFailures metric.Int64Counter

	meter    metric.Meter
	registry *prometheus.Registry
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(meterProvider)

	p := &Provider{
		meter:    meterProvider.Meter(meterName),
		registry: registry,
	}

	counters := []struct {
		dst         *metric.Int64Counter
		name        string
		description string
	}{
		{&p.RequestsTotal, "http_requests", "Total number of HTTP requests"},
		{&p.IntakeSessions, "intake_sessions", "Number of intake form sessions created"},
		{&p.IntakeSubmissions, "intake_submissions", "Number of intake submissions accepted"},
		{&p.IntakeValidationFailures, "intake_validation_failures", "Number of rejected intake fields, labelled by field"},
	}
	for _, c := range counters {
		if *c.dst, err = p.meter.Int64Counter(c.name, metric.WithDescription(c.description)); err != nil {
			return nil, err
		}
	}

	p.RequestDuration, err = p.meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	)
	if err != nil {
		return nil, err
	}

	p.RequestsInFlight, err = p.meter.Int64UpDownCounter(
		"http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"),
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// ObserveOpenSessions exports count as a gauge sampled on every scrape.
func (p *Provider) ObserveOpenSessions(count func(ctx context.Context) (int, error)) error {
	_, err := p.meter.Int64ObservableGauge(
		"intake_open_sessions",
		metric.WithDescription("Number of intake sessions currently held in memory"),
		metric.WithInt64Callback(func(ctx context.Context, o metric.Int64Observer) error {
			n, err := count(ctx)
			if err != nil {
				return err
			}
			o.Observe(int64(n))
			return nil
		}),
	)
	return err
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
