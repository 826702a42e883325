package gesture

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/phanxgames/gesture"

// Metrics holds the OTEL counters a Recognizer records to.
// All counters are cumulative and safe for concurrent use.
type Metrics struct {
	Taps          metric.Int64Counter
	ZoomSequences metric.Int64Counter
	PanEvents     metric.Int64Counter
	// Desyncs is partitioned by kind: missed_release, quarantined.
	Desyncs  metric.Int64Counter
	Rejected metric.Int64Counter
}

// NewMetrics creates the instruments on the global MeterProvider. They are
// no-ops when no provider is registered.
func NewMetrics() (*Metrics, error) {
	return NewMetricsWithMeter(otel.Meter(meterName))
}

// NewMetricsWithMeter creates the instruments on meter.
func NewMetricsWithMeter(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.Taps, err = meter.Int64Counter("gesture.taps",
		metric.WithDescription("Multi-finger taps recognised, partitioned by finger count"),
		metric.WithUnit("{tap}"))
	if err != nil {
		return nil, err
	}

	m.ZoomSequences, err = meter.Int64Counter("gesture.zoom.sequences",
		metric.WithDescription("Pinch-zoom sequences started"),
		metric.WithUnit("{sequence}"))
	if err != nil {
		return nil, err
	}

	m.PanEvents, err = meter.Int64Counter("gesture.pan.events",
		metric.WithDescription("Scroll commands issued by finger drags"),
		metric.WithUnit("{event}"))
	if err != nil {
		return nil, err
	}

	m.Desyncs, err = meter.Int64Counter("gesture.desyncs",
		metric.WithDescription("Touch protocol desynchronizations recovered from"))
	if err != nil {
		return nil, err
	}

	m.Rejected, err = meter.Int64Counter("gesture.events.rejected",
		metric.WithDescription("Events rejected for lacking a touch sequence"),
		metric.WithUnit("{event}"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordTap records a tap with the given finger count.
func (m *Metrics) RecordTap(fingers int) {
	if m == nil {
		return
	}
	m.Taps.Add(context.Background(), 1, metric.WithAttributes(
		attribute.Int("gesture.fingers", fingers),
	))
}

// RecordZoomSequence records the start of a zoom sequence.
func (m *Metrics) RecordZoomSequence() {
	if m == nil {
		return
	}
	m.ZoomSequences.Add(context.Background(), 1)
}

// RecordPan records one scroll command.
func (m *Metrics) RecordPan() {
	if m == nil {
		return
	}
	m.PanEvents.Add(context.Background(), 1)
}

// RecordDesync records a recovered desynchronization of the given kind.
func (m *Metrics) RecordDesync(kind string) {
	if m == nil {
		return
	}
	m.Desyncs.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("gesture.desync.kind", kind),
	))
}

// RecordRejected records an event rejected for lacking a sequence.
func (m *Metrics) RecordRejected() {
	if m == nil {
		return
	}
	m.Rejected.Add(context.Background(), 1)
}
