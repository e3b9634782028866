// Package metrics exposes codec activity as Prometheus metrics.
//
// A Collector implements wire.Observer, so wiring it is a single option:
//
//	m := metrics.New("wtfix")
//	codec, err := wire.NewCodec(wire.WithObserver(m))
//	http.Handle("/metrics", m.Handler())
package metrics

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aemr3/WTFIX/wire"
)

// FrameSizeBuckets are the frame size histogram buckets in bytes.
var FrameSizeBuckets = prometheus.ExponentialBuckets(32, 2, 12)

// Collector counts decoded, encoded and rejected frames.
type Collector struct {
	registry *prometheus.Registry

	FramesDecoded  *prometheus.CounterVec   // by msg_type
	FramesEncoded  *prometheus.CounterVec   // by msg_type
	FramesRejected *prometheus.CounterVec   // by reason
	FrameSize      *prometheus.HistogramVec // by direction
}

var _ wire.Observer = (*Collector)(nil)

// New creates a Collector with its own registry. namespace prefixes every metric name.
func New(namespace string) *Collector {
	return NewWithRegistry(namespace, prometheus.NewRegistry())
}

// NewWithRegistry creates a Collector that registers on reg.
func NewWithRegistry(namespace string, reg *prometheus.Registry) *Collector {
	c := &Collector{registry: reg}

	c.FramesDecoded = c.newCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_decoded_total",
		Help:      "Frames that passed framing validation.",
	}, []string{"msg_type"})

	c.FramesEncoded = c.newCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_encoded_total",
		Help:      "Frames rendered by the encoder.",
	}, []string{"msg_type"})

	c.FramesRejected = c.newCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_rejected_total",
		Help:      "Frames that failed decoding.",
	}, []string{"reason"})

	c.FrameSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "frame_size_bytes",
		Help:      "Size of decoded and encoded frames.",
		Buckets:   FrameSizeBuckets,
	}, []string{"direction"})
	reg.MustRegister(c.FrameSize)

	return c
}

func (c *Collector) newCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(opts, labelNames)
	c.registry.MustRegister(cv)

	return cv
}

// WithRuntimeMetrics adds the Go runtime and process collectors.
func (c *Collector) WithRuntimeMetrics() *Collector {
	c.registry.MustRegister(collectors.NewGoCollector())
	c.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return c
}

// FrameDecoded implements wire.Observer.
func (c *Collector) FrameDecoded(msgType string, size int) {
	c.FramesDecoded.WithLabelValues(msgType).Inc()
	c.FrameSize.WithLabelValues("decoded").Observe(float64(size))
}

// FrameEncoded implements wire.Observer.
func (c *Collector) FrameEncoded(msgType string, size int) {
	c.FramesEncoded.WithLabelValues(msgType).Inc()
	c.FrameSize.WithLabelValues("encoded").Observe(float64(size))
}

// FrameRejected implements wire.Observer.
func (c *Collector) FrameRejected(reason string) {
	c.FramesRejected.WithLabelValues(reason).Inc()
}

// Registry returns the registry the metrics live in.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Count is one labelled counter value.
type Count struct {
	Metric string
	Label  string
	Value  float64
}

// Counts returns every counter value, sorted by metric and label.
func (c *Collector) Counts() ([]Count, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}

	var out []Count
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}

			label := ""
			if pairs := m.GetLabel(); len(pairs) > 0 {
				label = pairs[0].GetValue()
			}
			out = append(out, Count{Metric: mf.GetName(), Label: label, Value: m.GetCounter().GetValue()})
		}
	}

	slices.SortFunc(out, func(a, b Count) int {
		return cmp.Or(cmp.Compare(a.Metric, b.Metric), cmp.Compare(a.Label, b.Label))
	})

	return out, nil
}
