package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/sealsel/sealsel/pkg/seal"
)

const namespace = "sealsel"

// Result label values.
const (
	resultMatch    = "match"
	resultNoMatch  = "no_match"
	resultOK       = "ok"
	resultRejected = "rejected"
)

// Collector records Selector events as Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	recommendations *prometheus.CounterVec
	score           prometheus.Histogram
	duration        prometheus.Histogram
	adds            *prometheus.CounterVec
}

var _ seal.Recorder = (*Collector)(nil)

// New returns a Collector with all metrics registered on a fresh registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Recommendations by outcome.",
		}, []string{"result"}),
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_score",
			Help:      "Penalty score of recommended seals.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "Time spent ranking the catalog.",
			Buckets:   prometheus.DefBuckets,
		}),
		adds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_adds_total",
			Help:      "Catalog add attempts by outcome.",
		}, []string{"result"}),
	}
	c.registry.MustRegister(c.recommendations, c.score, c.duration, c.adds)

	// Pre-create label combinations so every series is exported from zero.
	c.recommendations.WithLabelValues(resultMatch)
	c.recommendations.WithLabelValues(resultNoMatch)
	c.adds.WithLabelValues(resultOK)
	c.adds.WithLabelValues(resultRejected)
	return c
}

// RecordRecommendation implements seal.Recorder.
func (c *Collector) RecordRecommendation(matched bool, score float64, d time.Duration) {
	c.duration.Observe(d.Seconds())
	if !matched {
		c.recommendations.WithLabelValues(resultNoMatch).Inc()
		return
	}
	c.recommendations.WithLabelValues(resultMatch).Inc()
	c.score.Observe(score)
}

// RecordAdd implements seal.Recorder.
func (c *Collector) RecordAdd(err error) {
	if err != nil {
		c.adds.WithLabelValues(resultRejected).Inc()
		return
	}
	c.adds.WithLabelValues(resultOK).Inc()
}

// Gather returns the current metric families.
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	return c.registry.Gather()
}

// WriteText renders every metric family in the text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	mfs, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteTextfile writes the exposition to path via a temp file and rename, so
// a concurrent scrape never reads a partial file.
func (c *Collector) WriteTextfile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".sealsel-*.prom.tmp")
	if err != nil {
		return fmt.Errorf("metrics: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if err := c.WriteText(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("metrics: close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("metrics: chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("metrics: rename: %w", err)
	}
	return nil
}
