package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"schemebot/internal/models"
)

var resolutionLookupDesc = prometheus.NewDesc(
	"schemebot_resolution_lookups_total",
	"Persisted resolution count by scheme and outcome",
	[]string{"scheme", "outcome"},
	nil,
)

// StatsStore persists aggregate resolution counts.
type StatsStore interface {
	IncrementResolution(ctx context.Context, scheme, outcome string) error
	GetResolutionStats(ctx context.Context) ([]models.ResolutionStat, error)
}

// ResolutionCollector is a custom Prometheus collector that reads persisted
// resolution counts from the store on each scrape.
type ResolutionCollector struct {
	store StatsStore
}

// Describe sends the metric descriptor to the channel.
func (c *ResolutionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- resolutionLookupDesc
}

// Collect queries the store and emits every row as a counter.
func (c *ResolutionCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := c.store.GetResolutionStats(ctx)
	if err != nil {
		slog.Error("failed to collect resolution metrics", "error", err)
		return
	}
	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(
			resolutionLookupDesc,
			prometheus.CounterValue,
			float64(s.Count),
			s.Scheme,
			s.Outcome,
		)
	}
}

// Metrics records resolution outcomes and apply-link health. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	resolutions *prometheus.CounterVec
	linkUp      *prometheus.GaugeVec
	store       StatsStore
	wg          sync.WaitGroup
}

// New registers the collectors on reg. store may be nil, in which case counts
// live only in this process.
func New(reg prometheus.Registerer, store StatsStore) *Metrics {
	m := &Metrics{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schemebot_resolutions_total",
			Help: "Query resolutions since process start by scheme and outcome",
		}, []string{"scheme", "outcome"}),
		linkUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "schemebot_apply_link_up",
			Help: "Apply link health: 1 healthy, 0 unhealthy, -1 unknown",
		}, []string{"scheme"}),
		store: store,
	}

	reg.MustRegister(m.resolutions, m.linkUp)
	if store != nil {
		reg.MustRegister(&ResolutionCollector{store: store})
	}
	return m
}

// RecordResolution counts one resolution. scheme is empty for misses.
// Persistence happens asynchronously.
func (m *Metrics) RecordResolution(scheme, outcome string) {
	if m == nil {
		return
	}
	if scheme == "" {
		scheme = models.NoScheme
	}
	m.resolutions.WithLabelValues(scheme, outcome).Inc()

	if m.store == nil {
		return
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.store.IncrementResolution(ctx, scheme, outcome); err != nil {
			slog.Error("failed to record resolution", "scheme", scheme, "outcome", outcome, "error", err)
		}
	}()
}

// SetLinkStatus publishes the latest apply-link check result.
func (m *Metrics) SetLinkStatus(scheme, status string) {
	if m == nil {
		return
	}
	v := -1.0
	switch status {
	case models.HealthHealthy:
		v = 1
	case models.HealthUnhealthy:
		v = 0
	}
	m.linkUp.WithLabelValues(scheme).Set(v)
}

// Wait blocks until pending asynchronous writes finish.
func (m *Metrics) Wait() {
	if m == nil {
		return
	}
	m.wg.Wait()
}
