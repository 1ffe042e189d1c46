package jobs

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"schemebot/internal/models"
	"schemebot/internal/schemes"
	"schemebot/internal/validation"
)

// StatusSink receives every check result, e.g. for metrics export.
type StatusSink interface {
	SetLinkStatus(scheme, status string)
}

// LinkChecker periodically verifies that every scheme's apply URL is reachable
// and keeps the latest result per scheme in memory.
type LinkChecker struct {
	table        schemes.Table
	interval     time.Duration
	maxAge       time.Duration
	delay        time.Duration
	allowPrivate bool
	client       *http.Client
	sink         StatusSink
	logger       *slog.Logger

	mu       sync.RWMutex
	statuses map[string]models.LinkStatus
}

// Option configures a LinkChecker.
type Option func(*LinkChecker)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *LinkChecker) { l.client = c }
}

// WithDelay sets the pause between two checks in a pass.
func WithDelay(d time.Duration) Option {
	return func(l *LinkChecker) { l.delay = d }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *LinkChecker) { l.logger = logger }
}

// AllowPrivateTargets disables the private address guard. Only for tests
// against local servers.
func AllowPrivateTargets() Option {
	return func(l *LinkChecker) { l.allowPrivate = true }
}

// NewLinkChecker creates a checker for every scheme in table. sink may be nil
// and only hears about statuses once Start or CheckAll runs.
func NewLinkChecker(table schemes.Table, interval, maxAge time.Duration, sink StatusSink, opts ...Option) *LinkChecker {
	l := &LinkChecker{
		table:    table,
		interval: interval,
		maxAge:   maxAge,
		delay:    time.Second,
		sink:     sink,
		logger:   slog.Default(),
		statuses: make(map[string]models.LinkStatus, table.Len()),
		client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, s := range table.All() {
		l.statuses[s.Key] = models.LinkStatus{Scheme: s.Key, URL: s.ApplyURL, Status: models.HealthUnknown}
	}
	return l
}

// Start publishes the current statuses to the sink, runs a pass immediately
// and then on every tick until ctx is done.
func (l *LinkChecker) Start(ctx context.Context) {
	l.logger.Info("link checker started", "interval", l.interval, "max_age", l.maxAge)

	if l.sink != nil {
		for _, st := range l.Statuses() {
			l.sink.SetLinkStatus(st.Scheme, st.Status)
		}
	}
	l.CheckAll(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("link checker stopped")
			return
		case <-ticker.C:
			l.CheckAll(ctx)
		}
	}
}

// CheckAll checks every link whose last result is older than maxAge.
func (l *LinkChecker) CheckAll(ctx context.Context) {
	var due []schemes.Scheme
	for _, s := range l.table.All() {
		if st, _ := l.Status(s.Key); st.NeedsCheck(l.maxAge) {
			due = append(due, s)
		}
	}
	if len(due) == 0 {
		return
	}

	l.logger.Debug("checking apply links", "count", len(due))

	for i, s := range due {
		select {
		case <-ctx.Done():
			return
		default:
		}

		status, errMsg := l.checkURL(ctx, s.ApplyURL)
		l.record(s, status, errMsg)

		if i < len(due)-1 && l.delay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(l.delay):
			}
		}
	}
}

// Status returns the latest result for a scheme.
func (l *LinkChecker) Status(key string) (models.LinkStatus, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	st, ok := l.statuses[key]
	return st, ok
}

// Statuses returns the latest result for every scheme in table order.
func (l *LinkChecker) Statuses() []models.LinkStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.LinkStatus, 0, len(l.statuses))
	for _, key := range l.table.Keys() {
		out = append(out, l.statuses[key])
	}
	return out
}

func (l *LinkChecker) record(s schemes.Scheme, status, errMsg string) {
	now := time.Now()
	l.mu.Lock()
	l.statuses[s.Key] = models.LinkStatus{
		Scheme:    s.Key,
		URL:       s.ApplyURL,
		Status:    status,
		Error:     errMsg,
		CheckedAt: &now,
	}
	l.mu.Unlock()

	if l.sink != nil {
		l.sink.SetLinkStatus(s.Key, status)
	}
	if status != models.HealthHealthy {
		l.logger.Warn("apply link check failed", "scheme", s.Key, "status", status, "error", errMsg)
	}
}

// checkURL performs a HEAD request. Private targets are refused unless the
// checker was built with AllowPrivateTargets.
func (l *LinkChecker) checkURL(ctx context.Context, url string) (string, string) {
	if l.allowPrivate {
		if valid, msg := validation.ValidateURL(url); !valid {
			return models.HealthUnhealthy, msg
		}
	} else if valid, msg := validation.ValidateURLForHealthCheck(url); !valid {
		return models.HealthUnhealthy, msg
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return models.HealthUnhealthy, "invalid URL: " + err.Error()
	}

	req.Header.Set("User-Agent", "SchemeBot-LinkChecker/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		return models.HealthUnknown, "connection failed: " + err.Error()
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return models.HealthHealthy, ""
	}
	return models.HealthUnhealthy, "HTTP " + resp.Status
}
