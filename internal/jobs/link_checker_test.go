package jobs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"schemebot/internal/models"
	"schemebot/internal/schemes"
)

type recordingSink struct {
	mu   sync.Mutex
	last map[string]string
	seen []string
}

func (r *recordingSink) SetLinkStatus(scheme, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		r.last = make(map[string]string)
	}
	r.last[scheme] = status
	r.seen = append(r.seen, scheme+"="+status)
}

func (r *recordingSink) history() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seen...)
}

func (r *recordingSink) get(scheme string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last[scheme]
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckAll(t *testing.T) {
	srv := newTestServer(t)
	table := schemes.NewTable(
		schemes.Scheme{Key: "farming", Description: "f", ApplyURL: srv.URL + "/ok"},
		schemes.Scheme{Key: "housing", Description: "h", ApplyURL: srv.URL + "/gone"},
		schemes.Scheme{Key: "health", Description: "h", ApplyURL: srv.URL + "/moved"},
		schemes.Scheme{Key: "business", Description: "b", ApplyURL: "javascript:alert(1)"},
	)
	sink := &recordingSink{}

	lc := NewLinkChecker(table, time.Hour, time.Hour, sink,
		AllowPrivateTargets(), WithDelay(0), WithLogger(quietLogger()))

	st, _ := lc.Status("farming")
	assert.Equal(t, models.HealthUnknown, st.Status, "statuses start unknown")
	assert.Empty(t, sink.get("farming"), "nothing is published before a check runs")

	lc.CheckAll(context.Background())

	farming, ok := lc.Status("farming")
	require.True(t, ok)
	assert.Equal(t, models.HealthHealthy, farming.Status)
	assert.Empty(t, farming.Error)
	require.NotNil(t, farming.CheckedAt)

	housing, _ := lc.Status("housing")
	assert.Equal(t, models.HealthUnhealthy, housing.Status)
	assert.Contains(t, housing.Error, "404")

	health, _ := lc.Status("health")
	assert.Equal(t, models.HealthHealthy, health.Status, "redirects are followed")

	business, _ := lc.Status("business")
	assert.Equal(t, models.HealthUnhealthy, business.Status)

	assert.Equal(t, models.HealthHealthy, sink.get("farming"))
	assert.Equal(t, models.HealthUnhealthy, sink.get("housing"))

	statuses := lc.Statuses()
	require.Len(t, statuses, 4)
	assert.Equal(t, []string{"farming", "housing", "health", "business"},
		[]string{statuses[0].Scheme, statuses[1].Scheme, statuses[2].Scheme, statuses[3].Scheme})
}

func TestCheckAllSkipsFreshResults(t *testing.T) {
	var hits int
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
	}))
	defer srv.Close()

	table := schemes.NewTable(schemes.Scheme{Key: "education", Description: "e", ApplyURL: srv.URL})
	lc := NewLinkChecker(table, time.Hour, time.Hour, nil,
		AllowPrivateTargets(), WithDelay(0), WithLogger(quietLogger()))

	lc.CheckAll(context.Background())
	lc.CheckAll(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, hits, "second pass should skip a fresh result")
}

func TestCheckRefusesPrivateTargets(t *testing.T) {
	srv := newTestServer(t)
	table := schemes.NewTable(schemes.Scheme{Key: "farming", Description: "f", ApplyURL: srv.URL + "/ok"})
	lc := NewLinkChecker(table, time.Hour, time.Hour, nil, WithDelay(0), WithLogger(quietLogger()))

	lc.CheckAll(context.Background())

	st, _ := lc.Status("farming")
	assert.Equal(t, models.HealthUnhealthy, st.Status)
	assert.Equal(t, "URL points to a private or reserved IP address", st.Error)
}

func TestCheckConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	table := schemes.NewTable(schemes.Scheme{Key: "health", Description: "h", ApplyURL: url})
	lc := NewLinkChecker(table, time.Hour, time.Hour, nil,
		AllowPrivateTargets(), WithDelay(0), WithLogger(quietLogger()))

	lc.CheckAll(context.Background())

	st, _ := lc.Status("health")
	assert.Equal(t, models.HealthUnknown, st.Status)
	assert.Contains(t, st.Error, "connection failed")
}

func TestStartStopsOnCancel(t *testing.T) {
	srv := newTestServer(t)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	table := schemes.NewTable(schemes.Scheme{Key: "farming", Description: "f", ApplyURL: srv.URL + "/ok"})
	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	lc := NewLinkChecker(table, 10*time.Millisecond, 0, nil,
		AllowPrivateTargets(), WithDelay(0), WithLogger(quietLogger()), WithHTTPClient(client))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		lc.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		st, _ := lc.Status("farming")
		return st.IsHealthy()
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestStartPublishesUnknownBeforeFirstCheck(t *testing.T) {
	table := schemes.NewTable(schemes.Scheme{Key: "housing", Description: "h", ApplyURL: "http://127.0.0.1/private"})
	sink := &recordingSink{}
	lc := NewLinkChecker(table, time.Hour, time.Hour, sink, WithDelay(0), WithLogger(quietLogger()))

	assert.Empty(t, sink.history())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		lc.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return sink.get("housing") == models.HealthUnhealthy
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []string{"housing=unknown", "housing=unhealthy"}, sink.history())
}
