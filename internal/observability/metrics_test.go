package observability

import (
	"sync"
	"testing"
	"time"
)

func TestMetricsSnapshot(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordRequest("/login", "POST", 200, 10*time.Millisecond)
		}()
	}
	wg.Wait()
	m.RecordError("/login", "POST", "NOT_FOUND")

	snap := m.Snapshot()
	if got := snap.Requests["/login|POST|200"]; got != 10 {
		t.Errorf("requests = %d, want 10", got)
	}
	if got := snap.AvgLatencyMsec["/login|POST|200"]; got != 10 {
		t.Errorf("avg latency = %d, want 10", got)
	}
	if got := snap.Errors["/login|POST|NOT_FOUND"]; got != 1 {
		t.Errorf("errors = %d, want 1", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	if snap := m.Snapshot(); len(snap.Requests) != 0 {
		t.Errorf("nil metrics snapshot = %v", snap)
	}
}
