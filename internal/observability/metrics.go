package observability

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/spec-kit/helpdesk/internal/events"
)

// Metrics provides basic in-memory counters for HTTP traffic and domain
// events, surfaced on the dashboard.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	eventCount   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		eventCount:   make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// EventRecorder returns a handler that counts every published domain
// event. Register it with Dispatcher.SubscribeAll.
func (m *Metrics) EventRecorder() events.EventHandler {
	return func(_ context.Context, event events.Event) error {
		if m == nil {
			return nil
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		m.eventCount[string(event.Type)]++
		return nil
	}
}

// EventCounts copies the per-type event totals.
func (m *Metrics) EventCounts() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int64, len(m.eventCount))
	for key, value := range m.eventCount {
		counts[key] = value
	}
	return counts
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
