package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides in-memory counters for the three traffic classes the
// gateway sees: admin requests it serves, calls it forwards to the commerce
// backend, and session lifecycle transitions.
type Metrics struct {
	mu               sync.Mutex
	requestCount     map[string]int64
	errorCount       map[string]int64
	upstreamCount    map[string]int64
	upstreamDuration map[string]time.Duration
	sessionEvents    map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:     make(map[string]int64),
		errorCount:       make(map[string]int64),
		upstreamCount:    make(map[string]int64),
		upstreamDuration: make(map[string]time.Duration),
		sessionEvents:    make(map[string]int64),
	}
}

// RecordRequest increments counters for served admin requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RequestCount reads the counter for one path/method/status triple.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCount[pathKey(path, method, status)]
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

// RecordUpstream tracks one forwarded backend call and its latency. A status
// of 0 means the call never produced a response (transport failure).
func (m *Metrics) RecordUpstream(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstreamCount[key]++
	m.upstreamDuration[key] += duration
}

// UpstreamCount reads the counter for one backend path/method/status triple.
func (m *Metrics) UpstreamCount(method, path string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upstreamCount[pathKey(path, method, status)]
}

// RecordSessionEvent counts a session lifecycle transition.
func (m *Metrics) RecordSessionEvent(event string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionEvents[event]++
}

// SessionEventCount reads the counter for one lifecycle event type.
func (m *Metrics) SessionEventCount(event string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionEvents[event]
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
