package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	cacheHits       int
	cacheMisses     int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about source fetches.
// When OpenTelemetry instruments are configured it mirrors every observation
// to them; otherwise it stays purely in-memory, which keeps tests hermetic.
type Recorder struct {
	mu              sync.Mutex
	stats           map[string]*sourceStats
	scrapeFallbacks int
	liveCycles      int
	liveErrors      int
	otel            *otelInstruments
}

// NewRecorder returns an in-memory-only Recorder.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordSourceFetch increments counters for an upstream fetch and stores the
// last observed latency.
func (r *Recorder) RecordSourceFetch(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceFetch(source, duration, err)
	}
}

// RecordCacheHit tracks a cache hit for a source's slice.
func (r *Recorder) RecordCacheHit(source string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(source).cacheHits++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCache(source, true)
	}
}

// RecordCacheMiss tracks a cache miss for a source's slice.
func (r *Recorder) RecordCacheMiss(source string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(source).cacheMisses++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCache(source, false)
	}
}

// RecordScrapeFallback tracks that the live feed came up empty and the scrape
// path was attempted instead.
func (r *Recorder) RecordScrapeFallback() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.scrapeFallbacks++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordScrapeFallback()
	}
}

// RecordLiveCycle tracks one live-polling iteration.
func (r *Recorder) RecordLiveCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.liveCycles++
	if err != nil {
		r.liveErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLiveCycle(duration, err)
	}
}

func (r *Recorder) ensureStats(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}

// Snapshot is a copy of the current stats for one source.
type Snapshot struct {
	Calls           int
	Errors          int
	CacheHits       int
	CacheMisses     int
	LastCallLatency time.Duration
}

// SourceSnapshot returns a copy of the stats recorded for a source.
func (r *Recorder) SourceSnapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[source]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		CacheHits:       stats.cacheHits,
		CacheMisses:     stats.cacheMisses,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ScrapeFallbacks returns how many times the scrape fallback ran.
func (r *Recorder) ScrapeFallbacks() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scrapeFallbacks
}

// LiveCycles returns total live-polling iterations and how many failed.
func (r *Recorder) LiveCycles() (cycles, errors int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.liveCycles, r.liveErrors
}
