package gc

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shad0w-jo4n/libcpp-gc/internal/observability"
)

// DefaultInterval is the sweep cadence a collector starts with.
const DefaultInterval = 10 * time.Second

// Collector owns one registry of tracked objects and sweeps it on demand.
// Construct isolated collectors with NewCollector, or share the process-wide
// one via Default. A collector is never torn down; it simply stops being
// swept once no Run scope is active.
type Collector struct {
	reg      registry
	interval atomic.Int64

	sweeps    atomic.Uint64
	reclaimed atomic.Uint64
	lastSweep atomic.Int64
}

var (
	defaultOnce      sync.Once
	defaultCollector *Collector
)

// Default returns the process-wide collector, building it on first use.
// Construction happens at most once under concurrent first access.
func Default() *Collector {
	defaultOnce.Do(func() {
		defaultCollector = NewCollector()
	})
	return defaultCollector
}

// NewCollector builds an empty collector with the default sweep interval.
func NewCollector() *Collector {
	c := &Collector{}
	c.interval.Store(int64(DefaultInterval))
	return c
}

// SetInterval changes the sweep cadence. The sweep loop re-reads the
// interval before every wait, so a change takes effect on the next wait,
// not the one in flight. Non-positive values reset to DefaultInterval.
func (c *Collector) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	c.interval.Store(int64(d))
}

// Interval returns the current sweep cadence.
func (c *Collector) Interval() time.Duration {
	return time.Duration(c.interval.Load())
}

// SetInterval changes the default collector's sweep cadence.
func SetInterval(d time.Duration) {
	Default().SetInterval(d)
}

// Alloc transfers ownership of v to the default collector. See AllocTo.
func Alloc[T any](v *T) *Handle[T] {
	return AllocTo(Default(), v)
}

// AllocTo transfers ownership of a freshly constructed v to c and returns a
// shared handle. The caller must not keep using the raw pointer after the
// transfer; the handle is the only sanctioned way to reach the object.
// Safe to call from any number of goroutines, with or without a Run scope
// active; outside a scope the object is tracked but not swept until one
// runs.
func AllocTo[T any](c *Collector, v *T) *Handle[T] {
	return AllocFunc(c, v, nil)
}

// AllocFunc is AllocTo with a finalizer that runs exactly once, on the
// sweep that reclaims the object.
func AllocFunc[T any](c *Collector, v *T, finalize func(*T)) *Handle[T] {
	h := newHandle(v, finalize)
	c.reg.register(h)
	return h
}

// Collect runs one sweep over the registry and returns the number of
// objects reclaimed. Sweeping an empty registry is a no-op. An object whose
// last external owner is released mid-sweep waits for the next sweep.
func (c *Collector) Collect() int {
	start := time.Now()
	n := c.reg.sweep()
	trackedNow := c.reg.size()

	c.sweeps.Add(1)
	c.reclaimed.Add(uint64(n))
	c.lastSweep.Store(start.UnixNano())

	duration := time.Since(start)
	observability.RecordSweep(n, trackedNow, duration)
	log.Debug().
		Int("reclaimed", n).
		Int("tracked", trackedNow).
		Dur("duration", duration).
		Msg("gc_sweep")
	return n
}

// Stats is a point-in-time snapshot of a collector.
type Stats struct {
	Tracked   int       `json:"tracked"`
	Sweeps    uint64    `json:"sweeps"`
	Reclaimed uint64    `json:"reclaimed"`
	LastSweep time.Time `json:"last_sweep"`
}

// Stats returns the collector's current counters. The snapshot is not
// atomic across fields; it is meant for monitoring, not coordination.
func (c *Collector) Stats() Stats {
	s := Stats{
		Tracked:   c.reg.size(),
		Sweeps:    c.sweeps.Load(),
		Reclaimed: c.reclaimed.Load(),
	}
	if ns := c.lastSweep.Load(); ns != 0 {
		s.LastSweep = time.Unix(0, ns)
	}
	return s
}
