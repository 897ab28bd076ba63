package gc

import "sync"

// registry stores tracked entries in insertion order.
type registry struct {
	mu      sync.Mutex
	entries []tracked
}

func (r *registry) register(e tracked) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// sweep scans every entry once, reclaiming those whose sole remaining owner
// is the registry, and reports how many were reclaimed. The whole pass runs
// under the registry lock; other goroutines never observe a half-swept
// registry. Each reclaimed entry's object is released before the scan moves
// on. Entries that stay advance the scan unchanged and keep their order.
func (r *registry) sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	reclaimed := 0
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.reclaim() {
			reclaimed++
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so evicted entries do not pin their handles.
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = nil
	}
	r.entries = kept
	return reclaimed
}

func (r *registry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
