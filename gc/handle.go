package gc

import "sync/atomic"

// tracked is the registry's type-erased view of a handle.
type tracked interface {
	// reclaim drops the registry's reference if it is the only one left,
	// running the finalizer. Reports whether the entry was reclaimed.
	reclaim() bool
}

// Handle is a shared-ownership reference to a tracked object. Handles come
// from Alloc and friends; the zero value is not usable.
//
// The collector's registry holds one reference for the object's tracked
// lifetime. Every other reference is an external owner: the handle returned
// by Alloc counts as one, and each Retain adds another. An object is
// reclaimed by a sweep once no external owners remain.
type Handle[T any] struct {
	refs     atomic.Int64
	value    *T
	finalize func(*T)
}

func newHandle[T any](v *T, finalize func(*T)) *Handle[T] {
	h := &Handle[T]{value: v, finalize: finalize}
	// One reference for the registry, one for the caller.
	h.refs.Store(2)
	return h
}

// Get returns the underlying object. Valid for as long as the caller holds
// an unreleased ownership share.
func (h *Handle[T]) Get() *T {
	return h.value
}

// Retain adds one external owner and returns the handle, for storing it in
// another structure. Every Retain needs a matching Release.
func (h *Handle[T]) Retain() *Handle[T] {
	if h.refs.Add(1) < 2 {
		panic("gc: retain of reclaimed handle")
	}
	return h
}

// Release drops one external owner. The object is not destroyed here; it
// becomes a candidate for the next sweep once the registry is the sole
// remaining owner. Releasing more shares than were held is a correctness
// bug and panics.
func (h *Handle[T]) Release() {
	if h.refs.Add(-1) < 1 {
		panic("gc: release of handle with no owners")
	}
}

// Live reports whether the underlying object has not been reclaimed.
func (h *Handle[T]) Live() bool {
	return h.refs.Load() > 0
}

func (h *Handle[T]) reclaim() bool {
	// A live external handle contributes at least one reference on top of
	// the registry's, so a count observed at 1 cannot be revived.
	if !h.refs.CompareAndSwap(1, 0) {
		return false
	}
	if h.finalize != nil {
		h.finalize(h.value)
	}
	h.value = nil
	return true
}
