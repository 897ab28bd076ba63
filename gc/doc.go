// Package gc is an opt-in, non-tracing reclamation helper.
//
// Ownership boundary:
// - shared-ownership handles over caller-built values
// - insertion-ordered tracked-object registry
// - periodic sweep loop with cooperative stop
// - bounded Run scope that bookends sweeping around a unit of work
//
// Callers transfer a freshly constructed value via Alloc and get a Handle
// back; the collector keeps its own reference. A sweep reclaims any object
// whose only remaining owner is the collector. Reference cycles between
// tracked objects are never reclaimed.
package gc
