package gc

import (
	"sync"
	"time"
)

// Sweeper drives the periodic sweep loop for one collector. It moves
// between idle (no loop), running (waiting on the interval or a stop
// signal), and stopping (stop requested, one final sweep pending). Run
// manages a Sweeper internally; construct one directly only when the sweep
// lifetime should outlive or differ from a single unit of work.
type Sweeper struct {
	collector *Collector

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewSweeper returns an idle sweeper for c.
func NewSweeper(c *Collector) *Sweeper {
	return &Sweeper{collector: c}
}

// Start launches the background sweep loop. Calling Start on a running
// sweeper is a no-op; only one loop runs at a time.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(s.stop, s.done)
}

// Stop signals the loop and blocks until it has run its final sweep and
// exited. At least one sweep always happens between the stop request and
// the loop exiting. Safe to call twice, or on a sweeper that never started.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// loop takes its channels as arguments so a Stop/Start pair cannot swap
// them out from under a running iteration. Closing the stop channel cannot
// be missed by the select, so there is no lost-wakeup window.
func (s *Sweeper) loop(stop, done chan struct{}) {
	defer close(done)
	timer := time.NewTimer(s.collector.Interval())
	defer timer.Stop()
	for {
		stopping := false
		select {
		case <-stop:
			stopping = true
		case <-timer.C:
		}
		s.collector.Collect()
		if stopping {
			return
		}
		timer.Reset(s.collector.Interval())
	}
}
