package gc

import (
	"testing"

	"github.com/shad0w-jo4n/libcpp-gc/internal/testutil/testlog"
)

type box struct {
	n int
}

func TestHandleGetReturnsTransferredValue(t *testing.T) {
	testlog.Start(t)
	c := NewCollector()
	h := AllocTo(c, &box{n: 41})
	defer h.Release()

	if h.Get() == nil {
		t.Fatalf("expected live value")
	}
	if h.Get().n != 41 {
		t.Fatalf("unexpected value: %d", h.Get().n)
	}
	if !h.Live() {
		t.Fatalf("expected handle to be live")
	}
}

func TestRetainedShareSurvivesSweep(t *testing.T) {
	testlog.Start(t)
	c := NewCollector()
	finalized := false
	h := AllocFunc(c, &box{n: 1}, func(*box) { finalized = true })

	stored := h.Retain()
	h.Release()

	if n := c.Collect(); n != 0 {
		t.Fatalf("expected no reclamation with a retained share, got %d", n)
	}
	if finalized {
		t.Fatalf("finalizer ran while a share was held")
	}

	stored.Release()
	if n := c.Collect(); n != 1 {
		t.Fatalf("expected reclamation after final release, got %d", n)
	}
	if !finalized {
		t.Fatalf("finalizer did not run on reclamation")
	}
	if h.Live() {
		t.Fatalf("expected handle to be dead after reclamation")
	}
}

func TestReleaseWithoutOwnersPanics(t *testing.T) {
	testlog.Start(t)
	c := NewCollector()
	h := AllocTo(c, &box{n: 1})
	h.Release()
	if n := c.Collect(); n != 1 {
		t.Fatalf("expected reclamation, got %d", n)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on release of dead handle")
		}
	}()
	h.Release()
}

func TestRetainReclaimedPanics(t *testing.T) {
	testlog.Start(t)
	c := NewCollector()
	h := AllocTo(c, &box{n: 1})
	h.Release()
	if n := c.Collect(); n != 1 {
		t.Fatalf("expected reclamation, got %d", n)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on retain of reclaimed handle")
		}
	}()
	h.Retain()
}
