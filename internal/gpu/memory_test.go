package gpu

import (
	"errors"
	"strings"
	"testing"
)

func TestMemoryLedger(t *testing.T) {
	m := newMemoryLedger(MinMemoryMB)
	budget := uint64(MinMemoryMB) << 20

	if err := m.reserve(groupPass, "vertices", 1000); err != nil {
		t.Fatal(err)
	}
	if err := m.reserve("surface", "depth", 4000); err != nil {
		t.Fatal(err)
	}
	// Reserving a label again replaces its size.
	if err := m.reserve(groupPass, "vertices", 500); err != nil {
		t.Fatal(err)
	}
	s := m.stats()
	if s.UsedBytes != 4500 || s.Allocations != 2 || s.AvailableBytes != budget-4500 {
		t.Errorf("stats = %+v", s)
	}

	err := m.reserve("offscreen", "color", budget)
	if !errors.Is(err, ErrMemoryBudgetExceeded) {
		t.Fatalf("over budget: error = %v, want ErrMemoryBudgetExceeded", err)
	}
	if m.stats().UsedBytes != 4500 {
		t.Error("failed reservation changed the ledger")
	}

	m.releaseGroup(groupPass)
	if s := m.stats(); s.UsedBytes != 4000 || s.Allocations != 1 {
		t.Errorf("after release: %+v", s)
	}
	m.releaseGroup("surface")
	if s := m.stats(); s.UsedBytes != 0 || s.Utilization != 0 {
		t.Errorf("after releasing everything: %+v", s)
	}
}

func TestMemoryLedgerBudget(t *testing.T) {
	m := newMemoryLedger(MinMemoryMB)
	if err := m.setBudget(MinMemoryMB - 1); err == nil {
		t.Error("setBudget below the minimum succeeded")
	}
	if err := m.reserve(groupPass, "texture", 10<<20); err != nil {
		t.Fatal(err)
	}
	// Shrinking below current use keeps live allocations.
	if err := m.setBudget(MinMemoryMB); err != nil {
		t.Fatal(err)
	}
	if err := m.reserve(groupPass, "more", 7<<20); !errors.Is(err, ErrMemoryBudgetExceeded) {
		t.Errorf("reserve = %v, want ErrMemoryBudgetExceeded", err)
	}
}

func TestMemoryStatsString(t *testing.T) {
	s := MemoryStats{TotalBytes: 4096, UsedBytes: 1024, Allocations: 3, Utilization: 0.25}
	if got := s.String(); !strings.Contains(got, "25.0% used") || !strings.Contains(got, "3 allocations") {
		t.Errorf("String() = %q", got)
	}
}

func TestRendererMemoryAccounting(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	p := meshPass()
	if err := r.Prepare(p); err != nil {
		t.Fatal(err)
	}
	want := uint64(len(p.Vertices)+len(p.Indices)) + p.UniformSize
	if got := r.MemoryStats().UsedBytes; got != want {
		t.Errorf("after Prepare: used = %d, want %d", got, want)
	}

	if _, err := r.RenderImage(16, 8, make([]byte, p.UniformSize)); err != nil {
		t.Fatal(err)
	}
	targets := uint64(16 * 8 * (colorTexelSize + depthTexelSize))
	if got := r.MemoryStats().UsedBytes; got != want+targets {
		t.Errorf("after RenderImage: used = %d, want %d", got, want+targets)
	}

	// A new pass releases the old pass resources but keeps the targets.
	if err := r.Prepare(trianglePass()); err != nil {
		t.Fatal(err)
	}
	tp := trianglePass()
	if got, want := r.MemoryStats().UsedBytes, uint64(len(tp.Vertices))+tp.UniformSize+targets; got != want {
		t.Errorf("after re-Prepare: used = %d, want %d", got, want)
	}

	r.Destroy()
	if got := r.MemoryStats().UsedBytes; got != 0 {
		t.Errorf("after Destroy: used = %d, want 0", got)
	}
}

func TestRendererMemoryBudget(t *testing.T) {
	r, _, cleanup := newTestRenderer(t)
	defer cleanup()

	if err := r.SetMemoryBudget(MinMemoryMB); err != nil {
		t.Fatal(err)
	}
	if err := r.Prepare(trianglePass()); err != nil {
		t.Fatal(err)
	}
	_, err := r.RenderImage(4096, 4096, make([]byte, 64))
	if !errors.Is(err, ErrMemoryBudgetExceeded) {
		t.Fatalf("RenderImage(4096x4096) error = %v, want ErrMemoryBudgetExceeded", err)
	}
	if r.offscreen.colorTex != nil {
		t.Error("color target created past the budget")
	}
	// Smaller frames still fit.
	if _, err := r.RenderImage(64, 64, make([]byte, 64)); err != nil {
		t.Errorf("RenderImage(64x64) = %v", err)
	}
}
