package gpu

import (
	"errors"
	"fmt"
)

// ErrMemoryBudgetExceeded is returned when an allocation would exceed the
// renderer's memory budget.
var ErrMemoryBudgetExceeded = errors.New("gpu: memory budget exceeded")

// Memory limits.
const (
	// DefaultMaxMemoryMB is the default budget for the buffers and
	// textures of one renderer.
	DefaultMaxMemoryMB = 256

	// MinMemoryMB is the smallest budget SetMemoryBudget accepts.
	MinMemoryMB = 16
)

// Bytes per texel of the color and depth attachments.
const (
	colorTexelSize = 4
	depthTexelSize = 4
)

// groupPass holds the resources of the prepared pass. Each target set
// accounts under its own label.
const groupPass = "pass"

// MemoryStats reports the renderer's device memory use.
type MemoryStats struct {
	// TotalBytes is the budget in bytes.
	TotalBytes uint64

	// UsedBytes is the size of live buffers and textures.
	UsedBytes uint64

	// AvailableBytes is the remaining budget.
	AvailableBytes uint64

	// Allocations is the number of live buffers and textures.
	Allocations int

	// Utilization is UsedBytes / TotalBytes.
	Utilization float64
}

// String returns a human-readable summary.
func (s MemoryStats) String() string {
	return fmt.Sprintf("Memory[%.1f%% used, %d/%d KB, %d allocations]",
		s.Utilization*100,
		s.UsedBytes/1024,
		s.TotalBytes/1024,
		s.Allocations)
}

// allocKey names one allocation within a group.
type allocKey struct {
	group, label string
}

// memoryLedger accounts for the sizes of the resources a renderer
// creates. It does not allocate; callers reserve before creating a
// resource and release after destroying it.
type memoryLedger struct {
	budget uint64
	used   uint64
	sizes  map[allocKey]uint64
}

func newMemoryLedger(megabytes int) *memoryLedger {
	return &memoryLedger{
		budget: uint64(megabytes) << 20, //nolint:gosec // validated positive
		sizes:  make(map[allocKey]uint64),
	}
}

// reserve records an allocation of n bytes. A label reserved twice in
// the same group replaces the earlier size.
func (m *memoryLedger) reserve(group, label string, n uint64) error {
	key := allocKey{group, label}
	used := m.used - m.sizes[key]
	if used+n > m.budget {
		return fmt.Errorf("%w: %s/%s needs %d bytes, %d of %d in use",
			ErrMemoryBudgetExceeded, group, label, n, used, m.budget)
	}
	m.sizes[key] = n
	m.used = used + n
	return nil
}

// releaseGroup forgets every allocation of group.
func (m *memoryLedger) releaseGroup(group string) {
	for key, n := range m.sizes {
		if key.group == group {
			m.used -= n
			delete(m.sizes, key)
		}
	}
}

func (m *memoryLedger) stats() MemoryStats {
	s := MemoryStats{
		TotalBytes:  m.budget,
		UsedBytes:   m.used,
		Allocations: len(m.sizes),
	}
	if m.used < m.budget {
		s.AvailableBytes = m.budget - m.used
	}
	if m.budget > 0 {
		s.Utilization = float64(m.used) / float64(m.budget)
	}
	return s
}

// setBudget changes the budget. Live allocations above the new budget
// are kept; further reservations fail until enough is released.
func (m *memoryLedger) setBudget(megabytes int) error {
	if megabytes < MinMemoryMB {
		return fmt.Errorf("gpu: memory budget %d MB below minimum %d MB", megabytes, MinMemoryMB)
	}
	m.budget = uint64(megabytes) << 20 //nolint:gosec // validated positive
	return nil
}

// MemoryStats returns the renderer's current memory use.
func (r *Renderer) MemoryStats() MemoryStats {
	return r.mem.stats()
}

// SetMemoryBudget sets the budget for the renderer's buffers and
// textures in megabytes.
func (r *Renderer) SetMemoryBudget(megabytes int) error {
	return r.mem.setBudget(megabytes)
}
