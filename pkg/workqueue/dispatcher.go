package workqueue

import (
	"sync/atomic"

	"julia-render/internal/domain"
)

// Dispatcher hands out every strip of a partition exactly once.
// Claim is safe for concurrent use; the cursor is the only shared
// mutable state and it is only ever advanced with an atomic add.
type Dispatcher struct {
	strips []domain.Strip
	cursor atomic.Uint64
}

// NewDispatcher wraps strips. The slice must not be modified afterwards.
func NewDispatcher(strips []domain.Strip) *Dispatcher {
	return &Dispatcher{strips: strips}
}

// Claim returns the next unclaimed strip, or false once all are taken.
func (d *Dispatcher) Claim() (domain.Strip, bool) {
	// Add returns the new value; the claimed slot is the one before it
	next := d.cursor.Add(1) - 1
	if next >= uint64(len(d.strips)) {
		return domain.Strip{}, false
	}
	return d.strips[next], true
}

// Len returns the number of strips in the partition.
func (d *Dispatcher) Len() int {
	return len(d.strips)
}

var _ domain.StripSource = (*Dispatcher)(nil)
