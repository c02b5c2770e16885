// Package views holds the client's standing projections of server state. The
// board is what the screens render between polls; the pollers overwrite it,
// the claim handler forces it to reconverge after a race.
package views

import (
	"sync"
	"sync/atomic"

	"lastmile/internal/core/domain/model/order"
)

// Slot is one replaceable order list guarded by a monotonic sequence. A
// writer takes a ticket before fetching and applies the result with it;
// a response that arrives after a newer fetch already landed is discarded,
// so a slow poll can never overwrite fresher state.
type Slot struct {
	seq atomic.Uint64

	mu      sync.Mutex
	applied uint64
	orders  []*order.Order
}

// Begin reserves the next write ticket. Call it before the fetch, not after.
func (s *Slot) Begin() uint64 {
	return s.seq.Add(1)
}

// Apply replaces the slot's content if the ticket is newer than everything
// applied so far. Reports whether the write landed.
func (s *Slot) Apply(ticket uint64, orders []*order.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket <= s.applied {
		return false
	}
	s.applied = ticket
	s.orders = orders
	return true
}

// Snapshot returns a copy of the slot's current content. The caller may keep
// or mutate it freely.
func (s *Slot) Snapshot() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*order.Order, len(s.orders))
	copy(snapshot, s.orders)
	return snapshot
}

// Reset empties the slot and invalidates every outstanding ticket.
func (s *Slot) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applied = s.seq.Add(1)
	s.orders = nil
}

// Board groups the slots the screens render. A store uses only the store
// slot; a courier uses the other three.
type Board struct {
	store     Slot
	available Slot
	assigned  Slot
	archived  Slot
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// StoreOrders is the store's own order list.
func (b *Board) StoreOrders() *Slot {
	return &b.store
}

// AvailableOrders is the courier's claimable order list.
func (b *Board) AvailableOrders() *Slot {
	return &b.available
}

// AssignedOrders is the courier's active delivery list.
func (b *Board) AssignedOrders() *Slot {
	return &b.assigned
}

// ArchivedOrders is the courier's finished delivery list.
func (b *Board) ArchivedOrders() *Slot {
	return &b.archived
}

// Reset empties every slot, for logout.
func (b *Board) Reset() {
	b.store.Reset()
	b.available.Reset()
	b.assigned.Reset()
	b.archived.Reset()
}
