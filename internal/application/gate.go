package application

import (
	"sync"

	"github.com/openkraft/storefront/internal/domain"
)

// requestGate allows one in-flight request per operation and tags each
// request with a generation so responses to abandoned requests can be
// dropped.
type requestGate struct {
	mu         sync.Mutex
	pending    bool
	generation uint64
}

type ticket struct {
	generation uint64
}

// begin claims the gate. It fails with ErrSubmissionPending while a previous
// request is unresolved.
func (g *requestGate) begin() (ticket, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending {
		return ticket{}, domain.ErrSubmissionPending
	}
	g.pending = true
	return ticket{generation: g.generation}, nil
}

// end releases the gate for t and reports whether t is still current. A
// false result means the request was abandoned and its response must not be
// applied.
func (g *requestGate) end(t ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t.generation != g.generation {
		return false
	}
	g.pending = false
	return true
}

// abandon invalidates t if it is still the in-flight request and reopens
// the gate. It is a no-op once t has ended.
func (g *requestGate) abandon(t ticket) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.pending || t.generation != g.generation {
		return
	}
	g.generation++
	g.pending = false
}

func (g *requestGate) isPending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}
