package application

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/openkraft/storefront/internal/domain"
)

// Store is the client-side state shared by every storefront flow: the
// current identity and one cart per identity kind. Every mutation is written
// through to the SessionStore before it becomes visible.
type Store struct {
	mu       sync.Mutex
	sessions domain.SessionStore
	state    domain.SessionState
}

// OpenStore loads the persisted session, or starts a fresh guest session if
// none exists or the saved one is corrupt.
func OpenStore(sessions domain.SessionStore, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	state, err := sessions.Load()
	if err != nil {
		if domain.KindOf(err) != domain.KindMalformedState {
			return nil, fmt.Errorf("loading session: %w", err)
		}
		logger.Warn("starting a new session, saved one is unreadable", zap.Error(err))
		state = nil
	}
	if state == nil {
		state = &domain.SessionState{Identity: domain.Guest{}}
	}
	if state.Identity == nil {
		state.Identity = domain.Guest{}
	}
	return &Store{sessions: sessions, state: *state}, nil
}

func (s *Store) Identity() domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Identity
}

func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Revision
}

// Snapshot copies the cart of the current identity. The other cart is never
// read.
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartFor(&s.state, s.state.Identity.Kind())
	return domain.CartSnapshot{
		Identity: s.state.Identity.Kind(),
		Items:    cart.Items(),
		Revision: s.state.Revision,
	}
}

// Add puts item into the cart belonging to kind.
func (s *Store) Add(kind domain.IdentityKind, item domain.CartItem) error {
	return s.update(func(st *domain.SessionState) error {
		s.cartFor(st, kind).Add(item)
		return nil
	})
}

// Remove drops productID from the current identity's cart. It reports
// whether the product was in the cart.
func (s *Store) Remove(productID domain.ID) (bool, error) {
	var removed bool
	err := s.update(func(st *domain.SessionState) error {
		removed = s.cartFor(st, st.Identity.Kind()).Remove(productID)
		return nil
	})
	return removed, err
}

// ClearCart empties the cart belonging to kind.
func (s *Store) ClearCart(kind domain.IdentityKind) error {
	return s.update(func(st *domain.SessionState) error {
		s.cartFor(st, kind).Clear()
		return nil
	})
}

// Settle removes an ordered snapshot from its cart. If nothing changed
// since the snapshot was taken the cart is emptied; otherwise only the
// ordered quantities are taken out so later additions survive.
func (s *Store) Settle(ordered domain.CartSnapshot) error {
	return s.update(func(st *domain.SessionState) error {
		cart := s.cartFor(st, ordered.Identity)
		if st.Revision-1 == ordered.Revision {
			cart.Clear()
			return nil
		}
		cart.Subtract(ordered.Items)
		return nil
	})
}

// SignIn switches to an authenticated identity. Both carts are kept.
func (s *Store) SignIn(token, email string) error {
	if token == "" {
		return domain.NewValidationError("token is required")
	}
	return s.update(func(st *domain.SessionState) error {
		st.Identity = domain.Authenticated{Token: token, Email: email}
		return nil
	})
}

// SignOut returns to the guest identity.
func (s *Store) SignOut() error {
	return s.update(func(st *domain.SessionState) error {
		st.Identity = domain.Guest{}
		return nil
	})
}

// update applies fn to a copy of the state, persists the copy and only then
// swaps it in, so a failed save leaves the in-memory store untouched.
func (s *Store) update(fn func(st *domain.SessionState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.SessionState{
		Identity:  s.state.Identity,
		Cart:      s.state.Cart.Clone(),
		GuestCart: s.state.GuestCart.Clone(),
		Revision:  s.state.Revision + 1,
	}
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.sessions.Save(&next); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	s.state = next
	return nil
}

func (s *Store) cartFor(st *domain.SessionState, kind domain.IdentityKind) *domain.Cart {
	if kind == domain.KindAuthenticated {
		return &st.Cart
	}
	return &st.GuestCart
}
