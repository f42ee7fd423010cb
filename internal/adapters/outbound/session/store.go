package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/openkraft/storefront/internal/adapters/outbound/filestore"
	"github.com/openkraft/storefront/internal/domain"
)

const fileName = "session.json"

// Store is a file-based implementation of domain.SessionStore.
type Store struct {
	dir string
}

// New creates a session store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

type sessionFile struct {
	Identity  json.RawMessage `json:"identity"`
	Cart      domain.Cart     `json:"cart"`
	GuestCart domain.Cart     `json:"guest_cart"`
	Revision  uint64          `json:"revision"`
}

// Load reads the session from disk. Returns (nil, nil) if no session exists.
// A corrupt file is reported as a MalformedState error.
func (s *Store) Load() (*domain.SessionState, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no session is not an error
		}
		return nil, err
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, domain.NewMalformedStateError("session file is corrupt", err)
	}

	var identity domain.Identity = domain.Guest{}
	if len(f.Identity) > 0 {
		identity, err = domain.UnmarshalIdentity(f.Identity)
		if err != nil {
			return nil, domain.NewMalformedStateError("session identity is corrupt", err)
		}
	}

	return &domain.SessionState{
		Identity:  identity,
		Cart:      f.Cart,
		GuestCart: f.GuestCart,
		Revision:  f.Revision,
	}, nil
}

// Save writes the session atomically, creating the directory as needed.
func (s *Store) Save(state *domain.SessionState) error {
	identity, err := domain.MarshalIdentity(state.Identity)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(sessionFile{
		Identity:  identity,
		Cart:      state.Cart,
		GuestCart: state.GuestCart,
		Revision:  state.Revision,
	}, "", "  ")
	if err != nil {
		return err
	}
	return filestore.WriteAtomic(s.dir, fileName, data, 0600)
}

func (s *Store) path() string {
	return filepath.Join(s.dir, fileName)
}
