package confirmation

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/openkraft/storefront/internal/adapters/outbound/filestore"
	"github.com/openkraft/storefront/internal/domain"
)

const fileName = "recent_order.json"

// FileStore implements domain.ConfirmationStore as a single JSON file that
// each successful checkout overwrites.
type FileStore struct {
	dir string
}

func New(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load returns the stored order, (nil, nil) if there is none, or a
// MalformedState error if the file cannot be decoded.
func (s *FileStore) Load() (*domain.Order, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, domain.NewMalformedStateError("stored order is corrupt", err)
	}
	return &order, nil
}

func (s *FileStore) Save(order *domain.Order) error {
	data, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return err
	}
	return filestore.WriteAtomic(s.dir, fileName, data, 0600)
}
