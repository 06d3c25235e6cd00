package cache

import (
	"encoding/json"
	"os"
	"time"
)

// Pair is one serialized cache entry. Snapshots are stored as an array of
// pairs so the in-memory map can be reconstituted on load. Values are kept
// as raw JSON; readers decode a restored value into its concrete type.
type Pair struct {
	Key      string          `json:"key"`
	Value    json.RawMessage `json:"value"`
	StoredAt time.Time       `json:"storedAt"`
}

// Store persists cache snapshots.
type Store interface {
	Load() ([]Pair, error)
	Save(pairs []Pair) error
}

// FileStore keeps the snapshot in a single JSON file.
type FileStore struct {
	Path string
}

// NewFileStore returns a Store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() ([]Pair, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

func (s *FileStore) Save(pairs []Pair) error {
	data, err := json.Marshal(pairs)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}
