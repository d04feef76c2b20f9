// Offline snapshot store
// Persists backend snapshots in a local bbolt file so calibration data can
// be inspected without a provider connection

package snapstore

import (
	"encoding/json"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/perclft/QubitScope/backend"
)

var bucketSnapshots = []byte("snapshots")

type Store struct {
	db *bolt.DB
}

// Open creates or opens the store file.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Put stores a snapshot keyed by backend name, replacing any previous one.
func (s *Store) Put(snap *backend.Snapshot) error {
	if snap.Name == "" {
		return fmt.Errorf("snapshot has no name")
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snap.Name, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put([]byte(snap.Name), data)
	})
}

// Get loads a snapshot by backend name. Returns nil when absent.
func (s *Store) Get(name string) (*backend.Snapshot, error) {
	var snap *backend.Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSnapshots).Get([]byte(name))
		if data == nil {
			return nil
		}
		snap = &backend.Snapshot{}
		return json.Unmarshal(data, snap)
	})
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", name, err)
	}
	return snap, nil
}

// List returns the stored backend names in sorted order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a stored snapshot. Returns true if one was present.
func (s *Store) Delete(name string) (bool, error) {
	found := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b.Get([]byte(name)) == nil {
			return nil
		}
		found = true
		return b.Delete([]byte(name))
	})
	return found, err
}

// Provider adapts the store to the provider interface so stored snapshots
// can be searched like live backends.
type Provider struct {
	store *Store
}

func (s *Store) Provider() *Provider { return &Provider{store: s} }

func (p *Provider) Name() string { return "snapstore" }

func (p *Provider) Backends() []backend.Backend {
	names, err := p.store.List()
	if err != nil {
		return nil
	}
	out := make([]backend.Backend, 0, len(names))
	for _, name := range names {
		snap, err := p.store.Get(name)
		if err != nil || snap == nil {
			continue
		}
		out = append(out, snap.Backend())
	}
	return out
}
