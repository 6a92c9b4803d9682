package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mmcdole/bookshelf/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Bucket names
var (
	bucketCatalogs = []byte("catalogs")
)

// SnapshotStore implements domain.SnapshotStore using BoltDB.
type SnapshotStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewSnapshotStore opens (or creates) the cache database under baseCacheDir.
// An empty baseCacheDir gives a memory-only store.
func NewSnapshotStore(baseCacheDir string) (*SnapshotStore, error) {
	if baseCacheDir == "" {
		// Memory-only mode (no persistence)
		return &SnapshotStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(baseCacheDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(baseCacheDir, "bookshelf.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCatalogs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SnapshotStore{db: db, cache: make(map[string][]byte)}, nil
}

// sourceKey hashes the catalog source so keys stay short and path-safe
func sourceKey(source string) string {
	normalized := filepath.Clean(source)
	hash := sha256.Sum256([]byte(normalized))
	return "src:" + hex.EncodeToString(hash[:8])
}

func (s *SnapshotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *SnapshotStore) get(key string, dest interface{}) bool {
	cacheKey := string(bucketCatalogs) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCatalogs)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *SnapshotStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucketCatalogs) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCatalogs).Put([]byte(key), data)
	})
}

func (s *SnapshotStore) deletePrefix(prefix string) {
	s.mu.Lock()
	cachePrefix := string(bucketCatalogs) + ":" + prefix
	for k := range s.cache {
		if strings.HasPrefix(k, cachePrefix) {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCatalogs)
		if b == nil {
			return nil
		}
		// Collect first: deleting under a live cursor can skip keys
		var keys [][]byte
		c := b.Cursor()
		prefixBytes := []byte(prefix)
		for k, _ := c.Seek(prefixBytes); k != nil && strings.HasPrefix(string(k), prefix); k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// === Catalogs ===

func (s *SnapshotStore) GetCatalog(source string) (domain.CatalogSnapshot, bool) {
	var snap domain.CatalogSnapshot
	ok := s.get(sourceKey(source)+":data", &snap)
	return snap, ok
}

func (s *SnapshotStore) SaveCatalog(source string, snap domain.CatalogSnapshot, modTime int64) error {
	key := sourceKey(source)
	if err := s.set(key+":data", snap); err != nil {
		return err
	}
	// Timestamp is stored separately for freshness checks
	return s.set(key+":ts", modTime)
}

// === Validation ===

func (s *SnapshotStore) IsValid(source string, modTime int64) bool {
	var storedTS int64
	if !s.get(sourceKey(source)+":ts", &storedTS) {
		return false
	}
	return storedTS >= modTime
}

// === Invalidation ===

// Invalidate drops the snapshot and timestamp for one source
func (s *SnapshotStore) Invalidate(source string) {
	s.deletePrefix(sourceKey(source) + ":")
}

func (s *SnapshotStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketCatalogs) != nil {
			if err := tx.DeleteBucket(bucketCatalogs); err != nil {
				return err
			}
		}
		_, err := tx.CreateBucket(bucketCatalogs)
		return err
	})
}
