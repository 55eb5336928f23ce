package metadata

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
	"ragpipe/internal/domain"
)

var bucketChunks = []byte("chunks")

// BoltStore persists the chunk id -> text mapping in a single bbolt file.
// Each ingestion run rewrites the mapping wholesale: last writer wins at file
// granularity, no merge semantics.
type BoltStore struct {
	db *bbolt.DB
}

// chunkRecord is the persisted per-chunk layout.
type chunkRecord struct {
	Text string `json:"text"`
}

func Open(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata db: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Save replaces the stored mapping with the given chunks.
func (s *BoltStore) Save(chunks []domain.Chunk) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketChunks); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		b, err := tx.CreateBucket(bucketChunks)
		if err != nil {
			return err
		}
		for _, chunk := range chunks {
			data, err := json.Marshal(chunkRecord{Text: chunk.Text})
			if err != nil {
				return err
			}
			if err := b.Put([]byte(chunk.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns the full mapping, or domain.ErrNotFound when no ingestion has
// written anything yet.
func (s *BoltStore) Load() (map[string]string, error) {
	out := make(map[string]string)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketChunks)
		if b == nil {
			return fmt.Errorf("chunk metadata: %w", domain.ErrNotFound)
		}
		return b.ForEach(func(k, v []byte) error {
			var rec chunkRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("corrupt metadata record %s: %w", k, err)
			}
			out[string(k)] = rec.Text
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("chunk metadata: %w", domain.ErrNotFound)
	}
	return out, nil
}

// Lookup returns the text for a single chunk id.
func (s *BoltStore) Lookup(id string) (string, error) {
	var text string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketChunks)
		if b == nil {
			return fmt.Errorf("chunk metadata: %w", domain.ErrNotFound)
		}
		data := b.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("chunk %s: %w", id, domain.ErrNotFound)
		}
		var rec chunkRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("corrupt metadata record %s: %w", id, err)
		}
		text = rec.Text
		return nil
	})
	return text, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
