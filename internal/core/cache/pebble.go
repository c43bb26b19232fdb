package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"
)

// pebbleStampSize is the big-endian unix-nano write time prepended to values.
const pebbleStampSize = 8

// PebbleStore keeps values in a Pebble LSM directory.
type PebbleStore struct {
	db  *pebble.DB
	now func() time.Time
}

// NewPebbleStore opens (or creates) the Pebble database in dir.
func NewPebbleStore(dir string) (*PebbleStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("pebble cache path is empty")
	}
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("opening pebble cache: %w", err)
	}
	return &PebbleStore{db: db, now: time.Now}, nil
}

func (s *PebbleStore) Get(key string) (string, error) {
	raw, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading cache entry: %w", err)
	}
	defer closer.Close()

	_, value, err := decodePebbleValue(raw)
	if err != nil {
		return "", fmt.Errorf("reading cache entry %q: %w", key, err)
	}
	return value, nil
}

func (s *PebbleStore) Set(key, value string) error {
	if err := s.db.Set([]byte(key), encodePebbleValue(s.now(), value), pebble.Sync); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

func (s *PebbleStore) Delete(key string) error {
	if err := s.db.Delete([]byte(key), pebble.Sync); err != nil {
		return fmt.Errorf("deleting cache entry: %w", err)
	}
	return nil
}

// List returns all records in key order. Records with a damaged value are
// skipped.
func (s *PebbleStore) List() ([]Record, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("listing cache: %w", err)
	}
	defer iter.Close()

	var records []Record
	for iter.First(); iter.Valid(); iter.Next() {
		stamp, value, err := decodePebbleValue(iter.Value())
		if err != nil {
			continue
		}
		records = append(records, Record{
			Key:       string(iter.Key()),
			Value:     value,
			UpdatedAt: stamp,
		})
	}
	return records, iter.Error()
}

func (s *PebbleStore) Clear() error {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	batch := s.db.NewBatch()
	defer batch.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		if err := batch.Delete(append([]byte(nil), iter.Key()...), nil); err != nil {
			iter.Close()
			return err
		}
	}
	if err := iter.Close(); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

// Close releases Pebble resources.
func (s *PebbleStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func encodePebbleValue(at time.Time, value string) []byte {
	buf := make([]byte, pebbleStampSize+len(value))
	binary.BigEndian.PutUint64(buf, uint64(at.UnixNano()))
	copy(buf[pebbleStampSize:], value)
	return buf
}

func decodePebbleValue(raw []byte) (time.Time, string, error) {
	if len(raw) < pebbleStampSize {
		return time.Time{}, "", fmt.Errorf("value too short (%d bytes)", len(raw))
	}
	nanos := int64(binary.BigEndian.Uint64(raw[:pebbleStampSize]))
	return time.Unix(0, nanos), string(raw[pebbleStampSize:]), nil
}
