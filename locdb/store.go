package locdb

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/rotblauer/pintour/conceptual"
	"github.com/rotblauer/pintour/locdb/flat"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/types/location"
	"go.etcd.io/bbolt"
)

var ErrNotFound = errors.New("location not found")

// Store is the location history, one bbolt file.
//
// Bucket "locations" maps id to the JSON record.
// Bucket "by_time" maps big-endian unix nanos + id to id,
// so a reverse cursor walks the history newest first.
type Store struct {
	DB     *bbolt.DB
	Flat   *flat.Flat
	logger *slog.Logger
}

// Open opens (or creates) the store under dir.
// Opening a writable store blocks other writers and readers of the same file.
func Open(dir string, readOnly bool) (*Store, error) {
	f := flat.NewFlatWithRoot(dir)
	if !readOnly {
		if err := f.MkdirAll(); err != nil {
			return nil, err
		}
	}
	db, err := bbolt.Open(filepath.Join(f.Path(), params.StoreDBName), 0600, &bbolt.Options{
		ReadOnly: readOnly,
		Timeout:  10 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	s := &Store{
		DB:     db,
		Flat:   f,
		logger: slog.With("db", "locations"),
	}
	if !readOnly {
		err = db.Update(func(tx *bbolt.Tx) error {
			for _, b := range [][]byte{params.StoreLocationsBucket, params.StoreByTimeBucket} {
				if _, err := tx.CreateBucketIfNotExists(b); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func timeKey(ts time.Time, id conceptual.LocationID) []byte {
	var nanos uint64
	if !ts.IsZero() && ts.UnixNano() > 0 {
		nanos = uint64(ts.UnixNano())
	}
	k := make([]byte, 8, 8+len(id))
	binary.BigEndian.PutUint64(k, nanos)
	return append(k, id...)
}

// Put upserts records by id. Records without an id are rejected.
// It returns the number of records written.
func (s *Store) Put(records ...location.Record) (int, error) {
	n := 0
	err := s.DB.Update(func(tx *bbolt.Tx) error {
		locs := tx.Bucket(params.StoreLocationsBucket)
		byTime := tx.Bucket(params.StoreByTimeBucket)
		for _, r := range records {
			if r.ID.IsEmpty() {
				return fmt.Errorf("put: %w", location.ErrMissingID)
			}
			key := []byte(r.ID)
			if old := locs.Get(key); old != nil {
				prev := location.Record{}
				if err := json.Unmarshal(old, &prev); err == nil {
					if err := byTime.Delete(timeKey(prev.Timestamp, prev.ID)); err != nil {
						return err
					}
				}
			}
			data, err := json.Marshal(r)
			if err != nil {
				return err
			}
			if err := locs.Put(key, data); err != nil {
				return err
			}
			if err := byTime.Put(timeKey(r.Timestamp, r.ID), key); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) Get(id conceptual.LocationID) (location.Record, error) {
	r := location.Record{}
	err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(params.StoreLocationsBucket)
		if b == nil {
			return ErrNotFound
		}
		// The value returned by Get is only valid in the scope of the transaction.
		got := b.Get([]byte(id))
		if got == nil {
			return ErrNotFound
		}
		return json.Unmarshal(got, &r)
	})
	return r, err
}

// RecentLocations returns up to limit records, newest first.
// A limit <= 0 returns everything.
func (s *Store) RecentLocations(limit int) ([]location.Record, error) {
	out := []location.Record{}
	err := s.DB.View(func(tx *bbolt.Tx) error {
		locs := tx.Bucket(params.StoreLocationsBucket)
		byTime := tx.Bucket(params.StoreByTimeBucket)
		if locs == nil || byTime == nil {
			return nil
		}
		c := byTime.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}
			data := locs.Get(v)
			if data == nil {
				s.logger.Warn("Dangling time index", "id", string(v))
				continue
			}
			r := location.Record{}
			if err := json.Unmarshal(data, &r); err != nil {
				return fmt.Errorf("decode %s: %w", string(v), err)
			}
			out = append(out, r)
		}
		return nil
	})
	return out, err
}

func (s *Store) Count() (int, error) {
	n := 0
	err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(params.StoreLocationsBucket)
		if b == nil {
			return nil
		}
		n = b.Stats().KeyN
		return nil
	})
	return n, err
}

// Export appends every stored record, newest first, to the flat NDJSON export file.
func (s *Store) Export() (int, error) {
	all, err := s.RecentLocations(0)
	if err != nil {
		return 0, err
	}
	values := make([]any, len(all))
	for i := range all {
		values[i] = all[i]
	}
	if err := s.Flat.AppendNDJSON(flat.ExportsFileName, values...); err != nil {
		return 0, err
	}
	return len(all), nil
}
