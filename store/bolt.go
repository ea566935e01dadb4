package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/stint/internal/osutil"
)

const stateBucket = "state"

// BoltStore is a BoltDB backed Store. BoltDB holds an exclusive lock on the
// file, so only one process can use the store at a time.
type BoltStore struct {
	*bolt.DB
}

// NewBoltStore opens or creates the database at dbPath.
func NewBoltStore(dbPath string) (*BoltStore, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(stateBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errOpenStore.Wrap(err)
	}

	return &BoltStore{
		db,
	}, nil
}

func (b *BoltStore) Get(
	_ context.Context,
	key string,
) (value string, ok bool, err error) {
	err = b.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(stateBucket)).Get([]byte(key))
		if v == nil {
			return nil
		}

		// v is only valid for the lifetime of the transaction
		value, ok = string(v), true

		return nil
	})

	return value, ok, err
}

func (b *BoltStore) Set(_ context.Context, key, value string) error {
	return b.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put([]byte(key), []byte(value))
	})
}

func (b *BoltStore) Remove(_ context.Context, key string) error {
	return b.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Delete([]byte(key))
	})
}

// openDB creates or opens a database and locks it.
func openDB(dbPath string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	db, err := bolt.Open(
		dbPath,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errStoreLocked
		}

		return nil, errOpenStore.Wrap(err)
	}

	return db, nil
}
