package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/ayoisaiah/stint/internal/osutil"
)

// entry is a single key-value row.
type entry struct {
	Name  string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

func (entry) TableName() string {
	return "entries"
}

// SQLStore is a SQLite backed Store.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore opens or creates the SQLite database at dbPath and migrates
// its schema.
func NewSQLStore(dbPath string) (*SQLStore, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	err = db.AutoMigrate(&entry{})
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(
	ctx context.Context,
	key string,
) (string, bool, error) {
	var e entry

	err := s.db.WithContext(ctx).First(&e, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return e.Value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry{Name: key, Value: value}).
		Error
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&entry{}, "name = ?", key).Error
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
