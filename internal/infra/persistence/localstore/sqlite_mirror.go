package localstore

import (
	"context"
	"log/slog"

	"brokerage/config"
	"brokerage/internal/errors"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// collectionRecord is the GORM-specific struct for the 'collections' table:
// one row per mirror key, holding the full serialized list.
type collectionRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

// TableName explicitly sets the table name for GORM.
func (collectionRecord) TableName() string {
	return "collections"
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// sqliteMirror implements Mirror on a single-file SQLite database.
type sqliteMirror struct {
	db *gorm.DB
}

// NewMirror opens (or creates) the SQLite mirror file configured under
// storage.path and prepares the collections table.
func NewMirror(params Params) (Mirror, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.Storage.Path), &gorm.Config{
		Logger: gormlogger.Discard,
		// Every mutation is already a single full-collection overwrite;
		// GORM's implicit per-statement transaction adds nothing.
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite mirror")
	}

	if err := db.AutoMigrate(&collectionRecord{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate collections table")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing sqlite mirror", slog.String("path", params.Config.Storage.Path))

			return sqlDB.Close()
		},
	})

	return &sqliteMirror{db: db}, nil
}

// Load returns the value stored under key, or (nil, nil) when absent.
func (m *sqliteMirror) Load(ctx context.Context, key string) ([]byte, error) {
	var record collectionRecord
	if err := m.db.WithContext(ctx).
		Where("key = ?", key).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to load mirror key %s", key)
	}

	return record.Value, nil
}

// Save overwrites the value stored under key.
func (m *sqliteMirror) Save(ctx context.Context, key string, value []byte) error {
	record := collectionRecord{Key: key, Value: value}

	if err := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&record).Error; err != nil {
		return errors.Wrapf(err, "failed to save mirror key %s", key)
	}

	return nil
}

// Delete removes key and its value.
func (m *sqliteMirror) Delete(ctx context.Context, key string) error {
	if err := m.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&collectionRecord{}).Error; err != nil {
		return errors.Wrapf(err, "failed to delete mirror key %s", key)
	}

	return nil
}
