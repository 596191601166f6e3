package records

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps records in a relational table with an index on external_record_id.
type GormStore struct {
	db    *gorm.DB
	table string
}

// NewGormStore creates a Store backed by the given table.
func NewGormStore(db *gorm.DB, table string) *GormStore {
	return &GormStore{db: db, table: table}
}

// Table returns the physical table name.
func (s *GormStore) Table() string {
	return s.table
}

// AutoMigrate creates or updates the table and its index.
func (s *GormStore) AutoMigrate() error {
	if err := s.db.Table(s.table).AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate table %s: %w", s.table, err)
	}
	return nil
}

func (s *GormStore) FindByExternalID(ctx context.Context, externalID string) (*Record, error) {
	var found []Record
	err := s.db.WithContext(ctx).Table(s.table).
		Where("external_record_id = ?", externalID).
		Limit(1).
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query by external id %s: %w", externalID, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (s *GormStore) Upsert(ctx context.Context, rec *Record) error {
	err := s.db.WithContext(ctx).Table(s.table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert record %s: %w", rec.ID, err)
	}
	return nil
}

func (s *GormStore) ScanAll(ctx context.Context) ([]Record, error) {
	var all []Record
	if err := s.db.WithContext(ctx).Table(s.table).Find(&all).Error; err != nil {
		return nil, fmt.Errorf("failed to scan table %s: %w", s.table, err)
	}
	return all, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
