package journal

import (
	"context"
	"fmt"
	"strings"

	"s3dropbox/core/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultLimit bounds List when the filter names no limit.
const DefaultLimit = 50

// Filter narrows a journal listing.
type Filter struct {
	Bucket    string
	Direction Direction
	Status    Status
	Limit     int
}

// Repository stores transfer records. A Repository without a database is a no-op.
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRepository creates a repository. db may be nil.
func NewRepository(db *gorm.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Enabled reports whether records are persisted.
func (r *Repository) Enabled() bool {
	return r != nil && r.db != nil
}

// Migrate creates or updates the journal table, then verifies its columns.
func (r *Repository) Migrate() error {
	if !r.Enabled() {
		return nil
	}
	if err := r.db.AutoMigrate(&TransferRecord{}); err != nil {
		return fmt.Errorf("failed to migrate transfer journal: %w", err)
	}
	return r.Verify()
}

// Verify checks that the journal table carries every column the repository uses.
func (r *Repository) Verify() error {
	if !r.Enabled() {
		return nil
	}
	missing, err := database.MissingColumns(r.db, TransferRecord{}.TableName(), Columns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("transfer journal is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Record stores rec, assigning an ID when it has none.
func (r *Repository) Record(ctx context.Context, rec *TransferRecord) error {
	if !r.Enabled() {
		return nil
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record transfer %s: %w", rec.ID, err)
	}
	return nil
}

// List returns the most recent records matching f, newest first.
func (r *Repository) List(ctx context.Context, f Filter) ([]TransferRecord, error) {
	if !r.Enabled() {
		return []TransferRecord{}, nil
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := r.db.WithContext(ctx).Model(&TransferRecord{})
	if f.Bucket != "" {
		query = query.Where("bucket = ?", f.Bucket)
	}
	if f.Direction != "" {
		query = query.Where("direction = ?", f.Direction)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}

	var records []TransferRecord
	if err := query.Order("started_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return records, nil
}
