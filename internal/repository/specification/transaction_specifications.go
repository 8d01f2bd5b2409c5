package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByReference struct {
	Reference string
}

func (s ByReference) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reference = ?", s.Reference)
}

type ByTransactionStatus struct {
	Status string
}

func (s ByTransactionStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("transaction_status = ?", s.Status)
}

// UpdatedSince narrows the watcher's poll to rows touched after the last
// sweep.
type UpdatedSince struct {
	Since time.Time
}

func (s UpdatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("updated_at > ?", s.Since)
}
