package specification

import "gorm.io/gorm"

// ByEmailInsensitive matches an email address case-insensitively; login
// treats Admin@x.com and admin@x.com as the same account.
type ByEmailInsensitive struct {
	Email string
}

func (s ByEmailInsensitive) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = LOWER(?)", s.Email)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
