package database

import (
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*LocalStorageRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		LocalStorageRepo: &LocalStorageRepo{db: db},
	}
}

var _ DataStore = (*Repository)(nil)
