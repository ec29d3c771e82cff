package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/devyntra/internal/database"
	"github.com/thenoetrevino/devyntra/internal/models"
)

// SetupTestDB creates an in-memory database with the local storage schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenInMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// StrPtr returns a pointer to s, for optional project fields
func StrPtr(s string) *string {
	return &s
}

// SampleProject builds a project with the given status
func SampleProject(name, status string) models.Project {
	return models.Project{
		Name:    name,
		RepoURL: "https://github.com/acme/" + name,
		Status:  status,
	}
}
