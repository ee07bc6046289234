package services

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"package-tracker/internal/repositories"
)

const testSchema = `
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL UNIQUE,
    role TEXT NOT NULL DEFAULT 'delivery',
    status TEXT NOT NULL DEFAULT 'available',
    password TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE packages (
    id TEXT PRIMARY KEY,
    destinatario TEXT NOT NULL,
    direccion TEXT NOT NULL,
    delivery_person_id TEXT,
    status TEXT NOT NULL DEFAULT 'pending',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    delivered_at DATETIME
);
`

// newTestDB opens an in-memory sqlite database with the service schema.
// A single connection keeps every query on the same in-memory store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func newTestRepos(t *testing.T) (*repositories.PackageRepository, *repositories.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	return repositories.NewPackageRepository(db), repositories.NewUserRepository(db)
}
