// Package sqlite_test contains integration tests for SQLite repositories.
//
// Tests run against the embedded migrations via db.Open, so the schema under
// test is always the schema that ships. Do not hand-write CREATE TABLE
// statements here; use setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/permitflow/internal/db"
)

// setupTestDB creates a migrated in-memory database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.Open(db.InMemory)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedRecord inserts a record and returns its ID.
func seedRecord(t *testing.T, database *sql.DB, id, status, fileDate string) string {
	t.Helper()
	if id == "" {
		id = "BLD25-00000-00001"
	}
	if status == "" {
		status = "Received"
	}
	var fd any
	if fileDate != "" {
		fd = fileDate
	}
	_, err := database.Exec("INSERT INTO records (id, status, file_date) VALUES (?, ?, ?)", id, status, fd)
	if err != nil {
		t.Fatalf("failed to seed record: %v", err)
	}
	return id
}

// recordingLogWriter captures audit calls for assertions.
type recordingLogWriter struct {
	creates []string
	updates []string
}

func (w *recordingLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	w.creates = append(w.creates, entityType+":"+entityID)
	return nil
}

func (w *recordingLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	w.updates = append(w.updates, entityType+":"+entityID+":"+fieldName+":"+oldValue+"->"+newValue)
	return nil
}
