package services

import (
	"fmt"
	"testing"

	"github.com/leonardo-a/daily-diet-api/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newTestDB returns a migrated in-memory database unique to the calling
// test, so state never leaks between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}
