package store_test

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/andrisetia/reservation-app/models"
	"github.com/andrisetia/reservation-app/store"
)

// newTestDB opens a named in-memory SQLite database so every test gets its
// own isolated schema while gorm's connection pool still sees shared state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Table{}, &models.Reservation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTable(t *testing.T, ts *store.TableStore, number int) *models.Table {
	t.Helper()
	table, err := ts.Create(store.CreateTableParams{Number: number, Capacity: 4})
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return table
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func strPtr(s string) *string { return &s }
