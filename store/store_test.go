package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
)

func newTestStore(t *testing.T) (*HandUpStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	ormDB, err := gorm.Open("postgres", db)
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	ormDB.LogMode(false)

	return NewHandUpStore(ormDB), mock, func() { db.Close() }
}
