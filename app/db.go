package app

import (
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const TestDb = "test_gomoku.db"

func OpenDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db at %s: %w", path, err)
	}
	if _, err := db.Exec(CreateSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

func createTestDB() (*sqlx.DB, func()) {
	fail := func(err error) {
		log.Fatalf("failed to open test sqlite db: %v", err)
	}

	db, err := sqlx.Open("sqlite", TestDb)
	if err != nil {
		fail(err)
	}
	closer := func() {
		_ = db.Close()
		if err := os.Remove(TestDb); err != nil {
			fail(err)
		}
	}
	if _, err := db.Exec(CreateSchema); err != nil {
		fail(err)
	}
	return db, closer
}
