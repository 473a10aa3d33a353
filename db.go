package main

import (
	"database/sql"
	"errors"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type HitDB struct {
	db *sqlx.DB
}

// IncrementHit records one click on the named banner.
func (h *HitDB) IncrementHit(banner string) error {
	query := `INSERT INTO banner_hits (banner, hits) VALUES (?, 1)
		ON CONFLICT(banner) DO UPDATE SET hits = hits + 1;`

	if _, err := h.db.Exec(query, banner); err != nil {
		return err
	}

	return nil
}

// GetHits returns the click count of the named banner, zero if it was never clicked.
func (h *HitDB) GetHits(banner string) (int, error) {
	var row BannerHits
	err := h.db.Get(&row, `SELECT banner, hits FROM banner_hits WHERE banner = ?;`, banner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return row.Hits, nil
}

func (h *HitDB) Close() error {
	return h.db.Close()
}

func newDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := execSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func initDB(dbFilePath string) error {
	file, err := os.Create(dbFilePath)
	if err != nil {
		return err
	}
	file.Close()

	db, err := newDB(dbFilePath)
	if err != nil {
		return err
	}

	return db.Close()
}

func execSchema(db *sqlx.DB) error {
	schemaFile, err := setupFS.Open("schema.sql")
	if err != nil {
		return err
	}

	schema, err := io.ReadAll(schemaFile)
	if err != nil {
		return err
	}

	if err := schemaFile.Close(); err != nil {
		return err
	}

	if _, err := db.Exec(string(schema)); err != nil {
		return err
	}

	return nil
}
