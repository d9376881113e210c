package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Storage persists measurements into a local SQLite database so runs taken
// on different machines or interpreters can be compared later. The schema is
// two tables: run parameters (host context) and one row per measurement.
type Storage struct {
	db *sql.DB
}

func OpenStorage(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results db %v: %w", path, err)
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error { return s.db.Close() }

// InitResultsDb creates the schema and records host parameters once.
func (s *Storage) InitResultsDb(info SysInfo) error {
	_, err := s.db.Exec("CREATE TABLE IF NOT EXISTS parameters (name TEXT PRIMARY KEY, value)")
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		"INSERT INTO parameters VALUES (?, ?), (?, ?), (?, ?), (?, ?), (?, ?), (?, ?), (?, ?) ON CONFLICT DO NOTHING",
		"time", time.Now().Format("2006-01-02 15:04:05"),
		"arch", info.Arch,
		"hostname", info.Hostname,
		"platform", info.Platform,
		"ram", info.RAM,
		"cpu", info.CPUCount,
		"freq", info.CPUFreq,
	)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS measurements (
		kernel TEXT,
		dataset TEXT,
		measurement TEXT,
		value REAL
	)`)
	if err != nil {
		return err
	}
	Logger.Infof("initialized results database")
	return nil
}

// SaveMeasurement appends the rows of one run: a single elapsed-time or
// cycle row, or one row per hardware counter.
func (s *Storage) SaveMeasurement(kernel string, dataset DatasetSize, m Measurement) error {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := func(measurement string, value float64) error {
		_, err := tx.Exec("INSERT INTO measurements VALUES (?, ?, ?, ?)", kernel, string(dataset), measurement, value)
		return err
	}
	switch m.Mode {
	case ModeTime:
		if err := insert("seconds", m.Seconds); err != nil {
			return err
		}
	case ModeCycles:
		if err := insert("cycles", float64(m.Cycles)); err != nil {
			return err
		}
	case ModePapi:
		for _, counter := range m.Counters {
			if err := insert(counter.Name, float64(counter.Value)); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}
