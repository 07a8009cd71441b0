// Package store provides SQLite-based persistence for logged exercise sessions.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"iter"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DateLayout is the format of the fecha column.
const DateLayout = "2006-01-02"

// ErrNoData is returned when an operation needs at least one stored exercise.
var ErrNoData = errors.New("no exercises recorded")

// Exercise is one logged exercise session.
type Exercise struct {
	ID              int64     `json:"id"`
	Date            time.Time `json:"date"`
	ActivityType    string    `json:"activity_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       string    `json:"intensity"`
}

// Day returns the exercise date formatted as stored.
func (e *Exercise) Day() string {
	return e.Date.Format(DateLayout)
}

// Store is the SQLite-backed persistence layer for exercises.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens or creates a SQLite database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Single client. Also keeps ":memory:" databases on one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	s := &Store{db: db, path: path, now: time.Now}
	if err := s.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file the store was opened on.
func (s *Store) Path() string {
	return s.path
}

// EnsureSchema creates the ejercicios table if it does not exist.
func (s *Store) EnsureSchema() error {
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// InsertExercise appends one exercise dated today and returns its ID.
// Inputs are expected to be validated already.
func (s *Store) InsertExercise(activityType string, durationMinutes int, intensity string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO ejercicios (fecha, tipo_actividad, duracion, intensidad) VALUES (?, ?, ?, ?)",
		s.now().Format(DateLayout), activityType, durationMinutes, intensity,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting exercise: %w", err)
	}
	return result.LastInsertId()
}

const selectExercisesSQL = `SELECT id, fecha, tipo_actividad, duracion, intensidad
	FROM ejercicios ORDER BY id ASC`

// Exercises returns a sequence over all stored exercises in ID order.
// Each range over the sequence runs a fresh query. The store holds a single
// connection, so the loop body must not call back into the store.
func (s *Store) Exercises() iter.Seq2[*Exercise, error] {
	return func(yield func(*Exercise, error) bool) {
		rows, err := s.db.Query(selectExercisesSQL)
		if err != nil {
			yield(nil, fmt.Errorf("querying exercises: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			e, err := scanExercise(rows)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("reading exercises: %w", err))
		}
	}
}

// ListExercises returns a snapshot of all stored exercises in ID order.
func (s *Store) ListExercises() ([]*Exercise, error) {
	var exercises []*Exercise
	for e, err := range s.Exercises() {
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, nil
}

func scanExercise(rows *sql.Rows) (*Exercise, error) {
	e := &Exercise{}
	var fecha string
	if err := rows.Scan(&e.ID, &fecha, &e.ActivityType, &e.DurationMinutes, &e.Intensity); err != nil {
		return nil, fmt.Errorf("scanning exercise: %w", err)
	}
	date, err := time.Parse(DateLayout, fecha)
	if err != nil {
		return nil, fmt.Errorf("exercise %d has malformed date %q: %w", e.ID, fecha, err)
	}
	e.Date = date
	return e, nil
}

// CountExercises returns the number of stored exercises.
func (s *Store) CountExercises() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM ejercicios").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting exercises: %w", err)
	}
	return n, nil
}

// DailyTotals returns the summed duration per date, keyed by DateLayout.
func (s *Store) DailyTotals() (map[string]int, error) {
	return s.sumBy("fecha")
}

// TypeTotals returns the summed duration per activity type.
func (s *Store) TypeTotals() (map[string]int, error) {
	return s.sumBy("tipo_actividad")
}

// IntensityTotals returns the summed duration per intensity label.
func (s *Store) IntensityTotals() (map[string]int, error) {
	return s.sumBy("intensidad")
}

// sumBy groups on a fixed column name; never pass user input.
func (s *Store) sumBy(column string) (map[string]int, error) {
	rows, err := s.db.Query(
		fmt.Sprintf("SELECT %s, SUM(duracion) FROM ejercicios GROUP BY %s", column, column),
	)
	if err != nil {
		return nil, fmt.Errorf("summing by %s: %w", column, err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var key string
		var total int
		if err := rows.Scan(&key, &total); err != nil {
			return nil, err
		}
		totals[key] = total
	}
	return totals, rows.Err()
}

// DeleteAll removes every exercise in a single statement and returns how many were removed.
func (s *Store) DeleteAll() (int64, error) {
	result, err := s.db.Exec("DELETE FROM ejercicios")
	if err != nil {
		return 0, fmt.Errorf("deleting exercises: %w", err)
	}
	return result.RowsAffected()
}
