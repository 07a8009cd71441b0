// Package app maps user actions onto the store, validator, report builder and
// exporter. It knows nothing about the user interface beyond the Shell interface.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/swamp-dev/exlog/internal/entry"
	"github.com/swamp-dev/exlog/internal/export"
	"github.com/swamp-dev/exlog/internal/report"
	"github.com/swamp-dev/exlog/internal/store"
)

// Action is one thing the user can ask for.
type Action int

const (
	ActionRegister Action = iota + 1
	ActionDailyProgress
	ActionByType
	ActionExport
	ActionClear
	ActionList
	ActionStats
)

var actionNames = map[Action]string{
	ActionRegister:      "register",
	ActionDailyProgress: "progress",
	ActionByType:        "by-type",
	ActionExport:        "export",
	ActionClear:         "clear",
	ActionList:          "list",
	ActionStats:         "stats",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ErrDeclined is returned when the user does not confirm a destructive action.
var ErrDeclined = errors.New("confirmation declined")

// Form holds the raw strings typed into the entry fields.
type Form struct {
	ActivityType string
	Duration     string
	Intensity    string
}

// Totals are the store-side aggregates shown by ActionStats.
type Totals struct {
	Daily   map[string]int
	ByType  map[string]int
	Summary report.Summary
}

// Shell is the presentation layer. Every Dispatch shows at most one of
// Info, Error or a chart/table surface.
type Shell interface {
	// Form returns the current raw entry fields.
	Form() (Form, error)
	// ResetForm clears the entry fields after a successful insert.
	ResetForm()
	// Confirm asks a yes/no question.
	Confirm(title, question string) (bool, error)
	// ExportPath asks where to export. An empty path cancels.
	ExportPath() (string, error)

	Info(title, message string)
	Error(title, message string)

	LineChart(title string, points []report.DailyTotal) error
	BarChart(title string, bars []report.TypeTotal) error
	Table(rows []*store.Exercise) error
	Stats(totals Totals) error
}

// ShownError wraps an error the Shell has already displayed.
type ShownError struct {
	Err error
}

func (e *ShownError) Error() string { return e.Err.Error() }
func (e *ShownError) Unwrap() error { return e.Err }

// App dispatches actions for one open store.
type App struct {
	store     *store.Store
	shell     Shell
	validator entry.Validator
	logger    *slog.Logger
}

// New creates an App. A nil logger discards logs.
func New(s *store.Store, shell Shell, validator entry.Validator, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{store: s, shell: shell, validator: validator, logger: logger}
}

// Dispatch runs action to completion. Validation and IO failures come back
// wrapped in *ShownError after the Shell displayed them. A declined
// confirmation returns ErrDeclined; an empty store returns store.ErrNoData.
func (a *App) Dispatch(action Action) error {
	a.logger.Debug("dispatching action", "action", action)

	switch action {
	case ActionRegister:
		return a.register()
	case ActionDailyProgress:
		return a.dailyProgress()
	case ActionByType:
		return a.byType()
	case ActionExport:
		return a.export()
	case ActionClear:
		return a.clear()
	case ActionList:
		return a.list()
	case ActionStats:
		return a.stats()
	default:
		return fmt.Errorf("unknown action %v", action)
	}
}

func (a *App) fail(title string, err error) error {
	a.shell.Error(title, err.Error())
	return &ShownError{Err: err}
}

func (a *App) register() error {
	form, err := a.shell.Form()
	if err != nil {
		return fmt.Errorf("reading form: %w", err)
	}

	e, err := a.validator.Validate(form.ActivityType, form.Duration, form.Intensity)
	if err != nil {
		a.logger.Debug("entry rejected", "error", err)
		return a.fail("Invalid entry", err)
	}

	id, err := a.store.InsertExercise(e.ActivityType, e.DurationMinutes, e.Intensity)
	if err != nil {
		return a.fail("Error", err)
	}
	a.logger.Info("exercise registered", "id", id, "activity", e.ActivityType, "minutes", e.DurationMinutes)

	a.shell.Info("Success", fmt.Sprintf("Exercise #%d registered.", id))
	a.shell.ResetForm()
	return nil
}

// snapshot loads every exercise, showing the no-data dialog when there are none.
func (a *App) snapshot(noData string) ([]*store.Exercise, error) {
	rows, err := a.store.ListExercises()
	if err != nil {
		return nil, a.fail("Error", err)
	}
	if len(rows) == 0 {
		a.shell.Info("No data", noData)
		return nil, store.ErrNoData
	}
	return rows, nil
}

func (a *App) dailyProgress() error {
	rows, err := a.snapshot("There are no exercises to chart.")
	if err != nil {
		return err
	}
	if err := a.shell.LineChart("Daily progress", report.DailyProgress(rows)); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func (a *App) byType() error {
	rows, err := a.snapshot("There are no exercises to chart.")
	if err != nil {
		return err
	}
	if err := a.shell.BarChart("Minutes by activity type", report.ByActivityType(rows)); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func (a *App) list() error {
	rows, err := a.snapshot("There are no exercises recorded.")
	if err != nil {
		return err
	}
	if err := a.shell.Table(rows); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}

func (a *App) stats() error {
	rows, err := a.snapshot("There are no exercises recorded.")
	if err != nil {
		return err
	}

	daily, err := a.store.DailyTotals()
	if err != nil {
		return a.fail("Error", err)
	}
	byType, err := a.store.TypeTotals()
	if err != nil {
		return a.fail("Error", err)
	}

	totals := Totals{Daily: daily, ByType: byType, Summary: report.Summarize(rows)}
	if err := a.shell.Stats(totals); err != nil {
		return fmt.Errorf("rendering stats: %w", err)
	}
	return nil
}

func (a *App) export() error {
	rows, err := a.snapshot("There are no exercises to export.")
	if err != nil {
		return err
	}

	path, err := a.shell.ExportPath()
	if err != nil {
		return fmt.Errorf("reading export path: %w", err)
	}
	if path == "" {
		a.logger.Debug("export cancelled")
		return nil
	}

	if err := export.WriteCSV(path, rows); err != nil {
		return a.fail("Export failed", err)
	}
	a.logger.Info("exercises exported", "path", path, "rows", len(rows))

	a.shell.Info("Success", fmt.Sprintf("Exported %d exercises to %s.", len(rows), path))
	return nil
}

func (a *App) clear() error {
	n, err := a.store.CountExercises()
	if err != nil {
		return a.fail("Error", err)
	}
	if n == 0 {
		a.shell.Info("No data", "There are no exercises to delete.")
		return store.ErrNoData
	}

	ok, err := a.shell.Confirm("Confirm", fmt.Sprintf("Delete all %d exercises? This cannot be undone.", n))
	if err != nil {
		return fmt.Errorf("reading confirmation: %w", err)
	}
	if !ok {
		return ErrDeclined
	}

	deleted, err := a.store.DeleteAll()
	if err != nil {
		return a.fail("Error", err)
	}
	a.logger.Info("exercises deleted", "rows", deleted)

	a.shell.Info("Success", "All exercises have been deleted.")
	return nil
}
