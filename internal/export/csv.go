// Package export writes stored exercises to delimited text files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/multierr"

	"github.com/swamp-dev/exlog/internal/store"
)

// Header is the first line of every exported file.
var Header = []string{"ID", "Fecha", "Tipo de Actividad", "Duración", "Intensidad"}

// WriteCSV writes rows to path as comma-separated values, replacing any
// existing file. Fields containing commas or quotes are quoted. With no
// rows it returns store.ErrNoData without touching the filesystem.
func WriteCSV(path string, rows []*store.Exercise) (err error) {
	if len(rows) == 0 {
		return store.ErrNoData
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range rows {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Day(),
			e.ActivityType,
			strconv.Itoa(e.DurationMinutes),
			e.Intensity,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing exercise %d: %w", e.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing export file: %w", err)
	}
	return nil
}
