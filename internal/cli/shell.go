package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/swamp-dev/exlog/internal/app"
	"github.com/swamp-dev/exlog/internal/entry"
	"github.com/swamp-dev/exlog/internal/report"
	"github.com/swamp-dev/exlog/internal/store"
)

// consoleShell implements app.Shell on a terminal.
type consoleShell struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	// form, when set, is used instead of prompting for the entry fields.
	form *app.Form
	// exportPath, when set, is used instead of prompting for a destination.
	exportPath        string
	defaultExportPath string
	assumeYes         bool
	chartWidth        int
}

func newConsoleShell(in io.Reader, out, errOut io.Writer) *consoleShell {
	return &consoleShell{
		in:         bufio.NewReader(in),
		out:        out,
		errOut:     errOut,
		chartWidth: 40,
	}
}

// readLine prompts and returns one line without its line ending.
// Surrounding spaces are kept.
func (c *consoleShell) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *consoleShell) Form() (app.Form, error) {
	if c.form != nil {
		return *c.form, nil
	}

	var f app.Form
	var err error
	if f.ActivityType, err = c.readLine("Activity type: "); err != nil {
		return f, err
	}
	if f.Duration, err = c.readLine("Duration (min): "); err != nil {
		return f, err
	}
	if f.Intensity, err = c.readLine(fmt.Sprintf("Intensity [%s]: ", intensityChoices())); err != nil {
		return f, err
	}
	return f, nil
}

func (c *consoleShell) ResetForm() {
	c.form = nil
}

func (c *consoleShell) Confirm(title, question string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	answer, err := c.readLine(fmt.Sprintf("%s: %s [y/N]: ", title, question))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (c *consoleShell) ExportPath() (string, error) {
	if c.exportPath != "" {
		return c.exportPath, nil
	}
	prompt := "Export to: "
	if c.defaultExportPath != "" {
		prompt = fmt.Sprintf("Export to [%s]: ", c.defaultExportPath)
	}
	path, err := c.readLine(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}
	if path = strings.TrimSpace(path); path == "" {
		return c.defaultExportPath, nil
	}
	return path, nil
}

func (c *consoleShell) Info(title, message string) {
	fmt.Fprintf(c.out, "%s: %s\n", title, message)
}

func (c *consoleShell) Error(title, message string) {
	fmt.Fprintf(c.errOut, "%s: %s\n", title, message)
}

func (c *consoleShell) LineChart(title string, points []report.DailyTotal) error {
	max := 0
	for _, p := range points {
		if p.Minutes > max {
			max = p.Minutes
		}
	}

	fmt.Fprintf(c.out, "%s (minutes per day)\n\n", title)
	for _, p := range points {
		fmt.Fprintf(c.out, "  %s │%s %d\n", p.Date.Format(store.DateLayout),
			renderBar(p.Minutes, max, c.chartWidth), p.Minutes)
	}
	return nil
}

func (c *consoleShell) BarChart(title string, bars []report.TypeTotal) error {
	max, labelWidth := 0, 0
	for _, b := range bars {
		if b.Minutes > max {
			max = b.Minutes
		}
		if n := len([]rune(truncate(b.ActivityType, 24))); n > labelWidth {
			labelWidth = n
		}
	}

	fmt.Fprintf(c.out, "%s\n\n", title)
	for _, b := range bars {
		label := truncate(b.ActivityType, 24)
		pad := strings.Repeat(" ", labelWidth-len([]rune(label)))
		fmt.Fprintf(c.out, "  %s%s │%s %d\n", label, pad,
			renderBar(b.Minutes, max, c.chartWidth), b.Minutes)
	}
	return nil
}

func (c *consoleShell) Table(rows []*store.Exercise) error {
	fmt.Fprintf(c.out, "%-6s %-10s %-24s %8s  %s\n", "ID", "DATE", "ACTIVITY", "MINUTES", "INTENSITY")
	for _, e := range rows {
		fmt.Fprintf(c.out, "%-6d %-10s %-24s %8d  %s\n",
			e.ID, e.Day(), truncate(e.ActivityType, 24), e.DurationMinutes, e.Intensity)
	}
	return nil
}

func (c *consoleShell) Stats(totals app.Totals) error {
	sum := totals.Summary
	fmt.Fprintf(c.out, "Sessions:      %d\n", sum.Sessions)
	fmt.Fprintf(c.out, "Total minutes: %d\n", sum.TotalMinutes)
	fmt.Fprintf(c.out, "Average:       %.1f min\n", sum.AverageMinutes())
	fmt.Fprintf(c.out, "Active days:   %d (%s to %s)\n", sum.ActiveDays,
		sum.First.Format(store.DateLayout), sum.Last.Format(store.DateLayout))

	fmt.Fprintln(c.out, "\nBy intensity:")
	printTotals(c.out, sum.ByIntensity)
	fmt.Fprintln(c.out, "\nBy activity type:")
	printTotals(c.out, totals.ByType)
	fmt.Fprintln(c.out, "\nBy date:")
	printTotals(c.out, totals.Daily)
	return nil
}

// printTotals writes totals sorted by key.
func printTotals(w io.Writer, totals map[string]int) {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-24s %6d\n", truncate(k, 24), totals[k])
	}
}

func intensityChoices() string {
	var names []string
	for _, i := range entry.Intensities() {
		names = append(names, string(i))
	}
	return strings.Join(names, "/")
}

// renderBar draws value scaled against max in width columns. Any positive
// value gets at least one block.
func renderBar(value, max, width int) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = value * width / max
		if filled < 1 {
			filled = 1
		}
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// truncate shortens s to max runes, ending in "..." when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
