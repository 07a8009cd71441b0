// Package report reshapes stored exercises into the aggregate views used by charts.
package report

import (
	"sort"
	"time"

	"github.com/swamp-dev/exlog/internal/store"
)

// DailyTotal is the summed duration of every exercise on one date.
type DailyTotal struct {
	Date    time.Time
	Minutes int
}

// TypeTotal is the summed duration of every exercise of one activity type.
type TypeTotal struct {
	ActivityType string
	Minutes      int
}

// DailyProgress sums minutes per date, sorted by date ascending.
// Dates without exercises are absent.
func DailyProgress(rows []*store.Exercise) []DailyTotal {
	index := make(map[string]int)
	var totals []DailyTotal
	for _, e := range rows {
		day := e.Day()
		i, ok := index[day]
		if !ok {
			i = len(totals)
			index[day] = i
			totals = append(totals, DailyTotal{Date: e.Date})
		}
		totals[i].Minutes += e.DurationMinutes
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals
}

// ByActivityType sums minutes per activity type in first-seen order.
func ByActivityType(rows []*store.Exercise) []TypeTotal {
	index := make(map[string]int)
	var totals []TypeTotal
	for _, e := range rows {
		i, ok := index[e.ActivityType]
		if !ok {
			i = len(totals)
			index[e.ActivityType] = i
			totals = append(totals, TypeTotal{ActivityType: e.ActivityType})
		}
		totals[i].Minutes += e.DurationMinutes
	}
	return totals
}

// Summary holds headline numbers for a set of exercises.
type Summary struct {
	Sessions     int
	TotalMinutes int
	ActiveDays   int
	// ByIntensity maps an intensity label to its summed minutes.
	ByIntensity map[string]int
	First, Last time.Time
}

// AverageMinutes returns the mean session length, or 0 with no sessions.
func (s Summary) AverageMinutes() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.TotalMinutes) / float64(s.Sessions)
}

// Summarize computes a Summary over rows.
func Summarize(rows []*store.Exercise) Summary {
	sum := Summary{ByIntensity: make(map[string]int)}
	days := make(map[string]struct{})
	for _, e := range rows {
		sum.Sessions++
		sum.TotalMinutes += e.DurationMinutes
		sum.ByIntensity[e.Intensity] += e.DurationMinutes
		days[e.Day()] = struct{}{}
		if sum.First.IsZero() || e.Date.Before(sum.First) {
			sum.First = e.Date
		}
		if e.Date.After(sum.Last) {
			sum.Last = e.Date
		}
	}
	sum.ActiveDays = len(days)
	return sum
}
