package services

import (
	"ExerciseTracker/models"
	"math"
	"sort"
	"strconv"
)

// FilterLog produces the query view of a user's log: sorted by date ascending
// (stable for equal dates), optionally bounded by from/to, then cut to the
// first limit entries. Malformed parameters are ignored rather than rejected,
// and the input slice is never mutated.
func FilterLog(log []models.ExerciseRecord, query models.LogQuery) []models.ExerciseRecord {
	out := make([]models.ExerciseRecord, len(log))
	copy(out, log)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	if query.From != "" {
		if from, ok := parseCalendarDate(query.From); ok {
			out = keepRecords(out, func(r models.ExerciseRecord) bool {
				return !r.Date.Before(from)
			})
		}
	}

	if query.To != "" {
		if to, ok := parseCalendarDate(query.To); ok {
			out = keepRecords(out, func(r models.ExerciseRecord) bool {
				return !r.Date.After(to)
			})
		}
	}

	if query.Limit != "" {
		if n, ok := parseLimit(query.Limit); ok {
			if n < 0 {
				n = 0
			}
			if n < len(out) {
				out = out[:n]
			}
		}
	}

	return out
}

// keepRecords filters in place; out is already a private copy of the log.
func keepRecords(records []models.ExerciseRecord, keep func(models.ExerciseRecord) bool) []models.ExerciseRecord {
	kept := records[:0]
	for _, r := range records {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// parseLimit accepts any finite number; fractional limits truncate toward
// zero. Values beyond the int range clamp instead of overflowing, so a huge
// limit keeps the whole log.
func parseLimit(raw string) (int, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt {
		return math.MaxInt, true
	}
	if f <= math.MinInt {
		return math.MinInt, true
	}
	return int(f), true
}
