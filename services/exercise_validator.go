package services

import (
	"ExerciseTracker/models"
	"ExerciseTracker/utils"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"
)

// UserIDPattern matches the 24-hex opaque user identifier.
var UserIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// DateLayout is the calendar-date format used in requests and responses.
const DateLayout = "2006-01-02"

const maxDescriptionLength = 20

// maxEpochMillis bounds the accepted epoch range to ±100 million days around
// the epoch; anything further out is not a valid calendar date.
const maxEpochMillis = 8.64e15

// ValidateExercise checks the raw exercise fields in a fixed order and stops
// at the first violated rule. On success the returned record carries the
// parsed duration and a date normalized to UTC calendar-date midnight; a
// missing date defaults to today.
func ValidateExercise(input models.ExerciseInput) (*models.ExerciseRecord, error) {
	if !UserIDPattern.MatchString(input.UserID) {
		return nil, utils.NewCustomError(http.StatusBadRequest, "unknown _id.")
	}
	if input.Description == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Path `description` is required.")
	}
	if input.Duration == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Path `duration` is required.")
	}
	if utf8.RuneCountInString(input.Description) > maxDescriptionLength {
		return nil, utils.NewCustomError(http.StatusBadRequest, "description too long.")
	}

	duration, err := strconv.ParseFloat(input.Duration, 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, utils.NewCustomError(http.StatusBadRequest,
			fmt.Sprintf("Cast to Number failed for value %q at path \"duration\".", input.Duration))
	}

	date := truncateToDay(time.Now().UTC())
	if input.Date != "" {
		parsed, ok := parseDate(input.Date)
		if !ok {
			return nil, utils.NewCustomError(http.StatusBadRequest,
				fmt.Sprintf("Cast to Date failed for value %q at path \"date\".", input.Date))
		}
		date = parsed
	}

	return &models.ExerciseRecord{
		Description: input.Description,
		Duration:    duration,
		Date:        date,
	}, nil
}

// parseDate resolves the two accepted date spellings: a numeric value is
// taken as epoch milliseconds, anything else as a calendar-date string.
func parseDate(raw string) (time.Time, bool) {
	if ms, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(ms) && !math.IsInf(ms, 0) {
		if math.Abs(ms) > maxEpochMillis {
			return time.Time{}, false
		}
		return truncateToDay(time.UnixMilli(int64(ms)).UTC()), true
	}
	return parseCalendarDate(raw)
}

func parseCalendarDate(raw string) (time.Time, bool) {
	for _, layout := range []string{DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return truncateToDay(t.UTC()), true
		}
	}
	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
