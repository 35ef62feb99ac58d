package services

import (
	"ExerciseTracker/models"
	"ExerciseTracker/utils"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUserID = "507f1f77bcf86cd799439011"

func TestValidateExercise(t *testing.T) {
	record, err := ValidateExercise(models.ExerciseInput{
		UserID:      validUserID,
		Description: "run",
		Duration:    "30",
		Date:        "2019-04-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "run", record.Description)
	assert.Equal(t, 30.0, record.Duration)
	assert.Equal(t, time.Date(2019, 4, 5, 0, 0, 0, 0, time.UTC), record.Date)
}

func TestValidateExerciseEpochDate(t *testing.T) {
	record, err := ValidateExercise(models.ExerciseInput{
		UserID:      validUserID,
		Description: "swim",
		Duration:    "45",
		Date:        "1554422400000",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 4, 5, 0, 0, 0, 0, time.UTC), record.Date)
}

func TestValidateExerciseDefaultsDateToToday(t *testing.T) {
	record, err := ValidateExercise(models.ExerciseInput{
		UserID:      validUserID,
		Description: "run",
		Duration:    "30",
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, record.Date)
}

func TestValidateExerciseDescriptionAtLimit(t *testing.T) {
	record, err := ValidateExercise(models.ExerciseInput{
		UserID:      validUserID,
		Description: "exactly twenty chars",
		Duration:    "30",
	})
	require.NoError(t, err)
	assert.Equal(t, "exactly twenty chars", record.Description)
}

func TestValidateExerciseFractionalDuration(t *testing.T) {
	record, err := ValidateExercise(models.ExerciseInput{
		UserID:      validUserID,
		Description: "walk",
		Duration:    "12.5",
	})
	require.NoError(t, err)
	assert.Equal(t, 12.5, record.Duration)
}

func TestValidateExerciseFailures(t *testing.T) {
	cases := []struct {
		name    string
		input   models.ExerciseInput
		message string
	}{
		{
			name:    "missing userId",
			input:   models.ExerciseInput{Description: "run", Duration: "30"},
			message: "unknown _id.",
		},
		{
			name:    "malformed userId",
			input:   models.ExerciseInput{UserID: "12345", Description: "run", Duration: "30"},
			message: "unknown _id.",
		},
		{
			name:    "missing description",
			input:   models.ExerciseInput{UserID: validUserID, Duration: "30"},
			message: "Path `description` is required.",
		},
		{
			name:    "missing duration",
			input:   models.ExerciseInput{UserID: validUserID, Description: "run"},
			message: "Path `duration` is required.",
		},
		{
			name:    "description too long",
			input:   models.ExerciseInput{UserID: validUserID, Description: "a very long description indeed", Duration: "30"},
			message: "description too long.",
		},
		{
			name:    "non-numeric duration",
			input:   models.ExerciseInput{UserID: validUserID, Description: "run", Duration: "abc"},
			message: `Cast to Number failed for value "abc" at path "duration".`,
		},
		{
			name:    "NaN duration",
			input:   models.ExerciseInput{UserID: validUserID, Description: "run", Duration: "NaN"},
			message: `Cast to Number failed for value "NaN" at path "duration".`,
		},
		{
			name:    "malformed date",
			input:   models.ExerciseInput{UserID: validUserID, Description: "run", Duration: "30", Date: "not-a-date"},
			message: `Cast to Date failed for value "not-a-date" at path "date".`,
		},
		{
			name:    "epoch date out of range",
			input:   models.ExerciseInput{UserID: validUserID, Description: "run", Duration: "30", Date: "1e30"},
			message: `Cast to Date failed for value "1e30" at path "date".`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record, err := ValidateExercise(tc.input)
			require.Nil(t, record)

			var customErr *utils.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
			assert.Equal(t, tc.message, customErr.Message)
		})
	}
}

// The first violated rule wins, later faults stay unreported.
func TestValidateExerciseFirstFailureWins(t *testing.T) {
	cases := []struct {
		name    string
		input   models.ExerciseInput
		message string
	}{
		{
			name:    "missing description before bad duration",
			input:   models.ExerciseInput{UserID: validUserID, Duration: "abc"},
			message: "Path `description` is required.",
		},
		{
			name:    "bad userId before everything else",
			input:   models.ExerciseInput{UserID: "nope", Duration: "abc", Date: "nope"},
			message: "unknown _id.",
		},
		{
			name:    "too long description before bad date",
			input:   models.ExerciseInput{UserID: validUserID, Description: "a very long description indeed", Duration: "30", Date: "nope"},
			message: "description too long.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateExercise(tc.input)
			var customErr *utils.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tc.message, customErr.Message)
		})
	}
}
