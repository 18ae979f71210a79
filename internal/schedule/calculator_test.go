package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	projectStart := types.NewDate(2024, time.January, 1)

	tests := []struct {
		name      string
		start     string
		end       string
		conv      Convention
		wantStart int
		wantEnd   int
		wantErr   error
	}{
		{"task on project start", "2024-01-01T00:00:00Z", "2024-01-03T00:00:00Z", TaskDays, 1, 3, nil},
		{"tag on project start", "2024-01-01T00:00:00Z", "2024-01-03T00:00:00Z", TagDays, 0, 2, nil},
		{"time of day is discarded", "2024-01-05T23:59:59Z", "2024-01-05T00:00:01Z", TaskDays, 5, 5, nil},
		{"non-UTC instant uses UTC date", "2024-01-02T01:00:00+03:00", "2024-01-02T12:00:00Z", TaskDays, 1, 2, nil},
		{"task before project start", "2023-12-31T23:00:00Z", "2024-01-02T00:00:00Z", TaskDays, 0, 0, ErrStartBeforeProject},
		{"tag before project start", "2023-12-31T00:00:00Z", "2024-01-02T00:00:00Z", TagDays, 0, 0, ErrStartBeforeProject},
		{"end before start", "2024-01-10T00:00:00Z", "2024-01-09T00:00:00Z", TaskDays, 0, 0, ErrEndBeforeStart},
		{"across a leap day", "2024-02-28T00:00:00Z", "2024-03-01T00:00:00Z", TagDays, 58, 60, nil},
		{"tag centuries ahead", "2400-01-01T00:00:00Z", "2400-01-01T00:00:00Z", TagDays, 137331, 137331, nil},
		{"task centuries ahead", "2400-01-01T00:00:00Z", "2401-01-01T00:00:00Z", TaskDays, 137332, 137698, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startDay, endDay, err := Calculate(at(tt.start), at(tt.end), projectStart, tt.conv)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.Is(err, models.ErrBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, startDay)
			assert.Equal(t, tt.wantEnd, endDay)
		})
	}
}

func TestCalculate_MissingProjectStart(t *testing.T) {
	t.Parallel()

	_, _, err := Calculate(at("2024-01-01T00:00:00Z"), at("2024-01-02T00:00:00Z"), types.Date{}, TaskDays)
	require.ErrorIs(t, err, ErrProjectStartRequired)
	assert.Equal(t, "Project start date is required", err.Error())
}

func TestCalculate_ConventionsDifferByOne(t *testing.T) {
	t.Parallel()

	projectStart := types.NewDate(2024, time.March, 10)
	for offset := 0; offset < 40; offset++ {
		start := projectStart.Time().Add(time.Duration(offset)*24*time.Hour + 7*time.Hour)
		end := start.Add(72 * time.Hour)

		taskStart, taskEnd, err := Calculate(start, end, projectStart, TaskDays)
		require.NoError(t, err)
		tagStart, tagEnd, err := Calculate(start, end, projectStart, TagDays)
		require.NoError(t, err)

		assert.Equal(t, offset+1, taskStart)
		assert.Equal(t, offset, tagStart)
		assert.Equal(t, taskStart-1, tagStart)
		assert.Equal(t, taskEnd-1, tagEnd)
		assert.GreaterOrEqual(t, taskEnd, taskStart)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	projectStart := types.NewDate(2024, time.January, 1)

	s := models.Schedule{StartAt: at("2024-01-04T10:00:00Z"), EndAt: at("2024-01-06T10:00:00Z")}
	require.NoError(t, Apply(&s, projectStart, TaskDays))
	assert.Equal(t, 4, s.StartDay)
	assert.Equal(t, 6, s.EndDay)

	bad := models.Schedule{StartAt: at("2024-01-06T10:00:00Z"), EndAt: at("2024-01-04T10:00:00Z"), StartDay: 9, EndDay: 9}
	require.ErrorIs(t, Apply(&bad, projectStart, TaskDays), ErrEndBeforeStart)
	assert.Equal(t, 9, bad.StartDay, "days are untouched on error")
	assert.Equal(t, 9, bad.EndDay)
}
