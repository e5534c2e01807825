package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misterMoAPI/internal/progress"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		date, start, end string
	}{
		{"2026-10-12", "2026-10-12", "2026-10-18"}, // Monday
		{"2026-10-15", "2026-10-12", "2026-10-18"},
		{"2026-10-18", "2026-10-12", "2026-10-18"}, // Sunday
		{"2026-11-01", "2026-10-26", "2026-11-01"},
	}
	for _, tt := range tests {
		start, end, err := WeekBounds(tt.date)
		require.NoError(t, err, tt.date)
		assert.Equal(t, tt.start, start, tt.date)
		assert.Equal(t, tt.end, end, tt.date)
	}

	_, _, err := WeekBounds("16.10.2026")
	assert.Error(t, err)
}

func record(date string, tasks []string, water float64, calories int, weight *float64) *progress.DailyProgress {
	p := progress.Default("user_1", date, time.Now())
	p.CompletedTasks = tasks
	p.WaterIntake = water
	p.CaloriesConsumed = calories
	p.Weight = weight
	return p
}

func TestSummarize(t *testing.T) {
	records := []*progress.DailyProgress{
		record("2026-10-11", []string{"shower"}, 3, 900, progress.Ptr(90.0)), // previous week
		record("2026-10-12", []string{"wake-up", "shower", "weigh"}, 2.5, 1000, progress.Ptr(82.4)),
		progress.Default("user_1", "2026-10-13", time.Now()),
		record("2026-10-14", []string{"wake-up"}, 1.2, 800, nil),
		record("2026-10-15", []string{"wake-up", "weigh"}, 0.75, 0, progress.Ptr(81.9)),
		record("2026-10-16", []string{"shower"}, 0, 0, nil), // after the requested date
	}

	s, err := Summarize(records, "2026-10-15", 10)
	require.NoError(t, err)

	assert.Equal(t, "2026-10-12", s.WeekStart)
	assert.Equal(t, "2026-10-18", s.WeekEnd)
	assert.Equal(t, 3, s.DaysTracked, "empty default records do not count")
	assert.Equal(t, 6, s.TasksCompleted)
	assert.Equal(t, 20, s.AverageCompletion)
	assert.Equal(t, 4.45, s.WaterTotal)
	assert.Equal(t, 1, s.WaterGoalDays)
	assert.Equal(t, 600, s.AverageCalories)
	require.NotNil(t, s.WeightChange)
	assert.Equal(t, -0.5, *s.WeightChange)
	assert.Equal(t, 82.4, *s.FirstWeight)
	assert.Equal(t, 81.9, *s.LastWeight)
	assert.Equal(t, 2, s.CurrentStreak)

	require.Len(t, s.Days, 7)
	assert.False(t, s.Days[1].Tracked)
	assert.Equal(t, 30, s.Days[0].Percentage)
	assert.False(t, s.Days[4].Tracked)
}

func TestSummarizeEmptyWeek(t *testing.T) {
	s, err := Summarize(nil, "2026-10-17", 10)
	require.NoError(t, err)
	assert.Zero(t, s.DaysTracked)
	assert.Zero(t, s.AverageCompletion)
	assert.Nil(t, s.WeightChange)
	assert.Zero(t, s.CurrentStreak)
	assert.Len(t, s.Days, 7)
}
