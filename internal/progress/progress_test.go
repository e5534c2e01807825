package progress

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRecord(t *testing.T) {
	now := time.Date(2026, time.October, 16, 8, 0, 0, 0, time.UTC)
	p := Default("user_1", "2026-10-16", now)

	assert.Equal(t, "user_1_2026-10-16", p.ID)
	assert.Nil(t, p.Weight)
	assert.Equal(t, 0, p.CaloriesConsumed)
	assert.Equal(t, 1050, p.CaloriesTarget)
	assert.Equal(t, 0, p.Steps)
	assert.Equal(t, 8000, p.StepsTarget)
	assert.Equal(t, 0.0, p.WaterIntake)
	assert.Equal(t, 2.5, p.WaterTarget)
	assert.Empty(t, p.CompletedTasks)
	assert.NotNil(t, p.CompletedTasks)
}

func TestWeightHiddenBeforeNoon(t *testing.T) {
	rec := Default("u", "2026-10-16", time.Now())
	rec.Weight = Ptr(72.5)

	for h := 0; h < 24; h++ {
		now := time.Date(2026, time.October, 16, h, 30, 0, 0, time.Local)
		view := rec.ViewAt(now)
		if h < 12 {
			assert.Nil(t, view.Weight, "hour %d", h)
		} else {
			require.NotNil(t, view.Weight, "hour %d", h)
			assert.Equal(t, 72.5, *view.Weight)
		}
	}
	require.NotNil(t, rec.Weight, "view must not touch the stored record")
}

func TestWeightRecordedThisMorningStaysVisible(t *testing.T) {
	rec := Default("u", "2026-10-16", time.Now())
	recorded := time.Date(2026, time.October, 16, 7, 10, 0, 0, time.Local)
	rec.Weight = Ptr(71.0)
	rec.WeightRecordedAt = &recorded

	view := rec.ViewAt(time.Date(2026, time.October, 16, 9, 0, 0, 0, time.Local))
	require.NotNil(t, view.Weight)

	yesterday := recorded.AddDate(0, 0, -1)
	rec.WeightRecordedAt = &yesterday
	assert.Nil(t, rec.ViewAt(time.Date(2026, time.October, 16, 9, 0, 0, 0, time.Local)).Weight)
}

func TestUpdateWeightNullVersusAbsent(t *testing.T) {
	var absent Update
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":"u","steps":10}`), &absent))
	assert.False(t, absent.Weight.Set)

	var cleared Update
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":"u","weight":null}`), &cleared))
	assert.True(t, cleared.Weight.Set)
	assert.Nil(t, cleared.Weight.Value)

	var set Update
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":"u","weight":70.2}`), &set))
	require.NotNil(t, set.Weight.Value)
	assert.Equal(t, 70.2, *set.Weight.Value)

	out, err := json.Marshal(Update{UserID: "u", Steps: Ptr(5)})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "weight")

	out, err = json.Marshal(Update{UserID: "u", Weight: ClearWeight()})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"weight":null`)
}

func TestApplyMergesOnlyPresentFields(t *testing.T) {
	now := time.Date(2026, time.October, 16, 13, 0, 0, 0, time.UTC)
	rec := Default("u", "2026-10-16", now.Add(-time.Hour))
	rec.Steps = 4000

	patch := Update{UserID: "u", Weight: WeightOf(70), WaterIntake: Ptr(1.25), CompletedTasks: &[]string{"a", "b", "a"}}
	patch.Apply(rec, now)

	require.NotNil(t, rec.Weight)
	assert.Equal(t, 70.0, *rec.Weight)
	require.NotNil(t, rec.WeightRecordedAt)
	assert.Equal(t, now, *rec.WeightRecordedAt)
	assert.Equal(t, 1.25, rec.WaterIntake)
	assert.Equal(t, 4000, rec.Steps)
	assert.Equal(t, []string{"a", "b"}, rec.CompletedTasks)
	assert.Equal(t, now, rec.UpdatedAt)

	reset := Update{UserID: "u", Weight: ClearWeight(), CompletedTasks: &[]string{}}
	reset.Apply(rec, now)
	assert.Nil(t, rec.Weight)
	assert.Nil(t, rec.WeightRecordedAt)
	assert.Empty(t, rec.CompletedTasks)
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	start := []string{"wake-up", "shower"}

	once := Toggle(start, "weigh")
	assert.ElementsMatch(t, []string{"wake-up", "shower", "weigh"}, once)

	twice := Toggle(once, "weigh")
	assert.ElementsMatch(t, start, twice)

	removed := Toggle(start, "shower")
	assert.Equal(t, []string{"wake-up"}, removed)
	assert.ElementsMatch(t, start, Toggle(removed, "shower"))
}

func TestEmpty(t *testing.T) {
	assert.True(t, (&Update{UserID: "u"}).Empty())
	assert.False(t, (&Update{UserID: "u", Weight: ClearWeight()}).Empty())
	assert.False(t, (&Update{UserID: "u", CompletedTasks: &[]string{}}).Empty())
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 10))
	assert.Equal(t, 30, Percentage(3, 10))
	assert.Equal(t, 100, Percentage(10, 10))
	assert.Equal(t, 100, Percentage(14, 10))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 0, Percentage(5, 0))

	prev := 0
	for n := 0; n <= 20; n++ {
		p := Percentage(n, DefaultDenominator)
		assert.GreaterOrEqual(t, p, prev)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
}
