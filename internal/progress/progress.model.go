package progress

import (
	"math"
	"time"
)

// DateLayout is the calendar-day key of a progress record.
const DateLayout = "2006-01-02"

const (
	DefaultCaloriesTarget = 1050
	DefaultStepsTarget    = 8000
	DefaultWaterTarget    = 2.5
)

// DefaultDenominator is the nominal number of tasks per day used for the
// completion percentage.
const DefaultDenominator = 10

// Percentage is round(min(100, 100*completed/denominator)).
func Percentage(completed, denominator int) int {
	if denominator <= 0 || completed <= 0 {
		return 0
	}
	return int(math.Round(math.Min(100, 100*float64(completed)/float64(denominator))))
}

// DailyProgress is keyed by (UserID, Date); there is at most one per day.
type DailyProgress struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Date             string     `json:"date"`
	Weight           *float64   `json:"weight"`
	WeightRecordedAt *time.Time `json:"weight_recorded_at,omitempty"`
	CaloriesConsumed int        `json:"calories_consumed"`
	CaloriesTarget   int        `json:"calories_target"`
	Steps            int        `json:"steps"`
	StepsTarget      int        `json:"steps_target"`
	WaterIntake      float64    `json:"water_intake"`
	WaterTarget      float64    `json:"water_target"`
	CompletedTasks   []string   `json:"completed_tasks"`
	ChestMeasurement *float64   `json:"chest_measurement,omitempty"`
	WaistMeasurement *float64   `json:"waist_measurement,omitempty"`
	HipsMeasurement  *float64   `json:"hips_measurement,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// RecordID is the deterministic id of the record for (userID, date).
func RecordID(userID, date string) string {
	return userID + "_" + date
}

// Default is the record synthesized for a day with nothing stored yet.
func Default(userID, date string, now time.Time) *DailyProgress {
	return &DailyProgress{
		ID:             RecordID(userID, date),
		UserID:         userID,
		Date:           date,
		CaloriesTarget: DefaultCaloriesTarget,
		StepsTarget:    DefaultStepsTarget,
		WaterTarget:    DefaultWaterTarget,
		CompletedTasks: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a deep copy so callers can mutate freely.
func (p *DailyProgress) Clone() *DailyProgress {
	if p == nil {
		return nil
	}
	c := *p
	c.Weight = cloneFloat(p.Weight)
	c.ChestMeasurement = cloneFloat(p.ChestMeasurement)
	c.WaistMeasurement = cloneFloat(p.WaistMeasurement)
	c.HipsMeasurement = cloneFloat(p.HipsMeasurement)
	if p.WeightRecordedAt != nil {
		at := *p.WeightRecordedAt
		c.WeightRecordedAt = &at
	}
	c.CompletedTasks = append([]string{}, p.CompletedTasks...)
	return &c
}

// HasTask reports whether taskID is in the completed set.
func (p *DailyProgress) HasTask(taskID string) bool {
	for _, id := range p.CompletedTasks {
		if id == taskID {
			return true
		}
	}
	return false
}

// WeightHiddenAt reports whether the stored weight should be hidden at now:
// before noon a weight that was not recorded earlier this morning is
// treated as yesterday's scale reading. A record without WeightRecordedAt
// is hidden whenever the hour is before 12.
func (p *DailyProgress) WeightHiddenAt(now time.Time) bool {
	if p.Weight == nil || now.Hour() >= 12 {
		return false
	}
	if p.WeightRecordedAt == nil {
		return true
	}
	recorded := p.WeightRecordedAt.In(now.Location())
	return DateOf(recorded) != DateOf(now)
}

// ViewAt returns the record as it should be surfaced at now. The stored
// record is never modified.
func (p *DailyProgress) ViewAt(now time.Time) *DailyProgress {
	v := p.Clone()
	if v != nil && v.WeightHiddenAt(now) {
		v.Weight = nil
	}
	return v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
