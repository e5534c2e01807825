package progress

import (
	"bytes"
	"encoding/json"
	"time"
)

// NullableFloat tells an absent field apart from an explicit null.
type NullableFloat struct {
	Set   bool
	Value *float64
}

func WeightOf(kg float64) NullableFloat {
	return NullableFloat{Set: true, Value: &kg}
}

func ClearWeight() NullableFloat {
	return NullableFloat{Set: true}
}

func (n NullableFloat) IsZero() bool {
	return !n.Set
}

func (n NullableFloat) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func (n *NullableFloat) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// Update is a partial patch of a DailyProgress. Nil fields are left alone.
type Update struct {
	UserID           string        `json:"user_id" validate:"required"`
	Date             string        `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Weight           NullableFloat `json:"weight,omitzero"`
	CaloriesConsumed *int          `json:"calories_consumed,omitempty" validate:"omitempty,gte=0"`
	CaloriesTarget   *int          `json:"calories_target,omitempty" validate:"omitempty,gt=0"`
	Steps            *int          `json:"steps,omitempty" validate:"omitempty,gte=0"`
	StepsTarget      *int          `json:"steps_target,omitempty" validate:"omitempty,gt=0"`
	WaterIntake      *float64      `json:"water_intake,omitempty" validate:"omitempty,gte=0"`
	WaterTarget      *float64      `json:"water_target,omitempty" validate:"omitempty,gt=0"`
	CompletedTasks   *[]string     `json:"completed_tasks,omitempty"`
	ChestMeasurement *float64      `json:"chest_measurement,omitempty" validate:"omitempty,gt=0"`
	WaistMeasurement *float64      `json:"waist_measurement,omitempty" validate:"omitempty,gt=0"`
	HipsMeasurement  *float64      `json:"hips_measurement,omitempty" validate:"omitempty,gt=0"`
}

// Empty reports whether the patch carries no field at all.
func (u *Update) Empty() bool {
	return !u.Weight.Set && u.CaloriesConsumed == nil && u.CaloriesTarget == nil &&
		u.Steps == nil && u.StepsTarget == nil && u.WaterIntake == nil && u.WaterTarget == nil &&
		u.CompletedTasks == nil && u.ChestMeasurement == nil && u.WaistMeasurement == nil &&
		u.HipsMeasurement == nil
}

// Apply merges the patch into p. Completed tasks are replaced as a whole set.
func (u *Update) Apply(p *DailyProgress, now time.Time) {
	if u.Weight.Set {
		p.Weight = cloneFloat(u.Weight.Value)
		if p.Weight != nil {
			at := now
			p.WeightRecordedAt = &at
		} else {
			p.WeightRecordedAt = nil
		}
	}
	if u.CaloriesConsumed != nil {
		p.CaloriesConsumed = *u.CaloriesConsumed
	}
	if u.CaloriesTarget != nil {
		p.CaloriesTarget = *u.CaloriesTarget
	}
	if u.Steps != nil {
		p.Steps = *u.Steps
	}
	if u.StepsTarget != nil {
		p.StepsTarget = *u.StepsTarget
	}
	if u.WaterIntake != nil {
		p.WaterIntake = *u.WaterIntake
	}
	if u.WaterTarget != nil {
		p.WaterTarget = *u.WaterTarget
	}
	if u.CompletedTasks != nil {
		p.CompletedTasks = dedupe(*u.CompletedTasks)
	}
	if u.ChestMeasurement != nil {
		p.ChestMeasurement = cloneFloat(u.ChestMeasurement)
	}
	if u.WaistMeasurement != nil {
		p.WaistMeasurement = cloneFloat(u.WaistMeasurement)
	}
	if u.HipsMeasurement != nil {
		p.HipsMeasurement = cloneFloat(u.HipsMeasurement)
	}
	p.UpdatedAt = now
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Toggle returns the completed set with taskID added when absent and
// removed when present.
func Toggle(completed []string, taskID string) []string {
	out := make([]string, 0, len(completed)+1)
	found := false
	for _, id := range completed {
		if id == taskID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, taskID)
	}
	return out
}

// Ptr is a small helper for building patches.
func Ptr[T any](v T) *T {
	return &v
}
