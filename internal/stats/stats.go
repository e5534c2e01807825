// Package stats summarizes a user's daily progress records over a
// Monday-to-Sunday week.
package stats

import (
	"fmt"
	"math"
	"time"

	"misterMoAPI/internal/progress"
)

type WeekSummary struct {
	WeekStart         string   `json:"week_start"`
	WeekEnd           string   `json:"week_end"`
	DaysTracked       int      `json:"days_tracked"`
	TotalDays         int      `json:"total_days"`
	TasksCompleted    int      `json:"tasks_completed"`
	AverageCompletion int      `json:"average_completion"` // percent, over tracked days
	WaterTotal        float64  `json:"water_total"`
	WaterGoalDays     int      `json:"water_goal_days"`
	AverageCalories   int      `json:"average_calories"`
	FirstWeight       *float64 `json:"first_weight"`
	LastWeight        *float64 `json:"last_weight"`
	WeightChange      *float64 `json:"weight_change"`
	CurrentStreak     int      `json:"current_streak"`
	Days              []Day    `json:"days"`
}

// Day is one row of the week. Days with no stored record are included
// with Tracked false.
type Day struct {
	Date       string `json:"date"`
	Tracked    bool   `json:"tracked"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

// WeekBounds returns the Monday and Sunday of the week containing date.
func WeekBounds(date string) (start, end string, err error) {
	d, err := time.Parse(progress.DateLayout, date)
	if err != nil {
		return "", "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	return progress.DateOf(monday), progress.DateOf(monday.AddDate(0, 0, 6)), nil
}

// Tracked reports whether the user entered anything on the record's day.
// The defaults created by a plain read do not count.
func Tracked(p *progress.DailyProgress) bool {
	return len(p.CompletedTasks) > 0 || p.Weight != nil || p.WaterIntake > 0 ||
		p.CaloriesConsumed > 0 || p.Steps > 0
}

// Summarize builds the summary of the week containing date. Records
// outside that week are ignored, as are records after date, so the streak
// counts back from date itself.
func Summarize(records []*progress.DailyProgress, date string, denominator int) (*WeekSummary, error) {
	start, end, err := WeekBounds(date)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*progress.DailyProgress, len(records))
	for _, p := range records {
		if p.Date >= start && p.Date <= date {
			byDate[p.Date] = p
		}
	}

	s := &WeekSummary{WeekStart: start, WeekEnd: end, TotalDays: 7, Days: make([]Day, 0, 7)}
	monday, _ := time.Parse(progress.DateLayout, start)

	var pctSum, calSum int
	for i := 0; i < 7; i++ {
		day := progress.DateOf(monday.AddDate(0, 0, i))
		row := Day{Date: day}

		p, ok := byDate[day]
		if ok && Tracked(p) {
			row.Tracked = true
			row.Completed = len(p.CompletedTasks)
			row.Percentage = progress.Percentage(row.Completed, denominator)

			s.DaysTracked++
			s.TasksCompleted += row.Completed
			s.WaterTotal += p.WaterIntake
			if p.WaterTarget > 0 && p.WaterIntake >= p.WaterTarget {
				s.WaterGoalDays++
			}
			pctSum += row.Percentage
			calSum += p.CaloriesConsumed

			if p.Weight != nil {
				w := *p.Weight
				if s.FirstWeight == nil {
					s.FirstWeight = &w
				}
				s.LastWeight = &w
			}
		}
		s.Days = append(s.Days, row)
	}

	if s.DaysTracked > 0 {
		s.AverageCompletion = int(math.Round(float64(pctSum) / float64(s.DaysTracked)))
		s.AverageCalories = int(math.Round(float64(calSum) / float64(s.DaysTracked)))
	}
	s.WaterTotal = math.Round(s.WaterTotal*100) / 100
	if s.FirstWeight != nil && s.LastWeight != nil {
		change := math.Round((*s.LastWeight-*s.FirstWeight)*10) / 10
		s.WeightChange = &change
	}

	for i := len(s.Days) - 1; i >= 0; i-- {
		if s.Days[i].Date > date {
			continue
		}
		if s.Days[i].Completed == 0 {
			break
		}
		s.CurrentStreak++
	}
	return s, nil
}
