package schedule

import (
	"fmt"
	"time"
)

// BlockID names one of the three fixed day segments.
type BlockID string

const (
	Morning BlockID = "morning"
	Daytime BlockID = "day"
	Evening BlockID = "evening"
)

// Prompt is a Sunday call-to-action that is rendered but never tracked in
// completed_tasks.
type Prompt string

const (
	PromptMeasurements  Prompt = "measurements"
	PromptSocialSharing Prompt = "social-sharing"
)

// Task is a rendered schedule item. Subtasks nest one level only.
type Task struct {
	ID       TaskID `json:"id"`
	Title    string `json:"title"`
	Video    string `json:"video,omitempty"`
	Audio    string `json:"audio,omitempty"`
	Info     string `json:"info,omitempty"`
	Subtasks []Task `json:"subtasks,omitempty"`
}

type TimeBlock struct {
	ID        BlockID `json:"id"`
	Title     string  `json:"title"`
	TimeRange string  `json:"time_range"`
	Tasks     []Task  `json:"tasks"`
}

type Day struct {
	Weekday time.Weekday `json:"weekday"`
	Fasting bool         `json:"fasting"`
	Blocks  []TimeBlock  `json:"blocks"`
	Prompts []Prompt     `json:"prompts,omitempty"`
}

var (
	morningTasks        = []TaskID{WakeUp, Weigh, Shower, Workout, SupplementsMorning, Motivation, Breathing, WorkTime}
	fastingMorningTasks = []TaskID{WakeUp, Weigh, Shower, Workout, SupplementsMorning, Reflection, Breathing, WorkTime}

	lunchTasks        = []TaskID{LunchPrep, AppleVinegarLunch, BerberinLunch, LunchTime, MindfulEatingLunch, SlowEatingLunch, WalkAfterLunch}
	fastingLunchTasks = []TaskID{LunchFasting, WalkLunch}

	dinnerTasks        = []TaskID{DinnerPrep, AppleVinegarDinner, BerberinDinner, DinnerTime, MindfulEatingDinner, SlowEatingDinner, WalkAfterDinner}
	fastingDinnerTasks = []TaskID{EveningReflection, WalkEveningFasting}

	eveningTasks = []TaskID{FatBurner, EveningBreathing, GoodHabits, Sleep}
)

// Generate builds the schedule for a weekday. The fasting flag only changes
// the content on Mondays.
func Generate(weekday time.Weekday, fasting bool) Day {
	fastingDay := weekday == time.Monday && fasting

	morning, lunch, dinner := morningTasks, lunchTasks, dinnerTasks
	if fastingDay {
		morning, lunch, dinner = fastingMorningTasks, fastingLunchTasks, fastingDinnerTasks
	}

	daytime := make([]TaskID, 0, 1+len(lunch)+len(dinner))
	daytime = append(daytime, SocialShare)
	daytime = append(daytime, lunch...)
	daytime = append(daytime, dinner...)

	day := Day{
		Weekday: weekday,
		Fasting: fastingDay,
		Blocks: []TimeBlock{
			{ID: Morning, Title: "Morning", TimeRange: "until 10:00", Tasks: build(morning)},
			{ID: Daytime, Title: "Day", TimeRange: "10:00 - 21:00", Tasks: build(daytime)},
			{ID: Evening, Title: "Evening", TimeRange: "21:00 - 24:00", Tasks: build(eveningTasks)},
		},
	}
	if weekday == time.Sunday {
		day.Prompts = []Prompt{PromptMeasurements, PromptSocialSharing}
	}
	return day
}

// ForDate generates the schedule for the weekday of t in t's location.
func ForDate(t time.Time, fasting bool) Day {
	return Generate(t.Weekday(), fasting)
}

func build(ids []TaskID) []Task {
	tasks := make([]Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, render(id, true))
	}
	return tasks
}

func render(id TaskID, withSubtasks bool) Task {
	def, ok := registry[id]
	if !ok {
		panic(fmt.Sprintf("schedule: task %q is not registered", id))
	}
	t := Task{ID: def.ID, Title: def.Title, Video: def.Video, Audio: def.Audio, Info: def.Info}
	if withSubtasks {
		for _, sub := range def.Subtasks {
			t.Subtasks = append(t.Subtasks, render(sub, false))
		}
	}
	return t
}

// Block returns the block with the given id.
func (d Day) Block(id BlockID) (TimeBlock, bool) {
	for _, b := range d.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return TimeBlock{}, false
}

// TaskIDs lists every checkable id of the day, subtasks included, in render order.
func (d Day) TaskIDs() []TaskID {
	var ids []TaskID
	for _, b := range d.Blocks {
		ids = append(ids, b.IDs()...)
	}
	return ids
}

// IDs lists the ids of a block, subtasks included.
func (b TimeBlock) IDs() []TaskID {
	var ids []TaskID
	for _, t := range b.Tasks {
		ids = append(ids, t.ID)
		for _, s := range t.Subtasks {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Completion counts how many of the day's tasks appear in completed.
// Ids from other branches are ignored.
func (d Day) Completion(completed []string) (done, total int) {
	set := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		set[id] = struct{}{}
	}
	for _, id := range d.TaskIDs() {
		total++
		if _, ok := set[string(id)]; ok {
			done++
		}
	}
	return done, total
}

// HasPrompt reports whether the day renders p.
func (d Day) HasPrompt(p Prompt) bool {
	for _, x := range d.Prompts {
		if x == p {
			return true
		}
	}
	return false
}

// DayStatus is a generated day together with the user's completion state.
type DayStatus struct {
	Day
	Date           string   `json:"date"`
	CompletedTasks []string `json:"completed_tasks"`
	Done           int      `json:"done"`
	Total          int      `json:"total"`
}

// Status pairs the day with a completed set.
func (d Day) Status(date string, completed []string) DayStatus {
	done, total := d.Completion(completed)
	return DayStatus{Day: d, Date: date, CompletedTasks: completed, Done: done, Total: total}
}
