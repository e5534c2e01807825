// Package tracker holds today's progress record on the client and applies
// the user's interactions to it through the API.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/schedule"
)

var (
	ErrNotLoaded        = errors.New("progress not loaded")
	ErrInvalidFoodEntry = errors.New("calories and grams are required")
	ErrInvalidWeight    = errors.New("weight must be positive")
)

// API is the part of the backend the tracker talks to. *client.Client
// implements it.
type API interface {
	GetToday(ctx context.Context, userID, date string) (*progress.DailyProgress, error)
	UpdateProgress(ctx context.Context, upd progress.Update) (*progress.DailyProgress, error)
	GetStartWeight(ctx context.Context, userID string) (*float64, error)
	SaveStartWeight(ctx context.Context, userID string, kg float64) (float64, error)
}

type Option func(*Store)

// WithDenominator overrides the tasks-per-day used for the percentage.
func WithDenominator(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.denominator = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

type Store struct {
	api         API
	now         func() time.Time
	denominator int

	// writeMu serializes mutations so a toggle always reads the result of
	// the previous one.
	writeMu sync.Mutex

	mu          sync.RWMutex
	generation  uint64
	userID      string
	date        string
	rec         *progress.DailyProgress
	startWeight *float64
}

func New(api API, opts ...Option) *Store {
	s := &Store{api: api, now: time.Now, denominator: progress.DefaultDenominator}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the record for userID on date (today when empty). It never
// fails: errors and missing records fall back to the default record. The
// result is the view at the current time, so a weight from before today's
// morning is hidden until noon. A response that arrives after a newer Load
// or a successful update is returned to its caller but not installed.
func (s *Store) Load(ctx context.Context, userID, date string) *progress.DailyProgress {
	now := s.now()
	if date == "" {
		date = progress.DateOf(now)
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	rec, err := s.api.GetToday(ctx, userID, date)
	if err != nil || rec == nil {
		if err != nil {
			log.Printf("Tracker: failed to load progress for %s on %s: %v", userID, date, err)
		}
		rec = progress.Default(userID, date, now)
	}
	if rec.CompletedTasks == nil {
		rec.CompletedTasks = []string{}
	}

	start, err := s.api.GetStartWeight(ctx, userID)
	if err != nil {
		log.Printf("Tracker: failed to load start weight for %s: %v", userID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return rec.ViewAt(now)
	}
	s.userID, s.date, s.rec = userID, date, rec
	if err == nil {
		s.startWeight = start
	}
	return rec.ViewAt(now)
}

// Current returns the view of the installed record, or nil before Load.
func (s *Store) Current() *progress.DailyProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil {
		return nil
	}
	return s.rec.ViewAt(s.now())
}

// Update sends a partial patch and installs the server's record. It returns
// nil and leaves the state unchanged when the write fails. The first weight
// ever entered is also saved as the start weight, before the patch is sent.
func (s *Store) Update(ctx context.Context, patch progress.Update) *progress.DailyProgress {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.update(ctx, patch)
}

func (s *Store) update(ctx context.Context, patch progress.Update) *progress.DailyProgress {
	s.mu.RLock()
	userID, date, loaded, start := s.userID, s.date, s.rec != nil, s.startWeight
	s.mu.RUnlock()
	if !loaded {
		log.Printf("Tracker: update before load ignored")
		return nil
	}
	patch.UserID = userID
	patch.Date = date

	if patch.Weight.Set && patch.Weight.Value != nil && start == nil {
		kg, err := s.api.SaveStartWeight(ctx, userID, *patch.Weight.Value)
		if err != nil {
			log.Printf("Tracker: failed to save start weight for %s: %v", userID, err)
		} else {
			s.mu.Lock()
			s.startWeight = &kg
			s.mu.Unlock()
		}
	}

	rec, err := s.api.UpdateProgress(ctx, patch)
	if err != nil {
		log.Printf("Tracker: failed to update progress for %s on %s: %v", userID, date, err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID != userID || s.date != date {
		return rec.ViewAt(s.now())
	}
	s.generation++
	s.rec = rec
	return rec.ViewAt(s.now())
}

func (s *Store) snapshot() (*progress.DailyProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil {
		return nil, ErrNotLoaded
	}
	return s.rec.Clone(), nil
}

// ToggleTask flips taskID in the completed set and sends the full set.
func (s *Store) ToggleTask(ctx context.Context, taskID string) *progress.DailyProgress {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	rec, err := s.snapshot()
	if err != nil {
		return nil
	}
	next := progress.Toggle(rec.CompletedTasks, taskID)
	return s.update(ctx, progress.Update{CompletedTasks: &next})
}

// ProgressPercentage is round(min(100, 100*completed/denominator)).
func (s *Store) ProgressPercentage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec == nil {
		return 0
	}
	return progress.Percentage(len(s.rec.CompletedTasks), s.denominator)
}

// AdjustWater adds delta liters to today's intake, never going below zero.
func (s *Store) AdjustWater(ctx context.Context, delta float64) *progress.DailyProgress {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	rec, err := s.snapshot()
	if err != nil {
		return nil
	}
	water := math.Max(0, math.Round((rec.WaterIntake+delta)*100)/100)
	return s.update(ctx, progress.Update{WaterIntake: &water})
}

// RecordWeight stores today's weight and ticks the weigh-in task.
func (s *Store) RecordWeight(ctx context.Context, kg float64) (*progress.DailyProgress, error) {
	if kg <= 0 {
		return nil, ErrInvalidWeight
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	rec, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	patch := progress.Update{Weight: progress.WeightOf(kg)}
	if !rec.HasTask(string(schedule.Weigh)) {
		tasks := append(rec.CompletedTasks, string(schedule.Weigh))
		patch.CompletedTasks = &tasks
	}
	out := s.update(ctx, patch)
	if out == nil {
		return nil, fmt.Errorf("failed to record weight")
	}
	return out, nil
}

// RecordMeasurements saves the Sunday body measurements. Zero values are
// left unchanged.
func (s *Store) RecordMeasurements(ctx context.Context, chest, waist, hips float64) *progress.DailyProgress {
	var patch progress.Update
	if chest > 0 {
		patch.ChestMeasurement = &chest
	}
	if waist > 0 {
		patch.WaistMeasurement = &waist
	}
	if hips > 0 {
		patch.HipsMeasurement = &hips
	}
	if patch.Empty() {
		return s.Current()
	}
	return s.Update(ctx, patch)
}

// LogFood adds a manual food entry to today's calories.
func (s *Store) LogFood(ctx context.Context, calories, grams int) (*progress.DailyProgress, error) {
	if calories <= 0 || grams <= 0 {
		return nil, ErrInvalidFoodEntry
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	rec, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	total := rec.CaloriesConsumed + calories
	out := s.update(ctx, progress.Update{CaloriesConsumed: &total})
	if out == nil {
		return nil, fmt.Errorf("failed to log food")
	}
	return out, nil
}

func (s *Store) StartWeight() *float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.startWeight == nil {
		return nil
	}
	kg := *s.startWeight
	return &kg
}

// WeightDelta is the visible weight minus the start weight.
func (s *Store) WeightDelta() (float64, bool) {
	view := s.Current()
	start := s.StartWeight()
	if view == nil || view.Weight == nil || start == nil {
		return 0, false
	}
	return math.Round((*view.Weight-*start)*10) / 10, true
}
