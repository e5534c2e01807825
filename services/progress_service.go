package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/schedule"
	"misterMoAPI/internal/stats"
	"misterMoAPI/internal/storage"
)

var ErrUnknownTask = errors.New("unknown task id")

type ProgressService struct {
	store storage.Store
	now   func() time.Time
}

func NewProgressService(store storage.Store) *ProgressService {
	return &ProgressService{store: store, now: time.Now}
}

// GetToday returns the record for date, creating the default one on first
// access. An empty date means the server's current UTC day.
func (s *ProgressService) GetToday(ctx context.Context, userID, date string) (*progress.DailyProgress, error) {
	if date == "" {
		date = progress.DateOf(s.now().UTC())
	}
	if _, err := time.Parse(progress.DateLayout, date); err != nil {
		return nil, &ValidationError{Fields: []string{"date"}}
	}

	rec, err := s.store.GetProgress(ctx, userID, date)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	rec = progress.Default(userID, date, s.now())
	if err := s.store.SaveProgress(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}
	return rec, nil
}

// Update merges a partial update into the day's record. Completed task ids
// must belong to the schedule registry.
func (s *ProgressService) Update(ctx context.Context, upd *progress.Update) (*progress.DailyProgress, error) {
	if err := validateStruct(upd); err != nil {
		return nil, err
	}
	if w := upd.Weight.Value; w != nil && (*w <= 0 || *w >= 500) {
		return nil, &ValidationError{Fields: []string{"weight"}}
	}
	if upd.CompletedTasks != nil {
		for _, id := range *upd.CompletedTasks {
			if !schedule.Registered(id) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownTask, id)
			}
		}
	}

	rec, err := s.GetToday(ctx, upd.UserID, upd.Date)
	if err != nil {
		return nil, err
	}
	if upd.Empty() {
		return rec, nil
	}

	upd.Apply(rec, s.now())
	if err := s.store.SaveProgress(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}
	return rec, nil
}

// Week summarizes the Monday-to-Sunday week containing date, counting up to
// date itself. Reading a week never creates records.
func (s *ProgressService) Week(ctx context.Context, userID, date string) (*stats.WeekSummary, error) {
	if date == "" {
		date = progress.DateOf(s.now().UTC())
	}
	start, end, err := stats.WeekBounds(date)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"date"}}
	}

	records, err := s.store.ListProgress(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list week progress: %w", err)
	}
	return stats.Summarize(records, date, progress.DefaultDenominator)
}
