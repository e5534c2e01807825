package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/storage"
)

// RowAppender receives one row per onboarding submission.
type RowAppender interface {
	AppendRow(ctx context.Context, values []any) error
}

type OnboardingService struct {
	store storage.Store
	sheet RowAppender
	now   func() time.Time
}

// NewOnboardingService builds the service; sheet may be nil.
func NewOnboardingService(store storage.Store, sheet RowAppender) *OnboardingService {
	return &OnboardingService{store: store, sheet: sheet, now: time.Now}
}

// Save validates and stores the questionnaire. A failing sheet append is
// logged and ignored.
func (s *OnboardingService) Save(ctx context.Context, req *onboarding.SaveRequest) (*onboarding.Submission, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	answers := req.Payload()
	if answers == nil {
		return nil, &ValidationError{Fields: []string{"data"}}
	}
	if err := validateStruct(answers); err != nil {
		return nil, err
	}

	sub := &onboarding.Submission{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Answers:   *answers,
		CreatedAt: s.now().UTC(),
	}

	if s.sheet != nil {
		if err := s.appendToSheet(ctx, sub); err != nil {
			log.Printf("OnboardingService: sheet append failed for %s: %v", sub.UserID, err)
		}
	}

	if err := s.store.SaveOnboarding(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save onboarding: %w", err)
	}

	log.Printf("OnboardingService: saved submission %s for %s", sub.ID, sub.UserID)
	return sub, nil
}

func (s *OnboardingService) appendToSheet(ctx context.Context, sub *onboarding.Submission) error {
	payload, err := json.Marshal(sub.Answers)
	if err != nil {
		return err
	}
	return s.sheet.AppendRow(ctx, []any{sub.CreatedAt.Format(time.RFC3339), sub.UserID, string(payload)})
}
