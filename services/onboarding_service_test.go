package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/storage"
)

type fakeSheet struct {
	rows [][]any
	err  error
}

func (f *fakeSheet) AppendRow(ctx context.Context, values []any) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, values)
	return nil
}

func validAnswers() *onboarding.Answers {
	return &onboarding.Answers{
		FirstName:       "Anna",
		Height:          "170",
		Weight:          "82",
		Age:             "36",
		LiverProblems:   "no",
		Diabetes:        "no",
		ThyroidProblems: "no",
		Hypertension:    "no",
		Formations:      "no",
		Goals:           "lose weight",
		Source:          "telegram",
	}
}

func TestOnboardingSaveStoresAndAppends(t *testing.T) {
	store := storage.NewMemoryStore()
	sheet := &fakeSheet{}
	svc := NewOnboardingService(store, sheet)

	sub, err := svc.Save(context.Background(), &onboarding.SaveRequest{UserID: "user_1", Data: validAnswers()})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)

	require.Len(t, sheet.rows, 1)
	assert.Equal(t, "user_1", sheet.rows[0][1])
	assert.Contains(t, sheet.rows[0][2], `"firstName":"Anna"`)
	assert.Len(t, store.Submissions("user_1"), 1)
}

func TestOnboardingAcceptsLegacyAnswersKey(t *testing.T) {
	svc := NewOnboardingService(storage.NewMemoryStore(), nil)
	_, err := svc.Save(context.Background(), &onboarding.SaveRequest{UserID: "user_1", LegacyAnswers: validAnswers()})
	assert.NoError(t, err)
}

func TestOnboardingSheetFailureIsIgnored(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewOnboardingService(store, &fakeSheet{err: errors.New("quota exceeded")})

	_, err := svc.Save(context.Background(), &onboarding.SaveRequest{UserID: "user_1", Data: validAnswers()})
	require.NoError(t, err)
	assert.Len(t, store.Submissions("user_1"), 1)
}

func TestOnboardingValidation(t *testing.T) {
	svc := NewOnboardingService(storage.NewMemoryStore(), nil)
	ctx := context.Background()
	var verr *ValidationError

	_, err := svc.Save(ctx, &onboarding.SaveRequest{UserID: "user_1"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"data"}, verr.Fields)

	answers := validAnswers()
	answers.FirstName = ""
	answers.Height = "tall"
	answers.Email = "nope"
	_, err = svc.Save(ctx, &onboarding.SaveRequest{UserID: "user_1", Data: answers})
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"firstName", "height", "email"}, verr.Fields)
}
