package client_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misterMoAPI/internal/client"
	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/testutil/apitest"
	"misterMoAPI/internal/tier"
	"misterMoAPI/internal/user"
)

func login(t *testing.T, srv *apitest.Server, telegramID int64) (*client.Client, *user.User) {
	t.Helper()

	c := client.New(srv.URL)
	resp, err := c.AuthTelegram(context.Background(), apitest.InitData(t, telegramID))
	require.NoError(t, err)
	require.NotEmpty(t, c.Token())
	return c, resp.User
}

func apiError(t *testing.T, err error) *client.APIError {
	t.Helper()
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	return apiErr
}

func TestHealth(t *testing.T) {
	srv := apitest.NewServer(t)
	assert.NoError(t, client.New(srv.URL).Health(context.Background()))
}

func TestAuthRejectsForgedInitData(t *testing.T) {
	srv := apitest.NewServer(t)
	c := client.New(srv.URL)

	_, err := c.AuthTelegram(context.Background(), "user=%7B%22id%22%3A1%7D&hash=00")
	assert.Equal(t, http.StatusUnauthorized, apiError(t, err).Status)
	assert.Empty(t, c.Token())
}

func TestRequestsWithoutTokenAreUnauthorized(t *testing.T) {
	srv := apitest.NewServer(t)
	_, err := client.New(srv.URL).GetToday(context.Background(), "user_1", "")
	assert.Equal(t, http.StatusUnauthorized, apiError(t, err).Status)
}

func TestProgressRoundTrip(t *testing.T) {
	srv := apitest.NewServer(t)
	c, u := login(t, srv, 7)
	ctx := context.Background()

	rec, err := c.GetToday(ctx, u.ID, "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", rec.Date)
	assert.Equal(t, 1050, rec.CaloriesTarget)
	assert.Nil(t, rec.Weight)

	updated, err := c.UpdateProgress(ctx, progress.Update{
		UserID:         u.ID,
		Date:           "2026-10-16",
		Weight:         progress.WeightOf(71.4),
		CompletedTasks: &[]string{"wake-up", "weigh"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Weight)
	assert.Equal(t, 71.4, *updated.Weight)
	assert.ElementsMatch(t, []string{"wake-up", "weigh"}, updated.CompletedTasks)

	cleared, err := c.UpdateProgress(ctx, progress.Update{UserID: u.ID, Date: "2026-10-16", Weight: progress.ClearWeight()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Weight)
	assert.Len(t, cleared.CompletedTasks, 2)
}

func TestWeekSummary(t *testing.T) {
	srv := apitest.NewServer(t)
	c, u := login(t, srv, 9)
	ctx := context.Background()

	_, err := c.UpdateProgress(ctx, progress.Update{UserID: u.ID, Date: "2026-10-14", Weight: progress.WeightOf(80)})
	require.NoError(t, err)
	_, err = c.UpdateProgress(ctx, progress.Update{UserID: u.ID, Date: "2026-10-16", Weight: progress.WeightOf(79.2)})
	require.NoError(t, err)

	week, err := c.GetWeek(ctx, u.ID, "2026-10-17")
	require.NoError(t, err)
	assert.Equal(t, 2, week.DaysTracked)
	require.NotNil(t, week.WeightChange)
	assert.Equal(t, -0.8, *week.WeightChange)
}

func TestUpdateProgressErrors(t *testing.T) {
	srv := apitest.NewServer(t)
	c, u := login(t, srv, 8)
	ctx := context.Background()

	_, err := c.UpdateProgress(ctx, progress.Update{UserID: u.ID, CompletedTasks: &[]string{"no-such-task"}})
	assert.Equal(t, http.StatusBadRequest, apiError(t, err).Status)

	_, err = c.UpdateProgress(ctx, progress.Update{UserID: u.ID, Steps: progress.Ptr(-1)})
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "steps")

	_, err = c.UpdateProgress(ctx, progress.Update{UserID: "user_9", Steps: progress.Ptr(1)})
	assert.Equal(t, http.StatusForbidden, apiError(t, err).Status)
}

func TestStartWeightFirstWriteWins(t *testing.T) {
	srv := apitest.NewServer(t)
	c, u := login(t, srv, 10)
	ctx := context.Background()

	start, err := c.GetStartWeight(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, start)

	kg, err := c.SaveStartWeight(ctx, u.ID, 80)
	require.NoError(t, err)
	assert.Equal(t, 80.0, kg)

	kg, err = c.SaveStartWeight(ctx, u.ID, 75)
	require.NoError(t, err)
	assert.Equal(t, 80.0, kg)

	start, err = c.GetStartWeight(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, start)
	assert.Equal(t, 80.0, *start)
}

func TestStateAndOnboarding(t *testing.T) {
	srv := apitest.NewServer(t)
	c, u := login(t, srv, 11)
	ctx := context.Background()

	state, err := c.GetState(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, state.OnboardingDone)

	err = c.SaveOnboarding(ctx, u.ID, onboarding.Answers{FirstName: "Anna"})
	assert.Equal(t, http.StatusUnprocessableEntity, apiError(t, err).Status)

	require.NoError(t, c.SaveOnboarding(ctx, u.ID, validAnswers()))
	assert.Len(t, srv.Store.Submissions(u.ID), 1)

	done := true
	advanced := tier.Advanced
	require.NoError(t, c.UpdateState(ctx, user.UpdateStateRequest{UserID: u.ID, OnboardingDone: &done, SubscriptionTier: &advanced}))

	state, err = c.GetState(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, state.OnboardingDone)
	require.NotNil(t, state.SubscriptionTier)
	assert.Equal(t, tier.Advanced, *state.SubscriptionTier)
}

func TestScheduleReflectsCompletedTasks(t *testing.T) {
	srv := apitest.NewServer(t)
	c, u := login(t, srv, 12)
	ctx := context.Background()

	// 2026-10-12 is a Monday.
	_, err := c.UpdateProgress(ctx, progress.Update{UserID: u.ID, Date: "2026-10-12", CompletedTasks: &[]string{"reflection", "motivation"}})
	require.NoError(t, err)

	fasting, err := c.Schedule(ctx, u.ID, "2026-10-12", true)
	require.NoError(t, err)
	assert.True(t, fasting.Fasting)
	assert.Equal(t, 1, fasting.Done)

	regular, err := c.Schedule(ctx, u.ID, "2026-10-12", false)
	require.NoError(t, err)
	assert.False(t, regular.Fasting)
	assert.Equal(t, 1, regular.Done)
	assert.Greater(t, regular.Total, fasting.Total)
}

func TestSupplement(t *testing.T) {
	srv := apitest.NewServer(t)
	c := client.New(srv.URL)

	info, err := c.Supplement(context.Background(), "zma")
	require.NoError(t, err)
	assert.Equal(t, "zma", info.Key)

	_, err = c.Supplement(context.Background(), "unknown")
	assert.Equal(t, http.StatusNotFound, apiError(t, err).Status)
}

func TestContentGate(t *testing.T) {
	srv := apitest.NewServer(t)
	c, _ := login(t, srv, 13)
	ctx := context.Background()

	page, err := c.BookPage(ctx, "3", 2)
	require.NoError(t, err)
	assert.True(t, page.Preview)

	_, err = c.BookPage(ctx, "3", 3)
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "premium", apiErr.RequiredTier)

	videos, err := c.Videos(ctx)
	require.NoError(t, err)
	for _, v := range videos {
		assert.Equal(t, v.Locked, v.YouTubeID == "", "video %s", v.ID)
	}

	books, err := c.Books(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 3)

	downloads, err := c.Downloads(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, downloads)

	panels, err := c.Panels(ctx)
	require.NoError(t, err)
	assert.Equal(t, tier.Basic, panels.SubscriptionTier)
}

func validAnswers() onboarding.Answers {
	return onboarding.Answers{
		FirstName:       "Anna",
		Height:          "170",
		Weight:          "82",
		Age:             "34",
		LiverProblems:   "no",
		Diabetes:        "no",
		ThyroidProblems: "no",
		Hypertension:    "no",
		Formations:      "no",
		Goals:           "lose weight",
		Source:          "telegram",
	}
}
