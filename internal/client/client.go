package client

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"misterMoAPI/internal/content"
	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/schedule"
	"misterMoAPI/internal/stats"
	"misterMoAPI/internal/user"
)

// APIError is a non-2xx reply from the API.
type APIError struct {
	Status       int      `json:"-"`
	Message      string   `json:"error"`
	Fields       []string `json:"fields,omitempty"`
	RequiredTier string   `json:"required_tier,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Client talks to the MisterMo REST API.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// SetToken sets the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx).SetError(&APIError{})
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		apiErr, ok := resp.Error().(*APIError)
		if !ok || apiErr == nil {
			apiErr = &APIError{}
		}
		apiErr.Status = resp.StatusCode()
		return apiErr
	}
	return nil
}

func (c *Client) Health(ctx context.Context) error {
	return check(c.request(ctx).Get("/api/health"))
}

// AuthTelegram exchanges init data for a user and stores the returned token.
func (c *Client) AuthTelegram(ctx context.Context, initData string) (*user.AuthResponse, error) {
	var out user.AuthResponse
	err := check(c.request(ctx).
		SetBody(user.TelegramAuthRequest{InitData: initData}).
		SetResult(&out).
		Post("/api/auth/telegram"))
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) GetState(ctx context.Context, userID string) (*user.State, error) {
	var out user.State
	err := check(c.request(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&out).
		Get("/api/user/state"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateState(ctx context.Context, req user.UpdateStateRequest) error {
	return check(c.request(ctx).SetBody(req).Post("/api/user/state"))
}

func (c *Client) GetToday(ctx context.Context, userID, date string) (*progress.DailyProgress, error) {
	var out progress.DailyProgress
	req := c.request(ctx).SetQueryParam("user_id", userID).SetResult(&out)
	if date != "" {
		req.SetQueryParam("date", date)
	}
	if err := check(req.Get("/api/progress/today")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWeek(ctx context.Context, userID, date string) (*stats.WeekSummary, error) {
	var out stats.WeekSummary
	req := c.request(ctx).SetQueryParam("user_id", userID).SetResult(&out)
	if date != "" {
		req.SetQueryParam("date", date)
	}
	if err := check(req.Get("/api/progress/week")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProgress(ctx context.Context, upd progress.Update) (*progress.DailyProgress, error) {
	var out progress.DailyProgress
	err := check(c.request(ctx).SetBody(upd).SetResult(&out).Post("/api/progress/update"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetStartWeight(ctx context.Context, userID string) (*float64, error) {
	var out user.StartWeightResponse
	err := check(c.request(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&out).
		Get("/api/user/start-weight"))
	if err != nil {
		return nil, err
	}
	return out.StartWeight, nil
}

func (c *Client) SaveStartWeight(ctx context.Context, userID string, kg float64) (float64, error) {
	var out user.StartWeightResponse
	err := check(c.request(ctx).
		SetBody(user.SaveStartWeightRequest{UserID: userID, StartWeight: kg}).
		SetResult(&out).
		Post("/api/user/start-weight"))
	if err != nil {
		return 0, err
	}
	if out.StartWeight == nil {
		return kg, nil
	}
	return *out.StartWeight, nil
}

func (c *Client) SaveOnboarding(ctx context.Context, userID string, answers onboarding.Answers) error {
	return check(c.request(ctx).
		SetBody(onboarding.SaveRequest{UserID: userID, Data: &answers}).
		Post("/api/onboarding/save"))
}

func (c *Client) Schedule(ctx context.Context, userID, date string, fasting bool) (*schedule.DayStatus, error) {
	var out schedule.DayStatus
	req := c.request(ctx).
		SetQueryParam("user_id", userID).
		SetQueryParam("fasting", strconv.FormatBool(fasting)).
		SetResult(&out)
	if date != "" {
		req.SetQueryParam("date", date)
	}
	if err := check(req.Get("/api/schedule")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Supplement(ctx context.Context, key string) (*schedule.Supplement, error) {
	var out schedule.Supplement
	err := check(c.request(ctx).SetPathParam("key", key).SetResult(&out).Get("/api/supplements/{key}"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Books(ctx context.Context) ([]content.Book, error) {
	var out []content.Book
	if err := check(c.request(ctx).SetResult(&out).Get("/api/content/books")); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BookPage(ctx context.Context, bookID string, page int) (*content.Page, error) {
	var out content.Page
	err := check(c.request(ctx).
		SetPathParams(map[string]string{"id": bookID, "page": strconv.Itoa(page)}).
		SetResult(&out).
		Get("/api/content/books/{id}/pages/{page}"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Videos(ctx context.Context) ([]content.Video, error) {
	var out []content.Video
	if err := check(c.request(ctx).SetResult(&out).Get("/api/content/videos")); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Downloads(ctx context.Context) ([]content.Download, error) {
	var out []content.Download
	if err := check(c.request(ctx).SetResult(&out).Get("/api/content/downloads")); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Panels(ctx context.Context) (*content.PanelsView, error) {
	var out content.PanelsView
	if err := check(c.request(ctx).SetResult(&out).Get("/api/dashboard/panels")); err != nil {
		return nil, err
	}
	return &out, nil
}
