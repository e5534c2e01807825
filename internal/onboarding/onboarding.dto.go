package onboarding

import "time"

// Answers mirrors the onboarding questionnaire. Numeric answers arrive as
// the strings the form collected.
type Answers struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName,omitempty"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,e164"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	Height          string `json:"height" validate:"required,numeric"`
	Weight          string `json:"weight" validate:"required,numeric"`
	Age             string `json:"age" validate:"required,numeric"`
	LiverProblems   string `json:"liverProblems" validate:"required"`
	Diabetes        string `json:"diabetes" validate:"required"`
	ThyroidProblems string `json:"thyroidProblems" validate:"required"`
	Hypertension    string `json:"hypertension" validate:"required"`
	Formations      string `json:"formations" validate:"required"`
	Goals           string `json:"goals" validate:"required"`
	Source          string `json:"source" validate:"required"`
}

// SaveRequest accepts the answers under either "data" or the older "answers" key.
type SaveRequest struct {
	UserID        string   `json:"user_id" validate:"required"`
	Data          *Answers `json:"data,omitempty" validate:"-"`
	LegacyAnswers *Answers `json:"answers,omitempty" validate:"-"`
}

// Payload returns whichever answers block was sent.
func (r *SaveRequest) Payload() *Answers {
	if r.Data != nil {
		return r.Data
	}
	return r.LegacyAnswers
}

type Submission struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Answers   Answers   `json:"answers"`
	CreatedAt time.Time `json:"created_at"`
}
