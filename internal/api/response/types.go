package response

import (
	"time"

	"github.com/nucleobets/backend/internal/model"
)

// User represents an account in API responses.
// The password hash is never serialized.
type User struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email,omitempty"`
	Role            string     `json:"role"`
	IsActive        bool       `json:"is_active"`
	ApprovedByAdmin bool       `json:"approved_by_admin"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:              string(u.ID),
		Username:        u.Username,
		Email:           u.Email,
		Role:            string(u.Role),
		IsActive:        u.IsActive,
		ApprovedByAdmin: u.ApprovedByAdmin,
		CreatedAt:       u.CreatedAt,
		ExpiresAt:       u.ExpiresAt,
	}
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// NewLoginResponse creates a LoginResponse for a bearer token
func NewLoginResponse(token string, u *model.User) LoginResponse {
	return LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        UserFromModel(u),
	}
}

// Message is a plain informational response
type Message struct {
	Message string `json:"message"`
}

// Analysis represents an analysis in API responses
type Analysis struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	MatchInfo        string    `json:"match_info"`
	BetType          string    `json:"bet_type"`
	Confidence       float64   `json:"confidence"`
	DetailedAnalysis string    `json:"detailed_analysis"`
	Odds             string    `json:"odds,omitempty"`
	MatchDate        time.Time `json:"match_date"`
	CreatedAt        time.Time `json:"created_at"`
	Outcome          string    `json:"outcome"`
}

// AnalysisFromModel converts a model.Analysis to a response Analysis
func AnalysisFromModel(a *model.Analysis) Analysis {
	return Analysis{
		ID:               string(a.ID),
		Title:            a.Title,
		MatchInfo:        a.MatchInfo,
		BetType:          string(a.BetType),
		Confidence:       a.Confidence,
		DetailedAnalysis: a.DetailedAnalysis,
		Odds:             a.Odds,
		MatchDate:        a.MatchDate,
		CreatedAt:        a.CreatedAt,
		Outcome:          string(a.Outcome),
	}
}

// AnalysesFromModel converts a slice of analyses
func AnalysesFromModel(analyses []*model.Analysis) []Analysis {
	out := make([]Analysis, len(analyses))
	for i, a := range analyses {
		out[i] = AnalysisFromModel(a)
	}
	return out
}

// Tip represents a valuable tip in API responses
type Tip struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Games           string    `json:"games"`
	TotalOdds       string    `json:"total_odds"`
	StakeSuggestion string    `json:"stake_suggestion"`
	CreatedAt       time.Time `json:"created_at"`
}

// TipFromModel converts a model.ValuableTip to a response Tip
func TipFromModel(t *model.ValuableTip) Tip {
	return Tip{
		ID:              string(t.ID),
		Title:           t.Title,
		Description:     t.Description,
		Games:           t.Games,
		TotalOdds:       t.TotalOdds,
		StakeSuggestion: t.StakeSuggestion,
		CreatedAt:       t.CreatedAt,
	}
}

// TipsFromModel converts a slice of tips
func TipsFromModel(tips []*model.ValuableTip) []Tip {
	out := make([]Tip, len(tips))
	for i, t := range tips {
		out[i] = TipFromModel(t)
	}
	return out
}

// Stats is the aggregate statistics response
type Stats struct {
	Total    int     `json:"total_analyses"`
	Won      int     `json:"won"`
	Lost     int     `json:"lost"`
	Pending  int     `json:"pending"`
	Accuracy float64 `json:"accuracy"`
}

// StatsFromModel converts model.Stats
func StatsFromModel(s *model.Stats) Stats {
	return Stats{
		Total:    s.Total,
		Won:      s.Won,
		Lost:     s.Lost,
		Pending:  s.Pending,
		Accuracy: s.Accuracy,
	}
}

// UsersFromModel converts a slice of users
func UsersFromModel(users []*model.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = UserFromModel(u)
	}
	return out
}
