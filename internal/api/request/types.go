package request

import "time"

// RegisterRequest is the request body for self-registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the request body for changing one's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateUserRequest is the request body for admin user creation.
// Approved defaults to true when omitted, matching the admin flow.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	Approved *bool  `json:"approved,omitempty"`
}

// CreateAnalysisRequest is the request body for publishing an analysis
type CreateAnalysisRequest struct {
	Title            string    `json:"title"`
	MatchInfo        string    `json:"match_info"`
	BetType          string    `json:"bet_type"`
	Confidence       float64   `json:"confidence"`
	DetailedAnalysis string    `json:"detailed_analysis"`
	Odds             string    `json:"odds,omitempty"`
	MatchDate        time.Time `json:"match_date"`
}

// UpdateAnalysisRequest is a partial update; absent fields stay untouched
type UpdateAnalysisRequest struct {
	Title            *string    `json:"title,omitempty"`
	MatchInfo        *string    `json:"match_info,omitempty"`
	BetType          *string    `json:"bet_type,omitempty"`
	Confidence       *float64   `json:"confidence,omitempty"`
	DetailedAnalysis *string    `json:"detailed_analysis,omitempty"`
	Odds             *string    `json:"odds,omitempty"`
	MatchDate        *time.Time `json:"match_date,omitempty"`
	Outcome          *string    `json:"outcome,omitempty"`
}

// CreateTipRequest is the request body for publishing a valuable tip
type CreateTipRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Games           string `json:"games"`
	TotalOdds       string `json:"total_odds"`
	StakeSuggestion string `json:"stake_suggestion"`
}

// UpdateTipRequest is a partial update; absent fields stay untouched
type UpdateTipRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	Games           *string `json:"games,omitempty"`
	TotalOdds       *string `json:"total_odds,omitempty"`
	StakeSuggestion *string `json:"stake_suggestion,omitempty"`
}
