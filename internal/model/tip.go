package model

import "time"

// TipID uniquely identifies a valuable tip
type TipID string

// ValuableTip is an admin-curated accumulator suggestion,
// published alongside analyses
type ValuableTip struct {
	ID              TipID
	Title           string
	Description     string
	Games           string
	TotalOdds       string
	StakeSuggestion string
	CreatedAt       time.Time
}
