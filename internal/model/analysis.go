package model

import "time"

// AnalysisID uniquely identifies a published analysis
type AnalysisID string

// BetType is the market an analysis predicts
type BetType string

const (
	BetHomeWin         BetType = "1"
	BetDraw            BetType = "X"
	BetAwayWin         BetType = "2"
	BetOver            BetType = "over"
	BetUnder           BetType = "under"
	BetDoubleChanceOne BetType = "1x"
	BetDoubleChanceTwo BetType = "2x"
)

// Valid reports whether b is a recognized bet type
func (b BetType) Valid() bool {
	switch b {
	case BetHomeWin, BetDraw, BetAwayWin, BetOver, BetUnder, BetDoubleChanceOne, BetDoubleChanceTwo:
		return true
	}
	return false
}

// Outcome is the settled result of an analysis.
// Every analysis starts pending and is later marked won or lost by an admin.
type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
)

// Valid reports whether o is a recognized outcome
func (o Outcome) Valid() bool {
	switch o {
	case OutcomePending, OutcomeWon, OutcomeLost:
		return true
	}
	return false
}

// Settled reports whether the outcome is terminal
func (o Outcome) Settled() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Analysis is an admin-authored match prediction
type Analysis struct {
	ID               AnalysisID
	Title            string
	MatchInfo        string
	BetType          BetType
	Confidence       float64
	DetailedAnalysis string
	Odds             string // optional, free-text (e.g. "1.85")
	MatchDate        time.Time
	CreatedAt        time.Time
	Outcome          Outcome
}

// Stats aggregates analysis outcomes
type Stats struct {
	Total    int
	Won      int
	Lost     int
	Pending  int
	Accuracy float64 // won/(won+lost)*100, rounded to 2 decimal places
}
