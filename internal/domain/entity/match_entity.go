package entity

import "time"

// MatchResult is the outcome of a played match.
type MatchResult string

const (
	ResultWin  MatchResult = "Win"
	ResultLoss MatchResult = "Loss"
	ResultDraw MatchResult = "Draw"
)

// Valid reports whether r is one of the known results.
func (r MatchResult) Valid() bool {
	switch r {
	case ResultWin, ResultLoss, ResultDraw:
		return true
	}
	return false
}

// MatchStats are the per-match numbers a player logs. Their meaning depends on
// the sport (runs/wickets for cricket, goals/assists for football).
type MatchStats struct {
	Points        int `json:"points"`
	Assists       int `json:"assists"`
	MinutesPlayed int `json:"minutesPlayed"`
}

// Match is a played match owned by one player.
type Match struct {
	ID       string      `json:"_id"`
	Date     time.Time   `json:"date"`
	Opponent string      `json:"opponent"`
	Result   MatchResult `json:"result"`
	Score    string      `json:"score"`
	Player   string      `json:"player"`
	Stats    MatchStats  `json:"stats"`
}
