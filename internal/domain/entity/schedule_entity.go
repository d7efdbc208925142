package entity

import "time"

// FixtureType classifies an upcoming fixture.
type FixtureType string

const (
	FixtureFriendly   FixtureType = "Friendly"
	FixtureLeague     FixtureType = "League"
	FixtureTournament FixtureType = "Tournament"
)

// FixtureStatus tracks a fixture. Completed fixtures are normally removed and
// replaced by a Match rather than flipped to StatusCompleted.
type FixtureStatus string

const (
	StatusScheduled FixtureStatus = "Scheduled"
	StatusCompleted FixtureStatus = "Completed"
	StatusCancelled FixtureStatus = "Cancelled"
)

// Schedule is an upcoming fixture for one player.
type Schedule struct {
	ID        string        `json:"_id"`
	Player    string        `json:"player"`
	Date      time.Time     `json:"date"`
	Opponent  string        `json:"opponent"`
	Type      FixtureType   `json:"type"`
	Status    FixtureStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
