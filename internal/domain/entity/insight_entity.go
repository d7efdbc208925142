package entity

import "time"

// InsightType groups insights in the feed.
type InsightType string

const (
	InsightPerformance InsightType = "Performance"
	InsightHealth      InsightType = "Health"
	InsightStrategy    InsightType = "Strategy"
)

// Insight is a short note attached to a player.
type Insight struct {
	ID            string      `json:"_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Type          InsightType `json:"type"`
	Date          time.Time   `json:"date"`
	RelatedPlayer string      `json:"relatedPlayer,omitempty"`
}
