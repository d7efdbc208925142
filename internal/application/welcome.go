package application

import (
	"time"

	"github.com/accadex/accadex/internal/domain/entity"
)

const day = 24 * time.Hour

// welcomeMatches is the starter match history every new account receives.
func welcomeMatches(playerID string, now time.Time) []*entity.Match {
	return []*entity.Match{
		{
			Opponent: "Placement Match AI",
			Result:   entity.ResultWin,
			Score:    "185/4 - 150/9",
			Player:   playerID,
			Stats:    entity.MatchStats{Points: 65, Assists: 0, MinutesPlayed: 20},
			Date:     now,
		},
		{
			Opponent: "Training Squad",
			Result:   entity.ResultDraw,
			Score:    "220/8 - 220/10",
			Player:   playerID,
			Stats:    entity.MatchStats{Points: 45, Assists: 2, MinutesPlayed: 20},
			Date:     now.Add(-3 * day),
		},
		{
			Opponent: "Academy Reserves",
			Result:   entity.ResultLoss,
			Score:    "135/10 - 138/2",
			Player:   playerID,
			Stats:    entity.MatchStats{Points: 12, Assists: 1, MinutesPlayed: 15},
			Date:     now.Add(-7 * day),
		},
	}
}

func welcomeInsights(playerID string, now time.Time) []*entity.Insight {
	return []*entity.Insight{
		{
			Title:         "Welcome to Accadex",
			Description:   "This is your AI-powered performance feed. Upload match clips to get personalized coaching.",
			Type:          entity.InsightStrategy,
			RelatedPlayer: playerID,
			Date:          now,
		},
		{
			Title:         "Initial Assessment",
			Description:   "Based on your initial nets session, we recommend focusing on your front-foot defense.",
			Type:          entity.InsightPerformance,
			RelatedPlayer: playerID,
			Date:          now,
		},
	}
}

// DemoMatches is the richer history used by the seed command.
func DemoMatches(playerID string, now time.Time) []*entity.Match {
	return []*entity.Match{
		{Opponent: "City Rivals FC", Result: entity.ResultWin, Score: "3-1", Player: playerID, Stats: entity.MatchStats{Points: 15, Assists: 5, MinutesPlayed: 90}, Date: now.Add(-2 * day)},
		{Opponent: "North Side Academy", Result: entity.ResultDraw, Score: "2-2", Player: playerID, Stats: entity.MatchStats{Points: 10, Assists: 2, MinutesPlayed: 85}, Date: now.Add(-5 * day)},
		{Opponent: "West End Warriors", Result: entity.ResultLoss, Score: "0-1", Player: playerID, Stats: entity.MatchStats{Points: 5, Assists: 1, MinutesPlayed: 90}, Date: now.Add(-10 * day)},
		{Opponent: "Elite Strikers", Result: entity.ResultWin, Score: "4-2", Player: playerID, Stats: entity.MatchStats{Points: 20, Assists: 3, MinutesPlayed: 88}, Date: now.Add(-14 * day)},
		{Opponent: "National Youth Club", Result: entity.ResultWin, Score: "2-0", Player: playerID, Stats: entity.MatchStats{Points: 12, Assists: 4, MinutesPlayed: 90}, Date: now.Add(-20 * day)},
		{Opponent: "Valley High", Result: entity.ResultLoss, Score: "1-3", Player: playerID, Stats: entity.MatchStats{Points: 8, Assists: 1, MinutesPlayed: 75}, Date: now.Add(-25 * day)},
	}
}

func DemoInsights(playerID string, now time.Time) []*entity.Insight {
	return []*entity.Insight{
		{Title: "Improving Serve Consistency", Description: "Your first serve percentage has dropped by 10% in the last 2 matches. Focus on toss height.", Type: entity.InsightPerformance, RelatedPlayer: playerID, Date: now},
		{Title: "Recovery Needed", Description: "High intensity workload detected. Recommend light stretching and hydration.", Type: entity.InsightHealth, RelatedPlayer: playerID, Date: now},
		{Title: "Opponent Analysis: City Rivals", Description: "They tend to attack the left flank. Strengthen defensive positioning on that side.", Type: entity.InsightStrategy, RelatedPlayer: playerID, Date: now.Add(-1 * day)},
		{Title: "Stamina Alert", Description: "Your sprint speed dropped significantly after the 70th minute in the last game.", Type: entity.InsightPerformance, RelatedPlayer: playerID, Date: now.Add(-3 * day)},
	}
}
