package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/pkg/client"
)

func (a *app) matchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "matches",
		Aliases: []string{"match"},
		Short:   "List and record played matches",
	}
	cmd.AddCommand(a.matchesListCmd(), a.matchesAddCmd())
	return cmd
}

func (a *app) matchesListCmd() *cobra.Command {
	var player string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			if player == "" {
				player = a.userID()
			}
			matches, err := a.api.Matches(commandContext(cmd), player)
			if err != nil {
				return err
			}
			printMatches(a, matches)
			return nil
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player id (default: you)")
	return cmd
}

func (a *app) matchesAddCmd() *cobra.Command {
	var (
		m    client.NewMatch
		date string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a played match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			result, err := parseResult(string(m.Result))
			if err != nil {
				return err
			}
			m.Result = result
			if date != "" {
				t, err := parseDate(date)
				if err != nil {
					return err
				}
				m.Date = &t
			}
			if m.Player == "" {
				m.Player = a.userID()
			}
			created, err := a.api.CreateMatch(commandContext(cmd), m)
			if err != nil {
				return err
			}
			success.Fprintf(a.out, "✓ Recorded %s %s vs %s\n", created.Result, created.Score, created.Opponent)
			faint.Fprintf(a.out, "  id: %s\n", created.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&m.Opponent, "opponent", "", "opponent name")
	f.StringVar((*string)(&m.Result), "result", "", "Win, Loss or Draw")
	f.StringVar(&m.Score, "score", "", "final score, e.g. 2-1")
	f.StringVar(&m.Player, "player", "", "player id (default: you)")
	f.StringVar(&date, "date", "", "match date (default: now)")
	f.IntVar(&m.Stats.Points, "points", 0, "points scored")
	f.IntVar(&m.Stats.Assists, "assists", 0, "assists")
	f.IntVar(&m.Stats.MinutesPlayed, "minutes", 0, "minutes played")
	_ = cmd.MarkFlagRequired("opponent")
	_ = cmd.MarkFlagRequired("result")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}

// parseResult accepts a result in any letter case.
func parseResult(s string) (entity.MatchResult, error) {
	for _, r := range []entity.MatchResult{entity.ResultWin, entity.ResultLoss, entity.ResultDraw} {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid result %q, use Win, Loss or Draw", s)
}

func printMatches(a *app, matches []entity.Match) {
	if len(matches) == 0 {
		faint.Fprintln(a.out, "No matches yet")
		return
	}
	for _, m := range matches {
		res := padRight(string(m.Result), 5)
		switch m.Result {
		case entity.ResultWin:
			res = success.Sprint(res)
		case entity.ResultLoss:
			res = warn.Sprint(res)
		}
		fmt.Fprintf(a.out, "%s  %s %s vs %s", faint.Sprint(m.Date.Local().Format("2006-01-02")), res, padRight(m.Score, 6), m.Opponent)
		faint.Fprintf(a.out, "  %dpts %dast %dmin\n", m.Stats.Points, m.Stats.Assists, m.Stats.MinutesPlayed)
	}
}
