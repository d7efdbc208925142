package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/pkg/client"
)

func (a *app) scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"fixtures"},
		Short:   "Manage upcoming fixtures",
	}
	cmd.AddCommand(
		a.scheduleListCmd(),
		a.scheduleAddCmd(),
		a.scheduleCompleteCmd(),
		a.scheduleDeleteCmd(),
	)
	return cmd
}

func (a *app) scheduleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List upcoming fixtures, soonest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			fixtures, err := a.api.Schedules(commandContext(cmd), a.userID())
			if err != nil {
				return err
			}
			if len(fixtures) == 0 {
				faint.Fprintln(a.out, "No upcoming fixtures")
				return nil
			}
			for _, sc := range fixtures {
				fmt.Fprintf(a.out, "%s  %s  %s vs %s\n",
					faint.Sprint(shortID(sc.ID)),
					sc.Date.Local().Format("2006-01-02 15:04"),
					padRight(string(sc.Type), 10),
					sc.Opponent)
			}
			return nil
		},
	}
}

func (a *app) scheduleAddCmd() *cobra.Command {
	var (
		s          client.NewSchedule
		date, kind string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an upcoming fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			t, err := parseDate(date)
			if err != nil {
				return err
			}
			s.Date = t
			if kind != "" {
				ft, err := parseFixtureType(kind)
				if err != nil {
					return err
				}
				s.Type = ft
			}
			s.Player = a.userID()
			sc, err := a.api.CreateSchedule(commandContext(cmd), s)
			if err != nil {
				return err
			}
			success.Fprintf(a.out, "✓ %s vs %s on %s\n", sc.Type, sc.Opponent, sc.Date.Local().Format("2006-01-02 15:04"))
			faint.Fprintf(a.out, "  id: %s\n", sc.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&s.Opponent, "opponent", "", "opponent name")
	cmd.Flags().StringVar(&date, "date", "", "kick-off, YYYY-MM-DD or YYYY-MM-DDTHH:MM")
	cmd.Flags().StringVar(&kind, "type", "", "Friendly, League or Tournament (default Friendly)")
	_ = cmd.MarkFlagRequired("opponent")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func (a *app) scheduleCompleteCmd() *cobra.Command {
	var (
		result, score         string
		points, assists, mins int
	)
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Record a fixture's result and remove it from the schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			ctx := commandContext(cmd)
			r, err := parseResult(result)
			if err != nil {
				return err
			}
			sc, err := a.findSchedule(ctx, args[0])
			if err != nil {
				return err
			}
			var stats *entity.MatchStats
			if cmd.Flags().Changed("points") || cmd.Flags().Changed("assists") || cmd.Flags().Changed("minutes") {
				stats = &entity.MatchStats{Points: points, Assists: assists, MinutesPlayed: mins}
			}
			m, err := a.api.CompleteFixture(ctx, sc, r, score, stats)
			if m != nil {
				success.Fprintf(a.out, "✓ Recorded %s %s vs %s\n", m.Result, m.Score, m.Opponent)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&result, "result", "", "Win, Loss or Draw")
	cmd.Flags().StringVar(&score, "score", "", "final score, e.g. 2-1")
	cmd.Flags().IntVar(&points, "points", 0, "points scored")
	cmd.Flags().IntVar(&assists, "assists", 0, "assists")
	cmd.Flags().IntVar(&mins, "minutes", client.DefaultFixtureStats.MinutesPlayed, "minutes played")
	_ = cmd.MarkFlagRequired("result")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}

func (a *app) scheduleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a fixture",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			ctx := commandContext(cmd)
			id := args[0]
			if sc, err := a.findSchedule(ctx, id); err == nil {
				id = sc.ID
			}
			if err := a.api.DeleteSchedule(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Schedule removed")
			return nil
		},
	}
}

// findSchedule resolves a full id or a unique id prefix among the user's
// fixtures.
func (a *app) findSchedule(ctx context.Context, id string) (entity.Schedule, error) {
	fixtures, err := a.api.Schedules(ctx, a.userID())
	if err != nil {
		return entity.Schedule{}, err
	}
	var found []entity.Schedule
	for _, sc := range fixtures {
		if sc.ID == id {
			return sc, nil
		}
		if strings.HasPrefix(sc.ID, id) {
			found = append(found, sc)
		}
	}
	switch len(found) {
	case 0:
		return entity.Schedule{}, fmt.Errorf("no fixture matches %q", id)
	case 1:
		return found[0], nil
	default:
		return entity.Schedule{}, fmt.Errorf("%q matches %d fixtures, use more of the id", id, len(found))
	}
}

func parseFixtureType(s string) (entity.FixtureType, error) {
	for _, t := range []entity.FixtureType{entity.FixtureFriendly, entity.FixtureLeague, entity.FixtureTournament} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid fixture type %q, use Friendly, League or Tournament", s)
}
