package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/pkg/client"
)

func (a *app) insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "insights",
		Aliases: []string{"insight"},
		Short:   "Read and add performance insights",
	}
	cmd.AddCommand(a.insightsListCmd(), a.insightsAddCmd())
	return cmd
}

func (a *app) insightsListCmd() *cobra.Command {
	var player string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List insights, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			if player == "" {
				player = a.userID()
			}
			insights, err := a.api.Insights(commandContext(cmd), player)
			if err != nil {
				return err
			}
			if len(insights) == 0 {
				faint.Fprintln(a.out, "No insights yet")
				return nil
			}
			for _, in := range insights {
				fmt.Fprintf(a.out, "%s  %s %s\n",
					faint.Sprint(in.Date.Local().Format("2006-01-02")),
					padRight("["+string(in.Type)+"]", 13),
					bold.Sprint(in.Title))
				fmt.Fprintf(a.out, "    %s\n", in.Description)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player id (default: you)")
	return cmd
}

func (a *app) insightsAddCmd() *cobra.Command {
	var (
		in   client.NewInsight
		kind string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an insight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			if kind != "" {
				t, err := parseInsightType(kind)
				if err != nil {
					return err
				}
				in.Type = t
			}
			if in.RelatedPlayer == "" {
				in.RelatedPlayer = a.userID()
			}
			created, err := a.api.CreateInsight(commandContext(cmd), in)
			if err != nil {
				return err
			}
			success.Fprintf(a.out, "✓ %s insight added: %s\n", created.Type, created.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "short title")
	cmd.Flags().StringVar(&in.Description, "description", "", "insight text")
	cmd.Flags().StringVar(&kind, "type", "", "Performance, Health or Strategy (default Performance)")
	cmd.Flags().StringVar(&in.RelatedPlayer, "player", "", "player id (default: you)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func parseInsightType(s string) (entity.InsightType, error) {
	for _, t := range []entity.InsightType{entity.InsightPerformance, entity.InsightHealth, entity.InsightStrategy} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid insight type %q, use Performance, Health or Strategy", s)
}
