package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Search the academy directory",
	}
	var size int
	search := &cobra.Command{
		Use:   "search <query...>",
		Short: "Find users by name, email or academy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			users, err := a.api.SearchUsers(commandContext(cmd), strings.Join(args, " "), size)
			if err != nil {
				return err
			}
			if len(users) == 0 {
				faint.Fprintln(a.out, "No users found")
				return nil
			}
			for _, u := range users {
				fmt.Fprintf(a.out, "%s  %s %s %s\n",
					faint.Sprint(shortID(u.ID)),
					padRight(u.Name, 20),
					padRight(string(u.Role), 7),
					faint.Sprint(u.Academy))
			}
			return nil
		},
	}
	search.Flags().IntVar(&size, "size", 0, "maximum results (server default when 0)")
	cmd.AddCommand(search)
	return cmd
}
