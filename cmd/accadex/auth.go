package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accadex/accadex/pkg/client"
)

func (a *app) registerCmd() *cobra.Command {
	var req client.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Long: `Create an account and sign in. New accounts start with a few welcome
matches and insights so the dashboard is not empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.anonymous().Register(commandContext(cmd), req)
			if err != nil {
				return err
			}
			if err := a.startSession(res); err != nil {
				return err
			}
			success.Fprintf(a.out, "✓ Welcome, %s\n", res.User.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&req.Role, "role", "", "player, coach or admin (default player)")
	cmd.Flags().StringVar(&req.Academy, "academy", "", "academy name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.anonymous().Login(commandContext(cmd), email, password)
			if err != nil {
				return err
			}
			if err := a.startSession(res); err != nil {
				return err
			}
			success.Fprintf(a.out, "✓ Signed in as %s\n", res.User.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session and chat history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.file()
			if err != nil {
				return err
			}
			if err := f.Clear(); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
			fmt.Fprintln(a.out, "Signed out")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			me, err := a.api.Me(commandContext(cmd))
			if err != nil {
				return err
			}
			bold.Fprintln(a.out, me.Name)
			fmt.Fprintf(a.out, "  email    %s\n", me.Email)
			fmt.Fprintf(a.out, "  role     %s\n", me.Role)
			if me.Academy != "" {
				fmt.Fprintf(a.out, "  academy  %s\n", me.Academy)
			}
			faint.Fprintf(a.out, "  id       %s\n", me.ID)
			return nil
		},
	}
}
