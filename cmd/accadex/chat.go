package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/accadex/accadex/pkg/client"
)

func (a *app) chatCmd() *cobra.Command {
	var (
		persona       string
		reset, listed bool
	)
	cmd := &cobra.Command{
		Use:   "chat [message...]",
		Short: "Talk to a coach persona",
		Long: `Send a message to one of the personas and print the reply. Without a
message, the conversation so far is shown. Conversations are kept in the
session file until logout.

Personas: ai_coach, physician, head_coach, nutritionist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listed {
				printContacts(a)
				return nil
			}
			if !client.KnownPersona(persona) {
				return fmt.Errorf("unknown persona %q, see 'accadex chat --contacts'", persona)
			}
			if err := a.requireSession(); err != nil {
				return err
			}
			board := a.session.Chats
			if reset {
				board.Reset(persona)
				if err := a.save(); err != nil {
					return err
				}
			}
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				printHistory(a, persona, board.History(persona))
				return nil
			}

			reply, sendErr := board.Send(commandContext(cmd), a.api, persona, text)
			if err := a.save(); err != nil {
				return err
			}
			printReply(a, persona, reply)
			if sendErr != nil {
				faint.Fprintf(a.out, "  (%v)\n", sendErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&persona, "persona", "p", client.PersonaAICoach, "who to talk to")
	cmd.Flags().BoolVar(&reset, "reset", false, "start the conversation over")
	cmd.Flags().BoolVar(&listed, "contacts", false, "list the personas")
	return cmd
}

func contactName(persona string) string {
	for _, c := range client.Contacts {
		if c.ID == persona {
			return c.Name
		}
	}
	return persona
}

func printContacts(a *app) {
	for _, c := range client.Contacts {
		fmt.Fprintf(a.out, "%s %s\n", padRight(c.ID, 14), bold.Sprint(c.Name))
		faint.Fprintf(a.out, "%s %s\n", padRight("", 14), c.Title)
	}
}

func printHistory(a *app, persona string, msgs []client.Message) {
	for _, m := range msgs {
		if m.From == client.FromUser {
			text := m.Text
			if m.IsVideo {
				text = "🎥 " + text
			}
			fmt.Fprintf(a.out, "%s %s\n", faint.Sprint("you:"), text)
			continue
		}
		printReply(a, persona, m)
	}
}

func printReply(a *app, persona string, m client.Message) {
	fmt.Fprintf(a.out, "%s %s\n", bold.Sprint(contactName(persona)+":"), m.Text)
}
