package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/accadex/accadex/pkg/client"
)

func (a *app) uploadCmd() *cobra.Command {
	var persona, note string
	cmd := &cobra.Command{
		Use:   "upload <video file>",
		Short: "Upload a match clip, optionally sending it to a persona",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if persona != "" && !client.KnownPersona(persona) {
				return fmt.Errorf("unknown persona %q, see 'accadex chat --contacts'", persona)
			}
			if err := a.requireSession(); err != nil {
				return err
			}
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			ctx := commandContext(cmd)
			videoURL, err := a.api.UploadVideo(ctx, filepath.Base(path), mime.TypeByExtension(filepath.Ext(path)), a.userID(), f)
			if err != nil {
				if persona == "" {
					return err
				}
				board := a.session.Chats
				board.Append(persona, client.Message{From: client.FromUser, Text: note, IsVideo: true})
				board.Append(persona, client.Message{From: client.FromBot, Text: client.SendFileFailed})
				if serr := a.save(); serr != nil {
					return serr
				}
				printReply(a, persona, client.Message{Text: client.SendFileFailed})
				return err
			}
			success.Fprintln(a.out, "✓ Uploaded")
			fmt.Fprintln(a.out, videoURL)
			if persona == "" {
				return nil
			}

			reply, sendErr := a.session.Chats.SendVideo(ctx, a.api, persona, note, videoURL)
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
	cmd.Flags().StringVarP(&persona, "persona", "p", "", "send the clip to this persona")
	cmd.Flags().StringVar(&note, "note", "Uploaded a match video for analysis", "message sent with the clip")
	return cmd
}
