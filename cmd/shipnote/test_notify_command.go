package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shipnote/internal/release"
)

func newTestNotifyCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Post and resolve a throwaway test message",
		Long: "Verifies the Slack token, the destination channel, and both API calls by\n" +
			"posting a pending message and immediately updating it to the success state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := &release.Context{
				Package: "shipnote-test",
				Version: "0.0.0",
				Branch:  "test",
			}
			rc.EnsureEnv(os.Environ())

			notifier, err := cmdCtx.newNotifier()
			if err != nil {
				return err
			}

			ctx := commandContextOf(cmd)
			notifier.Prepare(ctx, rc)
			session, posted := notifier.Session()
			out := cmd.OutOrStdout()
			if !posted {
				fmt.Fprintln(out, "Notification not sent; check SLACK_TOKEN and SLACK_CHANNEL (details in logs)")
				return nil
			}
			notifier.Success(ctx, rc)
			fmt.Fprintf(out, "Test notification sent to %s (ts %s)\n", session.ChannelID, session.MessageTS)
			return nil
		},
	}
}
