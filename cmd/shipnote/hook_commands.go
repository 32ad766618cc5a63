package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"shipnote/internal/notify"
	"shipnote/internal/release"
)

// handleResult is the machine-readable outcome a hook command prints on
// stdout. The orchestrator passes channel and ts back into success or fail.
type handleResult struct {
	Posted  bool   `json:"posted"`
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
}

func loadReleaseContext(path string) (*release.Context, error) {
	rc, err := release.LoadFile(path)
	if err != nil {
		return nil, err
	}
	rc.EnsureEnv(os.Environ())
	return rc, nil
}

func newPrepareCommand(cmdCtx *commandContext) *cobra.Command {
	var contextPath string

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Post the pending release message",
		Long: "Posts the in-progress status message for a starting release and prints the\n" +
			"message handle as JSON. Pass the handle to `shipnote success` or\n" +
			"`shipnote fail`. Notification problems are logged, not returned: the exit\n" +
			"code stays zero so the release pipeline is never blocked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadReleaseContext(contextPath)
			if err != nil {
				return err
			}
			notifier, err := cmdCtx.newNotifier()
			if err != nil {
				return err
			}
			notifier.Prepare(commandContextOf(cmd), rc)
			session, posted := notifier.Session()
			return writeJSON(cmd, handleResult{Posted: posted, Channel: session.ChannelID, TS: session.MessageTS})
		},
	}

	cmd.Flags().StringVarP(&contextPath, "context", "f", "-", "Release context JSON file ('-' for stdin)")
	return cmd
}

func newSuccessCommand(cmdCtx *commandContext) *cobra.Command {
	return newResolveCommand(cmdCtx, "success", "Update the release message to the success state",
		func(ctx context.Context, notifier *notify.Notifier, rc *release.Context) {
			notifier.Success(ctx, rc)
		})
}

func newFailCommand(cmdCtx *commandContext) *cobra.Command {
	return newResolveCommand(cmdCtx, "fail", "Update the release message to the failure state",
		func(ctx context.Context, notifier *notify.Notifier, rc *release.Context) {
			notifier.Fail(ctx, rc)
		})
}

func newResolveCommand(cmdCtx *commandContext, use, short string, resolve func(context.Context, *notify.Notifier, *release.Context)) *cobra.Command {
	var contextPath string
	var channelID string
	var messageTS string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadReleaseContext(contextPath)
			if err != nil {
				return err
			}
			notifier, err := cmdCtx.newNotifier()
			if err != nil {
				return err
			}
			notifier.Resume(notify.Session{ChannelID: channelID, MessageTS: messageTS})
			resolve(commandContextOf(cmd), notifier, rc)
			_, resolved := notifier.Session()
			return writeJSON(cmd, handleResult{Posted: resolved, Channel: channelID, TS: messageTS})
		},
	}

	cmd.Flags().StringVarP(&contextPath, "context", "f", "-", "Release context JSON file ('-' for stdin)")
	cmd.Flags().StringVar(&channelID, "channel", "", "Channel id from the prepare handle")
	cmd.Flags().StringVar(&messageTS, "ts", "", "Message timestamp from the prepare handle")
	return cmd
}

func commandContextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
