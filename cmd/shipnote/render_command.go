package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shipnote/internal/notify"
)

var fieldCaser = cases.Title(language.English)

func newRenderCommand(cmdCtx *commandContext) *cobra.Command {
	var contextPath string
	var statusName string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Preview the message for a status without posting",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatus(statusName)
			if err != nil {
				return err
			}
			rc, err := loadReleaseContext(contextPath)
			if err != nil {
				return err
			}
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			msg := notify.BuildMessage(status, rc, cfg)

			rows := [][]string{
				{fieldCaser.String("status"), status.String()},
				{fieldCaser.String("fallback"), msg.Fallback},
				{fieldCaser.String("color"), msg.Color},
				{fieldCaser.String("categories"), strings.Join(notify.ReportedCategories(rc, cfg), ", ")},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))
			fmt.Fprintln(out)
			fmt.Fprintln(out, msg.Body)
			return nil
		},
	}

	cmd.Flags().StringVarP(&contextPath, "context", "f", "-", "Release context JSON file ('-' for stdin)")
	cmd.Flags().StringVar(&statusName, "status", "pending", "Status to render: pending, success, or failure")
	return cmd
}

func parseStatus(name string) (notify.Status, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pending":
		return notify.StatusPending, nil
	case "success":
		return notify.StatusSuccess, nil
	case "failure", "fail":
		return notify.StatusFailure, nil
	default:
		return notify.StatusPending, fmt.Errorf("unknown status %q (expected pending, success, or failure)", name)
	}
}
