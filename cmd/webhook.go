package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"todo-sync/feature/webhook"

	"github.com/spf13/cobra"
)

// webhookCmd represents the webhook command
var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Webhook utilities",
}

// webhookReplayCmd represents the webhook replay command
var webhookReplayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Apply a saved Airtable webhook payload",
	Long:  `Reads an Airtable change payload from a file (or "-" for stdin) and reconciles it exactly like POST /v1/webhook.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			body []byte
			err  error
		)
		if args[0] == "-" {
			body, err = io.ReadAll(os.Stdin)
		} else {
			body, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		svc := webhook.NewService(a.engine, a.logger, a.cfg.TableName(), a.cfg.Server.Stage)
		result, err := svc.Process(cmd.Context(), body)
		if err != nil {
			return err
		}

		return printJSON(webhook.Response{
			Message:        "Webhook processed successfully",
			ProcessedCount: result.Processed,
			CreatedCount:   result.Created,
			UpdatedCount:   result.Updated,
			FailedCount:    result.Failed,
			TableName:      a.cfg.TableName(),
			Stage:          a.cfg.Server.Stage,
			Timestamp:      time.Now().UTC().Format(webhook.TimestampLayout),
		})
	},
}

func init() {
	webhookCmd.AddCommand(webhookReplayCmd)
	RootCmd.AddCommand(webhookCmd)
}
