package cmd

import (
	"context"
	"errors"
	"time"

	"todo-sync/core/config"
	"todo-sync/core/logger"
	"todo-sync/core/secrets"
	"todo-sync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var apiKeyFlag string

// secretCmd represents the secret command
var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage the shared API key",
}

// secretPutCmd represents the secret put command
var secretPutCmd = &cobra.Command{
	Use:   "put",
	Short: "Store the API key in the configured secret object",
	Long:  `Writes {"apiKey": "..."} to the object named by SECRETS_NAME in the storage bucket, creating the bucket if needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return err
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return err
		}
		defer logg.Sync()

		if cfg.Secrets.Provider == secrets.ProviderStatic {
			return errors.New("the static secret provider is read-only; set SECRETS_VALUE instead")
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
		defer cancel()

		if err := secrets.PutAPIKey(ctx, client, cfg.Storage.Bucket, cfg.Secrets.Name, apiKeyFlag); err != nil {
			return err
		}

		logg.Info("API key stored",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("name", cfg.Secrets.Name))
		return nil
	},
}

func init() {
	secretPutCmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "API key clients must send in x-api-key")
	_ = secretPutCmd.MarkFlagRequired("api-key")

	secretCmd.AddCommand(secretPutCmd)
	RootCmd.AddCommand(secretCmd)
}
