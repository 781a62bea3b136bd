package main

import (
	"fmt"

	"taskboard/internal/config"
	"taskboard/internal/server"
	"taskboard/internal/store"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the stored task list with an empty one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("key") {
				cfg.StorageKey, _ = cmd.Flags().GetString("key")
			}

			ctx := cmd.Context()
			p, closeStorage, err := server.OpenPersistence(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStorage()

			if err := store.Reset(ctx, p, cfg.StorageKey); err != nil {
				return fmt.Errorf("reset %q: %w", cfg.StorageKey, err)
			}
			log.WithField("key", cfg.StorageKey).Info("✅ Task list reset")
			return nil
		},
	}

	cmd.Flags().String("key", "tasks", "storage key holding the task list")

	return cmd
}
