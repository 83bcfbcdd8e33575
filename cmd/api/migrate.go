package main

import (
	"fmt"

	"github.com/linskybing/bugtrackr/internal/config/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gdb, err := db.Open()
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			if err := db.Migrate(gdb); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
			log.Info().Msg("database schema is up to date")
			return nil
		},
	}
}
