package main

import (
	"github.com/linskybing/bugtrackr/internal/config"
	"github.com/linskybing/bugtrackr/internal/logger"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bugtrackr",
		Short:         "Project and bug tracking API server",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			config.LoadConfig()
			logger.Init(config.LogLevel, config.LogFormat)
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newCreateAdminCmd())
	return rootCmd
}
