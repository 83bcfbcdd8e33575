package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/internal/api/middleware"
	"github.com/linskybing/bugtrackr/internal/api/routes"
	"github.com/linskybing/bugtrackr/internal/application"
	"github.com/linskybing/bugtrackr/internal/config"
	"github.com/linskybing/bugtrackr/internal/config/db"
	"github.com/linskybing/bugtrackr/internal/cron"
	"github.com/linskybing/bugtrackr/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				config.ServerPort = port
			}
			return serve()
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides SERVER_PORT)")
	return cmd
}

func serve() error {
	middleware.Init()

	gdb, err := db.Open()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := db.Migrate(gdb); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	repos := repository.New(gdb)

	scheduler, err := cron.StartOrphanReport(config.OrphanReportSchedule, application.NewBugService(repos))
	if err != nil {
		return err
	}
	if scheduler != nil {
		defer scheduler.Stop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(config.CorsOrigins))
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, repos)

	addr := ":" + config.ServerPort
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
