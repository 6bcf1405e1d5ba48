package main

import (
	"context"
	"log"
	"os"
	"time"

	"MediSure/config"
	"MediSure/config/logger"
	"MediSure/controllers"
	"MediSure/jobs"
	"MediSure/migrations"
	"MediSure/routes"
	"MediSure/server"
	"MediSure/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "medisure",
		Short:        "MediSure medication and scan report API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.AddCommand(newMigrateCmd(), newJobsCmd())
	return root
}

func setup() *config.Config {
	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel, cfg.IsProduction()); err != nil {
		log.Println("Error in initialising the logger:", err)
	}
	return cfg
}

func run() error {
	cfg := setup()
	defer logger.Sync()

	defaultopts := server.GetDefaultOptions(cfg)

	options := server.Options{
		Config:           cfg,
		CacheEnabled:     defaultopts.CacheEnabled,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: defaultopts.JobsEnabled && !isTest,
		JobsHandler: func(app *server.App) (*cron.Cron, error) {
			if isTest {
				return nil, nil
			}
			purger, _ := app.Sessions.(session.Purger)
			return jobs.StartDailyScheduler(jobs.Options{
				MissedDoseSpec:   cfg.MissedDoseCron,
				SessionPurgeSpec: cfg.SessionPurgeCron,
				Sweeper:          app.Services.Medications,
				Purger:           purger,
			})
		},

		WebServerPreHandler: func(r *gin.Engine, app *server.App) {
			r.Use(cors.New(cors.Config{
				AllowOrigins:     cfg.CORSOrigins,
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			ctl := controllers.New(app.Services, controllers.CookieOptions{
				MaxAge: cfg.SessionTTL,
				Secure: cfg.IsProduction(),
			})
			routes.Routes(r, ctl, cfg.Environment)
		},

		MigrationEnabled: defaultopts.MigrationEnabled && !isTest,
		MigrationHandler: func(ctx context.Context) error {
			if isTest {
				return nil
			}
			return migrations.Run(ctx)
		},
	}
	return startServer(options)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the mongo indexes and data backfills",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup()
			defer logger.Sync()

			cfg.StoreBackend = config.StoreMongo
			cfg.SessionBackend = config.StoreMemory
			_, cleanup, err := server.Bootstrap(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer cleanup()
			return migrations.Run(cmd.Context())
		},
	}
}

func newJobsCmd() *cobra.Command {
	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "Run scheduled jobs once, outside the scheduler",
	}
	jobsCmd.AddCommand(&cobra.Command{
		Use:   "sweep-missed",
		Short: "Mark yesterday's unrecorded doses as missed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup()
			defer logger.Sync()

			app, cleanup, err := server.Bootstrap(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer cleanup()

			written := jobs.RunMissedDoseSweep(cmd.Context(), app.Services.Medications, time.Now())
			logger.Log.Info("Sweep complete", zap.Int("marked", written))
			return nil
		},
	})
	return jobsCmd
}
