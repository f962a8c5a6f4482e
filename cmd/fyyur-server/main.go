package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/fyyur/pkg/fyyur/config"
	"github.com/mikepea/fyyur/pkg/fyyur/database"
	"github.com/mikepea/fyyur/pkg/fyyur/events"
	"github.com/mikepea/fyyur/pkg/fyyur/flash"
	"github.com/mikepea/fyyur/pkg/fyyur/models"
	"github.com/mikepea/fyyur/pkg/fyyur/server"
	"github.com/mikepea/fyyur/pkg/fyyur/store"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

//go:generate swag init -g main.go -d ./,../../pkg/fyyur -o ../../api/swagger --outputTypes go

// @title Fyyur API
// @version 1.0
// @description A booking directory of music venues, artists and the shows they play.

// @BasePath /

var envFile string

var rootCmd = &cobra.Command{
	Use:   "fyyur-server",
	Short: "Fyyur - a booking directory for venues and artists",
	Long: `Fyyur lists music venues and artists and the shows they play together.

Without a subcommand the HTTP server is started.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the venues, artists and shows tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := open()
		if err != nil {
			return err
		}
		defer closeDB(db)
		log.Printf("Database migrations completed (%s)", cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read settings from this file instead of ./.env")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// open loads the configuration, connects to the database and migrates it
func open() (config.Config, *gorm.DB, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return cfg, nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		closeDB(db)
		return cfg, nil, fmt.Errorf("run migrations: %w", err)
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func runServe() error {
	cfg, db, err := open()
	if err != nil {
		return err
	}
	defer closeDB(db)
	log.Println("Database migrations completed")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var opts []store.Option
	if cfg.RabbitURL != "" {
		publisher, err := events.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("Warning: event publishing disabled: %v", err)
		} else {
			defer publisher.Close()
			opts = append(opts, store.WithPublisher(publisher))
			log.Println("Publishing directory events to RabbitMQ")
		}
	}
	s := store.New(db, opts...)

	backend, closeFlash := flashBackend(cfg)
	defer closeFlash()

	router, err := server.NewRouter(s, server.Options{
		Flasher:    flash.New(backend),
		RequestLog: true,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting Fyyur server on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// flashBackend picks the Redis store when REDIS_ADDR is set and reachable,
// the cookie store otherwise
func flashBackend(cfg config.Config) (flash.Backend, func()) {
	client, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, using cookie flash store: %v", err)
	}
	if client == nil {
		return flash.NewCookieBackend(cfg.IsProduction()), func() {}
	}
	log.Printf("Using Redis flash store at %s", cfg.RedisAddr)
	return flash.NewRedisBackend(client, cfg.FlashTTL, cfg.IsProduction()), func() { client.Close() }
}
