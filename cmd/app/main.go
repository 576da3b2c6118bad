package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stowage/cmd"
	stowagehttp "stowage/internal/adapters/in/http"
	pgstore "stowage/internal/adapters/out/postgres"
)

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:   "stowage",
		Short: "Cargo stowage service for the station",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./stowage.yaml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the REST API and the scheduled jobs",
			RunE: func(c *cobra.Command, _ []string) error {
				return serve(c.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(c *cobra.Command, _ []string) error {
				_, db, err := connect(c.Context())
				if err != nil {
					return err
				}
				return pgstore.Migrate(c.Context(), db)
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func connect(_ context.Context) (cmd.Config, *gorm.DB, error) {
	config, err := cmd.LoadConfig(cfgFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	db, err := gorm.Open(postgres.Open(config.DB.DSN()), &gorm.Config{})
	if err != nil {
		return cmd.Config{}, nil, fmt.Errorf("connect to database: %w", err)
	}
	return config, db, nil
}

func serve(ctx context.Context) error {
	config, db, err := connect(ctx)
	if err != nil {
		return err
	}
	if err = pgstore.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	app := cmd.NewCompositionRoot(config, db, logger)

	server, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}

	e, err := stowagehttp.NewEcho(server)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, e, config)
}

func startWebServer(ctx context.Context, e *echo.Echo, config cmd.Config) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
