package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	apiserver "downtimed/internal/api"
	configapp "downtimed/internal/config/application"
	"downtimed/internal/infrastructure/database"
	"downtimed/internal/infrastructure/logger"
	monitorapp "downtimed/internal/monitor/application"
	monitordomain "downtimed/internal/monitor/domain"
	monitorinfra "downtimed/internal/monitor/infrastructure"
	"downtimed/internal/schema"
	"downtimed/internal/shared/validation"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "downtimed",
		Usage: "detect and log downtime on machines without a reliable RTC",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory containing the downtime journal",
			},
			&cli.IntFlag{
				Name:  "heartbeat-interval",
				Usage: "seconds between heartbeats",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "disable the sqlite history mirror",
			},
			&cli.StringFlag{
				Name:  "api-addr",
				Usage: "listen address for the status API (serve mode)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "path to a .env file (default: ./.env)",
			},
		},
		Action: func(c *cli.Context) error {
			return runMonitor(c, false)
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "record downtime since the last heartbeat, then heartbeat forever",
				Action: func(c *cli.Context) error {
					return runMonitor(c, false)
				},
			},
			{
				Name:  "serve",
				Usage: "run the monitor with the read-only status API",
				Action: func(c *cli.Context) error {
					return runMonitor(c, true)
				},
			},
			{
				Name:  "report",
				Usage: "print recorded outages",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of outages to print",
						Value: 100,
					},
				},
				Action: runReport,
			},
		},
	}
}

func loadConfig(c *cli.Context, appLogger *logger.Logger) *configapp.RuntimeConfig {
	configapp.LoadEnvFile(appLogger, c.String("env-file"))
	return configapp.LoadRuntimeConfig(
		c.String("data-dir"),
		c.Int("heartbeat-interval"),
		c.IsSet("heartbeat-interval"),
		c.Bool("no-history"),
		c.String("api-addr"),
	)
}

// openHistory opens the sqlite history store in the data dir: one read
// handle, one single-connection write handle, schema applied on the way in.
func openHistory(ctx context.Context, dataDir string) (monitordomain.History, func(), error) {
	dbPath := filepath.Join(dataDir, monitorinfra.HistoryFileName)

	dbRead, err := database.ConnectSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to read database: %w", err)
	}
	dbRead.SetMaxOpenConns(runtime.NumCPU())

	dbWrite, err := database.ConnectSQLite(dbPath)
	if err != nil {
		dbRead.Close()
		return nil, nil, fmt.Errorf("failed to connect to write database: %w", err)
	}
	dbWrite.SetMaxOpenConns(1)

	if _, err := dbWrite.ExecContext(ctx, schema.DDL); err != nil {
		dbRead.Close()
		dbWrite.Close()
		return nil, nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	cleanup := func() {
		dbRead.Close()
		dbWrite.Close()
	}

	return monitorinfra.NewHistoryRepository(dbRead, dbWrite), cleanup, nil
}

func runMonitor(c *cli.Context, withAPI bool) error {
	appLogger := logger.NewLogger()
	logger.SetDefaultLogger(appLogger)

	cfg := loadConfig(c, appLogger)
	if problems := cfg.Valid(c.Context); len(problems) > 0 {
		return validation.NewValidationError(problems, "downtimed")
	}

	appLogger.Info("Starting downtimed",
		"data_dir", cfg.DataDir,
		"interval_seconds", cfg.HeartbeatInterval,
	)

	sigCtx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Fails fast when the data dir is missing; the operator has to fix it
	// and restart.
	journal, err := monitorinfra.NewFileJournal(cfg.DataDir)
	if err != nil {
		return err
	}

	var history monitordomain.History
	if !cfg.NoHistory {
		h, cleanup, err := openHistory(sigCtx, cfg.DataDir)
		if err != nil {
			return err
		}
		defer cleanup()
		history = h
	}

	bootClock := monitorinfra.NewProcBootClock()
	monitor := monitorapp.NewService(appLogger, journal, history, bootClock, cfg.Interval())

	if boot, err := bootClock.BootTime(sigCtx); err == nil {
		appLogger.Info("Boot time", "ts", boot.Format(monitordomain.TimestampLayout))
	}

	if err := monitor.RecordDowntime(sigCtx); err != nil {
		return err
	}

	if !withAPI {
		// Plain blocking loop in this goroutine; there is nothing else
		// to interleave.
		return monitor.Run(sigCtx)
	}

	return runWithAPI(sigCtx, appLogger, cfg, monitor)
}

func runWithAPI(sigCtx context.Context, appLogger *logger.Logger, cfg *configapp.RuntimeConfig, monitor *monitorapp.Service) error {
	apiServer := apiserver.NewServer(appLogger, cfg, monitor)

	runCtx, runCancel := context.WithCancel(sigCtx)
	defer runCancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			select {
			case serverErrChan <- fmt.Errorf("API server error: %w", err):
			default:
			}
			runCancel()
		}
	}()

	runErr := monitor.Run(runCtx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("API server shutdown error", "err", err)
	}

	select {
	case err := <-serverErrChan:
		return err
	default:
	}
	return runErr
}

func runReport(c *cli.Context) error {
	appLogger := logger.NewLogger()
	logger.SetDefaultLogger(appLogger)

	cfg := loadConfig(c, appLogger)
	if cfg.DataDir == "" {
		return validation.NewValidationError(map[string]string{
			"data-dir": "'data-dir' is required",
		}, "downtimed")
	}

	journal, err := monitorinfra.NewFileJournal(cfg.DataDir)
	if err != nil {
		return err
	}

	history, cleanup, err := openHistory(c.Context, cfg.DataDir)
	if err != nil {
		return err
	}
	defer cleanup()

	monitor := monitorapp.NewService(appLogger, journal, history, nil, cfg.Interval())
	return monitor.WriteReport(c.Context, os.Stdout, monitordomain.OutageFilters{
		Limit: c.Int("limit"),
	})
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
