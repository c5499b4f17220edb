package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/seqtrace/config"
	"github.com/kbukum/seqtrace/logger"
	"github.com/kbukum/seqtrace/observability"
	"github.com/kbukum/seqtrace/version"
)

// App holds the configured logger and telemetry for one command invocation.
type App struct {
	Name    string
	Version string
	Cfg     *config.Config
	Logger  *logger.Logger
	// Telemetry is nil unless telemetry is enabled in the config.
	Telemetry *observability.PipelineObserver

	gracefulTimeout time.Duration
	initTelemetry   func(context.Context, observability.Config) (observability.ShutdownFunc, error)
	shutdown        observability.ShutdownFunc

	onStart []Hook
	onStop  []Hook
}

// NewApp applies defaults to cfg, validates it, and initializes the logger.
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	cfg.ApplyDefaults(cfg.Name)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	ver := cfg.Version
	if ver == "" {
		ver = version.Get().Short()
	}
	if cfg.Telemetry.ServiceVersion == "" {
		cfg.Telemetry.ServiceVersion = ver
	}

	app := &App{
		Name:            cfg.Name,
		Version:         ver,
		Cfg:             cfg,
		gracefulTimeout: 5 * time.Second,
		initTelemetry:   observability.Init,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(cfg.Logging, cfg.Name)
		app.Logger = logger.GetGlobalLogger()
	}
	return app, nil
}

// RunTask starts telemetry, runs the start hooks, then task. SIGINT and
// SIGTERM cancel the task's context. Shutdown runs whether or not the task
// succeeded; the task error takes precedence over shutdown errors.
func (a *App) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := a.startup(ctx); err != nil {
		_ = a.stop()
		return err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Warn("received signal, canceling task", logger.Fields("signal", sig.String()))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx)

	if stopErr := a.stop(); stopErr != nil {
		if taskErr != nil {
			return taskErr
		}
		return stopErr
	}
	return taskErr
}

func (a *App) startup(ctx context.Context) error {
	a.Logger.Info("starting", logger.Fields(
		"name", a.Name,
		logger.FieldVersion, a.Version,
		"environment", a.Cfg.Environment,
	))

	shutdown, err := a.initTelemetry(ctx, a.Cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry initialization failed: %w", err)
	}
	a.shutdown = shutdown

	if a.Cfg.Telemetry.Enabled {
		obs, err := observability.NewPipelineObserver()
		if err != nil {
			return fmt.Errorf("telemetry observer: %w", err)
		}
		a.Telemetry = obs
	}

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}
	return nil
}

// stop runs the stop hooks and flushes telemetry within the graceful timeout.
func (a *App) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var shutdownErr error
	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.Error("onStop hook error", logger.Fields(logger.FieldError, err.Error()))
		shutdownErr = err
	}

	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			a.Logger.Error("telemetry shutdown error", logger.Fields(logger.FieldError, err.Error()))
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
		a.shutdown = nil
	}

	a.Logger.Debug("shutdown complete")
	return shutdownErr
}
