package bootstrap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kbukum/seqtrace/config"
	"github.com/kbukum/seqtrace/logger"
	"github.com/kbukum/seqtrace/observability"
)

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	app, err := NewApp(cfg, WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t, &config.Config{Name: "seqtrace", Version: "1.2.3"})
	if app.Name != "seqtrace" || app.Version != "1.2.3" {
		t.Errorf("unexpected name/version %q %q", app.Name, app.Version)
	}
	if app.Cfg.Environment != config.EnvDevelopment {
		t.Errorf("expected defaults to be applied, got environment %q", app.Cfg.Environment)
	}
	if app.Cfg.Telemetry.ServiceVersion != "1.2.3" {
		t.Errorf("telemetry service version = %q", app.Cfg.Telemetry.ServiceVersion)
	}
	if app.gracefulTimeout != 5*time.Second {
		t.Errorf("expected 5s default timeout, got %v", app.gracefulTimeout)
	}
}

func TestNewApp_VersionFromBuild(t *testing.T) {
	app := newTestApp(t, &config.Config{Name: "seqtrace"})
	if app.Version == "" {
		t.Error("expected version from build info")
	}
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(&config.Config{Name: "seqtrace", Environment: "moon"}, WithLogger(logger.Nop()))
	if err == nil {
		t.Error("expected error for unknown environment")
	}
}

func TestNewApp_InitsGlobalLogger(t *testing.T) {
	app, err := NewApp(&config.Config{Name: "seqtrace"})
	if err != nil {
		t.Fatal(err)
	}
	if app.Logger != logger.GetGlobalLogger() {
		t.Error("expected app logger to be the global logger")
	}
}

func TestWithGracefulTimeout(t *testing.T) {
	app, err := NewApp(&config.Config{Name: "x"}, WithLogger(logger.Nop()), WithGracefulTimeout(time.Second))
	if err != nil {
		t.Fatal(err)
	}
	if app.gracefulTimeout != time.Second {
		t.Errorf("timeout = %v", app.gracefulTimeout)
	}
}

func TestRunTask_Lifecycle(t *testing.T) {
	app := newTestApp(t, &config.Config{Name: "seqtrace"})

	var order []string
	app.initTelemetry = func(context.Context, observability.Config) (observability.ShutdownFunc, error) {
		order = append(order, "telemetry")
		return func(context.Context) error {
			order = append(order, "flush")
			return nil
		}, nil
	}
	app.OnStart(func(context.Context) error { order = append(order, "start"); return nil })
	app.OnStop(func(context.Context) error { order = append(order, "stop"); return nil })

	err := app.RunTask(context.Background(), func(context.Context) error {
		order = append(order, "task")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"telemetry", "start", "task", "stop", "flush"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
	if app.Telemetry != nil {
		t.Error("telemetry observer should be nil when disabled")
	}
}

func TestRunTask_TaskErrorWins(t *testing.T) {
	app := newTestApp(t, &config.Config{Name: "seqtrace"})
	taskErr := errors.New("task failed")
	app.OnStop(func(context.Context) error { return errors.New("stop failed") })

	err := app.RunTask(context.Background(), func(context.Context) error { return taskErr })
	if !errors.Is(err, taskErr) {
		t.Errorf("expected task error, got %v", err)
	}
}

func TestRunTask_StopError(t *testing.T) {
	app := newTestApp(t, &config.Config{Name: "seqtrace"})
	stopErr := errors.New("stop failed")
	app.OnStop(func(context.Context) error { return stopErr })

	err := app.RunTask(context.Background(), func(context.Context) error { return nil })
	if !errors.Is(err, stopErr) {
		t.Errorf("expected stop error, got %v", err)
	}
}

func TestRunTask_StartHookError(t *testing.T) {
	app := newTestApp(t, &config.Config{Name: "seqtrace"})
	app.OnStart(func(context.Context) error { return errors.New("boom") })

	ran := false
	err := app.RunTask(context.Background(), func(context.Context) error { ran = true; return nil })
	if err == nil {
		t.Fatal("expected start hook error")
	}
	if ran {
		t.Error("task must not run after a failed start hook")
	}
}

func TestRunTask_TelemetryInitError(t *testing.T) {
	app := newTestApp(t, &config.Config{Name: "seqtrace"})
	app.initTelemetry = func(context.Context, observability.Config) (observability.ShutdownFunc, error) {
		return nil, errors.New("collector unreachable")
	}
	if err := app.RunTask(context.Background(), func(context.Context) error { return nil }); err == nil {
		t.Error("expected telemetry error")
	}
}

func TestRunTask_ContextCancellation(t *testing.T) {
	app := newTestApp(t, &config.Config{Name: "seqtrace"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.RunTask(ctx, func(ctx context.Context) error { return ctx.Err() })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
