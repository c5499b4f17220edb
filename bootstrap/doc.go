// Package bootstrap runs a command's lifecycle: logging and telemetry set up
// from config, start hooks, the task itself under signal cancellation, then
// stop hooks and telemetry shutdown within a graceful timeout.
//
//	cfg, err := config.Load("seqtrace")
//	app, err := bootstrap.NewApp(cfg)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    _, err := demo.Run(ctx, os.Stdout, demo.WithTelemetry(app.Telemetry))
//	    return err
//	})
package bootstrap
