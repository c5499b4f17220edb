// Command seqtrace prints the evaluation trace of doubling [1, 2, 3, 4, 5] and
// keeping multiples of three, followed by the result line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kbukum/seqtrace/bootstrap"
	"github.com/kbukum/seqtrace/config"
	"github.com/kbukum/seqtrace/demo"
	"github.com/kbukum/seqtrace/logger"
)

const serviceName = "seqtrace"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}

	err = app.RunTask(context.Background(), func(ctx context.Context) error {
		_, err := demo.Run(ctx, os.Stdout,
			demo.WithTelemetry(app.Telemetry),
			demo.WithLogger(app.Logger.WithComponent("runner")),
		)
		return err
	})
	if err != nil {
		app.Logger.Error("run failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}
}
