// Command seqcompare contrasts batch and lazy evaluation of the double and
// mod3-filter stages, then shows a take over a large range stopping early.
//
// Usage:
//
//	seqcompare [values]
//
// values is a comma-separated list of integers such as "1,2,3" or "[4, 5]".
// It defaults to 1,2,3,4,5.
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

const (
	serviceName = "seqcompare"
	takeLimit   = 100000
	takeCount   = 5
)

func main() {
	input := demo.Input()
	if len(os.Args) > 1 {
		parsed, err := demo.ParseInput(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
			os.Exit(2)
		}
		input = parsed
	}

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
		if err := demo.CompareStrategies(ctx, os.Stdout, input); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(os.Stdout, demo.HeaderTake); err != nil {
			return err
		}
		_, err := demo.TakeFirst(ctx, os.Stdout, takeLimit, takeCount)
		return err
	})
	if err != nil {
		app.Logger.Error("compare failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}
}
