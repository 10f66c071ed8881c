package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/usersummary/internal/config"
	"github.com/osse101/usersummary/internal/runner"
	"github.com/osse101/usersummary/internal/summary"
	"github.com/osse101/usersummary/internal/userapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	initLogger(cfg)

	svc := summary.NewService(
		userapi.NewAPIClient(cfg.HTTPTimeout),
		summary.NewConsoleReporter(os.Stdout, os.Stderr),
		summary.Options{
			UsersURL:       cfg.UsersURL,
			InvalidURL:     cfg.InvalidURL,
			PrimaryPrefix:  cfg.PrimaryCityPrefix,
			FallbackPrefix: cfg.FallbackCityPrefix,
		},
	)

	// Handled errors are reported by the steps themselves; the exit status
	// does not depend on them.
	runner.New(svc).Run(context.Background())
}
