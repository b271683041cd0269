package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/client"
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/tui"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fail(logger.Nop(), "error getting configs", err)
	}

	log := logger.NewClientLogger("directory-client", logger.Options{
		Level:    cfg.Log.Level,
		FilePath: cfg.Log.FilePath,
	})
	log.Debug().Any("config", cfg).Msg("received configs")

	httpClient := utils.NewHTTPClient(cfg.Directory.RequestTimeout)
	directory := adapter.NewDirectoryClient(httpClient, cfg.Lookup(config.EnvLookup()), log)
	services := service.NewClientServices(directory, log)

	var browser client.Browser
	if cfg.Output.Format == config.OutputTUI {
		browser = tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	}

	app, err := client.NewApp(services, browser, cfg.Output, os.Stdout, log)
	if err != nil {
		fail(log, "init client app error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		fail(log, "client run error", err)
	}
}

// fail reports err on stderr even when the log goes to a file.
func fail(log *logger.Logger, msg string, err error) {
	log.Error().Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// printBuildInfo writes to stderr; stdout carries the listed users.
func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
