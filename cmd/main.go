package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"jiractl/internal/cmd"
	"jiractl/internal/domain"
	"jiractl/internal/ui"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// versionInfo returns formatted version information for CLI display
func versionInfo() string {
	return fmt.Sprintf("jiractl %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	os.Exit(run())
}

func run() int {
	// Set version info for UI components
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Tagline:   ui.Tagline,
		Version:   Version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logging is initialized in CLI.AfterApply()
	var cli cmd.CLI
	kctx := kong.Parse(&cli,
		kong.Name("jiractl"),
		kong.Description(ui.Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	err := kctx.Run()
	code := domain.ExitCodeFor(err)
	if code == domain.ExitUnknown {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return int(code)
}
