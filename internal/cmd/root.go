package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"jiractl/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	ConfigFile  string           `help:"Path to the .jirarc file (skips the lookup from the working directory)" name:"config" type:"path" env:"JIRACTL_CONFIG"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run           RunCmd    `cmd:"" help:"Start the interactive prompt (default)" default:"1"`
	Get           GetCmd    `cmd:"get" help:"Show a ticket"`
	Boards        BoardsCmd `cmd:"boards" help:"List the boards visible to you"`
	Configuration ConfigCmd `cmd:"config" name:"config" help:"Show where the configuration is read from"`

	// Internal fields (not flags)
	Stderr io.Writer `kong:"-"`
	Stdout io.Writer `kong:"-"`
}

// AfterApply initializes logging after CLI parsing
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(logging.Options{
		Debug:    c.Debug,
		File:     c.DebugFile,
		MaxFiles: c.MaxLogFiles,
	}, c.stderr())
	if err != nil {
		return err
	}

	if logFilePath != "" {
		logging.Logger.Info("jiractl started", "log_file", logFilePath, "args", os.Args[1:])
	}
	return nil
}

func (c *CLI) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *CLI) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

// Connect loads the configuration and creates the Jira client,
// reporting both steps on statusOut
func (c *CLI) Connect(ctx context.Context, accessible bool, statusOut io.Writer) (*Container, error) {
	container, err := NewContainer(ctx, ContainerOptions{
		Accessible: accessible,
		ConfigPath: c.ConfigFile,
		Stderr:     c.stderr(),
		StatusOut:  statusOut,
		Stdout:     c.stdout(),
	})
	if err != nil {
		logging.Logger.Error("Failed to initialize", "error", err)
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return container, nil
}
