package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	adapterjira "jiractl/internal/adapters/jira"
	adapterterminal "jiractl/internal/adapters/terminal"
	"jiractl/internal/config"
	"jiractl/internal/domain"
	"jiractl/internal/logging"
	"jiractl/internal/ports"
	"jiractl/internal/services"
	"jiractl/internal/ui"
)

// ContainerOptions holds what NewContainer needs from the command line
type ContainerOptions struct {
	Accessible bool
	ConfigPath string // Empty means lookup from the working directory
	Stderr     io.Writer
	StatusOut  io.Writer // Spinner and status lines, Stdout when nil
	Stdout     io.Writer
}

// Container holds all dependencies for the application
type Container struct {
	Config     *config.Config
	ConfigPath string
	Prompter   ports.Prompter
	Status     *adapterterminal.StatusReporter
	Tracker    *services.TrackerService

	stdout io.Writer
}

// NewContainer loads the configuration, connects to Jira and wires the
// services. Failures are reported on the terminal and returned wrapping
// the matching domain error.
func NewContainer(ctx context.Context, opts ContainerOptions) (*Container, error) {
	statusOut := opts.StatusOut
	if statusOut == nil {
		statusOut = opts.Stdout
	}
	status := adapterterminal.NewStatusReporter(statusOut, opts.Stderr)

	cfg, configPath, err := loadConfig(ctx, status, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(statusOut)

	var client *adapterjira.Client
	err = status.Run(ctx, "Connecting to Jira...", func(ctx context.Context) error {
		var err error
		client, err = adapterjira.NewClient(cfg)
		return err
	})
	if err != nil {
		status.Fail("An error occurred while connecting to Jira!")
		status.Error(err.Error())
		return nil, err
	}

	if cfg.Username != "" {
		status.Succeed(fmt.Sprintf("Successfully connected to %s as %s!", client.Host(), cfg.Username))
	} else {
		status.Succeed(fmt.Sprintf("Successfully connected to %s!", client.Host()))
	}
	fmt.Fprintln(statusOut)

	var clipboard ports.Clipboard
	if cfg.CopyToClipboard {
		clipboard = adapterterminal.NewClipboard()
	}

	return &Container{
		Config:     cfg,
		ConfigPath: configPath,
		Prompter:   adapterterminal.NewPrompter(opts.Accessible),
		Status:     status,
		Tracker:    services.NewTrackerService(client, status, clipboard, cfg),
		stdout:     opts.Stdout,
	}, nil
}

// NewTicketView creates a ticket view honouring the configured locale and user
func (c *Container) NewTicketView() *ui.TicketView {
	return ui.NewTicketView(c.stdout, c.Config.Locale, c.Config.Username)
}

// loadConfig reads the configuration from path, or looks it up from the
// working directory when path is empty
func loadConfig(ctx context.Context, status ports.StatusReporter, path string) (*config.Config, string, error) {
	var cfg *config.Config
	err := status.Run(ctx, "Loading Jira configuration...", func(ctx context.Context) error {
		var err error
		if path != "" {
			cfg, err = config.Load(path)
			return err
		}

		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, path, err = config.LoadFromDir(dir)
		return err
	})

	switch {
	case err == nil:
		status.Succeed("Configuration loaded!")
		logging.Logger.Info("Configuration loaded", "path", path, "host", cfg.Host)
		return cfg, path, nil
	case errors.Is(err, domain.ErrConfigNotFound):
		status.Fail(`Please create a ".jirarc" file to setup your Jira CLI! Run "jiractl config example" for more information.`)
	case errors.Is(err, domain.ErrConfigInvalid):
		status.Fail(`The configuration found is not valid! Run "jiractl config example" for more information.`)
		status.Error(err.Error())
	default:
		status.Fail("An error occurred while loading the configuration!")
		status.Error(err.Error())
	}
	return nil, "", err
}
