package logging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// DefaultMaxFiles is the number of run logs kept in the state directory
const DefaultMaxFiles = 1000

// Logger is shared by every package. Records are discarded until
// Initialize enables debug logging.
var Logger = discardLogger()

// Options selects where debug records go
type Options struct {
	Debug    bool
	File     string // Fixed log file, never pruned
	MaxFiles int    // 0 keeps every run log
}

// withEnv completes the options left at their defaults with
// JIRACTL_DEBUG, JIRACTL_DEBUG_FILE and JIRACTL_MAX_LOG_FILES
func (o Options) withEnv(getenv func(string) string) Options {
	if getenv("JIRACTL_DEBUG") == "1" {
		o.Debug = true
	}
	if o.File == "" {
		o.File = getenv("JIRACTL_DEBUG_FILE")
	}
	if o.MaxFiles == DefaultMaxFiles {
		if maxFiles, err := strconv.Atoi(getenv("JIRACTL_MAX_LOG_FILES")); err == nil {
			o.MaxFiles = maxFiles
		}
	}
	return o
}

// Initialize points Logger at a JSON file when debug logging is enabled and
// announces the file on notice. Every record carries the run id, which also
// names the file unless opts.File is set. It returns the file path, empty
// when records are discarded.
func Initialize(opts Options, notice io.Writer) (string, error) {
	opts = opts.withEnv(os.Getenv)
	if !opts.Debug && opts.File == "" {
		Logger = discardLogger()
		return "", nil
	}

	runID := uuid.New().String()
	path, err := logFilePath(opts, runID, notice)
	if err != nil {
		return "", err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("run_id", runID)
	Logger.Info("Debug logging initialized", "log_file", path)
	fmt.Fprintf(notice, "Debug mode enabled. Logs: %s\n", path)

	return path, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func logFilePath(opts Options, runID string, notice io.Writer) (string, error) {
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.File, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	dir := stateDir(runtime.GOOS, home, os.Getenv)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxFiles > 0 {
		// Leave room for this run
		if err := pruneLogs(dir, opts.MaxFiles-1); err != nil {
			fmt.Fprintf(notice, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, runID+".log"), nil
}

// pruneLogs deletes the oldest .log files of dir until keep remain
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logs []fs.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		if info, err := entry.Info(); err == nil {
			logs = append(logs, info)
		}
	}
	if len(logs) <= keep {
		return nil
	}

	// Newest first
	slices.SortFunc(logs, func(a, b fs.FileInfo) int {
		return b.ModTime().Compare(a.ModTime())
	})

	var errs []error
	for _, info := range logs[keep:] {
		if err := os.Remove(filepath.Join(dir, info.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// stateDir returns where run logs live on goos
func stateDir(goos, home string, getenv func(string) string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "jiractl")
	case "linux":
		if stateHome := getenv("XDG_STATE_HOME"); stateHome != "" {
			return filepath.Join(stateHome, "jiractl")
		}
		return filepath.Join(home, ".local", "state", "jiractl")
	case "windows":
		if localAppData := getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "jiractl", "logs")
		}
		return filepath.Join(home, "AppData", "Local", "jiractl", "logs")
	default:
		return filepath.Join(home, ".jiractl", "logs")
	}
}
