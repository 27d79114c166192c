package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment isolates a command run: its own HOME and working directory
type TestEnvironment struct {
	Home     string
	WorkDir  string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates the temp directories of an environment.
// They are removed when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	env := &TestEnvironment{
		Home:     filepath.Join(root, "home"),
		WorkDir:  filepath.Join(root, "work"),
		extraEnv: make(map[string]string),
		tb:       tb,
	}

	for _, dir := range []string{env.Home, env.WorkDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return env
}

// Environ returns the process environment without JIRACTL_* variables,
// with HOME pointing to the isolated home and debug logging disabled
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "JIRACTL_") || key == "HOME" || key == "XDG_STATE_HOME" {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"HOME="+e.Home,
		"JIRACTL_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}
	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// WriteConfig writes a configuration file in the work directory and returns its path
func (e *TestEnvironment) WriteConfig(name, content string) string {
	e.tb.Helper()

	path := filepath.Join(e.WorkDir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
