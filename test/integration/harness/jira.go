package harness

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
)

// FakeJira is an HTTP server answering the Jira endpoints registered on it
type FakeJira struct {
	mux    *http.ServeMux
	server *httptest.Server
	tb     testing.TB
}

// NewFakeJira starts a server that is closed when the test completes
func NewFakeJira(tb testing.TB) *FakeJira {
	tb.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	tb.Cleanup(server.Close)

	return &FakeJira{mux: mux, server: server, tb: tb}
}

// Respond answers every request matching pattern with status and a JSON body
func (f *FakeJira) Respond(pattern string, status int, body string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Config returns a .jirarc pointing at the server. overrides replace or add keys.
func (f *FakeJira) Config(overrides map[string]any) string {
	f.tb.Helper()

	u, err := url.Parse(f.server.URL)
	if err != nil {
		f.tb.Fatalf("Invalid server URL: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		f.tb.Fatalf("Invalid server port: %v", err)
	}

	cfg := map[string]any{
		"copyToClipboard": false,
		"host":            u.Hostname(),
		"password":        "secret",
		"port":            port,
		"protocol":        "http",
		"username":        "jdoe@example.com",
	}
	for k, v := range overrides {
		cfg[k] = v
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		f.tb.Fatalf("Failed to marshal config: %v", err)
	}
	return string(data)
}
