package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunHelp(t *testing.T) {
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	err := run(out, errW, []string{"--help"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "pass")
	require.Contains(t, out.String(), "people")
}

func TestRunUnknownCommand(t *testing.T) {
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	err := run(out, errW, []string{"orbit"})
	require.Error(t, err)
}

func TestRunPassValidation(t *testing.T) {
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	err := run(out, errW, []string{"pass", "--lat", "99", "--no-color"})
	require.Error(t, err)
	require.Contains(t, errW.String(), "latitude must be a number between -80.0 and 80.0")
}

// TestRunPeopleEndToEnd drives the binary surface end to end: config file,
// canned server, rendered table.
func TestRunPeopleEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"success","number":2,"people":[{"name":"Oleg Kononenko","craft":"ISS"},{"name":"Li Guangsu","craft":"Tiangong"}]}`))
	}))
	defer server.Close()

	configPath := filepath.Join(t.TempDir(), "issctl.hcl")
	content := `
endpoints {
  people = "` + server.URL + `/astros.json"
}
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	err := run(out, errW, []string{"people", "--config", configPath, "--no-color"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Oleg Kononenko")
	require.Contains(t, out.String(), "Tiangong")
}

func TestRunReportsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"failure","reason":"telemetry offline"}`))
	}))
	defer server.Close()

	configPath := filepath.Join(t.TempDir(), "issctl.hcl")
	content := `
endpoints {
  location = "` + server.URL + `/iss-now.json"
}
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	err := run(out, errW, []string{"loc", "--config", configPath, "--no-color"})
	require.Error(t, err)
	require.Contains(t, errW.String(), "telemetry offline")
}
