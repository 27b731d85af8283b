package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	DisableColor()
	dir := t.TempDir()
	base := []string{"--log-file", filepath.Join(dir, "studypal.log")}
	if !hasFlag(args, "--config") {
		base = append(base, "--config", filepath.Join(dir, "config.toml"))
	}
	app := NewApp()
	t.Cleanup(func() { _ = app.Close() })
	var stdout, stderr bytes.Buffer
	app.root.SetOut(&stdout)
	app.root.SetErr(&stderr)
	app.root.SetArgs(append(args, base...))
	err := app.Execute()
	return stdout.String(), stderr.String(), err
}

func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name || strings.HasPrefix(arg, name+"=") {
			return true
		}
	}
	return false
}

func TestVersion(t *testing.T) {
	out, _, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "studypal dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestExplainPrintsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"topic":"Photosynthesis","explanation":"Plants turn light into sugar.","success":true}`))
	}))
	defer server.Close()

	out, _, err := runApp(t, "explain", "--endpoint", server.URL, "Photosynthesis")
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	for _, want := range []string{"Explanation: Photosynthesis", "Plants turn light into sugar.", "Explanation generated by AI • StudyPal-AI"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExplainJoinsArgsAndPrintsJSON(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := new(bytes.Buffer)
		body.ReadFrom(r.Body)
		got = body.String()
		w.Write([]byte(`{"topic":"Machine Learning","explanation":"Computers learn from data.","success":true}`))
	}))
	defer server.Close()

	out, _, err := runApp(t, "explain", "--endpoint", server.URL, "--json", "Machine", "Learning")
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}
	if got != `{"topic":"Machine Learning"}` {
		t.Fatalf("unexpected request body %s", got)
	}
	if !strings.Contains(out, `"explanation": "Computers learn from data."`) {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestExplainFailureIsReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, stderr, err := runApp(t, "explain", "--endpoint", server.URL, "Quantum Physics")
	if !errors.Is(err, ErrReported) {
		t.Fatalf("expected ErrReported, got %v", err)
	}
	if !strings.Contains(stderr, "Failed to get explanation. Make sure the backend is running.") {
		t.Fatalf("generic message missing from stderr: %q", stderr)
	}
}

func TestExplainBlankTopic(t *testing.T) {
	_, stderr, err := runApp(t, "explain", "   ")
	if !errors.Is(err, ErrReported) {
		t.Fatalf("expected ErrReported, got %v", err)
	}
	if !strings.Contains(stderr, "Please enter a topic to explain") {
		t.Fatalf("validation message missing: %q", stderr)
	}
}

func TestDoctor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.Write([]byte(`{"status":"healthy"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	out, _, err := runApp(t, "doctor", "--endpoint", server.URL)
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "endpoint   "+server.URL) || !strings.Contains(out, "✓ backend healthy") {
		t.Fatalf("unexpected doctor output:\n%s", out)
	}

	server.Close()
	out, _, err = runApp(t, "doctor", "--endpoint", server.URL)
	if !errors.Is(err, ErrReported) || !strings.Contains(out, "✗ backend unreachable") {
		t.Fatalf("expected unreachable report, got %v\n%s", err, out)
	}
}

func TestSummarizeRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runApp(t, "summarize", path)
	if err == nil || !strings.Contains(err.Error(), "only PDF files are supported") {
		t.Fatalf("expected extension rejection, got %v", err)
	}
}

func TestConfigWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studypal.toml")
	out, _, err := runApp(t, "config", "--write", "--config", path, "--endpoint", "http://study.lan:8000")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "Created "+path) || !strings.Contains(out, "http://study.lan:8000") {
		t.Fatalf("unexpected config output:\n%s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
}
