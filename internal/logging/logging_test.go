package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesToRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "studypal.log")
	logger, closer, err := New(Options{File: path, Level: zerolog.InfoLevel})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug().Msg("hidden")
	logger.Info().Str("component", "explain").Msg("explanation received")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"message":"explanation received"`) || !strings.Contains(out, `"component":"explain"`) {
		t.Fatalf("record missing from log: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered at info level: %s", out)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Console: true, Writer: &buf, Level: zerolog.WarnLevel, Verbose: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("verbose should log debug records, got %q", buf.String())
	}
}

func TestNoSinkIsNop(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Error().Msg("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}
