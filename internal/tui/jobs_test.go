package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestJobBusKeepsLatestSnapshotPerKind(t *testing.T) {
	bus := newJobBus(zerolog.Nop())
	now := time.Now()

	bus.Record(jobSnapshot{ID: "explain-b", Kind: jobKindExplain, Status: jobStatusRunning, StartedAt: now})
	bus.Record(jobSnapshot{ID: "explain-a", Kind: jobKindExplain, Status: jobStatusFailed, StartedAt: now.Add(-time.Second)})
	if badges := bus.Badges(); len(badges) != 1 || badges[0] != "explain…" {
		t.Fatal("older snapshot must not replace a newer one")
	}

	bus.Record(jobSnapshot{ID: "explain-b", Kind: jobKindExplain, Status: jobStatusSucceeded, StartedAt: now, Duration: 1500 * time.Millisecond})
	bus.Record(jobSnapshot{ID: "summarize-a", Kind: jobKindSummarize, Status: jobStatusFailed, StartedAt: now})

	badges := bus.Badges()
	if len(badges) != 2 {
		t.Fatalf("expected two badges, got %v", badges)
	}
	if badges[0] != "explain ✓ 1.5s" {
		t.Fatalf("unexpected explain badge %q", badges[0])
	}
	if !strings.HasPrefix(badges[1], "summarize ✗") {
		t.Fatalf("unexpected summarize badge %q", badges[1])
	}
}

func TestJobBusStartReturnsCommand(t *testing.T) {
	bus := newJobBus(zerolog.Nop())
	if cmd := bus.Start(jobKindExplain, nil); cmd == nil {
		t.Fatal("start should return a command")
	}
}
