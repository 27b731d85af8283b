package tui

import (
	"context"
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

type jobKind string

type jobStatus string

const (
	jobKindExplain   jobKind = "explain"
	jobKindSummarize jobKind = "summarize"
)

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
)

type jobSnapshot struct {
	ID          string
	Kind        jobKind
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
	Duration    time.Duration
}

type jobSignalMsg struct {
	Snapshot jobSnapshot
}

type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

// jobBus runs work off the event loop and reports back through messages.
// Its bookkeeping is only touched from Update.
type jobBus struct {
	log    zerolog.Logger
	latest map[jobKind]jobSnapshot
}

func newJobBus(log zerolog.Logger) *jobBus {
	return &jobBus{
		log:    log.With().Str("component", "jobs").Logger(),
		latest: map[jobKind]jobSnapshot{},
	}
}

func (b *jobBus) Start(kind jobKind, runner jobRunner) tea.Cmd {
	id := fmt.Sprintf("%s-%s", kind, xid.New().String())
	started := time.Now()
	startSnapshot := jobSnapshot{ID: id, Kind: kind, Status: jobStatusRunning, StartedAt: started}
	startCmd := func() tea.Msg {
		return jobSignalMsg{Snapshot: startSnapshot}
	}

	log := b.log
	runCmd := func() tea.Msg {
		ctx := context.Background()
		payload, err := runner(ctx)
		snapshot := jobSnapshot{
			ID:          id,
			Kind:        kind,
			StartedAt:   started,
			CompletedAt: time.Now(),
		}
		if err != nil {
			snapshot.Status = jobStatusFailed
			snapshot.Err = err.Error()
		} else {
			snapshot.Status = jobStatusSucceeded
		}
		snapshot.Duration = snapshot.CompletedAt.Sub(started)
		log.Debug().
			Str("job", id).
			Str("status", string(snapshot.Status)).
			Dur("duration", snapshot.Duration).
			AnErr("error", err).
			Msg("job finished")
		return jobResultEnvelope{Snapshot: snapshot, Payload: payload}
	}

	return tea.Sequence(startCmd, runCmd)
}

// Record keeps the most recent snapshot per kind for the status bar.
func (b *jobBus) Record(snapshot jobSnapshot) {
	if current, ok := b.latest[snapshot.Kind]; ok && current.StartedAt.After(snapshot.StartedAt) {
		return
	}
	b.latest[snapshot.Kind] = snapshot
}

func (b *jobBus) Badges() []string {
	kinds := make([]string, 0, len(b.latest))
	for kind := range b.latest {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	badges := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		snapshot := b.latest[jobKind(kind)]
		switch snapshot.Status {
		case jobStatusRunning:
			badges = append(badges, fmt.Sprintf("%s…", kind))
		case jobStatusSucceeded:
			badges = append(badges, fmt.Sprintf("%s ✓ %s", kind, snapshot.Duration.Round(100*time.Millisecond)))
		case jobStatusFailed:
			badges = append(badges, fmt.Sprintf("%s ✗", kind))
		}
	}
	return badges
}
