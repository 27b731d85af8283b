package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/studypal/internal/pdfdoc"
	"github.com/csheth/studypal/internal/studyapi"
)

func fixtureSummary() studyapi.Summary {
	return studyapi.Summary{
		Filename:        "lecture.pdf",
		TotalChunks:     2,
		TotalCharacters: 3400,
		Summaries: []studyapi.ChunkSummary{
			{ChunkID: 1, Summary: "Cells are the basic unit of life.", Success: true},
			{ChunkID: 2, Summary: "Failed to summarize this section: timeout", Success: false},
		},
		Success:        true,
		ProcessingTime: 3.25,
	}
}

func startUpload(t *testing.T, m *model, path string) {
	t.Helper()
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, path)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("enter should start the upload job")
	}
	if !m.summarizer.Busy() {
		t.Fatalf("expected uploading, got %v", m.summarizer.stage)
	}
}

func TestSummarizerRendersSummary(t *testing.T) {
	m, _, _ := newTestModel(t)
	startUpload(t, m, "lecture.pdf")

	m.Update(summarizeResultMsg{
		seq:     m.summarizer.seq,
		info:    pdfdoc.Info{Name: "lecture.pdf", Size: 2048},
		summary: fixtureSummary(),
	})
	if m.summarizer.stage != summarizerDone {
		t.Fatalf("expected done, got %v", m.summarizer.stage)
	}
	view := m.View()
	for _, want := range []string{"Summary: lecture.pdf", "2 sections", "3,400 characters", "Cells are the basic unit of life.", "⚠ Section 2", "1 of 2 sections"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.summarizer.stage != summarizerIdle || m.summarizer.input.Value() != "" {
		t.Fatalf("r should reset the summarizer, got %v", m.summarizer.stage)
	}
}

func TestSummarizerEmptyPath(t *testing.T) {
	m, _, client := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("empty path must not start a job")
	}
	if m.summarizer.err != messageNoFile || len(client.files) != 0 {
		t.Fatalf("expected no-file message, got %q", m.summarizer.err)
	}
}

func TestSummarizerResultWhileExplainerVisible(t *testing.T) {
	m, _, _ := newTestModel(t)
	startUpload(t, m, "lecture.pdf")
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})

	m.Update(jobResultEnvelope{
		Snapshot: jobSnapshot{Kind: jobKindSummarize, Status: jobStatusSucceeded},
		Payload:  summarizeResultMsg{seq: m.summarizer.seq, summary: fixtureSummary()},
	})
	if m.summarizer.stage != summarizerDone {
		t.Fatalf("summary should land while hidden, got %v", m.summarizer.stage)
	}
}

func TestSummarizerDropsResultAfterReset(t *testing.T) {
	m, _, _ := newTestModel(t)
	startUpload(t, m, "lecture.pdf")
	stale := m.summarizer.seq
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	m.Update(summarizeResultMsg{seq: stale, summary: fixtureSummary()})
	if m.summarizer.stage != summarizerIdle {
		t.Fatalf("stale summary should be dropped, got %v", m.summarizer.stage)
	}
}

func TestSummarizeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"local validation", fmt.Errorf("notes.txt: %w", pdfdoc.ErrNotPDF), "notes.txt: only PDF files are supported"},
		{"backend rejection", &studyapi.StatusError{Code: 422, Detail: "No text content found in PDF"}, "No text content found in PDF"},
		{"backend crash", &studyapi.StatusError{Code: 500, Detail: "Traceback"}, messageSummarizeFailed},
		{"transport", errors.New("connection refused"), messageSummarizeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarizeErrorMessage(tt.err); got != tt.want {
				t.Fatalf("summarizeErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizerFailureKeepsPathForRetry(t *testing.T) {
	m, _, _ := newTestModel(t)
	startUpload(t, m, "scan.pdf")
	m.Update(summarizeResultMsg{seq: m.summarizer.seq, err: &studyapi.StatusError{Code: 422, Detail: "No text content found in PDF"}})

	if m.summarizer.stage != summarizerFailed {
		t.Fatalf("expected failed, got %v", m.summarizer.stage)
	}
	if m.summarizer.input.Value() != "scan.pdf" {
		t.Fatalf("path should be kept, got %q", m.summarizer.input.Value())
	}
	if view := m.View(); !strings.Contains(view, "No text content found in PDF") {
		t.Fatalf("rejection detail missing:\n%s", view)
	}
}

func TestSummarizerFailureRefocusesPathInput(t *testing.T) {
	m, _, _ := newTestModel(t)
	startUpload(t, m, "scan.pdf")
	m.Update(summarizeResultMsg{seq: m.summarizer.seq, err: errors.New("connection refused")})

	typeText(m, "x")
	if got := m.summarizer.input.Value(); got != "scan.pdfx" {
		t.Fatalf("input should accept typing after failure, got %q", got)
	}
}

func TestSummarizerFailureKeepsNavFocus(t *testing.T) {
	m, _, _ := newTestModel(t)
	startUpload(t, m, "lecture.pdf")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(summarizeResultMsg{seq: m.summarizer.seq, err: errors.New("connection refused")})

	if m.focusLabel() != "NAV" || m.summarizer.input.Focused() {
		t.Fatalf("failure must not steal focus: label=%s focused=%v", m.focusLabel(), m.summarizer.input.Focused())
	}
	typeText(m, "xyz")
	if got := m.summarizer.input.Value(); got != "lecture.pdf" {
		t.Fatalf("keys in nav focus must not reach the input, got %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	if !m.summarizer.input.Focused() {
		t.Fatal("i should return focus to the path input")
	}
}
