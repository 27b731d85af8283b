package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/studypal/internal/explain"
	"github.com/csheth/studypal/internal/pdfdoc"
	"github.com/csheth/studypal/internal/studyapi"
)

type explainResultMsg struct {
	outcome explain.Outcome
}

type summarizeResultMsg struct {
	seq     uint64
	info    pdfdoc.Info
	summary studyapi.Summary
	err     error
}

// Summarizer uploads a document for chunked summarization.
type Summarizer interface {
	Summarize(ctx context.Context, filename string, data []byte) (studyapi.Summary, error)
}

type documentReader func(path string) (pdfdoc.Info, []byte, error)

func explainJob(call *explain.Call) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		outcome := call.Do(ctx)
		return explainResultMsg{outcome: outcome}, outcome.Err
	}
}

func summarizeJob(seq uint64, path string, read documentReader, client Summarizer) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		info, data, err := read(path)
		if err != nil {
			return summarizeResultMsg{seq: seq, info: info, err: err}, err
		}
		summary, err := client.Summarize(ctx, info.Name, data)
		return summarizeResultMsg{seq: seq, info: info, summary: summary, err: err}, err
	}
}
