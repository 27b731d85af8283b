package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog"

	"github.com/csheth/studypal/internal/pdfdoc"
	"github.com/csheth/studypal/internal/studyapi"
)

type summarizerStage int

const (
	summarizerIdle summarizerStage = iota
	summarizerUploading
	summarizerDone
	summarizerFailed
)

func (s summarizerStage) String() string {
	switch s {
	case summarizerUploading:
		return "uploading"
	case summarizerDone:
		return "done"
	case summarizerFailed:
		return "failed"
	default:
		return "idle"
	}
}

const (
	messageNoFile          = "Please choose a PDF file to summarize"
	messageSummarizeFailed = "Failed to summarize PDF. Make sure the backend is running."
)

// summarizerModel is the PDF Summarizer pane. It keeps its own state and is
// independent of the explainer's request lifecycle.
type summarizerModel struct {
	client Summarizer
	read   documentReader
	jobs   *jobBus
	log    zerolog.Logger

	input    textinput.Model
	viewport viewport.Model
	width    int

	stage   summarizerStage
	seq     uint64
	info    pdfdoc.Info
	summary studyapi.Summary
	err     string
}

func newSummarizerModel(client Summarizer, jobs *jobBus, log zerolog.Logger) summarizerModel {
	input := textinput.New()
	input.Placeholder = pathPlaceholder
	input.CharLimit = pathCharLimit
	input.Width = 70

	vp := viewport.New(80, 12)
	vp.MouseWheelEnabled = true

	return summarizerModel{
		client:   client,
		read:     pdfdoc.Read,
		jobs:     jobs,
		log:      log.With().Str("component", "summarizer").Logger(),
		input:    input,
		viewport: vp,
		width:    80,
	}
}

func (s *summarizerModel) Busy() bool { return s.stage == summarizerUploading }

func (s *summarizerModel) Focus() tea.Cmd {
	if s.stage == summarizerDone || s.stage == summarizerUploading {
		return nil
	}
	return s.input.Focus()
}

func (s *summarizerModel) Blur() { s.input.Blur() }

func (s *summarizerModel) SetSize(width, height int) {
	s.width = width
	s.input.Width = width - 4
	s.viewport.Width = width
	s.viewport.Height = height
	if s.stage == summarizerDone {
		s.viewport.SetContent(s.renderSummary())
	}
}

// Reset drops the current document and any upload still in flight.
func (s *summarizerModel) Reset() tea.Cmd {
	s.seq++
	s.stage = summarizerIdle
	s.info = pdfdoc.Info{}
	s.summary = studyapi.Summary{}
	s.err = ""
	s.input.SetValue("")
	s.viewport.SetContent("")
	return s.input.Focus()
}

// Update handles keys while the pane is visible and results at any time.
func (s *summarizerModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case summarizeResultMsg:
		s.handleResult(msg)
		return nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *summarizerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch s.stage {
	case summarizerUploading:
		return nil
	case summarizerDone:
		switch {
		case msg.Type == tea.KeyRunes && string(msg.Runes) == "r":
			return s.Reset()
		case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown, msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
			var cmd tea.Cmd
			s.viewport, cmd = s.viewport.Update(msg)
			return cmd
		}
		return nil
	}
	if msg.Type == tea.KeyEnter {
		return s.submit()
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *summarizerModel) submit() tea.Cmd {
	path := expandHome(strings.TrimSpace(s.input.Value()))
	if path == "" {
		s.stage = summarizerFailed
		s.err = messageNoFile
		return nil
	}
	if s.client == nil {
		s.stage = summarizerFailed
		s.err = messageSummarizeFailed
		s.log.Error().Msg("no summarization client configured")
		return nil
	}
	s.seq++
	s.stage = summarizerUploading
	s.err = ""
	s.input.Blur()
	s.log.Debug().Uint64("seq", s.seq).Str("path", path).Msg("summary requested")
	return s.jobs.Start(jobKindSummarize, summarizeJob(s.seq, path, s.read, s.client))
}

func (s *summarizerModel) handleResult(msg summarizeResultMsg) {
	if msg.seq != s.seq || s.stage != summarizerUploading {
		s.log.Debug().Uint64("seq", msg.seq).Uint64("latest", s.seq).Msg("discarding stale summary")
		return
	}
	s.info = msg.info
	if msg.err != nil {
		s.stage = summarizerFailed
		s.err = summarizeErrorMessage(msg.err)
		s.log.Error().Err(msg.err).Str("file", msg.info.Name).Msg("summarization failed")
		return
	}
	s.stage = summarizerDone
	s.summary = msg.summary
	s.viewport.SetContent(s.renderSummary())
	s.viewport.GotoTop()
	s.log.Info().
		Str("file", msg.summary.Filename).
		Int("chunks", msg.summary.TotalChunks).
		Float64("processing_time", msg.summary.ProcessingTime).
		Msg("summary received")
}

// summarizeErrorMessage shows local file problems and backend rejections
// verbatim; anything else collapses to a generic message.
func summarizeErrorMessage(err error) string {
	for _, local := range []error{pdfdoc.ErrNotPDF, pdfdoc.ErrEmptyFile, pdfdoc.ErrTooLarge, pdfdoc.ErrNoText} {
		if errors.Is(err, local) {
			return err.Error()
		}
	}
	if errors.Is(err, os.ErrNotExist) {
		return "File not found"
	}
	var statusErr *studyapi.StatusError
	if errors.As(err, &statusErr) && statusErr.Code < 500 && statusErr.Detail != "" {
		return statusErr.Detail
	}
	return messageSummarizeFailed
}

func (s *summarizerModel) View(spinnerFrame string) string {
	parts := []string{
		sectionHeaderStyle.Render("PDF Summarizer"),
		helperStyle.Render("Upload a PDF and get a section-by-section summary."),
	}
	switch s.stage {
	case summarizerUploading:
		parts = append(parts, helperStyle.Render(s.input.Value()))
		parts = append(parts, buttonDisabled.Render(fmt.Sprintf("%s Summarizing...", spinnerFrame)))
	case summarizerDone:
		parts = append(parts, resultBoxStyle.Width(s.viewport.Width + 2).Render(s.viewport.View()))
		parts = append(parts, helperStyle.Render("r: summarize another file • ↑/↓: scroll"))
	default:
		parts = append(parts, s.input.View())
		label := buttonDisabled
		if strings.TrimSpace(s.input.Value()) != "" {
			label = buttonStyle
		}
		parts = append(parts, label.Render("Summarize PDF"))
		if s.err != "" {
			parts = append(parts, errorStyle.Render(s.err))
		}
	}
	return joinNonEmpty(parts)
}

func (s *summarizerModel) renderSummary() string {
	cb := &contentBuilder{}
	wrap := s.width - 4
	if wrap < 20 {
		wrap = 20
	}
	name := s.summary.Filename
	if name == "" {
		name = s.info.Name
	}
	cb.WriteString(successDotStyle.Render("●") + " " + heroTitleStyle.Render("Summary: "+name))
	cb.WriteRune('\n')
	meta := []string{
		fmt.Sprintf("%d sections", s.summary.TotalChunks),
		fmt.Sprintf("%s characters", humanize.Comma(int64(s.summary.TotalCharacters))),
		fmt.Sprintf("%.1fs", s.summary.ProcessingTime),
	}
	if s.info.Size > 0 {
		meta = append(meta, s.info.HumanSize())
	}
	cb.WriteString(helperStyle.Render(strings.Join(meta, " • ")))
	cb.WriteRune('\n')
	if failed := s.summary.FailedChunks(); failed > 0 {
		cb.WriteString(warnStyle.Render(fmt.Sprintf("%d of %d sections could not be summarized", failed, len(s.summary.Summaries))))
		cb.WriteRune('\n')
	}
	for _, chunk := range s.summary.Summaries {
		cb.WriteRune('\n')
		label := fmt.Sprintf("Section %d", chunk.ChunkID)
		if chunk.Success {
			cb.WriteString(sectionHeaderStyle.Render(label))
		} else {
			cb.WriteString(warnStyle.Render("⚠ " + label))
		}
		cb.WriteRune('\n')
		cb.WriteString(indentMultiline(wordwrap.String(chunk.Summary, wrap), "  "))
		cb.WriteRune('\n')
	}
	return cb.String()
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
