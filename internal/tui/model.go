package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/csheth/studypal/internal/explain"
	"github.com/csheth/studypal/internal/pane"
	"github.com/csheth/studypal/internal/studyapi"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Service    explain.Service
	Summarizer Summarizer
	Logger     zerolog.Logger
	// Endpoint is shown in the status bar.
	Endpoint string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Service == nil {
		client := studyapi.New(studyapi.Config{BaseURL: config.Endpoint})
		config.Service = client
		if config.Summarizer == nil {
			config.Summarizer = client
		}
	}
	if config.Endpoint == "" {
		config.Endpoint = studyapi.DefaultBaseURL
	}

	topicInput := textinput.New()
	topicInput.Placeholder = topicPlaceholder
	topicInput.CharLimit = topicCharLimit
	topicInput.Width = 70
	topicInput.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 12)
	vp.MouseWheelEnabled = true

	jobs := newJobBus(config.Logger)

	return &model{
		config:     config,
		log:        config.Logger.With().Str("component", "tui").Logger(),
		explainer:  explain.NewController(config.Service, config.Logger),
		summarizer: newSummarizerModel(config.Summarizer, jobs, config.Logger),
		jobs:       jobs,
		layout:     newPageLayout(),
		focus:      focusInput,
		topicInput: topicInput,
		spinner:    spin,
		viewport:   vp,
		copyText:   clipboard.WriteAll,
	}
}

type model struct {
	config Config
	log    zerolog.Logger

	explainer  *explain.Controller
	summarizer summarizerModel
	panes      pane.Selector
	jobs       *jobBus
	layout     pageLayout
	focus      focusArea

	topicInput textinput.Model
	spinner    spinner.Model
	viewport   viewport.Model

	infoMessage string
	helpVisible bool
	copyText    func(string) error
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case jobSignalMsg:
		m.jobs.Record(msg.Snapshot)
		return m, nil
	case jobResultEnvelope:
		m.jobs.Record(msg.Snapshot)
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case explainResultMsg:
		m.handleExplainResult(msg)
		return m, nil
	case summarizeResultMsg:
		cmd := m.summarizer.Update(msg)
		// A failed upload reopens the path input, unless the user left it.
		if m.summarizer.stage == summarizerFailed && m.focus == focusInput && m.panes.Mode() == pane.Summarizer {
			cmd = tea.Batch(cmd, m.summarizer.Focus())
		}
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		if m.panes.Mode() == pane.Summarizer {
			m.summarizer.viewport, cmd = m.summarizer.viewport.Update(msg)
		} else {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *model) busy() bool {
	return m.explainer.State().IsLoading() || m.summarizer.Busy()
}

func (m *model) resize(width, height int) {
	m.layout.Update(width, height)
	m.viewport.Width = m.layout.viewportWidth
	m.viewport.Height = m.layout.viewportHeight
	m.topicInput.Width = m.layout.viewportWidth - 4
	m.summarizer.SetSize(m.layout.viewportWidth, m.layout.viewportHeight)
	m.viewport.SetContent(m.explanationContent())
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyTab:
		return m.switchPane(m.panes.Next(1))
	case tea.KeyShiftTab:
		return m.switchPane(m.panes.Next(-1))
	case tea.KeyCtrlR:
		return m.resetActivePane()
	case tea.KeyCtrlY:
		m.copyExplanation()
		return nil
	case tea.KeyEsc:
		if m.helpVisible {
			m.helpVisible = false
			return nil
		}
		m.blurInputs()
		return nil
	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
		if m.panes.Mode() == pane.Explainer {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
	}

	if m.focus == focusPane && msg.Type == tea.KeyRunes {
		switch string(msg.Runes) {
		case "1":
			return m.switchPane(pane.Explainer)
		case "2":
			return m.switchPane(pane.Summarizer)
		case "?":
			m.helpVisible = !m.helpVisible
			return nil
		case "i":
			return m.focusInputs()
		case "q":
			return tea.Quit
		}
		if m.panes.Mode() == pane.Explainer {
			return nil
		}
	}

	if m.panes.Mode() == pane.Summarizer {
		wasBusy := m.busy()
		cmd := m.summarizer.Update(msg)
		if !wasBusy && m.busy() {
			cmd = tea.Batch(cmd, m.spinner.Tick)
		}
		return cmd
	}
	return m.handleExplainerKey(msg)
}

func (m *model) handleExplainerKey(msg tea.KeyMsg) tea.Cmd {
	if m.explainer.State().IsLoading() {
		if msg.Type == tea.KeyEnter {
			m.log.Debug().Msg("submit ignored while a request is in flight")
		}
		return nil
	}
	if msg.Type == tea.KeyEnter {
		return m.submitTopic()
	}
	if m.focus != focusInput {
		return nil
	}
	var cmd tea.Cmd
	m.topicInput, cmd = m.topicInput.Update(msg)
	m.explainer.SetTopic(m.topicInput.Value())
	return cmd
}

func (m *model) submitTopic() tea.Cmd {
	m.infoMessage = ""
	call, ok := m.explainer.Submit(m.topicInput.Value())
	if !ok {
		return nil
	}
	m.viewport.SetContent("")
	return tea.Batch(
		m.jobs.Start(jobKindExplain, explainJob(call)),
		m.spinner.Tick,
	)
}

func (m *model) handleExplainResult(msg explainResultMsg) {
	if !m.explainer.Complete(msg.outcome) {
		return
	}
	m.viewport.SetContent(m.explanationContent())
	m.viewport.GotoTop()
}

func (m *model) switchPane(mode pane.Mode) tea.Cmd {
	if err := m.panes.Select(mode); err != nil {
		m.log.Warn().Err(err).Msg("pane switch rejected")
		return nil
	}
	m.infoMessage = ""
	if m.focus == focusInput {
		return m.focusInputs()
	}
	m.blurInputs()
	var cmd tea.Cmd
	if m.busy() {
		cmd = m.spinner.Tick
	}
	return cmd
}

func (m *model) focusInputs() tea.Cmd {
	m.focus = focusInput
	if m.panes.Mode() == pane.Summarizer {
		m.topicInput.Blur()
		return m.summarizer.Focus()
	}
	m.summarizer.Blur()
	return m.topicInput.Focus()
}

func (m *model) blurInputs() {
	m.focus = focusPane
	m.topicInput.Blur()
	m.summarizer.Blur()
}

func (m *model) resetActivePane() tea.Cmd {
	m.infoMessage = ""
	if m.panes.Mode() == pane.Summarizer {
		m.focus = focusInput
		return m.summarizer.Reset()
	}
	m.explainer.Reset()
	m.topicInput.SetValue("")
	m.viewport.SetContent("")
	return m.focusInputs()
}

func (m *model) copyExplanation() {
	result, ok := m.explainer.State().Result()
	if !ok {
		m.infoMessage = "Nothing to copy yet."
		return
	}
	if err := m.copyText(result.Explanation); err != nil {
		m.log.Warn().Err(err).Msg("clipboard write failed")
		m.infoMessage = "Copy failed: clipboard unavailable."
		return
	}
	m.infoMessage = "Explanation copied to clipboard."
}
