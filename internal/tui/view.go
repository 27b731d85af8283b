package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/studypal/internal/explain"
	"github.com/csheth/studypal/internal/pane"
)

func (m *model) View() string {
	parts := []string{m.heroView(), m.tabsView()}
	switch m.panes.Mode() {
	case pane.Summarizer:
		parts = append(parts, m.summarizer.View(m.spinner.View()))
	default:
		parts = append(parts, m.explainerView())
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	if m.helpVisible {
		parts = append(parts, m.keyLegendView())
	}
	parts = append(parts, m.sessionMeterView())
	return joinNonEmpty(parts)
}

// explainerView draws the Topic Explainer pane from its projection only.
func (m *model) explainerView() string {
	p := explain.Present(m.explainer)
	parts := []string{
		sectionHeaderStyle.Render(pane.Explainer.Title()),
		helperStyle.Render("Enter any topic and get a beginner-friendly explanation."),
	}

	if p.InputDisabled {
		parts = append(parts, helperStyle.Render("> "+p.Topic))
	} else {
		parts = append(parts, m.topicInput.View())
	}

	button := buttonDisabled.Render(p.ButtonLabel)
	switch {
	case p.Loading:
		button = buttonDisabled.Render(fmt.Sprintf("%s %s", m.spinner.View(), p.ButtonLabel))
	case p.CanSubmit:
		button = buttonStyle.Render(p.ButtonLabel)
	}
	parts = append(parts, button)

	if p.ErrorMessage != "" {
		parts = append(parts, errorStyle.Render(p.ErrorMessage))
	}
	if p.HasResult {
		parts = append(parts, m.resultView(p))
	}
	return joinNonEmpty(parts)
}

func (m *model) resultView(p explain.Presentation) string {
	heading := heroTitleStyle.Render(p.Heading)
	if p.Succeeded {
		heading = successDotStyle.Render("●") + " " + heading
	}
	rows := []string{heading, m.viewport.View()}
	if p.Footer != "" {
		rows = append(rows, helperStyle.Render(p.Footer))
	}
	return resultBoxStyle.Width(m.viewport.Width + 2).Render(strings.Join(rows, "\n"))
}

func (m *model) heroView() string {
	if m.layout.compactHero {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			heroTitleStyle.Render("StudyPal-AI"),
			taglineStyle.Render(heroTagline),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, renderLogo(), taglineStyle.Render(heroTagline))
}

func (m *model) tabsView() string {
	tabs := make([]string, 0, len(pane.Modes()))
	for idx, mode := range pane.Modes() {
		label := fmt.Sprintf("%d %s", idx+1, mode.Title())
		if mode == m.panes.Mode() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func (m *model) focusLabel() string {
	if m.focus == focusInput {
		return "INPUT"
	}
	return "NAV"
}

func (m *model) sessionMeterView() string {
	stats := []string{
		m.focusLabel(),
		fmt.Sprintf("Explainer %s", m.explainer.State().Status()),
		fmt.Sprintf("Summarizer %s", m.summarizer.stage),
	}
	if topic := m.explainer.Topic(); m.explainer.State().IsLoading() && topic != "" {
		stats = append(stats, previewText(topic, 24))
	}
	stats = append(stats, m.config.Endpoint)
	stats = append(stats, m.jobs.Badges()...)
	stats = append(stats, "?: help (Esc first)")
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"Tab", "Next pane"},
		{"1/2", "Jump to pane"},
		{"Enter", "Submit"},
		{"Ctrl+R", "Reset pane"},
		{"Ctrl+Y", "Copy explanation"},
		{"↑/↓", "Scroll result"},
		{"Esc", "Leave input"},
		{"i", "Back to input"},
		{"r", "New summary"},
		{"?", "Toggle shortcuts"},
		{"q", "Quit (nav)"},
		{"Ctrl+C", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Keyboard Shortcuts")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Width(20).Render(" " + hint.Description)
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width += 1
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			if y+1 < height && x+1 < width {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			grid[y][x] = cell{r: r, style: logoFaceStyle}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
