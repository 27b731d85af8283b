package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	compactHero    bool
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 12,
		compactHero:    true,
	}
}

// logoWidth is the rendered width of logoArtLines plus shadow and padding.
const logoWidth = 78

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	l.compactHero = width < logoWidth || height < 30

	heroHeight := 9
	if l.compactHero {
		heroHeight = 3
	}
	// tabs, pane heading, input, button, result heading and footer, status bar
	const chrome = 18
	usable := height - heroHeight - chrome
	if usable < 6 {
		usable = 6
	}
	l.viewportHeight = usable
}

type contentBuilder struct {
	builder strings.Builder
}

func (cb *contentBuilder) WriteString(s string) { cb.builder.WriteString(s) }

func (cb *contentBuilder) WriteRune(r rune) { cb.builder.WriteRune(r) }

func (cb *contentBuilder) String() string { return cb.builder.String() }

// explanationContent wraps the explanation body for the result viewport.
func (m *model) explanationContent() string {
	result, ok := m.explainer.State().Result()
	if !ok {
		return ""
	}
	cb := &contentBuilder{}
	wrap := m.wrapWidth(4)
	for idx, paragraph := range strings.Split(result.Explanation, "\n") {
		if idx > 0 {
			cb.WriteRune('\n')
		}
		cb.WriteString(wordwrap.String(paragraph, wrap))
	}
	return cb.String()
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

func previewText(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
