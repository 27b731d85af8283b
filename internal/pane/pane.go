// Package pane tracks which of the two mutually exclusive panes is visible.
package pane

import "fmt"

// Mode identifies a pane.
type Mode int

const (
	Explainer Mode = iota
	Summarizer
)

var modes = []Mode{Explainer, Summarizer}

func (m Mode) String() string {
	switch m {
	case Explainer:
		return "explainer"
	case Summarizer:
		return "summarizer"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Title is the label shown on the pane's tab.
func (m Mode) Title() string {
	switch m {
	case Explainer:
		return "Topic Explainer"
	case Summarizer:
		return "PDF Summarizer"
	default:
		return m.String()
	}
}

// Valid reports whether m is one of the known panes.
func (m Mode) Valid() bool {
	return m == Explainer || m == Summarizer
}

// Modes lists every pane in tab order.
func Modes() []Mode {
	return append([]Mode(nil), modes...)
}

// Selector holds the visible pane. The zero value shows the explainer.
type Selector struct {
	mode Mode
}

func (s *Selector) Mode() Mode { return s.mode }

// Select switches to mode.
func (s *Selector) Select(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown pane %s", mode)
	}
	s.mode = mode
	return nil
}

// Next cycles forward (delta > 0) or backward through the panes.
func (s *Selector) Next(delta int) Mode {
	idx := int(s.mode)
	n := len(modes)
	idx = ((idx+delta)%n + n) % n
	s.mode = modes[idx]
	return s.mode
}
