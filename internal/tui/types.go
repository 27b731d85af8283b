package tui

type focusArea int

const (
	focusInput focusArea = iota
	focusPane
)

const heroTagline = "Learn anything, one topic at a time."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	topicCharLimit            = 200
	pathCharLimit             = 512
)

const (
	topicPlaceholder = "Enter a topic (e.g., Photosynthesis, Machine Learning, Quantum Physics)"
	pathPlaceholder  = "Path to a PDF (e.g., ~/notes/lecture-3.pdf)"
)
