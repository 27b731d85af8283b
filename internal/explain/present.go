package explain

import "strings"

const (
	labelSubmit  = "Explain Topic"
	labelLoading = "Explaining..."
	resultFooter = "Explanation generated by AI • StudyPal-AI"
)

// Presentation is everything a renderer needs to draw the explainer pane.
type Presentation struct {
	Topic         string
	InputDisabled bool
	CanSubmit     bool
	ButtonLabel   string
	Loading       bool
	ErrorMessage  string

	HasResult bool
	Heading   string
	Body      string
	Succeeded bool
	Footer    string
}

// Present projects the controller's current state.
func Present(c *Controller) Presentation {
	return PresentState(c.Topic(), c.State())
}

// PresentState is a pure function of topic and state.
func PresentState(topic string, state State) Presentation {
	loading := state.IsLoading()
	p := Presentation{
		Topic:         topic,
		InputDisabled: loading,
		CanSubmit:     !loading && strings.TrimSpace(topic) != "",
		ButtonLabel:   labelSubmit,
		Loading:       loading,
	}
	if loading {
		p.ButtonLabel = labelLoading
	}
	if msg, ok := state.Message(); ok {
		p.ErrorMessage = msg
	}
	if result, ok := state.Result(); ok {
		p.HasResult = true
		p.Heading = "Explanation: " + result.Topic
		p.Body = result.Explanation
		p.Succeeded = result.Success
		if result.Success {
			p.Footer = resultFooter
		}
	}
	return p
}
