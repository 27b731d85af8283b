package explain

import (
	"errors"
	"strings"
)

// ErrEmptyTopic is returned when a topic is blank after trimming.
var ErrEmptyTopic = errors.New("topic is empty")

const (
	// MessageEmptyTopic is shown when the user submits a blank topic.
	MessageEmptyTopic = "Please enter a topic to explain"
	// MessageRequestFailed covers every failure of the explanation call.
	MessageRequestFailed = "Failed to get explanation. Make sure the backend is running."
)

// Validate trims raw and rejects it when nothing is left.
func Validate(raw string) (string, error) {
	topic := strings.TrimSpace(raw)
	if topic == "" {
		return "", ErrEmptyTopic
	}
	return topic, nil
}

// Result is the parsed body of a successful explanation response.
type Result struct {
	Topic       string `json:"topic"`
	Explanation string `json:"explanation"`
	Success     bool   `json:"success"`
}

// Status tags the active member of State.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the lifecycle of one explanation request. Only the payload of the
// active member is populated; use the constructors below.
type State struct {
	status  Status
	result  Result
	message string
}

func Idle() State { return State{status: StatusIdle} }

func Loading() State { return State{status: StatusLoading} }

func Succeeded(r Result) State { return State{status: StatusSuccess, result: r} }

func Failed(message string) State { return State{status: StatusError, message: message} }

func (s State) Status() Status { return s.status }

// Result reports the explanation when the state is Success.
func (s State) Result() (Result, bool) {
	if s.status != StatusSuccess {
		return Result{}, false
	}
	return s.result, true
}

// Message reports the user-facing error when the state is Error.
func (s State) Message() (string, bool) {
	if s.status != StatusError {
		return "", false
	}
	return s.message, true
}

func (s State) IsLoading() bool { return s.status == StatusLoading }
