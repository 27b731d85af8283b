// Package explain holds the request lifecycle for the topic explainer: input
// validation, the single owned RequestState, and its read-only projection.
package explain

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Service performs the outbound explanation call.
type Service interface {
	Explain(ctx context.Context, topic string) (Result, error)
}

// ErrMalformedResponse marks a response body that could not be parsed.
var ErrMalformedResponse = errors.New("malformed explanation response")

// statusCoder is implemented by errors that carry an HTTP status code.
type statusCoder interface {
	StatusCode() int
}

// Controller owns the Topic and the RequestState. It is not safe for
// concurrent use: Submit, Complete and Reset must run on the same loop.
type Controller struct {
	service Service
	log     zerolog.Logger

	topic string
	state State
	seq   uint64
}

// NewController returns a controller in the Idle state.
func NewController(service Service, log zerolog.Logger) *Controller {
	return &Controller{
		service: service,
		log:     log.With().Str("component", "explain").Logger(),
		state:   Idle(),
	}
}

// Call is one issued request. Do may run off the owning loop; it touches no
// controller state.
type Call struct {
	seq     uint64
	topic   string
	service Service
}

func (c *Call) Seq() uint64   { return c.seq }
func (c *Call) Topic() string { return c.topic }

// Outcome is what a Call produced, to be handed back to Controller.Complete.
type Outcome struct {
	Seq      uint64
	Topic    string
	Result   Result
	Err      error
	Duration time.Duration
}

// Do performs exactly one outbound call.
func (c *Call) Do(ctx context.Context) Outcome {
	started := time.Now()
	result, err := c.service.Explain(ctx, c.topic)
	return Outcome{
		Seq:      c.seq,
		Topic:    c.topic,
		Result:   result,
		Err:      err,
		Duration: time.Since(started),
	}
}

func (c *Controller) Topic() string { return c.topic }

// SetTopic mirrors the user's current input.
func (c *Controller) SetTopic(topic string) { c.topic = topic }

func (c *Controller) State() State { return c.state }

// Submit validates raw and, when it is usable, moves to Loading and returns
// the call to perform. A blank topic moves to Error without any call.
func (c *Controller) Submit(raw string) (*Call, bool) {
	c.topic = raw
	topic, err := Validate(raw)
	if err != nil {
		c.state = Failed(MessageEmptyTopic)
		c.log.Debug().Err(err).Msg("rejected submission")
		return nil, false
	}
	c.seq++
	c.state = Loading()
	c.log.Debug().Uint64("seq", c.seq).Str("topic", topic).Msg("explanation requested")
	return &Call{seq: c.seq, topic: topic, service: c.service}, true
}

// Complete records an outcome. Outcomes from calls superseded by a newer
// Submit or by Reset are dropped and Complete reports false.
func (c *Controller) Complete(o Outcome) bool {
	if o.Seq != c.seq || !c.state.IsLoading() {
		c.log.Debug().
			Uint64("seq", o.Seq).
			Uint64("latest", c.seq).
			Stringer("state", c.state.Status()).
			Msg("discarding stale explanation outcome")
		return false
	}
	if o.Err != nil {
		c.state = Failed(MessageRequestFailed)
		c.logFailure(o)
		return true
	}
	c.state = Succeeded(o.Result)
	c.log.Info().
		Uint64("seq", o.Seq).
		Str("topic", o.Topic).
		Dur("duration", o.Duration).
		Msg("explanation received")
	return true
}

func (c *Controller) logFailure(o Outcome) {
	evt := c.log.Error().
		Uint64("seq", o.Seq).
		Str("topic", o.Topic).
		Dur("duration", o.Duration).
		Err(o.Err)
	var coded statusCoder
	switch {
	case errors.As(o.Err, &coded):
		evt = evt.Str("kind", "http_status").Int("status", coded.StatusCode())
	case errors.Is(o.Err, ErrMalformedResponse):
		evt = evt.Str("kind", "parse")
	case errors.Is(o.Err, context.DeadlineExceeded):
		evt = evt.Str("kind", "timeout")
	default:
		evt = evt.Str("kind", "transport")
	}
	evt.Msg("explanation request failed")
}

// Reset clears the topic and returns to Idle. Any call still in flight is
// superseded and its outcome will be dropped.
func (c *Controller) Reset() {
	c.seq++
	c.topic = ""
	c.state = Idle()
}

// Explain runs a full submit/call/complete cycle on the calling goroutine.
func (c *Controller) Explain(ctx context.Context, raw string) State {
	call, ok := c.Submit(raw)
	if !ok {
		return c.state
	}
	c.Complete(call.Do(ctx))
	return c.state
}
