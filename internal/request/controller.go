// ABOUTME: Request lifecycle controller owning the single outstanding chat request
// ABOUTME: Idle -> Sending -> (Completed | Cancelled | Failed) -> Idle; late results are dropped

package request

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mauromedda/qnachat/internal/api"
	"github.com/mauromedda/qnachat/internal/log"
)

// ErrAlreadyActive is returned by Start while a request is Sending.
var ErrAlreadyActive = errors.New("a request is already in progress")

// Advisory texts shown in the transcript.
const (
	CancelledAdvisory      = "Generation stopped."
	FailedAdvisory         = "An error occurred while processing your message."
	FallbackFailedAdvisory = "LLM fallback failed."
)

// State is the controller state.
type State int

const (
	Idle State = iota
	Sending
)

func (s State) String() string {
	if s == Sending {
		return "sending"
	}
	return "idle"
}

// Status classifies how a request ended.
type Status int

const (
	Completed Status = iota
	Cancelled
	Failed
)

func (s Status) String() string {
	switch s {
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "completed"
	}
}

// Payload is what the user submitted.
type Payload struct {
	Message  string
	ForceLLM bool
}

// Outcome is the resolution of one request.
type Outcome struct {
	HandleID string
	Status   Status
	Payload  Payload
	Response *api.ChatResponse
	Err      error
}

// Advisory returns the transcript note for a non-completed outcome, or "".
func (o Outcome) Advisory() string {
	switch o.Status {
	case Cancelled:
		return CancelledAdvisory
	case Failed:
		if o.Payload.ForceLLM {
			return FallbackFailedAdvisory
		}
		return FailedAdvisory
	default:
		return ""
	}
}

// SendFunc performs the network exchange. It must honour ctx cancellation.
type SendFunc func(ctx context.Context, p Payload) (*api.ChatResponse, error)

// CancelToken is the cooperative cancellation signal handed to a request.
type CancelToken struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newCancelToken(parent context.Context) *CancelToken {
	ctx, cancel := context.WithCancel(parent)
	return &CancelToken{ctx: ctx, cancel: cancel}
}

// Cancel signals cancellation; safe to call repeatedly.
func (t *CancelToken) Cancel() { t.cancel() }

// Cancelled reports whether Cancel was called or the parent ended.
func (t *CancelToken) Cancelled() bool { return t.ctx.Err() != nil }

// Context returns the context the send function runs under.
func (t *CancelToken) Context() context.Context { return t.ctx }

// Handle is a started request.
type Handle struct {
	ID      string
	Payload Payload

	token *CancelToken
	done  chan struct{}
	out   Outcome
}

// Done is closed once the request resolves.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the request resolves and returns its raw outcome.
func (h *Handle) Wait() Outcome {
	<-h.done
	return h.out
}

// Token returns the handle's cancel token.
func (h *Handle) Token() *CancelToken { return h.token }

// Controller enforces at most one active request.
type Controller struct {
	mu     sync.Mutex
	send   SendFunc
	active *Handle
}

// NewController returns an idle controller using send for every request.
func NewController(send SendFunc) *Controller {
	return &Controller{send: send}
}

// State returns Sending while a request is active.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		return Sending
	}
	return Idle
}

// Active returns the active handle or nil.
func (c *Controller) Active() *Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Start issues p with a fresh cancel token. The returned handle resolves
// whether or not the request is later cancelled; use Finish to apply it.
func (c *Controller) Start(ctx context.Context, p Payload) (*Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		return nil, ErrAlreadyActive
	}

	h := &Handle{
		ID:      uuid.NewString(),
		Payload: p,
		token:   newCancelToken(ctx),
		done:    make(chan struct{}),
	}
	c.active = h
	log.Debug("request: start %s (force_llm=%t)", h.ID, p.ForceLLM)

	go func() {
		defer close(h.done)
		resp, err := c.send(h.token.ctx, p)
		h.out = resolve(h, resp, err)
	}()
	return h, nil
}

func resolve(h *Handle, resp *api.ChatResponse, err error) Outcome {
	out := Outcome{HandleID: h.ID, Payload: h.Payload}
	switch {
	case h.token.Cancelled():
		out.Status = Cancelled
		out.Err = context.Canceled
	case err != nil:
		out.Status = Failed
		out.Err = err
	case resp == nil:
		out.Status = Failed
		out.Err = fmt.Errorf("empty response")
	default:
		out.Status = Completed
		out.Response = resp
	}
	return out
}

// Cancel signals the active token and returns to Idle without waiting for
// the network. It returns false when Idle.
func (c *Controller) Cancel() (Outcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return Outcome{}, false
	}
	h := c.active
	h.token.Cancel()
	c.active = nil
	log.Debug("request: cancelled %s", h.ID)
	return Outcome{HandleID: h.ID, Status: Cancelled, Payload: h.Payload, Err: context.Canceled}, true
}

// Finish applies a resolved outcome. It returns false, and the outcome must
// be ignored, when h is no longer the active request.
func (c *Controller) Finish(h *Handle, out Outcome) (Outcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h == nil || c.active != h {
		log.Debug("request: dropping stale outcome %s", out.HandleID)
		return Outcome{}, false
	}
	c.active = nil
	h.token.Cancel()
	if out.Status == Failed {
		log.Warn("request: %s failed: %v", h.ID, out.Err)
	}
	return out, true
}
