// internal/form/controller.go
package form

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"claim-dashboard/internal/metrics"
	"claim-dashboard/internal/models"
)

// ErrorMessage is the only failure text ever shown to the user.
const ErrorMessage = "An error occurred. Make sure the backend API is running."

// Predictor scores a claim.
type Predictor interface {
	Predict(ctx context.Context, req *models.ClaimRequest) (*models.ClaimResult, error)
}

// Controller owns the claim form, the last prediction and the last error.
//
// Submissions are not serialized. Two overlapping submissions each send a
// request and whichever response lands last is what the view shows, unless
// WithStaleDiscard is set.
type Controller struct {
	predictor Predictor
	logger    *zap.Logger
	metrics   *metrics.Recorder

	discardStale bool

	mu     sync.Mutex
	state  models.ClaimFormState
	result *models.ClaimResult
	errMsg string
	seq    uint64
}

type Option func(*Controller)

// WithStaleDiscard drops responses that belong to a submission superseded by
// a later one.
func WithStaleDiscard() Option {
	return func(c *Controller) {
		c.discardStale = true
	}
}

func WithMetrics(recorder *metrics.Recorder) Option {
	return func(c *Controller) {
		c.metrics = recorder
	}
}

// NewController creates a controller holding the default form.
func NewController(predictor Predictor, logger *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		predictor: predictor,
		logger:    logger,
		state:     models.DefaultClaimForm(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateField stores value verbatim in the named field. Unknown names leave
// the form untouched.
func (c *Controller) UpdateField(name, value string) {
	c.mu.Lock()
	next, ok := c.state.With(name, value)
	if ok {
		c.state = next
	}
	c.mu.Unlock()

	if !ok {
		c.logger.Debug("ignoring unknown form field", zap.String("field", name))
		return
	}
	c.logger.Debug("form field updated", zap.String("field", name))
}

// State returns a copy of the current form.
func (c *Controller) State() models.ClaimFormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns what the display surface should render right now.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return newView(c.state, c.result, c.errMsg)
}

// Submit clears the previous outcome, posts the current form and records the
// new outcome. Failures never propagate: they become the fixed error message
// and are logged. The returned view is the state right after this
// submission's outcome was stored.
func (c *Controller) Submit(ctx context.Context) View {
	submissionID := uuid.New().String()

	c.mu.Lock()
	c.result = nil
	c.errMsg = ""
	c.seq++
	seq := c.seq
	req := BuildRequest(c.state)
	c.mu.Unlock()

	result, err := c.predictor.Predict(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.discardStale && seq != c.seq {
		c.logger.Warn("discarding response of superseded submission",
			zap.String("submission_id", submissionID),
			zap.Uint64("seq", seq),
			zap.Uint64("latest_seq", c.seq))
		c.metrics.Submission(metrics.OutcomeStale)
		return newView(c.state, c.result, c.errMsg)
	}

	if err != nil {
		c.result = nil
		c.errMsg = ErrorMessage
		c.logger.Error("claim submission failed",
			zap.String("submission_id", submissionID),
			zap.Error(err))
		c.metrics.Submission(metrics.OutcomeFailure)
		return newView(c.state, c.result, c.errMsg)
	}

	c.result = result
	c.errMsg = ""
	c.logger.Info("claim scored",
		zap.String("submission_id", submissionID),
		zap.String("fraudulent", FormatFraudulent(result.IsFraudulent)),
		zap.String("probability", FormatProbability(result.FraudProbability)))
	c.metrics.Submission(metrics.OutcomeSuccess)

	return newView(c.state, c.result, c.errMsg)
}
