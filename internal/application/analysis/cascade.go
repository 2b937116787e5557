package analysis

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bryanwahyu/chaos-engine/internal/domain/ai"
	domain "github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/infra/ai/prompt"
)

// AttemptState is the state of one entry of the cascade.
type AttemptState string

const (
	AttemptUntried   AttemptState = "untried"
	AttemptSucceeded AttemptState = "succeeded"
	AttemptFailed    AttemptState = "failed"
)

var errNoAttempts = errors.New("no model attempts configured")

// Outcome records what happened to one attempt.
type Outcome struct {
	Attempt ai.ModelAttempt
	State   AttemptState
	Report  *domain.Report
	Err     error
}

// CascadeResult holds one outcome per configured attempt, in priority order.
// Attempts after the winner stay untried.
type CascadeResult struct {
	Outcomes []Outcome
}

// Winner returns the successful outcome, if any.
func (r CascadeResult) Winner() (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.State == AttemptSucceeded {
			return o, true
		}
	}
	return Outcome{}, false
}

// Exhausted reports whether every attempt was tried and failed.
func (r CascadeResult) Exhausted() bool {
	_, ok := r.Winner()
	return !ok
}

// Tried counts attempts that were actually issued.
func (r CascadeResult) Tried() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State != AttemptUntried {
			n++
		}
	}
	return n
}

// LastErr returns the error of the last failed attempt.
func (r CascadeResult) LastErr() error {
	for i := len(r.Outcomes) - 1; i >= 0; i-- {
		if r.Outcomes[i].State == AttemptFailed {
			return r.Outcomes[i].Err
		}
	}
	return errNoAttempts
}

// Cascade tries each attempt in order until one yields a valid report.
// There is no delay between attempts and no re-entry once exhausted.
type Cascade struct {
	Attempts    []ai.ModelAttempt
	Temperature float32
	Log         *zap.Logger
}

// Run folds the attempts left to right and stops at the first success.
func (c Cascade) Run(ctx context.Context, gen ai.Generator, text string, schema *ai.Schema) CascadeResult {
	res := CascadeResult{Outcomes: make([]Outcome, len(c.Attempts))}
	for i, a := range c.Attempts {
		res.Outcomes[i] = Outcome{Attempt: a, State: AttemptUntried}
	}
	for i := range res.Outcomes {
		res.Outcomes[i] = c.try(ctx, gen, text, schema, res.Outcomes[i].Attempt)
		if res.Outcomes[i].State == AttemptSucceeded {
			break
		}
	}
	return res
}

func (c Cascade) try(ctx context.Context, gen ai.Generator, text string, schema *ai.Schema, a ai.ModelAttempt) Outcome {
	log := c.logger().With(zap.String("model", a.Model), zap.String("label", a.Label))
	log.Info("trying model", zap.Int32("thinking_budget", a.ThinkingBudget))

	raw, err := gen.Generate(ctx, ai.GenerateRequest{
		Model:          a.Model,
		Prompt:         text,
		Schema:         schema,
		Temperature:    c.Temperature,
		ThinkingBudget: a.ThinkingBudget,
	})
	if err == nil {
		var report *domain.Report
		if report, err = domain.ParseReport(raw); err == nil {
			log.Info("model succeeded")
			return Outcome{Attempt: a, State: AttemptSucceeded, Report: report}
		}
	}
	log.Warn("model failed", zap.String("error", prompt.Clip(err.Error(), 100)))
	return Outcome{Attempt: a, State: AttemptFailed, Err: err}
}

func (c Cascade) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}
