package runner

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/usersummary/internal/logger"
	"github.com/osse101/usersummary/internal/metrics"
	"github.com/osse101/usersummary/internal/summary"
)

// Steps is the pair of operations the runner sequences.
type Steps interface {
	FetchUsersAndSummarize(ctx context.Context) summary.Outcome
	TestError(ctx context.Context) summary.Outcome
}

// Runner executes the summarize step and then the error demonstration.
type Runner struct {
	steps    Steps
	gatherer prometheus.Gatherer
}

// New creates a new runner reporting metrics from the default registry
func New(steps Steps) *Runner {
	return &Runner{steps: steps, gatherer: prometheus.DefaultGatherer}
}

// Result holds the outcome of each step in execution order.
type Result struct {
	Summarize summary.Outcome
	ErrorDemo summary.Outcome
}

// Run executes both steps on the calling goroutine; the error demonstration
// starts only after the summarize step has returned. Each step gets its own
// run ID in the logs. The process exits after one run, so the metric totals
// are logged at debug level before returning.
func (r *Runner) Run(ctx context.Context) Result {
	var res Result

	res.Summarize = r.step(ctx, summary.OperationSummarize, r.steps.FetchUsersAndSummarize)
	res.ErrorDemo = r.step(ctx, summary.OperationErrorDemo, r.steps.TestError)

	metrics.LogSnapshot(logger.FromContext(ctx), r.gatherer)

	return res
}

func (r *Runner) step(ctx context.Context, name string, fn func(context.Context) summary.Outcome) summary.Outcome {
	ctx = logger.WithRunID(ctx, logger.GenerateRunID())
	log := logger.FromContext(ctx).With(logger.AttrKeyStep, name)

	log.Debug("Step started")
	out := fn(ctx)
	log.Debug("Step finished", "handled_error", out.Err != nil, "summaries", len(out.Summaries))

	return out
}
