// Package seeders runs the deployment pipeline: an ordered list of
// in-process steps executed one after another until the first failure.
//
//	p := seeders.New(
//	    seeders.MigrateStep(db),
//	    seeders.AdminStep(adminSvc, params, nil),
//	    seeders.SeedStep(seedSvc, catalog.Default(), nil),
//	).WithLock(locker)
//	sum, err := p.Run(ctx)
package seeders

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/shashiranjanraj/rentaldeploy/pkg/lock"
	"github.com/shashiranjanraj/rentaldeploy/pkg/logger"
	"github.com/shashiranjanraj/rentaldeploy/pkg/metrics"
)

// Step is one unit of the pipeline. Run returns a short human-readable
// message on success.
type Step struct {
	Name        string
	Description string
	Run         func(ctx context.Context) (string, error)
}

// Result is the outcome of one attempted step.
type Result struct {
	Step     string        `json:"step"`
	OK       bool          `json:"ok"`
	Message  string        `json:"message,omitempty"`
	Err      error         `json:"-"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Summary is the tally of a pipeline run.
type Summary struct {
	Results   []Result `json:"results"`
	Attempted int      `json:"attempted"`
	Succeeded int      `json:"succeeded"`
	Total     int      `json:"total"`
	OK        bool     `json:"ok"`
}

// Failed returns the failing step's result, or nil.
func (s Summary) Failed() *Result {
	for i := range s.Results {
		if !s.Results[i].OK {
			return &s.Results[i]
		}
	}
	return nil
}

// Reporter is told about each step as the pipeline progresses.
type Reporter interface {
	StepStarted(step Step, index, total int)
	StepFinished(step Step, res Result)
}

// Pipeline runs steps in order.
type Pipeline struct {
	steps    []Step
	reporter Reporter
	locker   lock.Locker
}

func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps, locker: lock.NoopLocker{}}
}

// WithReporter sets the progress reporter.
func (p *Pipeline) WithReporter(r Reporter) *Pipeline {
	p.reporter = r
	return p
}

// WithLock makes Run hold l for the whole run.
func (p *Pipeline) WithLock(l lock.Locker) *Pipeline {
	if l != nil {
		p.locker = l
	}
	return p
}

// Steps returns the configured steps.
func (p *Pipeline) Steps() []Step {
	return p.steps
}

// Run executes the steps in order and stops at the first failure; later
// steps are not attempted. The error is non-nil only when the lock could
// not be taken, in which case no step ran. Step failures are reported in
// the Summary.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	log := logger.WithCtx(ctx)
	sum := Summary{Total: len(p.steps), Results: []Result{}}

	release, err := p.locker.Acquire(ctx)
	if err != nil {
		return sum, fmt.Errorf("pipeline: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			log.Warn("pipeline: release lock", "error", err)
		}
	}()

	for i, step := range p.steps {
		if p.reporter != nil {
			p.reporter.StepStarted(step, i+1, len(p.steps))
		}
		log.Info("pipeline: step started", "step", step.Name, "index", i+1, "total", len(p.steps))

		res := runStep(ctx, step)
		sum.Attempted++
		sum.Results = append(sum.Results, res)
		metrics.RecordStep(step.Name, res.OK, res.Duration)

		if p.reporter != nil {
			p.reporter.StepFinished(step, res)
		}

		if !res.OK {
			log.Error("pipeline: step failed", "step", step.Name, "duration", res.Duration, "error", res.Err)
			return sum, nil
		}
		sum.Succeeded++
		log.Info("pipeline: step done", "step", step.Name, "duration", res.Duration)
	}

	sum.OK = sum.Succeeded == sum.Total
	return sum, nil
}

func runStep(ctx context.Context, step Step) (res Result) {
	res.Step = step.Name
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.WithCtx(ctx).Error("pipeline: panic recovered", "step", step.Name, "panic", r, "stack", string(debug.Stack()))
			res.OK = false
			res.Err = fmt.Errorf("panic: %v", r)
		}
		res.Duration = time.Since(start)
		if res.Err != nil {
			res.Error = res.Err.Error()
		}
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	msg, err := step.Run(ctx)
	res.Message = msg
	res.Err = err
	res.OK = err == nil
	return res
}
