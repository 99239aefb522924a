package flow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/okseby/huntr/job"
	"github.com/okseby/huntr/logger"
)

const (
	// DefaultMaxRetries is the number of retries beyond the first attempt.
	DefaultMaxRetries = 3
	// DefaultBaseDelay seeds the exponential backoff schedule.
	DefaultBaseDelay = 2 * time.Second
)

// ExecutorConfig configures retry and rate limiting behavior.
type ExecutorConfig struct {
	// MaxRetries is the retry budget beyond the first attempt; negative
	// values fall back to DefaultMaxRetries.
	MaxRetries int
	// BaseDelay is the delay before the first retry; retry n waits
	// BaseDelay * 2^n. Zero falls back to DefaultBaseDelay.
	BaseDelay time.Duration
	// EventsPerMinute caps handler attempts across all jobs; 0 disables
	// the limiter.
	EventsPerMinute int
}

// Executor resolves named events and runs them with bounded retry,
// exponential backoff, and failure escalation. It is safe for concurrent
// use; concurrently failing events back off independently rather than in
// lock-step.
type Executor struct {
	registry   *Registry
	classifier Classifier
	maxRetries int
	baseDelay  time.Duration
	limiter    *rate.Limiter
	log        *zap.SugaredLogger
}

// NewExecutor creates an executor over a registry. A nil classifier gets
// the default pattern classifier.
func NewExecutor(registry *Registry, classifier Classifier, cfg ExecutorConfig) *Executor {
	if classifier == nil {
		classifier = NewPatternClassifier()
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	var limiter *rate.Limiter
	if cfg.EventsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.EventsPerMinute)/60.0), cfg.EventsPerMinute)
	}
	return &Executor{
		registry:   registry,
		classifier: classifier,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		limiter:    limiter,
		log:        logger.Named("executor"),
	}
}

// Registry returns the executor's registry for handler registration.
func (x *Executor) Registry() *Registry {
	return x.registry
}

// Run executes a named event against a job path with the full retry budget.
// Whatever happens, the returned Result's JobPath points at an existing
// directory; it reflects the Errored location if escalation occurred.
func (x *Executor) Run(ctx context.Context, event, jobPath string, ec *Context) Result {
	return x.run(ctx, event, jobPath, ec, x.maxRetries, true)
}

// RunOnce executes a named event with retries and escalation disabled: a
// failure comes back as a failed Result and nothing more. The escalation
// move uses this so that a failing move to Errored can never re-enter the
// exhaustion path.
func (x *Executor) RunOnce(ctx context.Context, event, jobPath string, ec *Context) Result {
	return x.run(ctx, event, jobPath, ec, 0, false)
}

func (x *Executor) run(ctx context.Context, event, jobPath string, ec *Context, maxRetries int, escalate bool) Result {
	handler := x.registry.Get(event)
	if handler == nil {
		msg := fmt.Sprintf("no handler registered for event %q", event)
		x.log.Errorw("unknown event",
			logger.FieldEvent, event,
			logger.FieldJobPath, jobPath)
		return Failure(jobPath, msg, ErrorRecord{Stage: "resolve", Message: msg})
	}

	entry := handler.Execute
	if ec.DryRun {
		entry = handler.Test
	}

	var res Result
	attempts := 0
	for n := 0; ; n++ {
		attempts = n + 1

		if x.limiter != nil {
			if err := x.limiter.Wait(ctx); err != nil {
				return Failure(jobPath, fmt.Sprintf("cancelled while rate limited: %v", err),
					ErrorRecord{Stage: "rate_limit", Message: err.Error()})
			}
		}

		res = invoke(entry, ctx, jobPath, ec)
		if res.JobPath == "" {
			res.JobPath = jobPath
		}
		if res.OK {
			x.log.Infow("event succeeded",
				logger.FieldEvent, event,
				logger.FieldJobPath, res.JobPath,
				logger.FieldAttempt, attempts)
			return res
		}

		if n >= maxRetries {
			break
		}

		delay := x.baseDelay << uint(n)
		x.log.Warnw("event failed, backing off",
			logger.FieldEvent, event,
			logger.FieldJobPath, res.JobPath,
			logger.FieldAttempt, attempts,
			logger.FieldBackoff, delay,
			logger.FieldError, res.Message)
		// Backoff is a suspension point, never a scheduler block.
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			x.log.Warnw("event cancelled during backoff",
				logger.FieldEvent, event,
				logger.FieldJobPath, res.JobPath)
			return res
		}
	}

	if !escalate {
		// Callers handling a failure already; report and stop.
		return res
	}
	return x.exhausted(ctx, event, attempts, maxRetries, res, ec)
}

// exhausted handles an event whose retry budget is spent: it records the
// failure, classifies it, and either escalates the job to the Errored phase
// or leaves it in place.
func (x *Executor) exhausted(ctx context.Context, event string, attempts, maxRetries int, res Result, ec *Context) Result {
	res.JobPath = x.relocateIfMoved(res.JobPath, ec)

	x.log.Errorw("event failed after all attempts",
		logger.FieldEvent, event,
		logger.FieldJobPath, res.JobPath,
		logger.FieldAttempts, attempts,
		logger.FieldError, res.Message)
	if err := job.AppendLog(res.JobPath, event, fmt.Sprintf("failed after %d attempts: %s", attempts, res.Message)); err != nil {
		x.log.Warnw("failed to append failure to job log",
			logger.FieldJobPath, res.JobPath,
			logger.FieldError, err)
	}

	if !x.classifier.ShouldEscalate(event, attempts, maxRetries, res.Message) {
		x.log.Warnw("systemic failure, job left in current phase",
			logger.FieldEvent, event,
			logger.FieldJobPath, res.JobPath,
			logger.FieldOutcome, "systemic")
		if err := job.AppendLog(res.JobPath, event, "systemic failure, job left in current phase"); err != nil {
			x.log.Warnw("failed to append systemic marker to job log",
				logger.FieldJobPath, res.JobPath,
				logger.FieldError, err)
		}
		return res
	}

	if err := writeDiagnostic(res.JobPath, event, attempts, maxRetries, res); err != nil {
		x.log.Warnw("failed to write diagnostic record",
			logger.FieldJobPath, res.JobPath,
			logger.FieldError, err)
	}

	// Terminal best-effort: a failed escalation move is logged, never
	// escalated further.
	moved := x.RunOnce(ctx, MoveEventName(job.PhaseErrored), res.JobPath, ec)
	if moved.OK {
		res.JobPath = moved.JobPath
		x.log.Infow("job escalated to errored phase",
			logger.FieldEvent, event,
			logger.FieldJobPath, res.JobPath,
			logger.FieldOutcome, "escalated")
	} else {
		x.log.Errorw("escalation move failed",
			logger.FieldEvent, event,
			logger.FieldJobPath, res.JobPath,
			logger.FieldError, moved.Message)
	}
	return res
}

// relocateIfMoved re-finds the job folder when a concurrent writer has
// moved it out from under a failing event, keeping the invariant that a
// Result's JobPath always exists.
func (x *Executor) relocateIfMoved(jobPath string, ec *Context) string {
	if _, err := os.Stat(jobPath); err == nil {
		return jobPath
	}
	if found, ok := job.Locate(ec.JobsRoot, filepath.Base(jobPath)); ok {
		x.log.Warnw("job folder moved by a concurrent writer",
			logger.FieldJobPath, found)
		return found
	}
	return jobPath
}

// invoke calls a handler entry point, converting a panic into a failed
// Result carrying the captured stack. Handler-local errors never propagate
// past the executor boundary as raw panics.
func invoke(entry func(context.Context, string, *Context) Result, ctx context.Context, jobPath string, ec *Context) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("handler panic: %v", r)
			res = Failure(jobPath, msg, ErrorRecord{
				Stage:   "panic",
				Message: msg,
				Detail:  string(debug.Stack()),
			})
		}
	}()
	return entry(ctx, jobPath, ec)
}
