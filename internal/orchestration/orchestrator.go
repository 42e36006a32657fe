package orchestration

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/seriescalc/internal/errors"
	"github.com/agbru/seriescalc/internal/logging"
	"github.com/agbru/seriescalc/internal/series"
	"github.com/agbru/seriescalc/internal/sysmon"
)

const tracerName = "github.com/agbru/seriescalc/internal/orchestration"

// ComputeFunc has the signature of series.Compute.
type ComputeFunc func(iterations, a, b int64) float64

// Request describes one harness run.
type Request struct {
	Params series.Params
	Scale  float64
	// Strict runs series.Validate first and fails fast instead of computing
	// a non-finite or wrapped result.
	Strict bool
	// Timeout is the limit reported in a TimeoutError when ctx's deadline
	// passes. It does not set a deadline itself.
	Timeout time.Duration
}

type options struct {
	compute ComputeFunc
	logger  logging.Logger
}

// Option configures Execute.
type Option func(*options)

// WithComputeFunc replaces series.Compute. Tests use it to control timing.
func WithComputeFunc(f ComputeFunc) Option {
	return func(o *options) { o.compute = f }
}

// WithLogger sets the logger receiving debug events.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

type measurement struct {
	value    float64
	duration time.Duration
	cpu      sysmon.CPUTime
}

// Execute runs one timed computation.
//
// The wall-clock and CPU timestamps are taken inside the worker goroutine
// immediately before and after the call. The computation has no suspension
// points: if ctx ends first, Execute returns with ctx's error and the worker
// is left to finish on its own.
func Execute(ctx context.Context, req Request, reporter ProgressReporter, out io.Writer, opts ...Option) CalculationResult {
	o := options{compute: series.Compute, logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	res := CalculationResult{Params: req.Params, Scale: req.Scale}
	if req.Strict {
		if err := series.Validate(req.Params); err != nil {
			o.logger.Debug("parameters rejected", logging.String("params", req.Params.String()), logging.Err(err))
			res.Err = err
			return res
		}
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "series.Compute", trace.WithAttributes(
		attribute.Int64("series.iterations", req.Params.Iterations),
		attribute.Int64("series.a", req.Params.A),
		attribute.Int64("series.b", req.Params.B),
	))
	defer span.End()

	done := make(chan struct{})
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, done, out)

	o.logger.Debug("computation started", logging.String("params", req.Params.String()))
	measured := make(chan measurement, 1)
	go func() {
		cpuBefore := sysmon.ProcessCPUTime()
		start := time.Now()
		v := o.compute(req.Params.Iterations, req.Params.A, req.Params.B)
		elapsed := time.Since(start)
		measured <- measurement{value: v, duration: elapsed, cpu: sysmon.ProcessCPUTime().Sub(cpuBefore)}
	}()

	select {
	case m := <-measured:
		res.Value = m.value
		res.Scaled = m.value * req.Scale
		res.Duration = m.duration
		res.CPU = m.cpu
		span.SetAttributes(attribute.Float64("series.result", m.value))
		o.logger.Debug("computation finished",
			logging.Float64("value", m.value),
			logging.Duration("elapsed", m.duration),
			logging.Duration("cpu", m.cpu.Total()))
	case <-ctx.Done():
		res.Err = abandonedError(ctx.Err(), req.Timeout)
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
		o.logger.Debug("computation abandoned", logging.Err(ctx.Err()))
	}

	close(done)
	displayWg.Wait()
	return res
}

// abandonedError describes a run whose context ended first. Deadlines become
// a TimeoutError carrying the configured limit.
func abandonedError(cause error, limit time.Duration) error {
	if errors.Is(cause, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: "series.Compute", Limit: limit}
	}
	return apperrors.CalculationError{Cause: cause}
}

// AnalyzeResult presents a run and returns the process exit code.
// Results go to out and failures to errOut. Non-finite values are presented
// like any other value: only rejected or abandoned runs are failures.
func AnalyzeResult(res CalculationResult, opts PresentationOptions, presenter ResultPresenter, handler ErrorHandler, out, errOut io.Writer) int {
	if res.Err != nil {
		return handler.HandleError(res.Err, res.Duration, errOut)
	}
	presenter.PresentResult(res, opts, out)
	return apperrors.ExitSuccess
}
