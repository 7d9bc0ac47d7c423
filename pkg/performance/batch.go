package performance

import (
	"context"
	"fmt"
	"runtime"

	"github.com/peter-kozarec/plutus/pkg/common"
	"github.com/peter-kozarec/plutus/pkg/utility"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Job is the period history of one instrument, oldest first.
type Job struct {
	Symbol  string
	Periods []common.PeriodPerformance
}

type Result struct {
	Symbol string
	Report Report
	Err    error
}

type Batch struct {
	RunID   utility.ExecutionID
	Results []Result
}

func (b Batch) Failed() []Result {
	var failed []Result
	for _, result := range b.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

type EvaluatorOption func(*Evaluator)

func WithWorkers(workers int) EvaluatorOption {
	return func(e *Evaluator) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// Evaluator builds reports for many instruments in parallel. Reports share
// nothing, so the only coordination is the worker limit.
type Evaluator struct {
	logger  *zap.Logger
	params  Parameters
	workers int
	build   func(Job, Parameters) (Report, error)
}

func NewEvaluator(logger *zap.Logger, params Parameters, options ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		logger:  logger,
		params:  params,
		workers: runtime.GOMAXPROCS(0),
		build:   buildReport,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Evaluate returns one result per job in input order. A failing job never
// aborts the others; jobs not yet started when ctx is cancelled fail with
// ctx.Err().
func (e *Evaluator) Evaluate(ctx context.Context, jobs []Job) Batch {
	batch := Batch{
		RunID:   utility.NewExecutionID(),
		Results: make([]Result, len(jobs)),
	}
	logger := e.logger.With(zap.Stringer("run_id", batch.RunID))

	var g errgroup.Group
	g.SetLimit(e.workers)

	for i, job := range jobs {
		batch.Results[i].Symbol = job.Symbol
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				batch.Results[i].Err = err
				return nil
			}
			report, err := e.evaluate(job)
			if err != nil {
				logger.Warn("unable to evaluate instrument", zap.String("symbol", job.Symbol), zap.Error(err))
				batch.Results[i].Err = err
				return nil
			}
			batch.Results[i].Report = report
			return nil
		})
	}
	_ = g.Wait()

	logger.Info("batch evaluated",
		zap.Int("instruments", len(jobs)),
		zap.Int("failed", len(batch.Failed())))

	return batch
}

// evaluate turns a panic of one job into that job's error, so it cannot
// escape through the errgroup and take the other results with it.
func (e *Evaluator) evaluate(job Job) (report Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report, err = Report{}, fmt.Errorf("evaluating %s panicked: %v", job.Symbol, r)
		}
	}()
	return e.build(job, e.params)
}

func buildReport(job Job, params Parameters) (Report, error) {
	return NewReportFromPeriods(job.Periods, params)
}
