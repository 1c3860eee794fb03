package worker

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ppiankov/triviaflag/internal/model"
)

// Evaluator computes the flags of a single record
type Evaluator interface {
	Evaluate(rec *model.Record) model.Evaluation
}

// RecordJob evaluates one record
type RecordJob struct {
	Index     int
	Record    *model.Record
	Evaluator Evaluator
}

// Execute executes the record job
func (j *RecordJob) Execute(ctx context.Context) Result {
	return &RecordResult{
		Index:      j.Index,
		Evaluation: j.Evaluator.Evaluate(j.Record),
	}
}

// Recover turns a panic during evaluation into empty flags for this record only
func (j *RecordJob) Recover(v any) Result {
	err := fmt.Errorf("record %s: evaluation panicked: %v", j.Record.ID, v)
	return &RecordResult{
		Index: j.Index,
		Evaluation: model.Evaluation{
			Record:   j.Record,
			Flags:    model.EmptyFlags(),
			Warnings: []string{err.Error()},
		},
		Error: err,
	}
}

// RecordResult represents the result of a record job
type RecordResult struct {
	Index      int
	Evaluation model.Evaluation
	Error      error
}

// GetError returns the error from the record result
func (r *RecordResult) GetError() error {
	return r.Error
}

// BatchProcessor evaluates records concurrently
type BatchProcessor struct {
	evaluator   Evaluator
	concurrency int
	progress    io.Writer
}

// NewBatchProcessor creates a new batch processor. progress may be nil.
func NewBatchProcessor(evaluator Evaluator, concurrency int, progress io.Writer) *BatchProcessor {
	return &BatchProcessor{
		evaluator:   evaluator,
		concurrency: concurrency,
		progress:    progress,
	}
}

// countingEvaluator ticks progress after each evaluation
type countingEvaluator struct {
	Evaluator
	progress *Progress
}

func (c countingEvaluator) Evaluate(rec *model.Record) model.Evaluation {
	defer c.progress.Tick()
	return c.Evaluator.Evaluate(rec)
}

// ProcessRecords evaluates every record and returns the evaluations in input
// order. If ctx is cancelled before all records are evaluated it returns ctx.Err().
func (b *BatchProcessor) ProcessRecords(ctx context.Context, records []*model.Record) ([]model.Evaluation, error) {
	if len(records) == 0 {
		return []model.Evaluation{}, nil
	}

	progress := NewProgress(b.progress, "evaluated", len(records), 2*time.Second)
	evaluator := countingEvaluator{Evaluator: b.evaluator, progress: progress}

	// Create worker pool
	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit jobs
	for i, rec := range records {
		if !pool.Submit(&RecordJob{Index: i, Record: rec, Evaluator: evaluator}) {
			break
		}
	}

	// Wait for all jobs to complete
	results := pool.Wait()
	progress.Finish()

	if len(results) != len(records) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("evaluated %d of %d records", len(results), len(records))
	}

	// Place results by record position
	evals := make([]model.Evaluation, len(records))
	for _, result := range results {
		rr, ok := result.(*RecordResult)
		if !ok {
			return nil, fmt.Errorf("unexpected result type %T: %v", result, result.GetError())
		}
		evals[rr.Index] = rr.Evaluation
	}

	return evals, nil
}
