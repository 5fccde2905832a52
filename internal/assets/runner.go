package assets

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"folio.studio/internal/models"
)

// DefaultConcurrency is the wave size when none is configured
const DefaultConcurrency = 3

// Processor handles one job
type Processor interface {
	Process(ctx context.Context, job models.AssetJob) Result
}

// Summary reports a completed batch
type Summary struct {
	RunID    string
	Results  []Result // in job order
	Counts   map[models.Outcome]int
	Waves    int
	Duration time.Duration
}

// Failed returns the labels of jobs that ended in error
func (s *Summary) Failed() []string {
	var labels []string
	for _, r := range s.Results {
		if r.Outcome == models.OutcomeError {
			labels = append(labels, r.Job.Label())
		}
	}
	return labels
}

// Runner executes jobs in fixed-size waves. Each wave runs concurrently and
// must fully settle before the next one starts.
type Runner struct {
	proc        Processor
	concurrency int
	logger      *zap.Logger

	// OnWave, if set, is called before each wave starts
	OnWave func(wave, total int, jobs []models.AssetJob)
}

// NewRunner creates a Runner with the given wave size
func NewRunner(proc Processor, concurrency int, logger *zap.Logger) *Runner {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{proc: proc, concurrency: concurrency, logger: logger}
}

// Run processes every job. Per-job failures are recorded, never propagated.
// When ctx is cancelled no further wave starts and the remaining jobs are
// recorded as errors.
func (r *Runner) Run(ctx context.Context, jobs []models.AssetJob) *Summary {
	start := time.Now()
	summary := &Summary{
		RunID:   uuid.NewString(),
		Results: make([]Result, len(jobs)),
		Counts:  make(map[models.Outcome]int),
	}
	total := (len(jobs) + r.concurrency - 1) / r.concurrency

	r.logger.Info("Starting batch",
		zap.String("run_id", summary.RunID),
		zap.Int("jobs", len(jobs)),
		zap.Int("concurrency", r.concurrency),
		zap.Int("waves", total))

	for lo := 0; lo < len(jobs); lo += r.concurrency {
		hi := min(lo+r.concurrency, len(jobs))
		wave := jobs[lo:hi]

		if err := ctx.Err(); err != nil {
			for i := lo; i < len(jobs); i++ {
				summary.Results[i] = Result{Job: jobs[i], Outcome: models.OutcomeError, Err: err}
			}
			r.logger.Warn("Batch cancelled", zap.Int("remaining", len(jobs)-lo), zap.Error(err))
			break
		}

		summary.Waves++
		if r.OnWave != nil {
			r.OnWave(summary.Waves, total, wave)
		}
		r.logger.Debug("Starting wave", zap.Int("wave", summary.Waves), zap.Int("size", len(wave)))

		var g errgroup.Group
		for i, job := range wave {
			g.Go(func() error {
				summary.Results[lo+i] = r.proc.Process(ctx, job)
				return nil
			})
		}
		_ = g.Wait()
	}

	for _, res := range summary.Results {
		summary.Counts[res.Outcome]++
	}
	summary.Duration = time.Since(start)

	r.logger.Info("Batch complete",
		zap.String("run_id", summary.RunID),
		zap.Int("generated", summary.Counts[models.OutcomeGenerated]),
		zap.Int("skipped", summary.Counts[models.OutcomeSkip]),
		zap.Int("dry", summary.Counts[models.OutcomeDry]),
		zap.Int("errors", summary.Counts[models.OutcomeError]),
		zap.Duration("duration", summary.Duration))

	return summary
}
