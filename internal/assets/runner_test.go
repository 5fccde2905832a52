package assets

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"folio.studio/internal/models"
)

// waveRecorder checks that waves never overlap and never exceed the limit
type waveRecorder struct {
	mu          sync.Mutex
	currentWave int
	inflight    int
	maxInflight int
	perWave     map[int]int
	finished    map[int]int
	overlaps    int
	fail        map[string]bool
}

func newWaveRecorder() *waveRecorder {
	return &waveRecorder{perWave: map[int]int{}, finished: map[int]int{}, fail: map[string]bool{}}
}

func (w *waveRecorder) onWave(wave, total int, jobs []models.AssetJob) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.currentWave = wave
}

func (w *waveRecorder) Process(ctx context.Context, job models.AssetJob) Result {
	w.mu.Lock()
	wave := w.currentWave
	// every call of the previous wave must have finished already
	if wave > 1 && w.finished[wave-1] != w.perWave[wave-1] {
		w.overlaps++
	}
	w.perWave[wave]++
	w.inflight++
	w.maxInflight = max(w.maxInflight, w.inflight)
	fail := w.fail[job.Label()]
	w.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	w.mu.Lock()
	w.inflight--
	w.finished[wave]++
	w.mu.Unlock()

	if fail {
		return Result{Job: job, Outcome: models.OutcomeError, Err: fmt.Errorf("boom")}
	}
	return Result{Job: job, Outcome: models.OutcomeGenerated}
}

func makeJobs(n int) []models.AssetJob {
	jobs := make([]models.AssetJob, n)
	for i := range jobs {
		jobs[i] = models.AssetJob{Kind: models.AssetProject, Theme: "t", Project: fmt.Sprintf("p%d", i)}
	}
	return jobs
}

// genai's transport dependencies start an opencensus worker at package init
var ignoreOpenCensus = goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start")

func TestRunnerWaves(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	for _, tc := range []struct{ n, c int }{{7, 3}, {6, 3}, {1, 4}, {5, 1}, {0, 2}} {
		t.Run(fmt.Sprintf("n=%d,c=%d", tc.n, tc.c), func(t *testing.T) {
			rec := newWaveRecorder()
			r := NewRunner(rec, tc.c, nil)
			r.OnWave = rec.onWave

			summary := r.Run(context.Background(), makeJobs(tc.n))

			wantWaves := (tc.n + tc.c - 1) / tc.c
			assert.Equal(t, wantWaves, summary.Waves)
			assert.Len(t, rec.perWave, wantWaves)
			for wave, n := range rec.perWave {
				assert.LessOrEqual(t, n, tc.c, "wave %d", wave)
			}
			assert.LessOrEqual(t, rec.maxInflight, tc.c)
			assert.Zero(t, rec.overlaps)
			assert.Equal(t, tc.n, summary.Counts[models.OutcomeGenerated])
			assert.NotEmpty(t, summary.RunID)
		})
	}
}

func TestRunnerErrorsDoNotAbortBatch(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	rec := newWaveRecorder()
	jobs := makeJobs(5)
	rec.fail[jobs[1].Label()] = true
	rec.fail[jobs[4].Label()] = true

	summary := NewRunner(rec, 2, nil).Run(context.Background(), jobs)

	assert.Equal(t, 3, summary.Counts[models.OutcomeGenerated])
	assert.Equal(t, 2, summary.Counts[models.OutcomeError])
	assert.Equal(t, []string{"t/p1", "t/p4"}, summary.Failed())
	for i, res := range summary.Results {
		assert.Equal(t, jobs[i], res.Job)
	}
}

func TestRunnerCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := newWaveRecorder()
	summary := NewRunner(rec, 2, nil).Run(ctx, makeJobs(3))

	assert.Zero(t, summary.Waves)
	assert.Equal(t, 3, summary.Counts[models.OutcomeError])
	require.Len(t, summary.Results, 3)
	assert.ErrorIs(t, summary.Results[0].Err, context.Canceled)
}

func TestNewRunnerDefaultsConcurrency(t *testing.T) {
	r := NewRunner(newWaveRecorder(), 0, nil)
	assert.Equal(t, DefaultConcurrency, r.concurrency)
}
