package assets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"folio.studio/internal/imagegen"
	"folio.studio/internal/models"
	"folio.studio/internal/prompts"
)

// Result is the outcome of processing one job
type Result struct {
	Job     models.AssetJob
	Outcome models.Outcome
	Prompt  string
	Bytes   int
	Err     error
}

// Options control side effects of the worker
type Options struct {
	DryRun bool
	Force  bool
}

// Worker turns one job into a file on disk
type Worker struct {
	gen    imagegen.Generator
	client *http.Client
	logger *zap.Logger
	opts   Options
}

// NewWorker creates a Worker. client is used to download URL responses.
func NewWorker(gen imagegen.Generator, client *http.Client, logger *zap.Logger, opts Options) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Worker{gen: gen, client: client, logger: logger, opts: opts}
}

// PromptFor composes the prompt for a job
func PromptFor(job models.AssetJob) (string, error) {
	if job.Kind == models.AssetHero {
		return prompts.ComposeHero(job.Theme)
	}
	return prompts.Compose(job.Theme, job.Project)
}

// Process runs a single job. It never panics on bad input and never returns
// an error directly: failures are reported in the Result.
func (w *Worker) Process(ctx context.Context, job models.AssetJob) Result {
	res := Result{Job: job}
	label := job.Label()

	prompt, err := PromptFor(job)
	if err != nil {
		w.logger.Warn("Cannot compose prompt", zap.String("asset", label), zap.Error(err))
		return res.fail(err)
	}
	res.Prompt = prompt

	if w.opts.DryRun {
		res.Outcome = models.OutcomeDry
		return res
	}

	if !w.opts.Force && fileExists(job.Path) {
		w.logger.Debug("Asset exists, skipping", zap.String("asset", label), zap.String("path", job.Path))
		res.Outcome = models.OutcomeSkip
		return res
	}

	if w.gen == nil {
		return res.fail(errors.New("no image generator configured"))
	}

	w.logger.Info("Generating asset", zap.String("asset", label), zap.String("provider", w.gen.Name()))
	img, err := w.gen.Generate(ctx, prompt)
	if err != nil {
		w.logger.Warn("Generation failed", zap.String("asset", label), zap.Error(err))
		return res.fail(err)
	}

	data, err := img.Bytes(ctx, w.client)
	if err != nil {
		w.logger.Warn("Download failed", zap.String("asset", label), zap.Error(err))
		return res.fail(err)
	}

	if err := writeFile(job.Path, data); err != nil {
		w.logger.Warn("Write failed", zap.String("asset", label), zap.Error(err))
		return res.fail(err)
	}

	w.logger.Info("Asset written", zap.String("asset", label), zap.String("path", job.Path), zap.Int("bytes", len(data)))
	res.Outcome = models.OutcomeGenerated
	res.Bytes = len(data)
	return res
}

func (r Result) fail(err error) Result {
	r.Outcome = models.OutcomeError
	r.Err = err
	return r
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeFile writes through a temp file so a failed run never leaves a
// truncated image that a later run would skip
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create asset directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write asset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close asset: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod asset: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename asset: %w", err)
	}
	return nil
}
