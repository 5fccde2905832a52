package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.studio/internal/assets"
	"folio.studio/internal/config"
	"folio.studio/internal/imagegen"
	"folio.studio/internal/logging"
	"folio.studio/internal/models"
)

// options holds flag values shared by both commands
type options struct {
	theme       string
	project     string
	projects    bool
	all         bool
	dryRun      bool
	force       bool
	concurrency int
	provider    string
	out         string
	rpm         int
	verbose     bool
}

// Overridden in tests
var (
	newGenerator = defaultGenerator
	newLogger    = logging.NewConsole
	now          = time.Now
)

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate themed illustration assets",
		Long: `Generate themed illustration assets through an image-generation API.

Prompts are composed from each theme's aesthetic and each project's concept.
Images are written to <out>/<theme>/hero.png and
<out>/<theme>/projects/<project>.png. Existing files are skipped unless
--force is given.

Flags:
  --theme X              hero and every project illustration for theme X
  --theme X --projects   project illustrations only
  --theme X --project Y  a single illustration
  --project Y            project Y in every theme
  --all                  everything, every theme

The API key is read from OPENAI_API_KEY (or GEMINI_API_KEY with
--provider imagen).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, assets.Selection{
				Theme:    opts.theme,
				Project:  opts.project,
				Projects: opts.projects,
				All:      opts.all,
			})
		},
	}

	bindCommon(cmd, opts)
	cmd.Flags().StringVar(&opts.project, "project", "", "Project slug")
	cmd.Flags().BoolVar(&opts.projects, "projects", false, "Generate project illustrations only")

	cmd.AddCommand(newHeroesCmd())
	return cmd
}

func newHeroesCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "heroes",
		Short: "Generate theme hero backdrops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, assets.Selection{
				Theme:      opts.theme,
				All:        opts.all,
				HeroesOnly: true,
			})
		},
	}
	bindCommon(cmd, opts)
	return cmd
}

func bindCommon(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.theme, "theme", "", "Theme slug")
	f.BoolVar(&opts.all, "all", false, "Select every theme")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Print prompts without calling the API or writing files")
	f.BoolVar(&opts.force, "force", false, "Overwrite existing files")
	f.IntVar(&opts.concurrency, "concurrency", 0, "Requests per wave (default from config, 3)")
	f.StringVar(&opts.provider, "provider", "", "Image provider: openai or imagen")
	f.StringVar(&opts.out, "out", "", "Asset root directory (default from config)")
	f.IntVar(&opts.rpm, "rpm", -1, "Max requests per minute, 0 for unlimited")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
}

// usageError prints the usage text for a configuration problem and returns
// err for the caller to render. Usage is otherwise silenced so batch failures
// don't print it.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return err
}

func run(cmd *cobra.Command, opts *options, sel assets.Selection) error {
	cfg, err := config.Load()
	if err != nil {
		return usageError(cmd, err)
	}
	gc := &cfg.Generator
	if opts.provider != "" {
		gc.Provider = opts.provider
	}
	if opts.out != "" {
		cfg.AssetsDir = opts.out
	}
	if opts.concurrency > 0 {
		gc.Concurrency = opts.concurrency
	} else if opts.concurrency < 0 {
		return usageError(cmd, fmt.Errorf("--concurrency must be positive, got %d", opts.concurrency))
	}
	if opts.rpm >= 0 {
		gc.RequestsPerMinute = opts.rpm
	}

	apiKey, err := gc.APIKey()
	if err != nil {
		return usageError(cmd, err)
	}

	layout := assets.Layout{Root: cfg.AssetsDir}
	jobs, err := assets.Plan(layout, sel)
	if err != nil {
		return usageError(cmd, err)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	var gen imagegen.Generator
	if !opts.dryRun {
		gen, err = newGenerator(ctx, *gc, apiKey)
		if err != nil {
			return err
		}
		gen = imagegen.WithRateLimit(gen, gc.RequestsPerMinute)
	}

	client := &http.Client{Timeout: gc.DownloadTimeout}
	worker := assets.NewWorker(gen, client, logger, assets.Options{DryRun: opts.dryRun, Force: opts.force})
	runner := assets.NewRunner(worker, gc.Concurrency, logger)

	out := cmd.OutOrStdout()
	runner.OnWave = func(wave, total int, batch []models.AssetJob) {
		fmt.Fprintln(out, styles.wave.Render(fmt.Sprintf("wave %d/%d (%d)", wave, total, len(batch))))
	}

	summary := runner.Run(ctx, jobs)

	if opts.dryRun {
		printPrompts(out, summary)
	}
	printSummary(out, summary)

	if !opts.dryRun && summary.Counts[models.OutcomeGenerated] > 0 {
		if err := updateManifest(layout, gen, summary); err != nil {
			logger.Error("Manifest update failed", zap.Error(err))
			return err
		}
	}

	if failed := summary.Counts[models.OutcomeError]; failed > 0 {
		return fmt.Errorf("%d of %d assets failed", failed, len(jobs))
	}
	return nil
}

func updateManifest(layout assets.Layout, gen imagegen.Generator, summary *assets.Summary) error {
	m, err := assets.LoadManifest(layout.Root)
	if err != nil {
		return err
	}
	assets.Record(m, layout, gen.Name(), summary, now())
	return assets.SaveManifest(layout.Root, m)
}

func defaultGenerator(ctx context.Context, gc config.GeneratorConfig, apiKey string) (imagegen.Generator, error) {
	switch gc.Provider {
	case config.ProviderImagen:
		return imagegen.NewImagenGenerator(ctx, apiKey, gc.Model)
	default:
		return imagegen.NewOpenAIGenerator(apiKey, gc.Model, gc.BaseURL)
	}
}
