// Package service orchestrates a batch run: discovery, classification,
// output path resolution, scheduled conversion and report building.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/bnema/pdfbatch/internal/domain"
	"github.com/bnema/pdfbatch/internal/infrastructure/logger"
	"github.com/bnema/pdfbatch/internal/port"
)

// Runner owns one batch from discovery to report.
type Runner struct {
	InputRoot  string
	OutputRoot string
	Flatten    bool
	ImageDPI   int
	Workers    int
	JobTimeout time.Duration
	Engines    map[domain.Category]port.Engine
	Manifest   port.Manifest // nil disables run recording
	Progress   bool
}

// Run executes the whole batch and returns its report. The only errors
// returned are fatal pre-flight errors (missing input directory,
// unreadable tree); once jobs exist, the run always completes and every
// discovered file appears in the report.
func (r *Runner) Run(ctx context.Context) (*domain.Report, error) {
	info, err := os.Stat(r.InputRoot)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInputDirMissing, r.InputRoot)
	}
	if err := os.MkdirAll(r.OutputRoot, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	files, err := Discover(r.InputRoot)
	if err != nil {
		return nil, fmt.Errorf("discover input files: %w", err)
	}

	batch := r.buildBatch(files)
	logger.Info().Int("files", len(batch.Jobs)).Str("input", r.InputRoot).Str("output", r.OutputRoot).Msg("batch ready")

	var bar *progressbar.ProgressBar
	if r.Progress && len(batch.Jobs) > 0 {
		bar = progressbar.NewOptions(len(batch.Jobs),
			progressbar.OptionSetDescription("converting"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionShowCount(),
		)
	}

	onDone := func(job *domain.Job) {
		if bar != nil {
			_ = bar.Add(1)
		}
		if job.Status == domain.JobStatusFailed && job.Err != nil {
			logger.Warn().Str("file", job.RelPath).Str("kind", string(job.Err.Kind)).Msg(job.Err.Message)
		}
	}

	sched := NewScheduler(r.Engines, r.Workers, r.JobTimeout, onDone)
	sched.Run(ctx, batch)

	report := domain.BuildReport(batch)

	if r.Manifest != nil {
		if err := r.Manifest.RecordRun(batch, report); err != nil {
			logger.Error().Err(err).Msg("record run manifest")
		}
	}
	return report, nil
}

// buildBatch classifies every discovered file and resolves destinations
// in a single deterministic pass before any concurrent dispatch, so the
// collision table needs no locking. Unsupported files become failed
// jobs immediately; they are reported, never dropped.
func (r *Runner) buildBatch(files []string) *domain.Batch {
	batch := &domain.Batch{
		InputRoot:  r.InputRoot,
		OutputRoot: r.OutputRoot,
		Flatten:    r.Flatten,
		ImageDPI:   r.ImageDPI,
	}

	resolver := NewOutputResolver(r.OutputRoot, r.Flatten)
	for _, rel := range files {
		job := &domain.Job{
			SourcePath: filepath.Join(r.InputRoot, rel),
			RelPath:    rel,
			Category:   domain.Classify(rel),
			Status:     domain.JobStatusPending,
		}
		batch.Jobs = append(batch.Jobs, job)

		if job.Category == domain.CategoryUnsupported {
			job.MarkFailed(domain.NewConvError(domain.KindUnsupportedFormat,
				fmt.Sprintf("unsupported file type: %s", filepath.Ext(rel)), nil))
			continue
		}

		dest, err := resolver.Resolve(rel)
		if err != nil {
			job.MarkFailed(domain.AsConvError(err))
			continue
		}
		job.DestPath = dest
	}
	return batch
}
