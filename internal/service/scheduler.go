package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/pdfbatch/internal/domain"
	"github.com/bnema/pdfbatch/internal/infrastructure/logger"
	"github.com/bnema/pdfbatch/internal/port"
)

// Scheduler runs every dispatchable job in a batch to completion.
// Office jobs get exactly one worker: the office renderer holds
// exclusive process state, so serialization is a correctness invariant,
// not a tuning knob. Image and pdf-passthrough jobs share a bounded
// pool. One job's failure never aborts another; engine errors and
// panics are absorbed at the job boundary.
type Scheduler struct {
	engines    map[domain.Category]port.Engine
	workers    int
	jobTimeout time.Duration
	onJobDone  func(*domain.Job)
}

func NewScheduler(engines map[domain.Category]port.Engine, workers int, jobTimeout time.Duration, onJobDone func(*domain.Job)) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{
		engines:    engines,
		workers:    workers,
		jobTimeout: jobTimeout,
		onJobDone:  onJobDone,
	}
}

// Run executes all pending jobs and returns once every job is terminal.
// Jobs already terminal (unsupported files, resolver failures) are left
// untouched. Channel feed order preserves discovery order within each
// category; cross-category interleaving is unconstrained.
func (s *Scheduler) Run(ctx context.Context, batch *domain.Batch) {
	officeCh := make(chan *domain.Job, len(batch.Jobs))
	poolCh := make(chan *domain.Job, len(batch.Jobs))

	for _, job := range batch.Jobs {
		if job.Terminal() {
			continue
		}
		if job.Category == domain.CategoryOffice {
			officeCh <- job
		} else {
			poolCh <- job
		}
	}
	close(officeCh)
	close(poolCh)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for job := range officeCh {
			s.runJob(ctx, job)
		}
	}()

	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range poolCh {
				s.runJob(ctx, job)
			}
		}()
	}

	wg.Wait()
}

func (s *Scheduler) runJob(ctx context.Context, job *domain.Job) {
	defer func() {
		if r := recover(); r != nil {
			job.MarkFailed(domain.NewConvError(domain.KindEngineFailure, fmt.Sprintf("engine panicked: %v", r), nil))
		}
		if s.onJobDone != nil {
			s.onJobDone(job)
		}
	}()

	if err := ctx.Err(); err != nil {
		job.MarkFailed(domain.NewConvError(domain.KindEngineFailure, "run cancelled before conversion", err))
		return
	}

	eng, ok := s.engines[job.Category]
	if !ok {
		job.MarkFailed(domain.NewConvError(domain.KindEngineFailure, fmt.Sprintf("no engine for category %s", job.Category), nil))
		return
	}

	job.MarkRunning()
	logger.Debug().Str("file", job.RelPath).Str("category", string(job.Category)).Msg("converting")

	jobCtx := ctx
	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	err := eng.Convert(jobCtx, job.SourcePath, job.DestPath)
	if err == nil {
		job.MarkSucceeded()
		return
	}

	ce := domain.AsConvError(err)
	if errors.Is(err, context.DeadlineExceeded) && ce.Kind != domain.KindTimeout {
		ce = domain.NewConvError(domain.KindTimeout, "conversion exceeded job timeout", err)
	}
	job.MarkFailed(ce)
}
