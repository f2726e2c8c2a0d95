// Package runner orchestrates one pacsync run: fetch every variant, then
// write the ones whose content changed.
package runner

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Beebek-Sharma/pacsync/internal/clock"
	"github.com/Beebek-Sharma/pacsync/internal/config"
	"github.com/Beebek-Sharma/pacsync/internal/domain"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

// Fetcher retrieves the SVG document for one theme.
type Fetcher interface {
	Fetch(ctx context.Context, username string, theme domain.Theme) (string, error)
}

// Syncer writes a document to its artifact path when it changed.
type Syncer interface {
	Sync(ctx context.Context, theme domain.Theme, path, content string) (domain.SyncResult, error)
}

// Runner runs the fetch-then-sync sequence for the configured variants.
type Runner struct {
	cfg     *config.Config
	fetcher Fetcher
	syncer  Syncer
	clock   clock.Clock
	newID   func() string
	dryRun  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock sets the clock used to timestamp the report.
func WithClock(clk clock.Clock) Option {
	return func(r *Runner) { r.clock = clk }
}

// WithRunID sets the generator for run ids.
func WithRunID(fn func() string) Option {
	return func(r *Runner) { r.newID = fn }
}

// WithDryRun marks the report as a dry run. Skipping the writes themselves
// is the Syncer's job.
func WithDryRun(dryRun bool) Option {
	return func(r *Runner) { r.dryRun = dryRun }
}

// New creates a Runner. cfg must already be validated.
func New(cfg *config.Config, fetcher Fetcher, syncer Syncer, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, errors.ErrConfigNil
	}
	if fetcher == nil || syncer == nil {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "runner needs a fetcher and a syncer")
	}

	r := &Runner{
		cfg:     cfg,
		fetcher: fetcher,
		syncer:  syncer,
		clock:   clock.RealClock{},
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Variants returns the variants in the order they are processed.
func (r *Runner) Variants() []domain.Variant {
	return []domain.Variant{
		{Theme: domain.ThemeLight, Path: r.cfg.Paths.Light},
		{Theme: domain.ThemeDark, Path: r.cfg.Paths.Dark},
	}
}

// Run fetches every variant and then syncs each one.
//
// If any fetch fails, nothing is written. When its retries ran out the error
// is an *errors.ExitCode2Error wrapping the *domain.FetchError; a canceled
// fetch returns the FetchError alone. Write failures do not stop the
// remaining variants; each one matches ErrWriteFailed and they are joined
// into the returned error. The report is returned in every case.
func (r *Runner) Run(ctx context.Context) (*domain.Report, error) {
	report := &domain.Report{
		RunID:     r.newID(),
		Username:  r.cfg.Username,
		DryRun:    r.dryRun,
		Results:   make([]domain.SyncResult, 0, 2),
		StartedAt: r.clock.Now(),
	}
	defer func() { report.FinishedAt = r.clock.Now() }()

	logger := zerolog.Ctx(ctx).With().
		Str("run_id", report.RunID).
		Str("username", report.Username).
		Logger()
	ctx = logger.WithContext(ctx)

	variants := r.Variants()

	contents := make([]string, len(variants))
	for i, v := range variants {
		content, err := r.fetcher.Fetch(ctx, r.cfg.Username, v.Theme)
		if err != nil {
			logger.Error().Err(err).Str("theme", v.Theme.String()).Msg("fetch failed, nothing written")
			return report, fetchFailure(err)
		}
		contents[i] = content
	}

	var writeErrs []error
	for i, v := range variants {
		res, err := r.syncer.Sync(ctx, v.Theme, v.Path, contents[i])
		report.Results = append(report.Results, res)
		if err != nil {
			writeErrs = append(writeErrs, err)
		}
	}
	report.Changed = report.AnyChanged()

	if report.Changed {
		logger.Info().Msg("One or more SVGs changed.")
	} else {
		logger.Info().Msg("No changes to SVGs.")
	}

	if len(writeErrs) > 0 {
		return report, fmt.Errorf("%d of %d variant(s) not written: %w",
			len(writeErrs), len(variants), stderrors.Join(writeErrs...))
	}
	return report, nil
}

// fetchFailure marks a fetch whose retries ran out for exit code 2. A fetch
// stopped by cancellation is returned unchanged.
func fetchFailure(err error) error {
	if fe, ok := domain.AsFetchError(err); ok && fe.Exhausted() {
		return errors.NewExitCode2Error(err)
	}
	return err
}
