// Package artifact persists fetched SVG documents to disk.
// A write happens only when the fetched bytes differ from the file already
// on disk, and every write goes through a temp file and rename so a reader
// never observes a truncated artifact.
package artifact

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/ctxutil"
	"github.com/Beebek-Sharma/pacsync/internal/domain"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

// Store writes artifacts when their content changed.
type Store struct {
	dryRun bool
}

// Option configures a Store.
type Option func(*Store)

// WithDryRun makes Sync report changes without writing anything.
func WithDryRun(dryRun bool) Option {
	return func(s *Store) { s.dryRun = dryRun }
}

// NewStore creates a Store.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DryRun reports whether the store skips writes.
func (s *Store) DryRun() bool {
	return s.dryRun
}

// Read returns the current content at path.
// A missing file is Absent; any other failure is Unreadable and carries the error.
func Read(path string) domain.Existing {
	data, err := os.ReadFile(path) //#nosec G304 -- artifact path comes from configuration
	switch {
	case err == nil:
		return domain.Existing{State: domain.ExistingPresent, Content: data}
	case stderrors.Is(err, fs.ErrNotExist):
		return domain.Existing{State: domain.ExistingAbsent}
	default:
		return domain.Existing{State: domain.ExistingUnreadable, Err: err}
	}
}

// Sync writes content to path unless the file already holds exactly those bytes.
//
// The returned result is always populated. When the write fails the error
// wraps ErrWriteFailed and the result's Err is set to the same error.
func (s *Store) Sync(ctx context.Context, theme domain.Theme, path, content string) (domain.SyncResult, error) {
	result := domain.SyncResult{
		Theme: theme,
		Path:  path,
		Bytes: len(content),
	}

	if err := ctxutil.Canceled(ctx); err != nil {
		return s.fail(result, err)
	}

	logger := zerolog.Ctx(ctx).With().
		Str("component", "artifact").
		Str("theme", theme.String()).
		Str("path", path).
		Logger()

	existing := Read(path)
	result.Previous = existing.State

	if existing.State == domain.ExistingUnreadable {
		logger.Warn().Err(existing.Err).Msg("existing artifact unreadable, rewriting")
	}

	data := []byte(content)
	if existing.Equal(data) {
		logger.Info().Msgf("No change for %s", path)
		return result, nil
	}
	result.Changed = true

	if s.dryRun {
		logger.Info().Bool("dry_run", true).Msgf("Would write %s", path)
		return result, nil
	}

	if err := writeArtifact(path, data, filePerm(path, existing)); err != nil {
		logger.Error().Err(err).Msg("failed to write artifact")
		return s.fail(result, err)
	}

	result.Written = true
	logger.Info().Int("bytes", len(data)).Msgf("Wrote %s", path)
	return result, nil
}

func (s *Store) fail(result domain.SyncResult, err error) (domain.SyncResult, error) {
	wrapped := fmt.Errorf("%w: %s: %w", errors.ErrWriteFailed, result.Path, err)
	result.Err = wrapped
	result.Error = wrapped.Error()
	return result, wrapped
}

// filePerm keeps the permission bits of an existing file.
func filePerm(path string, existing domain.Existing) os.FileMode {
	if existing.State != domain.ExistingPresent {
		return constants.ArtifactFilePerm
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return constants.ArtifactFilePerm
	}
	return info.Mode().Perm()
}

func writeArtifact(path string, data []byte, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.ArtifactDirPerm); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return atomicWrite(path, data, perm)
}

// atomicWrite writes data to a temp file next to path, syncs it and renames
// it over path.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Sync before rename so the new name never points at unflushed data.
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
