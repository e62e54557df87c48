// Package filelock provides the advisory lock and the staged atomic writes
// used to commit generated catalog files.
package filelock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofrs/flock"

	"github.com/harrison/catalog/internal/models"
)

// ErrLocked is returned by TryLock callers when another process holds the lock
var ErrLocked = errors.New("lock is held by another process")

// FileLock wraps a flock file lock for coordinating access to generated files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file path
func (fl *FileLock) Path() string {
	return fl.path
}

// TryLock attempts to acquire an exclusive lock on the file without blocking.
// Returns true if the lock was acquired, false if the lock is held by another process.
func (fl *FileLock) TryLock() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(fl.path), 0755); err != nil {
		return false, fmt.Errorf("failed to create lock directory: %w", err)
	}
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// WithLock runs fn while holding the lock at path. It never blocks: if the
// lock is already held, ErrLocked is returned and fn is not called.
func WithLock(path string, fn func() error) error {
	lock := NewFileLock(path)

	acquired, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("%s: %w", lock.Path(), ErrLocked)
	}
	defer lock.Unlock()

	return fn()
}

// File is one file to be written atomically
type File struct {
	Path string
	Data []byte
}

type staged struct {
	target string
	temp   string
}

// Batch holds files that have been written to temp files next to their
// targets but not yet renamed into place, and the directories created to
// hold them.
type Batch struct {
	staged  []staged
	created []string
}

// Stage writes every file to a temp file in the target's directory.
// The tag is embedded in temp names (".<base>.<tag>.tmp") so leftovers of a
// crashed run can be traced to it.
//
// Staging is all-or-nothing: if any file cannot be staged, every temp file
// and every directory created so far is removed, no target is touched, and
// the returned error is a *models.WriteError for the failing file.
func Stage(files []File, tag string) (*Batch, error) {
	batch := &Batch{staged: make([]staged, 0, len(files))}

	for _, f := range files {
		batch.created = append(batch.created, missingDirs(filepath.Dir(f.Path))...)
		temp, err := stageOne(f, tag)
		if err != nil {
			batch.Discard()
			return nil, &models.WriteError{Path: f.Path, Err: err}
		}
		batch.staged = append(batch.staged, staged{target: f.Path, temp: temp})
	}

	return batch, nil
}

// missingDirs returns dir and each of its ancestors that do not exist yet,
// deepest first
func missingDirs(dir string) []string {
	var missing []string
	for {
		if _, err := os.Lstat(dir); !errors.Is(err, fs.ErrNotExist) {
			return missing
		}
		missing = append(missing, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			return missing
		}
		dir = parent
	}
}

// stageOne writes one file's data to its temp path and returns that path.
func stageOne(f File, tag string) (_ string, err error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Same directory as the target, so the final rename is atomic
	tempPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(f.Path), tag))
	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	// Ensure temp file is cleaned up on error
	defer func() {
		if err != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err = tempFile.Write(f.Data); err != nil {
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err = tempFile.Sync(); err != nil {
		return "", fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tempFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return tempPath, nil
}

// Len returns the number of staged files
func (b *Batch) Len() int {
	return len(b.staged)
}

// Commit renames every staged temp file onto its target, in staging order.
// On the first failure the remaining temp files are removed and a
// *models.WriteError is returned; targets renamed before the failure keep
// their new content.
func (b *Batch) Commit() error {
	for i, s := range b.staged {
		if err := os.Rename(s.temp, s.target); err != nil {
			b.staged = b.staged[i:]
			b.Discard()
			return &models.WriteError{Path: s.target, Err: fmt.Errorf("failed to rename temp file: %w", err)}
		}
	}
	b.staged = nil
	b.created = nil
	return nil
}

// Discard removes every staged temp file, then the directories staging
// created, without touching the targets. Directories that are no longer
// empty are kept. It is safe to call more than once.
func (b *Batch) Discard() {
	for _, s := range b.staged {
		os.Remove(s.temp)
	}
	b.staged = nil

	// Longest paths first so children go before their parents
	sort.Slice(b.created, func(i, j int) bool { return len(b.created[i]) > len(b.created[j]) })
	for _, dir := range b.created {
		os.Remove(dir)
	}
	b.created = nil
}
