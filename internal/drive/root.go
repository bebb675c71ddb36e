package drive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Root provides thread-safe filesystem operations on the sync directory.
// Paths are drive paths ("/docs/a.txt"), always resolved inside the
// root. Writes take an exclusive lock, reads a shared one, so readers
// never observe a partial hydration.
type Root struct {
	dir string
	mu  sync.RWMutex
}

// NewRoot creates a Root at dir. dir must be absolute (resolved at
// config load time).
func NewRoot(dir string) *Root {
	return &Root{dir: dir}
}

// Dir returns the root directory on disk.
func (r *Root) Dir() string {
	return r.dir
}

// ReadFile reads a file by drive path.
func (r *Root) ReadFile(path string) ([]byte, error) {
	absPath, err := r.resolve(path)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return os.ReadFile(absPath)
}

// WriteFile replaces a file's content atomically: the data is written to
// a temp file in the same directory and renamed over the target. Parent
// directories are created as needed.
func (r *Root) WriteFile(path string, data []byte) error {
	absPath, err := r.resolve(path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, ".hydrate-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting mode for %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), absPath); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}

// Stat returns file info for a drive path.
func (r *Root) Stat(path string) (os.FileInfo, error) {
	absPath, err := r.resolve(path)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return os.Stat(absPath)
}

// DrivePath converts an absolute filesystem path under the root into a
// drive path.
func (r *Root) DrivePath(absPath string) (string, error) {
	rel, err := filepath.Rel(r.dir, absPath)
	if err != nil {
		return "", err
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%q is outside the sync root", absPath)
	}

	return "/" + normalizePath(filepath.ToSlash(rel)), nil
}

// resolve converts a drive path to an absolute path within the root,
// rejecting path traversal attempts.
func (r *Root) resolve(path string) (string, error) {
	rel := normalizePath(path)
	if rel == "" {
		return "", fmt.Errorf("empty path")
	}

	absPath := filepath.Join(r.dir, filepath.FromSlash(rel))
	if !strings.HasPrefix(absPath, r.dir+string(os.PathSeparator)) {
		return "", fmt.Errorf("path traversal blocked: %q resolves outside sync root", path)
	}

	return absPath, nil
}

// normalizePath replaces non-breaking spaces with regular spaces,
// collapses repeated slashes, trims leading and trailing slashes, and
// applies Unicode NFC normalization.
func normalizePath(path string) string {
	path = strings.ReplaceAll(path, "\u00A0", " ")
	path = strings.ReplaceAll(path, "\u202F", " ")

	var b strings.Builder

	prevSlash := false
	for _, r := range path {
		if r == '/' {
			if prevSlash {
				continue
			}

			prevSlash = true
		} else {
			prevSlash = false
		}

		b.WriteRune(r)
	}

	path = strings.Trim(b.String(), "/")

	return norm.NFC.String(path)
}
