// Package asset finds the application's asset folder and reads files from it.
package asset

import (
	"errors"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// DefaultFolderName is the folder searched for when none is configured
const DefaultFolderName = "assets"

// ErrAssetRootNotFound is returned when no origin has the asset
// folder in its ancestry
var ErrAssetRootNotFound = errors.New("failed to find assets folder in parent folders")

// FindAssetsFolder walks upward from start, inclusive, and returns the
// absolute path of the first folder named name it finds. The filesystem
// root is checked last, the walk always terminates there.
func FindAssetsFolder(start, name string) (string, bool) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(current, name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// Origin yields a directory to start searching from
type Origin func() (string, error)

// WorkingDirectory is the process working directory
func WorkingDirectory() (string, error) {
	return os.Getwd()
}

// ExecutableDirectory is the directory holding the running executable
func ExecutableDirectory() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Locator resolves the asset root once and remembers it.
// It is not safe for concurrent use.
type Locator struct {
	name    string
	origins []Origin

	resolved bool
	root     string
}

// NewLocator creates a Locator searching for the folder name from each
// origin in order. Without origins the working directory is tried,
// then the executable directory.
func NewLocator(name string, origins ...Origin) *Locator {
	if name == "" {
		name = DefaultFolderName
	}
	if len(origins) == 0 {
		origins = []Origin{WorkingDirectory, ExecutableDirectory}
	}
	return &Locator{
		name:    name,
		origins: origins,
	}
}

// ResolveAssetRoot returns the asset root. The first successful result
// is cached for the lifetime of the Locator; failures are not.
func (l *Locator) ResolveAssetRoot() (string, error) {
	if l.resolved {
		return l.root, nil
	}

	for idx, origin := range l.origins {
		start, err := origin()
		if err != nil {
			log.WithError(err).WithField("origin", idx).Warn("Asset search origin unavailable")
			continue
		}
		if root, ok := FindAssetsFolder(start, l.name); ok {
			log.WithFields(log.Fields{
				"origin": idx,
				"start":  start,
				"root":   root,
			}).Debug("Asset root resolved")
			l.root = root
			l.resolved = true
			return root, nil
		}
	}
	return "", ErrAssetRootNotFound
}

// Path joins slash separated elements onto the asset root
func (l *Locator) Path(elem ...string) (string, error) {
	root, err := l.ResolveAssetRoot()
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(elem)+1)
	parts = append(parts, root)
	for _, e := range elem {
		parts = append(parts, filepath.FromSlash(e))
	}
	return filepath.Join(parts...), nil
}
