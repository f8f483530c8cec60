package asset

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/devblok/fun/utility/kar"
	"golang.org/x/exp/mmap"
)

// Source reads asset files by slash separated names relative
// to the asset root. Sources never write.
type Source interface {
	ReadFile(name string) ([]byte, error)
	Close() error
}

// Dir returns a Source reading straight from the asset root folder
func Dir(root string) Source {
	return dirSource(root)
}

type dirSource string

func (d dirSource) ReadFile(name string) ([]byte, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(string(d), filepath.FromSlash(clean)))
}

func (d dirSource) Close() error {
	return nil
}

// OpenArchive memory maps a kar archive and reads assets from it
func OpenArchive(file string) (Source, error) {
	r, err := mmap.Open(file)
	if err != nil {
		return nil, err
	}
	ar, err := kar.Open(r)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("kar.Open(%s): %w", file, err)
	}
	return &archiveSource{
		file:    file,
		mapped:  r,
		archive: ar,
	}, nil
}

type archiveSource struct {
	file    string
	mapped  *mmap.ReaderAt
	archive *kar.Archive
}

func (a *archiveSource) ReadFile(name string) ([]byte, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	data, err := a.archive.ReadAll(clean)
	if err == kar.ErrNotExist {
		return nil, &os.PathError{Op: "open", Path: a.file + ":" + clean, Err: os.ErrNotExist}
	}
	return data, err
}

func (a *archiveSource) Close() error {
	return a.mapped.Close()
}

// cleanName rejects names escaping the asset root
func cleanName(name string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(name))[1:]
	if clean == "" || clean != filepath.ToSlash(path.Clean(name)) {
		return "", &os.PathError{Op: "open", Path: name, Err: os.ErrInvalid}
	}
	return clean, nil
}
