package asset_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/fun/asset"
	"github.com/devblok/fun/utility/kar"
)

func TestDirSource(t *testing.T) {
	c := qt.New(t)
	root := t.TempDir()
	c.Assert(os.MkdirAll(filepath.Join(root, "images"), 0o755), qt.IsNil)
	c.Assert(os.WriteFile(filepath.Join(root, "images", "duck.png"), []byte("quack"), 0o644), qt.IsNil)

	src := asset.Dir(root)
	defer src.Close()

	data, err := src.ReadFile("images/duck.png")
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "quack")

	_, err = src.ReadFile("images/goose.png")
	c.Assert(errors.Is(err, os.ErrNotExist), qt.IsTrue)
}

func TestSourceRejectsEscapingNames(t *testing.T) {
	c := qt.New(t)
	src := asset.Dir(t.TempDir())
	for _, name := range []string{"../secret", "/etc/passwd", "", "images/../../x"} {
		_, err := src.ReadFile(name)
		c.Assert(errors.Is(err, os.ErrInvalid), qt.IsTrue, qt.Commentf("name %q", name))
	}
}

func TestArchiveSource(t *testing.T) {
	c := qt.New(t)
	builder, err := kar.NewBuilder(kar.Header{Author: "test", Version: 1})
	c.Assert(err, qt.IsNil)
	defer builder.Close()
	c.Assert(builder.Add("audio/quack.wav", bytes.NewReader([]byte("RIFF"))), qt.IsNil)

	var buf bytes.Buffer
	_, err = builder.WriteTo(&buf)
	c.Assert(err, qt.IsNil)
	file := filepath.Join(t.TempDir(), "assets.kar")
	c.Assert(os.WriteFile(file, buf.Bytes(), 0o644), qt.IsNil)

	src, err := asset.OpenArchive(file)
	c.Assert(err, qt.IsNil)
	defer src.Close()

	data, err := src.ReadFile("./audio/quack.wav")
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, "RIFF")

	_, err = src.ReadFile("audio/missing.wav")
	c.Assert(errors.Is(err, os.ErrNotExist), qt.IsTrue)
}

func TestOpenArchiveRejectsOtherFiles(t *testing.T) {
	c := qt.New(t)
	file := filepath.Join(t.TempDir(), "assets.kar")
	c.Assert(os.WriteFile(file, []byte("plain text, no archive here"), 0o644), qt.IsNil)

	_, err := asset.OpenArchive(file)
	c.Assert(errors.Is(err, kar.ErrFileFormat), qt.IsTrue)
}
