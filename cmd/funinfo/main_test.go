package main

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/fun/asset"
	"github.com/devblok/fun/core"
)

func TestCollect(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	root := filepath.Join(dir, "assets")
	for _, name := range []string{"images/duck.png", "audio/quack.wav"} {
		path := filepath.Join(root, filepath.FromSlash(name))
		c.Assert(os.MkdirAll(filepath.Dir(path), 0o755), qt.IsNil)
		c.Assert(os.WriteFile(path, []byte(name), 0o644), qt.IsNil)
	}

	locator := asset.NewLocator("assets", func() (string, error) { return dir, nil })
	info, err := collect(core.DefaultConfiguration, locator)
	c.Assert(err, qt.IsNil)
	c.Assert(info.AssetRoot, qt.Equals, root)
	c.Assert(info.Assets, qt.DeepEquals, []string{"audio/quack.wav", "images/duck.png"})
}

func TestCollectWithoutRoot(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	locator := asset.NewLocator("assets", func() (string, error) { return dir, nil })
	_, err := collect(core.DefaultConfiguration, locator)
	c.Assert(err, qt.ErrorIs, asset.ErrAssetRootNotFound)
}
