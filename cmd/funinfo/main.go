package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/devblok/fun/asset"
	"github.com/devblok/fun/core"
	"github.com/devblok/fun/utility/kar"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/mmap"
)

// Info is what funinfo prints
type Info struct {
	AssetRoot     string             `json:"assetRoot"`
	Configuration core.Configuration `json:"configuration"`
	Assets        []string           `json:"assets"`
}

var envFile = flag.String("env", "", "dotenv file to read configuration from")

func main() {
	flag.Parse()

	cfg, err := core.LoadConfiguration(*envFile)
	if err != nil {
		log.Fatal(err)
	}

	info, err := collect(cfg, asset.NewLocator(cfg.Assets.FolderName))
	if err != nil {
		log.Fatal(err)
	}

	if bytes, err := json.MarshalIndent(info, "", "  "); err == nil {
		fmt.Printf("%s\n", bytes)
	} else {
		log.Fatal(err)
	}
}

func collect(cfg core.Configuration, locator *asset.Locator) (Info, error) {
	root, err := locator.ResolveAssetRoot()
	if err != nil {
		return Info{}, err
	}

	info := Info{AssetRoot: root, Configuration: cfg}
	if cfg.Assets.Archive != "" {
		info.Assets, err = archiveInventory(filepath.Join(root, filepath.FromSlash(cfg.Assets.Archive)))
	} else {
		info.Assets, err = dirInventory(root)
	}
	return info, err
}

// dirInventory lists files under root as slash separated names
func dirInventory(root string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	return names, err
}

func archiveInventory(file string) ([]string, error) {
	r, err := mmap.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	ar, err := kar.Open(r)
	if err != nil {
		return nil, fmt.Errorf("kar.Open(%s): %w", file, err)
	}
	return ar.Names(), nil
}
