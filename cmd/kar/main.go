// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/devblok/fun/utility/kar"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/mmap"
)

func init() {
	currentUserName = "unknown"
	if u, err := user.Current(); err == nil && u.Name != "" {
		currentUserName = u.Name
	}
}

var (
	currentUserName string
	author          = flag.String("author", "", "Set the author of the package when compressing")
	version         = flag.Int64("version", 1, "Archive version number to create it with")
	extract         = flag.String("e", "", "Extract the archive given")
	compress        = flag.String("c", "", "Compress the given folder")
	dstFile         = flag.String("f", "assets.kar", "Destination file when compressing, folder when extracting")
	silent          = flag.Bool("s", false, "Silent")
)

// package errors
var (
	ErrOneOperation = errors.New("only one operation at a time")
	ErrExists       = errors.New("destination file exists, will not overwrite")
	ErrUnsafeName   = errors.New("archive entry escapes the destination")
)

func main() {
	flag.Parse()
	if *silent {
		log.SetLevel(log.WarnLevel)
	}

	var err error
	switch {
	case *extract != "" && *compress != "":
		err = ErrOneOperation
	case *extract != "":
		err = extractFiles(*extract, *dstFile)
	case *compress != "":
		name := *author
		if name == "" {
			name = currentUserName
		}
		err = compressFiles(*compress, *dstFile, kar.Header{
			Author:      name,
			DateCreated: time.Now().Unix(),
			Version:     *version,
		})
	default:
		flag.PrintDefaults()
	}
	if err != nil {
		log.Fatal(err)
	}
}

// compressFiles packs every file under src, named by its slash
// separated path relative to src
func compressFiles(src, dst string, header kar.Header) error {
	if _, err := os.Stat(dst); err == nil {
		return ErrExists
	}

	var files []string
	err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return err
	}

	builder, err := kar.NewBuilder(header)
	if err != nil {
		return err
	}
	defer builder.Close()

	for _, file := range files {
		rel, err := filepath.Rel(src, file)
		if err != nil {
			return err
		}
		if err := addFile(builder, filepath.ToSlash(rel), file); err != nil {
			return err
		}
		log.WithField("file", rel).Info("Added")
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	written, err := builder.WriteTo(out)
	if err != nil {
		out.Close()
		return err
	}
	log.WithFields(log.Fields{"archive": dst, "bytes": written}).Info("Archive written")
	return out.Close()
}

func addFile(builder *kar.Builder, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return builder.Add(name, f)
}

// extractFiles writes every entry of the archive under dst
func extractFiles(archive, dst string) error {
	r, err := mmap.Open(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	ar, err := kar.Open(r)
	if err != nil {
		return fmt.Errorf("kar.Open(%s): %w", archive, err)
	}

	for _, name := range ar.Names() {
		target := filepath.Join(dst, filepath.FromSlash(name))
		if rel, err := filepath.Rel(dst, target); err != nil || strings.HasPrefix(rel, "..") {
			return fmt.Errorf("%w: %s", ErrUnsafeName, name)
		}
		if err := extractFile(ar, name, target); err != nil {
			return err
		}
		log.WithField("file", name).Info("Extracted")
	}
	return nil
}

func extractFile(ar *kar.Archive, name, target string) error {
	entry, err := ar.Open(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, entry); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
