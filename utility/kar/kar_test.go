// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/devblok/fun/utility/kar"
)

var (
	testString1 = "idunvovkjnreovmegihjbrqlkmfrjnb"
	testString2 = "idunvovkjnreovmsdvwrvnervnreegihjbrqlkmfrjnb"
)

func buildArchive(t *testing.T) []byte {
	builder, err := kar.NewBuilder(kar.Header{
		Author:      "devblok",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer builder.Close()

	if err := builder.Add("test", bytes.NewReader([]byte(testString1))); err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("test2", bytes.NewReader([]byte(testString2))); err != nil {
		t.Fatal(err)
	}

	buf := bytes.NewBuffer([]byte{})
	written, err := builder.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if written != int64(buf.Len()) {
		t.Fatalf("reported %d bytes written, buffer holds %d", written, buf.Len())
	}
	return buf.Bytes()
}

func TestCreateAndRead(t *testing.T) {
	ar, err := kar.Open(bytes.NewReader(buildArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	f, err := ar.Open("test")
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != int64(len(testString1)) {
		t.Errorf("incorrect size: %d", f.Size())
	}

	result, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Compare(string(result), testString1) != 0 {
		t.Error("test string does not match up")
	}
}

func TestCreateAndReadAll(t *testing.T) {
	ar, err := kar.Open(bytes.NewReader(buildArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	f, err := ar.ReadAll("test2")
	if err != nil {
		t.Fatal(err)
	}

	if strings.Compare(string(f), testString2) != 0 {
		t.Error("test string does not match up")
	}

	header := ar.Header()
	if header.Author != "devblok" || header.Version != 1 {
		t.Errorf("header not preserved: %+v", header)
	}
	if names := ar.Names(); len(names) != 2 || names[0] != "test" || names[1] != "test2" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestOpenMissingFile(t *testing.T) {
	ar, err := kar.Open(bytes.NewReader(buildArchive(t)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ar.ReadAll("missing"); err != kar.ErrNotExist {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestOpenNotAnArchive(t *testing.T) {
	inputs := map[string][]byte{
		"empty":       {},
		"wrong magic": []byte("TAR\x00this is not an archive at all"),
		"truncated":   buildArchive(t)[:kar.MagicLength+4],
	}
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			if _, err := kar.Open(bytes.NewReader(data)); err != kar.ErrFileFormat {
				t.Errorf("expected ErrFileFormat, got %v", err)
			}
		})
	}
}
