// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar

import (
	"bytes"
	"io"
	"os"

	"github.com/pierrec/lz4"
)

// maxHeaderSize guards against allocating for a corrupted size field
const maxHeaderSize = 64 << 20

// maxPrealloc caps the buffer ReadAll reserves up front
const maxPrealloc = 16 << 20

// sizer is implemented by readers that know their total length,
// such as *os.File's Stat, *bytes.Reader and *mmap.ReaderAt
type sizer interface {
	Size() int64
}

type lener interface {
	Len() int
}

// readerSize returns the total length of r, or -1 when unknown
func readerSize(r io.ReaderAt) int64 {
	switch sr := r.(type) {
	case sizer:
		return sr.Size()
	case lener:
		return int64(sr.Len())
	case *os.File:
		if info, err := sr.Stat(); err == nil {
			return info.Size()
		}
	}
	return -1
}

// Open opens the kar archived from r. It will also check
// if the file is actually a kar archive, will return an error
// when file incorrect.
func Open(r io.ReaderAt) (*Archive, error) {
	fileMagic := make([]byte, MagicLength)
	if num, _ := r.ReadAt(fileMagic, 0); num < MagicLength || !bytes.Equal(fileMagic, magic[:]) {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, _ := r.ReadAt(headerSizeBytes, MagicLength); num < HeaderSizeNumberLength {
		return nil, ErrFileFormat
	}

	headerSize, err := binaryToint64(headerSizeBytes)
	if err != nil || headerSize <= 0 || headerSize > maxHeaderSize {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, _ := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); int64(num) < headerSize {
		return nil, ErrFileFormat
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	dataOffset := MagicLength + HeaderSizeNumberLength + headerSize
	dataSize := int64(-1)
	if total := readerSize(r); total >= 0 {
		dataSize = total - dataOffset
	}
	if err := validateIndex(header.Index, dataSize); err != nil {
		return nil, err
	}

	return &Archive{
		reader:     r,
		header:     header,
		dataOffset: dataOffset,
	}, nil
}

// validateIndex rejects entries with negative fields or, when dataSize
// is known, entries reaching past the end of the data section
func validateIndex(index []IndexEntry, dataSize int64) error {
	for _, e := range index {
		if e.Offset < 0 || e.Size < 0 || e.CompressedSize < 0 {
			return ErrFileFormat
		}
		if dataSize >= 0 && (e.Offset > dataSize || e.CompressedSize > dataSize-e.Offset) {
			return ErrFileFormat
		}
	}
	return nil
}

// Archive provides concurrent io for a kar file, and can provide
// an io.Reader for each file separately to perform actions on.
type Archive struct {
	reader     io.ReaderAt
	header     Header
	dataOffset int64
}

// Header returns the archive header
func (a *Archive) Header() Header {
	return a.header
}

// Names lists the files in the archive in the order they were added
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.header.Index))
	for _, e := range a.header.Index {
		names = append(names, e.Name)
	}
	return names
}

// ReadAll returns the entire contents of a file with a given name
func (a *Archive) ReadAll(file string) ([]byte, error) {
	r, err := a.Open(file)
	if err != nil {
		return nil, err
	}
	prealloc := r.entry.Size
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	buf := bytes.NewBuffer(make([]byte, 0, prealloc))
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Open returns a Reader for a file in the Archive
func (a *Archive) Open(name string) (*Reader, error) {
	entry, ok := a.header.Find(name)
	if !ok {
		return nil, ErrNotExist
	}
	section := io.NewSectionReader(a.reader, a.dataOffset+entry.Offset, entry.CompressedSize)
	return &Reader{
		entry:  entry,
		reader: lz4.NewReader(section),
	}, nil
}

// Reader is a reader for a single file in an Archive.
// Abstracts away the location that needs to be known.
type Reader struct {
	entry  IndexEntry
	reader io.Reader
}

// Size returns the uncompressed size of the file
func (r *Reader) Size() int64 {
	return r.entry.Size
}

// Read reads already decompressed data
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.reader.Read(p)
}
