package bencode

import (
	"fmt"
	"os"

	"github.com/joshuapare/bencodekit/internal/logger"
	"github.com/joshuapare/bencodekit/internal/mmfile"
)

// File is a descriptor index over a memory-mapped file. Views taken from it
// are valid until Close.
type File struct {
	*DescriptorTable
	path  string
	unmap func() error
}

// OpenFile maps path and indexes its single top-level value.
func (o Options) OpenFile(path string) (*File, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	t, err := o.DecodeIndex(data)
	if err != nil {
		_ = unmap()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	logger.L.Debug("indexed file",
		"path", path,
		"bytes", len(data),
		"descriptors", t.Len())
	return &File{DescriptorTable: t, path: path, unmap: unmap}, nil
}

// OpenFile maps and indexes path with DefaultOptions.
func OpenFile(path string) (*File, error) { return DefaultOptions().OpenFile(path) }

// Path returns the file name passed to OpenFile.
func (f *File) Path() string { return f.path }

// Close unmaps the file. It is safe to call more than once.
func (f *File) Close() error {
	if f.unmap == nil {
		return nil
	}
	err := f.unmap()
	f.unmap = nil
	return err
}

// ReadFile decodes the single value stored in path into an owned tree.
func (o Options) ReadFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	v, err := o.Decode(data)
	if err != nil {
		return Value{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

// ReadFile decodes path with DefaultOptions.
func ReadFile(path string) (Value, error) { return DefaultOptions().ReadFile(path) }
