package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/joshuapare/bencodekit/bencode"
	"github.com/joshuapare/bencodekit/internal/logger"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// document is an indexed input file. Plain files are memory-mapped;
// compressed files are inflated into memory first.
type document struct {
	*bencode.DescriptorTable
	close func() error
}

func (d *document) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// readInput returns the decompressed contents of path.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decompress(data)
}

// decompress inflates gzip or zstd data and returns anything else unchanged.
func decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		logger.L.Debug("inflated zstd input", "compressed", len(data), "bytes", len(out))
		return out, nil
	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		logger.L.Debug("inflated gzip input", "compressed", len(data), "bytes", len(out))
		return out, nil
	default:
		return data, nil
	}
}

// isCompressed peeks at the first bytes of path.
func isCompressed(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	head := make([]byte, len(zstdMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	head = head[:n]
	return bytes.HasPrefix(head, zstdMagic) || bytes.HasPrefix(head, gzipMagic), nil
}

// openDocument indexes the single value stored in path.
func openDocument(path string) (*document, error) {
	compressed, err := isCompressed(path)
	if err != nil {
		return nil, err
	}
	if !compressed {
		f, err := decodeOpts.OpenFile(path)
		if err != nil {
			return nil, err
		}
		return &document{DescriptorTable: f.DescriptorTable, close: f.Close}, nil
	}

	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	t, err := decodeOpts.DecodeIndex(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &document{DescriptorTable: t}, nil
}
