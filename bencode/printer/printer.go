// Package printer renders bencode values as indented text, JSON, a debug
// event trace, or canonical bencode.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/bencodekit/bencode"
)

const (
	DefaultIndentSize    = 4
	DefaultMaxValueBytes = 32
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented human-readable tree.
	FormatText Format = "text"

	// FormatJSON outputs JSON. Byte strings that are not valid UTF-8 are
	// transcoded according to Options.Binary.
	FormatJSON Format = "json"

	// FormatDebug outputs one line per event.
	FormatDebug Format = "debug"

	// FormatBencode outputs canonical bencode.
	FormatBencode Format = "bencode"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON, FormatDebug, FormatBencode:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// BinaryMode selects how non-UTF-8 strings are shown.
type BinaryMode string

const (
	// BinaryLatin1 reads each byte as an ISO-8859-1 code point.
	BinaryLatin1 BinaryMode = "latin1"

	// BinaryHex writes the bytes as lowercase hex.
	BinaryHex BinaryMode = "hex"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, debug, bencode).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per nesting level (text and json).
	// Zero produces compact JSON.
	// Default: 4
	IndentSize int

	// Binary selects the rendering of strings that are not valid UTF-8.
	// Default: BinaryHex
	Binary BinaryMode

	// MaxValueBytes limits how many bytes of a binary string the text
	// format displays. Longer values are truncated. Set to 0 for no limit.
	// Default: 32
	MaxValueBytes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		Binary:        BinaryHex,
		MaxValueBytes: DefaultMaxValueBytes,
	}
}

// Printer writes formatted values to an io.Writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	t, _ := bencode.DecodeIndex(data)
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(t.Root())
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// Print renders v followed by a newline.
func (p *Printer) Print(v bencode.Producer) error {
	if p.opts.Format == FormatBencode {
		if err := bencode.EncodeTo(p.writer, v); err != nil {
			return err
		}
		_, err := io.WriteString(p.writer, "\n")
		return err
	}
	c := p.Consumer()
	v.Produce(c)
	return c.Flush()
}

// Consumer returns a streaming consumer for the configured format, for use
// with bencode.Parser. Call Flush when the parse returns.
func (p *Printer) Consumer() FlushConsumer {
	switch p.opts.Format {
	case FormatJSON:
		return NewJSON(p.writer, p.opts)
	case FormatDebug:
		return NewDebug(p.writer)
	case FormatBencode:
		return &bencodeWriter{Encoder: bencode.NewEncoder(nil), w: p.writer}
	default:
		return NewText(p.writer, p.opts)
	}
}

// FlushConsumer is a bencode.Consumer that buffers its output.
type FlushConsumer interface {
	bencode.Consumer
	// Flush writes buffered output and returns the first write error or
	// the error reported through the Error event.
	Flush() error
}

// Print renders v to w with opts.
func Print(w io.Writer, v bencode.Producer, opts Options) error {
	return New(w, opts).Print(v)
}

type bencodeWriter struct {
	*bencode.Encoder
	w io.Writer
}

func (b *bencodeWriter) Flush() error {
	if err := b.Err(); err != nil {
		return err
	}
	if _, err := b.w.Write(b.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(b.w, "\n")
	return err
}
