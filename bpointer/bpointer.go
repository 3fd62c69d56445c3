// Package bpointer addresses values inside a bencode document with
// JSON-Pointer style paths.
//
// A pointer is a sequence of "/token" segments. Inside a token, '~' is
// written "~0" and '/' is written "~1". The empty pointer "" refers to the
// whole document; "/" refers to the value under the empty key.
package bpointer

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// Pointer is a parsed path: an ordered list of unescaped reference tokens.
// The zero Pointer refers to the document root.
type Pointer struct {
	tokens []string
}

func badPointer(msg string) error {
	return &types.Error{Kind: types.ErrKindPointer, Msg: msg, Err: types.ErrBadPointer}
}

// Parse parses a pointer expression.
func Parse(expr string) (Pointer, error) {
	if expr == "" {
		return Pointer{}, nil
	}
	if expr[0] != '/' {
		return Pointer{}, badPointer("pointer must be empty or start with '/': " + strconv.Quote(expr))
	}
	parts := strings.Split(expr[1:], "/")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		tok, err := unescape(part)
		if err != nil {
			return Pointer{}, err
		}
		tokens = append(tokens, tok)
	}
	return Pointer{tokens: tokens}, nil
}

// MustParse is Parse for expressions known to be valid. It panics otherwise.
func MustParse(expr string) Pointer {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// New builds a pointer from unescaped tokens.
func New(tokens ...string) Pointer {
	return Pointer{tokens: slices.Clone(tokens)}
}

func unescape(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}
	var sb strings.Builder
	sb.Grow(len(tok))
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c != '~' {
			sb.WriteByte(c)
			continue
		}
		if i+1 >= len(tok) {
			return "", badPointer("escape character '~' not followed by '0' or '1'")
		}
		i++
		switch tok[i] {
		case '0':
			sb.WriteByte('~')
		case '1':
			sb.WriteByte('/')
		default:
			return "", badPointer("escape character '~' not followed by '0' or '1'")
		}
	}
	return sb.String(), nil
}

var escaper = strings.NewReplacer("~", "~0", "/", "~1")

// String returns the escaped expression; Parse(p.String()) equals p.
func (p Pointer) String() string {
	var sb strings.Builder
	for _, tok := range p.tokens {
		sb.WriteByte('/')
		escaper.WriteString(&sb, tok)
	}
	return sb.String()
}

// Tokens returns a copy of the unescaped reference tokens.
func (p Pointer) Tokens() []string { return slices.Clone(p.tokens) }

// Len returns the number of tokens.
func (p Pointer) Len() int { return len(p.tokens) }

// Empty reports whether p refers to the document root.
func (p Pointer) Empty() bool { return len(p.tokens) == 0 }

// Front returns the first token, or "" for the root pointer.
func (p Pointer) Front() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[0]
}

// Back returns the last token, or "" for the root pointer.
func (p Pointer) Back() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[len(p.tokens)-1]
}

// Append returns p extended with unescaped tokens.
func (p Pointer) Append(tokens ...string) Pointer {
	return Pointer{tokens: slices.Concat(p.tokens, tokens)}
}

// AppendIndex returns p extended with a list index.
func (p Pointer) AppendIndex(i int) Pointer {
	return p.Append(strconv.Itoa(i))
}

// Join returns p followed by the tokens of q.
func (p Pointer) Join(q Pointer) Pointer {
	return p.Append(q.tokens...)
}

// Parent returns p without its last token. The root is its own parent.
func (p Pointer) Parent() Pointer {
	if len(p.tokens) == 0 {
		return p
	}
	return Pointer{tokens: slices.Clone(p.tokens[:len(p.tokens)-1])}
}

// Equal reports whether p and q hold the same tokens.
func (p Pointer) Equal(q Pointer) bool { return slices.Equal(p.tokens, q.tokens) }

// Compare orders pointers token by token; a prefix sorts first.
func (p Pointer) Compare(q Pointer) int {
	return slices.CompareFunc(p.tokens, q.tokens, cmp.Compare[string])
}

// parseIndex converts a list token to an index below n.
func parseIndex(tok string, n int) (int, error) {
	if tok == "-" {
		return 0, types.NewOutOfRange("list index '-' (append) is not supported")
	}
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, types.NewOutOfRange("invalid list index " + strconv.Quote(tok))
	}
	for i := range len(tok) {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, types.NewOutOfRange("invalid list index " + strconv.Quote(tok))
		}
	}
	i, err := strconv.Atoi(tok)
	if err != nil || i >= n {
		return 0, types.NewOutOfRange("list index " + tok + " out of range [0, " + strconv.Itoa(n) + ")")
	}
	return i, nil
}

func unresolvable(tok string, found types.Type) error {
	return types.NewOutOfRange("cannot resolve token " + strconv.Quote(tok) +
		": expected list or dict, found " + found.String())
}
