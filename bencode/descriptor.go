package bencode

import (
	"fmt"
	"strings"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// DescriptorType is the bit set stored in each Descriptor: one base kind,
// at most one role modifier, and the end and stop flags.
type DescriptorType uint16

const (
	DescInteger DescriptorType = 0x01
	DescString  DescriptorType = 0x02
	DescList    DescriptorType = 0x04
	DescDict    DescriptorType = 0x08

	DescListValue DescriptorType = 0x10
	DescDictKey   DescriptorType = 0x20
	DescDictValue DescriptorType = 0x40

	// DescEnd marks the closing descriptor of a list or dict.
	DescEnd DescriptorType = 0x80
	// DescStop marks the last descriptor of a table.
	DescStop DescriptorType = 0x100

	descKindMask = DescInteger | DescString | DescList | DescDict
	descRoleMask = DescListValue | DescDictKey | DescDictValue
)

func (t DescriptorType) String() string {
	var parts []string
	names := [...]struct {
		bit  DescriptorType
		name string
	}{
		{DescInteger, "integer"},
		{DescString, "string"},
		{DescList, "list"},
		{DescDict, "dict"},
		{DescListValue, "list_value"},
		{DescDictKey, "dict_key"},
		{DescDictValue, "dict_value"},
		{DescEnd, "end"},
		{DescStop, "stop"},
	}
	for _, n := range names {
		if t&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Descriptor is a 16-byte record describing one structural token.
//
// The payload depends on the kind:
//
//	integer      the decoded value
//	string       data offset relative to Position (high 32 bits), byte length (low 32 bits)
//	list, dict   distance to the matching begin/end descriptor (high), direct child count (low)
//
// Dict child counts are key/value pairs.
type Descriptor struct {
	pos  uint32
	typ  DescriptorType
	data uint64
}

func newDescriptor(typ DescriptorType, pos int) Descriptor {
	return Descriptor{pos: uint32(pos), typ: typ}
}

func packPair(offset, size int) uint64 {
	return uint64(uint32(offset))<<32 | uint64(uint32(size))
}

// Position is the byte offset of the token in the source buffer.
func (d Descriptor) Position() int { return int(d.pos) }

// Flags returns the raw descriptor bits.
func (d Descriptor) Flags() DescriptorType { return d.typ }

// Type returns the value kind the descriptor describes.
func (d Descriptor) Type() types.Type {
	switch d.typ & descKindMask {
	case DescInteger:
		return types.Integer
	case DescString:
		return types.String
	case DescList:
		return types.List
	case DescDict:
		return types.Dict
	default:
		return types.Uninitialized
	}
}

func (d Descriptor) IsInteger() bool   { return d.typ&DescInteger != 0 }
func (d Descriptor) IsString() bool    { return d.typ&DescString != 0 }
func (d Descriptor) IsList() bool      { return d.typ&DescList != 0 }
func (d Descriptor) IsDict() bool      { return d.typ&DescDict != 0 }
func (d Descriptor) IsListValue() bool { return d.typ&DescListValue != 0 }
func (d Descriptor) IsDictKey() bool   { return d.typ&DescDictKey != 0 }
func (d Descriptor) IsDictValue() bool { return d.typ&DescDictValue != 0 }
func (d Descriptor) IsEnd() bool       { return d.typ&DescEnd != 0 }
func (d Descriptor) IsStop() bool      { return d.typ&DescStop != 0 }

// IsBegin reports whether d opens a list or dict.
func (d Descriptor) IsBegin() bool {
	return d.typ&(DescList|DescDict) != 0 && d.typ&DescEnd == 0
}

// Value returns the decoded integer. Only meaningful for integers.
func (d Descriptor) Value() int64 { return int64(d.data) }

// Offset returns the string data offset, or for containers the distance
// between the begin and end descriptors.
func (d Descriptor) Offset() int { return int(d.data >> 32) }

// Size returns the string length, or for containers the direct child count.
func (d Descriptor) Size() int { return int(uint32(d.data)) }

func (d Descriptor) String() string {
	if d.IsInteger() {
		return fmt.Sprintf("%s@%d value=%d", d.typ, d.pos, d.Value())
	}
	return fmt.Sprintf("%s@%d offset=%d size=%d", d.typ, d.pos, d.Offset(), d.Size())
}
