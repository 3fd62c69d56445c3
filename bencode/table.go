package bencode

import "iter"

// DescriptorTable is the immutable index of one decoded buffer. It owns its
// descriptors and borrows the buffer they describe.
type DescriptorTable struct {
	descs []Descriptor
	buf   []byte
	roots int
}

// Len returns the number of descriptors.
func (t *DescriptorTable) Len() int { return len(t.descs) }

// Roots returns the number of top-level values.
func (t *DescriptorTable) Roots() int { return t.roots }

// Descriptors exposes the descriptor sequence. Callers must not modify it.
func (t *DescriptorTable) Descriptors() []Descriptor { return t.descs }

// Buffer returns the source bytes the table indexes.
func (t *DescriptorTable) Buffer() []byte { return t.buf }

// Root returns a view of the first top-level value, or the zero View when
// the table is empty.
func (t *DescriptorTable) Root() View {
	if len(t.descs) == 0 {
		return View{}
	}
	return View{t: t, i: 0}
}

// Values iterates the top-level values of a stream index.
func (t *DescriptorTable) Values() iter.Seq[View] {
	return func(yield func(View) bool) {
		for i := 0; i < len(t.descs); i = t.skip(i) {
			if !yield(View{t: t, i: i}) {
				return
			}
		}
	}
}

// skip returns the index of the descriptor after the value at i, jumping
// over a container's whole subtree in one step.
func (t *DescriptorTable) skip(i int) int {
	d := &t.descs[i]
	if d.IsBegin() {
		return i + d.Offset() + 1
	}
	return i + 1
}

// end returns the index of the end descriptor of the container at i.
func (t *DescriptorTable) end(i int) int {
	return i + t.descs[i].Offset()
}
