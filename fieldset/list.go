package fieldset

import (
	"github.com/aemr3/WTFIX/field"
)

// List is a slice-backed FieldSet that tolerates repeated tags. Lookups are linear and
// return the first occurrence.
type List struct {
	core
}

var _ FieldSet = (*List)(nil)

// NewList creates a List from fields.
func NewList(fields ...field.Field) *List {
	s := newListStorage(len(fields))
	for _, f := range fields {
		_ = s.add(entry{field: f})
	}

	return &List{core{s: s}}
}

// NewListFrom is NewOrderedFrom for duplicate-tolerant storage.
func NewListFrom(lookup TemplateLookup, fields []field.Field) (*List, error) {
	s := newListStorage(len(fields))
	if err := assemble(s, lookup, fields); err != nil {
		return nil, err
	}

	return &List{core{s: s}}, nil
}

// GetAll returns every direct field stored under tag, in order.
func (l *List) GetAll(tag int) []field.Field {
	var out []field.Field
	for e := range l.s.all() {
		if e.tag() == tag {
			out = append(out, e.field)
		}
	}

	return out
}

// Ordered moves the entries into unique-tag storage. It fails with
// errs.ErrDuplicateTags naming every repeated tag.
func (l *List) Ordered() (*Ordered, error) {
	s := newMapStorage(l.s.len())
	for e := range l.s.all() {
		if err := s.add(e); err != nil {
			return nil, duplicateTagsError(l.Tags())
		}
	}

	return &Ordered{core{s: s}}, nil
}

// Clone returns a deep copy.
func (l *List) Clone() *List {
	return &List{core{s: l.cloneStorage(0)}}
}
