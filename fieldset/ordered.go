package fieldset

import (
	"github.com/aemr3/WTFIX/field"
)

// Ordered is a map-backed FieldSet: tags are unique, iteration follows insertion order,
// and lookups are constant time. Use New or NewOrderedFrom to create one.
type Ordered struct {
	core
}

var _ FieldSet = (*Ordered)(nil)

// New creates an Ordered set from fields. Repeated tags fail with errs.ErrDuplicateTags,
// naming every repeated tag.
func New(fields ...field.Field) (*Ordered, error) {
	s := newMapStorage(len(fields))
	for _, f := range fields {
		if err := s.add(entry{field: f}); err != nil {
			return nil, duplicateTagsError(tagsOf(fields))
		}
	}

	return &Ordered{core{s: s}}, nil
}

// MustNew is New that panics on error.
func MustNew(fields ...field.Field) *Ordered {
	o, err := New(fields...)
	if err != nil {
		panic(err)
	}

	return o
}

// NewOrderedFrom creates an Ordered set from a flat field sequence, folding every counter
// tag known to lookup, together with its member tags, into a Group.
func NewOrderedFrom(lookup TemplateLookup, fields []field.Field) (*Ordered, error) {
	s := newMapStorage(len(fields))
	if err := assemble(s, lookup, fields); err != nil {
		return nil, err
	}

	return &Ordered{core{s: s}}, nil
}

// Clone returns a deep copy.
func (o *Ordered) Clone() *Ordered {
	return &Ordered{core{s: o.cloneStorage(0)}}
}
