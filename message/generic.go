package message

import (
	"github.com/aemr3/WTFIX/field"
	"github.com/aemr3/WTFIX/fieldset"
	"github.com/aemr3/WTFIX/internal/collision"
	"github.com/aemr3/WTFIX/template"
)

// GenericMessage is a list-backed message that tolerates repeated tags.
type GenericMessage struct {
	*fieldset.List
	header
}

var _ Message = (*GenericMessage)(nil)

// NewList creates a GenericMessage from fields without folding groups.
func NewList(fields ...field.Field) *GenericMessage {
	return newGenericMessage(fieldset.NewList(fields...))
}

func newGenericMessage(l *fieldset.List) *GenericMessage {
	m := &GenericMessage{List: l}
	m.header = header{fs: m}

	return m
}

// Copy returns a deep copy.
func (m *GenericMessage) Copy() Message {
	return m.Clone()
}

// Clone returns a deep copy.
func (m *GenericMessage) Clone() *GenericMessage {
	return newGenericMessage(m.List.Clone())
}

func (m *GenericMessage) String() string {
	return m.describe(m.List.String())
}

func (m *GenericMessage) Named() string {
	return m.describeNamed(m.List.Named())
}

// OptimizedMessage is a map-backed message with unique tags. It keeps a snapshot of the
// template registry its groups were parsed with.
type OptimizedMessage struct {
	*fieldset.Ordered
	header

	templates *template.Registry
}

var _ Message = (*OptimizedMessage)(nil)

// NewOptimized creates an OptimizedMessage, folding groups with a snapshot of reg.
// Repeated top-level tags fail with errs.ErrDuplicateTags.
func NewOptimized(reg *template.Registry, fields ...field.Field) (*OptimizedMessage, error) {
	snapshot := reg.Clone()

	o, err := fieldset.NewOrderedFrom(snapshot, fields)
	if err != nil {
		return nil, err
	}

	return newOptimizedMessage(o, snapshot), nil
}

func newOptimizedMessage(o *fieldset.Ordered, templates *template.Registry) *OptimizedMessage {
	m := &OptimizedMessage{Ordered: o, templates: templates}
	m.header = header{fs: m}

	return m
}

// Templates returns the registry snapshot. It is never nil.
func (m *OptimizedMessage) Templates() *template.Registry {
	return m.templates
}

// Equal reports whether other holds the same fields and, if it is also an
// OptimizedMessage, the same group templates.
func (m *OptimizedMessage) Equal(other fieldset.FieldSet) bool {
	if !m.Ordered.Equal(other) {
		return false
	}
	if o, ok := other.(*OptimizedMessage); ok {
		return m.templates.Equal(o.templates)
	}

	return true
}

// Copy returns a deep copy, including the registry snapshot.
func (m *OptimizedMessage) Copy() Message {
	return m.Clone()
}

// Clone returns a deep copy, including the registry snapshot.
func (m *OptimizedMessage) Clone() *OptimizedMessage {
	return newOptimizedMessage(m.Ordered.Clone(), m.templates.Clone())
}

func (m *OptimizedMessage) String() string {
	return m.describe(m.Ordered.String())
}

func (m *OptimizedMessage) Named() string {
	return m.describeNamed(m.Ordered.Named())
}

// NewGeneric creates a message from fields without group templates. Unique tags give an
// *OptimizedMessage, repeated tags a *GenericMessage.
func NewGeneric(fields ...field.Field) Message {
	m, err := NewGenericWithTemplates(nil, fields...)
	if err != nil {
		return NewList(fields...)
	}

	return m
}

// NewGenericWithTemplates folds groups using a snapshot of reg and then chooses the
// storage: unique top-level tags give an *OptimizedMessage, repeated ones a
// *GenericMessage. Malformed groups fail with errs.ErrInvalidGroup.
func NewGenericWithTemplates(reg *template.Registry, fields ...field.Field) (Message, error) {
	snapshot := reg.Clone()

	l, err := fieldset.NewListFrom(snapshot, fields)
	if err != nil {
		return nil, err
	}

	if collision.HasDuplicates(l.Tags()...) {
		return newGenericMessage(l), nil
	}

	o, err := l.Ordered()
	if err != nil {
		return nil, err
	}

	return newOptimizedMessage(o, snapshot), nil
}
