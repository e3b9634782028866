package fieldset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/field"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/protocol"
	"github.com/aemr3/WTFIX/template"
)

// TemplateLookup resolves group counter tags to their member tags.
type TemplateLookup = template.Lookup

// FieldSet is an ordered collection of fields and groups.
//
// FieldSet is implemented by *Ordered and *List in this package and, through embedding,
// by *GroupInstance and the parsed message types.
type FieldSet interface {
	// Get returns the field stored under tag. For a group this is its counter field.
	Get(tag int) (field.Field, error)
	// Lookup is Get with an optional result.
	Lookup(tag int) (field.Field, bool)
	// GetOr returns the value of tag, or def when the tag is absent.
	GetOr(tag int, def string) string
	// Value returns the value of tag.
	Value(tag int) (string, bool)
	// Has reports whether tag is present.
	Has(tag int) bool
	// ByName returns the field for a symbolic tag name.
	ByName(name string) (field.Field, error)
	// At returns the i-th direct entry.
	At(i int) (field.Field, bool)
	// Len returns the number of direct entries. A group counts once.
	Len() int
	// Tags returns the tags of the direct entries in order.
	Tags() []int
	// Fields returns the direct entries in order. Groups appear as their counter field.
	Fields() []field.Field
	// Flatten returns every tag/value pair in wire order, expanding groups.
	Flatten() []field.Field
	// All iterates over the direct entries.
	All() iter.Seq[field.Field]

	// Slice returns entries [i, j) as a new set of the same storage kind.
	Slice(i, j int) (FieldSet, error)
	// Concat returns a new set holding the receiver's entries followed by other's.
	Concat(other FieldSet) (FieldSet, error)
	// With returns a new set holding the receiver's entries followed by fields.
	With(fields ...field.Field) (FieldSet, error)
	// Equal reports whether both sets flatten to the same pairs, ignoring order.
	Equal(other FieldSet) bool
	// EqualFields is Equal against a plain field list.
	EqualFields(fields ...field.Field) bool

	// Set replaces the entry with the same tag in place, or appends f.
	Set(f field.Field) error
	// Delete removes tag and reports whether it was present.
	Delete(tag int) bool
	// SetGroup stores g under its counter tag.
	SetGroup(g *Group) error
	// Group returns the group stored under tag.
	Group(tag int) (*Group, error)

	// Raw returns the wire encoding of all entries.
	Raw() []byte
	// AppendRaw appends the wire encoding to dst.
	AppendRaw(dst []byte) []byte
	// RawLen returns the length of the wire encoding.
	RawLen() int
	// String renders "((tag, value), ...)".
	String() string
	// Named renders "((Name, value), ...)".
	Named() string
	// Storage reports the storage strategy.
	Storage() format.Storage

	entries() iter.Seq[entry]
}

// core implements FieldSet over a storage strategy. Ordered and List embed it.
type core struct {
	s storage
}

func (c *core) Get(tag int) (field.Field, error) {
	e, ok := c.s.get(tag)
	if !ok {
		return field.Field{}, fmt.Errorf("%w: %d", errs.ErrTagNotFound, tag)
	}

	return e.field, nil
}

func (c *core) Lookup(tag int) (field.Field, bool) {
	e, ok := c.s.get(tag)
	return e.field, ok
}

func (c *core) GetOr(tag int, def string) string {
	if e, ok := c.s.get(tag); ok {
		return e.field.Value
	}

	return def
}

func (c *core) Value(tag int) (string, bool) {
	e, ok := c.s.get(tag)
	return e.field.Value, ok
}

func (c *core) Has(tag int) bool {
	_, ok := c.s.get(tag)
	return ok
}

// ByName fails with errs.ErrUnknownTag when name is not in the directory and with
// errs.ErrTagNotFound when the tag is known but absent.
func (c *core) ByName(name string) (field.Field, error) {
	tag, err := protocol.ResolveName(name)
	if err != nil {
		return field.Field{}, err
	}

	return c.Get(tag)
}

func (c *core) At(i int) (field.Field, bool) {
	e, ok := c.s.at(i)
	return e.field, ok
}

func (c *core) Len() int {
	return c.s.len()
}

func (c *core) Tags() []int {
	tags := make([]int, 0, c.s.len())
	for e := range c.s.all() {
		tags = append(tags, e.tag())
	}

	return tags
}

func (c *core) Fields() []field.Field {
	fields := make([]field.Field, 0, c.s.len())
	for e := range c.s.all() {
		fields = append(fields, e.field)
	}

	return fields
}

func (c *core) Flatten() []field.Field {
	return c.appendFlat(make([]field.Field, 0, c.pairs()))
}

func (c *core) All() iter.Seq[field.Field] {
	return func(yield func(field.Field) bool) {
		for e := range c.s.all() {
			if !yield(e.field) {
				return
			}
		}
	}
}

func (c *core) Slice(i, j int) (FieldSet, error) {
	if i < 0 || j < i || j > c.s.len() {
		return nil, fmt.Errorf("%w: slice [%d:%d] out of range for %d entries", errs.ErrValidation, i, j, c.s.len())
	}

	out := c.s.empty(j - i)
	n := 0
	for e := range c.s.all() {
		if n >= j {
			break
		}
		if n >= i {
			if err := out.add(e.clone()); err != nil {
				return nil, err
			}
		}
		n++
	}

	return wrap(out), nil
}

// Concat keeps the receiver's storage kind, so concatenating onto an Ordered set fails
// with errs.ErrDuplicateTags when other repeats one of its tags.
func (c *core) Concat(other FieldSet) (FieldSet, error) {
	out := c.cloneStorage(other.Len())
	for e := range other.entries() {
		if err := out.add(e.clone()); err != nil {
			return nil, err
		}
	}

	return wrap(out), nil
}

func (c *core) With(fields ...field.Field) (FieldSet, error) {
	out := c.cloneStorage(len(fields))
	for _, f := range fields {
		if err := out.add(entry{field: f}); err != nil {
			return nil, err
		}
	}

	return wrap(out), nil
}

func (c *core) Equal(other FieldSet) bool {
	if other == nil {
		return false
	}

	return sameFields(c.Flatten(), other.Flatten())
}

func (c *core) EqualFields(fields ...field.Field) bool {
	return sameFields(c.Flatten(), fields)
}

func (c *core) Set(f field.Field) error {
	if f.Tag <= 0 {
		return fmt.Errorf("%w: invalid tag %d", errs.ErrValidation, f.Tag)
	}
	c.s.put(entry{field: f})

	return nil
}

func (c *core) Delete(tag int) bool {
	return c.s.remove(tag)
}

func (c *core) SetGroup(g *Group) error {
	if g == nil {
		return fmt.Errorf("%w: nil group", errs.ErrInvalidGroup)
	}
	c.s.put(entry{field: g.Counter(), group: g})

	return nil
}

func (c *core) Group(tag int) (*Group, error) {
	e, ok := c.s.get(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrTagNotFound, tag)
	}
	if e.group == nil {
		return nil, fmt.Errorf("%w: tag %d is not a group", errs.ErrInvalidGroup, tag)
	}

	return e.group, nil
}

func (c *core) Raw() []byte {
	return c.AppendRaw(make([]byte, 0, c.RawLen()))
}

func (c *core) AppendRaw(dst []byte) []byte {
	for e := range c.s.all() {
		dst = e.appendRaw(dst)
	}

	return dst
}

func (c *core) RawLen() int {
	n := 0
	for e := range c.s.all() {
		n += e.rawLen()
	}

	return n
}

func (c *core) String() string {
	return c.format(false)
}

func (c *core) Named() string {
	return c.format(true)
}

func (c *core) Storage() format.Storage {
	return c.s.kind()
}

func (c *core) entries() iter.Seq[entry] {
	return c.s.all()
}

// pairs counts tag/value pairs with groups expanded.
func (c *core) pairs() int {
	n := 0
	for e := range c.s.all() {
		n += e.pairs()
	}

	return n
}

func (c *core) appendFlat(dst []field.Field) []field.Field {
	for e := range c.s.all() {
		dst = e.appendFlat(dst)
	}

	return dst
}

func (c *core) format(named bool) string {
	var sb strings.Builder
	sb.WriteByte('(')
	first := true
	for e := range c.s.all() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(e.format(named))
	}
	sb.WriteByte(')')

	return sb.String()
}

// cloneStorage deep-copies the receiver's entries into storage with room for extra more.
func (c *core) cloneStorage(extra int) storage {
	out := c.s.empty(c.s.len() + extra)
	for e := range c.s.all() {
		_ = out.add(e.clone())
	}

	return out
}

// Clone returns a deep copy of fs with the same storage kind.
func Clone(fs FieldSet) FieldSet {
	var out storage
	if fs.Storage().AllowsDuplicates() {
		out = newListStorage(fs.Len())
	} else {
		out = newMapStorage(fs.Len())
	}

	for e := range fs.entries() {
		_ = out.add(e.clone())
	}

	return wrap(out)
}

func wrap(s storage) FieldSet {
	if s.kind() == format.StorageList {
		return &List{core{s: s}}
	}

	return &Ordered{core{s: s}}
}

// sameFields compares two pair lists as multisets.
func sameFields(a, b []field.Field) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[field.Field]int, len(a))
	for _, f := range a {
		counts[f]++
	}
	for _, f := range b {
		counts[f]--
		if counts[f] < 0 {
			return false
		}
	}

	return true
}
