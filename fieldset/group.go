package fieldset

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/field"
)

// GroupInstance is one repetition of a group: a unique-tag set holding exactly the
// template's member tags, in template order.
type GroupInstance struct {
	Ordered
}

// NewGroupInstance creates an instance from its member fields.
func NewGroupInstance(fields ...field.Field) (*GroupInstance, error) {
	o, err := New(fields...)
	if err != nil {
		return nil, err
	}

	return &GroupInstance{Ordered: *o}, nil
}

// Clone returns a deep copy.
func (gi *GroupInstance) Clone() *GroupInstance {
	return &GroupInstance{Ordered: *gi.Ordered.Clone()}
}

func newGroupInstance(capacity int) *GroupInstance {
	return &GroupInstance{Ordered{core{s: newMapStorage(capacity)}}}
}

// Group is a repeating group: a counter tag followed by instances that each follow the
// same template.
type Group struct {
	tag       int
	count     string
	template  []int
	instances []*GroupInstance
}

// NewGroup parses a group from its counter field and the flat fields that follow it.
//
// The template comes from lookup. When lookup has no template for the counter tag, it is
// inferred from the leading run of distinct tags in fields. Nested groups are resolved
// through the same lookup. Every field must belong to the group.
//
// Returns errs.ErrInvalidGroup when an instance is incomplete or out of order, when the
// number of instances differs from the counter value, or when fields remain unconsumed.
func NewGroup(counter field.Field, lookup TemplateLookup, fields ...field.Field) (*Group, error) {
	members, ok := lookupTemplate(lookup, counter.Tag)
	if !ok {
		members = inferTemplate(fields)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no template for counter tag %d", errs.ErrInvalidGroup, counter.Tag)
	}

	a := &assembler{lookup: lookup, fields: fields}
	g, err := a.group(counter, members)
	if err != nil {
		return nil, err
	}
	if a.pos != len(fields) {
		return nil, fmt.Errorf("%w: tag %d does not belong to group %d", errs.ErrInvalidGroup,
			fields[a.pos].Tag, counter.Tag)
	}

	return g, nil
}

// MustNewGroup is NewGroup that panics on error.
func MustNewGroup(counter field.Field, lookup TemplateLookup, fields ...field.Field) *Group {
	g, err := NewGroup(counter, lookup, fields...)
	if err != nil {
		panic(err)
	}

	return g
}

// NewGroupOf assembles a group from prepared instances. Each instance must hold exactly
// the template's tags in template order.
func NewGroupOf(counterTag int, template []int, instances ...*GroupInstance) (*Group, error) {
	if counterTag <= 0 {
		return nil, fmt.Errorf("%w: invalid counter tag %d", errs.ErrInvalidGroup, counterTag)
	}
	if len(template) == 0 {
		return nil, fmt.Errorf("%w: empty template for counter tag %d", errs.ErrInvalidGroup, counterTag)
	}

	for i, inst := range instances {
		if inst == nil {
			return nil, fmt.Errorf("%w: instance %d of group %d is nil", errs.ErrInvalidGroup, i, counterTag)
		}
		if tags := inst.Tags(); !slices.Equal(tags, template) {
			return nil, fmt.Errorf("%w: instance %d of group %d has tags %v, want %v",
				errs.ErrInvalidGroup, i, counterTag, tags, template)
		}
	}

	return &Group{
		tag:       counterTag,
		template:  slices.Clone(template),
		instances: slices.Clone(instances),
	}, nil
}

// Tag returns the counter tag.
func (g *Group) Tag() int {
	return g.tag
}

// Value returns the counter value. Parsed groups keep the counter text as received,
// so "02" stays "02"; other groups render the number of instances.
func (g *Group) Value() string {
	if g.count != "" {
		return g.count
	}

	return strconv.Itoa(len(g.instances))
}

// Counter returns the counter field.
func (g *Group) Counter() field.Field {
	return field.Field{Tag: g.tag, Value: g.Value()}
}

// Size returns the number of instances.
func (g *Group) Size() int {
	return len(g.instances)
}

// Len returns the number of tag/value pairs in the group, counting the counter field and
// the contents of nested groups.
func (g *Group) Len() int {
	n := 1
	for _, inst := range g.instances {
		n += inst.pairs()
	}

	return n
}

// Template returns a copy of the member tags.
func (g *Group) Template() []int {
	return slices.Clone(g.template)
}

// Instances returns the instances in order. The slice is a copy; the instances are not.
func (g *Group) Instances() []*GroupInstance {
	return slices.Clone(g.instances)
}

// Instance returns the i-th instance.
func (g *Group) Instance(i int) (*GroupInstance, bool) {
	if i < 0 || i >= len(g.instances) {
		return nil, false
	}

	return g.instances[i], true
}

// Flatten returns the counter field followed by every instance pair.
func (g *Group) Flatten() []field.Field {
	return g.appendFlat(make([]field.Field, 0, g.Len()))
}

// Raw returns the wire encoding of the group.
func (g *Group) Raw() []byte {
	return g.AppendRaw(make([]byte, 0, g.RawLen()))
}

// AppendRaw appends the wire encoding of the group to dst.
func (g *Group) AppendRaw(dst []byte) []byte {
	dst = g.Counter().AppendRaw(dst)
	for _, inst := range g.instances {
		dst = inst.AppendRaw(dst)
	}

	return dst
}

// RawLen returns the length of the wire encoding.
func (g *Group) RawLen() int {
	n := g.Counter().RawLen()
	for _, inst := range g.instances {
		n += inst.RawLen()
	}

	return n
}

// String renders "(215, 2):((216, a), (217, b)), ((216, c), (217, d))".
func (g *Group) String() string {
	return g.format(false)
}

// Named renders the group with tag names.
func (g *Group) Named() string {
	return g.format(true)
}

// Equal reports whether both groups have the same counter tag and template and
// pairwise identical instances.
func (g *Group) Equal(other *Group) bool {
	if g == nil || other == nil {
		return g == other
	}

	return g.tag == other.tag &&
		slices.Equal(g.template, other.template) &&
		slices.Equal(g.Flatten(), other.Flatten())
}

// Clone returns a deep copy.
func (g *Group) Clone() *Group {
	instances := make([]*GroupInstance, len(g.instances))
	for i, inst := range g.instances {
		instances[i] = inst.Clone()
	}

	return &Group{tag: g.tag, count: g.count, template: slices.Clone(g.template), instances: instances}
}

func (g *Group) appendFlat(dst []field.Field) []field.Field {
	dst = append(dst, g.Counter())
	for _, inst := range g.instances {
		dst = inst.appendFlat(dst)
	}

	return dst
}

func (g *Group) format(named bool) string {
	var sb strings.Builder
	if named {
		sb.WriteString(g.Counter().Named())
	} else {
		sb.WriteString(g.Counter().String())
	}
	sb.WriteByte(':')

	for i, inst := range g.instances {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(inst.format(named))
	}

	return sb.String()
}
