package fieldset

import (
	"fmt"
	"slices"

	"github.com/aemr3/WTFIX/encoding"
	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/field"
)

// assembler folds a flat field sequence into entries, turning every counter tag that has
// a template into a Group.
//
// Instances must match their template exactly: the first template tag opens an
// instance, every following template tag must appear next and in order, and a tag
// outside the template closes the group.
type assembler struct {
	lookup TemplateLookup
	fields []field.Field
	pos    int
}

func assemble(s storage, lookup TemplateLookup, fields []field.Field) error {
	a := &assembler{lookup: lookup, fields: fields}
	for a.pos < len(a.fields) {
		e, err := a.next()
		if err != nil {
			return err
		}
		if err := s.add(e); err != nil {
			return err
		}
	}

	return nil
}

func (a *assembler) next() (entry, error) {
	f := a.fields[a.pos]
	a.pos++

	members, ok := lookupTemplate(a.lookup, f.Tag)
	if !ok {
		return entry{field: f}, nil
	}

	g, err := a.group(f, members)
	if err != nil {
		return entry{}, err
	}

	return entry{field: g.Counter(), group: g}, nil
}

// group consumes the instances following counter, which has already been consumed.
func (a *assembler) group(counter field.Field, members []int) (*Group, error) {
	declared, ok := encoding.ParseUint([]byte(counter.Value))
	if !ok {
		return nil, fmt.Errorf("%w: counter tag %d has non-numeric value %q",
			errs.ErrInvalidGroup, counter.Tag, counter.Value)
	}

	g := &Group{tag: counter.Tag, count: counter.Value, template: slices.Clone(members)}
	for a.pos < len(a.fields) && a.fields[a.pos].Tag == members[0] {
		inst, err := a.instance(counter.Tag, members)
		if err != nil {
			return nil, err
		}
		g.instances = append(g.instances, inst)
	}

	if len(g.instances) != declared {
		return nil, fmt.Errorf("%w: group %d declares %d instances, found %d",
			errs.ErrInvalidGroup, counter.Tag, declared, len(g.instances))
	}

	return g, nil
}

func (a *assembler) instance(counterTag int, members []int) (*GroupInstance, error) {
	inst := newGroupInstance(len(members))

	for i, want := range members {
		if a.pos >= len(a.fields) {
			return nil, fmt.Errorf("%w: group %d instance ends before tag %d",
				errs.ErrInvalidGroup, counterTag, want)
		}

		f := a.fields[a.pos]
		if f.Tag != want {
			return nil, a.mismatch(counterTag, members, i, f.Tag)
		}
		a.pos++

		e := entry{field: f}
		if nested, ok := lookupTemplate(a.lookup, f.Tag); ok {
			g, err := a.group(f, nested)
			if err != nil {
				return nil, err
			}
			e = entry{field: g.Counter(), group: g}
		}

		if err := inst.s.add(e); err != nil {
			return nil, fmt.Errorf("%w: group %d: %w", errs.ErrInvalidGroup, counterTag, err)
		}
	}

	return inst, nil
}

func (a *assembler) mismatch(counterTag int, members []int, i, got int) error {
	switch {
	case got == members[0]:
		return fmt.Errorf("%w: group %d instance restarts at tag %d before tag %d",
			errs.ErrInvalidGroup, counterTag, got, members[i])
	case slices.Contains(members, got):
		return fmt.Errorf("%w: group %d tag %d out of order, expected %d",
			errs.ErrInvalidGroup, counterTag, got, members[i])
	default:
		return fmt.Errorf("%w: group %d instance incomplete, missing tag %d",
			errs.ErrInvalidGroup, counterTag, members[i])
	}
}

func lookupTemplate(lookup TemplateLookup, tag int) ([]int, bool) {
	if lookup == nil {
		return nil, false
	}

	members, ok := lookup.Template(tag)
	if !ok || len(members) == 0 {
		return nil, false
	}

	return members, true
}

// inferTemplate returns the leading run of distinct tags in fields.
func inferTemplate(fields []field.Field) []int {
	var members []int
	for _, f := range fields {
		if slices.Contains(members, f.Tag) {
			break
		}
		members = append(members, f.Tag)
	}

	return members
}
