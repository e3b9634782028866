package fieldset

import (
	"fmt"
	"iter"
	"slices"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/field"
	"github.com/aemr3/WTFIX/format"
	"github.com/aemr3/WTFIX/internal/collision"
)

// entry is one direct member of a FieldSet: a plain field, or a group stored under its
// counter field.
type entry struct {
	field field.Field
	group *Group
}

func (e entry) tag() int {
	return e.field.Tag
}

func (e entry) clone() entry {
	if e.group != nil {
		return entry{field: e.field, group: e.group.Clone()}
	}

	return e
}

// pairs returns the number of tag/value pairs e expands to.
func (e entry) pairs() int {
	if e.group != nil {
		return e.group.Len()
	}

	return 1
}

func (e entry) appendRaw(dst []byte) []byte {
	if e.group != nil {
		return e.group.AppendRaw(dst)
	}

	return e.field.AppendRaw(dst)
}

func (e entry) rawLen() int {
	if e.group != nil {
		return e.group.RawLen()
	}

	return e.field.RawLen()
}

func (e entry) appendFlat(dst []field.Field) []field.Field {
	if e.group != nil {
		return e.group.appendFlat(dst)
	}

	return append(dst, e.field)
}

func (e entry) format(named bool) string {
	switch {
	case e.group != nil && named:
		return e.group.Named()
	case e.group != nil:
		return e.group.String()
	case named:
		return e.field.Named()
	default:
		return e.field.String()
	}
}

// storage is the strategy behind a FieldSet.
type storage interface {
	kind() format.Storage
	len() int
	// get returns the first entry with tag.
	get(tag int) (entry, bool)
	at(i int) (entry, bool)
	// put replaces the first entry with the same tag in place, or appends.
	put(e entry)
	// add appends e. Unique-tag storage rejects a tag already present.
	add(e entry) error
	// remove deletes every entry with tag.
	remove(tag int) bool
	all() iter.Seq[entry]
	empty(capacity int) storage
}

// mapStorage keeps unique tags in insertion order.
type mapStorage struct {
	m *orderedmap.OrderedMap[int, entry]
}

func newMapStorage(capacity int) *mapStorage {
	return &mapStorage{m: orderedmap.NewOrderedMapWithCapacity[int, entry](capacity)}
}

func (s *mapStorage) kind() format.Storage { return format.StorageOrdered }

func (s *mapStorage) len() int { return s.m.Len() }

func (s *mapStorage) get(tag int) (entry, bool) {
	return s.m.Get(tag)
}

func (s *mapStorage) at(i int) (entry, bool) {
	if i < 0 || i >= s.m.Len() {
		return entry{}, false
	}

	n := 0
	for _, e := range s.m.AllFromFront() {
		if n == i {
			return e, true
		}
		n++
	}

	return entry{}, false
}

func (s *mapStorage) put(e entry) {
	s.m.Set(e.tag(), e)
}

func (s *mapStorage) add(e entry) error {
	if s.m.Has(e.tag()) {
		return fmt.Errorf("%w: %d", errs.ErrDuplicateTags, e.tag())
	}
	s.m.Set(e.tag(), e)

	return nil
}

// duplicateTagsError wraps errs.ErrDuplicateTags with every tag tags repeats.
func duplicateTagsError(tags []int) error {
	return fmt.Errorf("%w: %v", errs.ErrDuplicateTags, collision.Duplicates(tags...))
}

func tagsOf(fields []field.Field) []int {
	tags := make([]int, len(fields))
	for i, f := range fields {
		tags[i] = f.Tag
	}

	return tags
}

func (s *mapStorage) remove(tag int) bool {
	return s.m.Delete(tag)
}

func (s *mapStorage) all() iter.Seq[entry] {
	return func(yield func(entry) bool) {
		for _, e := range s.m.AllFromFront() {
			if !yield(e) {
				return
			}
		}
	}
}

func (s *mapStorage) empty(capacity int) storage {
	return newMapStorage(capacity)
}

// listStorage keeps entries in a slice and tolerates repeated tags.
type listStorage struct {
	entries []entry
}

func newListStorage(capacity int) *listStorage {
	return &listStorage{entries: make([]entry, 0, capacity)}
}

func (s *listStorage) kind() format.Storage { return format.StorageList }

func (s *listStorage) len() int { return len(s.entries) }

func (s *listStorage) get(tag int) (entry, bool) {
	i := s.index(tag)
	if i < 0 {
		return entry{}, false
	}

	return s.entries[i], true
}

func (s *listStorage) at(i int) (entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return entry{}, false
	}

	return s.entries[i], true
}

func (s *listStorage) put(e entry) {
	if i := s.index(e.tag()); i >= 0 {
		s.entries[i] = e
		return
	}
	s.entries = append(s.entries, e)
}

func (s *listStorage) add(e entry) error {
	s.entries = append(s.entries, e)
	return nil
}

func (s *listStorage) remove(tag int) bool {
	n := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(e entry) bool { return e.tag() == tag })

	return len(s.entries) != n
}

func (s *listStorage) all() iter.Seq[entry] {
	return slices.Values(s.entries)
}

func (s *listStorage) empty(capacity int) storage {
	return newListStorage(capacity)
}

func (s *listStorage) index(tag int) int {
	return slices.IndexFunc(s.entries, func(e entry) bool { return e.tag() == tag })
}
