// Package template holds repeating-group templates: for each group counter tag, the
// ordered list of member tags that make up one group instance.
//
// Templates drive group parsing. A FieldSet built with a template lookup folds the
// counter tag and the following member tags into a Group; without a template the same
// tags stay flat.
//
// # Registry
//
// Registry is the shared, mutable template store. Writes take an exclusive lock and
// reads a shared one, so a single registry may be configured once at start-up and read
// from many goroutines. Parsed messages keep their own snapshot (Clone) and are not
// affected by later changes.
//
//	reg, err := template.NewRegistry(map[int][]int{
//	    protocol.TagNoMsgTypes: {protocol.TagRefMsgType, protocol.TagMsgDirection},
//	})
//	reg.IsCounterTag(384) // true
//	reg.IsMemberTag(372)  // true
//
// All Registry methods are safe on a nil receiver, which behaves as an empty registry.
package template

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"sync"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/internal/hash"
)

// Lookup resolves a counter tag to its template.
type Lookup interface {
	// Template returns the member tags of counter's group.
	Template(counter int) ([]int, bool)
}

// Map is a plain, unsynchronized Lookup for one-off use.
type Map map[int][]int

var _ Lookup = Map(nil)

// Template returns the member tags of counter.
func (m Map) Template(counter int) ([]int, bool) {
	members, ok := m[counter]
	return members, ok
}

// Registry is a concurrency-safe Lookup that can be modified at run time.
type Registry struct {
	mu        sync.RWMutex
	templates map[int][]int
}

var _ Lookup = (*Registry)(nil)

// NewRegistry creates a registry preloaded with templates.
func NewRegistry(templates map[int][]int) (*Registry, error) {
	r := &Registry{templates: make(map[int][]int, len(templates))}
	if err := r.Add(templates); err != nil {
		return nil, err
	}

	return r, nil
}

// MustNewRegistry is NewRegistry that panics on error.
func MustNewRegistry(templates map[int][]int) *Registry {
	r, err := NewRegistry(templates)
	if err != nil {
		panic(err)
	}

	return r
}

// Add registers templates, replacing existing entries for the same counter tags.
//
// Every template is validated before any is stored: counter and member tags must be
// positive and each template needs at least one member tag. On error the registry is
// left unchanged.
func (r *Registry) Add(templates map[int][]int) error {
	for counter, members := range templates {
		if err := validate(counter, members); err != nil {
			return err
		}
	}

	if r == nil {
		return fmt.Errorf("%w: nil registry", errs.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.templates == nil {
		r.templates = make(map[int][]int, len(templates))
	}
	for counter, members := range templates {
		r.templates[counter] = slices.Clone(members)
	}

	return nil
}

// Remove deletes the template of counter. It reports whether a template was removed.
func (r *Registry) Remove(counter int) bool {
	if r == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[counter]; !ok {
		return false
	}
	delete(r.templates, counter)

	return true
}

// Template returns a copy of counter's member tags.
func (r *Registry) Template(counter int) ([]int, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.templates[counter]
	if !ok {
		return nil, false
	}

	return slices.Clone(members), true
}

// IsCounterTag reports whether tag is registered as a group counter.
func (r *Registry) IsCounterTag(tag int) bool {
	if r == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[tag]

	return ok
}

// IsMemberTag reports whether tag is a member of any registered template.
func (r *Registry) IsMemberTag(tag int) bool {
	if r == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, members := range r.templates {
		if slices.Contains(members, tag) {
			return true
		}
	}

	return false
}

// IsTemplateTag reports whether tag is either a counter or a member tag.
func (r *Registry) IsTemplateTag(tag int) bool {
	return r.IsCounterTag(tag) || r.IsMemberTag(tag)
}

// Counters returns the registered counter tags in ascending order.
func (r *Registry) Counters() []int {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.templates))
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.templates)
}

// Clone returns an independent snapshot of the registry.
func (r *Registry) Clone() *Registry {
	c := &Registry{templates: make(map[int][]int)}
	if r == nil {
		return c
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for counter, members := range r.templates {
		c.templates[counter] = slices.Clone(members)
	}

	return c
}

// Equal reports whether both registries hold the same templates. A nil registry equals
// an empty one.
func (r *Registry) Equal(other *Registry) bool {
	if r == other {
		return true
	}

	return maps.EqualFunc(r.snapshot(), other.snapshot(), func(a, b []int) bool {
		return slices.Equal(a, b)
	})
}

// Fingerprint returns an xxHash64 of the registry contents. Registries with the same
// templates have the same fingerprint regardless of insertion order.
func (r *Registry) Fingerprint() uint64 {
	d := hash.New()
	_, _ = d.Write(r.appendCanonical(nil))

	return d.Sum64()
}

// String renders the registry as "{counter: [members], ...}" in counter order.
func (r *Registry) String() string {
	templates := r.snapshot()

	out := []byte{'{'}
	for i, counter := range slices.Sorted(maps.Keys(templates)) {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = fmt.Appendf(out, "%d: %v", counter, templates[counter])
	}

	return string(append(out, '}'))
}

// appendCanonical appends "counter:m1,m2;" for every template in counter order.
func (r *Registry) appendCanonical(dst []byte) []byte {
	templates := r.snapshot()

	for _, counter := range slices.Sorted(maps.Keys(templates)) {
		dst = strconv.AppendInt(dst, int64(counter), 10)
		dst = append(dst, ':')
		for i, tag := range templates[counter] {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = strconv.AppendInt(dst, int64(tag), 10)
		}
		dst = append(dst, ';')
	}

	return dst
}

func (r *Registry) snapshot() map[int][]int {
	return r.Clone().templates
}

func validate(counter int, members []int) error {
	if counter <= 0 {
		return fmt.Errorf("%w: invalid counter tag %d", errs.ErrValidation, counter)
	}
	if len(members) == 0 {
		return fmt.Errorf("%w: template for counter %d has no member tags", errs.ErrValidation, counter)
	}
	for _, tag := range members {
		if tag <= 0 {
			return fmt.Errorf("%w: invalid member tag %d in template %d", errs.ErrValidation, tag, counter)
		}
	}

	return nil
}
