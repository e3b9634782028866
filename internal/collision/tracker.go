// Package collision detects repeated tags in a field sequence. The message factory uses
// it to choose between unique-tag and duplicate-tolerant storage, and unique-tag sets use
// it to name every repeated tag when they reject a sequence.
package collision

// Tracker remembers which tracked tags repeat.
type Tracker struct {
	seen       map[int]int // tag -> occurrences
	duplicates []int       // tags seen more than once, first repeat order
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[int]int)}
}

// Track records one occurrence of tag and reports whether it was new.
func (t *Tracker) Track(tag int) bool {
	n := t.seen[tag]
	t.seen[tag] = n + 1

	if n == 1 {
		t.duplicates = append(t.duplicates, tag)
	}

	return n == 0
}

// HasDuplicates reports whether any tag was tracked more than once.
func (t *Tracker) HasDuplicates() bool {
	return len(t.duplicates) > 0
}

// Duplicates returns the repeated tags in the order their first repeat was seen.
func (t *Tracker) Duplicates() []int {
	return t.duplicates
}

// HasDuplicates reports whether tags contains a repeated value.
func HasDuplicates(tags ...int) bool {
	t := NewTracker()
	for _, tag := range tags {
		if !t.Track(tag) {
			return true
		}
	}

	return false
}

// Duplicates returns every repeated value of tags, once each, in first repeat order.
func Duplicates(tags ...int) []int {
	t := NewTracker()
	for _, tag := range tags {
		t.Track(tag)
	}

	return t.Duplicates()
}
