// Package fieldset provides the ordered field collections that every WTFIX message is
// built from.
//
// # Storage
//
// Two implementations share the FieldSet interface:
//
//   - Ordered keeps unique tags in an insertion-ordered map. It is the default and
//     rejects repeated tags with errs.ErrDuplicateTags.
//   - List keeps entries in a slice. It accepts repeated tags, at the cost of linear
//     lookups, for venues that send non-standard messages.
//
// Both preserve insertion order, so Raw always renders fields in the order they were
// added. Equal, on the other hand, ignores order: two sets are equal when they flatten
// to the same multiset of tag/value pairs.
//
// # Groups
//
// A repeating group is stored under its counter tag. Get on the counter tag returns the
// counter field, Group returns the Group itself, and Raw expands it in place:
//
//	g, err := fieldset.NewGroup(field.MustNew(215, 2), template.Map{215: {216, 217}},
//	    field.MustNew(216, "a"), field.MustNew(217, "b"),
//	    field.MustNew(216, "c"), field.MustNew(217, "d"),
//	)
//	g.Raw()    // "215=2|216=a|217=b|216=c|217=d|"
//	g.String() // "(215, 2):((216, a), (217, b)), ((216, c), (217, d))"
//
// Group instances must match their template exactly: every member tag, in template
// order. Incomplete or out-of-order instances, and a counter value that differs from
// the number of instances found, fail with errs.ErrInvalidGroup. Templates may nest:
// a member tag that is itself a counter tag in the lookup opens a nested group.
//
// NewOrderedFrom and NewListFrom apply the same rules to a whole message body, folding
// every counter tag known to the lookup into a Group as they go.
//
// # Concurrency
//
// FieldSets are not safe for concurrent mutation. Values built once and only read may
// be shared between goroutines.
package fieldset
