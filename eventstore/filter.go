package eventstore

import (
	"cmp"
	"slices"
	"strings"
)

type FilterEventTypeString = string
type FilterKeyString = string
type FilterValString = string

/***** Filter *****/

// Filter selects a dynamic event stream. It is the OR of its items.
// A Filter without items selects every event.
//
// Supported shapes:
//
//   - no items (every event)
//   - (eventType OR eventType ...)
//   - (predicate OR predicate ...) / (predicate AND predicate ...)
//   - ((eventType OR eventType ...) AND (predicate OR predicate ...))
//   - ((eventType OR eventType ...) AND (predicate AND predicate ...))
//   - any OR-combination of the above, one FilterItem per combination
type Filter struct {
	items []FilterItem
}

// NewFilter combines one or more items with OR. Items without event types and predicates are dropped.
func NewFilter(item FilterItem, items ...FilterItem) Filter {
	all := append([]FilterItem{item}, items...)
	all = slices.DeleteFunc(all, func(fi FilterItem) bool {
		return len(fi.eventTypes) == 0 && len(fi.predicates) == 0
	})

	return Filter{items: slices.Clip(all)}
}

// MatchingAnyEvent returns the empty filter which selects every event.
func MatchingAnyEvent() Filter {
	return Filter{}
}

func (f Filter) Items() []FilterItem {
	return f.items
}

// SelectsEverything reports whether the filter has no restrictions.
func (f Filter) SelectsEverything() bool {
	return len(f.items) == 0
}

// Matches evaluates the filter against one event.
// valueOf must return the payload value for a top-level key as string.
func (f Filter) Matches(eventType FilterEventTypeString, valueOf func(key FilterKeyString) (FilterValString, bool)) bool {
	if f.SelectsEverything() {
		return true
	}

	for _, item := range f.items {
		if item.Matches(eventType, valueOf) {
			return true
		}
	}

	return false
}

// String renders the filter in a stable form, used for logging.
func (f Filter) String() string {
	if f.SelectsEverything() {
		return "*"
	}

	parts := make([]string, 0, len(f.items))
	for _, item := range f.items {
		parts = append(parts, item.String())
	}

	return strings.Join(parts, " OR ")
}

/***** FilterItem *****/

// FilterItem is one AND-combination of event types and payload predicates.
type FilterItem struct {
	eventTypes             []FilterEventTypeString
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

// Select starts a FilterItem matching any of the given event types.
// Empty event types are removed, the rest is sorted and de-duplicated.
func Select(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) FilterItem {
	all := append([]FilterEventTypeString{eventType}, eventTypes...)
	all = slices.DeleteFunc(all, func(e FilterEventTypeString) bool { return e == "" })
	slices.Sort(all)

	return FilterItem{eventTypes: slices.Clip(slices.Compact(all))}
}

// SelectAnyEventType starts a FilterItem that only restricts by predicates.
func SelectAnyEventType() FilterItem {
	return FilterItem{}
}

// Where restricts the item to events matching ANY of the predicates.
func (fi FilterItem) Where(predicate FilterPredicate, predicates ...FilterPredicate) FilterItem {
	fi.predicates = sanitizePredicates(append(slices.Clone(fi.predicates), append([]FilterPredicate{predicate}, predicates...)...))
	fi.allPredicatesMustMatch = false

	return fi
}

// WhereAll restricts the item to events matching ALL the predicates.
func (fi FilterItem) WhereAll(predicate FilterPredicate, predicates ...FilterPredicate) FilterItem {
	fi.predicates = sanitizePredicates(append(slices.Clone(fi.predicates), append([]FilterPredicate{predicate}, predicates...)...))
	fi.allPredicatesMustMatch = true

	return fi
}

func (fi FilterItem) EventTypes() []FilterEventTypeString {
	return fi.eventTypes
}

func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

// Matches evaluates the item against one event, with the same semantics the SQL engines use.
func (fi FilterItem) Matches(eventType FilterEventTypeString, valueOf func(key FilterKeyString) (FilterValString, bool)) bool {
	if len(fi.eventTypes) > 0 && !slices.Contains(fi.eventTypes, eventType) {
		return false
	}

	if len(fi.predicates) == 0 {
		return true
	}

	matched := 0
	for _, p := range fi.predicates {
		if v, ok := valueOf(p.key); ok && v == p.val {
			matched++
		}
	}

	if fi.allPredicatesMustMatch {
		return matched == len(fi.predicates)
	}

	return matched > 0
}

func (fi FilterItem) String() string {
	var b strings.Builder

	b.WriteString("(")
	b.WriteString(strings.Join(fi.eventTypes, "|"))
	b.WriteString(")")

	if len(fi.predicates) > 0 {
		joiner := " | "
		if fi.allPredicatesMustMatch {
			joiner = " & "
		}

		preds := make([]string, 0, len(fi.predicates))
		for _, p := range fi.predicates {
			preds = append(preds, p.key+"="+p.val)
		}

		b.WriteString("[")
		b.WriteString(strings.Join(preds, joiner))
		b.WriteString("]")
	}

	return b.String()
}

/***** FilterPredicate *****/

// FilterPredicate matches a top-level string field of the event payload.
type FilterPredicate struct {
	key FilterKeyString
	val FilterValString
}

// P builds a FilterPredicate.
func P(key FilterKeyString, val FilterValString) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() FilterKeyString {
	return fp.key
}

func (fp FilterPredicate) Val() FilterValString {
	return fp.val
}

// sanitizePredicates removes partial predicates, sorts by key and value, and removes duplicates.
func sanitizePredicates(predicates []FilterPredicate) []FilterPredicate {
	predicates = slices.DeleteFunc(predicates, func(p FilterPredicate) bool {
		return p.key == "" || p.val == ""
	})

	slices.SortFunc(predicates, func(a, b FilterPredicate) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}

		return cmp.Compare(a.val, b.val)
	})

	return slices.Clip(slices.Compact(predicates))
}
