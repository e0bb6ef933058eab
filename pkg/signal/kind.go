// Package signal defines the signal values raised by the asserts
// module: a named kind hierarchy used for matching, immutable
// signal payloads, and the raise helpers that carry them out of a
// block via panic.
package signal

// Kind is the category tag of a signal. Kinds form a tree: a kind
// derived from another matches its ancestor in Is checks, which is
// how "matches if subtype" is expressed without inheritance.
type Kind struct {
	name   string
	parent *Kind
}

// NewKind creates a root kind with the given display name.
func NewKind(name string) *Kind {
	return &Kind{name: name}
}

// Derive creates a child kind. Signals of the child kind match
// expectations declared against any of its ancestors.
func (k *Kind) Derive(name string) *Kind {
	return &Kind{name: name, parent: k}
}

// Name returns the display name of the kind.
func (k *Kind) Name() string {
	return k.name
}

// String returns the display name, so kinds render as their name
// inside message templates.
func (k *Kind) String() string {
	return k.name
}

// Is reports whether k is the given kind or one of its
// descendants. A nil receiver or argument never matches.
func (k *Kind) Is(other *Kind) bool {
	if other == nil {
		return false
	}
	for cur := k; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// IsAny reports whether k matches at least one of the given
// kinds.
func (k *Kind) IsAny(kinds ...*Kind) bool {
	for _, other := range kinds {
		if k.Is(other) {
			return true
		}
	}
	return false
}
