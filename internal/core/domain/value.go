package domain

// Value is the typed value stored under a key.
//
// The set of implementations is closed: String and *List.
type Value interface {
	// Type returns the type name reported to clients ("string" or "list").
	Type() string

	storedValue()
}

// String is a plain string value.
type String string

// Type implements Value.
func (String) Type() string { return "string" }

func (String) storedValue() {}

// Type implements Value.
func (*List) Type() string { return "list" }

func (*List) storedValue() {}

// End selects which end of a list a push targets.
type End int

const (
	// Head is the left end (index 0).
	Head End = iota
	// Tail is the right end (index Len()-1).
	Tail
)

// String returns "head" or "tail".
func (e End) String() string {
	if e == Head {
		return "head"
	}
	return "tail"
}
