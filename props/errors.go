package props

import "fmt"

// UnsupportedKeywordError is returned by the hard accessors when a name is
// not in the supported-keyword registry, or names a property of the other
// namespace. It signals a programming or configuration error in the caller
// and is never recovered automatically; the soft capability query
// SupportsGridProperty returns false instead.
type UnsupportedKeywordError struct {
	Name string
}

func (e UnsupportedKeywordError) Error() string {
	return fmt.Sprintf("unsupported grid property keyword %q", e.Name)
}

// DerivationError wraps a failure while processing a deck keyword during
// the one-shot derivation pass.
type DerivationError struct {
	Keyword string
	Line    int
	Err     error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("deriving %s (line %d): %v", e.Keyword, e.Line, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}
