package grammar

import "fmt"

// SyntaxError is a malformed deck construct: bad repeat-count syntax, an
// unterminated quoted string, a record that never closes. It is fatal to
// the current parse; no partial Deck is returned.
type SyntaxError struct {
	Keyword string // enclosing keyword, if known
	Record  int    // 0-based record index within the keyword
	Line    int    // source line of the offending token
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Keyword == "" {
		return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("syntax error in %s, record %d, line %d: %s",
		e.Keyword, e.Record+1, e.Line, e.Message)
}

// ArityError is a record whose item count disagrees with the keyword
// schema. Under the permissive policy a missing-trailing-items mismatch is
// downgraded to a recorded warning; under the strict policy, or for excess
// items, it aborts the parse.
type ArityError struct {
	Keyword string
	Record  int
	Line    int
	Want    int
	Got     int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s record %d, line %d: schema wants %d items, record has %d",
		e.Keyword, e.Record+1, e.Line, e.Want, e.Got)
}
