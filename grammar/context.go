package grammar

// Strictness is the caller-supplied policy for schema mismatches.
type Strictness int

// Parse policies. Permissive fills missing trailing items from schema
// defaults and records a warning; Strict aborts the whole parse on any
// mismatch, returning no partial Deck.
const (
	Permissive Strictness = iota
	Strict
)

// Warning is a non-fatal parse finding, recorded under the permissive
// policy instead of aborting.
type Warning struct {
	Keyword string
	Record  int
	Line    int
	Message string
}

// ParseContext supplies the strictness policy to a parse run and collects
// the warnings the run produces. A fresh context should be used per parse.
type ParseContext struct {
	Strictness Strictness
	warnings   []Warning
}

// NewParseContext creates a permissive parse context.
func NewParseContext() *ParseContext {
	return &ParseContext{Strictness: Permissive}
}

func (pc *ParseContext) warn(w Warning) {
	tracer().P("keyword", w.Keyword).Infof("deck warning: %s", w.Message)
	pc.warnings = append(pc.warnings, w)
}

// Warnings returns the warnings collected so far, in parse order.
func (pc *ParseContext) Warnings() []Warning {
	return pc.warnings
}
