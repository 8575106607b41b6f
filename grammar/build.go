package grammar

import (
	"strconv"
	"strings"

	"github.com/npillmayer/resdeck/schema"
)

// BuildDeck tokenizes input text and assembles the ordered, immutable Deck
// of keyword occurrences, validating record arity against the keyword
// schema under the context's strictness policy. On a fatal error no
// partial deck is returned.
func BuildDeck(input string, ctx *ParseContext) (*Deck, error) {
	if ctx == nil {
		ctx = NewParseContext()
	}
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	b := &builder{tokens: tokens, ctx: ctx}
	return b.build()
}

type builder struct {
	tokens []token
	pos    int
	ctx    *ParseContext
}

func (b *builder) eof() bool {
	return b.pos >= len(b.tokens)
}

func (b *builder) peek() token {
	return b.tokens[b.pos]
}

func (b *builder) next() token {
	t := b.tokens[b.pos]
	b.pos++
	return t
}

func (b *builder) build() (*Deck, error) {
	deck := &Deck{}
	for !b.eof() {
		t := b.peek()
		if t.typ != tokWord {
			if b.ctx.Strictness == Strict {
				return nil, &SyntaxError{Line: t.line,
					Message: "expected a keyword name, found " + t.text}
			}
			b.ctx.warn(Warning{Line: t.line,
				Message: "stray token " + t.text + " outside any keyword, skipped"})
			b.next()
			continue
		}
		entry, ok := schema.Get(t.text)
		if !ok {
			if b.ctx.Strictness == Strict {
				return nil, &SyntaxError{Line: t.line,
					Message: "unknown keyword " + schema.Canonical(t.text)}
			}
			b.skipUnknown(t)
			continue
		}
		b.next()
		kw := &Keyword{name: entry.Name, entry: entry, line: t.line}
		var err error
		switch entry.Kind {
		case schema.Section:
			// no records of its own
		case schema.Fixed:
			err = b.fixedRecords(kw)
		case schema.List:
			err = b.listRecords(kw)
		case schema.Data:
			err = b.dataRecord(kw)
		}
		if err != nil {
			return nil, err
		}
		deck.keywords = append(deck.keywords, kw)
	}
	tracer().Infof("deck built with %d keyword occurrences", deck.Len())
	return deck, nil
}

// skipUnknown drops an unrecognized keyword and everything up to the next
// recognized keyword name, recording a warning.
func (b *builder) skipUnknown(t token) {
	b.ctx.warn(Warning{Keyword: schema.Canonical(t.text), Line: t.line,
		Message: "unknown keyword " + schema.Canonical(t.text) + ", skipped"})
	b.next()
	for !b.eof() {
		la := b.peek()
		if la.typ == tokWord && schema.Known(la.text) {
			return
		}
		b.next()
	}
}

// rawItem is one expanded, still untyped record item.
type rawItem struct {
	text   string
	quoted bool
	set    bool
	line   int
}

// rawRecord collects tokens up to the terminating slash and expands
// repeat-count shorthand. The boolean result tells whether the record was a
// lone '/' on a line of its own, which closes a list keyword.
func (b *builder) rawRecord(kw *Keyword) ([]rawItem, int, bool, error) {
	var items []rawItem
	line := 0
	for !b.eof() {
		prevLine := b.lineBefore()
		t := b.next()
		if line == 0 {
			line = t.line
		}
		switch t.typ {
		case tokSlash:
			closing := len(items) == 0 && t.line != prevLine
			return items, line, closing, nil
		case tokString:
			items = append(items, rawItem{
				text:   strings.TrimSuffix(strings.TrimPrefix(t.text, "'"), "'"),
				quoted: true,
				set:    true,
				line:   t.line,
			})
		case tokWord:
			expanded, err := expandWord(t, kw)
			if err != nil {
				return nil, line, false, err
			}
			items = append(items, expanded...)
		}
	}
	return nil, line, false, &SyntaxError{
		Keyword: kw.name,
		Record:  len(kw.records),
		Line:    kw.line,
		Message: "record not terminated by '/' before end of input",
	}
}

// lineBefore is the line of the token preceding the current one, or 0 at
// the start of input. Used to recognize a '/' standing on its own line.
func (b *builder) lineBefore() int {
	if b.pos == 0 {
		return 0
	}
	return b.tokens[b.pos-1].line
}

// expandWord turns a bare word into one or more raw items, expanding the
// N*value repeat shorthand. A bare '*' (or 'N*') yields defaulted items.
func expandWord(t token, kw *Keyword) ([]rawItem, error) {
	text := t.text
	if text == "*" {
		return []rawItem{{set: false, line: t.line}}, nil
	}
	star := strings.IndexByte(text, '*')
	if star < 0 {
		return []rawItem{{text: text, set: true, line: t.line}}, nil
	}
	count, err := strconv.Atoi(text[:star])
	if err != nil || count <= 0 {
		return nil, &SyntaxError{
			Keyword: kw.name,
			Record:  len(kw.records),
			Line:    t.line,
			Message: "malformed repeat count " + text,
		}
	}
	value := text[star+1:]
	items := make([]rawItem, count)
	for i := range items {
		items[i] = rawItem{text: value, set: value != "", line: t.line}
	}
	return items, nil
}

func (b *builder) fixedRecords(kw *Keyword) error {
	for r := 0; r < kw.entry.NumRecs; r++ {
		raws, line, _, err := b.rawRecord(kw)
		if err != nil {
			return err
		}
		rec, err := b.typedRecord(kw, raws, line)
		if err != nil {
			return err
		}
		kw.records = append(kw.records, rec)
	}
	return nil
}

func (b *builder) listRecords(kw *Keyword) error {
	for {
		if b.eof() {
			return &SyntaxError{Keyword: kw.name, Record: len(kw.records),
				Line: kw.line, Message: "list keyword not closed by a lone '/'"}
		}
		raws, line, closing, err := b.rawRecord(kw)
		if err != nil {
			return err
		}
		if closing {
			return nil
		}
		rec, err := b.typedRecord(kw, raws, line)
		if err != nil {
			return err
		}
		kw.records = append(kw.records, rec)
	}
}

// typedRecord validates arity against the schema and resolves raw items to
// typed ones, filling defaulted positions from the schema.
func (b *builder) typedRecord(kw *Keyword, raws []rawItem, line int) (*Record, error) {
	defs := kw.entry.Items
	if len(raws) > len(defs) {
		// excess items are an error under either policy
		return nil, &ArityError{Keyword: kw.name, Record: len(kw.records),
			Line: line, Want: len(defs), Got: len(raws)}
	}
	if len(raws) < len(defs) {
		if b.ctx.Strictness == Strict {
			return nil, &ArityError{Keyword: kw.name, Record: len(kw.records),
				Line: line, Want: len(defs), Got: len(raws)}
		}
		b.ctx.warn(Warning{Keyword: kw.name, Record: len(kw.records), Line: line,
			Message: "missing trailing items filled from schema defaults"})
		for len(raws) < len(defs) {
			raws = append(raws, rawItem{set: false, line: line})
		}
	}
	rec := &Record{line: line, items: make([]Item, len(defs))}
	for i, def := range defs {
		item, err := typedItem(kw, len(kw.records), def, raws[i])
		if err != nil {
			return nil, err
		}
		rec.items[i] = item
	}
	return rec, nil
}

func typedItem(kw *Keyword, recno int, def schema.ItemDef, raw rawItem) (Item, error) {
	item := Item{typ: def.Type, dim: def.Dimension, set: raw.set}
	if !raw.set {
		if def.HasDefault {
			item.s, item.i, item.f = def.DefString, def.DefInt, def.DefDouble
		}
		return item, nil
	}
	switch def.Type {
	case schema.String:
		item.s = raw.text
	case schema.Int:
		n, err := strconv.Atoi(raw.text)
		if err != nil {
			return item, &SyntaxError{Keyword: kw.name, Record: recno,
				Line: raw.line, Message: "item " + def.Name + ": not an integer: " + raw.text}
		}
		item.i = n
	case schema.Double:
		f, err := parseDouble(raw.text)
		if err != nil {
			return item, &SyntaxError{Keyword: kw.name, Record: recno,
				Line: raw.line, Message: "item " + def.Name + ": not a number: " + raw.text}
		}
		item.f = f
	}
	return item, nil
}

// dataRecord reads the single per-cell value record of a Data keyword. All
// items share the keyword's value type and dimension.
func (b *builder) dataRecord(kw *Keyword) error {
	raws, line, _, err := b.rawRecord(kw)
	if err != nil {
		return err
	}
	typ := schema.Double
	if kw.entry.Class == schema.IntProp {
		typ = schema.Int
	}
	rec := &Record{line: line, items: make([]Item, len(raws))}
	for n, raw := range raws {
		item := Item{typ: typ, dim: kw.entry.Dimension, set: raw.set}
		if raw.set {
			switch typ {
			case schema.Int:
				v, err := strconv.Atoi(raw.text)
				if err != nil {
					return &SyntaxError{Keyword: kw.name, Line: raw.line,
						Message: "cell value " + raw.text + " is not an integer"}
				}
				item.i = v
			case schema.Double:
				v, err := parseDouble(raw.text)
				if err != nil {
					return &SyntaxError{Keyword: kw.name, Line: raw.line,
						Message: "cell value " + raw.text + " is not a number"}
				}
				item.f = v
			}
		} else {
			item.i, item.f = kw.entry.DefInt, kw.entry.DefDouble
		}
		rec.items[n] = item
	}
	kw.records = append(kw.records, rec)
	return nil
}

// parseDouble accepts the Fortran-style 'D' exponent marker alongside the
// usual 'E' form.
func parseDouble(s string) (float64, error) {
	if strings.ContainsAny(s, "dD") {
		s = strings.Map(func(r rune) rune {
			if r == 'd' || r == 'D' {
				return 'E'
			}
			return r
		}, s)
	}
	return strconv.ParseFloat(s, 64)
}
