package grammar

import (
	"sync"

	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token values for the deck lexer
const (
	tokWord   int = 2 // any run of printable non-blank characters
	tokString int = 3 // 'quoted text', may contain blanks
	tokSlash  int = 4 // record terminator
)

// token is one lexeme with its source position.
type token struct {
	typ  int
	text string // quoted strings keep their quotes; stripped by the builder
	line int
	col  int
}

var deckLexer *lex.Lexer
var lexerErr error
var lexerOnce sync.Once // monitors one-time initialization

// Lexer returns the compiled deck lexer. The token patterns are fixed, so
// the lexmachine automaton is built exactly once per process.
func Lexer() (*lex.Lexer, error) {
	lexerOnce.Do(func() {
		l := lex.NewLexer()
		l.Add([]byte(`--[^\n]*`), skip)          // line comment
		l.Add([]byte(`( |\t|\r|\n)+`), skip)     // whitespace
		l.Add([]byte(`'[^'\n]*'`), mkToken(tokString))
		l.Add([]byte(`/`), mkToken(tokSlash))
		l.Add([]byte(`[^ \t\r\n/']+`), mkToken(tokWord))
		if err := l.Compile(); err != nil {
			lexerErr = err
			return
		}
		deckLexer = l
	})
	return deckLexer, lexerErr
}

func skip(*lex.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func mkToken(id int) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// tokenize is a pure function of the input text. It produces the complete
// token sequence or a SyntaxError pointing at the offending position; an
// unterminated quoted string surfaces here as unconsumed input.
func tokenize(input string) ([]token, error) {
	l, err := Lexer()
	if err != nil {
		return nil, err
	}
	scanner, err := l.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, &SyntaxError{
					Line:    ui.StartLine,
					Message: "unrecognized input (unterminated quote?)",
				}
			}
			return nil, err
		}
		t := tok.(*lex.Token)
		tokens = append(tokens, token{
			typ:  t.Type,
			text: t.Value.(string),
			line: t.StartLine,
			col:  t.StartColumn,
		})
	}
	tracer().Debugf("tokenized deck input into %d tokens", len(tokens))
	return tokens, nil
}
