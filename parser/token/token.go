package token

import (
	"fmt"
	"strings"
)

// Token is a single lexical unit of rlispy source text.  The Type tag
// determines which payload fields are meaningful.
type Token struct {
	Type   Type
	Text   string  // resolved text for STRING/KEYWORD, bracket for OPEN/CLOSE
	Int    int64   // INT payload
	Float  float64 // FLOAT payload
	Char   rune    // CHAR payload
	Sym    Symbol  // SYMBOL payload
	Source *Location
}

func (tok *Token) String() string {
	switch tok.Type {
	case INT:
		return fmt.Sprintf("int(%d)", tok.Int)
	case FLOAT:
		return fmt.Sprintf("float(%v)", tok.Float)
	case STRING:
		return fmt.Sprintf("string(%q)", tok.Text)
	case CHAR:
		return fmt.Sprintf("char(%q)", tok.Char)
	case SYMBOL:
		return fmt.Sprintf("symbol(%s)", tok.Sym)
	case KEYWORD:
		return fmt.Sprintf("keyword(:%s)", tok.Text)
	case OPEN, CLOSE:
		return fmt.Sprintf("%q", tok.Text)
	default:
		return tok.Type.String()
	}
}

// Symbol is a dotted identifier path.  Head is the first path segment and
// Tail holds the remaining segments in order.  No segment is ever empty; the
// lexer rejects paths that would produce one.
type Symbol struct {
	Head string
	Tail []string
}

func (s Symbol) String() string {
	if len(s.Tail) == 0 {
		return s.Head
	}
	return s.Head + "." + strings.Join(s.Tail, ".")
}

type Type uint

// Type constants used by the rlispy lexer and reader.
const (
	INVALID Type = iota
	EOF

	// Atomic literals
	INT
	FLOAT
	STRING
	CHAR
	SYMBOL
	KEYWORD

	// Delimiters.  The Text field carries the bracket character so the
	// reader can check that open and close brackets match.
	OPEN
	CLOSE

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		EOF:     "EOF",
		INT:     "int",
		FLOAT:   "float",
		STRING:  "string",
		CHAR:    "char",
		SYMBOL:  "symbol",
		KEYWORD: "keyword",
		OPEN:    "open-bracket",
		CLOSE:   "close-bracket",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
