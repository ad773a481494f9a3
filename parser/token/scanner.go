package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from source text.  The scanner
// owns the complete text and maintains a rune cursor with a single rune of
// lookahead, tracking byte offset, line, and column as it advances.
type Scanner struct {
	file string
	src  string

	start     int // byte offset of the current token's first rune
	startLine int // line number at start
	startCol  int // column number at start

	pos  int  // byte offset of c
	next int  // byte offset of the rune following c
	c    rune // current rune, the last rune scanned into the token
	line int  // line number at pos
	col  int  // column number at pos
}

// NewScanner initializes and returns a new Scanner reading src.  The file
// name is only used to build token source locations.
func NewScanner(file string, src string) *Scanner {
	return &Scanner{
		file:      file,
		src:       src,
		line:      1,
		startLine: 1,
		startCol:  1,
	}
}

// EmitToken returns a token containing the text scanned since the last call
// to either EmitToken or Ignore.  Payload fields beyond Text are left for the
// caller to fill in.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.next
	s.startLine = s.line
	s.startCol = s.col + 1
	if s.c == '\n' {
		s.startLine++
		s.startCol = 1
	}
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return s.src[s.start:s.next]
}

// Rune returns the current rune, the last rune scanned by ScanRune.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned, if there is one.  Peek returns a
// false second value at the end of input or when the following bytes are not
// a valid utf-8 sequence; in the latter case the next ScanRune call returns
// an error describing the cause.
func (s *Scanner) Peek() (rune, bool) {
	if s.next >= len(s.src) {
		return 0, false
	}
	c, n := utf8.DecodeRuneInString(s.src[s.next:])
	if c == utf8.RuneError && n == 1 {
		return utf8.RuneError, false
	}
	return c, true
}

// ScanRune advances the scanner one rune, including it in the current token.
// At the end of input ScanRune returns io.EOF.
func (s *Scanner) ScanRune() error {
	if s.next >= len(s.src) {
		return io.EOF
	}
	c, n := utf8.DecodeRuneInString(s.src[s.next:])
	if c == utf8.RuneError && n == 1 {
		return fmt.Errorf("invalid utf-8 sequence in source text starting with byte %q", s.src[s.next])
	}
	if s.c == '\n' {
		s.line++
		s.col = 0
	}
	s.pos = s.next
	s.next += n
	s.c = c
	s.col++
	return nil
}

// LocStart returns a Location referencing the beginning of the current token,
// just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the current scanner position, the last
// position of the current token.
func (s *Scanner) Loc() *Location {
	line, col := s.line, s.col
	if col == 0 {
		col = 1
	}
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: line,
		Col:  col,
	}
}
