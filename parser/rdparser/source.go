package rdparser

import (
	"github.com/OJarrisonn/rlispy/parser/token"
)

// TokenSource maintains a cursor over a materialized token sequence with a
// single token of lookahead.  Past the end of the sequence Peek is a
// synthesized EOF token.
type TokenSource struct {
	toks  []*token.Token
	pos   int
	Token *token.Token
	Peek  *token.Token
}

// NewTokenSource initializes and returns a new TokenSource reading toks.
func NewTokenSource(toks []*token.Token) *TokenSource {
	s := &TokenSource{toks: toks}
	s.scan()
	return s
}

// IsEOF returns true once the token sequence is exhausted.
func (s *TokenSource) IsEOF() bool {
	return s.Peek.Type == token.EOF
}

// Rest returns the unconsumed remainder of the token sequence, beginning
// with the current Peek token.
func (s *TokenSource) Rest() []*token.Token {
	if s.IsEOF() {
		return nil
	}
	return s.toks[s.pos-1:]
}

func (s *TokenSource) scan() {
	s.Token = s.Peek
	if s.pos < len(s.toks) {
		s.Peek = s.toks[s.pos]
		s.pos++
		return
	}
	s.Peek = &token.Token{Type: token.EOF}
}
