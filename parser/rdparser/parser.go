package rdparser

import (
	"errors"
	"io"

	"github.com/OJarrisonn/rlispy/lisp"
	"github.com/OJarrisonn/rlispy/parser/token"
)

// IsIncomplete returns true when err indicates that the source text ended in
// the middle of a form, so that appending more input could complete it.
func IsIncomplete(err error) bool {
	var lerr *lisp.ErrorVal
	if !errors.As(err, &lerr) {
		return false
	}
	cond := lerr.Str
	return cond == "unmatched-syntax" || cond == "unexpected-eof"
}

// ReadForm consumes exactly one form from the front of toks and returns it
// together with the unconsumed remainder of the sequence.
func ReadForm(toks []*token.Token) (*lisp.LVal, []*token.Token, error) {
	p := New(toks)
	form := p.ParseForm()
	if err := lisp.GoError(form); err != nil {
		return nil, nil, err
	}
	return form, p.Rest(), nil
}

// Parser is a recursive descent reader that builds forms from a token
// sequence.
type Parser struct {
	src *TokenSource
}

// New initializes and returns a new Parser reading toks.
func New(toks []*token.Token) *Parser {
	return &Parser{src: NewTokenSource(toks)}
}

// ParseProgram parses all top-level forms remaining in the token sequence.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var forms []*lisp.LVal
	for !p.src.IsEOF() {
		form := p.ParseForm()
		if err := lisp.GoError(form); err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// Next parses and returns the next top-level form.  Next returns io.EOF once
// the token sequence is exhausted, so callers can range over a program
// without reimplementing the read loop.
func (p *Parser) Next() (*lisp.LVal, error) {
	if p.src.IsEOF() {
		return nil, io.EOF
	}
	form := p.ParseForm()
	if err := lisp.GoError(form); err != nil {
		return nil, err
	}
	return form, nil
}

// Rest returns the unconsumed remainder of the token sequence.
func (p *Parser) Rest() []*token.Token {
	return p.src.Rest()
}

// ParseForm consumes exactly one form.  Errors are returned as error forms
// so that nested parse failures propagate without unwinding machinery.
func (p *Parser) ParseForm() *lisp.LVal {
	switch p.PeekType() {
	case token.EOF:
		return p.errorf("unexpected-eof", "unexpected end of input")
	case token.INT:
		return p.leaf(lisp.Int(p.ReadToken().Int))
	case token.FLOAT:
		return p.leaf(lisp.Float(p.ReadToken().Float))
	case token.STRING:
		return p.leaf(lisp.String(p.ReadToken().Text))
	case token.CHAR:
		return p.leaf(lisp.Char(p.ReadToken().Char))
	case token.SYMBOL:
		return p.leaf(lisp.Symbol(p.ReadToken().Sym))
	case token.KEYWORD:
		return p.leaf(lisp.Keyword(p.ReadToken().Text))
	case token.OPEN:
		open := p.ReadToken()
		switch open.Text {
		case "(":
			return p.parseCall(open)
		case "[":
			return p.parseList(open)
		default:
			return p.parseMap(open)
		}
	default:
		p.ReadToken()
		return p.errorf("unexpected-token", "unexpected %s", p.Token())
	}
}

func (p *Parser) parseCall(open *token.Token) *lisp.LVal {
	var cells []*lisp.LVal
	for {
		switch p.PeekType() {
		case token.EOF:
			return p.errorf("unmatched-syntax", "unmatched %s", open)
		case token.CLOSE:
			if close := p.ReadToken(); close.Text != ")" {
				return p.errorf("mismatched-bracket", "unexpected %s, expected \")\"", close)
			}
			return p.container(lisp.Call(cells), open)
		default:
			x := p.ParseForm()
			if x.Type == lisp.LError {
				return x
			}
			cells = append(cells, x)
		}
	}
}

func (p *Parser) parseList(open *token.Token) *lisp.LVal {
	var cells []*lisp.LVal
	for {
		switch p.PeekType() {
		case token.EOF:
			return p.errorf("unmatched-syntax", "unmatched %s", open)
		case token.CLOSE:
			if close := p.ReadToken(); close.Text != "]" {
				return p.errorf("mismatched-bracket", "unexpected %s, expected \"]\"", close)
			}
			return p.container(lisp.List(cells), open)
		default:
			x := p.ParseForm()
			if x.Type == lisp.LError {
				return x
			}
			cells = append(cells, x)
		}
	}
}

func (p *Parser) parseMap(open *token.Token) *lisp.LVal {
	var cells []*lisp.LVal
	for {
		switch p.PeekType() {
		case token.EOF:
			return p.errorf("unmatched-syntax", "unmatched %s", open)
		case token.CLOSE:
			if close := p.ReadToken(); close.Text != "}" {
				return p.errorf("mismatched-bracket", "unexpected %s, expected \"}\"", close)
			}
			return p.container(lisp.Map(cells), open)
		default:
			key := p.ParseForm()
			if key.Type == lisp.LError {
				return key
			}
			// A map with an odd number of entries fails here, when the value
			// read runs into the closing brace.
			val := p.ParseForm()
			if val.Type == lisp.LError {
				return val
			}
			cells = append(cells, key, val)
		}
	}
}

// ReadToken advances the parser one token and returns the consumed token.
func (p *Parser) ReadToken() *token.Token {
	p.src.scan()
	return p.src.Token
}

// Token returns the most recently consumed token.
func (p *Parser) Token() *token.Token {
	return p.src.Token
}

// Peek returns the next unconsumed token.
func (p *Parser) Peek() *token.Token {
	return p.src.Peek
}

// PeekType returns the type of the next unconsumed token.
func (p *Parser) PeekType() token.Type {
	return p.src.Peek.Type
}

func (p *Parser) leaf(v *lisp.LVal) *lisp.LVal {
	v.Source = p.Token().Source
	return v
}

func (p *Parser) container(v *lisp.LVal, open *token.Token) *lisp.LVal {
	v.Source = open.Source
	return v
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) *lisp.LVal {
	err := lisp.ErrorConditionf(condition, format, v...)
	if tok := p.Token(); tok != nil {
		err.Source = tok.Source
	}
	return err
}
