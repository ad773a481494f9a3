/*
Package parser converts rlispy source text into syntax trees.

	form    := call | list | map | literal
	call    := '(' form* ')'
	list    := '[' form* ']'
	map     := '{' (form form)* '}'
	literal := int | float | string | char | symbol | keyword
*/
package parser

import (
	"io"

	"github.com/OJarrisonn/rlispy/lisp"
	"github.com/OJarrisonn/rlispy/parser/lexer"
	"github.com/OJarrisonn/rlispy/parser/rdparser"
)

// Parse reads all of r and parses every top-level form in order.  The name
// is only used to build source locations for error messages.
func Parse(name string, r io.Reader) ([]*lisp.LVal, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(name, string(b))
}

// ParseString parses every top-level form in src in order.
func ParseString(name string, src string) ([]*lisp.LVal, error) {
	toks, err := lexer.Tokenize(name, src)
	if err != nil {
		return nil, err
	}
	return rdparser.New(toks).ParseProgram()
}
