package lisp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/OJarrisonn/rlispy/parser/token"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LError
	LInt
	LFloat
	LString
	LChar
	LSymbol
	LKeyword
	LCall
	LList
	LMap

	numLTypes
)

func (t LType) String() string {
	ltypeStrings := [numLTypes]string{
		LInvalid: "INVALID",
		LError:   "error",
		LInt:     "int",
		LFloat:   "float",
		LString:  "string",
		LChar:    "char",
		LSymbol:  "symbol",
		LKeyword: "keyword",
		LCall:    "call",
		LList:    "list",
		LMap:     "map",
	}
	if t >= numLTypes {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a node in the syntax tree produced by the reader.  The Type tag
// determines which payload fields are meaningful.  Forms are constructed
// bottom-up and never mutated afterwards; the Cells of a container form are
// owned exclusively by that form.
type LVal struct {
	Type  LType
	Int   int64
	Float float64
	Str   string // string text, keyword text, or error condition
	Char  rune
	Sym   token.Symbol
	Err   error

	// Cells holds the ordered child forms of a call or list.  For a map,
	// Cells alternates key and value forms and always has even length.
	Cells []*LVal

	Source *token.Location
}

// Int returns an LVal representing the integer x.
func Int(x int64) *LVal {
	return &LVal{
		Type: LInt,
		Int:  x,
	}
}

// Float returns an LVal representing the floating point number x.
func Float(x float64) *LVal {
	return &LVal{
		Type:  LFloat,
		Float: x,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Char returns an LVal representing the character c.
func Char(c rune) *LVal {
	return &LVal{
		Type: LChar,
		Char: c,
	}
}

// Symbol returns an LVal representing the symbol path sym.
func Symbol(sym token.Symbol) *LVal {
	return &LVal{
		Type: LSymbol,
		Sym:  sym,
	}
}

// Keyword returns an LVal representing the keyword s (without its colon).
func Keyword(s string) *LVal {
	return &LVal{
		Type: LKeyword,
		Str:  s,
	}
}

// Call returns an LVal representing a parenthesized application of the given
// forms.  A call with no forms is legal.
func Call(cells []*LVal) *LVal {
	return &LVal{
		Type:  LCall,
		Cells: cells,
	}
}

// List returns an LVal representing a bracketed sequence of forms.
func List(cells []*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Map returns an LVal representing a braced sequence of key-value pairs.
// The cells alternate key and value forms and must have even length.  Pairs
// keep their insertion order and duplicate keys are not collapsed.
func Map(cells []*LVal) *LVal {
	if len(cells)%2 != 0 {
		panic("odd number of map cells")
	}
	return &LVal{
		Type:  LMap,
		Cells: cells,
	}
}

// Pairs returns the ordered key-value pairs of a map form.
func (v *LVal) Pairs() [][2]*LVal {
	if v.Type != LMap {
		return nil
	}
	pairs := make([][2]*LVal, 0, len(v.Cells)/2)
	for i := 0; i+1 < len(v.Cells); i += 2 {
		pairs = append(pairs, [2]*LVal{v.Cells[i], v.Cells[i+1]})
	}
	return pairs
}

func (v *LVal) String() string {
	switch v.Type {
	case LError:
		return (*ErrorVal)(v).Error()
	case LInt:
		return strconv.FormatInt(v.Int, 10)
	case LFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case LString:
		return strconv.Quote(v.Str)
	case LChar:
		return charString(v.Char)
	case LSymbol:
		return v.Sym.String()
	case LKeyword:
		return ":" + v.Str
	case LCall:
		return exprString(v, "(", ")")
	case LList:
		return exprString(v, "[", "]")
	case LMap:
		return exprString(v, "{", "}")
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// Equal returns true when v and u are structurally equal forms.  Source
// locations are ignored.
func (v *LVal) Equal(u *LVal) bool {
	if v == nil || u == nil {
		return v == u
	}
	if v.Type != u.Type {
		return false
	}
	switch v.Type {
	case LInt:
		return v.Int == u.Int
	case LFloat:
		return v.Float == u.Float
	case LString, LKeyword:
		return v.Str == u.Str
	case LChar:
		return v.Char == u.Char
	case LSymbol:
		if v.Sym.Head != u.Sym.Head || len(v.Sym.Tail) != len(u.Sym.Tail) {
			return false
		}
		for i := range v.Sym.Tail {
			if v.Sym.Tail[i] != u.Sym.Tail[i] {
				return false
			}
		}
		return true
	case LCall, LList, LMap:
		if len(v.Cells) != len(u.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(u.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func charString(c rune) string {
	switch c {
	case '\n':
		return `\newline`
	case '\r':
		return `\return`
	case '\t':
		return `\tab`
	case ' ':
		return `\space`
	default:
		return `\` + string(c)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
