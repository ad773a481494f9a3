package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/OJarrisonn/rlispy/parser/token"
)

// Rune alphabets for keywords and symbols.  Symbol paths additionally use
// '.' as a segment separator, which is not itself a symbol rune.
const keywordRunes = "abcdefghijklmnopqrstuvwxyz0123456789-"
const symbolRunes = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789_-+*/|<>=!?@#$%"

// Escape characters permitted in string literals following a backslash.
const escapeRunes = `"ntr\`

// Error is a lexical error at a source location.
type Error struct {
	Loc *token.Location
	Msg string
}

func (e *Error) Error() string {
	if e.Loc == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

// Lexer scans tokens from source text one at a time.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune
}

// New initializes and returns a Lexer scanning tokens from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

// Tokenize scans the complete token sequence from src, in source order, or
// returns the first lexical error encountered.  The returned sequence does
// not contain an EOF sentinel.
func Tokenize(name string, src string) ([]*token.Token, error) {
	lex := New(token.NewScanner(name, src))
	var toks []*token.Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// NextToken scans and returns the next token.  At the end of input NextToken
// returns a token with type EOF and a nil error.
func (lex *Lexer) NextToken() (*token.Token, error) {
	err := lex.skipIgnored()
	if err != nil {
		return nil, err
	}
	err = lex.readChar()
	if err == io.EOF {
		return lex.scanner.EmitToken(token.EOF), nil
	}
	if err != nil {
		return nil, lex.errorf("%v", err)
	}
	switch lex.ch {
	case '(', '[', '{':
		return lex.scanner.EmitToken(token.OPEN), nil
	case ')', ']', '}':
		return lex.scanner.EmitToken(token.CLOSE), nil
	case '"':
		return lex.readString()
	case ':':
		return lex.readKeyword()
	case '\\':
		return lex.readCharLiteral()
	default:
		if isDigit(lex.ch) || ((lex.ch == '-' || lex.ch == '.') && isDigit(lex.peekRune())) {
			return lex.readNumber()
		}
		if isSymbolRune(lex.ch) {
			return lex.readSymbol()
		}
		return nil, lex.errorf("unexpected character %q", lex.ch)
	}
}

// skipIgnored consumes whitespace and line comments, which delimit tokens but
// produce none.
func (lex *Lexer) skipIgnored() error {
	for {
		c, ok := lex.scanner.Peek()
		if !ok {
			lex.scanner.Ignore()
			return nil
		}
		switch {
		case unicode.IsSpace(c):
			if err := lex.readChar(); err != nil {
				return lex.errorf("%v", err)
			}
		case c == ';':
			if err := lex.readChar(); err != nil {
				return lex.errorf("%v", err)
			}
			for lex.ch != '\n' {
				err := lex.readChar()
				if err == io.EOF {
					lex.scanner.Ignore()
					return nil
				}
				if err != nil {
					return lex.errorf("%v", err)
				}
			}
		default:
			lex.scanner.Ignore()
			return nil
		}
	}
}

// readString scans a string literal after its opening quote, resolving
// escape sequences into the token text.
func (lex *Lexer) readString() (*token.Token, error) {
	var buf strings.Builder
	for {
		err := lex.readChar()
		if err == io.EOF {
			return nil, lex.errorf("unterminated string literal")
		}
		if err != nil {
			return nil, lex.errorf("%v", err)
		}
		switch lex.ch {
		case '"':
			tok := lex.scanner.EmitToken(token.STRING)
			tok.Text = buf.String()
			return tok, nil
		case '\\':
			err := lex.readChar()
			if err == io.EOF {
				return nil, lex.errorf("unterminated string literal")
			}
			if err != nil {
				return nil, lex.errorf("%v", err)
			}
			if !strings.ContainsRune(escapeRunes, lex.ch) {
				return nil, lex.errorf("invalid escape character %q in string literal", lex.ch)
			}
			switch lex.ch {
			case 'n':
				buf.WriteRune('\n')
			case 't':
				buf.WriteRune('\t')
			case 'r':
				buf.WriteRune('\r')
			default: // a literal quote or backslash
				buf.WriteRune(lex.ch)
			}
		default:
			buf.WriteRune(lex.ch)
		}
	}
}

// readKeyword scans a keyword after its leading colon.  The keyword ends at
// the first rune outside the keyword alphabet and may not be empty.
func (lex *Lexer) readKeyword() (*token.Token, error) {
	for strings.ContainsRune(keywordRunes, lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return nil, lex.errorf("%v", err)
		}
	}
	text := lex.scanner.Text()
	if len(text) < 2 {
		return nil, lex.errorf("empty keyword")
	}
	tok := lex.scanner.EmitToken(token.KEYWORD)
	tok.Text = text[1:]
	return tok, nil
}

// readCharLiteral scans a character literal after its leading backslash.
// Text accumulates until a space or the end of input and resolves through a
// fixed name table, or stands for itself when it is a single rune.
func (lex *Lexer) readCharLiteral() (*token.Token, error) {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || c == ' ' {
			break
		}
		err := lex.readChar()
		if err != nil {
			return nil, lex.errorf("%v", err)
		}
	}
	text := lex.scanner.Text()[1:]
	var c rune
	switch text {
	case "newline":
		c = '\n'
	case "return":
		c = '\r'
	case "tab":
		c = '\t'
	case "space":
		c = ' '
	default:
		if utf8.RuneCountInString(text) != 1 {
			return nil, lex.errorf("invalid character literal: \\%s", text)
		}
		c, _ = utf8.DecodeRuneInString(text)
	}
	tok := lex.scanner.EmitToken(token.CHAR)
	tok.Char = c
	return tok, nil
}

// readNumber scans a numeric literal.  Digits and '.' are consumed greedily;
// a literal containing '.' is a float, any other is an integer.
func (lex *Lexer) readNumber() (*token.Token, error) {
	for isDigit(lex.peekRune()) || lex.peekRune() == '.' {
		err := lex.readChar()
		if err != nil {
			return nil, lex.errorf("%v", err)
		}
	}
	text := lex.scanner.Text()
	if strings.Count(text, ".") > 1 {
		return nil, lex.errorf("invalid number: %s", text)
	}
	if strings.Contains(text, ".") {
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, lex.errorf("invalid floating point literal: %s", text)
		}
		tok := lex.scanner.EmitToken(token.FLOAT)
		tok.Float = x
		return tok, nil
	}
	x, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, lex.errorf("invalid integer literal: %s", text)
	}
	tok := lex.scanner.EmitToken(token.INT)
	tok.Int = x
	return tok, nil
}

// readSymbol scans a dotted symbol path.  '.' closes the current segment and
// no segment may be empty.
func (lex *Lexer) readSymbol() (*token.Token, error) {
	for isSymbolRune(lex.peekRune()) || lex.peekRune() == '.' {
		err := lex.readChar()
		if err != nil {
			return nil, lex.errorf("%v", err)
		}
	}
	text := lex.scanner.Text()
	parts := strings.Split(text, ".")
	for _, part := range parts {
		if part == "" {
			return nil, lex.errorf("empty segment in symbol %q", text)
		}
	}
	tok := lex.scanner.EmitToken(token.SYMBOL)
	tok.Sym = token.Symbol{Head: parts[0], Tail: parts[1:]}
	return tok, nil
}

func (lex *Lexer) errorf(format string, v ...interface{}) *Error {
	return &Error{
		Loc: lex.scanner.Loc(),
		Msg: fmt.Sprintf(format, v...),
	}
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	err := lex.scanner.ScanRune()
	if err != nil {
		return err
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isSymbolRune(c rune) bool {
	return strings.ContainsRune(symbolRunes, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
