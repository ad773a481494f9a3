package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OJarrisonn/rlispy/parser/token"
)

func TestTokenizeTypes(t *testing.T) {
	testCases := []struct {
		in  string
		out []token.Type
	}{
		{``, nil},
		{`   `, nil},
		{`; just a comment`, nil},
		{`1`, []token.Type{token.INT}},
		{`-12 3.5`, []token.Type{token.INT, token.FLOAT}},
		{`foo`, []token.Type{token.SYMBOL}},
		{`:foo`, []token.Type{token.KEYWORD}},
		{`"foo"`, []token.Type{token.STRING}},
		{`\a`, []token.Type{token.CHAR}},
		{
			`(+ 1 2)`,
			[]token.Type{token.OPEN, token.SYMBOL, token.INT, token.INT, token.CLOSE},
		},
		{
			`[1 2 3]`,
			[]token.Type{token.OPEN, token.INT, token.INT, token.INT, token.CLOSE},
		},
		{
			`{:a 1}`,
			[]token.Type{token.OPEN, token.KEYWORD, token.INT, token.CLOSE},
		},
		{
			"(defn add [a b] ; sum of a and b\n  (+ a b))",
			[]token.Type{
				token.OPEN, token.SYMBOL, token.SYMBOL,
				token.OPEN, token.SYMBOL, token.SYMBOL, token.CLOSE,
				token.OPEN, token.SYMBOL, token.SYMBOL, token.SYMBOL, token.CLOSE,
				token.CLOSE,
			},
		},
	}
	for _, tc := range testCases {
		toks, err := Tokenize("test.lisp", tc.in)
		require.NoError(t, err, "source: %q", tc.in)
		types := make([]token.Type, 0, len(toks))
		for _, tok := range toks {
			types = append(types, tok.Type)
		}
		if len(tc.out) == 0 {
			assert.Len(t, toks, 0, "source: %q", tc.in)
			continue
		}
		assert.Equal(t, tc.out, types, "source: %q", tc.in)
	}
}

func TestTokenizeNumbers(t *testing.T) {
	toks, err := Tokenize("test.lisp", "0 12 -12 3.5 -3.5 .5 5.")
	require.NoError(t, err)
	require.Len(t, toks, 7)

	assert.Equal(t, token.INT, toks[0].Type)
	assert.Equal(t, int64(0), toks[0].Int)
	assert.Equal(t, int64(12), toks[1].Int)
	assert.Equal(t, int64(-12), toks[2].Int)

	assert.Equal(t, token.FLOAT, toks[3].Type)
	assert.Equal(t, 3.5, toks[3].Float)
	assert.Equal(t, -3.5, toks[4].Float)
	assert.Equal(t, 0.5, toks[5].Float)
	assert.Equal(t, 5.0, toks[6].Float)
}

func TestTokenizeNumberErrors(t *testing.T) {
	for _, src := range []string{
		"1.2.3",
		"-1.2.3",
		"99999999999999999999", // overflows int64
	} {
		_, err := Tokenize("test.lisp", src)
		assert.Error(t, err, "source: %q", src)
	}
}

func TestTokenizeStrings(t *testing.T) {
	testCases := []struct {
		in  string
		out string
	}{
		{`""`, ""},
		{`"foo"`, "foo"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\rb"`, "a\rb"},
		{`"a\\b"`, `a\b`},
		{`"a\"b"`, `a"b`},
		{"\"a\nb\"", "a\nb"}, // literal newlines are legal inside strings
	}
	for _, tc := range testCases {
		toks, err := Tokenize("test.lisp", tc.in)
		require.NoError(t, err, "source: %q", tc.in)
		require.Len(t, toks, 1)
		assert.Equal(t, token.STRING, toks[0].Type)
		assert.Equal(t, tc.out, toks[0].Text, "source: %q", tc.in)
	}
}

func TestTokenizeStringErrors(t *testing.T) {
	for _, src := range []string{
		`"a\qb"`,
		`"abc`,
		`"abc\`,
	} {
		_, err := Tokenize("test.lisp", src)
		assert.Error(t, err, "source: %q", src)
	}
}

func TestTokenizeChars(t *testing.T) {
	testCases := []struct {
		in  string
		out rune
	}{
		{`\a`, 'a'},
		{`\1`, '1'},
		{`\λ`, 'λ'},
		{`\newline`, '\n'},
		{`\return`, '\r'},
		{`\tab`, '\t'},
		{`\space`, ' '},
	}
	for _, tc := range testCases {
		toks, err := Tokenize("test.lisp", tc.in)
		require.NoError(t, err, "source: %q", tc.in)
		require.Len(t, toks, 1)
		assert.Equal(t, token.CHAR, toks[0].Type)
		assert.Equal(t, tc.out, toks[0].Char, "source: %q", tc.in)
	}

	for _, src := range []string{`\`, `\ab`, `\newlines`} {
		_, err := Tokenize("test.lisp", src)
		assert.Error(t, err, "source: %q", src)
	}
}

func TestTokenizeSymbols(t *testing.T) {
	toks, err := Tokenize("test.lisp", "foo foo.bar.baz + - <=> a1_$%")
	require.NoError(t, err)
	require.Len(t, toks, 6)
	for _, tok := range toks {
		assert.Equal(t, token.SYMBOL, tok.Type)
	}

	assert.Equal(t, token.Symbol{Head: "foo", Tail: []string{}}, toks[0].Sym)
	assert.Equal(t, "foo", toks[1].Sym.Head)
	assert.Equal(t, []string{"bar", "baz"}, toks[1].Sym.Tail)
	assert.Equal(t, "+", toks[2].Sym.Head)
	assert.Equal(t, "-", toks[3].Sym.Head)
	assert.Equal(t, "<=>", toks[4].Sym.Head)
	assert.Equal(t, "a1_$%", toks[5].Sym.Head)
}

func TestTokenizeSymbolErrors(t *testing.T) {
	for _, src := range []string{
		"foo.",
		"foo..bar",
		".foo", // '.' does not begin a symbol
	} {
		_, err := Tokenize("test.lisp", src)
		assert.Error(t, err, "source: %q", src)
	}
}

func TestTokenizeKeywords(t *testing.T) {
	toks, err := Tokenize("test.lisp", ":a :foo-bar :a1(")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, "a", toks[0].Text)
	assert.Equal(t, "foo-bar", toks[1].Text)
	assert.Equal(t, "a1", toks[2].Text)
	assert.Equal(t, token.OPEN, toks[3].Type)

	for _, src := range []string{":", ": foo", ":A"} {
		_, err := Tokenize("test.lisp", src)
		assert.Error(t, err, "source: %q", src)
	}
}

func TestTokenizeBrackets(t *testing.T) {
	toks, err := Tokenize("test.lisp", "([{}])")
	require.NoError(t, err)
	require.Len(t, toks, 6)
	assert.Equal(t, "(", toks[0].Text)
	assert.Equal(t, "[", toks[1].Text)
	assert.Equal(t, "{", toks[2].Text)
	assert.Equal(t, "}", toks[3].Text)
	assert.Equal(t, "]", toks[4].Text)
	assert.Equal(t, ")", toks[5].Text)
	for _, tok := range toks[:3] {
		assert.Equal(t, token.OPEN, tok.Type)
	}
	for _, tok := range toks[3:] {
		assert.Equal(t, token.CLOSE, tok.Type)
	}
}

func TestTokenizeUnexpectedRune(t *testing.T) {
	for _, src := range []string{",", "^", "foo,bar", "&"} {
		_, err := Tokenize("test.lisp", src)
		require.Error(t, err, "source: %q", src)
		lexErr := &Error{}
		require.ErrorAs(t, err, &lexErr, "source: %q", src)
		assert.NotNil(t, lexErr.Loc)
	}
}

func TestTokenizeLocations(t *testing.T) {
	toks, err := Tokenize("test.lisp", "(foo\n  bar)")
	require.NoError(t, err)
	require.Len(t, toks, 4)

	assert.Equal(t, 1, toks[0].Source.Line)
	assert.Equal(t, 1, toks[0].Source.Col)
	assert.Equal(t, 1, toks[1].Source.Line)
	assert.Equal(t, 2, toks[1].Source.Col)
	assert.Equal(t, 2, toks[2].Source.Line)
	assert.Equal(t, 3, toks[2].Source.Col)
	assert.Equal(t, "test.lisp", toks[2].Source.File)
}

func TestNextTokenEOF(t *testing.T) {
	lex := New(token.NewScanner("test.lisp", "1"))

	tok, err := lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.INT, tok.Type)

	// the lexer keeps returning EOF tokens once input is exhausted
	for i := 0; i < 2; i++ {
		tok, err = lex.NextToken()
		require.NoError(t, err)
		assert.Equal(t, token.EOF, tok.Type)
	}
}
