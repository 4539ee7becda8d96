package lexer

import (
	"bytes"
	"testing"

	"github.com/loxscript/golox/internal/diag"
	"github.com/loxscript/golox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, source string) ([]token.Token, *diag.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	r := diag.NewReporter(&buf)
	tokens := New(source, r).ScanTokens()
	return tokens, r
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanTokensSingleCharAndOperators(t *testing.T) {
	tokens, r := scan(t, "(){},.-+;*!=<=>=!=<>/")
	require.False(t, r.HadError())

	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.BangEqual, token.LessEqual, token.GreaterEqual, token.BangEqual,
		token.Less, token.Greater, token.Slash, token.EOF,
	}, kinds(tokens))
}

func TestScanTokensStringLiteral(t *testing.T) {
	tokens, r := scan(t, `"hello world"`)
	require.False(t, r.HadError())
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokensUnterminatedString(t *testing.T) {
	_, r := scan(t, `"unterminated`)
	assert.True(t, r.HadError())
}

func TestScanTokensNumberLiteral(t *testing.T) {
	tokens, r := scan(t, "123.456")
	require.False(t, r.HadError())
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, 123.456, tokens[0].Literal)
}

func TestScanTokensKeywordsAndIdentifiers(t *testing.T) {
	tokens, r := scan(t, "class fun orchid")
	require.False(t, r.HadError())
	require.Len(t, tokens, 4)
	assert.Equal(t, token.Class, tokens[0].Kind)
	assert.Equal(t, token.Fun, tokens[1].Kind)
	assert.Equal(t, token.Identifier, tokens[2].Kind)
	assert.Equal(t, "orchid", tokens[2].Lexeme)
}

func TestScanTokensLineComments(t *testing.T) {
	tokens, r := scan(t, "// a comment\nvar")
	require.False(t, r.HadError())
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Var, tokens[0].Kind)
	assert.Equal(t, 2, tokens[0].Line)
}

func TestScanTokensBlockComments(t *testing.T) {
	tokens, r := scan(t, "/* skip\nthis */ var")
	require.False(t, r.HadError())
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Var, tokens[0].Kind)
	assert.Equal(t, 2, tokens[0].Line)
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	_, r := scan(t, "@")
	assert.True(t, r.HadError())
}

func TestScanTokensLineTracking(t *testing.T) {
	tokens, _ := scan(t, "var a;\nvar b;")
	require.Len(t, tokens, 7)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[3].Line)
}
