package spre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLex(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []TokenKind
	}{
		{
			name: "symbol group",
			src:  "[[:bus:]]",
			want: []TokenKind{
				TokenLeftBracket, TokenLeftBracket, TokenColon, TokenIdent,
				TokenColon, TokenRightBracket, TokenRightBracket, TokenEOF,
			},
		},
		{
			name: "postfix operators",
			src:  "[[:car:]]{2,5}*",
			want: []TokenKind{
				TokenLeftBracket, TokenLeftBracket, TokenColon, TokenIdent,
				TokenColon, TokenRightBracket, TokenRightBracket,
				TokenLeftBrace, TokenInt, TokenComma, TokenInt, TokenRightBrace,
				TokenStar, TokenEOF,
			},
		},
		{
			name: "nonempty modifier",
			src:  "[<nonempty>([:a:]&[:b:])]",
			want: []TokenKind{
				TokenLeftBracket, TokenNonEmpty, TokenLeftParen,
				TokenLeftBracket, TokenColon, TokenIdent, TokenColon, TokenRightBracket,
				TokenAmpersand,
				TokenLeftBracket, TokenColon, TokenIdent, TokenColon, TokenRightBracket,
				TokenRightParen, TokenRightBracket, TokenEOF,
			},
		},
		{
			name: "whitespace inside group",
			src:  "[ [:bus:] & ! [:car:] ]",
			want: []TokenKind{
				TokenLeftBracket,
				TokenLeftBracket, TokenColon, TokenIdent, TokenColon, TokenRightBracket,
				TokenAmpersand, TokenBang,
				TokenLeftBracket, TokenColon, TokenIdent, TokenColon, TokenRightBracket,
				TokenRightBracket, TokenEOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds(tokens))
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "whitespace outside group", src: "[[:a:]] [[:b:]]"},
		{name: "unknown character", src: "[[:a:]]#"},
		{name: "unterminated modifier", src: "[<nonempty"},
		{name: "unknown modifier", src: "[<empty>[:a:]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lex(tt.src)
			require.Error(t, err)

			var lexErr *LexError
			assert.ErrorAs(t, err, &lexErr)
			assert.True(t, IsPatternError(err))
		})
	}
}

func TestLexPositions(t *testing.T) {
	tokens, err := Lex("[[:bus:]]*")
	require.NoError(t, err)

	star := tokens[len(tokens)-2]
	assert.Equal(t, TokenStar, star.Kind)
	assert.Equal(t, 9, star.Pos)
}
