package lexer

import (
	"testing"

	"github.com/eZanmoto/seed/internal/token"
	"github.com/eZanmoto/seed/internal/verror"
)

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"empty", "", []token.Kind{token.EOF}},
		{"int", "42", []token.Kind{token.Int, token.EOF}},
		{"int with separators", "1_000_000", []token.Kind{token.Int, token.EOF}},
		{"ident and keyword", "foo if", []token.Kind{token.Ident, token.KwIf, token.EOF}},
		{"string", `"hi"`, []token.Kind{token.Str, token.EOF}},
		{"underscore", "_", []token.Kind{token.Underscore, token.EOF}},
		{"range vs spread lexeme", "a..b", []token.Kind{token.Ident, token.DotDot, token.Ident, token.EOF}},
		{"arrow", "x->y", []token.Kind{token.Ident, token.Arrow, token.Ident, token.EOF}},
		{"declare and op-assign", "x := 1; x += 2;", []token.Kind{
			token.Ident, token.Declare, token.Int, token.Semicolon,
			token.Ident, token.PlusEq, token.Int, token.Semicolon, token.EOF,
		}},
		{"comment is skipped", "1 # trailing comment\n2", []token.Kind{token.Int, token.Int, token.EOF}},
		{"triple eq vs double", "a === b == c", []token.Kind{
			token.Ident, token.EqEqEq, token.Ident, token.EqEq, token.Ident, token.EOF,
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.src)
			if err != nil {
				t.Fatalf("Tokenize(%q) returned error: %v", tc.src, err)
			}
			if len(toks) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d (%v)", tc.src, len(toks), len(tc.want), toks)
			}
			for i, k := range tc.want {
				if toks[i].Kind != k {
					t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
				}
			}
		})
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb\tc\"d\\e\x41"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\nb\tc\"d\\eA"
	if toks[0].Lexeme != want {
		t.Errorf("got %q, want %q", toks[0].Lexeme, want)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		wantID string
	}{
		{"unclosed string", `"abc`, verror.IDUnclosedString},
		{"newline in string", "\"abc\n\"", verror.IDUnclosedString},
		{"bad escape", `"\q"`, verror.IDInvalidEscape},
		{"trailing underscore in int", "1_", verror.IDInvalidNumber},
		{"unexpected char", "@", verror.IDInvalidSyntax},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize(tc.src)
			if err == nil {
				t.Fatalf("Tokenize(%q): expected error, got none", tc.src)
			}
			if err.ID != tc.wantID {
				t.Errorf("got ID %q, want %q", err.ID, tc.wantID)
			}
		})
	}
}
