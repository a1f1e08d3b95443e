// lexer_test.go
package mfl

import (
	"reflect"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := tokenTypes(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Arithmetic_Line(t *testing.T) {
	got := wantTypes(t, `2 * 3 + 4`, []TokenType{INTEGER, MULT, INTEGER, PLUS, INTEGER})
	if got[0].Literal.(int64) != 2 || got[2].Literal.(int64) != 3 || got[4].Literal.(int64) != 4 {
		t.Fatalf("integer literals mismatch: %v", got)
	}
}

func Test_Lexer_Keywords_And_Identifiers(t *testing.T) {
	wantTypes(t, `if x then func else funcs`,
		[]TokenType{IF, ID, THEN, FUNC, ELSE, ID})
}

func Test_Lexer_FuncLiteral_Line(t *testing.T) {
	wantTypes(t, `func (n) { n * 2 }`,
		[]TokenType{FUNC, LROUND, ID, RROUND, LCURLY, ID, MULT, INTEGER, RCURLY})
}

func Test_Lexer_Command_Line(t *testing.T) {
	got := wantTypes(t, `:define x = 10`, []TokenType{COLON, ID, ASSIGN, INTEGER})
	if got[1].Lexeme != "define" {
		t.Fatalf("want command word 'define', got %q", got[1].Lexeme)
	}
}

func Test_Lexer_Relops(t *testing.T) {
	wantTypes(t, `< <= > >= == != =`,
		[]TokenType{LESS, LESS_EQ, GREATER, GREATER_EQ, EQ, NEQ, ASSIGN})
}

func Test_Lexer_Columns_Are_Zero_Based(t *testing.T) {
	got := toks(t, `ab + 1`)
	wantCols := []int{0, 3, 5}
	for i, tok := range got {
		if tok.Line != 1 || tok.Col != wantCols[i] {
			t.Fatalf("token %d: want 1:%d, got %d:%d", i, wantCols[i], tok.Line, tok.Col)
		}
	}
}

func Test_Lexer_Rejects_Stray_Characters(t *testing.T) {
	for _, src := range []string{`1 ? 2`, `x & y`, `!x`} {
		if _, err := NewLexer(src).Scan(); err == nil {
			t.Fatalf("want lex error for %q, got nil", src)
		} else if _, ok := err.(*LexError); !ok {
			t.Fatalf("want *LexError for %q, got %T", src, err)
		}
	}
}

func Test_Lexer_Integer_Out_Of_Range(t *testing.T) {
	_, err := NewLexer(`99999999999999999999`).Scan()
	if err == nil {
		t.Fatalf("want lex error for oversized integer, got nil")
	}
}

// --- scanner / pushback ------------------------------------------------------

func Test_Scanner_EOF_Is_Sticky(t *testing.T) {
	sc, err := NewScanner(`1`)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	if tok := sc.NextToken(); tok.Type != INTEGER {
		t.Fatalf("want INTEGER, got %v", tok.Type)
	}
	for i := 0; i < 3; i++ {
		if tok := sc.NextToken(); !tok.IsEOF() {
			t.Fatalf("read %d past end: want EOF, got %v", i, tok.Type)
		}
	}
}

func Test_Scanner_PushBack_Rereads_Same_Token(t *testing.T) {
	sc, err := NewScanner(`a + b`)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	first := sc.NextToken()
	sc.PushBack(first)
	again := sc.NextToken()
	if !reflect.DeepEqual(first, again) {
		t.Fatalf("pushback did not replay token: %v vs %v", first, again)
	}
	if tok := sc.NextToken(); tok.Type != PLUS {
		t.Fatalf("stream out of sync after pushback: got %v", tok.Type)
	}
}

func Test_Scanner_Second_PushBack_Panics(t *testing.T) {
	sc, err := NewScanner(`a b`)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	a := sc.NextToken()
	sc.PushBack(a)
	defer func() {
		if recover() == nil {
			t.Fatalf("want panic on second outstanding pushback")
		}
	}()
	sc.PushBack(a)
}
