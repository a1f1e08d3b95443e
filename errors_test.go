// errors_test.go
package mfl

import (
	"strings"
	"testing"
)

func Test_WrapErrorWithSource_Parse_Snippet(t *testing.T) {
	src := `1 + )`
	_, err := ParseLine(src)
	if err == nil {
		t.Fatalf("want parse error, got nil")
	}
	wrapped := WrapErrorWithSource(err, src)
	out := wrapped.Error()

	if !strings.Contains(out, "PARSE ERROR at 1:5") {
		t.Fatalf("missing header/position:\n%s", out)
	}
	if !strings.Contains(out, "   1 | 1 + )") {
		t.Fatalf("missing source line:\n%s", out)
	}
	// Caret under column 5.
	if !strings.Contains(out, "     |     ^") {
		t.Fatalf("caret misplaced:\n%s", out)
	}
}

func Test_WrapErrorWithSource_Lex_Snippet(t *testing.T) {
	src := `1 ? 2`
	_, err := NewLexer(src).Scan()
	if err == nil {
		t.Fatalf("want lex error, got nil")
	}
	out := WrapErrorWithSource(err, src).Error()
	if !strings.Contains(out, "LEXICAL ERROR at 1:3") {
		t.Fatalf("missing header/position:\n%s", out)
	}
	if !strings.Contains(out, "     |   ^") {
		t.Fatalf("caret misplaced:\n%s", out)
	}
}

func Test_WrapErrorWithSource_Passes_Other_Errors_Through(t *testing.T) {
	ip := NewInterpreter()
	_, err := ip.EvalLine(`1 / 0`)
	if err == nil {
		t.Fatalf("want runtime error, got nil")
	}
	if got := WrapErrorWithSource(err, `1 / 0`); got != err {
		t.Fatalf("runtime error should pass through unchanged, got %v", got)
	}
}

func Test_WrapErrorWithSource_Clamps_Out_Of_Range(t *testing.T) {
	err := &ParseError{Kind: DiagIllegalTerm, Line: 99, Col: 99, Msg: "boom"}
	out := WrapErrorWithSource(err, "x").Error()
	if !strings.Contains(out, "boom") {
		t.Fatalf("message lost:\n%s", out)
	}
}
