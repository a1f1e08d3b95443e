// printer_test.go
package mfl

import "testing"

func Test_FormatExp_Shapes(t *testing.T) {
	cases := []struct{ src, want string }{
		{`42`, `42`},
		{`x`, `x`},
		{`2 * 3 + 4`, `((2 * 3) + 4)`},
		{`f(1)`, `f(1)`},
		{`func (n) { n * 2 }`, `func (n) { (n * 2) }`},
		{`if x < 0 then 0 else x`, `(if x < 0 then 0 else x)`},
		{`:define x = 5`, `(x = 5)`},
	}
	for _, c := range cases {
		exp, err := ParseLine(c.src)
		if err != nil {
			t.Fatalf("ParseLine(%q): %v", c.src, err)
		}
		if got := FormatExp(exp); got != c.want {
			t.Fatalf("FormatExp(%q): want %s, got %s", c.src, c.want, got)
		}
	}
}

func Test_FormatValue(t *testing.T) {
	if got := FormatValue(Int(42)); got != "42" {
		t.Fatalf("want 42, got %q", got)
	}
	if got := FormatValue(Int(-7)); got != "-7" {
		t.Fatalf("want -7, got %q", got)
	}
	cl := &Closure{Param: "n", Body: NewIdentifierExp("n")}
	if got := FormatValue(FunVal(cl)); got != "<func (n)>" {
		t.Fatalf("want <func (n)>, got %q", got)
	}
}
