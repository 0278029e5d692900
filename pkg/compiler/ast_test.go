package compiler

import (
	"testing"
)

func testInteger() *Integer   { return &Integer{Value: 2} }
func testConstant() *Constant { return &Constant{Value: testInteger()} }
func testReturn() *Return     { return &Return{Expr: testConstant()} }
func testFunction(name string) *Function {
	return &Function{ReturnType: &Integer{Value: 0}, Name: name, Body: []Statement{testReturn()}}
}

func TestNodeRendering(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		typeOf   string
		expected string
	}{
		{
			name:     "Integer",
			node:     testInteger(),
			typeOf:   "Integer",
			expected: "Integer<2>",
		},
		{
			name:     "Negative Integer",
			node:     &Integer{Value: -7},
			typeOf:   "Integer",
			expected: "Integer<-7>",
		},
		{
			name:     "Constant",
			node:     testConstant(),
			typeOf:   "Constant",
			expected: "Constant Integer<2>",
		},
		{
			name:     "Return",
			node:     testReturn(),
			typeOf:   "Return",
			expected: "Return Constant Integer<2>",
		},
		{
			name:   "Function",
			node:   testFunction("main"),
			typeOf: "Function",
			expected: "Function Integer main:\n" +
				"    body:\n" +
				"        Return Constant Integer<2>\n",
		},
		{
			name:     "Empty Function",
			node:     &Function{ReturnType: &Integer{}, Name: "f"},
			typeOf:   "Function",
			expected: "Function Integer f:\n    body:\n",
		},
		{
			name: "Nested Function",
			node: &Function{
				ReturnType: &Integer{},
				Name:       "main",
				Body:       []Statement{testFunction("f"), testReturn()},
			},
			typeOf: "Function",
			expected: "Function Integer main:\n" +
				"    body:\n" +
				"        Function Integer f:\n" +
				"            body:\n" +
				"                Return Constant Integer<2>\n" +
				"\n" +
				"        Return Constant Integer<2>\n",
		},
		{
			name:   "Program",
			node:   NewProgram(testFunction("main")),
			typeOf: "Program",
			expected: "PROGRAM_START:\n" +
				"Function Integer main:\n" +
				"    body:\n" +
				"        Return Constant Integer<2>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.TypeOf(); got != tt.typeOf {
				t.Errorf("TypeOf() = %q, want %q", got, tt.typeOf)
			}
			got := tt.node.String()
			if got != tt.expected {
				t.Errorf("String() =\n%s\nwant\n%s", got, tt.expected)
			}
			if again := tt.node.String(); again != got {
				t.Errorf("String() is not stable: %q then %q", got, again)
			}
		})
	}
}

func TestConstantEvaluate(t *testing.T) {
	c := testConstant()
	got, ok := c.Evaluate().(*Integer)
	if !ok {
		t.Fatalf("Evaluate() = %T, want *Integer", c.Evaluate())
	}
	if got.Value != 2 {
		t.Errorf("Evaluate() = %d, want 2", got.Value)
	}
}

func TestNewProgramRejectsNonFunction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewProgram(Return) did not panic")
		}
	}()
	NewProgram(testReturn())
}

func TestIndent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a\n", "  a\n"},
		{"a\n\nb\n", "  a\n\n  b\n"},
		{"a\n  \nb", "  a\n  \n  b"},
	}
	for _, tt := range tests {
		if got := indent(tt.in, "  "); got != tt.want {
			t.Errorf("indent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
