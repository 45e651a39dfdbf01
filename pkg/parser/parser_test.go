package parser

import (
	"os"
	"testing"

	"github.com/SarangNegi/Compiler-Design-Project/pkg/ast"
	"github.com/SarangNegi/Compiler-Design-Project/pkg/lexer"
	"gopkg.in/yaml.v3"
)

// StmtSpec represents one expected statement node from parse.yaml
type StmtSpec struct {
	Kind string    `yaml:"kind"`
	Text string    `yaml:"text,omitempty"`
	Type string    `yaml:"type,omitempty"`
	Name string    `yaml:"name,omitempty"`
	Size string    `yaml:"size,omitempty"`
	Str  string    `yaml:"str,omitempty"`
	Expr *ExprSpec `yaml:"expr,omitempty"`
}

// ExprSpec represents an expected expression sub-tree
type ExprSpec struct {
	Kind  string    `yaml:"kind"`
	Value string    `yaml:"value,omitempty"`
	Op    string    `yaml:"op,omitempty"`
	Left  *ExprSpec `yaml:"left,omitempty"`
	Right *ExprSpec `yaml:"right,omitempty"`
}

// TestSpec represents a test case from parse.yaml
type TestSpec struct {
	Name  string     `yaml:"name"`
	Input string     `yaml:"input"`
	AST   []StmtSpec `yaml:"ast"`
}

// TestFile represents the parse.yaml file structure
type TestFile struct {
	Tests []TestSpec `yaml:"tests"`
}

func TestParseYAML(t *testing.T) {
	data, err := os.ReadFile("../../testdata/parse.yaml")
	if err != nil {
		t.Fatalf("failed to read parse.yaml: %v", err)
	}

	var testFile TestFile
	if err := yaml.Unmarshal(data, &testFile); err != nil {
		t.Fatalf("failed to parse parse.yaml: %v", err)
	}

	for _, tc := range testFile.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tc.Input)
			if err != nil {
				t.Fatalf("lexer failed: %v", err)
			}

			p := New(tokens)
			stmts := p.Parse()

			if len(p.Errors()) > 0 {
				t.Fatalf("parser errors: %v", p.Errors())
			}
			if len(stmts) != len(tc.AST) {
				t.Fatalf("expected %d statements, got %d: %v", len(tc.AST), len(stmts), stmts)
			}
			for i, spec := range tc.AST {
				verifyStmt(t, stmts[i], spec)
			}
		})
	}
}

func verifyStmt(t *testing.T, stmt ast.Stmt, spec StmtSpec) {
	t.Helper()

	switch spec.Kind {
	case "Include":
		inc, ok := stmt.(ast.Include)
		if !ok {
			t.Fatalf("expected Include, got %T", stmt)
		}
		if inc.Text != spec.Text {
			t.Errorf("Include.Text: expected %q, got %q", spec.Text, inc.Text)
		}

	case "Declare":
		dec, ok := stmt.(ast.Declare)
		if !ok {
			t.Fatalf("expected Declare, got %T", stmt)
		}
		if dec.TypeName != spec.Type {
			t.Errorf("Declare.TypeName: expected %q, got %q", spec.Type, dec.TypeName)
		}
		if dec.VarName != spec.Name {
			t.Errorf("Declare.VarName: expected %q, got %q", spec.Name, dec.VarName)
		}

	case "DeclareArray":
		dec, ok := stmt.(ast.DeclareArray)
		if !ok {
			t.Fatalf("expected DeclareArray, got %T", stmt)
		}
		if dec.TypeName != spec.Type || dec.VarName != spec.Name || dec.Size != spec.Size {
			t.Errorf("DeclareArray: expected (%s, %s, %s), got (%s, %s, %s)",
				spec.Type, spec.Name, spec.Size, dec.TypeName, dec.VarName, dec.Size)
		}

	case "AssignExpr":
		asn, ok := stmt.(ast.AssignExpr)
		if !ok {
			t.Fatalf("expected AssignExpr, got %T", stmt)
		}
		if asn.TypeName != spec.Type {
			t.Errorf("AssignExpr.TypeName: expected %q, got %q", spec.Type, asn.TypeName)
		}
		if asn.VarName != spec.Name {
			t.Errorf("AssignExpr.VarName: expected %q, got %q", spec.Name, asn.VarName)
		}
		if spec.Expr != nil {
			verifyExpr(t, asn.Expr, *spec.Expr)
		}

	case "Printf":
		pf, ok := stmt.(ast.Printf)
		if !ok {
			t.Fatalf("expected Printf, got %T", stmt)
		}
		if pf.Str != spec.Str {
			t.Errorf("Printf.Str: expected %q, got %q", spec.Str, pf.Str)
		}

	default:
		t.Fatalf("unknown statement kind %q in spec", spec.Kind)
	}
}

func verifyExpr(t *testing.T, expr ast.Expr, spec ExprSpec) {
	t.Helper()

	switch spec.Kind {
	case "Leaf":
		leaf, ok := expr.(ast.Leaf)
		if !ok {
			t.Fatalf("expected Leaf, got %T", expr)
		}
		if leaf.Value != spec.Value {
			t.Errorf("Leaf.Value: expected %q, got %q", spec.Value, leaf.Value)
		}

	case "BinOp":
		bin, ok := expr.(ast.BinOp)
		if !ok {
			t.Fatalf("expected BinOp, got %T", expr)
		}
		if bin.Op != spec.Op {
			t.Errorf("BinOp.Op: expected %q, got %q", spec.Op, bin.Op)
		}
		if spec.Left != nil {
			verifyExpr(t, bin.Left, *spec.Left)
		}
		if spec.Right != nil {
			verifyExpr(t, bin.Right, *spec.Right)
		}

	default:
		t.Fatalf("unknown expression kind %q in spec", spec.Kind)
	}
}

func parse(t *testing.T, input string) ([]ast.Stmt, []string) {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("lexer failed: %v", err)
	}
	p := New(tokens)
	stmts := p.Parse()
	return stmts, p.Errors()
}

func TestMissingSemicolonKeepsNodes(t *testing.T) {
	stmts, errs := parse(t, "int x = 5")

	if len(errs) != 1 || errs[0] != "Syntax Error: Missing semicolon" {
		t.Fatalf("expected single missing-semicolon error, got %v", errs)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected Declare and AssignExpr to survive, got %v", stmts)
	}
	if _, ok := stmts[0].(ast.Declare); !ok {
		t.Errorf("stmts[0]: expected Declare, got %T", stmts[0])
	}
	if _, ok := stmts[1].(ast.AssignExpr); !ok {
		t.Errorf("stmts[1]: expected AssignExpr, got %T", stmts[1])
	}
}

func TestInvalidDeclarationRecovery(t *testing.T) {
	// Neither "x y" nor "z ;" starts with a type keyword. Each failure skips
	// exactly one token past whatever match already consumed, so the parser
	// terminates with no nodes.
	stmts, errs := parse(t, "x y z;")

	if len(stmts) != 0 {
		t.Fatalf("expected no statements, got %v", stmts)
	}
	expected := []string{
		"Syntax Error: Invalid declaration",
		"Syntax Error: Invalid declaration",
	}
	if len(errs) != len(expected) {
		t.Fatalf("expected %d errors, got %v", len(expected), errs)
	}
	for i, want := range expected {
		if errs[i] != want {
			t.Errorf("errs[%d]: expected %q, got %q", i, want, errs[i])
		}
	}
}

func TestInvalidArrayDeclaration(t *testing.T) {
	stmts, errs := parse(t, "int arr[x];")

	if len(stmts) != 0 {
		t.Fatalf("expected no statements, got %v", stmts)
	}
	if len(errs) == 0 || errs[0] != "Syntax Error: Invalid array declaration" {
		t.Fatalf("expected invalid-array-declaration error first, got %v", errs)
	}
}

func TestInvalidExpression(t *testing.T) {
	stmts, errs := parse(t, "int x = ;")

	// The declaration was already appended; the empty initializer is the
	// error. The unconsumed ';' then trips one recovery round in the driver.
	if len(stmts) != 1 {
		t.Fatalf("expected the Declare to survive, got %v", stmts)
	}
	if _, ok := stmts[0].(ast.Declare); !ok {
		t.Fatalf("stmts[0]: expected Declare, got %T", stmts[0])
	}
	if len(errs) == 0 || errs[0] != "Syntax Error: Invalid expression" {
		t.Fatalf("expected invalid-expression error first, got %v", errs)
	}
}

func TestPartialExpressionAccepted(t *testing.T) {
	// A trailing operator produces a BinOp with a missing right operand
	// mid-chain; any non-empty expression result is accepted as-is.
	stmts, errs := parse(t, "int x = 5 + ;")

	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %v", stmts)
	}
	asn, ok := stmts[1].(ast.AssignExpr)
	if !ok {
		t.Fatalf("stmts[1]: expected AssignExpr, got %T", stmts[1])
	}
	bin, ok := asn.Expr.(ast.BinOp)
	if !ok {
		t.Fatalf("expected BinOp initializer, got %T", asn.Expr)
	}
	if bin.Op != "+" {
		t.Errorf("BinOp.Op: expected +, got %q", bin.Op)
	}
	if bin.Right != nil {
		t.Errorf("expected missing right operand, got %v", bin.Right)
	}
}

func TestMalformedPrintfAppendsNothing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		firstErr string
	}{
		{"missing lparen", `printf "hi"`, "Syntax Error: Expected '('"},
		{"missing string", `printf()`, "Syntax Error: Expected string in printf"},
		{"missing rparen", `printf("hi";`, "Syntax Error: Expected ')' in printf"},
		{"missing semicolon", `printf("hi")`, "Syntax Error: Missing semicolon after printf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, errs := parse(t, tt.input)
			for _, stmt := range stmts {
				if _, ok := stmt.(ast.Printf); ok {
					t.Errorf("malformed printf must not append a node, got %v", stmt)
				}
			}
			if len(errs) == 0 || errs[0] != tt.firstErr {
				t.Fatalf("expected %q first, got %v", tt.firstErr, errs)
			}
		})
	}
}

func TestFunctionMissingBraces(t *testing.T) {
	t.Run("missing open brace aborts body", func(t *testing.T) {
		stmts, errs := parse(t, "int main() int a;")

		if len(errs) == 0 || errs[0] != "Syntax Error: Missing '{' in function" {
			t.Fatalf("expected missing-open-brace error first, got %v", errs)
		}
		// The body is re-scanned by the driver as an ordinary statement.
		if len(stmts) != 1 {
			t.Fatalf("expected 1 statement, got %v", stmts)
		}
	})

	t.Run("missing close brace", func(t *testing.T) {
		stmts, errs := parse(t, "int main() { int a;")

		if len(errs) != 1 || errs[0] != "Syntax Error: Missing '}' in function" {
			t.Fatalf("expected missing-close-brace error, got %v", errs)
		}
		if len(stmts) != 1 {
			t.Fatalf("expected the body declaration, got %v", stmts)
		}
	})
}

func TestParseEmptyTokens(t *testing.T) {
	p := New(nil)
	stmts := p.Parse()
	if len(stmts) != 0 || len(p.Errors()) != 0 {
		t.Fatalf("expected empty parse, got %v / %v", stmts, p.Errors())
	}
}
