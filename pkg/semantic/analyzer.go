// Package semantic runs the declaration checks over the parsed statement list
package semantic

import (
	"fmt"

	"github.com/SarangNegi/Compiler-Design-Project/pkg/ast"
)

// Analyzer performs a single read-only pass over the AST with one flat
// namespace. It checks redeclaration and undeclared assignment targets.
// Identifiers inside expression leaves are not resolved; only the target of
// an assignment is checked. That boundary is deliberate and pinned by tests.
type Analyzer struct {
	symbols map[string]struct{}
	errors  []string
}

// NewAnalyzer creates an Analyzer with an empty symbol set
func NewAnalyzer() *Analyzer {
	return &Analyzer{symbols: make(map[string]struct{})}
}

// Analyze walks stmts in order and returns the accumulated semantic errors.
// Include and Printf nodes are ignored.
func (a *Analyzer) Analyze(stmts []ast.Stmt) []string {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case ast.Declare:
			a.declare(s.VarName)
		case ast.DeclareArray:
			a.declare(s.VarName)
		case ast.AssignExpr:
			if _, ok := a.symbols[s.VarName]; !ok {
				a.errors = append(a.errors,
					fmt.Sprintf("Semantic Error: Undeclared variable '%s'", s.VarName))
			}
		}
	}
	return a.errors
}

func (a *Analyzer) declare(name string) {
	if _, ok := a.symbols[name]; ok {
		a.errors = append(a.errors, fmt.Sprintf("Semantic Error: '%s' redeclared", name))
		return
	}
	a.symbols[name] = struct{}{}
}
