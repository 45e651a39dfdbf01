// Package icg lowers the statement list into a flat three-address listing
package icg

import (
	"fmt"

	"github.com/SarangNegi/Compiler-Design-Project/pkg/ast"
)

// Generator produces the intermediate-code lines for one AST. Temporaries
// are named t1, t2, ... in strictly increasing allocation order and are
// never reused; a fresh Generator starts counting from zero.
type Generator struct {
	code      []string
	tempCount int
}

// NewGenerator creates a Generator with an empty listing
func NewGenerator() *Generator {
	return &Generator{code: []string{}}
}

func (g *Generator) newTemp() string {
	g.tempCount++
	return fmt.Sprintf("t%d", g.tempCount)
}

// Generate lowers stmts in order and returns the listing. It assumes the
// AST shapes the parser actually appends and performs no validation.
func (g *Generator) Generate(stmts []ast.Stmt) []string {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case ast.Include:
			g.code = append(g.code, s.Text)
		case ast.Declare:
			g.code = append(g.code, fmt.Sprintf("%s %s", s.TypeName, s.VarName))
		case ast.DeclareArray:
			g.code = append(g.code, fmt.Sprintf("%s %s[%s]", s.TypeName, s.VarName, s.Size))
		case ast.AssignExpr:
			result := g.lowerExpr(s.Expr)
			g.code = append(g.code, fmt.Sprintf("%s = %s", s.VarName, result))
		case ast.Printf:
			g.code = append(g.code, "print "+s.Str)
		}
	}
	return g.code
}

// lowerExpr emits code for expr post-order and returns its value name: the
// literal text for a leaf, a fresh temporary for a binop. An operand left
// nil by parser recovery lowers to an empty string rather than aborting.
func (g *Generator) lowerExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case ast.Leaf:
		return e.Value
	case ast.BinOp:
		l := g.lowerExpr(e.Left)
		r := g.lowerExpr(e.Right)
		temp := g.newTemp()
		g.code = append(g.code, fmt.Sprintf("%s = %s %s %s", temp, l, e.Op, r))
		return temp
	}
	return ""
}
