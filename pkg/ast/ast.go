// Package ast defines the flat statement-level syntax tree built by the parser
package ast

import "fmt"

// Node is the base interface for all AST nodes
type Node interface {
	implNode()
	fmt.Stringer
}

// Stmt is the interface for all statement nodes
type Stmt interface {
	Node
	implStmt()
}

// Expr is the interface for expression nodes, reachable only from AssignExpr
type Expr interface {
	Node
	implExpr()
}

// Include is a verbatim #include <...> line
type Include struct {
	Text string
}

// Declare is a plain variable declaration
type Declare struct {
	TypeName string
	VarName  string
}

// DeclareArray is an array declaration with a numeric size literal
type DeclareArray struct {
	TypeName string
	VarName  string
	Size     string
}

// AssignExpr is an initializing assignment. TypeName duplicates the type of
// the preceding declaration; it carries no checking weight of its own.
type AssignExpr struct {
	TypeName string
	VarName  string
	Expr     Expr
}

// Printf holds the string literal of a printf call, quotes included
type Printf struct {
	Str string
}

// Leaf is a numeric literal or identifier
type Leaf struct {
	Value string
}

// BinOp is a strictly binary expression, operator one of + - * /
type BinOp struct {
	Op    string
	Left  Expr
	Right Expr
}

func (Include) implNode()      {}
func (Include) implStmt()      {}
func (Declare) implNode()      {}
func (Declare) implStmt()      {}
func (DeclareArray) implNode() {}
func (DeclareArray) implStmt() {}
func (AssignExpr) implNode()   {}
func (AssignExpr) implStmt()   {}
func (Printf) implNode()       {}
func (Printf) implStmt()       {}
func (Leaf) implNode()         {}
func (Leaf) implExpr()         {}
func (BinOp) implNode()        {}
func (BinOp) implExpr()        {}

func (n Include) String() string {
	return fmt.Sprintf("Include(%s)", n.Text)
}

func (n Declare) String() string {
	return fmt.Sprintf("Declare(%s, %s)", n.TypeName, n.VarName)
}

func (n DeclareArray) String() string {
	return fmt.Sprintf("DeclareArray(%s, %s, %s)", n.TypeName, n.VarName, n.Size)
}

func (n AssignExpr) String() string {
	return fmt.Sprintf("AssignExpr(%s, %s, %s)", n.TypeName, n.VarName, exprString(n.Expr))
}

func (n Printf) String() string {
	return fmt.Sprintf("Printf(%s)", n.Str)
}

func (n Leaf) String() string {
	return fmt.Sprintf("Leaf(%s)", n.Value)
}

func (n BinOp) String() string {
	return fmt.Sprintf("BinOp(%s, %s, %s)", n.Op, exprString(n.Left), exprString(n.Right))
}

// exprString tolerates missing operands: parser error recovery can leave a
// BinOp with a nil side, and dumps still have to render.
func exprString(e Expr) string {
	if e == nil {
		return "?"
	}
	return e.String()
}
