// Package parser implements a recursive descent parser over the token sequence
package parser

import (
	"github.com/SarangNegi/Compiler-Design-Project/pkg/ast"
	"github.com/SarangNegi/Compiler-Design-Project/pkg/lexer"
)

// Parser builds a flat statement list from a token sequence. It never
// raises: syntax problems accumulate as ordered messages and every error
// path still moves the cursor forward, so arbitrarily malformed input
// terminates.
type Parser struct {
	tokens []lexer.Token
	pos    int
	stmts  []ast.Stmt
	errors []string
}

// New creates a new Parser for the given token sequence
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, "Syntax Error: "+msg)
}

func (p *Parser) current() *lexer.Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

// match consumes and returns the current token when it has the wanted type,
// nil otherwise (no cursor movement).
func (p *Parser) match(tp lexer.TokenType) *lexer.Token {
	tok := p.current()
	if tok != nil && tok.Type == tp {
		p.pos++
		return tok
	}
	return nil
}

// matchLiteral is match restricted to an exact literal
func (p *Parser) matchLiteral(tp lexer.TokenType, literal string) *lexer.Token {
	tok := p.current()
	if tok != nil && tok.Type == tp && tok.Literal == literal {
		p.pos++
		return tok
	}
	return nil
}

// Parse consumes the whole token sequence and returns the statement list in
// source order. Function bodies contribute to the same flat list; there is
// no function-boundary node.
func (p *Parser) Parse() []ast.Stmt {
	for p.pos < len(p.tokens) {
		tok := p.current()
		switch {
		case tok.Type == lexer.TokenInclude:
			p.stmts = append(p.stmts, ast.Include{Text: tok.Literal})
			p.pos++
		case tok.Type == lexer.TokenKeyword && p.lookaheadIsFunction():
			p.functionDefinition()
		case tok.Type == lexer.TokenKeyword && tok.Literal == "printf":
			p.printfStatement()
		default:
			p.statement()
		}
	}
	return p.stmts
}

// lookaheadIsFunction reports whether the token after the cursor is "main".
// That (and only that) makes the current keyword start a function definition.
func (p *Parser) lookaheadIsFunction() bool {
	if p.pos+1 >= len(p.tokens) {
		return false
	}
	next := p.tokens[p.pos+1]
	if next.Type != lexer.TokenIdent && next.Type != lexer.TokenKeyword {
		return false
	}
	return next.Literal == "main"
}

// functionDefinition parses `type main() { ... }`. No parameter list is
// supported. A missing '{' abandons the body entirely.
func (p *Parser) functionDefinition() {
	p.match(lexer.TokenKeyword) // return type
	if p.match(lexer.TokenKeyword) == nil {
		p.match(lexer.TokenIdent) // function name; "main" lexes as a keyword
	}
	p.match(lexer.TokenLParen)
	p.match(lexer.TokenRParen)
	if p.match(lexer.TokenLBrace) == nil {
		p.addError("Missing '{' in function")
		return
	}

	for tok := p.current(); tok != nil && tok.Type != lexer.TokenRBrace; tok = p.current() {
		if tok.Type == lexer.TokenKeyword && tok.Literal == "printf" {
			p.printfStatement()
		} else {
			p.statement()
		}
	}

	if p.match(lexer.TokenRBrace) == nil {
		p.addError("Missing '}' in function")
	}
}

// statement parses a declaration, optionally with an array size or an
// initializing expression, then the terminating delimiter.
func (p *Parser) statement() {
	typeTok := p.match(lexer.TokenKeyword)
	idTok := p.match(lexer.TokenIdent)
	if typeTok == nil || idTok == nil {
		p.addError("Invalid declaration")
		// Minimal recovery: skip exactly one token so the driver always
		// makes forward progress.
		p.pos++
		return
	}

	if p.match(lexer.TokenLBracket) != nil {
		sizeTok := p.match(lexer.TokenNum)
		if sizeTok == nil || p.match(lexer.TokenRBracket) == nil {
			p.addError("Invalid array declaration")
			return
		}
		p.stmts = append(p.stmts, ast.DeclareArray{
			TypeName: typeTok.Literal,
			VarName:  idTok.Literal,
			Size:     sizeTok.Literal,
		})
	} else {
		p.stmts = append(p.stmts, ast.Declare{
			TypeName: typeTok.Literal,
			VarName:  idTok.Literal,
		})
	}

	if p.matchLiteral(lexer.TokenOp, "=") != nil {
		expr := p.expression()
		if expr == nil {
			// Only a fully empty expression is rejected here. A partial
			// chain with a missing operand still comes back non-nil and is
			// accepted as-is.
			p.addError("Invalid expression")
			return
		}
		p.stmts = append(p.stmts, ast.AssignExpr{
			TypeName: typeTok.Literal,
			VarName:  idTok.Literal,
			Expr:     expr,
		})
	}

	if p.match(lexer.TokenDelim) == nil {
		// The declaration/assignment nodes appended above stay in the AST.
		p.addError("Missing semicolon")
	}
}

// printfStatement parses `printf ( STRING ) ;`. The first missing element
// records one error and bails; a malformed printf appends no node at all.
func (p *Parser) printfStatement() {
	p.matchLiteral(lexer.TokenKeyword, "printf")
	if p.match(lexer.TokenLParen) == nil {
		p.addError("Expected '('")
		return
	}
	strTok := p.match(lexer.TokenString)
	if strTok == nil {
		p.addError("Expected string in printf")
		return
	}
	if p.match(lexer.TokenRParen) == nil {
		p.addError("Expected ')' in printf")
		return
	}
	if p.match(lexer.TokenDelim) == nil {
		p.addError("Missing semicolon after printf")
		return
	}
	p.stmts = append(p.stmts, ast.Printf{Str: strTok.Literal})
}

// expression := addSub
func (p *Parser) expression() ast.Expr {
	return p.addSub()
}

// addSub := mulDiv ( ('+'|'-') mulDiv )*   left-associative
func (p *Parser) addSub() ast.Expr {
	node := p.mulDiv()
	for {
		opTok := p.matchLiteral(lexer.TokenOp, "+")
		if opTok == nil {
			opTok = p.matchLiteral(lexer.TokenOp, "-")
		}
		if opTok == nil {
			return node
		}
		right := p.mulDiv()
		node = ast.BinOp{Op: opTok.Literal, Left: node, Right: right}
	}
}

// mulDiv := factor ( ('*'|'/') factor )*   left-associative
func (p *Parser) mulDiv() ast.Expr {
	node := p.factor()
	for {
		opTok := p.matchLiteral(lexer.TokenOp, "*")
		if opTok == nil {
			opTok = p.matchLiteral(lexer.TokenOp, "/")
		}
		if opTok == nil {
			return node
		}
		right := p.factor()
		node = ast.BinOp{Op: opTok.Literal, Left: node, Right: right}
	}
}

// factor := NUM | ID | '(' expression ')'
// Anything else yields nil, which propagates upward as an empty result.
func (p *Parser) factor() ast.Expr {
	tok := p.current()
	if tok == nil {
		return nil
	}
	switch tok.Type {
	case lexer.TokenNum, lexer.TokenIdent:
		p.pos++
		return ast.Leaf{Value: tok.Literal}
	case lexer.TokenLParen:
		p.match(lexer.TokenLParen)
		expr := p.expression()
		p.match(lexer.TokenRParen) // best effort, not enforced
		return expr
	}
	return nil
}
