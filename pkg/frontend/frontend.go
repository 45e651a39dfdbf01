// Package frontend assembles the four-stage analysis pipeline:
// lexer -> parser -> semantic analyzer -> intermediate code generator.
package frontend

import (
	"github.com/SarangNegi/Compiler-Design-Project/pkg/icg"
	"github.com/SarangNegi/Compiler-Design-Project/pkg/lexer"
	"github.com/SarangNegi/Compiler-Design-Project/pkg/parser"
	"github.com/SarangNegi/Compiler-Design-Project/pkg/semantic"
)

// Result is the structured outcome of one pipeline run. JSON field names
// are the wire contract any hosting layer serves to clients. All four lists
// are present even when empty.
type Result struct {
	Tokens           []lexer.Token `json:"tokens"`
	SyntaxErrors     []string      `json:"syntaxErrors"`
	SemanticErrors   []string      `json:"semanticErrors"`
	IntermediateCode []string      `json:"intermediateCode"`
}

// Run pushes source through the whole pipeline. Every call builds fresh
// component instances, so concurrent runs share no state and identical
// inputs produce identical results. The only fatal outcome is a lexical
// error (*lexer.LexicalError), returned in place of a Result; syntax and
// semantic problems come back inside the Result as ordered message lists.
func Run(source string) (*Result, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}

	p := parser.New(tokens)
	stmts := p.Parse()

	return &Result{
		Tokens:           tokens,
		SyntaxErrors:     orEmpty(p.Errors()),
		SemanticErrors:   orEmpty(semantic.NewAnalyzer().Analyze(stmts)),
		IntermediateCode: orEmpty(icg.NewGenerator().Generate(stmts)),
	}, nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
