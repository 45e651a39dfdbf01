// Package lexer tokenizes a small C-like subset with an ordered rule table.
package lexer

import (
	"fmt"
	"regexp"
	"strings"
)

// tokenSpec lists the lexical rules in priority order. Matching is by
// alternation order, not longest match: KEYWORD must stay ahead of ID so
// reserved words are never classified as identifiers.
var tokenSpec = []struct {
	tp      TokenType
	pattern string
}{
	{TokenInclude, `#\s*include\s*<[^>]+>`},
	{TokenKeyword, `\b(?:int|float|char|double|long|short|void|return|if|else|for|while|do|printf|scanf|main)\b`},
	{TokenIdent, `\b[a-zA-Z_]\w*\b`},
	{TokenNum, `\b\d+(?:\.\d+)?\b`},
	{TokenString, `".*?"`},
	{TokenOp, `[=+\-*/<>!]`},
	{TokenLParen, `\(`},
	{TokenRParen, `\)`},
	{TokenLBrace, `\{`},
	{TokenRBrace, `\}`},
	{TokenLBracket, `\[`},
	{TokenRBracket, `\]`},
	{TokenDelim, `[;,]`},
	{tokenSkip, `[ \t\n]+`},
	{tokenMismatch, `.`},
}

// lexPattern joins the rules into one grouped alternation. Go's regexp
// prefers earlier alternatives, which preserves the rule priority above.
var lexPattern = buildPattern()

func buildPattern() *regexp.Regexp {
	parts := make([]string, len(tokenSpec))
	for i, rule := range tokenSpec {
		parts[i] = "(" + rule.pattern + ")"
	}
	return regexp.MustCompile(strings.Join(parts, "|"))
}

// LexicalError reports the first character no rule matched. It is fatal:
// nothing downstream runs on a partially tokenized input.
type LexicalError struct {
	Char string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Unexpected character: %s", e.Char)
}

// Tokenize scans source into its ordered token sequence. Whitespace runs
// are consumed and dropped. The returned error, if any, is a *LexicalError.
func Tokenize(source string) ([]Token, error) {
	tokens := []Token{}
	for _, m := range lexPattern.FindAllStringSubmatchIndex(source, -1) {
		for i := range tokenSpec {
			start, end := m[2*(i+1)], m[2*(i+1)+1]
			if start < 0 {
				continue
			}
			tp := tokenSpec[i].tp
			if tp == tokenMismatch {
				return nil, &LexicalError{Char: source[start:end]}
			}
			if tp != tokenSkip {
				tokens = append(tokens, Token{Type: tp, Literal: source[start:end]})
			}
			break
		}
	}
	return tokens, nil
}
