package lexer

import (
	"encoding/json"
	"fmt"
)

// TokenType classifies a lexical unit
type TokenType int

const (
	TokenInclude  TokenType = iota // #include <stdio.h>
	TokenKeyword                   // int, printf, main, ...
	TokenIdent                     // x, arr, count
	TokenNum                       // 42, 3.14
	TokenString                    // "hello"
	TokenOp                        // = + - * / < > !
	TokenLParen                    // (
	TokenRParen                    // )
	TokenLBrace                    // {
	TokenRBrace                    // }
	TokenLBracket                  // [
	TokenRBracket                  // ]
	TokenDelim                     // ; ,

	// Internal rule tags; never present in a token sequence.
	tokenSkip     // whitespace, discarded
	tokenMismatch // catch-all, fatal
)

var tokenNames = map[TokenType]string{
	TokenInclude:  "INCLUDE",
	TokenKeyword:  "KEYWORD",
	TokenIdent:    "ID",
	TokenNum:      "NUM",
	TokenString:   "STRING",
	TokenOp:       "OP",
	TokenLParen:   "LPAREN",
	TokenRParen:   "RPAREN",
	TokenLBrace:   "LBRACE",
	TokenRBrace:   "RBRACE",
	TokenLBracket: "LBRACKET",
	TokenRBracket: "RBRACKET",
	TokenDelim:    "DELIM",
}

var tokenTypesByName = func() map[string]TokenType {
	m := make(map[string]TokenType, len(tokenNames))
	for tp, name := range tokenNames {
		m[name] = tp
	}
	return m
}()

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
}

// MarshalJSON emits the wire shape consumed by clients: {"type","value"}.
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{Type: t.Type.String(), Value: t.Literal})
}

// UnmarshalJSON accepts the same wire shape MarshalJSON produces.
func (t *Token) UnmarshalJSON(data []byte) error {
	var aux struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	tp, ok := tokenTypesByName[aux.Type]
	if !ok {
		return fmt.Errorf("unknown token type %q", aux.Type)
	}
	t.Type = tp
	t.Literal = aux.Value
	return nil
}
