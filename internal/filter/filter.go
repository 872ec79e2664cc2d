// Package filter selects tokens with CEL expressions.
//
// Expressions see a single variable named token:
//
//	token.type      display name of the token type, e.g. "Ident" or "NumReal"
//	token.text      source text
//	token.line      1-based line
//	token.column    1-based column
//	token.position  0-based byte offset
//	token.keyword   true for reserved words
//	token.trivia    true for whitespace and comments
package filter

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/Azure/paslex/lexer"
)

var ErrNonBoolResult = errors.New("filter expression must evaluate to a bool")

var Env *cel.Env

func init() {
	initDefaultEnv()
}

func initDefaultEnv() {
	var err error
	Env, err = cel.NewEnv(
		cel.Variable("token", cel.MapType(cel.StringType, cel.DynType)),
		ext.Strings(),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create default CEL environment: %v", err))
	}
}

// Parse compiles expr against the token environment.
func Parse(expr string) (cel.Program, error) {
	ast, iss := Env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	return Env.Program(ast, cel.InterruptCheckFrequency(10))
}

// Eval reports whether tok matches the program.
func Eval(ctx context.Context, prgm cel.Program, tok lexer.Token) (bool, error) {
	val, _, err := prgm.ContextEval(ctx, map[string]any{"token": newTokenMap(tok)})
	if err != nil {
		return false, err
	}
	b, ok := val.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w, got %s", ErrNonBoolResult, val.Type().TypeName())
	}
	return b, nil
}

// Apply returns the tokens matching the program, preserving order.
func Apply(ctx context.Context, prgm cel.Program, tokens []lexer.Token) ([]lexer.Token, error) {
	logger := logr.FromContextOrDiscard(ctx)

	matched := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		ok, err := Eval(ctx, prgm, tok)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter for token at %d:%d: %w", tok.Line, tok.Column, err)
		}
		if ok {
			matched = append(matched, tok)
		}
	}

	logger.V(1).Info("applied token filter", "tokens", len(tokens), "matched", len(matched))
	return matched, nil
}

func newTokenMap(tok lexer.Token) map[string]any {
	return map[string]any{
		"type":     tok.Type.String(),
		"text":     tok.Text,
		"line":     tok.Line,
		"column":   tok.Column,
		"position": tok.Position,
		"keyword":  tok.Type.IsKeyword(),
		"trivia":   tok.Type.IsTrivia(),
	}
}
