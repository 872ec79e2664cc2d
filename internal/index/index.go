package index

import (
	"github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/Azure/paslex/lexer"
)

// Index supports position lookups over a token stream.
type Index struct {
	byPosition *redblacktree.Tree[int, lexer.Token]
	byLine     *redblacktree.Tree[int, []lexer.Token]
}

func New(tokens []lexer.Token) *Index {
	idx := &Index{
		byPosition: redblacktree.New[int, lexer.Token](),
		byLine:     redblacktree.New[int, []lexer.Token](),
	}
	for _, tok := range tokens {
		idx.byPosition.Put(tok.Position, tok)

		current, _ := idx.byLine.Get(tok.Line)
		idx.byLine.Put(tok.Line, append(current, tok))
	}
	return idx
}

// At returns the token whose span covers the given byte offset.
// Offsets of skipped bytes and offsets past the end of the input are not covered by any token.
func (i *Index) At(offset int) (lexer.Token, bool) {
	node, ok := i.byPosition.Floor(offset)
	if !ok || offset >= node.Value.End() {
		return lexer.Token{}, false
	}
	return node.Value, true
}

// OnLine returns the tokens starting on the given 1-based line.
func (i *Index) OnLine(line int) []lexer.Token {
	tokens, _ := i.byLine.Get(line)
	return tokens
}

func (i *Index) Len() int { return i.byPosition.Size() }
