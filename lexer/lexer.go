// Package lexer splits Pascal source text into a flat sequence of positioned tokens.
//
// Whitespace and comments are emitted as tokens, so concatenating the text of every
// token reproduces the input. The only exception is bytes the grammar doesn't know
// about, which are skipped unless WithUnknownTokens is given.
package lexer

type lexer struct {
	input []byte

	// Cursor
	pos    int
	line   int
	column int

	emitUnknown bool
	skipTrivia  bool
}

// Option modifies the behavior of Tokenize.
type Option func(*lexer)

// WithUnknownTokens emits bytes that don't start any token as one-byte Unknown tokens
// instead of dropping them.
func WithUnknownTokens() Option {
	return func(l *lexer) { l.emitUnknown = true }
}

// WithoutTrivia drops whitespace and comment tokens from the result.
func WithoutTrivia() Option {
	return func(l *lexer) { l.skipTrivia = true }
}

// Tokenize scans the whole input and returns its tokens in source order.
// It never fails: malformed input results in narrower or additional tokens.
func Tokenize(input []byte, opts ...Option) []Token {
	l := &lexer{input: input, line: 1, column: 1}
	for _, opt := range opts {
		opt(l)
	}

	tokens := make([]Token, 0, len(input)/4+1)
	for l.pos < len(l.input) {
		tok := Token{
			Line:     l.line,
			Column:   l.column,
			Position: l.pos,
		}
		tok.Type = l.scan()
		if tok.Type == None || (l.skipTrivia && tok.Type.IsTrivia()) {
			continue
		}
		tok.Text = string(l.input[tok.Position:l.pos])
		tokens = append(tokens, tok)
	}
	return tokens
}

// scan consumes exactly one token (at least one byte) and returns its type.
// None is returned for bytes that should not produce a token.
func (l *lexer) scan() Type {
	c := l.cur()
	switch {
	case isIdentStart(c):
		return l.scanIdent()
	case isDigit(c):
		return l.scanNumber()
	case isSpace(c):
		for isSpace(l.cur()) {
			l.next()
		}
		return Whitespace
	}

	switch c {
	case '{':
		return l.scanBraceComment()
	case '(':
		switch l.peek() {
		case '*':
			return l.scanParenComment()
		case '.':
			return l.advance(2, LBracketAlt)
		}
		return l.advance(1, LParen)
	case '.':
		switch l.peek() {
		case '.':
			return l.advance(2, DotDot)
		case ')':
			return l.advance(2, RBracketAlt)
		}
		return l.advance(1, Dot)
	case ':':
		if l.peek() == '=' {
			return l.advance(2, Assign)
		}
		return l.advance(1, Colon)
	case '<':
		switch l.peek() {
		case '=':
			return l.advance(2, Le)
		case '>':
			return l.advance(2, NotEqual)
		}
		return l.advance(1, Lt)
	case '>':
		if l.peek() == '=' {
			return l.advance(2, Ge)
		}
		return l.advance(1, Gt)
	}

	if t, ok := punctuation[c]; ok {
		return l.advance(1, t)
	}

	l.next()
	if l.emitUnknown {
		return Unknown
	}
	return None
}

var punctuation = map[byte]Type{
	'}': RCurly,
	'@': At,
	'^': Pointer,
	'[': LBracket,
	']': RBracket,
	')': RParen,
	'=': Equal,
	';': Semi,
	',': Comma,
	'/': Slash,
	'*': Star,
	'+': Plus,
	'-': Minus,
}

func (l *lexer) scanIdent() Type {
	start := l.pos
	for isIdentPart(l.cur()) {
		l.next()
	}
	if t, ok := LookupKeyword(string(l.input[start:l.pos])); ok {
		return t
	}
	return Ident
}

func (l *lexer) scanNumber() Type {
	l.skipDigits()
	switch l.cur() {
	case '.':
		l.next()
		l.skipDigits()
		if l.cur() == 'e' {
			l.scanExponent()
		}
		return RealLiteral
	case 'e':
		l.scanExponent()
		return RealLiteral
	}
	return IntLiteral
}

// scanExponent consumes the 'e', an optional sign, and any digits that follow.
// Zero digits is accepted.
func (l *lexer) scanExponent() {
	l.next()
	if c := l.cur(); c == '+' || c == '-' {
		l.next()
	}
	l.skipDigits()
}

func (l *lexer) skipDigits() {
	for isDigit(l.cur()) {
		l.next()
	}
}

// scanBraceComment consumes a brace comment if it's closed on the same line.
// Otherwise only the opening brace is consumed.
func (l *lexer) scanBraceComment() Type {
	for i := 1; l.pos+i < len(l.input); i++ {
		switch l.look(i) {
		case '\n':
			return l.advance(1, LCurly)
		case '}':
			return l.advance(i+1, BraceComment)
		}
	}
	return l.advance(1, LCurly)
}

// scanParenComment consumes a (* *) comment, which may span lines.
// An unterminated comment runs to the end of the input.
func (l *lexer) scanParenComment() Type {
	l.next()
	l.next()
	for l.pos < len(l.input) {
		if l.cur() == '*' && l.peek() == ')' {
			l.next()
			l.next()
			break
		}
		l.next()
	}
	return ParenComment
}

// advance consumes n bytes and returns t for convenience.
func (l *lexer) advance(n int, t Type) Type {
	for i := 0; i < n; i++ {
		l.next()
	}
	return t
}

// next consumes one byte and maintains the line/column counters.
// It's a no-op at the end of the input.
func (l *lexer) next() {
	if l.pos >= len(l.input) {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

// look returns the byte n positions past the cursor, or 0 past the end of the input.
func (l *lexer) look(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *lexer) cur() byte  { return l.look(0) }
func (l *lexer) peek() byte { return l.look(1) }

func isIdentStart(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) || c == '_' }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isSpace(c byte) bool      { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
