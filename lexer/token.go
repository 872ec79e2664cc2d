package lexer

// Token is a classified span of the source buffer.
type Token struct {
	Type Type

	// Line and Column are 1-based and refer to the first character of the token.
	Line   int
	Column int

	// Position is the byte offset of the first character of the token relative to the start of the input buffer.
	Position int

	// Text is a copy of the source bytes spanned by the token. It does not alias the input buffer.
	Text string
}

// End returns the offset one past the last byte of the token.
func (t Token) End() int { return t.Position + len(t.Text) }

// Type classifies a token.
type Type int

const (
	None Type = iota // never emitted

	And
	Array
	Begin
	Boolean
	Case
	Char
	Chr
	Const
	Div
	Do
	Downto
	Else
	End
	File
	For
	Function
	Goto
	If
	In
	Integer
	Label
	Mod
	Nil
	Not
	Of
	Or
	Packed
	Procedure
	Program
	Real
	Record
	Repeat
	Set
	Then
	To
	TypeKeyword
	Until
	Var
	While
	With

	Plus        // +
	Minus       // -
	Star        // *
	Slash       // /
	Assign      // :=
	Comma       // ,
	Semi        // ;
	Colon       // :
	Equal       // =
	NotEqual    // <>
	Lt          // <
	Le          // <=
	Ge          // >=
	Gt          // >
	LParen      // (
	RParen      // )
	LBracket    // [
	LBracketAlt // (.
	RBracket    // ]
	RBracketAlt // .)
	Pointer     // ^
	At          // @
	Dot         // .
	DotDot      // ..
	LCurly      // { without a closing brace on the same line
	RCurly      // }

	Unit
	Interface
	Uses
	String
	Implementation
	True
	False

	Whitespace
	BraceComment // { ... }
	ParenComment // (* ... *)
	Ident
	StringLiteral // reserved, not produced by the scanner
	IntLiteral
	RealLiteral

	Unknown // only emitted with WithUnknownTokens

	numTypes
)

var typeNames = [numTypes]string{
	None:           "Zero",
	And:            "And",
	Array:          "Array",
	Begin:          "Begin",
	Boolean:        "Boolean",
	Case:           "Case",
	Char:           "Char",
	Chr:            "Chr",
	Const:          "Const",
	Div:            "Div",
	Do:             "Do",
	Downto:         "Downto",
	Else:           "Else",
	End:            "End",
	File:           "File",
	For:            "For",
	Function:       "Function",
	Goto:           "Goto",
	If:             "If",
	In:             "In",
	Integer:        "Integer",
	Label:          "Label",
	Mod:            "Mod",
	Nil:            "Nil",
	Not:            "Not",
	Of:             "Of",
	Or:             "Or",
	Packed:         "Packed",
	Procedure:      "Procedure",
	Program:        "Program",
	Real:           "Real",
	Record:         "Record",
	Repeat:         "Repeat",
	Set:            "Set",
	Then:           "Then",
	To:             "To",
	TypeKeyword:    "Type",
	Until:          "Until",
	Var:            "Var",
	While:          "While",
	With:           "With",
	Plus:           "Plus",
	Minus:          "Minus",
	Star:           "Star",
	Slash:          "Slash",
	Assign:         "Assign",
	Comma:          "Comma",
	Semi:           "Semi",
	Colon:          "Colon",
	Equal:          "Equal",
	NotEqual:       "NotEqual",
	Lt:             "Lt",
	Le:             "Le",
	Ge:             "Ge",
	Gt:             "Gt",
	LParen:         "LParen",
	RParen:         "RParen",
	LBracket:       "LBracket",
	LBracketAlt:    "LBracket2",
	RBracket:       "RBracket",
	RBracketAlt:    "RBracket2",
	Pointer:        "Pointer",
	At:             "At",
	Dot:            "Dot",
	DotDot:         "DotDot",
	LCurly:         "LCurly",
	RCurly:         "RCurly",
	Unit:           "Unit",
	Interface:      "Interface",
	Uses:           "Uses",
	String:         "String",
	Implementation: "Implementation",
	True:           "True",
	False:          "False",
	Whitespace:     "Ws",
	BraceComment:   "Comment1",
	ParenComment:   "Comment2",
	Ident:          "Ident",
	StringLiteral:  "StringLiteral",
	IntLiteral:     "NumInt",
	RealLiteral:    "NumReal",
	Unknown:        "Unknown",
}

// String returns the display name of the type. It's meant for diagnostics only.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "Type(?)"
	}
	return typeNames[t]
}

// Types returns every type except None, in declaration order.
// StringLiteral is included although Tokenize never produces it.
func Types() []Type {
	all := make([]Type, 0, numTypes-1)
	for t := And; t < numTypes; t++ {
		all = append(all, t)
	}
	return all
}

// IsKeyword reports whether t is a reserved word.
func (t Type) IsKeyword() bool {
	return (t >= And && t <= With) || (t >= Unit && t <= False)
}

// IsTrivia reports whether t carries no meaning for a parser (whitespace and comments).
func (t Type) IsTrivia() bool {
	return t == Whitespace || t == BraceComment || t == ParenComment
}
