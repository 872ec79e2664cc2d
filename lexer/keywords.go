package lexer

// keywords maps the lowercase spelling of every reserved word to its type.
// It is never written after package initialization.
var keywords = map[string]Type{
	"and":            And,
	"array":          Array,
	"begin":          Begin,
	"boolean":        Boolean,
	"case":           Case,
	"char":           Char,
	"chr":            Chr,
	"const":          Const,
	"div":            Div,
	"do":             Do,
	"downto":         Downto,
	"else":           Else,
	"end":            End,
	"file":           File,
	"for":            For,
	"function":       Function,
	"goto":           Goto,
	"if":             If,
	"in":             In,
	"integer":        Integer,
	"label":          Label,
	"mod":            Mod,
	"nil":            Nil,
	"not":            Not,
	"of":             Of,
	"or":             Or,
	"packed":         Packed,
	"procedure":      Procedure,
	"program":        Program,
	"real":           Real,
	"record":         Record,
	"repeat":         Repeat,
	"set":            Set,
	"then":           Then,
	"to":             To,
	"type":           TypeKeyword,
	"until":          Until,
	"var":            Var,
	"while":          While,
	"with":           With,
	"unit":           Unit,
	"interface":      Interface,
	"uses":           Uses,
	"string":         String,
	"implementation": Implementation,
	"true":           True,
	"false":          False,
}

// LookupKeyword returns the reserved word type for ident, ignoring ASCII case.
func LookupKeyword(ident string) (Type, bool) {
	t, ok := keywords[foldASCII(ident)]
	return t, ok
}

// foldASCII lowercases ASCII letters and leaves every other byte untouched.
// The input is returned as-is when it has no uppercase letters.
func foldASCII(s string) string {
	var buf []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		if buf == nil {
			buf = []byte(s)
		}
		buf[i] = c + ('a' - 'A')
	}
	if buf == nil {
		return s
	}
	return string(buf)
}
