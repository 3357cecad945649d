package tokenizer

import "fmt"

// TokenType identifies the syntactic class of a Token.
type TokenType uint

const (
	// Span is a contiguous run of non-markup content bytes.
	Span TokenType = iota
	// Entity is an entity reference, from `&` through the closing `;`.
	Entity
	// Error marks a malformed or unterminated construct. Its data is the
	// entire unconsumed remainder of the input.
	Error
	// PI is a processing instruction, from `<?` through `?>`.
	PI
	// Comment spans `<!--` through `-->`.
	Comment
	// Decl is a structural markup declaration such as `<!DOCTYPE ...>`,
	// ending at `>`, or at the `[` that opens an internal subset.
	Decl
	// DeclEnd is the `]>` closing an internal subset.
	DeclEnd
	// Element is a start tag, from `<` through `>`.
	Element
	// ElementEnd is an end tag, from `</` through `>`.
	ElementEnd
)

func (tt TokenType) String() string {
	switch tt {
	case Span:
		return "Span"
	case Entity:
		return "Entity"
	case Error:
		return "Error"
	case PI:
		return "PI"
	case Comment:
		return "Comment"
	case Decl:
		return "Decl"
	case DeclEnd:
		return "DeclEnd"
	case Element:
		return "Element"
	case ElementEnd:
		return "ElementEnd"
	}

	return fmt.Sprintf("TokenType(%d)", uint(tt))
}

// Token is one lexical span of the input, including its delimiters. Data
// aliases the buffer the Tokenizer was constructed with, never a copy, so
// the buffer must outlive every Token produced from it.
type Token struct {
	Type TokenType
	Data []byte
}

// IsError reports whether this is the terminal Error token.
func (t Token) IsError() bool {
	return t.Type == Error
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Data)
}
