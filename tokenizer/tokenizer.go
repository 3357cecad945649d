// Package tokenizer splits XML-like byte streams into lexical tokens.
//
// The tokenizer is lazy and zero-copy: each call to Next locates the next
// construct with forward byte searches and returns a token whose data is a
// subslice of the original input. Concatenating every token's data, in
// order, reproduces the input exactly. No tree is built, no entities are
// resolved and no well-formedness checking happens beyond recognizing the
// delimiter syntax; a construct without its closing delimiter produces a
// single terminal Error token covering the rest of the input.
package tokenizer

import (
	"bytes"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// Tokenizer holds the scan state over one input buffer: the unconsumed
// remainder and the internal-subset depth. A Tokenizer has exactly one
// owner; it must not be shared across goroutines.
type Tokenizer struct {
	rest  []byte
	depth int

	debug  bool
	logger logrus.FieldLogger
}

// New returns a Tokenizer positioned at the start of input. The input
// bytes are never copied and must stay immutable while any produced
// Token is in use.
func New(input []byte, opts ...Option) *Tokenizer {
	t := &Tokenizer{rest: input}
	for _, opt := range opts {
		opt(t)
	}
	if t.debug && t.logger == nil {
		t.logger = logrus.New()
	}

	return t
}

// Next produces the next token. It reports false once the input is
// exhausted; after an Error token it always reports false.
func (t *Tokenizer) Next() (Token, bool) {
	var pos int
	if t.depth == 0 {
		pos = bytes.IndexAny(t.rest, "<&")
	} else {
		// Inside an internal subset `]` becomes significant too.
		pos = bytes.IndexAny(t.rest, "<&]")
	}

	if pos < 0 {
		if len(t.rest) == 0 {
			return Token{}, false
		}
		return t.emit(Token{Type: Span, Data: t.consume(len(t.rest))}), true
	}
	if pos > 0 {
		return t.emit(Token{Type: Span, Data: t.consume(pos)}), true
	}

	switch t.rest[0] {
	case '&':
		return t.emit(t.entity()), true
	case '<':
		return t.emit(t.structure()), true
	default: // ']', only searched for at depth > 0
		return t.emit(t.declEnd()), true
	}
}

// All drains the tokenizer and returns every remaining token.
func (t *Tokenizer) All() []Token {
	var tokens []Token
	for {
		tok, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// consume splits n bytes off the front of the remainder.
func (t *Tokenizer) consume(n int) []byte {
	span := t.rest[:n]
	t.rest = t.rest[n:]

	return span
}

// errRest drains the whole remainder into a terminal Error token.
func (t *Tokenizer) errRest() Token {
	return Token{Type: Error, Data: t.consume(len(t.rest))}
}

func (t *Tokenizer) emit(tok Token) Token {
	// Skip expensive rendering unless debugging.
	if t.debug {
		t.logger.Debugf("emit %s, %d bytes left", spew.Sprint(tok), len(t.rest))
	}

	return tok
}

// structure classifies the byte following a `<`.
func (t *Tokenizer) structure() Token {
	inner := t.rest[1:]
	if len(inner) == 0 {
		return t.errRest()
	}

	switch inner[0] {
	case '!':
		return t.markup(inner[1:])
	case '?':
		return t.proc(inner[1:])
	case '/':
		return t.elementEnd()
	default:
		return t.element()
	}
}

// markup handles the `<!` forms: comments and uppercase-keyword
// declarations. Anything else, including end of input, is malformed
// and terminal.
func (t *Tokenizer) markup(rest []byte) Token {
	if bytes.HasPrefix(rest, []byte("--")) {
		return t.comment(rest[2:])
	}
	if len(rest) > 0 && rest[0] >= 'A' && rest[0] <= 'Z' {
		return t.decl(rest)
	}

	return t.errRest()
}

// proc scans for the `?>` closing a processing instruction. rest starts
// just past the `<?` prefix.
func (t *Tokenizer) proc(rest []byte) Token {
	for {
		pos := bytes.IndexByte(rest, '?')
		if pos < 0 {
			return t.errRest()
		}
		rest = rest[pos+1:]
		if len(rest) == 0 {
			return t.errRest()
		}
		if rest[0] == '>' {
			return Token{Type: PI, Data: t.consume(len(t.rest) - len(rest) + 1)}
		}
	}
}

// comment scans for the exact three-byte terminator `-->`. A `-` that is
// not part of `-->` is skipped. rest starts just past the `<!--` prefix.
func (t *Tokenizer) comment(rest []byte) Token {
	for {
		pos := bytes.IndexByte(rest, '-')
		if pos < 0 {
			return t.errRest()
		}
		rest = rest[pos+1:]
		if len(rest) == 0 {
			return t.errRest()
		}
		if rest[0] == '-' && len(rest) > 1 && rest[1] == '>' {
			return Token{Type: Comment, Data: t.consume(len(t.rest) - len(rest) + 2)}
		}
	}
}

// decl scans a `<!KEYWORD ...` declaration through its `>`, or through
// the `[` that opens an internal subset, which bumps the subset depth.
// The depth is never decremented again; see the package tests for the
// observable consequence on malformed documents.
func (t *Tokenizer) decl(rest []byte) Token {
	pos := bytes.IndexAny(rest, ">[")
	if pos < 0 {
		return t.errRest()
	}

	span := t.consume(len(t.rest) - len(rest) + pos + 1)
	if span[len(span)-1] == '[' {
		t.depth++
	}

	return Token{Type: Decl, Data: span}
}

// through consumes up to and including the next occurrence of b.
func (t *Tokenizer) through(b byte, typ TokenType) Token {
	pos := bytes.IndexByte(t.rest, b)
	if pos < 0 {
		return t.errRest()
	}

	return Token{Type: typ, Data: t.consume(pos + 1)}
}

func (t *Tokenizer) entity() Token {
	return t.through(';', Entity)
}

func (t *Tokenizer) element() Token {
	return t.through('>', Element)
}

func (t *Tokenizer) elementEnd() Token {
	return t.through('>', ElementEnd)
}

func (t *Tokenizer) declEnd() Token {
	return t.through('>', DeclEnd)
}
