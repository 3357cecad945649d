package tokenizer

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// propertyInputs collects documents of every shape the tokenizer can
// meet: well-formed, truncated, malformed and binary junk.
func propertyInputs(t testing.TB) [][]byte {
	inputs := make([][]byte, 0, len(tokenizeTests)+8)
	for _, tt := range tokenizeTests {
		inputs = append(inputs, []byte(tt.in))
	}

	schema, err := os.ReadFile("testdata/schema.xsd")
	require.NoError(t, err)

	return append(inputs,
		schema,
		[]byte("<!DOCTYPE a [<!ELEMENT b (c)>]><b><c>&#38;</c></b>"),
		[]byte("&;&;&;"),
		[]byte("<<<>>>"),
		[]byte("<!--<!--->-->"),
		[]byte{0x00, 0xff, '<', 'x', '>', 0xfe, '&', ';'},
		[]byte("]]]>"),
		[]byte("<?<?>?>"),
	)
}

// TestPartitionProperty checks that the produced spans partition the
// input: concatenated in order they reproduce it byte for byte.
func TestPartitionProperty(t *testing.T) {
	for _, in := range propertyInputs(t) {
		var joined []byte
		for _, tok := range New(in).All() {
			joined = append(joined, tok.Data...)
		}
		// bytes.Equal, not assert.Equal: an input with no tokens joins to
		// a nil slice, which still partitions an empty input.
		assert.True(t, bytes.Equal(in, joined), "input %q joined to %q", in, joined)
	}
}

// TestMonotonicConsumption checks that every production step strictly
// shrinks the remainder, which is what guarantees termination.
func TestMonotonicConsumption(t *testing.T) {
	for _, in := range propertyInputs(t) {
		tkz := New(in)
		before := len(tkz.rest)
		for {
			_, ok := tkz.Next()
			if !ok {
				break
			}
			require.Less(t, len(tkz.rest), before, "input %q", in)
			before = len(tkz.rest)
		}
		require.Zero(t, before, "input %q", in)
	}
}

// TestNonErrorTokensNonEmpty checks that only Error tokens may carry an
// empty span.
func TestNonErrorTokensNonEmpty(t *testing.T) {
	for _, in := range propertyInputs(t) {
		for _, tok := range New(in).All() {
			if tok.IsError() {
				continue
			}
			assert.NotEmpty(t, tok.Data, "input %q", in)
		}
	}
}

// TestErrorIsTerminal checks that an Error token is the last token of
// any sequence that contains one.
func TestErrorIsTerminal(t *testing.T) {
	for _, in := range propertyInputs(t) {
		tokens := New(in).All()
		for i, tok := range tokens {
			if tok.IsError() {
				require.Equal(t, len(tokens)-1, i, "input %q", in)
			}
		}
	}
}

// TestDepthMonotonicity checks that the internal-subset depth only ever
// moves upward over a tokenizer's lifetime.
func TestDepthMonotonicity(t *testing.T) {
	for _, in := range propertyInputs(t) {
		tkz := New(in)
		depth := tkz.depth
		for {
			_, ok := tkz.Next()
			if !ok {
				break
			}
			require.GreaterOrEqual(t, tkz.depth, depth, "input %q", in)
			depth = tkz.depth
		}
	}
}
