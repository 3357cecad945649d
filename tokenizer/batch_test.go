package tokenizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeAll(t *testing.T) {
	inputs := propertyInputs(t)

	got, err := TokenizeAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, got, len(inputs))

	for i, in := range inputs {
		assert.Equal(t, New(in).All(), got[i], "input %q", in)
	}
}

func TestTokenizeAllEmpty(t *testing.T) {
	got, err := TokenizeAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTokenizeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TokenizeAll(ctx, [][]byte{[]byte("<x/>")})
	require.ErrorIs(t, err, context.Canceled)
}
