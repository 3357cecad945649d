package tokenizer

import (
	"context"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
)

// TokenizeAll tokenizes every input on a shared goroutine pool, one
// Tokenizer per input, and returns the drained token sequences in input
// order. Jobs already submitted when ctx is cancelled run to completion;
// their results are returned alongside the context error.
func TokenizeAll(ctx context.Context, inputs [][]byte, opts ...Option) ([][]Token, error) {
	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		return nil, errors.Wrap(err, "create tokenize pool")
	}
	defer pool.Release()

	var wg sync.WaitGroup
	results := make([][]Token, len(inputs))
	for i := range inputs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return results, errors.Wrap(ctx.Err(), "tokenize batch")
		default:
		}

		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = New(inputs[i], opts...).All()
		}); err != nil {
			wg.Done()
			wg.Wait()
			return results, errors.Wrap(err, "submit tokenize job")
		}
	}
	wg.Wait()

	return results, nil
}
