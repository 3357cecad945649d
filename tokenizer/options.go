package tokenizer

import "github.com/sirupsen/logrus"

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLogger sets the logger used for debug traces.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(t *Tokenizer) { t.logger = logger }
}

// WithDebug toggles per-token debug tracing.
func WithDebug(debug bool) Option {
	return func(t *Tokenizer) { t.debug = debug }
}
