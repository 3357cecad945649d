package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Xiphoseer/xtoken/tokenizer"
)

func main() {
	debug := flag.Bool("debug", false, "trace every emitted token")
	flag.Parse()

	logger := logrus.New()
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(flag.Arg(0), logger, *debug); err != nil {
		logger.Fatal(err)
	}
}

// run dumps the token sequence of one document, read from path or from
// stdin when path is empty.
func run(path string, logger *logrus.Logger, debug bool) error {
	input, err := read(path)
	if err != nil {
		return err
	}

	t := tokenizer.New(input, tokenizer.WithLogger(logger), tokenizer.WithDebug(debug))
	for {
		tok, ok := t.Next()
		if !ok {
			return nil
		}
		fmt.Println(tok)
		if tok.IsError() {
			return errors.Errorf("malformed document: tokenization stopped with %d byte(s) remaining", len(tok.Data))
		}
	}
}

func read(path string) ([]byte, error) {
	if path == "" {
		input, err := io.ReadAll(os.Stdin)
		return input, errors.Wrap(err, "read stdin")
	}

	input, err := os.ReadFile(path)
	return input, errors.Wrapf(err, "read %s", path)
}
