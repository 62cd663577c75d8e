package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/luboganev/circular-progress-view/pkg/errors"
)

// writeOutput streams encode into path, or to stdout when path is "-". A
// panicking encoder is returned as a KindPanic error.
func writeOutput(op, path string, encode func(io.Writer) error) (err error) {
	defer errors.RecoverError(op, &err)

	if path == "-" {
		if err := encode(os.Stdout); err != nil {
			return encodeError(op, path, err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return encodeError(op, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = encodeError(op, path, cerr)
		}
	}()

	if err := encode(f); err != nil {
		return encodeError(op, path, err)
	}
	return nil
}

func encodeError(op, path string, err error) error {
	return &errors.ProgressError{
		Op:   op,
		Kind: errors.KindEncode,
		Path: path,
		Err:  fmt.Errorf("failed to write output: %w", err),
	}
}
