package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MarshalFile marshals o as indented JSON and writes it to path, creating
// the parent directory if necessary.
func MarshalFile(path string, o any) error {
	return WriteFile(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		err := enc.Encode(o)
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}

		return nil
	})
}

// WriteFile creates the file at path and lets fn write its contents. The
// parent directory is created if necessary.
func WriteFile(path string, fn func(w io.Writer) error) (outErr error) {
	err := os.MkdirAll(filepath.Dir(path), 0o770)
	if err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	defer Close(filepath.Base(path), f, &outErr)

	return fn(f)
}

// Close a resource and joins the error to the outError if the close fails. Will
// ignore os.ErrClosed so it's safe to use together with "manual" closing of
// files.
func Close(name string, c io.Closer, outErr *error) {
	err := c.Close()
	if err != nil && !errors.Is(err, os.ErrClosed) {
		*outErr = errors.Join(*outErr, fmt.Errorf("close %s: %w", name, err))
	}
}
