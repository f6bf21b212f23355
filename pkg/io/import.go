package io

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
)

// StdinPath is the path that selects standard input in [ImportJSONFrom].
const StdinPath = "-"

// ReadJSON decodes exactly one JSON value from r.
//
// Numbers decode as json.Number so large ids survive untouched. Data after
// the first value is rejected. ReadJSON does not close r.
func ReadJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, gferrors.New(gferrors.ErrCodeInvalidJSON, "empty document")
		}
		return nil, gferrors.Wrap(gferrors.ErrCodeInvalidJSON, err, "decode")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, gferrors.New(gferrors.ErrCodeInvalidJSON, "unexpected data after JSON value")
	}
	return v, nil
}

// ParseJSON decodes a raw JSON string, as given on the command line.
func ParseJSON(raw string) (any, error) {
	return ReadJSON(strings.NewReader(raw))
}

// ImportJSON reads and decodes the JSON file at path.
// The path "-" reads os.Stdin.
func ImportJSON(path string) (any, error) {
	return ImportJSONFrom(path, os.Stdin)
}

// ImportJSONFrom is [ImportJSON] with an explicit reader standing in for
// stdin.
func ImportJSONFrom(path string, stdin io.Reader) (any, error) {
	if path == StdinPath {
		v, err := ReadJSON(stdin)
		if err != nil {
			return nil, gferrors.Wrap(gferrors.GetCode(err), err, "stdin")
		}
		return v, nil
	}
	if err := gferrors.ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, gferrors.Wrap(gferrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, gferrors.Wrap(gferrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	v, err := ReadJSON(f)
	if err != nil {
		return nil, gferrors.Wrap(gferrors.GetCode(err), err, "%s", filepath.Base(path))
	}
	return v, nil
}
