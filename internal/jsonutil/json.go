// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DecodeStrict decodes JSON from r into v, rejecting unknown fields so that
// a typo in an artifact is an error rather than a silently ignored key.
func DecodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// LoadFile decodes the JSON file at path into v with DecodeStrict.
func LoadFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()
	if err := DecodeStrict(f, v); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}
