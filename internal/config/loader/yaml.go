package loader

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeYAML decodes YAML data, rejecting keys dst has no field for.
// An empty document leaves dst untouched.
func decodeYAML(source string, data []byte, dst any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return nil
}
