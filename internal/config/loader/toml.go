package loader

import (
	"bytes"
	"errors"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// decodeTOML decodes TOML data, rejecting keys dst has no field for.
func decodeTOML(source string, data []byte, dst any) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	err := dec.Decode(dst)
	if err == nil {
		return nil
	}

	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decodeErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decodeErr):
		pe.Line, pe.Column = decodeErr.Position()
		pe.Message = decodeErr.Error()
	case errors.As(err, &strictErr):
		keys := make([]string, 0, len(strictErr.Errors))
		for _, e := range strictErr.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		if len(strictErr.Errors) > 0 {
			pe.Line, pe.Column = strictErr.Errors[0].Position()
		}
		pe.Message = "unknown keys: " + strings.Join(keys, ", ")
	}
	return pe
}
