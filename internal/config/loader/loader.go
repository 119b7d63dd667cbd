// Package loader decodes configuration files and reads environment
// overrides.
//
// Files are decoded straight into a caller-provided struct, so fields the
// file does not mention keep the values the caller set before decoding.
// The format is chosen by extension: .toml, or .yaml and .yml. Unknown
// keys are rejected.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// decodeFunc decodes data into dst.
type decodeFunc func(source string, data []byte, dst any) error

var decoders = map[string]decodeFunc{
	".toml": decodeTOML,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

// Supported reports whether path has an extension with a decoder.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// DecodeFile decodes the file at path into dst. A missing file is not an
// error: found is false and dst is untouched.
func DecodeFile(fsys FileSystem, path string, dst any) (found bool, err error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := decode(path, data, dst); err != nil {
		return true, err
	}
	return true, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
