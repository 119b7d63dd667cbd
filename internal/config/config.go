// Package config holds linestorm's settings and loads them from defaults,
// a TOML or YAML file, and LINESTORM_* environment variables, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Log levels accepted by Logging.Level.
var Levels = []string{"debug", "info", "warn", "error"}

// Config is the complete editor configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`
	Syntax  SyntaxConfig  `toml:"syntax" yaml:"syntax"`
}

// EditorConfig holds panel defaults.
type EditorConfig struct {
	LineNumbers   bool   `toml:"line_numbers" yaml:"line_numbers"`
	Highlight     bool   `toml:"highlight" yaml:"highlight"`
	StartupScript string `toml:"startup_script" yaml:"startup_script"`
}

// LoggingConfig controls the log file. An empty File discards logs.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// ThemeConfig maps highlight categories to "#rrggbb" colours.
// Empty values keep the built-in colour.
type ThemeConfig struct {
	Keyword  string `toml:"keyword" yaml:"keyword"`
	Comment  string `toml:"comment" yaml:"comment"`
	String   string `toml:"string" yaml:"string"`
	Number   string `toml:"number" yaml:"number"`
	Type     string `toml:"type" yaml:"type"`
	Operator string `toml:"operator" yaml:"operator"`
}

// SyntaxConfig drives the keyword classifier, used when no chroma lexer
// matches the file name.
type SyntaxConfig struct {
	Keywords    []string `toml:"keywords" yaml:"keywords"`
	Types       []string `toml:"types" yaml:"types"`
	LineComment string   `toml:"line_comment" yaml:"line_comment"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Syntax: SyntaxConfig{
			Keywords: []string{
				"as", "break", "const", "continue", "else", "enum", "fn", "for",
				"if", "impl", "in", "let", "loop", "match", "mod", "mut", "pub",
				"return", "self", "struct", "trait", "type", "use", "where", "while",
			},
			Types: []string{
				"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "isize",
				"str", "String", "u8", "u16", "u32", "u64", "usize", "Vec",
			},
			LineComment: "//",
		},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Syntax.Keywords = slices.Clone(c.Syntax.Keywords)
	out.Syntax.Types = slices.Clone(c.Syntax.Types)
	return &out
}

// ThemeColors returns the non-empty theme entries keyed by category name.
func (t ThemeConfig) ThemeColors() map[string]string {
	all := map[string]string{
		"keyword":  t.Keyword,
		"comment":  t.Comment,
		"string":   t.String,
		"number":   t.Number,
		"type":     t.Type,
		"operator": t.Operator,
	}
	for k, v := range all {
		if v == "" {
			delete(all, k)
		}
	}
	return all
}

// Validate reports every problem in c, joined, each wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Levels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, fmt.Errorf("%w: logging.level %q (want one of %v)", ErrInvalidConfig, c.Logging.Level, Levels))
	}
	for name, hex := range c.Theme.ThemeColors() {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("%w: theme.%s %q: %v", ErrInvalidConfig, name, hex, err))
		}
	}
	return errors.Join(errs...)
}
