// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     config
// Description: Grammar-table configuration (TOML/YAML) for the lexer
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	lperror "github.com/msto63/lanpy/pkg/core/error"
	lplog "github.com/msto63/lanpy/pkg/core/log"
	"github.com/msto63/lanpy/pkg/lexer"
	"github.com/msto63/lanpy/pkg/token"
	"github.com/msto63/lanpy/pkg/utils/stringx"
)

// EnvVar names the environment variable consulted by LoadFromEnv
const EnvVar = "LANPY_CONFIG"

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension, defaulting to TOML
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds a grammar table: which scanning rules run and which
// operators and keywords the lexer recognizes.
type Config struct {
	Lexer     LexerConfig       `toml:"lexer" yaml:"lexer"`
	Operators map[string]string `toml:"operators" yaml:"operators"`
	Keywords  map[string]string `toml:"keywords" yaml:"keywords"`
	Log       LogConfig         `toml:"log" yaml:"log"`

	filePath string
	format   Format
}

// LexerConfig mirrors lexer.Options
type LexerConfig struct {
	Numbers      bool `toml:"numbers" yaml:"numbers"`
	Words        bool `toml:"words" yaml:"words"`
	OnlyKeywords bool `toml:"only_keywords" yaml:"only_keywords"`
	Strings      bool `toml:"strings" yaml:"strings"`
}

// LogConfig holds logger settings for the command line tools
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns a configuration with every scanning rule enabled and
// empty operator and keyword tables.
func Default() *Config {
	cfg := &Config{
		Lexer: LexerConfig{
			Numbers: true,
			Words:   true,
			Strings: true,
		},
		format: FormatTOML,
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	if stringx.IsBlank(path) {
		return nil, lperror.New("config file path cannot be empty").
			WithCode(lperror.CodeInvalidInput).
			WithOperation("config.Load")
	}

	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, lperror.Newf("config file not found: %s", path).
				WithCode(lperror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("filePath", path)
		}
		return nil, lperror.Wrapf(err, "failed to read config file %s", path).
			WithCode(lperror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	format := detectFormat(path)
	cfg, err := parse(content, format)
	if err != nil {
		return nil, lperror.Wrap(err, "failed to parse config file").
			WithOperation("config.Load").
			WithDetails(map[string]interface{}{
				"filePath": path,
				"format":   format.String(),
			})
	}
	cfg.filePath = path

	return cfg, nil
}

// LoadFromString loads configuration from a string with the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg, err := parse([]byte(content), format)
	if err != nil {
		return nil, lperror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString")
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by LANPY_CONFIG, or the first of
// ./lanpy.toml and ./configs/lanpy.toml that exists.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, candidate := range []string{"./lanpy.toml", "./configs/lanpy.toml"} {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path == "" {
		return nil, lperror.New("no config file found, set " + EnvVar + " or create lanpy.toml").
			WithCode(lperror.CodeMissingConfig).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parse decodes content on top of the defaults, so keys missing from the
// file keep their default values.
func parse(content []byte, format Format) (*Config, error) {
	cfg := Default()
	cfg.format = format

	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, lperror.Wrap(err, "TOML parse error").
				WithCode(lperror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, lperror.Newf("unknown config key: %s", undecoded[0]).
				WithCode(lperror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, lperror.Wrap(err, "YAML parse error").
				WithCode(lperror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
	default:
		return nil, lperror.Newf("unsupported format: %s", format).
			WithCode(lperror.CodeInvalidInput).
			WithOperation("config.parse").
			WithDetail("format", format.String())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = lplog.DefaultLevel().String()
	}
	if c.Log.Format == "" {
		c.Log.Format = lplog.FormatText.String()
	}
}

// Validate checks the operator and keyword tables and the log settings
func (c *Config) Validate() error {
	var problems []string

	for _, op := range sortedKeys(c.Operators) {
		if op == "" {
			problems = append(problems, "operator text must not be empty")
		} else if strings.ContainsFunc(op, unicode.IsSpace) {
			problems = append(problems, fmt.Sprintf("operator %q contains whitespace", op))
		}
		if stringx.IsBlank(c.Operators[op]) {
			problems = append(problems, fmt.Sprintf("operator %q has no token name", op))
		}
	}

	for _, kw := range sortedKeys(c.Keywords) {
		if stringx.IsBlank(kw) {
			problems = append(problems, "keyword text must not be empty")
		}
		if stringx.IsBlank(c.Keywords[kw]) {
			problems = append(problems, fmt.Sprintf("keyword %q has no token name", kw))
		}
	}

	if _, err := lplog.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}
	if _, err := lplog.ParseFormat(c.Log.Format); err != nil {
		problems = append(problems, fmt.Sprintf("unknown log format %q", c.Log.Format))
	}

	if len(problems) == 0 {
		return nil
	}

	return lperror.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(lperror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", len(problems))
}

// TokenizeOptions converts the [lexer] section into lexer options
func (c *Config) TokenizeOptions() lexer.Options {
	return lexer.Options{
		Numbers:      c.Lexer.Numbers,
		Words:        c.Lexer.Words,
		OnlyKeywords: c.Lexer.OnlyKeywords,
		Strings:      c.Lexer.Strings,
	}
}

// NewLexer creates a lexer for source using the configured tables
func (c *Config) NewLexer(source string) *lexer.Lexer {
	return lexer.New(source, c.Operators, c.Keywords)
}

// Tokenize is a shorthand for NewLexer(source).Tokenize(TokenizeOptions())
func (c *Config) Tokenize(source string, logger *lplog.Logger) ([]token.Token, error) {
	return c.NewLexer(source).WithLogger(logger).Tokenize(c.TokenizeOptions())
}

// FilePath returns the path the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format the configuration was decoded from
func (c *Config) Format() Format {
	return c.format
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
