package savedata

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied by [Normalize].
const (
	DefaultName      = "myData"
	DefaultFilename  = "myExportedDataFile"
	DefaultDelimiter = ","
)

// Request is a user-supplied format request. Only Format is required; the
// other fields fall back to defaults. A bare keyword such as "csv" is a
// Request with only Format set, see [Keyword].
type Request struct {
	Format    string `yaml:"format" json:"format" mapstructure:"format"`
	Name      string `yaml:"name" json:"name" mapstructure:"name"`
	Filename  string `yaml:"filename" json:"filename" mapstructure:"filename"`
	Delimiter string `yaml:"delimiter" json:"delimiter" mapstructure:"delimiter"`
}

// Keyword returns a request for a bare format keyword.
func Keyword(format string) Request { return Request{Format: format} }

// ParseRequest parses either a bare keyword ("csv") or an object literal in
// JSON or YAML flow syntax ({"format": "delimited", "delimiter": "~"}).
func ParseRequest(text string) (Request, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return Keyword(text), nil
	}
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)
	var req Request
	if err := dec.Decode(&req); err != nil {
		return Request{}, fmt.Errorf("%w: parse request: %s", ErrInvalidFormat, err)
	}
	return req, nil
}

// Config is a complete, defaulted output configuration. Delimiter only
// matters for [Delimited]; Name is the identifier bound by JS, Python, and R
// output.
type Config struct {
	Format    Format
	Name      string
	Filename  string
	Delimiter string
}

// Normalize resolves a request into a Config. It returns [ErrInvalidFormat]
// when the format keyword is missing or unknown, or when Name cannot be bound
// as an identifier in the JS, Python, or R output.
func Normalize(req Request) (Config, error) {
	f, err := ParseFormat(req.Format)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Format:    f,
		Name:      req.Name,
		Filename:  req.Filename,
		Delimiter: req.Delimiter,
	}.withDefaults()
	if err := cfg.checkName(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// identifiers reports whether a name can be bound in each output language.
var identifiers = map[Format]func(string) bool{
	JS:     jsName,
	Python: pyName,
	R:      rSyntactic,
}

func (c Config) checkName() error {
	if valid, ok := identifiers[c.Format]; ok && !valid(c.Name) {
		return fmt.Errorf("%w: name %q is not a valid %s identifier", ErrInvalidFormat, c.Name, c.Format)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Filename == "" {
		c.Filename = DefaultFilename
	}
	if c.Format == Delimited && c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
	return c
}
