package savedata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnrecognizedShape = errors.New("unrecognized dataset shape")
	ErrInconsistentRows  = errors.New("inconsistent rows")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrMissingData       = errors.New("missing data")
	ErrUnsupportedValue  = errors.New("unsupported value")
	ErrInvalidInput      = errors.New("invalid input")
)

// Format represents an output format.
type Format string

const (
	Delimited Format = "DELIMITED"
	JS        Format = "JS"
	JSON      Format = "JSON"
	Python    Format = "PYTHON"
	R         Format = "R"
)

// csvAlias is accepted wherever a format keyword is, and means [Delimited]
// with a comma delimiter.
const csvAlias = "CSV"

var formats = []Format{Delimited, JS, JSON, Python, R}

const validFormats = "CSV, DELIMITED, JS, JSON, PYTHON, R"

// String returns the format keyword.
func (f Format) String() string { return string(f) }

// Formats returns all supported formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format keyword case-insensitively. "csv" is an alias
// for [Delimited].
func ParseFormat(s string) (Format, error) {
	kw := strings.ToUpper(strings.TrimSpace(s))
	if kw == "" {
		return "", fmt.Errorf("%w: format is required. Valid formats: %s", ErrInvalidFormat, validFormats)
	}
	if kw == csvAlias {
		return Delimited, nil
	}
	for _, f := range formats {
		if string(f) == kw {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q. Valid formats: %s", ErrInvalidFormat, s, validFormats)
}

// Write encodes data in the format named by cfg and writes it to w. Delimited,
// Python, and R output go through the canonical [Table]; JSON and JS serialize
// data as given.
func Write(w io.Writer, data Value, cfg Config) error {
	if data.IsMissing() {
		return fmt.Errorf("%w: input data is required", ErrMissingData)
	}
	cfg = cfg.withDefaults()
	if err := cfg.checkName(); err != nil {
		return err
	}
	switch cfg.Format {
	case JSON:
		return writeJSON(w, data)
	case JS:
		return writeJS(w, data, cfg.Name)
	case Delimited, Python, R:
		t, err := NewTable(data)
		if err != nil {
			return err
		}
		switch cfg.Format {
		case Delimited:
			return writeDelimited(w, t, cfg.Delimiter)
		case Python:
			return writePython(w, t, cfg.Name)
		default:
			return writeR(w, t, cfg.Name, rVectorTypes)
		}
	default:
		return fmt.Errorf("%w: %q. Valid formats: %s", ErrInvalidFormat, cfg.Format, validFormats)
	}
}

// Marshal encodes data and returns the bytes. Nothing is returned on error.
func Marshal(data Value, cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, data, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
