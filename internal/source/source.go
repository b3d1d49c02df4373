// Package source reads datasets for the savedata CLI from JSON, YAML, or
// Parquet files.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/spf13/afero"

	"github.com/bjaus/savedata"
)

// Input encodings.
const (
	JSON    = "json"
	YAML    = "yaml"
	Parquet = "parquet"
)

// ErrUnknownEncoding is returned when an input encoding cannot be determined.
var ErrUnknownEncoding = errors.New("unknown input encoding")

// EncodingOf returns the input encoding implied by a file extension, or ""
// when the extension is not recognized.
func EncodingOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".parquet":
		return Parquet
	default:
		return ""
	}
}

// Load reads and decodes the file at path. The encoding comes from the file
// extension; unrecognized extensions are sniffed as JSON or YAML.
func Load(fs afero.Fs, path string) (savedata.Value, error) {
	f, err := fs.Open(path)
	if err != nil {
		return savedata.Value{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if EncodingOf(path) == Parquet {
		stat, err := f.Stat()
		if err != nil {
			return savedata.Value{}, fmt.Errorf("stat %s: %w", path, err)
		}
		v, err := decodeParquet(f, stat.Size())
		if err != nil {
			return savedata.Value{}, fmt.Errorf("%s: %w", path, err)
		}
		return v, nil
	}
	v, err := Read(f, EncodingOf(path))
	if err != nil {
		return savedata.Value{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Read decodes r in the given encoding. An empty encoding sniffs the first
// non-space byte: '{' or '[' means JSON, anything else YAML.
func Read(r io.Reader, encoding string) (savedata.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return savedata.Value{}, fmt.Errorf("read input: %w", err)
	}
	if encoding == "" {
		encoding = sniff(data)
	}
	switch encoding {
	case JSON:
		return savedata.DecodeJSON(data)
	case YAML:
		return savedata.DecodeYAML(data)
	case Parquet:
		return decodeParquet(bytes.NewReader(data), int64(len(data)))
	default:
		return savedata.Value{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
}

func sniff(data []byte) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSON
	}
	return YAML
}

// decodeParquet reads every row as a record whose keys follow the schema's
// column order.
func decodeParquet(r io.ReaderAt, size int64) (savedata.Value, error) {
	pqFile, err := parquet.OpenFile(r, size)
	if err != nil {
		return savedata.Value{}, fmt.Errorf("failed to open parquet file: %w", err)
	}
	fields := pqFile.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	records := []savedata.Value{}
	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return savedata.Value{}, fmt.Errorf("failed to read row: %w", err)
		}
		rec := make([]savedata.Field, len(names))
		for i, name := range names {
			v, err := savedata.FromAny(parquetValue(row[name]))
			if err != nil {
				return savedata.Value{}, fmt.Errorf("row %d column %s: %w", len(records)+1, name, err)
			}
			rec[i] = savedata.F(name, v)
		}
		records = append(records, savedata.RecordOf(rec...))
	}
	return savedata.ListOf(records...), nil
}

func parquetValue(x interface{}) interface{} {
	if t, ok := x.(time.Time); ok {
		return t.Format(time.RFC3339Nano)
	}
	return x
}
