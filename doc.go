// Package savedata infers the tabular structure of loosely typed data and
// renders it as delimited text, a Python dict, an R data.frame, JSON, or a
// JavaScript binding.
//
// Input is a [Value], decided once at ingestion from JSON ([DecodeJSON]),
// YAML ([DecodeYAML]), or Go values ([FromAny]). Four shapes are recognized:
//
//   - [FlatArray]: [1, 2, 3], one column named var1
//   - [ArrayOfRecords]: [{"a": 1}, {"a": 2}], columns named by the keys
//   - [ArrayOfArrays]: [[1, "x"], [2, "y"]], columns var1..varN
//   - [ColumnMap]: {"a": [1, 2], "b": ["x", "y"]}, columns named by the keys
//
// [Detect] finds the shape and classifies each column as string, boolean,
// integer, real, or mixed (see [Classify]). [Standardize] turns any shape into
// a row-major [Table].
//
// # Formats
//
// A [Request] names a format keyword (CSV, DELIMITED, JS, JSON, PYTHON, R,
// case-insensitive) and optionally a binding name, filename, and delimiter.
// [Normalize] fills in defaults:
//
//	cfg, err := savedata.Normalize(savedata.Keyword("csv"))
//	out, err := savedata.Marshal(data, cfg)
//
// JSON and JS output serialize the input as given. Delimited, Python, and R
// output are rendered from the [Table] and follow each target's literal rules:
//
//   - Delimited: quoted header, quoted string and mixed fields, empty fields
//     for missing values
//   - Python: {'col': [...]} with None, True, and False
//   - R: a data.frame declaration followed by one c(...) per column, with NA
//
// # Sinks
//
// [ToLog] logs the rendered text through [log/slog]. [ToFile] hands it to a
// [Downloader] with a MIME type and a filename carrying the format's
// extension. [FileDownloader] writes through an afero filesystem and
// [HTTPDownloader] sends an attachment response.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnrecognizedShape]: input matches none of the four shapes
//   - [ErrInconsistentRows]: rows or columns disagree in length or keys
//   - [ErrInvalidFormat]: format keyword missing or unknown, or a name that
//     is not an identifier of the target language
//   - [ErrMissingData]: no data supplied
//   - [ErrUnsupportedValue]: a Go value [FromAny] cannot represent, or a
//     list or record where a table cell is expected
//   - [ErrInvalidInput]: malformed JSON or YAML
package savedata
