package savedata_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/savedata"
)

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

func mustConfig(t *testing.T, req savedata.Request) savedata.Config {
	t.Helper()
	cfg, err := savedata.Normalize(req)
	require.NoError(t, err)
	return cfg
}

func marshal(t *testing.T, input string, req savedata.Request) string {
	t.Helper()
	out, err := savedata.Marshal(mustJSON(t, input), mustConfig(t, req))
	require.NoError(t, err)
	return string(out)
}

// ============================================================
// Tests
// ============================================================

// --- Delimited ---

func TestWriteDelimited(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		req   savedata.Request
		want  string
	}{
		"missing becomes empty field": {
			input: `[{"a": 1, "b": "x"}, {"a": null, "b": "y"}]`,
			req:   savedata.Keyword("csv"),
			want:  "\"a\",\"b\"\n1,\"x\"\n,\"y\"\n",
		},
		"custom delimiter with mixed column": {
			input: `[[1, "x", true], [2.5, 3, false]]`,
			req:   savedata.Request{Format: "delimited", Delimiter: "~"},
			want:  "\"var1\"~\"var2\"~\"var3\"\n1~\"x\"~true\n2.5~\"3\"~false\n",
		},
		"embedded quotes are doubled": {
			input: `["say \"hi\""]`,
			req:   savedata.Keyword("csv"),
			want:  "\"var1\"\n\"say \"\"hi\"\"\"\n",
		},
		"multi-character delimiter": {
			input: `{"a": [1], "b": [2]}`,
			req:   savedata.Request{Format: "csv", Delimiter: " | "},
			want:  "\"a\" | \"b\"\n1 | 2\n",
		},
		"missing last field": {
			input: `[[1, null]]`,
			req:   savedata.Keyword("csv"),
			want:  "\"var1\",\"var2\"\n1,\n",
		},
		"header only": {
			input: `{"a": []}`,
			req:   savedata.Keyword("csv"),
			want:  "\"a\"\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, marshal(t, tt.input, tt.req))
		})
	}
}

func TestWriteDelimitedWriteError(t *testing.T) {
	t.Parallel()
	err := savedata.Write(&errWriter{}, mustJSON(t, `[1]`), mustConfig(t, savedata.Keyword("csv")))
	require.ErrorIs(t, err, errWriteFailed)
}

// --- JSON and JS ---

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"keeps key order and blanks": {
			input: `[{"b": 1, "a": "x<y", "c": null, "d": "", "e": 1.5, "f": true}]`,
			want:  `[{"b":1,"a":"x<y","c":null,"d":"","e":1.5,"f":true}]`,
		},
		"any shape": {
			input: `{"a": 1, "nested": {"b": [1, "two"]}}`,
			want:  `{"a":1,"nested":{"b":[1,"two"]}}`,
		},
		"scalar": {
			input: `42`,
			want:  `42`,
		},
		"escapes control characters": {
			input: `["line\nbreak"]`,
			want:  `["line\nbreak"]`,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, marshal(t, tt.input, savedata.Keyword("json")))
		})
	}
}

func TestWriteJS(t *testing.T) {
	t.Parallel()
	got := marshal(t, `{"a": [1, 2]}`, savedata.Request{Format: "js", Name: "points"})
	assert.Equal(t, `let points = {"a":[1,2]};`, got)
}

func TestWriteJSDefaultName(t *testing.T) {
	t.Parallel()
	got := marshal(t, `[1, 2]`, savedata.Keyword("JS"))
	assert.Equal(t, `let myData = [1,2];`, got)
}

// --- Python ---

func TestWritePython(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"typed columns": {
			input: `{"a": [1, null], "b": ["x", "it's"], "c": [true, false]}`,
			want:  `myData = {'a': [1,None], 'b': ['x','it\'s'], 'c': [True,False]}`,
		},
		"mixed columns keep each value's kind": {
			input: `[[1, "x"], ["y", true]]`,
			want:  `myData = {'var1': [1,'y'], 'var2': ['x',True]}`,
		},
		"reals": {
			input: `[0.5, -2, null]`,
			want:  `myData = {'var1': [0.5,-2,None]}`,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, marshal(t, tt.input, savedata.Keyword("python")))
		})
	}
}

// --- R ---

func TestWriteR(t *testing.T) {
	t.Parallel()
	got := marshal(t, `{"a": [1, null], "b": ["x", "y"], "c": [true, false], "d": [1.5, 2]}`,
		savedata.Request{Format: "r", Name: "df"})
	want := "# Data frame generated by savedata\n" +
		"df <- data.frame(a = numeric(2), b = character(2), c = logical(2), d = numeric(2))\n" +
		"df$a <- c(1,NA)\n" +
		"df$b <- c(\"x\",\"y\")\n" +
		"df$c <- c(TRUE,FALSE)\n" +
		"df$d <- c(1.5,2)\n"
	assert.Equal(t, want, got)
}

func TestWriteRMixedIsCharacter(t *testing.T) {
	t.Parallel()
	got := marshal(t, `[[1, "a \"q\""], ["x", null]]`, savedata.Keyword("r"))
	want := "# Data frame generated by savedata\n" +
		"myData <- data.frame(var1 = character(2), var2 = character(2))\n" +
		"myData$var1 <- c(\"1\",\"x\")\n" +
		"myData$var2 <- c(\"a \\\"q\\\"\",NA)\n"
	assert.Equal(t, want, got)
}

func TestWriteRNonSyntacticNames(t *testing.T) {
	t.Parallel()
	got := marshal(t, `{"my col": [1], "if": ["a"]}`, savedata.Keyword("r"))
	want := "# Data frame generated by savedata\n" +
		"myData <- data.frame(`my col` = numeric(1), `if` = character(1), check.names = FALSE)\n" +
		"myData$`my col` <- c(1)\n" +
		"myData$`if` <- c(\"a\")\n"
	assert.Equal(t, want, got)
}

func TestWriteRNoRows(t *testing.T) {
	t.Parallel()
	got := marshal(t, `{"a": []}`, savedata.Keyword("r"))
	assert.Equal(t, "# Data frame generated by savedata\nmyData <- data.frame(a = character(0))\n", got)
}

// --- Errors ---

func TestMarshalMissingData(t *testing.T) {
	t.Parallel()
	for _, f := range savedata.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			out, err := savedata.Marshal(savedata.Null(), mustConfig(t, savedata.Keyword(f.String())))
			require.ErrorIs(t, err, savedata.ErrMissingData)
			assert.Nil(t, out)
		})
	}
}

func TestMarshalStructureErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		wantErr error
	}{
		"unrecognized": {input: `{"a": 1}`, wantErr: savedata.ErrUnrecognizedShape},
		"inconsistent": {input: `[[1], [1, 2]]`, wantErr: savedata.ErrInconsistentRows},
		"nested cells": {input: `[[1, [2, 3]], [4, {"k": 5}]]`, wantErr: savedata.ErrUnsupportedValue},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, kw := range []string{"csv", "python", "r"} {
				out, err := savedata.Marshal(mustJSON(t, tt.input), mustConfig(t, savedata.Keyword(kw)))
				require.ErrorIs(t, err, tt.wantErr, kw)
				assert.Nil(t, out)
			}
		})
	}
}

func TestWriteJSONKeepsNestedCells(t *testing.T) {
	t.Parallel()
	in := `[[1,[2,3]],[4,{"k":5}]]`
	assert.Equal(t, in, marshal(t, in, savedata.Keyword("json")))
	assert.Equal(t, "let myData = "+in+";", marshal(t, in, savedata.Keyword("js")))
}

func TestWriteRejectsInvalidName(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := savedata.Write(&buf, savedata.ListOf(savedata.Int(1)), savedata.Config{Format: savedata.R, Name: "my data"})
	require.ErrorIs(t, err, savedata.ErrInvalidFormat)
	assert.Empty(t, buf.String())
}

func TestWriteUnknownFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := savedata.Write(&buf, savedata.ListOf(savedata.Int(1)), savedata.Config{Format: "xml"})
	require.ErrorIs(t, err, savedata.ErrInvalidFormat)
	assert.Empty(t, buf.String())
}

func TestWriteAppliesDefaultsToBareConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := savedata.Write(&buf, savedata.ListOf(savedata.Int(1)), savedata.Config{Format: savedata.Delimited})
	require.NoError(t, err)
	assert.Equal(t, "\"var1\"\n1\n", buf.String())
}
