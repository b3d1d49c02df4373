package savedata_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/savedata"
)

func TestValueText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    savedata.Value
		want string
	}{
		"integer":  {v: savedata.Int(42), want: "42"},
		"negative": {v: savedata.Num(-3), want: "-3"},
		"real":     {v: savedata.Num(0.1), want: "0.1"},
		"large":    {v: savedata.Num(1e6), want: "1000000"},
		"true":     {v: savedata.Bool(true), want: "true"},
		"string":   {v: savedata.Str("hi"), want: "hi"},
		"missing":  {v: savedata.Null(), want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.v.Text())
		})
	}
}

func TestMissingValues(t *testing.T) {
	t.Parallel()
	assert.True(t, savedata.Null().IsMissing())
	assert.True(t, savedata.Str("").IsMissing())
	assert.True(t, savedata.Str("").Blank())
	assert.False(t, savedata.Null().Blank())
	assert.True(t, savedata.Num(math.NaN()).IsMissing())
	assert.True(t, savedata.Num(math.Inf(1)).IsMissing())
	assert.False(t, savedata.Int(0).IsMissing())
	assert.Equal(t, savedata.KindMissing, savedata.Value{}.Kind())
}

func TestRecordOfDuplicateKey(t *testing.T) {
	t.Parallel()
	v := savedata.RecordOf(
		savedata.F("a", savedata.Int(1)),
		savedata.F("b", savedata.Int(2)),
		savedata.F("a", savedata.Int(3)),
	)
	assert.Equal(t, []string{"a", "b"}, v.Keys())
	got, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, savedata.Int(3), got)
	_, ok = v.Get("z")
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "record", savedata.KindRecord.String())
	assert.Equal(t, "Kind(42)", savedata.Kind(42).String())
}

func TestFromAny(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input any
		want  savedata.Value
	}{
		"nil":         {input: nil, want: savedata.Null()},
		"string":      {input: "x", want: savedata.Str("x")},
		"bytes":       {input: []byte("x"), want: savedata.Str("x")},
		"bool":        {input: true, want: savedata.Bool(true)},
		"int":         {input: 7, want: savedata.Int(7)},
		"uint8":       {input: uint8(7), want: savedata.Int(7)},
		"float32":     {input: float32(0.5), want: savedata.Num(0.5)},
		"json.Number": {input: json.Number("2.5"), want: savedata.Num(2.5)},
		"nil pointer": {input: (*int)(nil), want: savedata.Null()},
		"any slice": {
			input: []any{1, "a", nil},
			want:  savedata.ListOf(savedata.Int(1), savedata.Str("a"), savedata.Null()),
		},
		"typed slice": {
			input: []float64{1.5},
			want:  savedata.ListOf(savedata.Num(1.5)),
		},
		"map sorted by key": {
			input: map[string]any{"b": []int{2}, "a": []int{1}},
			want: savedata.RecordOf(
				savedata.F("a", savedata.ListOf(savedata.Int(1))),
				savedata.F("b", savedata.ListOf(savedata.Int(2))),
			),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := savedata.FromAny(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	t.Parallel()
	tests := map[string]any{
		"struct":      struct{ A int }{A: 1},
		"int map key": map[int]string{1: "a"},
		"nested func": []any{func() {}},
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := savedata.FromAny(input)
			require.ErrorIs(t, err, savedata.ErrUnsupportedValue)
		})
	}
}

func TestDecodeJSONKeepsKeyOrder(t *testing.T) {
	t.Parallel()
	v, err := savedata.DecodeJSON([]byte(`{"z": [1], "a": [2], "m": [3]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, v.Keys())
}

func TestDecodeJSONInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"empty":    ``,
		"broken":   `[1, `,
		"trailing": `[1] [2]`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := savedata.DecodeJSON([]byte(input))
			require.ErrorIs(t, err, savedata.ErrInvalidInput)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()
	input := `
- name: Alice
  age: 30
  score: 1.5
  active: true
  note: ~
- name: Bob
  age: 25
  score: .nan
  active: false
  note: "n/a"
`
	v, err := savedata.DecodeYAML([]byte(input))
	require.NoError(t, err)
	tbl, err := savedata.NewTable(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "score", "active", "note"}, tbl.Names)
	assert.Equal(t, []savedata.ColumnType{
		savedata.TypeString, savedata.TypeInteger, savedata.TypeReal, savedata.TypeBoolean, savedata.TypeString,
	}, tbl.Types)
	assert.True(t, tbl.Rows[1][2].IsMissing())
}

func TestDecodeYAMLAliases(t *testing.T) {
	t.Parallel()
	input := `
base: &base [1, 2]
copy: *base
`
	v, err := savedata.DecodeYAML([]byte(input))
	require.NoError(t, err)
	got, ok := v.Get("copy")
	require.True(t, ok)
	assert.Equal(t, savedata.ListOf(savedata.Int(1), savedata.Int(2)), got)
}

func TestDecodeYAMLEmpty(t *testing.T) {
	t.Parallel()
	v, err := savedata.DecodeYAML(nil)
	require.NoError(t, err)
	assert.True(t, v.IsMissing())
}

func TestDecodeYAMLInvalid(t *testing.T) {
	t.Parallel()
	_, err := savedata.DecodeYAML([]byte("a: [1, 2"))
	require.ErrorIs(t, err, savedata.ErrInvalidInput)
}
