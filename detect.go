package savedata

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Shape is one of the recognized input layouts.
type Shape int

const (
	FlatArray      Shape = iota // [1, 2, 3]
	ArrayOfRecords              // [{"a": 1}, {"a": 2}]
	ArrayOfArrays               // [[1, "x"], [2, "y"]]
	ColumnMap                   // {"a": [1, 2], "b": ["x", "y"]}
)

var shapeNames = map[Shape]string{
	FlatArray:      "array",
	ArrayOfRecords: "array of records",
	ArrayOfArrays:  "array of arrays",
	ColumnMap:      "record of arrays",
}

// String returns a human-readable shape name.
func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Structure describes the detected layout of a dataset. Names and Types are
// parallel and have one entry per column.
type Structure struct {
	Shape Shape
	Names []string
	Types []ColumnType
}

// Detect determines which shape v has and infers its column names and types.
// It returns [ErrUnrecognizedShape] when v matches no shape,
// [ErrInconsistentRows] when rows disagree in length or keys, and
// [ErrUnsupportedValue] when a cell holds a list or record.
func Detect(v Value) (Structure, error) {
	s, err := detect(v)
	if err != nil {
		return Structure{}, err
	}
	slog.Debug("savedata: detected structure", "shape", s.Shape.String(), "columns", len(s.Names))
	return s, nil
}

func detect(v Value) (Structure, error) {
	switch v.Kind() {
	case KindList:
		items := v.Items()
		if len(items) == 0 || items[0].Kind() != KindList {
			return detectList(items)
		}
		if allKind(items, KindList) {
			return detectArrays(items)
		}
	case KindRecord:
		if v.Len() > 0 && allKind(fieldValues(v), KindList) {
			return detectColumns(v)
		}
	}
	return Structure{}, fmt.Errorf("%w: dataset format not recognized", ErrUnrecognizedShape)
}

func detectList(items []Value) (Structure, error) {
	if allScalar(items) {
		return Structure{
			Shape: FlatArray,
			Names: []string{"var1"},
			Types: []ColumnType{Classify(items)},
		}, nil
	}
	if !allKind(items, KindRecord) {
		return Structure{}, fmt.Errorf("%w: dataset format not recognized", ErrUnrecognizedShape)
	}
	want := keySignature(items[0])
	for i, item := range items[1:] {
		if keySignature(item) != want {
			return Structure{}, fmt.Errorf("%w: rows do not have same variables (row %d)", ErrInconsistentRows, i+2)
		}
	}
	names := items[0].Keys()
	types := make([]ColumnType, len(names))
	for i, name := range names {
		col := make([]Value, len(items))
		for j, item := range items {
			col[j], _ = item.Get(name)
		}
		if err := checkScalars(name, col); err != nil {
			return Structure{}, err
		}
		types[i] = Classify(col)
	}
	return Structure{Shape: ArrayOfRecords, Names: names, Types: types}, nil
}

func detectArrays(rows []Value) (Structure, error) {
	width := rows[0].Len()
	for i, row := range rows {
		if row.Len() != width {
			return Structure{}, fmt.Errorf("%w: rows have varying numbers of variables (row %d has %d, want %d)", ErrInconsistentRows, i+1, row.Len(), width)
		}
	}
	s := Structure{
		Shape: ArrayOfArrays,
		Names: make([]string, width),
		Types: make([]ColumnType, width),
	}
	col := make([]Value, len(rows))
	for i := 0; i < width; i++ {
		for j, row := range rows {
			col[j] = row.Items()[i]
		}
		s.Names[i] = fmt.Sprintf("var%d", i+1)
		if err := checkScalars(s.Names[i], col); err != nil {
			return Structure{}, err
		}
		s.Types[i] = Classify(col)
	}
	return s, nil
}

func detectColumns(v Value) (Structure, error) {
	fields := v.Fields()
	n := fields[0].Value.Len()
	for _, f := range fields {
		if f.Value.Len() != n {
			return Structure{}, fmt.Errorf("%w: variables have varying numbers of observations (%q has %d, want %d)", ErrInconsistentRows, f.Key, f.Value.Len(), n)
		}
	}
	s := Structure{
		Shape: ColumnMap,
		Names: v.Keys(),
		Types: make([]ColumnType, len(fields)),
	}
	for i, f := range fields {
		if err := checkScalars(f.Key, f.Value.Items()); err != nil {
			return Structure{}, err
		}
		s.Types[i] = Classify(f.Value.Items())
	}
	return s, nil
}

// checkScalars rejects nested cells, which no table encoder can render.
func checkScalars(name string, col []Value) error {
	for i, v := range col {
		if !v.IsScalar() {
			return fmt.Errorf("%w: variable %q holds a %s at row %d", ErrUnsupportedValue, name, v.Kind(), i+1)
		}
	}
	return nil
}

func allKind(vs []Value, k Kind) bool {
	for _, v := range vs {
		if v.Kind() != k {
			return false
		}
	}
	return true
}

func allScalar(vs []Value) bool {
	for _, v := range vs {
		if !v.IsScalar() {
			return false
		}
	}
	return true
}

func fieldValues(v Value) []Value {
	out := make([]Value, v.Len())
	for i, f := range v.Fields() {
		out[i] = f.Value
	}
	return out
}

// keySignature identifies a record's key set independent of key order.
func keySignature(v Value) string {
	keys := v.Keys()
	slices.Sort(keys)
	return strings.Join(keys, "\x00")
}
