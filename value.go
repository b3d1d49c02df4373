package savedata

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Kind identifies which variant a [Value] holds.
type Kind int

const (
	KindMissing Kind = iota // null, NaN, or empty string
	KindString
	KindBoolean
	KindNumber
	KindList
	KindRecord
)

var kindNames = map[Kind]string{
	KindMissing: "missing",
	KindString:  "string",
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindList:    "list",
	KindRecord:  "record",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one node of ingested input data. It is decided once when the data
// is decoded: scalars are missing, strings, booleans, or numbers; containers
// are lists and records. The zero Value is missing.
type Value struct {
	kind   Kind
	str    string
	num    float64
	b      bool
	blank  bool
	items  []Value
	fields []Field
}

// Field is a single key of a record, in insertion order.
type Field struct {
	Key   string
	Value Value
}

// Null returns a missing value.
func Null() Value { return Value{} }

// Str returns a string value. The empty string is missing data, but it is
// remembered as blank so JSON output can echo it back.
func Str(s string) Value {
	if s == "" {
		return Value{kind: KindMissing, blank: true}
	}
	return Value{kind: KindString, str: s}
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Num returns a number value. NaN and infinities are missing.
func Num(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// Int returns a whole number value.
func Int(i int64) Value { return Value{kind: KindNumber, num: float64(i)} }

// ListOf returns a list holding vs in order.
func ListOf(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindList, items: vs}
}

// RecordOf returns a record holding fields in order. A repeated key replaces
// the earlier value but keeps its position.
func RecordOf(fields ...Field) Value {
	out := make([]Field, 0, len(fields))
	pos := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := pos[f.Key]; ok {
			out[i].Value = f.Value
			continue
		}
		pos[f.Key] = len(out)
		out = append(out, f)
	}
	return Value{kind: KindRecord, fields: out}
}

// F is shorthand for a record [Field].
func F(key string, v Value) Field { return Field{Key: key, Value: v} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is absent data.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// IsScalar reports whether v is missing, a string, a boolean, or a number.
func (v Value) IsScalar() bool { return v.kind != KindList && v.kind != KindRecord }

// Blank reports whether v is missing because it was an empty string.
func (v Value) Blank() bool { return v.kind == KindMissing && v.blank }

// Str returns the string payload. It is empty for non-strings.
func (v Value) Str() string { return v.str }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Float returns the number payload.
func (v Value) Float() float64 { return v.num }

// Len returns the number of items of a list or fields of a record.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindRecord:
		return len(v.fields)
	default:
		return 0
	}
}

// Items returns the elements of a list.
func (v Value) Items() []Value { return v.items }

// Fields returns the fields of a record in insertion order.
func (v Value) Fields() []Field { return v.fields }

// Keys returns the keys of a record in insertion order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.fields))
	for i, f := range v.fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key in a record.
func (v Value) Get(key string) (Value, bool) {
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Text returns the canonical text form of a scalar: numbers in shortest
// decimal notation, booleans as true/false, missing as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// FromAny converts a decoded Go value into a [Value]. Maps are read in
// sorted key order since Go maps carry no insertion order; use [DecodeJSON]
// or [DecodeYAML] when key order matters.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return Str(t), nil
	case []byte:
		return Str(string(t)), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: number %q: %s", ErrUnsupportedValue, t, err)
		}
		return Num(f), nil
	case float64:
		return Num(t), nil
	case float32:
		return Num(float64(t)), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case int32:
		return Int(int64(t)), nil
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Num(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Num(rv.Float()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromSeq(rv)
	case reflect.Array:
		return fromSeq(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("%w: map key type %s", ErrUnsupportedValue, rv.Type().Key())
		}
		if rv.IsNil() {
			return Null(), nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		fields := make([]Field, len(keys))
		for i, k := range keys {
			fv, err := FromAny(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return Value{}, err
			}
			fields[i] = F(k, fv)
		}
		return RecordOf(fields...), nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
	}
}

func fromSeq(rv reflect.Value) (Value, error) {
	items := make([]Value, rv.Len())
	for i := range items {
		item, err := FromAny(rv.Index(i).Interface())
		if err != nil {
			return Value{}, fmt.Errorf("index %d: %w", i, err)
		}
		items[i] = item
	}
	return ListOf(items...), nil
}
