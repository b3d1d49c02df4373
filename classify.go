package savedata

import "strings"

// ColumnType is the inferred scalar type of a column.
type ColumnType string

const (
	TypeString  ColumnType = "string"
	TypeBoolean ColumnType = "boolean"
	TypeInteger ColumnType = "integer"
	TypeReal    ColumnType = "real"
	TypeMixed   ColumnType = "mixed"
)

// String returns the type name.
func (t ColumnType) String() string { return string(t) }

// Classify infers the type of a column. Missing values are ignored. A column
// is string, boolean, or numeric only when every present value is of that
// kind; numeric columns are integer unless some value's text has a decimal
// point. Empty and heterogeneous columns are mixed.
func Classify(values []Value) ColumnType {
	var strs, bools, nums, others int
	fractional := false
	for _, v := range values {
		switch v.Kind() {
		case KindMissing:
		case KindString:
			strs++
		case KindBoolean:
			bools++
		case KindNumber:
			nums++
			if strings.Contains(v.Text(), ".") {
				fractional = true
			}
		default:
			others++
		}
	}
	present := strs + bools + nums + others
	switch {
	case present == 0:
		return TypeMixed
	case strs == present:
		return TypeString
	case bools == present:
		return TypeBoolean
	case nums == present && fractional:
		return TypeReal
	case nums == present:
		return TypeInteger
	default:
		return TypeMixed
	}
}
