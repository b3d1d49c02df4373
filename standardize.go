package savedata

// Table is the canonical row-major form of a dataset. Every row has one value
// per column. Encoders only read a Table.
type Table struct {
	Structure
	Rows [][]Value
}

// NewTable detects the structure of v and standardizes it.
func NewTable(v Value) (Table, error) {
	s, err := Detect(v)
	if err != nil {
		return Table{}, err
	}
	return Standardize(v, s), nil
}

// Standardize reshapes v into rows according to s. It does not re-validate:
// s must come from [Detect] on the same value.
func Standardize(v Value, s Structure) Table {
	t := Table{Structure: s}
	switch s.Shape {
	case ArrayOfArrays:
		t.Rows = make([][]Value, v.Len())
		for i, row := range v.Items() {
			t.Rows[i] = row.Items()
		}
	case FlatArray:
		t.Rows = make([][]Value, v.Len())
		for i, item := range v.Items() {
			t.Rows[i] = []Value{item}
		}
	case ArrayOfRecords:
		t.Rows = make([][]Value, v.Len())
		for i, rec := range v.Items() {
			row := make([]Value, len(s.Names))
			for j, name := range s.Names {
				row[j], _ = rec.Get(name)
			}
			t.Rows[i] = row
		}
	case ColumnMap:
		fields := v.Fields()
		n := 0
		if len(fields) > 0 {
			n = fields[0].Value.Len()
		}
		t.Rows = make([][]Value, n)
		for i := 0; i < n; i++ {
			row := make([]Value, len(fields))
			for j, f := range fields {
				row[j] = f.Value.Items()[i]
			}
			t.Rows[i] = row
		}
	}
	return t
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Column returns the values of column i in row order.
func (t Table) Column(i int) []Value {
	col := make([]Value, len(t.Rows))
	for j, row := range t.Rows {
		col[j] = row[i]
	}
	return col
}
