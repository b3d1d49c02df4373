package savedata

import (
	"io"
	"strings"
)

// writeDelimited writes a header of quoted column names followed by one line
// per row. String and mixed columns are quoted; missing values are empty
// fields.
func writeDelimited(w io.Writer, t Table, delim string) error {
	var sb strings.Builder
	for i, name := range t.Names {
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(quoteField(name))
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	for _, row := range t.Rows {
		sb.Reset()
		for j, v := range row {
			if j > 0 {
				sb.WriteString(delim)
			}
			if v.IsMissing() {
				continue
			}
			switch t.Types[j] {
			case TypeString, TypeMixed:
				sb.WriteString(quoteField(v.Text()))
			default:
				sb.WriteString(v.Text())
			}
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
