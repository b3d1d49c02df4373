package savedata

import (
	"io"
	"regexp"
	"strings"
)

var (
	pyEscaper    = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	pyIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	pyKeywords   = toSet(`False None True and as assert async await break class continue def del
		elif else except finally for from global if import in is lambda nonlocal not or pass raise
		return try while with yield`)
)

func pyName(s string) bool { return pyIdentifier.MatchString(s) && !pyKeywords[s] }

// writePython writes the table as a dict of column lists bound to name.
func writePython(w io.Writer, t Table, name string) error {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" = {")
	for i, col := range t.Names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pyString(col))
		sb.WriteString(": [")
		for j, row := range t.Rows {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(pyValue(row[i]))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('}')
	_, err := io.WriteString(w, sb.String())
	return err
}

// pyValue renders a scalar by its own kind, so mixed columns become
// heterogeneous lists.
func pyValue(v Value) string {
	switch v.Kind() {
	case KindString:
		return pyString(v.Str())
	case KindBoolean:
		if v.Bool() {
			return "True"
		}
		return "False"
	case KindNumber:
		return v.Text()
	default:
		return "None"
	}
}

func pyString(s string) string {
	return "'" + pyEscaper.Replace(s) + "'"
}
