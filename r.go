package savedata

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// rVectorTypes maps column types to the R vector constructor used to
// declare the column.
var rVectorTypes = map[ColumnType]string{
	TypeString:  "character",
	TypeMixed:   "character",
	TypeInteger: "numeric",
	TypeReal:    "numeric",
	TypeBoolean: "logical",
}

var (
	rSyntacticName = regexp.MustCompile(`^((([A-Za-z]|[.][A-Za-z._])[A-Za-z0-9._]*)|[.])$`)
	rReserved      = map[string]bool{
		"if": true, "else": true, "repeat": true, "while": true, "function": true,
		"for": true, "next": true, "break": true, "TRUE": true, "FALSE": true,
		"NULL": true, "Inf": true, "NaN": true, "NA": true, "NA_integer_": true,
		"NA_real_": true, "NA_character_": true, "in": true,
	}
	rEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)
)

// writeR writes a data.frame declaration sized to the row count, then one
// vector assignment per column.
func writeR(w io.Writer, t Table, name string, vectorTypes map[ColumnType]string) error {
	var sb strings.Builder
	sb.WriteString("# Data frame generated by savedata\n")
	fmt.Fprintf(&sb, "%s <- data.frame(", name)
	quoted := false
	for i, col := range t.Names {
		if i > 0 {
			sb.WriteString(", ")
		}
		rcol := rName(col)
		quoted = quoted || rcol != col
		fmt.Fprintf(&sb, "%s = %s(%d)", rcol, vectorTypes[t.Types[i]], t.Len())
	}
	if quoted {
		sb.WriteString(", check.names = FALSE")
	}
	sb.WriteString(")\n")
	// Assigning c() to a column would delete it.
	if t.Len() > 0 {
		for i, col := range t.Names {
			vt := vectorTypes[t.Types[i]]
			fmt.Fprintf(&sb, "%s$%s <- c(", name, rName(col))
			for j, row := range t.Rows {
				if j > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(rValue(row[i], vt))
			}
			sb.WriteString(")\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func rValue(v Value, vectorType string) string {
	switch {
	case v.IsMissing():
		return "NA"
	case vectorType == "character":
		return `"` + rEscaper.Replace(v.Text()) + `"`
	case v.Kind() == KindBoolean:
		return strings.ToUpper(strconv.FormatBool(v.Bool()))
	default:
		return v.Text()
	}
}

func rSyntactic(s string) bool { return rSyntacticName.MatchString(s) && !rReserved[s] }

// rName backtick-quotes names that are not syntactic R identifiers.
func rName(s string) string {
	if rSyntactic(s) {
		return s
	}
	return "`" + strings.ReplaceAll(s, "`", "\\`") + "`"
}
