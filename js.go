package savedata

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	jsReserved   = toSet(`break case catch class const continue debugger default delete do else enum
		export extends false finally for function if import in instanceof let new null return static
		super switch this throw true try typeof var void while with yield await implements interface
		package private protected public`)
)

func jsName(s string) bool { return jsIdentifier.MatchString(s) && !jsReserved[s] }

func toSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

func writeJS(w io.Writer, v Value, name string) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "let %s = %s;", name, data)
	return err
}
