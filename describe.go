package savedata

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls the border characters of a [Describe] report.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border style name: rounded, none, ascii, heavy, or
// double.
func ParseBorder(s string) (BorderStyle, error) {
	if b, ok := borderNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("unknown border style %q", s)
}

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// frame holds the box-drawing characters of a border style. corner is
// indexed by line (top, middle, bottom) and by position (left, junction,
// right).
type frame struct {
	corner [3][3]string
	h, v   string
}

// newFrame reads the nine corner characters row by row, then the horizontal
// and vertical line characters.
func newFrame(chars string) frame {
	r := []rune(chars)
	var f frame
	for i := 0; i < 9; i++ {
		f.corner[i/3][i%3] = string(r[i])
	}
	f.h, f.v = string(r[9]), string(r[10])
	return f
}

var frames = map[BorderStyle]frame{
	BorderRounded: newFrame("╭┬╮├┼┤╰┴╯─│"),
	BorderASCII:   newFrame("+++++++++-|"),
	BorderHeavy:   newFrame("┏┳┓┣╋┫┗┻┛━┃"),
	BorderDouble:  newFrame("╔╦╗╠╬╣╚╩╝═║"),
}

var (
	describeHeader = []string{"#", "Column", "Type", "Missing"}
	describeAligns = []alignment{alignRight, alignLeft, alignLeft, alignRight}
)

// Describe writes a report of t's inferred schema: one line per column with
// its name, type, and count of missing values, titled with the detected shape
// and followed by the row count.
func Describe(w io.Writer, t Table, style BorderStyle) error {
	rows := make([][]string, len(t.Names))
	for i, name := range t.Names {
		missing := 0
		for _, v := range t.Column(i) {
			if v.IsMissing() {
				missing++
			}
		}
		rows[i] = []string{strconv.Itoa(i + 1), name, t.Types[i].String(), strconv.Itoa(missing)}
	}
	widths := computeWidths(describeHeader, rows)

	var sb strings.Builder
	if style == BorderNone {
		writePlain(&sb, describeHeader, rows, widths, describeAligns)
	} else {
		f, ok := frames[style]
		if !ok {
			return fmt.Errorf("unknown border style %d", int(style))
		}
		f.write(&sb, t.Shape.String(), describeHeader, rows, widths, describeAligns)
	}
	fmt.Fprintf(&sb, "%d rows\n", t.Len())
	_, err := io.WriteString(w, sb.String())
	return err
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

// writePlain lays columns out two spaces apart under a dashed rule.
func writePlain(sb *strings.Builder, header []string, rows [][]string, widths []int, aligns []alignment) {
	line := func(cells []string) {
		parts := make([]string, len(widths))
		for i, width := range widths {
			parts[i] = pad(cells[i], width, aligns[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteByte('\n')
	}
	line(header)
	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	line(dashes)
	for _, row := range rows {
		line(row)
	}
}

// write draws a boxed table with title spanning the full width. The last
// column grows when the title does not fit.
func (f frame) write(sb *strings.Builder, title string, header []string, rows [][]string, widths []int, aligns []alignment) {
	inner := span(widths)
	if need := runewidth.StringWidth(title) + 2 - inner; need > 0 {
		widths[len(widths)-1] += need
		inner += need
	}
	top, mid, bottom := f.corner[0], f.corner[1], f.corner[2]
	f.rule(sb, widths, top[0], f.h, top[2])
	sb.WriteString(f.v + " " + pad(title, inner-2, alignCenter) + " " + f.v + "\n")
	f.rule(sb, widths, mid[0], top[1], mid[2])
	f.row(sb, header, widths, aligns)
	f.rule(sb, widths, mid[0], mid[1], mid[2])
	for _, row := range rows {
		f.row(sb, row, widths, aligns)
	}
	f.rule(sb, widths, bottom[0], bottom[1], bottom[2])
}

func (f frame) rule(sb *strings.Builder, widths []int, left, junction, right string) {
	segs := make([]string, len(widths))
	for i, width := range widths {
		segs[i] = strings.Repeat(f.h, width+2)
	}
	sb.WriteString(left + strings.Join(segs, junction) + right + "\n")
}

func (f frame) row(sb *strings.Builder, cells []string, widths []int, aligns []alignment) {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = " " + pad(cells[i], width, aligns[i]) + " "
	}
	sb.WriteString(f.v + strings.Join(parts, f.v) + f.v + "\n")
}

// span is the width between the outer borders: each cell is padded by one
// space per side and cells are split by one border character.
func span(widths []int) int {
	n := -1
	for _, w := range widths {
		n += w + 3
	}
	return n
}

func pad(s string, width int, align alignment) string {
	switch align {
	case alignRight:
		return runewidth.FillLeft(s, width)
	case alignCenter:
		left := (width - runewidth.StringWidth(s)) / 2
		if left <= 0 {
			return runewidth.FillRight(s, width)
		}
		return runewidth.FillRight(strings.Repeat(" ", left)+s, width)
	default:
		return runewidth.FillRight(s, width)
	}
}
