// Package lifefile reads and writes the line-oriented board and pattern
// formats:
//
//	#saved        ~ dim:<rows>,<cols> / ~ pos:r,c;r,c;   a saved board
//	#configs      same layout, positions normalized to (0,0)
//	#configs-p    one row of characters per line, '*' is alive
//	#configs-lif  '*' rows placed relative to "#P <row> <col>" anchors
package lifefile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"toruslife/internal/core"
	"toruslife/internal/pattern"
)

// Kind identifies a file dialect by its header without the leading '#'.
type Kind string

const (
	KindSaved    Kind = "saved"
	KindConfigs  Kind = "configs"
	KindPlain    Kind = "configs-p"
	KindAnchored Kind = "configs-lif"
)

// Header returns the first line a file of this kind starts with.
func (k Kind) Header() string { return "#" + string(k) }

// IsPattern reports whether files of this kind import into the pattern library.
func (k Kind) IsPattern() bool {
	return k == KindConfigs || k == KindPlain || k == KindAnchored
}

// Document is the parsed content of any supported file.
type Document struct {
	Name   string
	Kind   Kind
	Rows   int
	Cols   int
	Coords []core.Coord
}

// Pattern converts a pattern document into a library entry named after the
// document.
func (d *Document) Pattern() *pattern.Config {
	cfg := pattern.NewConfig(d.Name, d.Rows, d.Cols)
	for _, c := range d.Coords {
		cfg.Add(c.Row, c.Col)
	}
	return cfg
}

// ParseError reports a malformed file. Loading stops at the first one.
type ParseError struct {
	Name string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: %s: %v", e.Name, e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a document from r. A file whose first line is not one of the
// known headers yields (nil, nil).
func Parse(name string, r io.Reader) (*Document, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(lines) == 0 {
		return nil, nil
	}
	doc := &Document{Name: name}
	switch lines[0] {
	case KindSaved.Header():
		doc.Kind = KindSaved
		err = parseCoordinateList(doc, lines)
	case KindConfigs.Header():
		doc.Kind = KindConfigs
		err = parseCoordinateList(doc, lines)
	case KindPlain.Header():
		if len(lines) < 2 {
			return nil, nil
		}
		doc.Kind = KindPlain
		parsePlain(doc, lines)
	case KindAnchored.Header():
		doc.Kind = KindAnchored
		err = parseAnchored(doc, lines)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

func afterColon(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		return line[i+1:]
	}
	return line
}

func parseCoordinateList(doc *Document, lines []string) error {
	if len(lines) < 3 {
		return &ParseError{Name: doc.Name, Line: len(lines) + 1, Msg: "missing dim or pos line"}
	}
	dim := strings.Split(afterColon(lines[1]), ",")
	if len(dim) < 2 {
		return &ParseError{Name: doc.Name, Line: 2, Msg: fmt.Sprintf("malformed dimension %q", lines[1])}
	}
	rows, err := atoi(dim[0])
	if err != nil {
		return &ParseError{Name: doc.Name, Line: 2, Msg: "bad row count", Err: err}
	}
	cols, err := atoi(dim[1])
	if err != nil {
		return &ParseError{Name: doc.Name, Line: 2, Msg: "bad column count", Err: err}
	}
	doc.Rows, doc.Cols = rows, cols

	for _, tok := range strings.Split(afterColon(lines[2]), ";") {
		pos := strings.Split(tok, ",")
		if pos[0] == "" {
			break
		}
		if len(pos) < 2 {
			return &ParseError{Name: doc.Name, Line: 3, Msg: fmt.Sprintf("malformed coordinate %q", tok)}
		}
		if pos[1] == "" {
			break
		}
		r, err := atoi(pos[0])
		if err != nil {
			return &ParseError{Name: doc.Name, Line: 3, Msg: "bad row", Err: err}
		}
		c, err := atoi(pos[1])
		if err != nil {
			return &ParseError{Name: doc.Name, Line: 3, Msg: "bad column", Err: err}
		}
		doc.Coords = append(doc.Coords, core.Coord{Row: r, Col: c})
	}
	return nil
}

func parsePlain(doc *Document, lines []string) {
	doc.Rows = len(lines) - 1
	doc.Cols = len(lines[1])
	for i, line := range lines[1:] {
		for q := 0; q < len(line); q++ {
			if line[q] == '*' {
				doc.Coords = append(doc.Coords, core.Coord{Row: i, Col: q})
			}
		}
	}
}

func parseAnchored(doc *Document, lines []string) error {
	anchorRow, anchorCol, start := 0, 0, 0
	var raw []core.Coord
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(line, "#P ") {
			fields := strings.Fields(line[3:])
			if len(fields) < 2 {
				return &ParseError{Name: doc.Name, Line: i + 1, Msg: fmt.Sprintf("malformed anchor %q", line)}
			}
			var err error
			if anchorRow, err = atoi(fields[0]); err != nil {
				return &ParseError{Name: doc.Name, Line: i + 1, Msg: "bad anchor row", Err: err}
			}
			if anchorCol, err = atoi(fields[1]); err != nil {
				return &ParseError{Name: doc.Name, Line: i + 1, Msg: "bad anchor column", Err: err}
			}
			start = i
			continue
		}
		for q := 0; q < len(line); q++ {
			if line[q] == '*' {
				raw = append(raw, core.Coord{Row: anchorRow + i - start - 1, Col: anchorCol + q})
			}
		}
	}
	if len(raw) == 0 {
		return nil
	}
	minRow, minCol := math.MaxInt, math.MaxInt
	maxRow, maxCol := math.MinInt, math.MinInt
	for _, c := range raw {
		minRow, maxRow = min(minRow, c.Row), max(maxRow, c.Row)
		minCol, maxCol = min(minCol, c.Col), max(maxCol, c.Col)
	}
	doc.Rows, doc.Cols = maxRow-minRow, maxCol-minCol
	doc.Coords = make([]core.Coord, len(raw))
	for i, c := range raw {
		doc.Coords[i] = core.Coord{Row: c.Row - minRow, Col: c.Col - minCol}
	}
	return nil
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// WriteSaved writes every alive cell of g as a #saved document.
func WriteSaved(w io.Writer, g *core.Grid) error {
	return writeCoordinateList(w, KindSaved, g.Rows(), g.Cols(), g.AliveCoords())
}

// WriteConfig writes the alive cells of g as a #configs document, shifted so
// the smallest row and column are 0. The dimension line holds the max-min
// extent per axis.
func WriteConfig(w io.Writer, g *core.Grid) error {
	alive := g.AliveCoords()
	if len(alive) == 0 {
		return writeCoordinateList(w, KindConfigs, 0, 0, nil)
	}
	minRow, minCol := g.Rows(), g.Cols()
	maxRow, maxCol := 0, 0
	for _, c := range alive {
		minRow, maxRow = min(minRow, c.Row), max(maxRow, c.Row)
		minCol, maxCol = min(minCol, c.Col), max(maxCol, c.Col)
	}
	for i := range alive {
		alive[i].Row -= minRow
		alive[i].Col -= minCol
	}
	return writeCoordinateList(w, KindConfigs, maxRow-minRow, maxCol-minCol, alive)
}

func writeCoordinateList(w io.Writer, kind Kind, rows, cols int, coords []core.Coord) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, kind.Header())
	fmt.Fprintf(bw, "~ dim:%d,%d\n", rows, cols)
	bw.WriteString("~ pos:")
	for _, c := range coords {
		fmt.Fprintf(bw, "%d,%d;", c.Row, c.Col)
	}
	bw.WriteString("\n")
	return bw.Flush()
}
