package lifefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"toruslife/internal/core"
)

// ConvertRowCol reads "row col" pairs, one per line, and writes them as a
// #configs document. The dimension line carries the largest row and column
// seen; coordinates are written as given.
func ConvertRowCol(r io.Reader, w io.Writer) error {
	var coords []core.Coord
	maxRow, maxCol := 0, 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return &ParseError{Name: "<input>", Line: line, Msg: fmt.Sprintf("expected \"row col\", got %q", sc.Text())}
		}
		row, err := atoi(fields[0])
		if err != nil {
			return &ParseError{Name: "<input>", Line: line, Msg: "bad row", Err: err}
		}
		col, err := atoi(fields[1])
		if err != nil {
			return &ParseError{Name: "<input>", Line: line, Msg: "bad column", Err: err}
		}
		maxRow, maxCol = max(maxRow, row), max(maxCol, col)
		coords = append(coords, core.Coord{Row: row, Col: col})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading coordinates: %w", err)
	}
	return writeCoordinateList(w, KindConfigs, maxRow, maxCol, coords)
}
