package lifefile

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"toruslife/internal/core"
)

func TestParseConfigsLiteral(t *testing.T) {
	doc, err := Parse("pair", strings.NewReader("#configs\n~ dim:1,2\n~ pos:0,0;0,1;\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	cfg := doc.Pattern()
	if cfg.Name != "pair" || cfg.Rows != 1 || cfg.Cols != 2 {
		t.Fatalf("unexpected pattern header %q %dx%d", cfg.Name, cfg.Rows, cfg.Cols)
	}
	if !slices.Equal(cfg.Offsets(), []core.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}) {
		t.Fatalf("unexpected offsets %v", cfg.Offsets())
	}
}

func TestParseStopsAtEmptyToken(t *testing.T) {
	doc, err := Parse("s", strings.NewReader("#saved\n~ dim:4,4\n~ pos:1,1;;2,2;"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !slices.Equal(doc.Coords, []core.Coord{{Row: 1, Col: 1}}) {
		t.Fatalf("expected parsing to stop at the empty token, got %v", doc.Coords)
	}
}

func TestParseUnknownHeaderIsIgnored(t *testing.T) {
	for _, input := range []string{"", "hello\n~ dim:1,1\n", "#saved-ish\n", "#configs-p\n"} {
		doc, err := Parse("x", strings.NewReader(input))
		if err != nil || doc != nil {
			t.Fatalf("input %q: expected (nil, nil), got (%v, %v)", input, doc, err)
		}
	}
}

func TestParseMalformedCoordinate(t *testing.T) {
	_, err := Parse("bad", strings.NewReader("#saved\n~ dim:4,4\n~ pos:1,x;"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Line != 3 || perr.Name != "bad" {
		t.Fatalf("unexpected error location %+v", perr)
	}

	if _, err := Parse("short", strings.NewReader("#configs\n~ dim:1,1\n")); !errors.As(err, &perr) {
		t.Fatalf("missing pos line should fail, got %v", err)
	}
	if _, err := Parse("nocomma", strings.NewReader("#configs\n~ dim:1,1\n~ pos:3;")); !errors.As(err, &perr) {
		t.Fatalf("coordinate without comma should fail, got %v", err)
	}
}

func TestParsePlainRaggedRows(t *testing.T) {
	doc, err := Parse("plain", strings.NewReader("#configs-p\n.*.\n..*\n***..*\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Kind != KindPlain || doc.Rows != 3 || doc.Cols != 3 {
		t.Fatalf("unexpected header %s %dx%d", doc.Kind, doc.Rows, doc.Cols)
	}
	want := []core.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 5}}
	if !slices.Equal(doc.Coords, want) {
		t.Fatalf("coords = %v, expected %v", doc.Coords, want)
	}
}

func TestParseAnchoredNormalizes(t *testing.T) {
	input := strings.Join([]string{
		"#configs-lif",
		"#D two blocks",
		"#P -2 -1",
		"**",
		"**",
		"#P 3 4",
		".*",
	}, "\n")
	doc, err := Parse("lif", strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []core.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 5, Col: 6}}
	if !slices.Equal(doc.Coords, want) {
		t.Fatalf("coords = %v, expected %v", doc.Coords, want)
	}
	if doc.Rows != 5 || doc.Cols != 6 {
		t.Fatalf("bounding box = %dx%d, expected 5x6", doc.Rows, doc.Cols)
	}
}

func TestSavedRoundTrip(t *testing.T) {
	g := core.NewGrid(7, 9)
	alive := []core.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 3}, {Row: 2, Col: 4}, {Row: 3, Col: 3}, {Row: 6, Col: 8}}
	for _, c := range alive {
		g.SetAlive(c.Row, c.Col, true)
	}
	var buf bytes.Buffer
	if err := WriteSaved(&buf, g); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "#saved\n~ dim:7,9\n~ pos:0,0;2,3;2,4;3,3;6,8;") {
		t.Fatalf("unexpected saved output %q", buf.String())
	}
	doc, err := Parse("round", &buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Rows != 7 || doc.Cols != 9 || !slices.Equal(doc.Coords, alive) {
		t.Fatalf("round trip mismatch: %dx%d %v", doc.Rows, doc.Cols, doc.Coords)
	}
}

func TestWriteConfigNormalizes(t *testing.T) {
	g := core.NewGrid(10, 10)
	g.SetAlive(4, 5, true)
	g.SetAlive(5, 6, true)
	g.SetAlive(6, 4, true)
	var buf bytes.Buffer
	if err := WriteConfig(&buf, g); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "#configs\n~ dim:2,2\n~ pos:0,1;1,2;2,0;\n"
	if buf.String() != want {
		t.Fatalf("WriteConfig = %q, expected %q", buf.String(), want)
	}

	buf.Reset()
	if err := WriteConfig(&buf, core.NewGrid(3, 3)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if buf.String() != "#configs\n~ dim:0,0\n~ pos:\n" {
		t.Fatalf("empty WriteConfig = %q", buf.String())
	}
}

func TestConvertRowCol(t *testing.T) {
	var buf bytes.Buffer
	if err := ConvertRowCol(strings.NewReader("0 1\n1 2\n\n2 0\n"), &buf); err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	want := "#configs\n~ dim:2,2\n~ pos:0,1;1,2;2,0;\n"
	if buf.String() != want {
		t.Fatalf("ConvertRowCol = %q, expected %q", buf.String(), want)
	}
	var perr *ParseError
	if err := ConvertRowCol(strings.NewReader("7\n"), &buf); !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
