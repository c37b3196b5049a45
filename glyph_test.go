// seehuhn.de/go/bdf - read and convert glyph bitmap distribution format (BDF) fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bdf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const glyphTestHeader = `STARTFONT 2.1
FONT test
SIZE 16 75 75
FONTBOUNDINGBOX 16 16 0 0
`

// parseSingleGlyph wraps one STARTCHAR block into a minimal font and
// returns the parsed glyph.
func parseSingleGlyph(t *testing.T, block string) *Glyph {
	t.Helper()

	font, err := Parse(glyphTestHeader + block + "\nENDFONT")
	if err != nil {
		t.Fatal(err)
	}
	if font.Glyphs.Len() != 1 {
		t.Fatalf("expected 1 glyph, got %d", font.Glyphs.Len())
	}
	return &font.Glyphs.All()[0]
}

func TestGlyph(t *testing.T) {
	in := `STARTCHAR ZZZZ
ENCODING 65
SWIDTH 500 0
DWIDTH 8 0
BBX 8 16 0 -2
BITMAP
00
00
00
00
18
24
24
42
42
7E
42
42
42
42
00
00
ENDCHAR`

	glyph := parseSingleGlyph(t, in)

	expected := &Glyph{
		Name:     "ZZZZ",
		Encoding: StandardEncoding(65),
		WidthHorizontal: &GlyphWidth{
			Scalable: Coord{X: 500, Y: 0},
			Device:   Coord{X: 8, Y: 0},
		},
		BoundingBox: BoundingBox{
			Size:   Coord{X: 8, Y: 16},
			Offset: Coord{X: 0, Y: -2},
		},
		Bitmap: []byte{
			0x00, 0x00, 0x00, 0x00, 0x18, 0x24, 0x24, 0x42,
			0x42, 0x7e, 0x42, 0x42, 0x42, 0x42, 0x00, 0x00,
		},
	}
	if d := cmp.Diff(expected, glyph); d != "" {
		t.Errorf("unexpected glyph (-want +got):\n%s", d)
	}
}

func TestGlyphBitmapDecoding(t *testing.T) {
	cases := []struct {
		rows     string
		expected []byte
	}{
		{"7e", []byte{0x7e}},
		{"ff", []byte{0xff}},
		{"CCCC", []byte{0xcc, 0xcc}},
		{"ffffffff", []byte{0xff, 0xff, 0xff, 0xff}},
		{"ffffffff\naaaaaaaa", []byte{0xff, 0xff, 0xff, 0xff, 0xaa, 0xaa, 0xaa, 0xaa}},
	}

	for _, c := range cases {
		in := "STARTCHAR A\nENCODING 65\nBBX 8 1 0 0\nBITMAP\n" + c.rows + "\nENDCHAR"
		glyph := parseSingleGlyph(t, in)
		if d := cmp.Diff(c.expected, glyph.Bitmap); d != "" {
			t.Errorf("rows %q: unexpected bitmap (-want +got):\n%s", c.rows, d)
		}
	}
}

func TestGlyphEmptyBitmap(t *testing.T) {
	in := `STARTCHAR 000
ENCODING 0
SWIDTH 432 0
DWIDTH 6 0
BBX 0 0 0 0
BITMAP
ENDCHAR`

	glyph := parseSingleGlyph(t, in)
	if len(glyph.Bitmap) != 0 {
		t.Errorf("expected empty bitmap, got % x", glyph.Bitmap)
	}
	if glyph.BoundingBox != (BoundingBox{}) {
		t.Errorf("unexpected bounding box %v", glyph.BoundingBox)
	}
}

func TestGlyphInvalidHex(t *testing.T) {
	for _, rows := range []string{"fff", "fg", "1f 01"} {
		in := glyphTestHeader + "STARTCHAR A\nENCODING 65\nBBX 8 1 0 0\nBITMAP\n" + rows + "\nENDCHAR\nENDFONT"
		_, err := Parse(in)
		assertParserError(t, err, "invalid hex data in BITMAP", 9)
	}
}

func TestGlyphEncoding(t *testing.T) {
	cases := []struct {
		params   string
		expected Encoding
	}{
		{"0", StandardEncoding(0)},
		{"65", StandardEncoding(65)},
		{"-1", Encoding{Kind: KindUnspecified}},
		{"-1 123", NonStandardEncoding(123)},
	}

	for _, c := range cases {
		in := "STARTCHAR x\nENCODING " + c.params + "\nBBX 0 0 0 0\nBITMAP\nENDCHAR"
		glyph := parseSingleGlyph(t, in)
		if glyph.Encoding != c.expected {
			t.Errorf("ENCODING %s: got %v, want %v", c.params, glyph.Encoding, c.expected)
		}
	}

	for _, params := range []string{"1 2", "-1 -2", "x", ""} {
		in := glyphTestHeader + "STARTCHAR x\nENCODING " + params + "\nBBX 0 0 0 0\nBITMAP\nENDCHAR\nENDFONT"
		_, err := Parse(in)
		assertParserError(t, err, `invalid "ENCODING"`, 6)
	}
}

func TestGlyphVerticalMetrics(t *testing.T) {
	in := `STARTCHAR x
ENCODING 65
SWIDTH 500 0
DWIDTH 8 0
SWIDTH1 0 500
DWIDTH1 0 8
VVECTOR 4 -2
BBX 8 8 0 0
BITMAP
ENDCHAR`

	glyph := parseSingleGlyph(t, in)

	expectedV := &GlyphWidth{
		Scalable: Coord{X: 0, Y: 500},
		Device:   Coord{X: 0, Y: 8},
	}
	if d := cmp.Diff(expectedV, glyph.WidthVertical); d != "" {
		t.Errorf("unexpected vertical width (-want +got):\n%s", d)
	}
	if glyph.OriginOffset == nil || *glyph.OriginOffset != (Coord{X: 4, Y: -2}) {
		t.Errorf("unexpected origin offset %v", glyph.OriginOffset)
	}
}

func TestGlyphScalableWidthApproximation(t *testing.T) {
	// scalable = device * 1000 * 72 / (point size * resolution),
	// so 8 * 1000 * 72 / (16 * 75) = 480
	in := `STARTCHAR x
ENCODING 65
DWIDTH 8 0
BBX 8 8 0 0
BITMAP
ENDCHAR`

	glyph := parseSingleGlyph(t, in)

	expected := &GlyphWidth{
		Scalable: Coord{X: 480, Y: 0},
		Device:   Coord{X: 8, Y: 0},
	}
	if d := cmp.Diff(expected, glyph.WidthHorizontal); d != "" {
		t.Errorf("unexpected width (-want +got):\n%s", d)
	}
}

func TestGlyphMissingDwidth(t *testing.T) {
	in := glyphTestHeader + "STARTCHAR x\nENCODING 65\nSWIDTH 500 0\nBBX 8 8 0 0\nBITMAP\nENDCHAR\nENDFONT"
	_, err := Parse(in)
	assertParserError(t, err, `missing "DWIDTH" for glyph "x"`, 5)
}

func TestGlyphUnknownKeyword(t *testing.T) {
	in := glyphTestHeader + "STARTCHAR x\nENCODING 65\nWOBBLE 1\nBITMAP\nENDCHAR\nENDFONT"
	_, err := Parse(in)
	assertParserError(t, err, `unknown keyword in glyphs: "WOBBLE"`, 7)
}

func TestPixel(t *testing.T) {
	in := `STARTCHAR x
ENCODING 65
DWIDTH 10 0
BBX 10 2 0 0
BITMAP
ff03
0180
ENDCHAR`

	glyph := parseSingleGlyph(t, in)

	// row 0: ff03 = 1111111100, row 1: 0180 = 0000000110
	for x := 0; x < 8; x++ {
		if on, ok := glyph.Pixel(x, 0); !ok || !on {
			t.Errorf("Pixel(%d, 0) = %v, %v", x, on, ok)
		}
	}
	for _, x := range []int{8, 9} {
		if on, ok := glyph.Pixel(x, 0); !ok || on {
			t.Errorf("Pixel(%d, 0) = %v, %v", x, on, ok)
		}
	}
	for x := 0; x < 10; x++ {
		want := x == 7 || x == 8
		if on, ok := glyph.Pixel(x, 1); !ok || on != want {
			t.Errorf("Pixel(%d, 1) = %v, %v", x, on, ok)
		}
	}

	// out of range
	for _, pos := range [][2]int{{10, 0}, {-1, 0}, {0, -1}, {0, 2}} {
		if _, ok := glyph.Pixel(pos[0], pos[1]); ok {
			t.Errorf("Pixel(%d, %d) should be out of range", pos[0], pos[1])
		}
	}
}

func TestPixels(t *testing.T) {
	in := `STARTCHAR x
ENCODING 65
DWIDTH 2 0
BBX 2 2 0 0
BITMAP
80
40
ENDCHAR`

	glyph := parseSingleGlyph(t, in)

	expected := []bool{true, false, false, true}

	// the sequence must be restartable
	for range 2 {
		var got []bool
		for on := range glyph.Pixels() {
			got = append(got, on)
		}
		if d := cmp.Diff(expected, got); d != "" {
			t.Errorf("unexpected pixels (-want +got):\n%s", d)
		}
	}
}
