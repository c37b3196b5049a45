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
	"encoding/hex"
	"iter"
)

// EncodingKind distinguishes the three forms of the ENCODING line.
type EncodingKind int

const (
	// KindUnspecified is used for glyphs without a character code.
	KindUnspecified EncodingKind = iota

	// KindStandard is used for glyphs with a code in the font's standard
	// encoding.
	KindStandard

	// KindNonStandard is used for glyphs with a code in a private
	// encoding.
	KindNonStandard
)

// Encoding is the character code a glyph answers to.
//
// Encoding values are comparable with ==.
type Encoding struct {
	Kind EncodingKind

	// Code is the character code. It is only meaningful if Kind is
	// KindStandard or KindNonStandard.
	Code uint32
}

// StandardEncoding returns the encoding for a code point in the font's
// standard encoding.
func StandardEncoding(code uint32) Encoding {
	return Encoding{Kind: KindStandard, Code: code}
}

// NonStandardEncoding returns the encoding for a code point in a private
// encoding.
func NonStandardEncoding(code uint32) Encoding {
	return Encoding{Kind: KindNonStandard, Code: code}
}

// less defines the ordering used for the glyph lookup index.
func (e Encoding) less(other Encoding) bool {
	if e.Kind != other.Kind {
		return e.Kind < other.Kind
	}
	return e.Code < other.Code
}

// GlyphWidth contains the advance metrics of a glyph for one writing
// direction.
type GlyphWidth struct {
	// Scalable is the scalable width in units of 1/1000 em.
	Scalable Coord

	// Device is the device width in pixels.
	Device Coord
}

// Glyph is one glyph of a BDF font.
type Glyph struct {
	// Name is the glyph name from the STARTCHAR line.
	Name string

	// Encoding is the character code of the glyph.
	Encoding Encoding

	// WidthHorizontal contains the advance metrics for horizontal
	// writing, or nil if the font has none.
	WidthHorizontal *GlyphWidth

	// WidthVertical contains the advance metrics for vertical writing,
	// or nil if the font has none.
	WidthVertical *GlyphWidth

	// BoundingBox is the extent of the glyph bitmap.
	BoundingBox BoundingBox

	// OriginOffset is the offset from the horizontal to the vertical
	// writing origin, or nil if no VVECTOR line was present.
	OriginOffset *Coord

	// Bitmap contains the glyph image as row-major, MSB-first packed
	// 1-bit pixels with ceil(width/8) bytes per row.
	Bitmap []byte
}

// Pixel returns the pixel at position (x, y) of the glyph bounding box,
// with (0, 0) being the top left corner. The second return value is false
// if the position is outside the bitmap.
func (g *Glyph) Pixel(x, y int) (bool, bool) {
	width := int(g.BoundingBox.Size.X)
	if x < 0 || x >= width || y < 0 {
		return false, false
	}

	bytesPerRow := (width + 7) / 8
	idx := y*bytesPerRow + x/8
	if idx >= len(g.Bitmap) {
		return false, false
	}

	return g.Bitmap[idx]&(0x80>>(x%8)) != 0, true
}

// Pixels returns the pixels of the glyph bounding box in row-major order,
// starting at the top left corner. The sequence can be iterated over more
// than once.
func (g *Glyph) Pixels() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		width := int(g.BoundingBox.Size.X)
		height := int(g.BoundingBox.Size.Y)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				on, _ := g.Pixel(x, y)
				if !yield(on) {
					return
				}
			}
		}
	}
}

func parseEncoding(line Line) (Encoding, bool) {
	if vals, ok := line.integers(1); ok {
		if vals[0] >= 0 {
			return StandardEncoding(uint32(vals[0])), true
		}
		return Encoding{Kind: KindUnspecified}, true
	}

	if vals, ok := line.integers(2); ok {
		if vals[0] < 0 && vals[1] >= 0 {
			return NonStandardEncoding(uint32(vals[1])), true
		}
		return Encoding{}, false
	}

	return Encoding{}, false
}

// parseGlyph reads one STARTCHAR ... ENDCHAR block. The metadata is
// needed to approximate missing scalable widths.
func parseGlyph(ll *lines, meta *Metadata) (Glyph, error) {
	start, ok := ll.Next()
	if !ok || start.Keyword != "STARTCHAR" {
		return Glyph{}, lineError(start, "missing \"STARTCHAR\"")
	}

	glyph := Glyph{
		Name:     start.Parameters,
		Encoding: Encoding{Kind: KindUnspecified},
	}

	var scalableH, deviceH *Coord
	var scalableV, deviceV *Coord

	parseCoord := func(line Line) (*Coord, error) {
		vals, ok := line.integers(2)
		if !ok {
			return nil, lineError(line, "invalid %q", line.Keyword)
		}
		return &Coord{X: vals[0], Y: vals[1]}, nil
	}

header:
	for {
		line, ok := ll.Next()
		if !ok {
			return Glyph{}, parserError("missing \"BITMAP\"")
		}

		var err error
		switch line.Keyword {
		case "ENCODING":
			enc, ok := parseEncoding(line)
			if !ok {
				return Glyph{}, lineError(line, "invalid \"ENCODING\"")
			}
			glyph.Encoding = enc
		case "SWIDTH":
			scalableH, err = parseCoord(line)
		case "DWIDTH":
			deviceH, err = parseCoord(line)
		case "SWIDTH1":
			scalableV, err = parseCoord(line)
		case "DWIDTH1":
			deviceV, err = parseCoord(line)
		case "BBX":
			bbox, ok := parseBoundingBox(line)
			if !ok {
				return Glyph{}, lineError(line, "invalid \"BBX\"")
			}
			glyph.BoundingBox = bbox
		case "VVECTOR":
			glyph.OriginOffset, err = parseCoord(line)
		case "BITMAP":
			break header
		default:
			return Glyph{}, lineError(line, "unknown keyword in glyphs: %q", line.Keyword)
		}
		if err != nil {
			return Glyph{}, err
		}
	}

	for {
		line, ok := ll.Next()
		if !ok {
			return Glyph{}, parserError("missing \"ENDCHAR\"")
		}
		if line.Keyword == "ENDCHAR" {
			break
		}

		row, err := hex.DecodeString(line.Keyword)
		if err != nil || line.Parameters != "" {
			return Glyph{}, lineError(line, "invalid hex data in BITMAP")
		}
		glyph.Bitmap = append(glyph.Bitmap, row...)
	}

	var err error
	glyph.WidthHorizontal, err = combineWidths(start, scalableH, deviceH, meta)
	if err != nil {
		return Glyph{}, err
	}
	glyph.WidthVertical, err = combineWidths(start, scalableV, deviceV, meta)
	if err != nil {
		return Glyph{}, err
	}

	return glyph, nil
}

// combineWidths merges the scalable and device width of one writing
// direction. If only the device width is given, the scalable width is
// approximated from the point size and resolution of the font. This is a
// deviation from the BDF specification, which requires both widths, but
// some font producers omit the SWIDTH line.
func combineWidths(start Line, scalable, device *Coord, meta *Metadata) (*GlyphWidth, error) {
	if scalable == nil && device == nil {
		return nil, nil
	}
	if device == nil {
		return nil, lineError(start, "missing \"DWIDTH\" for glyph %q", start.Parameters)
	}

	if scalable == nil {
		scalable = &Coord{
			X: approximateScalable(device.X, meta.PointSize, meta.Resolution.X),
			Y: approximateScalable(device.Y, meta.PointSize, meta.Resolution.Y),
		}
	}

	return &GlyphWidth{Scalable: *scalable, Device: *device}, nil
}

func approximateScalable(device, pointSize, resolution int32) int32 {
	den := int64(pointSize) * int64(resolution)
	if den == 0 {
		return 0
	}
	return int32(int64(device) * 1000 * 72 / den)
}
