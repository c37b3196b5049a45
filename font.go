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

// Package bdf reads fonts in the glyph bitmap distribution format (BDF).
//
// BDF is a line-oriented ASCII text format describing a bitmap font's
// metadata, custom key/value properties, and per-character glyph bitmaps.
// The parser accepts version 2.1 fonts and is deliberately lenient about
// defects common in real-world files: declared property and glyph counts
// are not enforced, and a missing ENDFONT line is tolerated.
package bdf

// Font is the parsed form of a BDF file.
//
// Font values are immutable after parsing and can be shared between
// goroutines.
type Font struct {
	// Metadata contains the font header information.
	Metadata Metadata

	// Glyphs contains the glyphs of the font.
	Glyphs Glyphs
}

// Parse parses the text of a BDF file.
//
// Both "\n" and "\r\n" line endings are accepted. Input following an
// ENDFONT line is ignored; use [ParseStrict] to reject it.
func Parse(text string) (*Font, error) {
	return parse(text, false)
}

// ParseStrict is like [Parse] but returns an error if the input continues
// after the ENDFONT line.
func ParseStrict(text string) (*Font, error) {
	return parse(text, true)
}

func parse(text string, strict bool) (*Font, error) {
	ll := newLines(text)

	line, ok := ll.Next()
	if !ok {
		return nil, parserError("missing \"STARTFONT\"")
	}
	if line.Keyword != "STARTFONT" {
		return nil, lineError(line, "missing \"STARTFONT\"")
	}
	if line.Parameters != "2.1" {
		return nil, lineError(line, "unsupported BDF version %q", line.Parameters)
	}

	metadata, err := parseMetadata(ll)
	if err != nil {
		return nil, err
	}

	glyphs, err := parseGlyphs(ll, metadata)
	if err != nil {
		return nil, err
	}

	if strict {
		if line, ok := ll.Next(); ok {
			return nil, lineError(line, "unexpected %q after \"ENDFONT\"", line.Keyword)
		}
	}

	return &Font{
		Metadata: *metadata,
		Glyphs:   *glyphs,
	}, nil
}
