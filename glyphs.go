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

import "sort"

// Glyphs is the collection of glyphs of a font.
//
// Glyphs are stored in the order they appear in the file. Lookup by
// character uses an index sorted by encoding.
type Glyphs struct {
	list  []Glyph
	index []int
}

// Len returns the number of glyphs.
func (gs *Glyphs) Len() int {
	return len(gs.list)
}

// All returns the glyphs in file order.
//
// The returned slice is owned by the collection and must not be modified.
func (gs *Glyphs) All() []Glyph {
	return gs.list
}

// Get returns the glyph for the given character.
//
// The lookup assumes that the standard encoding of the font uses Unicode
// code points. This holds for most fonts in practice, but fonts using
// other character sets (for example JIS) will give wrong results.
func (gs *Glyphs) Get(c rune) (*Glyph, bool) {
	return gs.GetEncoding(StandardEncoding(uint32(c)))
}

// GetEncoding returns the first glyph with the given encoding.
func (gs *Glyphs) GetEncoding(e Encoding) (*Glyph, bool) {
	pos := sort.Search(len(gs.index), func(i int) bool {
		return !gs.list[gs.index[i]].Encoding.less(e)
	})
	if pos >= len(gs.index) || gs.list[gs.index[pos]].Encoding != e {
		return nil, false
	}
	return &gs.list[gs.index[pos]], true
}

// buildIndex creates the lookup index. For glyphs sharing an encoding the
// index keeps file order, so that Get returns the first occurrence.
func (gs *Glyphs) buildIndex() {
	gs.index = make([]int, len(gs.list))
	for i := range gs.index {
		gs.index[i] = i
	}
	sort.SliceStable(gs.index, func(i, j int) bool {
		return gs.list[gs.index[i]].Encoding.less(gs.list[gs.index[j]].Encoding)
	})
}

// parseGlyphs reads all STARTCHAR ... ENDCHAR blocks up to the optional
// ENDFONT line or the end of the input.
//
// The count given on the CHARS line is advisory and is not checked against
// the number of glyphs actually found.
func parseGlyphs(ll *lines, meta *Metadata) (*Glyphs, error) {
	gs := &Glyphs{}

loop:
	for {
		line, ok := ll.Next()
		if !ok {
			break
		}

		switch line.Keyword {
		case "CHARS":
			// advisory glyph count
		case "STARTCHAR":
			ll.Backtrack(line)
			glyph, err := parseGlyph(ll, meta)
			if err != nil {
				return nil, err
			}
			gs.list = append(gs.list, glyph)
		case "ENDFONT":
			break loop
		default:
			return nil, lineError(line, "unknown keyword in glyphs: %q", line.Keyword)
		}
	}

	gs.buildIndex()
	return gs, nil
}
