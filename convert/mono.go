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

package convert

import (
	"image"

	"seehuhn.de/go/bdf"
)

// atlasColumns is the number of glyph cells per atlas row.
const atlasColumns = 16

// MonoFont is a fixed-cell glyph atlas.
//
// All glyphs share a uniform cell size, the union of all glyph bounding
// boxes. The cells are arranged in a grid of [atlasColumns] columns in
// glyph index order, so a renderer finds a glyph's pixels with constant
// time arithmetic instead of a sparse lookup. The character-to-index
// mapping is either a known standard mapping or a compressed range
// string.
type MonoFont struct {
	// Font is the conversion result the atlas was built from.
	Font *Font

	// Data is the atlas image as row-packed 1-bit pixels, MSB first,
	// with (ImageWidth+7)/8 bytes per row.
	Data []byte

	// ImageWidth, ImageHeight is the size of the atlas image in pixels.
	ImageWidth, ImageHeight int

	// CharacterWidth, CharacterHeight is the uniform glyph cell size.
	CharacterWidth, CharacterHeight int

	// Baseline is the distance of the baseline from the top of a cell.
	Baseline int

	// Underline and Strikethrough are the decoration metrics of the
	// font.
	Underline, Strikethrough Decoration

	// Preset is the detected standard mapping. It is only valid if
	// HasPreset is true.
	Preset    Mapping
	HasPreset bool

	// GlyphMapping is the compressed character-to-index mapping string.
	// It is empty when a standard mapping was detected.
	GlyphMapping string

	// ReplacementCharacter is the glyph index drawn for unmapped
	// characters.
	ReplacementCharacter int

	chars []rune
}

// NewMono lays the glyphs of the font out as a fixed-cell atlas.
func NewMono(font *Font) (*MonoFont, error) {
	chars, err := font.Characters()
	if err != nil {
		return nil, err
	}

	m := &MonoFont{
		Font:          font,
		Baseline:      max(font.Ascent-1, 0),
		Underline:     font.Underline,
		Strikethrough: font.Strikethrough,
	}

	// Standard mappings list their characters in encoding order, which
	// is not always ascending code point order. The atlas has to follow
	// the mapping order so that mapping indices match cell indices.
	if preset, ok := DetectMapping(chars); ok {
		m.Preset = preset
		m.HasPreset = true
		m.chars = preset.Chars()
	} else {
		m.GlyphMapping = compressMapping(chars)
		m.chars = chars
	}

	var cell bdf.BoundingBox
	for i := range font.Glyphs {
		cell = cell.Union(font.Glyphs[i].BoundingBox)
	}
	m.CharacterWidth = int(cell.Size.X)
	m.CharacterHeight = int(cell.Size.Y)

	rows := (len(m.chars) + atlasColumns - 1) / atlasColumns
	m.ImageWidth = m.CharacterWidth * atlasColumns
	m.ImageHeight = m.CharacterHeight * rows
	stride := (m.ImageWidth + 7) / 8
	m.Data = make([]byte, stride*m.ImageHeight)

	// The replacement character index has to follow the atlas order,
	// which can differ from the glyph order for standard mappings.
	if font.ReplacementCharacter < len(chars) {
		if idx, ok := m.Index(chars[font.ReplacementCharacter]); ok {
			m.ReplacementCharacter = idx
		}
	}

	cellTop := cell.Offset.Y + cell.Size.Y - 1
	for i, c := range m.chars {
		glyphIdx, ok := font.GlyphIndex(c)
		if !ok {
			// cannot happen: the mapping was built from the glyph set
			continue
		}
		glyph := &font.Glyphs[glyphIdx]
		bbox := glyph.BoundingBox

		cellX := i % atlasColumns * m.CharacterWidth
		cellY := i / atlasColumns * m.CharacterHeight

		originX := int(bbox.Offset.X - cell.Offset.X)
		originY := int(cellTop - (bbox.Offset.Y + bbox.Size.Y - 1))

		for gy := 0; gy < int(bbox.Size.Y); gy++ {
			for gx := 0; gx < int(bbox.Size.X); gx++ {
				on, _ := glyph.Pixel(gx, gy)
				if !on {
					continue
				}
				x := cellX + originX + gx
				y := cellY + originY + gy
				m.Data[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}

	return m, nil
}

// Index returns the cell index for the given character. The second
// return value is false if the atlas contains no glyph for it; renderers
// should fall back to ReplacementCharacter in that case.
func (m *MonoFont) Index(c rune) (int, bool) {
	if m.HasPreset {
		for i, mc := range m.chars {
			if mc == c {
				return i, true
			}
		}
		return 0, false
	}
	return mappingIndex(m.GlyphMapping, c)
}

// Pixel returns the pixel at the given position of the atlas image.
func (m *MonoFont) Pixel(x, y int) bool {
	if x < 0 || x >= m.ImageWidth || y < 0 || y >= m.ImageHeight {
		return false
	}
	stride := (m.ImageWidth + 7) / 8
	return m.Data[y*stride+x/8]&(0x80>>(x%8)) != 0
}

// Image returns the atlas as an 8-bit alpha image, mainly for debugging
// and for PNG export.
func (m *MonoFont) Image() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, m.ImageWidth, m.ImageHeight))
	for y := 0; y < m.ImageHeight; y++ {
		for x := 0; x < m.ImageWidth; x++ {
			if m.Pixel(x, y) {
				img.Pix[y*img.Stride+x] = 0xff
			}
		}
	}
	return img
}
