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

// PackedGlyph describes one glyph in a [PackedFont].
type PackedGlyph struct {
	// Character is the character the glyph answers for.
	Character rune

	// X, Y is the top left corner of the glyph rectangle relative to
	// the origin on the baseline, with the Y axis pointing down.
	X, Y int32

	// Width, Height is the size of the glyph rectangle in pixels.
	Width, Height int32

	// DeviceWidth is the horizontal advance of the glyph in pixels.
	DeviceWidth int32

	// StartIndex is the bit position of the glyph's pixel data in the
	// shared data buffer.
	StartIndex int
}

// PackedFont holds the pixel data of all glyphs in one bit-addressable
// buffer.
//
// Glyph bitmaps are concatenated bit by bit without any padding between
// glyphs, so a renderer reads Width*Height bits starting at a glyph's
// StartIndex. Only the final byte of the buffer can contain unused bits.
type PackedFont struct {
	// Font is the conversion result the data was packed from.
	Font *Font

	// Glyphs contains one entry per converted glyph, in glyph order.
	Glyphs []PackedGlyph

	// Data is the shared pixel data buffer, MSB first.
	Data []byte

	// NumBits is the number of used bits in Data.
	NumBits int
}

// Pack concatenates the pixel data of all glyphs of the font into a
// single bit stream.
func Pack(font *Font) (*PackedFont, error) {
	chars, err := font.Characters()
	if err != nil {
		return nil, err
	}

	var w bitWriter
	glyphs := make([]PackedGlyph, 0, len(font.Glyphs))
	for i := range font.Glyphs {
		glyph := &font.Glyphs[i]
		bbox := glyph.BoundingBox

		var deviceWidth int32
		if glyph.WidthHorizontal != nil {
			deviceWidth = glyph.WidthHorizontal.Device.X
		}

		glyphs = append(glyphs, PackedGlyph{
			Character:   chars[i],
			X:           bbox.Offset.X,
			Y:           -bbox.Offset.Y - (bbox.Size.Y - 1),
			Width:       bbox.Size.X,
			Height:      bbox.Size.Y,
			DeviceWidth: deviceWidth,
			StartIndex:  w.n,
		})

		for on := range glyph.Pixels() {
			w.WriteBit(on)
		}
	}

	return &PackedFont{
		Font:    font,
		Glyphs:  glyphs,
		Data:    w.data,
		NumBits: w.n,
	}, nil
}

// Bit returns the bit at the given position in the data buffer.
func (p *PackedFont) Bit(i int) bool {
	if i < 0 || i >= p.NumBits {
		return false
	}
	return p.Data[i/8]&(0x80>>(i%8)) != 0
}

type bitWriter struct {
	data []byte
	n    int
}

func (w *bitWriter) WriteBit(on bool) {
	if w.n%8 == 0 {
		w.data = append(w.data, 0)
	}
	if on {
		w.data[w.n/8] |= 0x80 >> (w.n % 8)
	}
	w.n++
}
