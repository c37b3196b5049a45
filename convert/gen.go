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
	"fmt"
	"strings"
)

// GoSource returns Go source code embedding the packed font.
//
// The generated file is self-contained: it declares a glyph entry type
// named after the font and data, glyph table, and metric constants, all
// prefixed with the font name.
func (p *PackedFont) GoSource(packageName string) string {
	name := p.Font.Name

	var b strings.Builder
	writeGenHeader(&b, packageName)

	fmt.Fprintf(&b, "// %sGlyph describes one glyph of the %s font.\n", name, name)
	fmt.Fprintf(&b, "type %sGlyph struct {\n", name)
	b.WriteString("\tCharacter   rune\n")
	b.WriteString("\tX, Y        int32\n")
	b.WriteString("\tWidth       int32\n")
	b.WriteString("\tHeight      int32\n")
	b.WriteString("\tDeviceWidth int32\n")
	b.WriteString("\tStartIndex  int\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "const (\n")
	fmt.Fprintf(&b, "\t%sAscent               = %d\n", name, p.Font.Ascent)
	fmt.Fprintf(&b, "\t%sDescent              = %d\n", name, p.Font.Descent)
	fmt.Fprintf(&b, "\t%sReplacementCharacter = %d\n", name, p.Font.ReplacementCharacter)
	fmt.Fprintf(&b, ")\n\n")

	fmt.Fprintf(&b, "var %sGlyphs = []%sGlyph{\n", name, name)
	for _, g := range p.Glyphs {
		fmt.Fprintf(&b, "\t{Character: %q, X: %d, Y: %d, Width: %d, Height: %d, DeviceWidth: %d, StartIndex: %d},\n",
			g.Character, g.X, g.Y, g.Width, g.Height, g.DeviceWidth, g.StartIndex)
	}
	b.WriteString("}\n\n")

	writeByteSlice(&b, name+"Data", p.Data)

	return b.String()
}

// GoSource returns Go source code embedding the glyph atlas.
func (m *MonoFont) GoSource(packageName string) string {
	name := m.Font.Name

	var b strings.Builder
	writeGenHeader(&b, packageName)

	fmt.Fprintf(&b, "const (\n")
	fmt.Fprintf(&b, "\t%sImageWidth           = %d\n", name, m.ImageWidth)
	fmt.Fprintf(&b, "\t%sImageHeight          = %d\n", name, m.ImageHeight)
	fmt.Fprintf(&b, "\t%sCharacterWidth       = %d\n", name, m.CharacterWidth)
	fmt.Fprintf(&b, "\t%sCharacterHeight      = %d\n", name, m.CharacterHeight)
	fmt.Fprintf(&b, "\t%sBaseline             = %d\n", name, m.Baseline)
	fmt.Fprintf(&b, "\t%sUnderlineOffset      = %d\n", name, m.Underline.Offset)
	fmt.Fprintf(&b, "\t%sUnderlineHeight      = %d\n", name, m.Underline.Thickness)
	fmt.Fprintf(&b, "\t%sStrikethroughOffset  = %d\n", name, m.Strikethrough.Offset)
	fmt.Fprintf(&b, "\t%sStrikethroughHeight  = %d\n", name, m.Strikethrough.Thickness)
	fmt.Fprintf(&b, "\t%sReplacementCharacter = %d\n", name, m.ReplacementCharacter)
	if m.HasPreset {
		fmt.Fprintf(&b, "\t%sMappingName          = %q\n", name, m.Preset.String())
	} else {
		fmt.Fprintf(&b, "\t%sGlyphMapping         = %q\n", name, m.GlyphMapping)
	}
	fmt.Fprintf(&b, ")\n\n")

	writeByteSlice(&b, name+"Data", m.Data)

	return b.String()
}

func writeGenHeader(b *strings.Builder, packageName string) {
	b.WriteString("// Code generated by bdfconvert; DO NOT EDIT.\n\n")
	fmt.Fprintf(b, "package %s\n\n", packageName)
}

func writeByteSlice(b *strings.Builder, name string, data []byte) {
	fmt.Fprintf(b, "var %s = []byte{", name)
	for i, x := range data {
		if i%12 == 0 {
			b.WriteString("\n\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "0x%02x,", x)
	}
	if len(data) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("}\n")
}
