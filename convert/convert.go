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

// Package convert turns parsed BDF fonts into renderer-ready encodings.
//
// A [Converter] selects a subset of the glyphs of a [bdf.Font] and derives
// the metrics a renderer needs. The selected glyphs can then be packed
// into a bit stream with per-glyph start offsets ([Pack]) or laid out as a
// fixed-cell glyph atlas with a compressed character-to-index mapping
// ([NewMono]).
package convert

import (
	"fmt"
	"slices"

	"seehuhn.de/go/bdf"
)

// Converter selects glyphs from a BDF font and configures the conversion.
//
// The zero value is not usable; use [New].
type Converter struct {
	font *bdf.Font
	name string
	set  CharSet

	substitute    rune
	hasSubstitute bool

	replacement    rune
	hasReplacement bool
}

// New creates a converter for the given font. The name must be a valid Go
// identifier; it is used for the constants in generated source code.
func New(font *bdf.Font, name string) *Converter {
	return &Converter{
		font: font,
		name: name,
		set:  make(CharSet),
	}
}

// Chars adds the characters of s to the selected glyph set.
//
// If no characters are selected at all, all glyphs of the source font are
// converted.
func (c *Converter) Chars(s string) *Converter {
	c.set.AddString(s)
	return c
}

// Range adds the inclusive character range lo to hi to the selected glyph
// set.
func (c *Converter) Range(lo, hi rune) *Converter {
	c.set.AddRange(lo, hi)
	return c
}

// Mapping adds all characters of a known mapping to the selected glyph
// set.
func (c *Converter) Mapping(m Mapping) *Converter {
	c.set.AddMapping(m)
	return c
}

// MissingGlyphSubstitute sets a substitution character for missing
// glyphs. If set, selected characters missing from the source font are
// replaced by the glyph for r instead of failing the conversion.
func (c *Converter) MissingGlyphSubstitute(r rune) *Converter {
	c.substitute = r
	c.hasSubstitute = true
	return c
}

// ReplacementCharacter sets the character a renderer should draw for
// characters the converted font has no glyph for.
//
// If no replacement character is set, the first present character of the
// following fallbacks is used: the Unicode replacement character U+FFFD, a
// question mark, the first glyph of the converted font.
func (c *Converter) ReplacementCharacter(r rune) *Converter {
	c.replacement = r
	c.hasReplacement = true
	return c
}

// Decoration describes the position of an underline or strikethrough
// stroke.
type Decoration struct {
	// Offset is the distance of the top of the stroke from the top of
	// the character cell, in pixels.
	Offset int

	// Thickness is the stroke height in pixels.
	Thickness int
}

// Font is the result of a conversion run.
type Font struct {
	// Source is the parsed BDF font the glyphs were taken from.
	Source *bdf.Font

	// Name is the identifier used in generated source code.
	Name string

	// Glyphs contains the selected glyphs, sorted by character when an
	// explicit selection was given, in file order otherwise. Glyphs
	// inserted for a missing glyph substitute carry the encoding of the
	// character they answer for.
	Glyphs []bdf.Glyph

	// ReplacementCharacter is the index into Glyphs of the glyph drawn
	// for unmapped characters.
	ReplacementCharacter int

	// Ascent and Descent are the font ascent and descent in pixels,
	// read from the FONT_ASCENT and FONT_DESCENT properties. Missing or
	// negative values are reported as 0.
	Ascent, Descent int

	// Underline and Strikethrough are heuristic decoration metrics.
	// Most BDF producers do not include them in the file, so they are
	// derived from the ascent and descent instead.
	Underline, Strikethrough Decoration
}

// Convert runs the conversion.
func (c *Converter) Convert() (*Font, error) {
	if !isValidIdentifier(c.name) {
		return nil, fmt.Errorf("name is not a valid Go identifier: %q", c.name)
	}

	var glyphs []bdf.Glyph
	if len(c.set) == 0 {
		glyphs = slices.Clone(c.font.Glyphs.All())
	} else {
		for _, r := range c.set.Sorted() {
			lookup := r
			if _, ok := c.font.Glyphs.Get(r); !ok && c.hasSubstitute {
				lookup = c.substitute
			}

			src, ok := c.font.Glyphs.Get(lookup)
			if !ok {
				return nil, fmt.Errorf("glyph %q (U+%04X) is not contained in the font",
					lookup, lookup)
			}

			// Substituted glyphs answer for the requested character.
			glyph := *src
			glyph.Encoding = bdf.StandardEncoding(uint32(r))
			glyphs = append(glyphs, glyph)
		}
	}

	ascent := nonNegativeProperty(c.font, bdf.PropFontAscent)
	descent := nonNegativeProperty(c.font, bdf.PropFontDescent)

	font := &Font{
		Source:  c.font,
		Name:    c.name,
		Glyphs:  glyphs,
		Ascent:  ascent,
		Descent: descent,
		Underline: Decoration{
			Offset:    ascent + 1,
			Thickness: 1,
		},
		Strikethrough: Decoration{
			Offset:    (ascent + descent) / 2,
			Thickness: 1,
		},
	}

	if c.hasReplacement {
		idx, ok := font.GlyphIndex(c.replacement)
		if !ok {
			return nil, fmt.Errorf("replacement character %q (U+%04X) is not included in the glyphs",
				c.replacement, c.replacement)
		}
		font.ReplacementCharacter = idx
	} else if idx, ok := font.GlyphIndex('�'); ok {
		font.ReplacementCharacter = idx
	} else if idx, ok := font.GlyphIndex('?'); ok {
		font.ReplacementCharacter = idx
	}

	return font, nil
}

// GlyphIndex returns the index into f.Glyphs of the glyph for the given
// character.
func (f *Font) GlyphIndex(c rune) (int, bool) {
	encoding := bdf.StandardEncoding(uint32(c))
	for i := range f.Glyphs {
		if f.Glyphs[i].Encoding == encoding {
			return i, true
		}
	}
	return 0, false
}

// Characters returns the characters of the converted glyphs, in glyph
// order. Glyphs without a standard encoding cause an error.
func (f *Font) Characters() ([]rune, error) {
	chars := make([]rune, len(f.Glyphs))
	for i := range f.Glyphs {
		enc := f.Glyphs[i].Encoding
		if enc.Kind != bdf.KindStandard {
			return nil, fmt.Errorf("glyph %q has no standard encoding", f.Glyphs[i].Name)
		}
		chars[i] = rune(enc.Code)
	}
	return chars, nil
}

func nonNegativeProperty(font *bdf.Font, name string) int {
	x, err := font.Metadata.Properties.Int(name)
	if err != nil || x < 0 {
		return 0
	}
	return int(x)
}

func isValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
