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
	"slices"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Mapping identifies a known standard character mapping.
type Mapping int

// The supported standard mappings.
const (
	ASCII Mapping = iota
	ISO8859_1
	ISO8859_2
	ISO8859_3
	ISO8859_4
	ISO8859_5
	ISO8859_6
	ISO8859_7
	ISO8859_8
	ISO8859_9
	ISO8859_10
	ISO8859_13
	ISO8859_14
	ISO8859_15
	ISO8859_16

	numMappings
)

var mappingNames = map[Mapping]string{
	ASCII:      "ascii",
	ISO8859_1:  "iso8859-1",
	ISO8859_2:  "iso8859-2",
	ISO8859_3:  "iso8859-3",
	ISO8859_4:  "iso8859-4",
	ISO8859_5:  "iso8859-5",
	ISO8859_6:  "iso8859-6",
	ISO8859_7:  "iso8859-7",
	ISO8859_8:  "iso8859-8",
	ISO8859_9:  "iso8859-9",
	ISO8859_10: "iso8859-10",
	ISO8859_13: "iso8859-13",
	ISO8859_14: "iso8859-14",
	ISO8859_15: "iso8859-15",
	ISO8859_16: "iso8859-16",
}

var mappingCharmaps = map[Mapping]*charmap.Charmap{
	ISO8859_1:  charmap.ISO8859_1,
	ISO8859_2:  charmap.ISO8859_2,
	ISO8859_3:  charmap.ISO8859_3,
	ISO8859_4:  charmap.ISO8859_4,
	ISO8859_5:  charmap.ISO8859_5,
	ISO8859_6:  charmap.ISO8859_6,
	ISO8859_7:  charmap.ISO8859_7,
	ISO8859_8:  charmap.ISO8859_8,
	ISO8859_9:  charmap.ISO8859_9,
	ISO8859_10: charmap.ISO8859_10,
	ISO8859_13: charmap.ISO8859_13,
	ISO8859_14: charmap.ISO8859_14,
	ISO8859_15: charmap.ISO8859_15,
	ISO8859_16: charmap.ISO8859_16,
}

// AllMappings returns all supported standard mappings.
func AllMappings() []Mapping {
	mm := make([]Mapping, 0, numMappings)
	for m := Mapping(0); m < numMappings; m++ {
		mm = append(mm, m)
	}
	return mm
}

// ParseMapping returns the mapping with the given name.
func ParseMapping(name string) (Mapping, bool) {
	for m, n := range mappingNames {
		if n == name {
			return m, true
		}
	}
	return 0, false
}

func (m Mapping) String() string {
	if name, ok := mappingNames[m]; ok {
		return name
	}
	return "invalid"
}

// Chars returns the characters of the mapping, in encoding order.
//
// The printable range of each encoding covers the codes 0x20 to 0x7F and
// 0xA0 to 0xFF; codes without an assigned character are omitted.
func (m Mapping) Chars() []rune {
	var chars []rune

	if m == ASCII {
		for r := rune(0x20); r <= 0x7f; r++ {
			chars = append(chars, r)
		}
		return chars
	}

	cm := mappingCharmaps[m]
	for b := 0x20; b <= 0xff; b++ {
		if b > 0x7f && b < 0xa0 {
			continue
		}
		r := cm.DecodeByte(byte(b))
		if r == utf8.RuneError {
			continue
		}
		chars = append(chars, r)
	}
	return chars
}

// DetectMapping returns the standard mapping whose character set equals
// the given set of characters. The comparison is an exact set equality,
// no partial matching is attempted.
func DetectMapping(chars []rune) (Mapping, bool) {
	sorted := slices.Clone(chars)
	slices.Sort(sorted)

	for m := Mapping(0); m < numMappings; m++ {
		mc := m.Chars()
		slices.Sort(mc)
		if slices.Equal(sorted, mc) {
			return m, true
		}
	}
	return 0, false
}

// compressMapping builds the string form of a character-to-index mapping.
//
// Runs of consecutive code points are merged into ranges. A singleton
// range is written as the character itself, a range of two characters as
// both endpoints, and a longer range as a NUL sentinel followed by the two
// endpoints. The two-character case cannot use the sentinel because it
// would be ambiguous with a literal two-glyph set.
func compressMapping(chars []rune) string {
	type runeRange struct {
		lo, hi rune
	}

	var ranges []runeRange
	for _, c := range chars {
		if n := len(ranges); n > 0 && c == ranges[n-1].hi+1 {
			ranges[n-1].hi = c
		} else {
			ranges = append(ranges, runeRange{lo: c, hi: c})
		}
	}

	var mapping []rune
	for _, r := range ranges {
		switch {
		case r.lo == r.hi:
			mapping = append(mapping, r.lo)
		case r.lo+1 == r.hi:
			mapping = append(mapping, r.lo, r.hi)
		default:
			mapping = append(mapping, 0, r.lo, r.hi)
		}
	}
	return string(mapping)
}

// mappingIndex resolves a character to a glyph index using a compressed
// mapping string. The second return value is false if the mapping does
// not contain the character.
func mappingIndex(mapping string, c rune) (int, bool) {
	runes := []rune(mapping)
	index := 0
	for i := 0; i < len(runes); i++ {
		if runes[i] == 0 && i+2 < len(runes) {
			lo, hi := runes[i+1], runes[i+2]
			if c >= lo && c <= hi {
				return index + int(c-lo), true
			}
			index += int(hi-lo) + 1
			i += 2
		} else {
			if runes[i] == c {
				return index, true
			}
			index++
		}
	}
	return 0, false
}
