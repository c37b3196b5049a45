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
	"sort"

	"golang.org/x/exp/maps"
)

// CharSet is a set of characters used to select glyphs.
type CharSet map[rune]struct{}

// Add adds the given characters to the set.
func (s CharSet) Add(runes ...rune) {
	for _, r := range runes {
		s[r] = struct{}{}
	}
}

// AddRange adds the inclusive range lo to hi to the set.
func (s CharSet) AddRange(lo, hi rune) {
	for r := lo; r <= hi; r++ {
		s[r] = struct{}{}
	}
}

// AddString adds the characters of str to the set.
func (s CharSet) AddString(str string) {
	for _, r := range str {
		s[r] = struct{}{}
	}
}

// AddMapping adds all characters of a known mapping to the set.
func (s CharSet) AddMapping(m Mapping) {
	s.Add(m.Chars()...)
}

// Sorted returns the characters of the set in ascending order.
func (s CharSet) Sorted() []rune {
	runes := maps.Keys(s)
	sort.Slice(runes, func(i, j int) bool {
		return runes[i] < runes[j]
	})
	return runes
}
