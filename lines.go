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
	"strconv"
	"strings"
)

// Line is one non-empty line of a BDF file.
type Line struct {
	// Keyword is the first whitespace-delimited word of the line.
	Keyword string

	// Parameters is the remaining text of the line, trimmed.
	Parameters string

	// Number is the 1-based line number in the source text.
	Number int
}

// integers parses the parameters of the line as exactly n
// whitespace-separated 32-bit integers.
func (l Line) integers(n int) ([]int32, bool) {
	fields := strings.Fields(l.Parameters)
	if len(fields) != n {
		return nil, false
	}
	res := make([]int32, n)
	for i, f := range fields {
		x, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, false
		}
		res[i] = int32(x)
	}
	return res, true
}

// lines iterates over the lines of a BDF file.
//
// The iterator keeps track of line numbers for error messages, skips empty
// lines and comments, and allows one line of look-ahead via Backtrack.
type lines struct {
	input       []string
	pos         int
	backtracked *Line
}

func newLines(text string) *lines {
	return &lines{input: strings.Split(text, "\n")}
}

// Next returns the next line, skipping blank lines and COMMENT lines.
// The second return value is false at the end of the input.
func (ll *lines) Next() (Line, bool) {
	if l := ll.backtracked; l != nil {
		ll.backtracked = nil
		return *l, true
	}

	for ll.pos < len(ll.input) {
		number := ll.pos + 1
		raw := strings.TrimSpace(ll.input[ll.pos])
		ll.pos++

		if raw == "" {
			continue
		}

		line := Line{Keyword: raw, Number: number}
		if idx := strings.IndexAny(raw, " \t"); idx >= 0 {
			line.Keyword = raw[:idx]
			line.Parameters = strings.TrimSpace(raw[idx+1:])
		}

		if line.Keyword == "COMMENT" {
			continue
		}
		return line, true
	}
	return Line{}, false
}

// Backtrack pushes a previously returned line back onto the iterator.
// The line will be returned by the next call to Next.
//
// At most one line can be pushed back at a time; calling Backtrack twice
// without an intervening call to Next is a bug in the caller.
func (ll *lines) Backtrack(l Line) {
	if ll.backtracked != nil {
		panic("bdf: Backtrack called twice")
	}
	ll.backtracked = &l
}
