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

import "fmt"

// ParserError is returned when a BDF file cannot be parsed.
type ParserError struct {
	// Message is a human-readable description of the problem.
	Message string

	// Line is the 1-based line number the message refers to,
	// or 0 if no single line can be blamed.
	Line int
}

func (err *ParserError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("line %d: %s", err.Line, err.Message)
	}
	return err.Message
}

func parserError(format string, a ...any) *ParserError {
	return &ParserError{Message: fmt.Sprintf(format, a...)}
}

func lineError(line Line, format string, a ...any) *ParserError {
	return &ParserError{Message: fmt.Sprintf(format, a...), Line: line.Number}
}
