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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Names of frequently used properties.
//
// Property names are free-form BDF identifiers; this list only covers the
// names this module reads itself or which are common enough to be useful
// to callers.
const (
	PropCopyright   = "COPYRIGHT"
	PropDefaultChar = "DEFAULT_CHAR"
	PropFontAscent  = "FONT_ASCENT"
	PropFontDescent = "FONT_DESCENT"
	PropPixelSize   = "PIXEL_SIZE"
	PropPointSize   = "POINT_SIZE"
	PropResolutionX = "RESOLUTION_X"
	PropResolutionY = "RESOLUTION_Y"
	PropSpacing     = "SPACING"
)

// PropertyValue is the value of a single property.
//
// The only two types used by this interface are [Text] and [Int].
type PropertyValue interface {
	isPropertyValue()
}

// Text is a string-valued property.
type Text string

// Int is an integer-valued property.
type Int int32

func (Text) isPropertyValue() {}
func (Int) isPropertyValue()  {}

// Properties is the collection of properties of a font.
//
// Property names are case-sensitive. If a name occurs more than once in the
// file, the last occurrence wins.
type Properties map[string]PropertyValue

// Text returns the value of a string-valued property.
func (p Properties) Text(name string) (string, error) {
	v, ok := p[name]
	if !ok {
		return "", fmt.Errorf("missing property %q", name)
	}
	s, ok := v.(Text)
	if !ok {
		return "", fmt.Errorf("property %q is not a string", name)
	}
	return string(s), nil
}

// Int returns the value of an integer-valued property.
func (p Properties) Int(name string) (int32, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("missing property %q", name)
	}
	x, ok := v.(Int)
	if !ok {
		return 0, fmt.Errorf("property %q is not an integer", name)
	}
	return int32(x), nil
}

// Names returns the sorted list of all property names.
func (p Properties) Names() []string {
	names := maps.Keys(p)
	sort.Strings(names)
	return names
}

// parseProperties reads a STARTPROPERTIES ... ENDPROPERTIES block.
// The STARTPROPERTIES line must still be in the iterator.
//
// The count given on the STARTPROPERTIES line is advisory and is not
// checked against the number of properties actually found. Real-world
// fonts frequently get this count wrong.
func parseProperties(ll *lines) (Properties, error) {
	start, ok := ll.Next()
	if !ok || start.Keyword != "STARTPROPERTIES" {
		return nil, lineError(start, "missing \"STARTPROPERTIES\"")
	}

	props := make(Properties)
	for {
		line, ok := ll.Next()
		if !ok {
			return nil, parserError("missing \"ENDPROPERTIES\"")
		}
		if line.Keyword == "ENDPROPERTIES" {
			return props, nil
		}

		value, ok := parsePropertyValue(line.Parameters)
		if !ok {
			return nil, lineError(line, "invalid property %q", line.Keyword)
		}
		props[line.Keyword] = value
	}
}

func parsePropertyValue(s string) (PropertyValue, bool) {
	if x, err := strconv.ParseInt(s, 10, 32); err == nil {
		return Int(x), true
	}

	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		inner := s[1 : len(s)-1]
		return Text(strings.ReplaceAll(inner, `""`, `"`)), true
	}

	return nil, false
}
