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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parsePropertiesString(t *testing.T, text string) (Properties, error) {
	t.Helper()
	return parseProperties(newLines(text))
}

func TestProperties(t *testing.T) {
	in := `STARTPROPERTIES 5
KEY1 "VALUE"
WITH_QUOTE "1""23"""
POS_INT 10
NEG_INT -10
EMPTY ""
ENDPROPERTIES`

	props, err := parsePropertiesString(t, in)
	if err != nil {
		t.Fatal(err)
	}

	expected := Properties{
		"KEY1":       Text("VALUE"),
		"WITH_QUOTE": Text(`1"23"`),
		"POS_INT":    Int(10),
		"NEG_INT":    Int(-10),
		"EMPTY":      Text(""),
	}
	if d := cmp.Diff(expected, props); d != "" {
		t.Errorf("unexpected properties (-want +got):\n%s", d)
	}
}

func TestPropertiesAccessors(t *testing.T) {
	props := Properties{
		"FONT_ASCENT": Int(7),
		"SPACING":     Text("C"),
	}

	x, err := props.Int(PropFontAscent)
	if err != nil || x != 7 {
		t.Errorf("Int(FONT_ASCENT) = %d, %v", x, err)
	}
	s, err := props.Text(PropSpacing)
	if err != nil || s != "C" {
		t.Errorf("Text(SPACING) = %q, %v", s, err)
	}

	if _, err := props.Text(PropFontAscent); err == nil {
		t.Error("wrong type not detected")
	}
	if _, err := props.Int(PropSpacing); err == nil {
		t.Error("wrong type not detected")
	}
	if _, err := props.Int("NO_SUCH_PROPERTY"); err == nil {
		t.Error("missing property not detected")
	}
}

func TestPropertiesNames(t *testing.T) {
	props := Properties{
		"B": Int(1),
		"A": Int(2),
		"C": Int(3),
	}
	if d := cmp.Diff([]string{"A", "B", "C"}, props.Names()); d != "" {
		t.Errorf("unexpected names (-want +got):\n%s", d)
	}
}

func TestPropertiesDuplicateKeys(t *testing.T) {
	in := `STARTPROPERTIES 2
KEY 1
KEY 2
ENDPROPERTIES`

	props, err := parsePropertiesString(t, in)
	if err != nil {
		t.Fatal(err)
	}
	if props["KEY"] != Int(2) {
		t.Errorf("expected last value to win, got %v", props["KEY"])
	}
}

func TestPropertiesCountIsAdvisory(t *testing.T) {
	// the declared count is wrong on purpose
	in := `STARTPROPERTIES 17
KEY 1
ENDPROPERTIES`

	props, err := parsePropertiesString(t, in)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 {
		t.Errorf("expected 1 property, got %d", len(props))
	}
}

func TestPropertiesInvalidValue(t *testing.T) {
	in := `STARTPROPERTIES 1
KEY unquoted text
ENDPROPERTIES`

	_, err := parsePropertiesString(t, in)
	assertParserError(t, err, `invalid property "KEY"`, 2)
}

func TestPropertiesMissingEnd(t *testing.T) {
	_, err := parsePropertiesString(t, "STARTPROPERTIES 1\nKEY 1")
	assertParserError(t, err, `missing "ENDPROPERTIES"`, 0)
}
