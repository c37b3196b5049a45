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

// MetricsSet specifies for which writing directions a font includes
// metrics.
type MetricsSet int

const (
	// MetricsSetHorizontal indicates metrics for horizontal writing only.
	MetricsSetHorizontal MetricsSet = iota

	// MetricsSetVertical indicates metrics for vertical writing only.
	MetricsSetVertical

	// MetricsSetBoth indicates metrics for both writing directions.
	MetricsSetBoth
)

func (m MetricsSet) String() string {
	switch m {
	case MetricsSetHorizontal:
		return "horizontal"
	case MetricsSetVertical:
		return "vertical"
	case MetricsSetBoth:
		return "both"
	default:
		return "invalid"
	}
}

// Metadata contains the header information of a BDF font.
type Metadata struct {
	// Name is the font name from the FONT line.
	Name string

	// PointSize is the nominal point size of the font.
	PointSize int32

	// Resolution is the X and Y device resolution in DPI.
	Resolution Coord

	// BoundingBox is the font bounding box from the FONTBOUNDINGBOX line.
	BoundingBox BoundingBox

	// MetricsSet specifies which writing directions have metrics.
	MetricsSet MetricsSet

	// Properties contains the properties of the font.
	Properties Properties
}

// parseMetadata reads the font header up to (but not including) the first
// CHARS or STARTCHAR line. The STARTFONT line must already have been
// consumed by the caller.
func parseMetadata(ll *lines) (*Metadata, error) {
	var name *string
	var boundingBox *BoundingBox
	var pointSize *int32
	var resolution Coord
	metricsSet := MetricsSetHorizontal
	var properties Properties

loop:
	for {
		line, ok := ll.Next()
		if !ok {
			break
		}

		switch line.Keyword {
		case "FONT":
			s := line.Parameters
			name = &s
		case "FONTBOUNDINGBOX":
			bbox, ok := parseBoundingBox(line)
			if !ok {
				return nil, lineError(line, "invalid \"FONTBOUNDINGBOX\"")
			}
			boundingBox = &bbox
		case "SIZE":
			vals, ok := line.integers(3)
			if !ok {
				return nil, lineError(line, "invalid \"SIZE\"")
			}
			pointSize = &vals[0]
			resolution = Coord{X: vals[1], Y: vals[2]}
		case "METRICSSET":
			vals, ok := line.integers(1)
			if !ok || vals[0] < 0 || vals[0] > 2 {
				return nil, lineError(line, "invalid \"METRICSSET\"")
			}
			metricsSet = MetricsSet(vals[0])
		case "STARTPROPERTIES":
			ll.Backtrack(line)
			props, err := parseProperties(ll)
			if err != nil {
				return nil, err
			}
			properties = props
		case "CHARS", "STARTCHAR":
			ll.Backtrack(line)
			break loop
		default:
			return nil, lineError(line, "unknown keyword in metadata: %q", line.Keyword)
		}
	}

	if name == nil {
		return nil, parserError("missing \"FONT\"")
	}
	if boundingBox == nil {
		return nil, parserError("missing \"FONTBOUNDINGBOX\"")
	}
	if pointSize == nil {
		return nil, parserError("missing \"SIZE\"")
	}

	if properties == nil {
		properties = make(Properties)
	}

	return &Metadata{
		Name:        *name,
		PointSize:   *pointSize,
		Resolution:  resolution,
		BoundingBox: *boundingBox,
		MetricsSet:  metricsSet,
		Properties:  properties,
	}, nil
}
