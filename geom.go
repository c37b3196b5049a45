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

// Coord is a 2D integer coordinate.
//
// The Y axis points upwards, following the BDF convention.
type Coord struct {
	X, Y int32
}

// BoundingBox describes the extent of a font or glyph in pixels.
//
// Offset is the position of the lower left corner of the box relative to
// the origin on the baseline.
type BoundingBox struct {
	Offset Coord
	Size   Coord
}

// IsEmpty reports whether the box covers no pixels.
func (b BoundingBox) IsEmpty() bool {
	return b.Size.X == 0 || b.Size.Y == 0
}

// Union returns the smallest bounding box containing both b and other.
//
// An empty box acts as the identity element, so that the union of an empty
// box with any box is the other box. Both boxes must have non-negative
// sizes; negative sizes indicate a bug in the caller and cause a panic.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if b.Size.X < 0 || b.Size.Y < 0 || other.Size.X < 0 || other.Size.Y < 0 {
		panic("bdf: negative bounding box size")
	}

	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}

	xMin := min(b.Offset.X, other.Offset.X)
	yMin := min(b.Offset.Y, other.Offset.Y)
	xMax := max(b.Offset.X+b.Size.X-1, other.Offset.X+other.Size.X-1)
	yMax := max(b.Offset.Y+b.Size.Y-1, other.Offset.Y+other.Size.Y-1)

	return BoundingBox{
		Offset: Coord{X: xMin, Y: yMin},
		Size:   Coord{X: xMax - xMin + 1, Y: yMax - yMin + 1},
	}
}

func parseBoundingBox(line Line) (BoundingBox, bool) {
	vals, ok := line.integers(4)
	if !ok {
		return BoundingBox{}, false
	}
	return BoundingBox{
		Size:   Coord{X: vals[0], Y: vals[1]},
		Offset: Coord{X: vals[2], Y: vals[3]},
	}, true
}
