// move.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file defines Move, the output entity returned by the move
// generator and scorer: a placed word, its span, orientation, the cells
// newly filled from the rack, and its score.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package engine

// Orientation is the axis a Move's word runs along.
type Orientation string

const (
	Horizontal Orientation = "H"
	Vertical   Orientation = "V"
)

// Coordinate stores a board coordinate as a (row, col) pair.
type Coordinate struct {
	Row, Col int
}

// Move is a single placement: the full word read along Orientation from
// Start to End, the cells of that span newly filled from the rack, and
// the move's total score.
type Move struct {
	Word        string
	Start       Coordinate
	End         Coordinate
	Orientation Orientation
	Placed      []Coordinate
	Score       int
}

// EmptyMove is the best-move tracker's initial value, and the value
// returned when no legal move exists.
var EmptyMove = Move{Placed: []Coordinate{}}
