// anchors.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the anchor finder: the set of empty squares a new
// move is allowed to touch.

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

// AnchorGrid marks, for every board square, whether a new move may touch
// it.
type AnchorGrid [BoardSize][BoardSize]bool

// computeAnchors returns the anchor grid for board: every empty square
// with at least one occupied 4-neighbor. On a wholly empty board, no
// square qualifies under that rule, so the center square is marked as the
// sole anchor instead.
func computeAnchors(board *Board) AnchorGrid {
	var anchors AnchorGrid
	if board.NumTiles == 0 {
		anchors[BoardSize/2][BoardSize/2] = true
		return anchors
	}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if !board.IsEmpty(r, c) {
				continue
			}
			if board.NumAdjacentTiles(r, c) > 0 {
				anchors[r][c] = true
			}
		}
	}
	return anchors
}
