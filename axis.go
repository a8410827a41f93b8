// axis.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains code to generate all valid tile placements on a
// SCRABBLE(tm)-like board, given a player's rack. It is a part of the Go
// 'engine' package.

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

/*

The code herein finds all legal moves on a SCRABBLE(tm)-like board.

The algorithm is based on the classic paper by Appel & Jacobson,
"The World's Fastest Scrabble Program",
http://www.cs.cmu.edu/afs/cs/academic/class/15451-s06/www/lectures/scrabble.pdf

Moves are found by examining each one-dimensional axis of the board in
turn, i.e. 15 rows and 15 columns for a total of 30 axes. Rows are
searched directly against the real board; columns are searched by
transposing the board once and reusing exactly the same row search, then
mapping the resulting coordinates back. The cross-check set of each empty
square has already been computed before an axis is searched.

Each anchor square on an axis is examined in turn, left to right. For an
anchor:

1) If the square immediately to its left is occupied, the left part of
   the word is forced: it is the existing run of letters ending there.
   ExtendRight resumes directly from the anchor with that fixed left part.
2) Otherwise, every left part obtainable from the rack is tried: the
   empty left part (nothing to the left of the anchor), then longer left
   parts built one letter at a time by walking further left, consuming
   rack tiles that satisfy each cell's cross-check set.
3) ExtendRight walks right from the anchor, laying rack tiles on empty
   squares (subject to their cross-check sets) or reading through already
   occupied squares, and records a candidate placement whenever the
   accumulated word is a dictionary word immediately followed by an empty
   square or the board edge.

Note: SCRABBLE is a registered trademark. This software or its author are
in no way affiliated with or endorsed by the owners or licensees of the
SCRABBLE trademark.

*/

package engine

// axis represents one row of a "view" board being searched for horizontal
// placements -- the real board for the horizontal pass, or the
// transposed board for the vertical pass, per the board-transposition
// trick described above.
type axis struct {
	board       *Board
	crossChecks CrossChecks
	anchors     AnchorGrid
	row         int
	rack        Rack
	// transposed is true when board is a transposed view, so that
	// coordinates and orientation must be mapped back before the Move
	// is returned to the caller.
	transposed bool
}

// generateMoves returns every legal move anchored somewhere in this
// axis's row.
func (ax *axis) generateMoves(dict *Dictionary) []Move {
	var moves []Move
	for col := 0; col < BoardSize; col++ {
		if !ax.anchors[ax.row][col] {
			continue
		}
		moves = append(moves, ax.movesFromAnchor(dict, col)...)
	}
	return moves
}

// movesFromAnchor returns the placements available using anchor as the
// pivot square, per the LeftPart procedure.
func (ax *axis) movesFromAnchor(dict *Dictionary, anchor int) []Move {
	row := ax.row
	if anchor > 0 && !ax.board.IsEmpty(row, anchor-1) {
		// Forced left part: the run of occupied letters immediately
		// to the left of the anchor.
		left := ax.board.WordFragment(row, anchor, LEFT)
		return ax.extendRight(dict, anchor, left, ax.rack, nil)
	}
	// Free left part: try placing directly on the anchor with no left
	// part at all, then recursively grow a left part using the rack.
	var moves []Move
	moves = append(moves, ax.extendRight(dict, anchor, "", ax.rack, nil)...)
	moves = append(moves, ax.buildLeftPart(dict, anchor, anchor-1, "", ax.rack, nil)...)
	return moves
}

// buildLeftPart recursively extends the left part of a word one letter at
// a time, walking leftward from col, per the LeftPart procedure's free
// case. partial holds the left part accumulated so far, read left to
// right; placed holds the newly-filled cells accumulated so far.
func (ax *axis) buildLeftPart(
	dict *Dictionary, anchor, col int, partial string, rack Rack, placed []Coordinate,
) []Move {
	if col < 0 || !ax.board.IsEmpty(ax.row, col) {
		// Off the edge, or the next cell is already occupied: the
		// left part can grow no further here.
		return nil
	}
	if col > 0 && !ax.board.IsEmpty(ax.row, col-1) {
		// A tile here would join the run of letters to its left; such
		// words are found from this cell's own anchor, with that run as
		// the forced left part.
		return nil
	}
	row := ax.row
	var moves []Move
	for letter := byte('A'); letter <= 'Z'; letter++ {
		if rack.Count(letter) == 0 {
			continue
		}
		if ax.crossChecks[row][col]&(1<<uint(letter-'A')) == 0 {
			continue
		}
		newPartial := string(letter) + partial
		newRack := rack.Remove(letter)
		newPlaced := appendCoordinate(placed, Coordinate{row, col})
		moves = append(moves, ax.extendRight(dict, anchor, newPartial, newRack, newPlaced)...)
		moves = append(moves, ax.buildLeftPart(dict, anchor, col-1, newPartial, newRack, newPlaced)...)
	}
	return moves
}

// extendRight walks right from column col, laying rack tiles on empty
// squares (subject to cross-checks) or reading through occupied squares,
// recording a candidate placement whenever current+the next letter forms
// a dictionary word immediately followed by an empty square or the board
// edge. current is the word accumulated so far, ending just before col;
// placed holds the newly-filled cells accumulated so far.
func (ax *axis) extendRight(
	dict *Dictionary, col int, current string, rack Rack, placed []Coordinate,
) []Move {
	if col >= BoardSize {
		// Every reachable completion was already recorded the moment
		// the previous cell (the last one on the board) was placed or
		// read, since "followed by edge" was true there too.
		return nil
	}
	row := ax.row
	sq := ax.board.Sq(row, col)
	followedByEdgeOrEmpty := func(c int) bool {
		return c+1 >= BoardSize || ax.board.IsEmpty(row, c+1)
	}

	if sq.Letter == 0 {
		var moves []Move
		for letter := byte('A'); letter <= 'Z'; letter++ {
			if rack.Count(letter) == 0 {
				continue
			}
			if ax.crossChecks[row][col]&(1<<uint(letter-'A')) == 0 {
				continue
			}
			word := current + string(letter)
			newPlaced := appendCoordinate(placed, Coordinate{row, col})
			newRack := rack.Remove(letter)
			if followedByEdgeOrEmpty(col) && dict.Contains(word) {
				moves = append(moves, ax.makeMove(row, col, word, newPlaced)...)
			}
			moves = append(moves, ax.extendRight(dict, col+1, word, newRack, newPlaced)...)
		}
		return moves
	}

	// Occupied square: must read through the existing letter.
	word := current + string(sq.Letter)
	var moves []Move
	if followedByEdgeOrEmpty(col) && dict.Contains(word) {
		moves = append(moves, ax.makeMove(row, col, word, placed)...)
	}
	moves = append(moves, ax.extendRight(dict, col+1, word, rack, placed)...)
	return moves
}

// makeMove turns a completed word ending at (row, lastCol) into a Move,
// mapped back into real board coordinates if this axis searched a
// transposed view. A placement that consumes no rack tile is not a move.
func (ax *axis) makeMove(row, lastCol int, word string, placed []Coordinate) []Move {
	if len(placed) == 0 {
		return nil
	}
	startCol := lastCol - len(word) + 1
	placedLetters := make(map[int]byte, len(placed))
	for _, p := range placed {
		placedLetters[p.Col] = word[p.Col-startCol]
	}
	move := Move{
		Word:        word,
		Start:       Coordinate{row, startCol},
		End:         Coordinate{row, lastCol},
		Orientation: Horizontal,
		Placed:      placed,
		Score:       scoreMove(ax.board, row, startCol, lastCol, placedLetters),
	}
	return []Move{ax.toRealCoordinates(move)}
}

// toRealCoordinates maps a Move found on a transposed view board back to
// real board coordinates and orientation; it is a no-op for the
// horizontal pass.
func (ax *axis) toRealCoordinates(move Move) Move {
	if !ax.transposed {
		return move
	}
	move.Orientation = Vertical
	move.Start = Coordinate{move.Start.Col, move.Start.Row}
	move.End = Coordinate{move.End.Col, move.End.Row}
	realPlaced := make([]Coordinate, len(move.Placed))
	for i, p := range move.Placed {
		realPlaced[i] = Coordinate{p.Col, p.Row}
	}
	move.Placed = realPlaced
	return move
}

// appendCoordinate returns a new slice with coord appended, leaving the
// input slice (shared with sibling recursive branches) untouched.
func appendCoordinate(coords []Coordinate, coord Coordinate) []Coordinate {
	result := make([]Coordinate, len(coords), len(coords)+1)
	copy(result, coords)
	return append(result, coord)
}

// searchOrientation computes cross-checks and anchors for board and
// returns every legal move found across all 15 of its rows.
func searchOrientation(board *Board, rack Rack, dict *Dictionary, cache *crossSetCache, transposed bool) []Move {
	crossChecks := computeCrossChecks(board, cache)
	anchors := computeAnchors(board)
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		ax := &axis{
			board:       board,
			crossChecks: crossChecks,
			anchors:     anchors,
			row:         row,
			rack:        rack,
			transposed:  transposed,
		}
		moves = append(moves, ax.generateMoves(dict)...)
	}
	return moves
}

// searchBoard finds all legal moves in both orientations for the given
// board and rack, using the board-transposition trick for the vertical
// pass.
func searchBoard(board *Board, rack Rack, dict *Dictionary, cache *crossSetCache) []Move {
	var moves []Move
	moves = append(moves, searchOrientation(board, rack, dict, cache, false)...)
	moves = append(moves, searchOrientation(board.Transpose(), rack, dict, cache, true)...)
	return moves
}
