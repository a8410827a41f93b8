// board.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Board, its Squares, and the premium and
// letter-value tables used to score a move.

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

import (
	"fmt"
	"strings"
)

const zero = int('0')

// BoardSize is the size of the Board
const BoardSize = 15

// RackSize is the maximum number of tiles a Rack holds
const RackSize = 7

// WordMultipliers holds the word multiplication factors of a standard board
var WordMultipliers = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

// LetterMultipliers holds the letter multiplication factors of a standard board
var LetterMultipliers = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// letterValues maps A..Z (index 0..25) to their nominal point value.
// The blank tile ('?') is always worth zero and is handled separately
// by LetterValue, since it never occupies an index in this table.
var letterValues = [26]int{
	1, 4, 4, 2, 1, 4, 3, 3, 1, 10,
	5, 2, 4, 2, 1, 4, 10, 1, 1, 1,
	2, 5, 4, 8, 3, 10,
}

// LetterValue returns the nominal point value of a tile letter (A-Z, or
// '?' for the blank tile, which is worth zero).
func LetterValue(letter byte) int {
	if letter == '?' {
		return 0
	}
	return letterValues[letter-'A']
}

// colIds are the column identifiers of a board
var colIds = [BoardSize]string{
	"1", "2", "3", "4", "5",
	"6", "7", "8", "9", "10",
	"11", "12", "13", "14", "15",
}

// rowIds are the row identifiers of a board
var rowIds = [BoardSize]string{
	"A", "B", "C", "D", "E",
	"F", "G", "H", "I", "J",
	"L", "M", "N", "O", "P",
}

// Indices into AdjSquares
const (
	ABOVE = 0
	LEFT  = 1
	RIGHT = 2
	BELOW = 3
)

// AdjSquares is a list of four Square pointers,
// with a nil if the corresponding adjacent Square does not exist
type AdjSquares [4]*Square

// Square is a single cell of the Board. An empty Square has Letter == 0.
type Square struct {
	Letter           byte // 0 if empty, otherwise 'A'..'Z'
	LetterMultiplier int
	WordMultiplier   int
	Row              int
	Col              int
}

// String represents a Square as a string. An empty Square is shown as '.'.
func (sq *Square) String() string {
	if sq == nil || sq.Letter == 0 {
		return "."
	}
	return string(sq.Letter)
}

// Board represents the board as a matrix of Squares, and caches an
// adjacency matrix for each Square consisting of pointers to adjacent
// Squares.
type Board struct {
	Squares   [BoardSize][BoardSize]Square
	Adjacents [BoardSize][BoardSize]AdjSquares
	// NumTiles is the number of occupied squares on the board
	NumTiles int
}

// NewBoard returns a freshly initialized, empty standard board.
func NewBoard() *Board {
	board := &Board{}
	board.Init()
	return board
}

// Init initializes an empty board with the standard premium layout and
// builds the cached adjacency matrix.
func (board *Board) Init() {
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			sq := board.Sq(i, j)
			sq.Row = i
			sq.Col = j
			sq.LetterMultiplier = int(LetterMultipliers[i][j]) - zero
			sq.WordMultiplier = int(WordMultipliers[i][j]) - zero
		}
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			adj := &board.Adjacents[row][col]
			if row > 0 {
				adj[ABOVE] = board.Sq(row-1, col)
			}
			if row < BoardSize-1 {
				adj[BELOW] = board.Sq(row+1, col)
			}
			if col > 0 {
				adj[LEFT] = board.Sq(row, col-1)
			}
			if col < BoardSize-1 {
				adj[RIGHT] = board.Sq(row, col+1)
			}
		}
	}
}

// Sq returns a pointer to a Board square, or nil if out of bounds.
func (board *Board) Sq(row, col int) *Square {
	if board == nil || row < 0 || row >= BoardSize ||
		col < 0 || col >= BoardSize {
		return nil
	}
	return &board.Squares[row][col]
}

// IsEmpty returns true if the square at (row, col) holds no letter.
func (board *Board) IsEmpty(row, col int) bool {
	sq := board.Sq(row, col)
	return sq == nil || sq.Letter == 0
}

// PlaceLetter places a letter in a board square, if it is empty.
// Returns false if the square is out of bounds or already occupied.
func (board *Board) PlaceLetter(row, col int, letter byte) bool {
	sq := board.Sq(row, col)
	if sq == nil || sq.Letter != 0 {
		return false
	}
	sq.Letter = letter
	board.NumTiles++
	return true
}

// HasCenterTile returns true if the board's center square is occupied.
func (board *Board) HasCenterTile() bool {
	return !board.IsEmpty(BoardSize/2, BoardSize/2)
}

// NumAdjacentTiles returns the number of occupied squares on the Board
// that are adjacent to the given coordinate.
func (board *Board) NumAdjacentTiles(row, col int) int {
	adj := &board.Adjacents[row][col]
	count := 0
	for _, sq := range adj {
		if sq != nil && sq.Letter != 0 {
			count++
		}
	}
	return count
}

// Fragment returns the letters that extend from the square at (row, col)
// in the given direction (ABOVE/LEFT/RIGHT/BELOW), not including (row, col)
// itself, stopping at the first empty square or the board edge.
func (board *Board) Fragment(row, col int, direction int) []byte {
	if row < 0 || col < 0 || row >= BoardSize || col >= BoardSize {
		return nil
	}
	if direction < ABOVE || direction > BELOW {
		return nil
	}
	frag := make([]byte, 0, BoardSize-1)
	for {
		sq := board.Adjacents[row][col][direction]
		if sq == nil || sq.Letter == 0 {
			break
		}
		frag = append(frag, sq.Letter)
		row, col = sq.Row, sq.Col
	}
	return frag
}

// WordFragment returns the word formed by the letter sequence emanating
// from the given square in the indicated direction, not including the
// square itself, read in left-to-right (or top-to-bottom) order.
func (board *Board) WordFragment(row, col int, direction int) string {
	frag := board.Fragment(row, col, direction)
	var sb strings.Builder
	if direction == LEFT || direction == ABOVE {
		// The fragment walks away from (row, col), so it is in reverse
		// reading order; build the string back-to-front.
		for i := len(frag) - 1; i >= 0; i-- {
			sb.WriteByte(frag[i])
		}
	} else {
		for _, letter := range frag {
			sb.WriteByte(letter)
		}
	}
	return sb.String()
}

// CrossWords returns the word fragments above and below (if horizontal is
// true) or to the left and right of (if horizontal is false) the given
// coordinate.
func (board *Board) CrossWords(row, col int, horizontal bool) (before, after string) {
	if horizontal {
		before = board.WordFragment(row, col, ABOVE)
		after = board.WordFragment(row, col, BELOW)
	} else {
		before = board.WordFragment(row, col, LEFT)
		after = board.WordFragment(row, col, RIGHT)
	}
	return
}

// Transpose returns a new Board with rows and columns swapped. Running the
// same horizontal move search over the transposed board and mapping
// coordinates back is how this module finds vertical moves without a
// second, mirrored generator.
func (board *Board) Transpose() *Board {
	t := NewBoard()
	t.NumTiles = board.NumTiles
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			letter := board.Squares[row][col].Letter
			t.Squares[col][row].Letter = letter
		}
	}
	return t
}

// String represents a Board as a human-readable grid, for debugging.
func (board *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%2s ", colIds[i]))
	}
	sb.WriteString("\n")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%s ", rowIds[i]))
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(fmt.Sprintf(" %v ", board.Sq(i, j)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
