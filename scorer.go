// scorer.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the scorer: main-word and cross-word scoring,
// premium multipliers, and the bingo bonus.

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

// BingoBonus is the number of extra points awarded for playing all
// RackSize tiles from the rack in a single move.
const BingoBonus = 50

// scoreMove computes the score of a horizontal placement on the given
// view board, where the word spans row from startCol to endCol inclusive,
// and placed maps the columns within that span that were newly filled
// from the rack to the letter placed there. Premiums are only applied at
// columns present in placed; pre-existing letters never re-trigger them.
func scoreMove(board *Board, row, startCol, endCol int, placed map[int]byte) int {
	mainScore := 0
	wordMultiplier := 1
	crossScore := 0

	for col := startCol; col <= endCol; col++ {
		sq := board.Sq(row, col)
		if newLetter, isNew := placed[col]; isNew {
			letterScore := LetterValue(newLetter) * sq.LetterMultiplier
			mainScore += letterScore
			wordMultiplier *= sq.WordMultiplier

			above := board.WordFragment(row, col, ABOVE)
			below := board.WordFragment(row, col, BELOW)
			if len(above) > 0 || len(below) > 0 {
				crossWordScore := letterScore
				for i := 0; i < len(above); i++ {
					crossWordScore += LetterValue(above[i])
				}
				for i := 0; i < len(below); i++ {
					crossWordScore += LetterValue(below[i])
				}
				crossWordScore *= sq.WordMultiplier
				crossScore += crossWordScore
			}
		} else {
			mainScore += LetterValue(sq.Letter)
		}
	}

	mainScore *= wordMultiplier
	total := mainScore + crossScore
	if len(placed) == RackSize {
		total += BingoBonus
	}
	return total
}
