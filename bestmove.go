// bestmove.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the top-level best-move search: generate every
// legal placement for a board and rack, then keep the highest-scoring
// one, breaking ties in favor of whichever was found first.

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

// bestMoveTracker holds the best move seen so far. Replacement only
// happens on strict improvement, so among equally-scored moves the first
// one found by the search order (row-major horizontal pass, then
// column-major vertical pass, anchors left to right within each row)
// wins.
type bestMoveTracker struct {
	best  Move
	found bool
}

func newBestMoveTracker() *bestMoveTracker {
	return &bestMoveTracker{best: EmptyMove}
}

func (t *bestMoveTracker) consider(m Move) {
	if !t.found || m.Score > t.best.Score {
		t.best = m
		t.found = true
	}
}

// BestMove returns the highest-scoring legal placement of tiles from rack
// onto board, or EmptyMove if no legal placement exists.
func BestMove(board *Board, rack Rack, dict *Dictionary, cache *crossSetCache) Move {
	move, _ := BestMoveWithStats(board, rack, dict, cache)
	return move
}

// BestMoveWithStats is BestMove, additionally returning the number of
// candidate placements that were considered, for diagnostic logging.
func BestMoveWithStats(board *Board, rack Rack, dict *Dictionary, cache *crossSetCache) (Move, int) {
	candidates := searchBoard(board, rack, dict, cache)
	tracker := newBestMoveTracker()
	for _, m := range candidates {
		tracker.consider(m)
	}
	return tracker.best, len(candidates)
}
