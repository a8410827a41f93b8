// crosscheck.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the cross-check engine: for every empty square,
// the bitmapped set of letters that can legally be placed there without
// breaking a perpendicular word already on the board.

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
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// fullAlphabetSet is the cross-check bitmap for a square with no
// perpendicular neighbor run: every letter is allowed.
const fullAlphabetSet = uint32(1<<26) - 1

// crossSetCacheSize bounds the pattern cache; a 15x15 board can never
// produce more distinct (before, after) pairs than a few hundred per
// dictionary, so this is generous headroom rather than a tight budget.
const crossSetCacheSize = 4096

// crossSetCache memoizes, for the process-wide dictionary, which letters
// complete a (before, after) perpendicular-word pattern into a legal word.
// The dictionary never changes after startup, so unlike the per-call
// cross-check grid this cache is safe to keep for the life of the process.
type crossSetCache struct {
	dict *Dictionary
	mux  sync.Mutex
	lru  *simplelru.LRU
}

// newCrossSetCache returns a crossSetCache bound to dict.
func newCrossSetCache(dict *Dictionary) *crossSetCache {
	lru, _ := simplelru.NewLRU(crossSetCacheSize, nil)
	return &crossSetCache{dict: dict, lru: lru}
}

// crossSet returns the bitmap of letters L such that before+L+after (or
// just one side, if the other is empty) is a dictionary word. If both
// sides are empty, every letter is allowed.
func (c *crossSetCache) crossSet(before, after string) uint32 {
	if before == "" && after == "" {
		return fullAlphabetSet
	}
	key := before + "\x00" + after
	c.mux.Lock()
	if bits, ok := c.lru.Get(key); ok {
		c.mux.Unlock()
		return bits.(uint32)
	}
	c.mux.Unlock()

	var bits uint32
	for i := 0; i < alphabetSize; i++ {
		letter := byte('A' + i)
		var word string
		switch {
		case before != "" && after != "":
			word = before + string(letter) + after
		case before != "":
			word = before + string(letter)
		default:
			word = string(letter) + after
		}
		if c.dict.Contains(word) {
			bits |= 1 << uint(i)
		}
	}

	c.mux.Lock()
	c.lru.Add(key, bits)
	c.mux.Unlock()
	return bits
}

// CrossChecks holds, for every board square, the bitmap of letters that
// may legally be placed there without breaking the perpendicular word (if
// any) that passes through it. Computed fresh for each best_move call and
// discarded on return; only the underlying pattern lookup is long-lived.
type CrossChecks [BoardSize][BoardSize]uint32

// computeCrossChecks builds a CrossChecks grid for board. The search
// always walks its view board row by row looking for a horizontal word,
// so the perpendicular constraint is always the vertical run above and
// below each square -- whether that view board is the real board (the
// horizontal pass) or the transposed board (the vertical pass).
func computeCrossChecks(board *Board, cache *crossSetCache) CrossChecks {
	var grid CrossChecks
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sq := board.Sq(r, c)
			if sq.Letter != 0 {
				grid[r][c] = 1 << uint(sq.Letter-'A')
				continue
			}
			before := board.WordFragment(r, c, ABOVE)
			after := board.WordFragment(r, c, BELOW)
			grid[r][c] = cache.crossSet(before, after)
		}
	}
	return grid
}
