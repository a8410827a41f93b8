// rack.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Rack, a player's held tiles.

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

import "fmt"

const alphabetSize = 26

// Rack is an immutable count vector over A..Z plus the blank tile ('?').
// A value type, rather than a mutable array of tile slots, lets the
// recursive move search pass a Rack down by copy and never needs to
// undo a placement on the way back up.
type Rack struct {
	counts [alphabetSize]int
	blanks int
}

// NewRack builds a Rack from a string of up to RackSize letters (A-Z) and
// blank markers ('?'). Returns an error if the string is too long or
// contains anything else.
func NewRack(letters string) (Rack, error) {
	var r Rack
	n := 0
	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		switch {
		case ch == '?':
			r.blanks++
		case ch >= 'A' && ch <= 'Z':
			r.counts[ch-'A']++
		default:
			return Rack{}, fmt.Errorf("invalid rack letter %q", string(ch))
		}
		n++
	}
	if n > RackSize {
		return Rack{}, fmt.Errorf("rack has %d tiles, maximum is %d", n, RackSize)
	}
	return r, nil
}

// Count returns how many of the given letter (A-Z) remain in the rack.
func (r Rack) Count(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return r.counts[letter-'A']
}

// Remove returns a copy of the rack with one instance of letter taken out.
// The caller is responsible for only calling this when Count(letter) > 0.
func (r Rack) Remove(letter byte) Rack {
	r.counts[letter-'A']--
	return r
}

// Size returns the total number of tiles in the rack, blanks included.
func (r Rack) Size() int {
	n := r.blanks
	for _, c := range r.counts {
		n += c
	}
	return n
}

// Blanks returns the number of blank tiles in the rack. The move search
// never substitutes a blank for a concrete letter -- blank-tile placement
// is explicitly left unspecified -- but the count is kept for completeness
// of the data model.
func (r Rack) Blanks() int {
	return r.blanks
}
