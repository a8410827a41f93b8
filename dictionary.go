// dictionary.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the word-membership oracle the move generator and
// cross-check engine query. Unlike the DAWG this package's predecessor
// built at startup, this is a plain set: the design intentionally performs
// full-word membership checks only, with no prefix navigation.

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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dictionary is a case-folded set of legal words, built once at startup
// and never mutated afterward. It is safe to query from any number of
// concurrent goroutines.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{words: make(map[string]struct{})}
}

// LoadDictionary reads a newline- or whitespace-separated word list and
// returns the Dictionary it describes. An empty word list is an error, as
// is any I/O failure while reading.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	dict := NewDictionary()
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := strings.ToLower(scanner.Text())
		if word == "" {
			continue
		}
		dict.words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	if len(dict.words) == 0 {
		return nil, fmt.Errorf("dictionary is empty")
	}
	return dict, nil
}

// LoadDictionaryFile opens path and loads it as a Dictionary.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary file: %w", err)
	}
	defer f.Close()
	return LoadDictionary(f)
}

// Contains reports whether word (case-insensitively) is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}
