// bestmove_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains end-to-end tests for the best-move search

package engine

import (
	"strings"
	"testing"
)

func testDictionary(t *testing.T, words string) *Dictionary {
	dict, err := LoadDictionary(strings.NewReader(words))
	if err != nil {
		t.Fatalf("LoadDictionary() returned error: %v", err)
	}
	return dict
}

func TestBestMoveEmptyBoard(t *testing.T) {
	dict := testDictionary(t, "CAB BAD DAB")
	board := NewBoard()
	rack, _ := NewRack("ABCDEFG")
	cache := newCrossSetCache(dict)

	move := BestMove(board, rack, dict, cache)
	if len(move.Word) < 2 {
		t.Fatalf("BestMove() on an empty board should find a word of at least 2 letters, got %q", move.Word)
	}
	touchesCenter := false
	for _, p := range move.Placed {
		if p.Row == 7 && p.Col == 7 {
			touchesCenter = true
		}
	}
	if !touchesCenter {
		t.Errorf("BestMove() on an empty board must place a tile through the center square, got %+v", move)
	}
}

func TestBestMoveExtendsExistingLetter(t *testing.T) {
	dict := testDictionary(t, "CAT DOG APPLE")
	board := NewBoard()
	board.PlaceLetter(7, 7, 'A')
	rack, _ := NewRack("CATSXYZ")
	cache := newCrossSetCache(dict)

	move := BestMove(board, rack, dict, cache)
	if move.Word != "CAT" {
		t.Fatalf("BestMove() = %q, want \"CAT\"", move.Word)
	}
	if move.Orientation != Horizontal {
		t.Errorf("Orientation = %v, want Horizontal", move.Orientation)
	}
}

func TestBestMoveBingo(t *testing.T) {
	dict := testDictionary(t, "PICKLED CAT")
	board := NewBoard()
	rack, _ := NewRack("PICKLED")
	cache := newCrossSetCache(dict)

	move := BestMove(board, rack, dict, cache)
	if move.Word != "PICKLED" {
		t.Fatalf("BestMove() = %q, want \"PICKLED\"", move.Word)
	}
	if len(move.Placed) != RackSize {
		t.Fatalf("Placed has %d cells, want %d", len(move.Placed), RackSize)
	}
	// A full-rack play always includes the 50-point bingo bonus on top of
	// at least the plain, unmultiplied letter score.
	plainScore := 0
	for i := 0; i < len(move.Word); i++ {
		plainScore += LetterValue(move.Word[i])
	}
	if move.Score < plainScore+BingoBonus {
		t.Errorf("Score = %d, want at least %d (plain word score + bingo)", move.Score, plainScore+BingoBonus)
	}
}

func TestBestMoveExtendsExistingWord(t *testing.T) {
	dict := testDictionary(t, "CAT APPLE DOG CATS")
	board := NewBoard()
	board.PlaceLetter(7, 7, 'C')
	board.PlaceLetter(8, 7, 'A')
	board.PlaceLetter(9, 7, 'T')
	rack, _ := NewRack("SXYZQWE")
	cache := newCrossSetCache(dict)

	move := BestMove(board, rack, dict, cache)
	if move.Word == "" {
		t.Fatalf("BestMove() found no move for an extension of an existing CAT")
	}
}

func TestBestMoveNoLegalMove(t *testing.T) {
	dict := testDictionary(t, "ZZZZZZZ")
	board := NewBoard()
	rack, _ := NewRack("ABCDEFG")
	cache := newCrossSetCache(dict)

	move := BestMove(board, rack, dict, cache)
	if move.Word != "" || move.Score != 0 || len(move.Placed) != 0 {
		t.Errorf("BestMove() with no legal move should be empty, got %+v", move)
	}
}
