// dictionary_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains tests for the Dictionary type

package engine

import (
	"strings"
	"testing"
)

func TestLoadDictionary(t *testing.T) {
	dict, err := LoadDictionary(strings.NewReader("cat\nCATS\ndog\n apple "))
	if err != nil {
		t.Fatalf("LoadDictionary() returned error: %v", err)
	}
	if dict.Len() != 4 {
		t.Errorf("Len() = %v, want 4", dict.Len())
	}
	if !dict.Contains("CAT") {
		t.Errorf("Contains(\"CAT\") should be true")
	}
	if !dict.Contains("cats") {
		t.Errorf("Contains(\"cats\") should be true")
	}
	if dict.Contains("bird") {
		t.Errorf("Contains(\"bird\") should be false")
	}
}

func TestLoadDictionaryEmpty(t *testing.T) {
	if _, err := LoadDictionary(strings.NewReader("   \n  ")); err == nil {
		t.Errorf("LoadDictionary() should reject an empty word list")
	}
}
