// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"math/big"
	"testing"
)

func TestFormatEther(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	if got := FormatEther(oneEther); got != "1" {
		t.Errorf("Expected 1, but got %s", got)
	}
	halfEther, _ := new(big.Int).SetString("500000000000000000", 10)
	if got := FormatEther(halfEther); got != "0.5" {
		t.Errorf("Expected 0.5, but got %s", got)
	}
	if got := FormatEther(nil); got != "0" {
		t.Errorf("Expected 0 for nil, but got %s", got)
	}
}

func TestParseEther(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	got, err := ParseEther("1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(oneEther) != 0 {
		t.Errorf("Expected %s, but got %s", oneEther, got)
	}
	halfEther, _ := new(big.Int).SetString("500000000000000000", 10)
	got, err = ParseEther("0.5")
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(halfEther) != 0 {
		t.Errorf("Expected %s, but got %s", halfEther, got)
	}
	got, err = ParseEther(".5")
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(halfEther) != 0 {
		t.Errorf("Expected %s, but got %s", halfEther, got)
	}
	for _, invalid := range []string{"", ".", "abc", "-1", "1.2.3", "0", "0.0000000000000000001"} {
		if _, err := ParseEther(invalid); err == nil {
			t.Errorf("Expected error for %q", invalid)
		}
	}
}

func TestFormatUnits(t *testing.T) {
	supply, _ := new(big.Int).SetString("1000000000000000000000000", 10) // 1M tokens at 18 decimals
	if got := FormatUnits(supply, 18); got != "1000000" {
		t.Errorf("Expected 1000000, but got %s", got)
	}
	if got := FormatUnits(big.NewInt(150), 2); got != "1.5" {
		t.Errorf("Expected 1.5, but got %s", got)
	}
	if got := FormatUnits(nil, 18); got != "0" {
		t.Errorf("Expected 0 for nil, but got %s", got)
	}
}
