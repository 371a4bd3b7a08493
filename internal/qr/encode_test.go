package qr

import (
	"strings"
	"testing"

	apperr "github.com/qrstudio/qrstudio/internal/errors"
)

func TestEncode_Basic(t *testing.T) {
	m, err := Encode("https://example.com", RecoveryMedium)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	n := m.Size()
	// Smallest symbol is version 1 (21 modules); sizes grow in steps of 4.
	if n < 21 {
		t.Fatalf("matrix too small: %d modules", n)
	}
	if (n-21)%4 != 0 {
		t.Errorf("matrix size %d is not a valid QR version size", n)
	}

	// Finder pattern corner is always dark after quiet-zone trimming.
	if !m.Dark(0, 0) {
		t.Error("expected dark module at (0,0)")
	}
	if !m.Dark(n-1, 0) || !m.Dark(0, n-1) {
		t.Error("expected dark finder corners at (n-1,0) and (0,n-1)")
	}
}

func TestEncode_SizeGrowsWithContent(t *testing.T) {
	small, err := Encode("x", RecoveryMedium)
	if err != nil {
		t.Fatalf("Encode(small) error: %v", err)
	}
	large, err := Encode(strings.Repeat("longer content ", 20), RecoveryMedium)
	if err != nil {
		t.Fatalf("Encode(large) error: %v", err)
	}

	if large.Size() <= small.Size() {
		t.Errorf("expected larger symbol for more content: %d vs %d",
			large.Size(), small.Size())
	}
}

func TestEncode_TooLong(t *testing.T) {
	_, err := Encode(strings.Repeat("a", 8000), RecoveryLow)
	if err == nil {
		t.Fatal("expected error for content beyond QR capacity")
	}
	if !apperr.HasCode(err, apperr.ErrEncoding) {
		t.Errorf("expected %s, got %s", apperr.ErrEncoding, apperr.CodeOf(err))
	}
}

func TestEncode_RecoveryLevels(t *testing.T) {
	// Higher recovery levels need more modules for the same content.
	low, err := Encode("https://example.com/some/longer/path", RecoveryLow)
	if err != nil {
		t.Fatalf("Encode(low) error: %v", err)
	}
	highest, err := Encode("https://example.com/some/longer/path", RecoveryHighest)
	if err != nil {
		t.Fatalf("Encode(highest) error: %v", err)
	}

	if highest.Size() < low.Size() {
		t.Errorf("expected highest recovery symbol >= low: %d vs %d",
			highest.Size(), low.Size())
	}
}

func TestTrimQuietZone(t *testing.T) {
	// 5x5 bitmap with a single dark 3x3 block centered: trimming must
	// strip the one-module margin.
	bitmap := make([][]bool, 5)
	for y := range bitmap {
		bitmap[y] = make([]bool, 5)
	}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			bitmap[y][x] = true
		}
	}

	trimmed := trimQuietZone(bitmap)
	if len(trimmed) != 3 || len(trimmed[0]) != 3 {
		t.Fatalf("expected 3x3 after trim, got %dx%d", len(trimmed), len(trimmed[0]))
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if !trimmed[y][x] {
				t.Fatalf("expected dark module at (%d,%d) after trim", x, y)
			}
		}
	}
}

func TestTrimQuietZone_NoMargin(t *testing.T) {
	bitmap := [][]bool{
		{true, false},
		{false, true},
	}
	trimmed := trimQuietZone(bitmap)
	if len(trimmed) != 2 || len(trimmed[0]) != 2 {
		t.Fatalf("expected untouched 2x2, got %dx%d", len(trimmed), len(trimmed[0]))
	}
}
