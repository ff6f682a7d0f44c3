package model_test

import (
	"strings"
	"testing"

	"oberoy/internal/domains/booking/model"
)

func TestGeneratePNR(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	for range 100 {
		pnr := model.GeneratePNR()

		if len(pnr) != 6 {
			t.Fatalf("expected PNR length 6, got %d (%s)", len(pnr), pnr)
		}

		for _, c := range pnr {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("unexpected character %q in PNR %s", c, pnr)
			}
		}
	}
}

func TestGeneratePNR_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		seen[model.GeneratePNR()] = true
	}

	// 50 draws from a 36^6 space colliding down to a single value would
	// mean the generator is broken, not unlucky.
	if len(seen) < 2 {
		t.Error("expected generated PNRs to vary")
	}
}
