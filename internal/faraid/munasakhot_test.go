package faraid

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

func TestCalculateMunasakhot_EachLevelComputedOnItsOwnTirkah(t *testing.T) {
	levels := []models.MunasakhotLevel{
		{
			Level:  1,
			Name:   "first decedent",
			Tirkah: decimal.NewFromInt(300_000),
			Heirs: []models.HeirInput{
				{Category: models.Wife, Quantity: 1},
				{Category: models.Son, Quantity: 1},
			},
		},
		{
			// The son from level 1 has since died; this level's tirkah
			// already folds in whatever he inherited above, per
			// CalculateMunasakhot's documented contract.
			Level:  2,
			Name:   "second decedent (the son)",
			Tirkah: decimal.NewFromInt(262_500),
			Heirs: []models.HeirInput{
				{Category: models.Wife, Quantity: 1},
				{Category: models.Daughter, Quantity: 1},
			},
		},
	}

	results, err := CalculateMunasakhot(levels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		assertSumsToTirkah(t, r)
		assertSahamConservation(t, r)
		if !r.Tirkah.Equal(levels[i].Tirkah) {
			t.Errorf("level %d tirkah mismatch: got %s want %s", i, r.Tirkah, levels[i].Tirkah)
		}
	}
}

func TestCalculateMunasakhot_PropagatesErrors(t *testing.T) {
	levels := []models.MunasakhotLevel{
		{Level: 1, Tirkah: decimal.NewFromInt(100), Heirs: nil},
	}
	if _, err := CalculateMunasakhot(levels); err == nil {
		t.Error("expected an error from a level with no heirs")
	}
}
