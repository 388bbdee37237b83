package faraid

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

func TestCalculateHaml_SonAndDaughterScenariosDiffer(t *testing.T) {
	knownHeirs := []models.HeirInput{
		{Category: models.Wife, Quantity: 1},
		{Category: models.Father, Quantity: 1},
	}
	scenarios, err := CalculateHaml(decimal.NewFromInt(120_000_000), knownHeirs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sonShare := shareFor(t, scenarios.IfSon, models.Son)
	daughterShare := shareFor(t, scenarios.IfDaughter, models.Daughter)
	if sonShare.Saham <= 0 || daughterShare.Saham <= 0 {
		t.Errorf("both scenarios should give the unborn heir a positive saham: son=%d daughter=%d", sonShare.Saham, daughterShare.Saham)
	}

	wifeIfSon := shareFor(t, scenarios.IfSon, models.Wife)
	wifeIfDaughter := shareFor(t, scenarios.IfDaughter, models.Wife)
	if wifeIfSon.Fardh != (fraction{1, 8}).String() {
		t.Errorf("wife fardh in the son scenario = %q, want 1/8", wifeIfSon.Fardh)
	}
	if wifeIfDaughter.Fardh != (fraction{1, 8}).String() {
		t.Errorf("wife fardh in the daughter scenario = %q, want 1/8 (a daughter still counts as a child)", wifeIfDaughter.Fardh)
	}

	assertSumsToTirkah(t, scenarios.IfSon)
	assertSumsToTirkah(t, scenarios.IfDaughter)
}

func TestCalculateHaml_KnownHeirsNotMutated(t *testing.T) {
	knownHeirs := []models.HeirInput{{Category: models.Father, Quantity: 1}}
	original := append([]models.HeirInput(nil), knownHeirs...)

	if _, err := CalculateHaml(decimal.NewFromInt(50_000), knownHeirs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(knownHeirs) != len(original) || knownHeirs[0] != original[0] {
		t.Errorf("CalculateHaml must not mutate the caller's knownHeirs slice, got %+v want %+v", knownHeirs, original)
	}
}
