package faraid

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

func TestMonetize(t *testing.T) {
	amount, perCapita, percentage := monetize(decimal.NewFromInt(120_000_000), 1, 6, 1)
	if !amount.Equal(decimal.NewFromInt(20_000_000)) {
		t.Errorf("amount = %s, want 20000000", amount)
	}
	if !perCapita.Equal(decimal.NewFromInt(20_000_000)) {
		t.Errorf("per-capita = %s, want 20000000", perCapita)
	}
	wantPct := decimal.NewFromFloat(16.67)
	if percentage.Sub(wantPct).Abs().GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Errorf("percentage = %s, want approximately 16.67", percentage)
	}
}

func TestMonetize_SplitsAcrossHeadcount(t *testing.T) {
	amount, perCapita, _ := monetize(decimal.NewFromInt(120_000_000), 4, 6, 2)
	if !amount.Equal(decimal.NewFromInt(80_000_000)) {
		t.Errorf("amount = %s, want 80000000", amount)
	}
	if !perCapita.Equal(decimal.NewFromInt(40_000_000)) {
		t.Errorf("per-capita amount for 2 heirs = %s, want 40000000", perCapita)
	}
}

func TestMonetize_ZeroAshlIsSafe(t *testing.T) {
	amount, perCapita, percentage := monetize(decimal.NewFromInt(100), 0, 0, 1)
	if !amount.IsZero() || !perCapita.IsZero() || !percentage.IsZero() {
		t.Errorf("expected all-zero result for ashl=0, got amount=%s perCapita=%s percentage=%s", amount, perCapita, percentage)
	}
}

func TestBuildHeirShare_ExcludedHeirGetsNothing(t *testing.T) {
	r := heirResult{Category: models.MaternalBrother, Quantity: 1, Excluded: true, Reason: "excluded by the father"}
	share := buildHeirShare(r, 0, 6, decimal.NewFromInt(100))
	if !share.IsExcluded {
		t.Error("expected IsExcluded to be true")
	}
	if !share.ShareAmount.IsZero() {
		t.Errorf("excluded heir should have a zero share amount, got %s", share.ShareAmount)
	}
	if share.ExclusionReason != "excluded by the father" {
		t.Errorf("exclusion reason = %q", share.ExclusionReason)
	}
}

func TestBuildHeirShare_FardhPlusResiduaryCarriesBoth(t *testing.T) {
	r := heirResult{Category: models.Father, Quantity: 1, HasFardh: true, Fardh: fraction{1, 6}, Residuary: true}
	share := buildHeirShare(r, 3, 12, decimal.NewFromInt(1200))
	if share.Fardh != "1/6" {
		t.Errorf("fardh = %q, want 1/6", share.Fardh)
	}
	if share.Saham != 3 {
		t.Errorf("saham = %d, want 3", share.Saham)
	}
}
