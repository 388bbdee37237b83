package faraid

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

func TestDetectAkdariyyah(t *testing.T) {
	yes := newPresence([]models.HeirInput{
		{Category: models.Husband, Quantity: 1},
		{Category: models.Mother, Quantity: 1},
		{Category: models.PaternalGrandfather, Quantity: 1},
		{Category: models.FullSister, Quantity: 1},
	})
	if !detectAkdariyyah(yes) {
		t.Error("expected Akdariyyah to be detected for husband+mother+grandfather+one full sister")
	}

	extraHeir := newPresence([]models.HeirInput{
		{Category: models.Husband, Quantity: 1},
		{Category: models.Mother, Quantity: 1},
		{Category: models.PaternalGrandfather, Quantity: 1},
		{Category: models.FullSister, Quantity: 1},
		{Category: models.Son, Quantity: 1},
	})
	if detectAkdariyyah(extraHeir) {
		t.Error("Akdariyyah should not trigger with any additional heir present")
	}

	twoSisters := newPresence([]models.HeirInput{
		{Category: models.Husband, Quantity: 1},
		{Category: models.Mother, Quantity: 1},
		{Category: models.PaternalGrandfather, Quantity: 1},
		{Category: models.FullSister, Quantity: 2},
	})
	if detectAkdariyyah(twoSisters) {
		t.Error("Akdariyyah requires exactly one full sister, not two")
	}
}

func TestAkdariyyah_Conservation(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.Husband, Quantity: 1},
		{Category: models.Mother, Quantity: 1},
		{Category: models.PaternalGrandfather, Quantity: 1},
		{Category: models.FullSister, Quantity: 1},
	}
	result, err := Calculate(decimal.NewFromInt(180_000), heirs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsVariant || result.VariantName != "akdariyyah" {
		t.Fatalf("expected akdariyyah variant, got %+v", result)
	}
	if result.TotalSaham != result.FinalAshl {
		t.Errorf("total saham %d != final ashl %d", result.TotalSaham, result.FinalAshl)
	}
	assertSumsToTirkah(t, result)
}

func TestDetectJaddWithSiblings(t *testing.T) {
	p := newPresence([]models.HeirInput{
		{Category: models.PaternalGrandfather, Quantity: 1},
		{Category: models.FullBrother, Quantity: 1},
	})
	if !detectJaddWithSiblings(p) {
		t.Error("expected jadd-with-siblings to be detected")
	}

	withFather := newPresence([]models.HeirInput{
		{Category: models.Father, Quantity: 1},
		{Category: models.PaternalGrandfather, Quantity: 1},
		{Category: models.FullBrother, Quantity: 1},
	})
	if detectJaddWithSiblings(withFather) {
		t.Error("jadd-with-siblings must not trigger when the father is present")
	}

	withSon := newPresence([]models.HeirInput{
		{Category: models.PaternalGrandfather, Quantity: 1},
		{Category: models.FullBrother, Quantity: 1},
		{Category: models.Son, Quantity: 1},
	})
	if detectJaddWithSiblings(withSon) {
		t.Error("jadd-with-siblings must not trigger when a son is present")
	}
}

func TestJaddWithSiblings_GrandfatherAtLeastOneSixth(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.PaternalGrandfather, Quantity: 1},
		{Category: models.FullBrother, Quantity: 3},
	}
	result, err := Calculate(decimal.NewFromInt(600_000), heirs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsVariant || result.VariantName != "jadd_with_siblings" {
		t.Fatalf("expected jadd_with_siblings variant, got %+v", result)
	}
	grandfather := shareFor(t, result, models.PaternalGrandfather)
	sixthOfBase := result.FinalAshl / 6
	if grandfather.Saham < sixthOfBase {
		t.Errorf("grandfather saham %d should never fall below the 1/6 floor %d", grandfather.Saham, sixthOfBase)
	}
	if result.TotalSaham != result.FinalAshl {
		t.Errorf("total saham %d != final ashl %d", result.TotalSaham, result.FinalAshl)
	}
	assertSumsToTirkah(t, result)
}

func TestDetectMusytarakah(t *testing.T) {
	p := newPresence([]models.HeirInput{
		{Category: models.Husband, Quantity: 1},
		{Category: models.Mother, Quantity: 1},
		{Category: models.MaternalBrother, Quantity: 2},
		{Category: models.FullBrother, Quantity: 1},
	})
	if !detectMusytarakah(p) {
		t.Error("expected musytarakah to be detected")
	}

	oneMaternal := newPresence([]models.HeirInput{
		{Category: models.Husband, Quantity: 1},
		{Category: models.Mother, Quantity: 1},
		{Category: models.MaternalBrother, Quantity: 1},
		{Category: models.FullBrother, Quantity: 1},
	})
	if detectMusytarakah(oneMaternal) {
		t.Error("musytarakah requires two or more maternal siblings")
	}
}

func TestDetectMusytarakah_WifeDoesNotTrigger(t *testing.T) {
	p := newPresence([]models.HeirInput{
		{Category: models.Wife, Quantity: 1},
		{Category: models.Mother, Quantity: 1},
		{Category: models.MaternalBrother, Quantity: 2},
		{Category: models.FullBrother, Quantity: 1},
	})
	if detectMusytarakah(p) {
		t.Error("musytarakah is a husband-only configuration: a wife's 1/4 does not exhaust the estate the same way, so this should fall through to the normal pipeline")
	}

	heirs := []models.HeirInput{
		{Category: models.Wife, Quantity: 1},
		{Category: models.Mother, Quantity: 1},
		{Category: models.MaternalBrother, Quantity: 2},
		{Category: models.FullBrother, Quantity: 1},
	}
	result, err := Calculate(decimal.NewFromInt(600_000), heirs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsVariant && result.VariantName == "musytarakah" {
		t.Fatalf("wife configuration should not be tagged as musytarakah, got %+v", result)
	}
	if result.TotalSaham != result.FinalAshl {
		t.Errorf("total saham %d != final ashl %d", result.TotalSaham, result.FinalAshl)
	}
	assertSumsToTirkah(t, result)
}

func TestMusytarakah_PooledSiblingsSplitEqually(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.Husband, Quantity: 1},
		{Category: models.Mother, Quantity: 1},
		{Category: models.MaternalBrother, Quantity: 1},
		{Category: models.MaternalSister, Quantity: 1},
		{Category: models.FullBrother, Quantity: 1},
	}
	result, err := Calculate(decimal.NewFromInt(600_000), heirs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsVariant || result.VariantName != "musytarakah" {
		t.Fatalf("expected musytarakah variant, got %+v", result)
	}
	maternalBrother := shareFor(t, result, models.MaternalBrother)
	maternalSister := shareFor(t, result, models.MaternalSister)
	fullBrother := shareFor(t, result, models.FullBrother)
	if maternalBrother.Saham != maternalSister.Saham || maternalSister.Saham != fullBrother.Saham {
		t.Errorf("pooled siblings should split equally per head regardless of sex: brother=%d sister=%d fullBrother=%d",
			maternalBrother.Saham, maternalSister.Saham, fullBrother.Saham)
	}
	if result.TotalSaham != result.FinalAshl {
		t.Errorf("total saham %d != final ashl %d", result.TotalSaham, result.FinalAshl)
	}
	assertSumsToTirkah(t, result)
}

func TestDetectGharrawain(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.MaternalGrandmother, Quantity: 1},
		{Category: models.PaternalGrandmother, Quantity: 1},
		{Category: models.Son, Quantity: 1},
	}
	result, err := Calculate(decimal.NewFromInt(120_000), heirs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsVariant || result.VariantName != "gharrawain" {
		t.Fatalf("expected gharrawain tag, got %+v", result)
	}
	maternal := shareFor(t, result, models.MaternalGrandmother)
	paternal := shareFor(t, result, models.PaternalGrandmother)
	if maternal.Saham != paternal.Saham {
		t.Errorf("both grandmothers of equal degree should split the 1/6 evenly, got %d and %d", maternal.Saham, paternal.Saham)
	}
}
