package faraid

import (
	"testing"

	"github.com/waris/faraid-engine/pkg/models"
)

func categoryResult(t *testing.T, results []heirResult, cat models.HeirCategory) heirResult {
	t.Helper()
	for _, r := range results {
		if r.Category == cat {
			return r
		}
	}
	t.Fatalf("no result for category %d", cat)
	return heirResult{}
}

func TestDetermineFurudh_SonMakesDaughterResiduary(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.Son, Quantity: 1},
		{Category: models.Daughter, Quantity: 1},
	}
	p := newPresence(heirs)
	results, err := determineFurudh(heirs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	daughter := categoryResult(t, results, models.Daughter)
	if !daughter.Residuary || daughter.HasFardh {
		t.Errorf("daughter with a son present should be purely residuary, got %+v", daughter)
	}
	son := categoryResult(t, results, models.Son)
	if !son.Residuary || son.Excluded {
		t.Errorf("son should always be residuary, got %+v", son)
	}
}

func TestDetermineFurudh_ChildPresenceReducesSpouseTier(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.Husband, Quantity: 1},
		{Category: models.Son, Quantity: 1},
	}
	p := newPresence(heirs)
	results, err := determineFurudh(heirs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	husband := categoryResult(t, results, models.Husband)
	if husband.Fardh != (fraction{1, 4}) {
		t.Errorf("husband fardh with a son present = %v, want 1/4", husband.Fardh)
	}

	heirsNoChild := []models.HeirInput{{Category: models.Husband, Quantity: 1}}
	pNoChild := newPresence(heirsNoChild)
	resultsNoChild, err := determineFurudh(heirsNoChild, pNoChild)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	husbandNoChild := categoryResult(t, resultsNoChild, models.Husband)
	if husbandNoChild.Fardh != (fraction{1, 2}) {
		t.Errorf("husband fardh with no child present = %v, want 1/2", husbandNoChild.Fardh)
	}
}

func TestDetermineFurudh_SonOfSonExcludedBySon(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.Son, Quantity: 1},
		{Category: models.SonOfSon, Quantity: 1},
	}
	p := newPresence(heirs)
	results, err := determineFurudh(heirs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	grandson := categoryResult(t, results, models.SonOfSon)
	if !grandson.Excluded {
		t.Errorf("son's son should be excluded when a nearer son survives, got %+v", grandson)
	}
}

func TestDetermineFurudh_MaternalSiblingsExcludedByFather(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.Father, Quantity: 1},
		{Category: models.MaternalBrother, Quantity: 1},
	}
	p := newPresence(heirs)
	results, err := determineFurudh(heirs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	brother := categoryResult(t, results, models.MaternalBrother)
	if !brother.Excluded {
		t.Errorf("maternal brother should be excluded when the father survives, got %+v", brother)
	}
}

func TestDetermineFurudh_MaternalSiblingGroupSharesOneThird(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.MaternalBrother, Quantity: 1},
		{Category: models.MaternalSister, Quantity: 1},
	}
	p := newPresence(heirs)
	results, err := determineFurudh(heirs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	brother := categoryResult(t, results, models.MaternalBrother)
	sister := categoryResult(t, results, models.MaternalSister)
	if brother.Fardh != (fraction{1, 3}) || sister.Fardh != (fraction{1, 3}) {
		t.Errorf("two combined maternal siblings should each carry 1/3, got brother=%v sister=%v", brother.Fardh, sister.Fardh)
	}
}

func TestDetermineFurudh_MotherReducedByTwoSiblings(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.Mother, Quantity: 1},
		{Category: models.FullBrother, Quantity: 2},
	}
	p := newPresence(heirs)
	results, err := determineFurudh(heirs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mother := categoryResult(t, results, models.Mother)
	if mother.Fardh != (fraction{1, 6}) {
		t.Errorf("mother with two siblings present = %v, want 1/6", mother.Fardh)
	}
}

func TestDetermineFurudh_UnknownCategoryErrors(t *testing.T) {
	heirs := []models.HeirInput{{Category: models.HeirCategory(999), Quantity: 1}}
	p := newPresence(heirs)
	if _, err := determineFurudh(heirs, p); err == nil {
		t.Error("expected an error for an unrecognised heir category")
	}
}

func TestDetermineFurudh_ManumitterExcludedWhenAnyOtherHeirPresent(t *testing.T) {
	heirs := []models.HeirInput{
		{Category: models.Son, Quantity: 1},
		{Category: models.MaleManumitter, Quantity: 1},
	}
	p := newPresence(heirs)
	results, err := determineFurudh(heirs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	manumitter := categoryResult(t, results, models.MaleManumitter)
	if !manumitter.Excluded {
		t.Errorf("manumitter should be excluded when any other heir is present, got %+v", manumitter)
	}
}

func TestDetermineFurudh_ManumitterSoleHeirInheritsEverything(t *testing.T) {
	heirs := []models.HeirInput{{Category: models.MaleManumitter, Quantity: 1}}
	p := newPresence(heirs)
	results, err := determineFurudh(heirs, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	manumitter := categoryResult(t, results, models.MaleManumitter)
	if manumitter.Excluded || !manumitter.Residuary {
		t.Errorf("sole manumitter should inherit as residuary of last resort, got %+v", manumitter)
	}
}
