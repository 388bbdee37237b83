package faraid

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

// Calculate runs the full Furudh → Ashl → Inkisar → Aul/Radd/Residuary
// pipeline for a single estate. Named variants that
// require bespoke arithmetic (Akdariyyah, Jadd-with-siblings,
// Musytarakah) are detected up front and dispatched before the normal
// pipeline ever runs; variants that only need a different label
// (al-Gharrawain) run the normal pipeline and are tagged afterward.
func Calculate(tirkah decimal.Decimal, heirs []models.HeirInput) (models.CalculationResult, error) {
	if err := validateInputs(tirkah, heirs); err != nil {
		return models.CalculationResult{}, err
	}
	p := newPresence(heirs)

	if detectAkdariyyah(p) {
		return calculateAkdariyyah(tirkah, p)
	}
	if detectJaddWithSiblings(p) {
		return calculateJaddWithSiblings(tirkah, heirs, p)
	}
	if detectMusytarakah(p) {
		return calculateMusytarakah(tirkah, heirs, p)
	}

	result, err := calculateNormal(tirkah, heirs, p)
	if err != nil {
		return models.CalculationResult{}, err
	}
	if detectGharrawain(p) {
		result.IsVariant = true
		result.VariantName = "gharrawain"
		result.Notes = append(result.Notes, "al-Gharrawain: the two grandmothers of equal degree jointly share one 1/6, rather than each taking 1/6 independently.")
	}
	return result, nil
}

// calculateNormal is the non-variant pipeline: every heir classified
// by determineFurudh, the problem base computed, share correction
// applied to uneven fixed groups, the aul/radd/residuary decision
// made, and a second share correction applied to the residue split if
// needed.
func calculateNormal(tirkah decimal.Decimal, heirs []models.HeirInput, p presence) (models.CalculationResult, error) {
	if p.isUmariyyatan() {
		return calculateUmariyyatan(tirkah, p)
	}

	results, err := determineFurudh(heirs, p)
	if err != nil {
		return models.CalculationResult{}, err
	}

	ashl, fixedLines, denomRelation, err := computeAshl(results)
	if err != nil {
		return models.CalculationResult{}, err
	}

	var notes []string
	if len(fixedLines) > 0 {
		notes = append(notes, fmt.Sprintf("ashl computed as the lcm of the fixed-share denominators = %d (denominator relation: %s).", ashl, denomRelation))
	}

	var fixedGroups []inkisarGroup
	for _, l := range fixedLines {
		if l.result.Quantity > 1 {
			fixedGroups = append(fixedGroups, inkisarGroup{headcount: int64(l.result.Quantity), saham: l.saham})
		}
	}
	if mult, rels := correctInkisar(fixedGroups); mult != 1 {
		ashl *= mult
		for i := range fixedLines {
			fixedLines[i].saham *= mult
		}
		notes = append(notes, fmt.Sprintf("share correction (inkisar) applied to the fixed shares: problem base scaled by %d so every multi-heir group divides evenly per head (group relation%s: %s).",
			mult, pluralSuffix(len(rels)), relationList(rels)))
	}

	initialAshl := ashl
	totalFixed := totalFixedSaham(fixedLines)
	members := residuaryMembers(results)

	finalSaham := make(map[models.HeirCategory]int64, len(fixedLines))
	for _, l := range fixedLines {
		finalSaham[l.result.Category] += l.saham
	}

	status := models.StatusAdil
	isAul, isRadd := false, false
	var unclaimed int64

	switch {
	case totalFixed > ashl:
		newAshl := totalFixed
		notes = append(notes, aulNote(ashl, newAshl))
		ashl = newAshl
		status, isAul = models.StatusAul, true

	case totalFixed < ashl && len(members) == 0:
		rr, err := applyRadd(ashl, fixedLines)
		if err != nil {
			return models.CalculationResult{}, err
		}
		ashl = rr.ashl
		finalSaham = rr.saham
		unclaimed = rr.unclaimed
		notes = append(notes, rr.notes...)
		status, isRadd = models.StatusRadd, true

	default:
		if len(members) > 0 {
			residue := ashl - totalFixed
			totalWeight := totalResiduaryWeight(members)
			if totalWeight > 1 {
				if mult, rels := correctInkisar([]inkisarGroup{{headcount: totalWeight, saham: residue}}); mult != 1 {
					ashl *= mult
					residue *= mult
					for cat := range finalSaham {
						finalSaham[cat] *= mult
					}
					notes = append(notes, fmt.Sprintf("share correction (inkisar) applied to the residue split: problem base scaled by %d so the residuary group divides evenly per head (group relation: %s).",
						mult, relationList(rels)))
				}
			}
			for _, m := range members {
				weight := residuaryWeight(m.Category) * int64(m.Quantity)
				finalSaham[m.Category] += residue / totalWeight * weight
			}
		}
		status = models.StatusAdil
	}

	resultsByCat := make(map[models.HeirCategory]heirResult, len(results))
	for _, r := range results {
		resultsByCat[r.Category] = r
	}

	var totalSaham int64
	shares := make([]models.HeirShare, 0, len(heirs))
	for _, h := range heirs {
		r := resultsByCat[h.Category]
		s := finalSaham[h.Category]
		totalSaham += s
		shares = append(shares, buildHeirShare(r, s, ashl, tirkah))
	}

	if err := checkInvariants(ashl, totalSaham+unclaimed, isAul, isRadd, len(members) > 0, unclaimed, shares); err != nil {
		return models.CalculationResult{}, err
	}

	return models.CalculationResult{
		Tirkah:              tirkah,
		InitialAshl:         initialAshl,
		FinalAshl:           ashl,
		TotalSaham:          totalSaham,
		Status:              status,
		IsAul:               isAul,
		IsRadd:              isRadd,
		Shares:              shares,
		Notes:               notes,
		HasUnclaimedResidue: unclaimed > 0,
		UnclaimedSaham:      unclaimed,
	}, nil
}

// calculateUmariyyatan handles the two "two-umar" cases: the mother
// takes one third of the residue left after the spouse's fardh, rather than one
// third of the whole estate, whenever the only heirs are a spouse, the
// father, and the mother.
func calculateUmariyyatan(tirkah decimal.Decimal, p presence) (models.CalculationResult, error) {
	spouseCat := models.Husband
	spouseDen := int64(2)
	if p.has(models.Wife) {
		spouseCat, spouseDen = models.Wife, 4
	}

	ashl := lcm(spouseDen, 3)
	spouseSaham := ashl / spouseDen
	if (ashl-spouseSaham)%3 != 0 {
		return models.CalculationResult{}, invariantViolation(nil, "umariyyatan residue %d not divisible by three", ashl-spouseSaham)
	}
	motherSaham := (ashl - spouseSaham) / 3
	fatherSaham := ashl - spouseSaham - motherSaham

	spouseReason := "Husband takes 1/2 when the deceased leaves no child and no grandchild through a son."
	if spouseCat == models.Wife {
		spouseReason = "Wife takes 1/4 when the deceased leaves no child and no grandchild through a son."
	}

	shares := []models.HeirShare{
		buildHeirShare(heirResult{Category: spouseCat, Quantity: p.count(spouseCat), HasFardh: true,
			Fardh: fraction{1, spouseDen}, Reason: spouseReason}, spouseSaham, ashl, tirkah),
		buildHeirShare(heirResult{Category: models.Mother, Quantity: 1, HasFardh: true,
			Fardh: fraction{1, 3}, Reason: "Umariyyatan: mother takes 1/3 of the residue remaining after the spouse's share."},
			motherSaham, ashl, tirkah),
		buildHeirShare(heirResult{Category: models.Father, Quantity: 1, Residuary: true,
			Reason: "Father is ashobah bi-nafsihi, taking whatever residue remains after the spouse and mother."},
			fatherSaham, ashl, tirkah),
	}

	return models.CalculationResult{
		Tirkah: tirkah, InitialAshl: ashl, FinalAshl: ashl,
		TotalSaham: spouseSaham + motherSaham + fatherSaham,
		Status:     models.StatusAdil,
		Shares:     shares,
		Notes:      []string{"umariyyatan special case applied."},
	}, nil
}

// checkInvariants re-verifies the arithmetic guarantees the engine
// promises before a result ever leaves the package. The
// percentage-conservation check is skipped when unclaimed is
// non-zero: the lone-spouse radd edge case deliberately leaves part
// of the ashl with no named claimant (see DESIGN.md), so its shares
// cannot sum to 100% by construction.
func checkInvariants(ashl, totalSaham int64, isAul, isRadd, hasResiduary bool, unclaimed int64, shares []models.HeirShare) error {
	if ashl <= 0 {
		return invariantViolation(nil, "final ashl is non-positive: %d", ashl)
	}
	if totalSaham != ashl {
		return invariantViolation(nil, "total saham %d does not equal final ashl %d", totalSaham, ashl)
	}
	var sumPct decimal.Decimal
	for _, s := range shares {
		if s.Saham < 0 {
			return invariantViolation(nil, "negative saham for heir %d", s.Heir.ID)
		}
		sumPct = sumPct.Add(s.Percentage)
	}
	if unclaimed == 0 {
		tolerance := decimal.NewFromFloat(0.01).Mul(decimal.NewFromInt(int64(len(shares) + 1)))
		if diff := sumPct.Sub(decimal.NewFromInt(100)).Abs(); diff.GreaterThan(tolerance) {
			return invariantViolation(nil, "sum of share percentages %s%% does not reconcile with 100%% within rounding tolerance", sumPct.String())
		}
	}
	return nil
}
