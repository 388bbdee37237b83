package faraid

import (
	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

// calculateJaddWithSiblings implements the grandfather-versus-siblings
// competition from scratch: the grandfather is
// guaranteed the BEST of three methods —
//
//  1. a flat 1/6 of the whole estate,
//  2. 1/3 of the residue left after every other fixed-share heir,
//  3. muqasama — sharing the residue with the siblings as if he were
//     one of them, weighted 2:1 like a brother,
//
// and the siblings split whatever remains among themselves by the
// same muqasama weighting (full siblings take priority over paternal
// ones, matching the normal hajb rules).
func calculateJaddWithSiblings(tirkah decimal.Decimal, heirs []models.HeirInput, p presence) (models.CalculationResult, error) {
	activeSiblings := []models.HeirCategory{models.FullBrother, models.FullSister}
	if !p.has(models.FullBrother) && !p.has(models.FullSister) {
		activeSiblings = []models.HeirCategory{models.PaternalBrother, models.PaternalSister}
	}
	siblingsWeight := int64(0)
	for _, c := range activeSiblings {
		siblingsWeight += residuaryWeight(c) * int64(p.count(c))
	}
	if siblingsWeight == 0 {
		return models.CalculationResult{}, invariantViolation(nil, "jadd-with-siblings detected but no active sibling weight found")
	}

	excluded := map[models.HeirCategory]bool{
		models.PaternalGrandfather: true,
		models.FullBrother:         true, models.FullSister: true,
		models.PaternalBrother: true, models.PaternalSister: true,
		models.MaternalBrother: true, models.MaternalSister: true,
		models.NephewFullBrotherSon: true, models.NephewPaternalBroSon: true,
		models.FullUncle: true, models.PaternalUncle: true,
		models.FullUncleSon: true, models.PaternalUncleSon: true,
	}
	var otherHeirs []models.HeirInput
	for _, h := range heirs {
		if !excluded[h.Category] {
			otherHeirs = append(otherHeirs, h)
		}
	}

	otherResults, err := determineFurudh(otherHeirs, p)
	if err != nil {
		return models.CalculationResult{}, err
	}
	ashl0, fixedLines0, _, err := computeAshl(otherResults)
	if err != nil {
		return models.CalculationResult{}, err
	}
	residuaryOthers := residuaryMembers(otherResults)
	totalFixed0 := totalFixedSaham(fixedLines0)

	base := lcmMultiple([]int64{6, ashl0 * 3, ashl0 * (siblingsWeight + 2)})
	scale := base / ashl0
	fixedAtBase := totalFixed0 * scale
	residueAtBase := base - fixedAtBase

	opt1 := base / 6
	opt3 := residueAtBase / 3
	opt2 := residueAtBase * 2 / (siblingsWeight + 2)
	grandfatherSaham := opt1
	if opt2 > grandfatherSaham {
		grandfatherSaham = opt2
	}
	if opt3 > grandfatherSaham {
		grandfatherSaham = opt3
	}

	remainingForSiblings := residueAtBase - grandfatherSaham
	if mult := groupMultiplier(siblingsWeight, remainingForSiblings); mult != 1 {
		base *= mult
		fixedAtBase *= mult
		grandfatherSaham *= mult
		remainingForSiblings *= mult
		scale *= mult
	}

	finalSaham := make(map[models.HeirCategory]int64, len(fixedLines0)+3)
	for _, l := range fixedLines0 {
		finalSaham[l.result.Category] = l.saham * scale
	}
	for _, m := range residuaryOthers {
		_ = m // a non-sibling residuary heir alongside a live grandfather is not expected in this variant
	}
	finalSaham[models.PaternalGrandfather] = grandfatherSaham
	for _, c := range activeSiblings {
		qty := p.count(c)
		if qty == 0 {
			continue
		}
		w := residuaryWeight(c) * int64(qty)
		finalSaham[c] = remainingForSiblings * w / siblingsWeight
	}

	resultsByCat := make(map[models.HeirCategory]heirResult, len(otherResults)+3)
	for _, r := range otherResults {
		resultsByCat[r.Category] = r
	}
	resultsByCat[models.PaternalGrandfather] = heirResult{
		Category: models.PaternalGrandfather, Quantity: 1, Residuary: true,
		Reason: "Jadd-ma'al-ikhwah: grandfather takes the best of a flat 1/6, a third of the residue, or an equal muqasama split with the siblings.",
	}
	for _, c := range activeSiblings {
		if p.count(c) == 0 {
			continue
		}
		resultsByCat[c] = heirResult{
			Category: c, Quantity: p.count(c), Residuary: true,
			Reason: "Jadd-ma'al-ikhwah: siblings split whatever the grandfather does not take, by muqasama weight.",
		}
	}

	var totalSaham int64
	shares := make([]models.HeirShare, 0, len(heirs))
	for _, h := range heirs {
		r := resultsByCat[h.Category]
		s := finalSaham[h.Category]
		totalSaham += s
		shares = append(shares, buildHeirShare(r, s, base, tirkah))
	}

	return models.CalculationResult{
		Tirkah: tirkah, InitialAshl: base, FinalAshl: base,
		TotalSaham:  totalSaham,
		Status:      models.StatusVariant,
		IsVariant:   true,
		VariantName: "jadd_with_siblings",
		Shares:      shares,
		Notes:       []string{"Jadd-ma'al-ikhwah applied: grandfather's share computed as the maximum of the three classical methods."},
	}, nil
}
