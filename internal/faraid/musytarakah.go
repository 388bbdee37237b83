package faraid

import (
	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

// calculateMusytarakah implements al-Himariyyah from scratch: the
// husband and the mother-or-grandmother keep their ordinary fardh
// shares (1/2 and 1/6), and the maternal siblings' fardh share —
// exactly 1/3 of the ashl, the other 1/6 having gone to the
// mother-or-grandmother — is pooled with the full or paternal
// siblings — who would otherwise take zero residue — and split
// equally per head, with no muqasama weighting between the sexes.
func calculateMusytarakah(tirkah decimal.Decimal, heirs []models.HeirInput, p presence) (models.CalculationResult, error) {
	maternalCount := int64(p.count(models.MaternalBrother) + p.count(models.MaternalSister))
	fullOrPaternal := []models.HeirCategory{models.FullBrother, models.FullSister}
	if !p.has(models.FullBrother) && !p.has(models.FullSister) {
		fullOrPaternal = []models.HeirCategory{models.PaternalBrother, models.PaternalSister}
	}
	poolCount := int64(0)
	for _, c := range fullOrPaternal {
		poolCount += int64(p.count(c))
	}
	heads := maternalCount + poolCount
	if heads <= 0 {
		return models.CalculationResult{}, invariantViolation(nil, "musytarakah detected but no pooled siblings found")
	}

	spouseCat := models.Husband
	spouseDen := int64(2)
	spouseReason := "Husband takes 1/2: musytarakah leaves his share unaffected."

	ascendantCat := models.Mother
	ascendantReason := "Mother takes 1/6 (two or more siblings reduce her from 1/3)."
	if !p.has(models.Mother) {
		if p.has(models.MaternalGrandmother) {
			ascendantCat = models.MaternalGrandmother
		} else {
			ascendantCat = models.PaternalGrandmother
		}
		ascendantReason = "Grandmother takes her ordinary flat 1/6; musytarakah does not alter a grandmother's share."
	}

	ashl := lcmMultiple([]int64{spouseDen, 6, 3})
	spouseSaham := ashl / spouseDen
	ascendantSaham := ashl / 6
	poolSaham := ashl / 3

	if mult := groupMultiplier(heads, poolSaham); mult != 1 {
		ashl *= mult
		spouseSaham *= mult
		ascendantSaham *= mult
		poolSaham *= mult
	}
	perHead := poolSaham / heads

	resultsByCat := map[models.HeirCategory]heirResult{
		spouseCat:    {Category: spouseCat, Quantity: p.count(spouseCat), HasFardh: true, Fardh: fraction{1, spouseDen}, Reason: spouseReason},
		ascendantCat: {Category: ascendantCat, Quantity: 1, HasFardh: true, Fardh: fraction{1, 6}, Reason: ascendantReason},
	}
	pooledCats := append([]models.HeirCategory{models.MaternalBrother, models.MaternalSister}, fullOrPaternal...)
	for _, c := range pooledCats {
		if p.count(c) == 0 {
			continue
		}
		resultsByCat[c] = heirResult{Category: c, Quantity: p.count(c), Residuary: true,
			Reason: "Musytarakah: the maternal siblings' 1/3 is pooled with the full or paternal siblings and split equally per head, with no distinction of sex."}
	}

	finalSaham := map[models.HeirCategory]int64{
		spouseCat:    spouseSaham,
		ascendantCat: ascendantSaham,
	}
	for _, c := range pooledCats {
		qty := int64(p.count(c))
		if qty == 0 {
			continue
		}
		finalSaham[c] = perHead * qty
	}

	var totalSaham int64
	shares := make([]models.HeirShare, 0, len(heirs))
	for _, h := range heirs {
		r := resultsByCat[h.Category]
		s := finalSaham[h.Category]
		totalSaham += s
		shares = append(shares, buildHeirShare(r, s, ashl, tirkah))
	}

	return models.CalculationResult{
		Tirkah: tirkah, InitialAshl: ashl, FinalAshl: ashl,
		TotalSaham:  totalSaham,
		Status:      models.StatusVariant,
		IsVariant:   true,
		VariantName: "musytarakah",
		Shares:      shares,
		Notes:       []string{"Musytarakah (al-Himariyyah) applied: full or paternal siblings merged into the maternal siblings' pool and split equally per head."},
	}, nil
}
