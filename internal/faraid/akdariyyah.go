package faraid

import (
	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

// calculateAkdariyyah computes the Akdariyyah case from scratch
//, rather than delegating to the normal pipeline: the
// husband's and mother's fardh shares are computed as usual, but the
// grandfather and the full sister then share the remainder 2:1 as if
// they were ordinary residuary heirs, and the whole problem is then
// re-based so the mother's fixed 1/6 still divides evenly once the
// grandfather and sister are folded in.
func calculateAkdariyyah(tirkah decimal.Decimal, p presence) (models.CalculationResult, error) {
	k := int64(p.count(models.FullSister))
	if k == 0 {
		k = 1
	}

	ashl := 6 * (2 + k)
	husbandSaham := 3 * (2 + k)
	motherSaham := 2 + k
	remaining := ashl - husbandSaham - motherSaham
	totalWeight := 2 + k

	grandfatherSaham := remaining * 2 / totalWeight
	sistersSaham := remaining * k / totalWeight
	if grandfatherSaham*totalWeight != remaining*2 || sistersSaham*totalWeight != remaining*k {
		return models.CalculationResult{}, invariantViolation(nil, "akdariyyah residue does not divide evenly for k=%d", k)
	}

	shares := []models.HeirShare{
		buildHeirShare(heirResult{Category: models.Husband, Quantity: p.count(models.Husband), HasFardh: true,
			Fardh: fraction{1, 2}, Reason: "Husband takes 1/2: Akdariyyah leaves his share unaffected by the grandfather/sister competition."},
			husbandSaham, ashl, tirkah),
		buildHeirShare(heirResult{Category: models.Mother, Quantity: 1, HasFardh: true,
			Fardh: fraction{1, 6}, Reason: "Mother takes 1/6: Akdariyyah leaves her share unaffected by the grandfather/sister competition."},
			motherSaham, ashl, tirkah),
		buildHeirShare(heirResult{Category: models.PaternalGrandfather, Quantity: 1, Residuary: true,
			Reason: "Akdariyyah: grandfather and the full sister(s) pool the remainder and split it 2:1, rather than the sister taking a fixed 1/2 and the grandfather the rest."},
			grandfatherSaham, ashl, tirkah),
		buildHeirShare(heirResult{Category: models.FullSister, Quantity: p.count(models.FullSister), Residuary: true,
			Reason: "Akdariyyah: grandfather and the full sister(s) pool the remainder and split it 2:1, rather than the sister taking a fixed 1/2 and the grandfather the rest."},
			sistersSaham, ashl, tirkah),
	}

	return models.CalculationResult{
		Tirkah: tirkah, InitialAshl: ashl, FinalAshl: ashl,
		TotalSaham:  husbandSaham + motherSaham + grandfatherSaham + sistersSaham,
		Status:      models.StatusVariant,
		IsVariant:   true,
		VariantName: "akdariyyah",
		Shares:      shares,
		Notes:       []string{"Akdariyyah applied: computed independently of the normal furudh/ashobah pipeline per the classical worked derivation."},
	}, nil
}
