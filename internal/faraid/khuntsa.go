package faraid

import (
	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

// khuntsaPairs is the closed set of male/female category pairings the
// engine can meaningfully resolve for an heir of indeterminate sex:
// categories that name the same relationship to the deceased, differing
// only in the heir's sex. Categories with no such counterpart in the
// 25-category taxonomy (nephews, uncles, cousins) are not listed, nor
// are the ascendants, the spouses or the manumitter pair; any pairing
// outside this table is reported as an unsupported case rather than a
// silent miscalculation.
var khuntsaPairs = map[models.HeirCategory]models.HeirCategory{
	models.Son:             models.Daughter,
	models.SonOfSon:        models.DaughterOfSon,
	models.FullBrother:     models.FullSister,
	models.PaternalBrother: models.PaternalSister,
	models.MaternalBrother: models.MaternalSister,
}

// CalculateKhuntsa handles an heir of indeterminate sex (khuntsa
// musykil) by running the full calculation twice — once
// classifying the heir under maleCategory, once under femaleCategory
// — since the two categories carry different fardh/hajb treatment.
// knownHeirs must not itself contain the indeterminate heir.
func CalculateKhuntsa(tirkah decimal.Decimal, knownHeirs []models.HeirInput, maleCategory, femaleCategory models.HeirCategory, quantity int) (models.KhuntsaScenarios, error) {
	if khuntsaPairs[maleCategory] != femaleCategory {
		return models.KhuntsaScenarios{}, unsupportedCase(
			"khuntsa is not implemented for the category pairing (%d, %d): no recognised male/female counterpart in the taxonomy",
			maleCategory, femaleCategory)
	}

	ifMale, err := Calculate(tirkah, withHeir(knownHeirs, maleCategory, quantity))
	if err != nil {
		return models.KhuntsaScenarios{}, err
	}
	ifFemale, err := Calculate(tirkah, withHeir(knownHeirs, femaleCategory, quantity))
	if err != nil {
		return models.KhuntsaScenarios{}, err
	}
	return models.KhuntsaScenarios{IfMale: ifMale, IfFemale: ifFemale}, nil
}
