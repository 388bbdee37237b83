package faraid

import (
	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

// CalculateHaml handles an unborn heir by running the
// full calculation twice — once assuming the child is born a son,
// once assuming a daughter — since the correct classification cannot
// be known until birth. knownHeirs must not itself contain the unborn
// child.
func CalculateHaml(tirkah decimal.Decimal, knownHeirs []models.HeirInput) (models.HamlScenarios, error) {
	ifSon, err := Calculate(tirkah, withHeir(knownHeirs, models.Son, 1))
	if err != nil {
		return models.HamlScenarios{}, err
	}
	ifDaughter, err := Calculate(tirkah, withHeir(knownHeirs, models.Daughter, 1))
	if err != nil {
		return models.HamlScenarios{}, err
	}
	return models.HamlScenarios{IfSon: ifSon, IfDaughter: ifDaughter}, nil
}

// withHeir returns a copy of heirs with quantity more of category
// added, merging into an existing line for that category rather than
// duplicating it.
func withHeir(heirs []models.HeirInput, category models.HeirCategory, quantity int) []models.HeirInput {
	out := make([]models.HeirInput, 0, len(heirs)+1)
	found := false
	for _, h := range heirs {
		if h.Category == category {
			h.Quantity += quantity
			found = true
		}
		out = append(out, h)
	}
	if !found {
		out = append(out, models.HeirInput{Category: category, Quantity: quantity})
	}
	return out
}
