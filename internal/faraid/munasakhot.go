package faraid

import "github.com/waris/faraid-engine/pkg/models"

// CalculateMunasakhot handles a chain of deaths occurring before the
// first estate was ever partitioned: each level is
// computed in sequence. The caller is responsible for folding a
// level's inherited amounts into the next level's Tirkah before
// calling this function — the engine only applies the furudh pipeline
// per level, since re-deriving who-inherited-what-from-whom across
// generations is a case-design decision, not an arithmetic one.
func CalculateMunasakhot(levels []models.MunasakhotLevel) ([]models.CalculationResult, error) {
	results := make([]models.CalculationResult, 0, len(levels))
	for _, l := range levels {
		r, err := Calculate(l.Tirkah, l.Heirs)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
