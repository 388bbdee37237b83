package faraid

import "github.com/waris/faraid-engine/pkg/models"

// CalculateGharqa handles simultaneous deaths where the order cannot
// be established: each decedent's estate is computed
// independently of the others, since none of them may inherit from
// one another under this configuration.
func CalculateGharqa(cases []models.DeceasedCase) ([]models.CalculationResult, error) {
	results := make([]models.CalculationResult, 0, len(cases))
	for _, c := range cases {
		r, err := Calculate(c.Tirkah, c.Heirs)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
