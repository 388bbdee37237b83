package faraid

import (
	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

// validateInputs enforces the preconditions required before any
// computation runs.
func validateInputs(tirkah decimal.Decimal, heirs []models.HeirInput) error {
	if tirkah.Sign() <= 0 {
		return invalidInput("tirkah must be positive, got %s", tirkah.String())
	}
	if len(heirs) == 0 {
		return invalidInput("at least one heir is required")
	}
	seen := make(map[models.HeirCategory]bool, len(heirs))
	for _, h := range heirs {
		if !h.Category.Valid() {
			return invalidInput("unknown heir category %d", h.Category)
		}
		if h.Quantity <= 0 {
			return invalidInput("heir category %d has non-positive quantity %d", h.Category, h.Quantity)
		}
		if seen[h.Category] {
			return invalidInput("heir category %d is duplicated in the input", h.Category)
		}
		seen[h.Category] = true
	}
	return nil
}
