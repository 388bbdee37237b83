package faraid

import "github.com/waris/faraid-engine/pkg/models"

// residuaryWeight is the muqasama weight used when splitting a pooled
// residue across a mixed-sex residuary group: males take twice a
// female's share.
func residuaryWeight(c models.HeirCategory) int64 {
	if c.IsMale() {
		return 2
	}
	return 1
}

// residuaryMembers returns every un-excluded residuary heir (pure
// ashobah bi-nafsihi or ashobah ma'al-fardh) from a furudh pass.
func residuaryMembers(results []heirResult) []heirResult {
	var out []heirResult
	for _, r := range results {
		if r.Residuary && !r.Excluded {
			out = append(out, r)
		}
	}
	return out
}

// totalResiduaryWeight sums quantity-weighted muqasama weight across a
// residuary group.
func totalResiduaryWeight(members []heirResult) int64 {
	var total int64
	for _, m := range members {
		total += residuaryWeight(m.Category) * int64(m.Quantity)
	}
	return total
}
