package faraid

import "fmt"

// admissibleAulTransitions lists the classical ashl bases and the new
// bases they are known to inflate to. A transition
// outside this table is not rejected — it is arithmetically valid, just
// unattested in the classical literature — so the engine proceeds and
// records a note rather than failing the calculation.
var admissibleAulTransitions = map[int64][]int64{
	6:  {7, 8, 9, 10},
	12: {13, 15, 17},
	24: {27},
}

// isAdmissibleAul reports whether the transition from base to inflated
// is attested in the classical table.
func isAdmissibleAul(base, inflated int64) bool {
	for _, v := range admissibleAulTransitions[base] {
		if v == inflated {
			return true
		}
	}
	return false
}

// aulNote always returns a note describing the aul transition, since
// §4.9 lists aul/radd detection among what the derivation trail must
// record; unattested transitions get an extra warning clause rather
// than being the only ones that produce a note at all.
func aulNote(base, inflated int64) string {
	if isAdmissibleAul(base, inflated) {
		return fmt.Sprintf("ashl inflated from %d to %d (aul): a classically attested transition.", base, inflated)
	}
	return fmt.Sprintf("ashl inflated from %d to %d (aul): this transition is not one of the classically attested bases; proceeding on the arithmetic invariant that total saham must equal the final ashl.", base, inflated)
}
