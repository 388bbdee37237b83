package faraid

import "github.com/waris/faraid-engine/pkg/models"

// shareLine is one fixed-share holder's resolved entitlement, carried
// forward from the furudh pass into ashl/saham computation.
type shareLine struct {
	result heirResult
	saham  int64 // raw saham before aul/radd correction
}

// computeAshl finds the problem base: the LCM of every
// distinct fardh denominator in play, or 1 when nobody holds a fixed
// share. It then computes each fardh holder's raw saham, and
// classifies the denominator set into one of the four classical
// relation-types per §4.3, for reporting in the derivation notes.
func computeAshl(results []heirResult) (ashl int64, lines []shareLine, relation models.DenominatorRelation, err error) {
	var denoms []int64
	for _, r := range results {
		if r.HasFardh && !r.Excluded {
			denoms = append(denoms, r.Fardh.Den)
		}
	}
	if len(denoms) == 0 {
		return 1, nil, models.RelationTamathul, nil
	}
	unique := uniqueInt64(denoms)
	ashl = lcmMultiple(unique)
	relation = denominatorSetRelation(unique)

	lines = make([]shareLine, 0, len(denoms))
	for _, r := range results {
		if !r.HasFardh || r.Excluded {
			continue
		}
		if ashl%r.Fardh.Den != 0 {
			return 0, nil, relation, invariantViolation(nil, "ashl %d not divisible by fardh denominator %d", ashl, r.Fardh.Den)
		}
		saham := ashl / r.Fardh.Den * r.Fardh.Num
		lines = append(lines, shareLine{result: r, saham: saham})
	}
	return ashl, lines, relation, nil
}

// denominatorSetRelation classifies a set of distinct fardh
// denominators into the classical four-way relation (§4.3): tamathul
// when there is nothing to compare (a single denominator), tadakhul
// when every pair divides one another, tabayun when every pair is
// coprime, and tawafuq when every pair shares a common factor without
// all of them dividing. A set whose pairs disagree (some divide, some
// share a smaller common factor, some are coprime) is reported as
// tawafuq when the whole set shares a common factor (gcdMultiple > 1)
// and as tabayun otherwise, even if some of its pairs share a factor
// (e.g. {4, 6, 3} is reported as tabayun).
func denominatorSetRelation(denoms []int64) models.DenominatorRelation {
	if len(denoms) <= 1 {
		return models.RelationTamathul
	}
	allTadakhul, allTabayun := true, true
	for i := 0; i < len(denoms); i++ {
		for j := i + 1; j < len(denoms); j++ {
			switch denominatorRelation(denoms[i], denoms[j]) {
			case models.RelationTadakhul:
				allTabayun = false
			case models.RelationTabayun:
				allTadakhul = false
			default: // tawafuq
				allTadakhul, allTabayun = false, false
			}
		}
	}
	switch {
	case allTadakhul:
		return models.RelationTadakhul
	case allTabayun:
		return models.RelationTabayun
	case gcdMultiple(denoms) > 1:
		return models.RelationTawafuq
	default:
		return models.RelationTabayun
	}
}

// totalFixedSaham sums the raw saham across every fixed-share line.
func totalFixedSaham(lines []shareLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.saham
	}
	return total
}
