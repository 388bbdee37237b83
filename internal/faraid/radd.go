package faraid

import (
	"fmt"

	"github.com/waris/faraid-engine/pkg/models"
)

// raddResult is the outcome of applying radd: the residue left over
// because no residuary heir survives to absorb it is returned to the
// non-spouse fixed-share holders, proportional to their existing
// shares.
type raddResult struct {
	ashl      int64
	saham     map[models.HeirCategory]int64
	notes     []string
	unclaimed int64 // saham of ashl with no named claimant (spouse-alone edge case)
}

// applyRadd redistributes the shortfall among lines. A spouse (husband
// or wife) never participates in radd and keeps exactly its original
// fardh-proportion of the problem base.
func applyRadd(ashl int64, lines []shareLine) (raddResult, error) {
	var spouse *shareLine
	var others []shareLine
	for i := range lines {
		l := lines[i]
		if l.result.Category == models.Husband || l.result.Category == models.Wife {
			spouse = &lines[i]
			continue
		}
		others = append(others, l)
	}

	if spouse == nil {
		return raddNoSpouse(lines)
	}
	return raddWithSpouse(ashl, *spouse, others)
}

// raddNoSpouse handles the case with no spouse present: every
// fixed-share holder's raw saham becomes its final saham, and the
// problem base shrinks to their sum.
func raddNoSpouse(lines []shareLine) (raddResult, error) {
	total := totalFixedSaham(lines)
	if total <= 0 {
		return raddResult{}, invariantViolation(nil, "radd with no spouse has non-positive total saham %d", total)
	}
	saham := make(map[models.HeirCategory]int64, len(lines))
	for _, l := range lines {
		saham[l.result.Category] += l.saham
	}
	return raddResult{
		ashl:  total,
		saham: saham,
		notes: []string{"radd applied: no spouse present, problem base reduced to the sum of fixed shares."},
	}, nil
}

// raddWithSpouse handles the cases where a spouse is present: its share is
// held fixed at its original fardh proportion, and the remaining pool
// is distributed to the other heirs proportional to their raw saham,
// scaled by the minimal factor that keeps every resulting saham an
// integer.
func raddWithSpouse(ashl int64, spouse shareLine, others []shareLine) (raddResult, error) {
	if len(others) == 0 {
		// Spouse is the sole heir: spouses never benefit from radd, and
		// with no other fixed-share or residuary holder to return the
		// rest to, the remainder has no named claimant under this engine;
		// surface it as unclaimed state rather than silently giving it away.
		return raddResult{
			ashl:      ashl,
			saham:     map[models.HeirCategory]int64{spouse.result.Category: spouse.saham},
			unclaimed: ashl - spouse.saham,
			notes: []string{"radd does not apply: the surviving spouse is the only heir, spouses never benefit from radd, " +
				"and there is no other fixed-share or residuary heir to return the remainder to; the residue beyond the " +
				"spouse's fardh has no claimant in this heir set."},
		}, nil
	}
	pool := ashl - spouse.saham
	if pool <= 0 {
		return raddResult{}, invariantViolation(nil, "radd pool after spouse share is non-positive: %d", pool)
	}
	otherTotal := totalFixedSaham(others)
	if otherTotal <= 0 {
		return raddResult{}, invariantViolation(nil, "radd other-heir total saham is non-positive: %d", otherTotal)
	}

	factor := int64(1)
	if pool%otherTotal != 0 {
		g := gcd(pool, otherTotal)
		factor = otherTotal / g
	}
	// each member's slice newPool*saham/otherTotal is checked below to be an integer
	newAshl := ashl * factor
	newSpouseSaham := spouse.saham * factor
	newPool := newAshl - newSpouseSaham

	saham := make(map[models.HeirCategory]int64, len(others)+1)
	saham[spouse.result.Category] = newSpouseSaham
	for _, o := range others {
		if (newPool*o.saham)%otherTotal != 0 {
			return raddResult{}, invariantViolation(nil, "radd redistribution does not divide evenly for category %d", o.result.Category)
		}
		saham[o.result.Category] += newPool * o.saham / otherTotal
	}

	notes := []string{"radd applied: spouse retains its original fardh proportion, remaining residue returned to the other fixed-share heirs proportional to their shares."}
	if factor != 1 {
		notes = append(notes, fmt.Sprintf("radd required scaling the problem base by a factor of %d to keep every redistributed share an integer.", factor))
	}
	return raddResult{ashl: newAshl, saham: saham, notes: notes}, nil
}
