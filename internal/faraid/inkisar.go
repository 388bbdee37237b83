package faraid

import (
	"strings"

	"github.com/waris/faraid-engine/pkg/models"
)

// inkisarGroup is one block of heirs who jointly hold a single pooled
// saham that must divide evenly across their (possibly weighted) head
// count — e.g. two daughters sharing a fixed 2/3, or a mixed residuary
// group sharing the 2:1 muqasama weighting.
type inkisarGroup struct {
	headcount int64
	saham     int64
}

// denominatorRelation classifies the classical four-way relation
// between two positive integers.
func denominatorRelation(a, b int64) models.DenominatorRelation {
	if a == b {
		return models.RelationTamathul
	}
	hi, lo := a, b
	if lo > hi {
		hi, lo = lo, hi
	}
	if lo != 0 && hi%lo == 0 {
		return models.RelationTadakhul
	}
	if gcd(a, b) > 1 {
		return models.RelationTawafuq
	}
	return models.RelationTabayun
}

// groupMultiplier is the minimal factor by which a group's headcount
// and saham must both be scaled so the pooled saham divides evenly
// across the headcount.
func groupMultiplier(headcount, saham int64) int64 {
	if headcount <= 1 || saham == 0 || saham%headcount == 0 {
		return 1
	}
	g := gcd(headcount, saham)
	if g == 0 {
		return headcount
	}
	return headcount / g
}

// correctInkisar computes the single combined multiplier to apply to
// the whole ashl so every group's pooled saham divides its headcount
// exactly (tamathul, and tadakhul where the saham is a multiple of the
// headcount, need no correction; tadakhul the other way round and
// tawafuq need headcount/gcd; tabayun needs the full headcount;
// multiple groups combine via the LCM of their individual multipliers).
func correctInkisar(groups []inkisarGroup) (multiplier int64, relations []models.DenominatorRelation) {
	multipliers := make([]int64, 0, len(groups))
	rels := make([]models.DenominatorRelation, 0, len(groups))
	for _, g := range groups {
		if g.headcount <= 1 {
			multipliers = append(multipliers, 1)
			rels = append(rels, models.RelationTamathul)
			continue
		}
		rels = append(rels, denominatorRelation(g.headcount, g.saham))
		multipliers = append(multipliers, groupMultiplier(g.headcount, g.saham))
	}
	if len(multipliers) == 0 {
		return 1, rels
	}
	return lcmMultiple(uniqueInt64(multipliers)), rels
}

// relationList renders the group relations correctInkisar diagnosed as
// a comma-separated list, for the derivation notes.
func relationList(rels []models.DenominatorRelation) string {
	parts := make([]string, len(rels))
	for i, r := range rels {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// pluralSuffix returns "s" unless n is exactly one, for pluralizing
// "relation"/"relations" in notes.
func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
