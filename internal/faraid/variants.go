package faraid

import "github.com/waris/faraid-engine/pkg/models"

// detectAkdariyyah reports the classical Akdariyyah configuration:
// husband, mother, paternal grandfather, and exactly one full sister,
// with no other heirs.
func detectAkdariyyah(p presence) bool {
	if !p.has(models.Husband) || !p.has(models.Mother) || !p.has(models.PaternalGrandfather) {
		return false
	}
	if p.count(models.FullSister) != 1 {
		return false
	}
	total := 0
	for _, n := range p.qty {
		total += n
	}
	return total == p.count(models.Husband)+1+1+1
}

// detectJaddWithSiblings reports the grandfather-versus-full/paternal-
// siblings competition: paternal grandfather present,
// father and every nearer male descendant absent, and at least one
// full or paternal sibling present.
func detectJaddWithSiblings(p presence) bool {
	if !p.has(models.PaternalGrandfather) || p.has(models.Father) {
		return false
	}
	if p.has(models.Son) || p.has(models.SonOfSon) {
		return false
	}
	if detectAkdariyyah(p) {
		return false
	}
	return p.hasAny([]models.HeirCategory{
		models.FullBrother, models.PaternalBrother, models.FullSister, models.PaternalSister,
	})
}

// detectMusytarakah reports al-Himariyyah: a husband, a mother or
// grandmother, two or more maternal siblings, and at least one full or
// paternal sibling, with no father, no paternal grandfather, and no
// descendant — the configuration in which
// the full/paternal siblings would otherwise take zero residue and
// are instead merged into the maternal siblings' pool. This is a
// husband-only configuration: the classical 1/2 + 1/6 + 1/3 = 1
// exhaustion that leaves the full/paternal siblings with nothing to
// inherit from does not arise for a wife, whose fardh is 1/4, so a
// wife in this configuration falls through to the normal pipeline.
func detectMusytarakah(p presence) bool {
	if !p.has(models.Husband) {
		return false
	}
	if !p.hasAny([]models.HeirCategory{models.Mother, models.MaternalGrandmother, models.PaternalGrandmother}) {
		return false
	}
	if p.has(models.Father) || p.has(models.PaternalGrandfather) {
		return false
	}
	if p.hasAny(childOrGrandsonLine) {
		return false
	}
	maternalSiblings := p.count(models.MaternalBrother) + p.count(models.MaternalSister)
	fullOrPaternalSiblings := p.count(models.FullBrother) + p.count(models.FullSister) +
		p.count(models.PaternalBrother) + p.count(models.PaternalSister)
	return maternalSiblings >= 2 && fullOrPaternalSiblings >= 1
}

// detectGharrawain reports whether both grandmothers of equal degree
// are present and neither is excluded (no mother, no father) — a
// tagging-only variant; the normal pipeline already computes the
// correct 1/12-each split via the taxonomy rule table.
func detectGharrawain(p presence) bool {
	return p.has(models.MaternalGrandmother) && p.has(models.PaternalGrandmother) &&
		!p.has(models.Mother) && !p.has(models.Father)
}
