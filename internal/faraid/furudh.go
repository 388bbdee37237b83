package faraid

import "github.com/waris/faraid-engine/pkg/models"

// heirResult is the per-category outcome of the furudh pass, before
// ashl/saham are computed.
type heirResult struct {
	Category  models.HeirCategory
	Quantity  int
	HasFardh  bool
	Fardh     fraction
	Residuary bool
	Excluded  bool
	Reason    string
}

// presence is a fast lookup of which categories survive and in what
// quantity, built once per calculation.
type presence struct {
	qty map[models.HeirCategory]int
}

func newPresence(heirs []models.HeirInput) presence {
	p := presence{qty: make(map[models.HeirCategory]int, len(heirs))}
	for _, h := range heirs {
		p.qty[h.Category] += h.Quantity
	}
	return p
}

func (p presence) has(c models.HeirCategory) bool { return p.qty[c] > 0 }

func (p presence) hasAny(cats []models.HeirCategory) bool {
	for _, c := range cats {
		if p.has(c) {
			return true
		}
	}
	return false
}

func (p presence) count(c models.HeirCategory) int { return p.qty[c] }

func (p presence) siblingCount() int {
	total := 0
	for _, c := range siblingCategories {
		total += p.count(c)
	}
	return total
}

// isUmariyyatan reports the special "two-umar" case: spouse, father,
// and mother, with no other heirs present.
func (p presence) isUmariyyatan() bool {
	if !p.hasAny([]models.HeirCategory{models.Husband, models.Wife}) {
		return false
	}
	if !p.has(models.Father) || !p.has(models.Mother) {
		return false
	}
	total := 0
	for _, n := range p.qty {
		total += n
	}
	spouseQty := p.count(models.Husband) + p.count(models.Wife)
	return total == spouseQty+2
}

// evaluateSpecialCase resolves the named boolean predicates a rule can
// reference beyond plain presence/absence or sibling counts.
func evaluateSpecialCase(name string, p presence) bool {
	switch name {
	case "umariyyatan":
		return p.isUmariyyatan()
	case "full_sibling_pair":
		return p.has(models.FullBrother)
	case "paternal_sibling_pair":
		return p.has(models.PaternalBrother)
	case "one_full_sister":
		return p.count(models.FullSister) == 1 && !p.has(models.FullBrother)
	case "two_full_sisters_no_full_brother":
		return p.count(models.FullSister) >= 2 && !p.has(models.FullBrother)
	case "maternal_sibling_group_multi":
		return p.count(models.MaternalBrother)+p.count(models.MaternalSister) >= 2
	case "daughters_two_plus_no_grandson":
		return p.count(models.Daughter) >= 2 && !p.has(models.SonOfSon)
	default:
		return false
	}
}

func matches(r rule, qty int, p presence) bool {
	if len(r.requiredPresentAny) > 0 && !p.hasAny(r.requiredPresentAny) {
		return false
	}
	if len(r.requiredAbsentAll) > 0 && p.hasAny(r.requiredAbsentAll) {
		return false
	}
	if r.minQuantity > 0 && qty < r.minQuantity {
		return false
	}
	if r.exactQuantity > 0 && qty != r.exactQuantity {
		return false
	}
	if r.minSiblings > 0 && p.siblingCount() < r.minSiblings {
		return false
	}
	if r.maxSiblings > 0 && r.specialCase == "" && p.siblingCount() > r.maxSiblings {
		return false
	}
	if r.specialCase != "" && !evaluateSpecialCase(r.specialCase, p) {
		return false
	}
	return true
}

// determineFurudh classifies every present heir into a fixed share,
// residuary status, or exclusion, following the ordered rule table
//. Pure-residuary male categories and manumitters
// short-circuit the table entirely.
func determineFurudh(heirs []models.HeirInput, p presence) ([]heirResult, error) {
	results := make([]heirResult, 0, len(heirs))
	for _, h := range heirs {
		if pureResiduaryMale[h.Category] {
			excl, reason := excludedNearer(h.Category, p)
			results = append(results, heirResult{
				Category: h.Category, Quantity: h.Quantity,
				Residuary: !excl, Excluded: excl, Reason: reason,
			})
			continue
		}
		if h.Category == models.MaleManumitter || h.Category == models.FemaleManumitter {
			excl := p.lastResortExcluded(h.Category)
			reason := "Manumitter inherits as residuary of last resort, only absent any other heir."
			if excl {
				reason = "Manumitter is excluded: at least one other heir is present."
			}
			results = append(results, heirResult{
				Category: h.Category, Quantity: h.Quantity,
				Residuary: !excl, Excluded: excl, Reason: reason,
			})
			continue
		}

		rules, ok := ruleTable[h.Category]
		if !ok {
			return nil, invalidInput("heir category %d has no rule table entry", h.Category)
		}
		matched := false
		for _, r := range rules {
			if !matches(r, h.Quantity, p) {
				continue
			}
			matched = true
			hr := heirResult{Category: h.Category, Quantity: h.Quantity, Reason: r.reason}
			switch r.outcome {
			case outcomeFardh:
				hr.HasFardh = true
				hr.Fardh = r.fardh
			case outcomeResiduary:
				hr.Residuary = true
			case outcomeFardhPlusResiduary:
				hr.HasFardh = true
				hr.Fardh = r.fardh
				hr.Residuary = true
			case outcomeExcluded:
				hr.Excluded = true
			}
			results = append(results, hr)
			break
		}
		if !matched {
			return nil, invariantViolation(nil, "no rule matched for heir category %d", h.Category)
		}
	}
	return results, nil
}

// excludedNearer walks a pure-residuary male category's exclusion set.
func excludedNearer(c models.HeirCategory, p presence) (bool, string) {
	blockers, ok := pureResiduaryExclusion[c]
	if !ok || len(blockers) == 0 {
		return false, "Ashobah bi-nafsihi: always residuary, never excluded."
	}
	if p.hasAny(blockers) {
		return true, "Excluded by a nearer residuary heir."
	}
	return false, "Ashobah bi-nafsihi: no nearer residuary heir is present."
}

// lastResortExcluded reports whether any heir other than manumitters
// is present, which excludes the manumitter categories entirely.
func (p presence) lastResortExcluded(self models.HeirCategory) bool {
	for c, n := range p.qty {
		if n <= 0 {
			continue
		}
		if c == models.MaleManumitter || c == models.FemaleManumitter {
			continue
		}
		return true
	}
	return false
}
