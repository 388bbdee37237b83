package faraid

import (
	"strconv"

	"github.com/waris/faraid-engine/pkg/models"
)

// fraction is a fardh value p/q, p in {1,2}, q in {2,3,4,6,8}, drawn
// from the admissible set of Quranic fixed shares: {1/2, 1/3, 1/4, 1/6, 1/8, 2/3}.
// The one exception is 1/12, each grandmother's half of a 1/6 shared
// by two grandmothers of equal degree.
type fraction struct {
	Num, Den int64
}

func (f fraction) String() string {
	return fractionString(f.Num, f.Den)
}

func fractionString(num, den int64) string {
	if den == 0 {
		return "0"
	}
	n, d := simplifyFraction(num, den)
	if d == 1 {
		return strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10) + "/" + strconv.FormatInt(d, 10)
}

// outcome is what a matched rule assigns to its heir.
type outcome int

const (
	outcomeFardh outcome = iota
	outcomeResiduary
	outcomeFardhPlusResiduary // "ashobah ma'al-fardh": holds a fixed share AND shares in the residue
	outcomeExcluded
)

// rule is one conditional line of a category's rule list.
// Evaluation is conjunctive: every non-zero-value predicate field must
// hold for the rule to match. Rules are tried in order; the first
// match wins.
type rule struct {
	outcome outcome
	fardh   fraction

	requiredPresentAny []models.HeirCategory // "some heir in S is present"
	requiredAbsentAll  []models.HeirCategory  // "no heir in S is present"

	minQuantity   int // 0 = unused
	exactQuantity int // 0 = unused

	minSiblings int // 0 or -1 = unused
	maxSiblings int // 0 or -1 = unused

	specialCase string // "" = unused; e.g. "umariyyatan"

	reason string
}

// siblingCategories is the six collateral categories counted by
// sibling-count predicates.
var siblingCategories = []models.HeirCategory{
	models.FullBrother, models.PaternalBrother, models.MaternalBrother,
	models.FullSister, models.PaternalSister, models.MaternalSister,
}

// childOrGrandsonLine is "any child or grandchild-through-son", the
// predicate that reduces spouse shares and triggers the 1/6 tier for
// parents.
var childOrGrandsonLine = []models.HeirCategory{
	models.Son, models.Daughter, models.SonOfSon, models.DaughterOfSon,
}

// pureResiduaryMale is the set of categories that are always ashobah
// bi-nafsihi and never consult the rule table. Father
// and paternal grandfather are excluded from this set even though the
// taxonomy overview groups them loosely with the "male ashobah" family:
// both can also hold a fixed 1/6, so they run through the table below.
var pureResiduaryMale = map[models.HeirCategory]bool{
	models.Son:                  true,
	models.SonOfSon:             true,
	models.FullBrother:          true,
	models.PaternalBrother:      true,
	models.NephewFullBrotherSon: true,
	models.NephewPaternalBroSon: true,
	models.FullUncle:            true,
	models.PaternalUncle:        true,
	models.FullUncleSon:         true,
	models.PaternalUncleSon:     true,
}

// pureResiduaryExclusion lists, for each pure-residuary male category,
// the nearer heirs whose presence fully excludes it (hajb hirman).
var pureResiduaryExclusion = map[models.HeirCategory][]models.HeirCategory{
	models.Son: nil,
	models.SonOfSon: {
		models.Son,
	},
	models.FullBrother: {
		models.Father, models.Son, models.SonOfSon, models.PaternalGrandfather,
	},
	models.PaternalBrother: {
		models.Father, models.Son, models.SonOfSon, models.PaternalGrandfather,
		models.FullBrother,
	},
	models.NephewFullBrotherSon: {
		models.Father, models.Son, models.SonOfSon, models.PaternalGrandfather,
		models.FullBrother, models.PaternalBrother,
	},
	models.NephewPaternalBroSon: {
		models.Father, models.Son, models.SonOfSon, models.PaternalGrandfather,
		models.FullBrother, models.PaternalBrother, models.NephewFullBrotherSon,
	},
	models.FullUncle: {
		models.Father, models.Son, models.SonOfSon, models.PaternalGrandfather,
		models.FullBrother, models.PaternalBrother,
		models.NephewFullBrotherSon, models.NephewPaternalBroSon,
	},
	models.PaternalUncle: {
		models.Father, models.Son, models.SonOfSon, models.PaternalGrandfather,
		models.FullBrother, models.PaternalBrother,
		models.NephewFullBrotherSon, models.NephewPaternalBroSon, models.FullUncle,
	},
	models.FullUncleSon: {
		models.Father, models.Son, models.SonOfSon, models.PaternalGrandfather,
		models.FullBrother, models.PaternalBrother,
		models.NephewFullBrotherSon, models.NephewPaternalBroSon,
		models.FullUncle, models.PaternalUncle,
	},
	models.PaternalUncleSon: {
		models.Father, models.Son, models.SonOfSon, models.PaternalGrandfather,
		models.FullBrother, models.PaternalBrother,
		models.NephewFullBrotherSon, models.NephewPaternalBroSon,
		models.FullUncle, models.PaternalUncle, models.FullUncleSon,
	},
}

// ruleTable maps each mixed or fixed-share-only category to its
// ordered rule list. Pure-residuary categories and manumitters are
// deliberately absent — they short-circuit before the table is ever
// consulted.
var ruleTable = map[models.HeirCategory][]rule{
	models.Husband: {
		{outcome: outcomeFardh, fardh: fraction{1, 4}, requiredPresentAny: childOrGrandsonLine,
			reason: "Husband takes 1/4 when the deceased leaves a child or a grandchild through a son."},
		{outcome: outcomeFardh, fardh: fraction{1, 2},
			reason: "Husband takes 1/2 when the deceased leaves no child and no grandchild through a son."},
	},
	models.Wife: {
		{outcome: outcomeFardh, fardh: fraction{1, 8}, requiredPresentAny: childOrGrandsonLine,
			reason: "Wife (or wives collectively) takes 1/8 when the deceased leaves a child or a grandchild through a son."},
		{outcome: outcomeFardh, fardh: fraction{1, 4},
			reason: "Wife (or wives collectively) takes 1/4 when the deceased leaves no child and no grandchild through a son."},
	},
	models.Father: {
		{outcome: outcomeFardh, fardh: fraction{1, 6},
			requiredPresentAny: []models.HeirCategory{models.Son, models.SonOfSon},
			reason:             "Father takes a fixed 1/6 when a son or son's son survives, since they are nearer in the residuary line."},
		{outcome: outcomeFardhPlusResiduary, fardh: fraction{1, 6},
			requiredPresentAny: []models.HeirCategory{models.Daughter, models.DaughterOfSon},
			requiredAbsentAll:  []models.HeirCategory{models.Son, models.SonOfSon},
			reason:             "Father takes a fixed 1/6 plus whatever remains of the residue when only daughters or son's daughters survive."},
		{outcome: outcomeResiduary,
			reason: "Father is ashobah bi-nafsihi when the deceased leaves no child and no grandchild through a son."},
	},
	models.PaternalGrandfather: {
		{outcome: outcomeExcluded, requiredPresentAny: []models.HeirCategory{models.Father},
			reason: "The nearer paternal ascendant, the father, excludes the grandfather entirely."},
		{outcome: outcomeFardh, fardh: fraction{1, 6},
			requiredPresentAny: []models.HeirCategory{models.Son, models.SonOfSon},
			reason:             "Grandfather takes a fixed 1/6 when a son or son's son survives."},
		{outcome: outcomeFardhPlusResiduary, fardh: fraction{1, 6},
			requiredPresentAny: []models.HeirCategory{models.Daughter, models.DaughterOfSon},
			requiredAbsentAll:  []models.HeirCategory{models.Son, models.SonOfSon},
			reason:             "Grandfather takes a fixed 1/6 plus whatever remains of the residue when only daughters or son's daughters survive."},
		{outcome: outcomeResiduary,
			reason: "Grandfather is ashobah bi-nafsihi when the deceased leaves no child and no grandchild through a son."},
	},
	models.Mother: {
		{outcome: outcomeFardh, fardh: fraction{1, 3}, specialCase: "umariyyatan",
			reason: "Umariyyatan: mother takes 1/3 of the residue remaining after the spouse's share (derived fardh, resolved during base computation)."},
		{outcome: outcomeFardh, fardh: fraction{1, 6},
			requiredPresentAny: childOrGrandsonLine,
			reason:             "Mother's share is reduced to 1/6 when the deceased leaves a child or a grandchild through a son."},
		{outcome: outcomeFardh, fardh: fraction{1, 6}, minSiblings: 2, maxSiblings: -1,
			reason: "Mother's share is reduced to 1/6 when the deceased leaves two or more siblings of any kind."},
		{outcome: outcomeFardh, fardh: fraction{1, 3},
			reason: "Mother takes 1/3 when the deceased leaves no child, no grandchild through a son, and fewer than two siblings."},
	},
	models.MaternalGrandmother: {
		{outcome: outcomeExcluded, requiredPresentAny: []models.HeirCategory{models.Mother},
			reason: "The mother, being nearer, excludes the maternal grandmother."},
		{outcome: outcomeFardh, fardh: fraction{1, 12},
			requiredPresentAny: []models.HeirCategory{models.PaternalGrandmother},
			requiredAbsentAll:  []models.HeirCategory{models.Father},
			reason:             "Two grandmothers of equal degree jointly share a single 1/6, so each takes 1/12 (al-Gharrawain)."},
		{outcome: outcomeFardh, fardh: fraction{1, 6},
			reason: "Maternal grandmother takes 1/6 when she is the sole surviving grandmother."},
	},
	models.PaternalGrandmother: {
		{outcome: outcomeExcluded, requiredPresentAny: []models.HeirCategory{models.Mother, models.Father},
			reason: "The mother or the father, being nearer, excludes the paternal grandmother."},
		{outcome: outcomeFardh, fardh: fraction{1, 12},
			requiredPresentAny: []models.HeirCategory{models.MaternalGrandmother},
			reason:             "Two grandmothers of equal degree jointly share a single 1/6, so each takes 1/12 (al-Gharrawain)."},
		{outcome: outcomeFardh, fardh: fraction{1, 6},
			reason: "Paternal grandmother takes 1/6 when she is the sole surviving grandmother."},
	},
	models.Daughter: {
		{outcome: outcomeResiduary, requiredPresentAny: []models.HeirCategory{models.Son},
			reason: "Daughter becomes ashobah bi-l-ghair (residuary through her brother) sharing 2:1 with any son present."},
		{outcome: outcomeFardh, fardh: fraction{2, 3}, minQuantity: 2,
			reason: "Two or more daughters, with no son present, jointly take the fixed 2/3."},
		{outcome: outcomeFardh, fardh: fraction{1, 2},
			reason: "A single daughter, with no son present, takes the fixed 1/2."},
	},
	models.DaughterOfSon: {
		{outcome: outcomeExcluded, requiredPresentAny: []models.HeirCategory{models.Son},
			reason: "A living son is a nearer descendant in the same line and excludes the son's daughter entirely."},
		{outcome: outcomeExcluded,
			specialCase: "daughters_two_plus_no_grandson",
			reason:      "Two or more daughters, with no equal-degree grandson, fully exhaust the 2/3 and exclude the son's daughter.",
		},
		{outcome: outcomeResiduary, requiredPresentAny: []models.HeirCategory{models.SonOfSon},
			reason: "Son's daughter becomes ashobah bi-l-ghair sharing 2:1 with a son's son of the same degree."},
		{outcome: outcomeFardh, fardh: fraction{1, 6}, requiredPresentAny: []models.HeirCategory{models.Daughter},
			reason: "Son's daughter takes 1/6 alongside a single daughter, completing the 2/3."},
		{outcome: outcomeFardh, fardh: fraction{2, 3}, minQuantity: 2,
			reason: "Two or more son's daughters, with no nearer child, jointly take the fixed 2/3."},
		{outcome: outcomeFardh, fardh: fraction{1, 2},
			reason: "A single son's daughter, with no nearer child, takes the fixed 1/2."},
	},
	models.FullSister: {
		{outcome: outcomeExcluded, requiredPresentAny: []models.HeirCategory{models.Father, models.Son, models.SonOfSon},
			reason: "Father, son, or son's son excludes the full sister from any share."},
		{outcome: outcomeResiduary,
			requiredPresentAny: []models.HeirCategory{models.Daughter, models.DaughterOfSon},
			requiredAbsentAll:  []models.HeirCategory{models.FullBrother},
			reason:             "Full sister becomes ashobah ma'al-ghair (residuary alongside daughters) when a daughter or son's daughter survives but no full brother does."},
		{outcome: outcomeResiduary, specialCase: "full_sibling_pair",
			reason: "Full sister shares the residue 2:1 with a full brother (ashobah bi-l-ghair)."},
		{outcome: outcomeFardh, fardh: fraction{2, 3}, minQuantity: 2,
			reason: "Two or more full sisters, with no full brother, jointly take the fixed 2/3."},
		{outcome: outcomeFardh, fardh: fraction{1, 2},
			reason: "A single full sister, with no full brother, takes the fixed 1/2."},
	},
	models.PaternalSister: {
		{outcome: outcomeExcluded,
			requiredPresentAny: []models.HeirCategory{models.Father, models.Son, models.SonOfSon, models.FullBrother},
			reason: "Father, son, son's son, or a full brother excludes the paternal sister."},
		{outcome: outcomeExcluded, minSiblings: 0,
			specialCase: "two_full_sisters_no_full_brother",
			reason:      "Two or more full sisters, with no full brother, exhaust the residuary line and exclude the paternal sister."},
		{outcome: outcomeResiduary,
			requiredPresentAny: []models.HeirCategory{models.Daughter, models.DaughterOfSon},
			requiredAbsentAll:  []models.HeirCategory{models.PaternalBrother},
			reason:             "Paternal sister becomes ashobah ma'al-ghair alongside a daughter or son's daughter, with no full or paternal brother present."},
		{outcome: outcomeResiduary, specialCase: "paternal_sibling_pair",
			reason: "Paternal sister shares the residue 2:1 with a paternal brother (ashobah bi-l-ghair)."},
		{outcome: outcomeFardh, fardh: fraction{1, 6}, specialCase: "one_full_sister",
			reason: "Paternal sister takes 1/6 alongside a single full sister, completing the 2/3."},
		{outcome: outcomeFardh, fardh: fraction{2, 3}, minQuantity: 2,
			reason: "Two or more paternal sisters, with no full sister and no brother, jointly take the fixed 2/3."},
		{outcome: outcomeFardh, fardh: fraction{1, 2},
			reason: "A single paternal sister, with no full sister and no brother, takes the fixed 1/2."},
	},
	models.MaternalBrother: {
		{outcome: outcomeExcluded,
			requiredPresentAny: []models.HeirCategory{models.Father, models.PaternalGrandfather, models.Son, models.Daughter, models.SonOfSon, models.DaughterOfSon},
			reason: "Father, paternal grandfather, any child, or any grandchild through a son excludes maternal siblings entirely."},
		{outcome: outcomeFardh, fardh: fraction{1, 3}, specialCase: "maternal_sibling_group_multi",
			reason: "Two or more maternal siblings (combined) jointly take 1/3, split equally regardless of sex."},
		{outcome: outcomeFardh, fardh: fraction{1, 6},
			reason: "A lone maternal sibling takes 1/6."},
	},
	models.MaternalSister: {
		{outcome: outcomeExcluded,
			requiredPresentAny: []models.HeirCategory{models.Father, models.PaternalGrandfather, models.Son, models.Daughter, models.SonOfSon, models.DaughterOfSon},
			reason: "Father, paternal grandfather, any child, or any grandchild through a son excludes maternal siblings entirely."},
		{outcome: outcomeFardh, fardh: fraction{1, 3}, specialCase: "maternal_sibling_group_multi",
			reason: "Two or more maternal siblings (combined) jointly take 1/3, split equally regardless of sex."},
		{outcome: outcomeFardh, fardh: fraction{1, 6},
			reason: "A lone maternal sibling takes 1/6."},
	},
}
