package models

// HeirCategory is the closed enumeration of the 25 canonical heir
// categories recognised by the engine. The numbering puts son, father,
// husband and wife first (1–4), then the remaining male categories
// (5–15), then the remaining female categories (16–23), then the two
// manumitters (24–25).
type HeirCategory int

const (
	Son                   HeirCategory = 1
	Father                HeirCategory = 2
	Husband               HeirCategory = 3
	Wife                  HeirCategory = 4
	SonOfSon              HeirCategory = 5 // grandson via son
	PaternalGrandfather   HeirCategory = 6
	FullBrother           HeirCategory = 7
	PaternalBrother       HeirCategory = 8
	MaternalBrother       HeirCategory = 9
	NephewFullBrotherSon  HeirCategory = 10
	NephewPaternalBroSon  HeirCategory = 11
	FullUncle             HeirCategory = 12
	PaternalUncle         HeirCategory = 13
	FullUncleSon          HeirCategory = 14
	PaternalUncleSon      HeirCategory = 15
	Daughter              HeirCategory = 16
	DaughterOfSon         HeirCategory = 17 // granddaughter via son
	Mother                HeirCategory = 18
	MaternalGrandmother   HeirCategory = 19
	PaternalGrandmother   HeirCategory = 20
	FullSister            HeirCategory = 21
	PaternalSister        HeirCategory = 22
	MaternalSister        HeirCategory = 23
	MaleManumitter        HeirCategory = 24
	FemaleManumitter      HeirCategory = 25
)

// AllCategories lists every recognised category in identifier order.
var AllCategories = [...]HeirCategory{
	Son, Father, Husband, Wife, SonOfSon, PaternalGrandfather,
	FullBrother, PaternalBrother, MaternalBrother,
	NephewFullBrotherSon, NephewPaternalBroSon,
	FullUncle, PaternalUncle, FullUncleSon, PaternalUncleSon,
	Daughter, DaughterOfSon, Mother, MaternalGrandmother, PaternalGrandmother,
	FullSister, PaternalSister, MaternalSister,
	MaleManumitter, FemaleManumitter,
}

// HeirNames holds the localised and script-native display names for
// each category, keyed by its numeric identifier.
type HeirNames struct {
	Local  string
	Script string
}

// HeirDisplayNames is the label-lookup table clients use to render
// heir categories without hardcoding translations.
var HeirDisplayNames = map[HeirCategory]HeirNames{
	Son:                  {"Son", "ابن"},
	Father:               {"Father", "أب"},
	Husband:              {"Husband", "زوج"},
	Wife:                 {"Wife", "زوجة"},
	SonOfSon:             {"Son's Son", "ابن ابن"},
	PaternalGrandfather:  {"Paternal Grandfather", "جد"},
	FullBrother:          {"Full Brother", "أخ لأبوين"},
	PaternalBrother:      {"Paternal Brother", "أخ لأب"},
	MaternalBrother:      {"Maternal Brother", "أخ لأم"},
	NephewFullBrotherSon: {"Full Brother's Son", "ابن أخ لأبوين"},
	NephewPaternalBroSon: {"Paternal Brother's Son", "ابن أخ لأب"},
	FullUncle:            {"Full Paternal Uncle", "عم لأبوين"},
	PaternalUncle:        {"Paternal Uncle (half)", "عم لأب"},
	FullUncleSon:         {"Full Uncle's Son", "ابن عم لأبوين"},
	PaternalUncleSon:     {"Paternal Uncle's Son", "ابن عم لأب"},
	Daughter:             {"Daughter", "بنت"},
	DaughterOfSon:        {"Son's Daughter", "بنت ابن"},
	Mother:               {"Mother", "أم"},
	MaternalGrandmother:  {"Maternal Grandmother", "جدة من الأم"},
	PaternalGrandmother:  {"Paternal Grandmother", "جدة من الأب"},
	FullSister:           {"Full Sister", "أخت لأبوين"},
	PaternalSister:       {"Paternal Sister", "أخت لأب"},
	MaternalSister:       {"Maternal Sister", "أخت لأم"},
	MaleManumitter:       {"Male Manumitter", "معتق"},
	FemaleManumitter:     {"Female Manumitter", "معتقة"},
}

// Valid reports whether id is one of the 25 recognised categories.
func (c HeirCategory) Valid() bool {
	return c >= 1 && c <= 25
}

// IsMale reports whether the category denotes a male heir. Used for
// the 2:1 muqasama weighting in residuary distribution.
func (c HeirCategory) IsMale() bool {
	switch c {
	case Son, Father, Husband, SonOfSon, PaternalGrandfather,
		FullBrother, PaternalBrother, MaternalBrother,
		NephewFullBrotherSon, NephewPaternalBroSon,
		FullUncle, PaternalUncle, FullUncleSon, PaternalUncleSon,
		MaleManumitter:
		return true
	default:
		return false
	}
}

// HeirInput is one line of the caller-supplied heir set: a category
// paired with how many heirs of that category survive. Quantities
// matter only for per-head division.
type HeirInput struct {
	Category HeirCategory `json:"categoryId"`
	Quantity int          `json:"quantity"`
}

// HeirInfo is the display-facing projection of a HeirCategory, used in
// result payloads so API clients don't need the label table themselves.
type HeirInfo struct {
	ID         HeirCategory `json:"id"`
	NameLocal  string       `json:"nameLocal"`
	NameScript string       `json:"nameScript"`
}

// Info resolves the display-facing projection for a category.
func Info(c HeirCategory) HeirInfo {
	n := HeirDisplayNames[c]
	return HeirInfo{ID: c, NameLocal: n.Local, NameScript: n.Script}
}
