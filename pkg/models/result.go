package models

import "github.com/shopspring/decimal"

// Status classifies how the final ashl was reached.
type Status string

const (
	StatusAdil    Status = "adil"
	StatusAul     Status = "aul"
	StatusRadd    Status = "radd"
	StatusVariant Status = "variant"
)

// DenominatorRelation is the classical four-way relation between a set
// of fardh denominators.
type DenominatorRelation string

const (
	RelationTamathul DenominatorRelation = "tamathul"
	RelationTadakhul DenominatorRelation = "tadakhul"
	RelationTawafuq  DenominatorRelation = "tawafuq"
	RelationTabayun  DenominatorRelation = "tabayun"
)

// HeirShare is the per-heir line of a calculation result.
type HeirShare struct {
	Heir            HeirInfo        `json:"heir"`
	Quantity        int             `json:"quantity"`
	Fardh           string          `json:"fardh,omitempty"`
	ShareFraction   string          `json:"shareFraction"`
	Saham           int64           `json:"saham"`
	Reason          string          `json:"reason"`
	ShareAmount     decimal.Decimal `json:"shareAmount"`
	PerCapitaAmount decimal.Decimal `json:"perCapitaAmount"`
	Percentage      decimal.Decimal `json:"percentage"`
	IsExcluded      bool            `json:"isExcluded"`
	ExclusionReason string          `json:"exclusionReason,omitempty"`
}

// CalculationResult is the engine's value-typed output.
type CalculationResult struct {
	Tirkah       decimal.Decimal `json:"tirkah"`
	InitialAshl  int64           `json:"initialAshl"`
	FinalAshl    int64           `json:"finalAshl"`
	TotalSaham   int64           `json:"totalSaham"`
	Status       Status          `json:"status"`
	IsAul        bool            `json:"isAul"`
	IsRadd       bool            `json:"isRadd"`
	IsVariant    bool            `json:"isVariant"`
	VariantName  string          `json:"variantName,omitempty"`
	Shares       []HeirShare     `json:"shares"`
	Notes        []string        `json:"notes"`

	// HasUnclaimedResidue marks the edge case where radd's shortfall
	// cannot be returned to any named heir (a lone spouse, which never
	// benefits from radd, with no other fixed-share or residuary holder
	// present). UnclaimedSaham is that residue, on FinalAshl.
	HasUnclaimedResidue bool  `json:"hasUnclaimedResidue,omitempty"`
	UnclaimedSaham      int64 `json:"unclaimedSaham,omitempty"`
}

// HamlScenarios is the two-keyed result returned for an unborn heir
//: one computation assuming a son, one assuming a
// daughter.
type HamlScenarios struct {
	IfSon      CalculationResult `json:"ifSon"`
	IfDaughter CalculationResult `json:"ifDaughter"`
}

// KhuntsaScenarios is the two-keyed result for an heir of indeterminate
// sex: one computation classifying the heir as male, one as female.
type KhuntsaScenarios struct {
	IfMale   CalculationResult `json:"ifMale"`
	IfFemale CalculationResult `json:"ifFemale"`
}

// DeceasedCase is one decedent's input for a Gharqa (simultaneous
// death) batch: their own heir set and estate, computed independently
// of the others since cross-inheritance between them is forbidden.
type DeceasedCase struct {
	Name   string      `json:"name"`
	Tirkah decimal.Decimal `json:"tirkah"`
	Heirs  []HeirInput `json:"heirs"`
}

// MunasakhotLevel is one generation's input for a Munasakhot (serial
// death before partition) chain: the decedent's own tirkah, which may
// already include shares inherited from the previous level.
type MunasakhotLevel struct {
	Level  int         `json:"level"`
	Name   string      `json:"name"`
	Tirkah decimal.Decimal `json:"tirkah"`
	Heirs  []HeirInput `json:"heirs"`
}
