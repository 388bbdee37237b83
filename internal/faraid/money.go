package faraid

import (
	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

// moneyScale is the rounding precision applied at the monetisation
// boundary. Everything upstream of this file stays on
// exact integer saham; decimal only appears here.
const moneyScale = 2

// monetize converts a share fraction of the estate into the three
// money-facing figures a result line carries. The amount is computed as
// tirkah*saham/ashl in one division rather than via an intermediate
// rounded fraction: pre-rounding saham/ashl (a non-terminating decimal
// for denominators like 3 or 6) and then multiplying by a large tirkah
// would amplify that rounding error far past a cent.
func monetize(tirkah decimal.Decimal, saham, ashl int64, quantity int) (amount, perCapita, percentage decimal.Decimal) {
	if ashl == 0 {
		return decimal.Zero, decimal.Zero, decimal.Zero
	}
	amount = tirkah.Mul(decimal.NewFromInt(saham)).DivRound(decimal.NewFromInt(ashl), moneyScale)
	percentage = decimal.NewFromInt(saham).Mul(decimal.NewFromInt(100)).DivRound(decimal.NewFromInt(ashl), moneyScale)
	if quantity <= 0 {
		quantity = 1
	}
	perCapita = amount.DivRound(decimal.NewFromInt(int64(quantity)), moneyScale)
	return amount, perCapita, percentage
}

// buildHeirShare assembles the display-facing line for one resolved
// heir, combining taxonomy metadata with its final saham.
func buildHeirShare(r heirResult, saham, ashl int64, tirkah decimal.Decimal) models.HeirShare {
	share := models.HeirShare{
		Heir:     models.Info(r.Category),
		Quantity: r.Quantity,
		Reason:   r.Reason,
	}
	if r.Excluded {
		share.IsExcluded = true
		share.ExclusionReason = r.Reason
		share.ShareAmount = decimal.Zero
		share.PerCapitaAmount = decimal.Zero
		share.Percentage = decimal.Zero
		share.ShareFraction = "0"
		return share
	}
	if r.HasFardh {
		share.Fardh = r.Fardh.String()
	}
	share.Saham = saham
	share.ShareFraction = fractionString(saham, ashl)
	share.ShareAmount, share.PerCapitaAmount, share.Percentage = monetize(tirkah, saham, ashl, r.Quantity)
	return share
}
