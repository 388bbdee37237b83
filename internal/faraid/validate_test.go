package faraid

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/waris/faraid-engine/pkg/models"
)

func TestValidateInputs(t *testing.T) {
	valid := []models.HeirInput{{Category: models.Son, Quantity: 1}}

	cases := []struct {
		name    string
		tirkah  decimal.Decimal
		heirs   []models.HeirInput
		wantErr bool
		kind    ErrorKind
	}{
		{"valid input", decimal.NewFromInt(100), valid, false, ""},
		{"zero tirkah", decimal.Zero, valid, true, InvalidInput},
		{"negative tirkah", decimal.NewFromInt(-1), valid, true, InvalidInput},
		{"no heirs", decimal.NewFromInt(100), nil, true, InvalidInput},
		{"unknown category", decimal.NewFromInt(100), []models.HeirInput{{Category: 0, Quantity: 1}}, true, InvalidInput},
		{"category above range", decimal.NewFromInt(100), []models.HeirInput{{Category: 26, Quantity: 1}}, true, InvalidInput},
		{"non-positive quantity", decimal.NewFromInt(100), []models.HeirInput{{Category: models.Son, Quantity: 0}}, true, InvalidInput},
		{"duplicate category", decimal.NewFromInt(100), []models.HeirInput{
			{Category: models.Son, Quantity: 1}, {Category: models.Son, Quantity: 2},
		}, true, InvalidInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validateInputs(c.tirkah, c.heirs)
			if c.wantErr && err == nil {
				t.Fatalf("expected an error, got nil")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if c.wantErr {
				ce, ok := err.(*CalcError)
				if !ok {
					t.Fatalf("expected *CalcError, got %T", err)
				}
				if ce.Kind != c.kind {
					t.Errorf("error kind = %s, want %s", ce.Kind, c.kind)
				}
			}
		})
	}
}
