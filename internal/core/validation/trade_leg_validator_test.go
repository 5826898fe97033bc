package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/swapsdesk/tradebook/internal/core/validation"
	"github.com/swapsdesk/tradebook/internal/dto"
)

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func fixedLeg(flag string, rate *decimal.Decimal) dto.TradeLegRequest {
	return dto.TradeLegRequest{
		Notional:       decimal.NewFromInt(1000000),
		Rate:           rate,
		LegType:        "Fixed",
		PayReceiveFlag: flag,
		Currency:       "USD",
		Schedule:       "3M",
	}
}

func floatingLeg(flag, indexName string) dto.TradeLegRequest {
	return dto.TradeLegRequest{
		Notional:       decimal.NewFromInt(1000000),
		LegType:        "Floating",
		PayReceiveFlag: flag,
		IndexName:      indexName,
		Currency:       "USD",
		Schedule:       "3M",
	}
}

func TestValidateTradeLegConsistency_ValidPair(t *testing.T) {
	v := validation.NewTradeLegValidator()

	result := v.ValidateTradeLegConsistency([]dto.TradeLegRequest{
		fixedLeg("Pay", decPtr(3.5)),
		floatingLeg("Receive", "SOFR"),
	})

	assert.True(t, result.IsValid())
	assert.Empty(t, result.Errors())
}

func TestValidateTradeLegConsistency_SamePayReceiveFlags(t *testing.T) {
	v := validation.NewTradeLegValidator()

	result := v.ValidateTradeLegConsistency([]dto.TradeLegRequest{
		fixedLeg("Pay", decPtr(3.5)),
		floatingLeg("pay", "SOFR"), // Case differences must not mask the violation
	})

	assert.False(t, result.IsValid())
	assert.Contains(t, result.Errors()["tradeLegs"], "Legs must have opposite pay/receive flags")
}

func TestValidateTradeLegConsistency_FloatingWithoutIndex(t *testing.T) {
	v := validation.NewTradeLegValidator()

	result := v.ValidateTradeLegConsistency([]dto.TradeLegRequest{
		fixedLeg("Pay", decPtr(3.5)),
		floatingLeg("Receive", "   "),
	})

	assert.False(t, result.IsValid())
	assert.Contains(t, result.Errors()["tradeLegs"], "Floating legs must have an index specified")
}

func TestValidateTradeLegConsistency_FixedRateMissingOrNonPositive(t *testing.T) {
	v := validation.NewTradeLegValidator()

	tests := []struct {
		name string
		rate *decimal.Decimal
	}{
		{"nil rate", nil},
		{"zero rate", decPtr(0)},
		{"negative rate", decPtr(-1.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateTradeLegConsistency([]dto.TradeLegRequest{
				fixedLeg("Pay", tt.rate),
				floatingLeg("Receive", "SOFR"),
			})
			assert.False(t, result.IsValid())
			assert.Contains(t, result.Errors()["tradeLegs"], "Fixed legs must have rate greater than 0")
		})
	}
}

func TestValidateTradeLegConsistency_AllViolationsReportedTogether(t *testing.T) {
	v := validation.NewTradeLegValidator()

	// Same direction, floating without index, fixed without rate.
	result := v.ValidateTradeLegConsistency([]dto.TradeLegRequest{
		fixedLeg("Pay", nil),
		floatingLeg("Pay", ""),
	})

	assert.False(t, result.IsValid())
	messages := result.Errors()["tradeLegs"]
	assert.Len(t, messages, 3)
	assert.Contains(t, messages, "Legs must have opposite pay/receive flags")
	assert.Contains(t, messages, "Floating legs must have an index specified")
	assert.Contains(t, messages, "Fixed legs must have rate greater than 0")
}

func TestValidateTradeLegConsistency_TwoFixedLegsAllowed(t *testing.T) {
	v := validation.NewTradeLegValidator()

	result := v.ValidateTradeLegConsistency([]dto.TradeLegRequest{
		fixedLeg("Pay", decPtr(2.0)),
		fixedLeg("Receive", decPtr(2.5)),
	})

	assert.True(t, result.IsValid())
}
