package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/dto"
)

// TradeLegValidator checks the pairwise consistency of a trade's two legs.
// Leg cardinality is enforced by the caller (TradeValidator); the input
// must contain exactly two legs.
type TradeLegValidator struct{}

// NewTradeLegValidator creates a TradeLegValidator.
func NewTradeLegValidator() *TradeLegValidator {
	return &TradeLegValidator{}
}

// ValidateTradeLegConsistency evaluates every leg-pair rule independently
// and reports all violations under the tradeLegs field. Nothing
// short-circuits: a fixed-rate violation, a floating-index violation and
// the pay/receive violation can all appear in one result.
func (v *TradeLegValidator) ValidateTradeLegConsistency(legs []dto.TradeLegRequest) *ValidationResult {
	result := NewValidationResult()

	leg1, leg2 := legs[0], legs[1]

	if strings.EqualFold(leg1.PayReceiveFlag, leg2.PayReceiveFlag) {
		result.AddError("tradeLegs", "Legs must have opposite pay/receive flags")
	}

	for _, leg := range legs {
		if strings.EqualFold(leg.LegType, string(domain.LegTypeFloating)) && strings.TrimSpace(leg.IndexName) == "" {
			result.AddError("tradeLegs", "Floating legs must have an index specified")
		}
		if strings.EqualFold(leg.LegType, string(domain.LegTypeFixed)) && (leg.Rate == nil || leg.Rate.LessThanOrEqual(decimal.Zero)) {
			result.AddError("tradeLegs", "Fixed legs must have rate greater than 0")
		}
	}

	return result
}
