package dto

// SettlementInstructionsUpdateRequest updates the settlement instructions
// attached to a trade.
type SettlementInstructionsUpdateRequest struct {
	FieldValue string `json:"fieldValue" binding:"required,min=10,max=500"`
}

// SettlementInstructionsResponse returns the active settlement instructions
// for a trade.
type SettlementInstructionsResponse struct {
	TradeID    int64  `json:"tradeID"`
	FieldValue string `json:"fieldValue"`
	Version    int    `json:"version"`
}
