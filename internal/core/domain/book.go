package domain

// Book is the trading book a trade is allocated to.
type Book struct {
	BookID     string `json:"bookID"` // Primary key (UUID)
	BookName   string `json:"bookName"`
	CostCenter string `json:"costCenter,omitempty"`
	Active     bool   `json:"active"`
	AuditFields
}
