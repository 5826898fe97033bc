package models

// Book represents a trading book.
type Book struct {
	BookID     string `json:"bookID"` // Primary Key (UUID)
	BookName   string `json:"bookName"`
	CostCenter string `json:"costCenter"` // Nullable
	Active     bool   `json:"active"`
	AuditFields
}
