package dto

import "github.com/swapsdesk/tradebook/internal/core/domain"

// BookResponse is the API representation of a trading book.
type BookResponse struct {
	BookID     string `json:"bookID"`
	BookName   string `json:"bookName"`
	CostCenter string `json:"costCenter,omitempty"`
	Active     bool   `json:"active"`
}

// CounterpartyResponse is the API representation of a counterparty.
type CounterpartyResponse struct {
	CounterpartyID string `json:"counterpartyID"`
	Name           string `json:"name"`
	Active         bool   `json:"active"`
}

// ToBookResponses converts domain books to their API representation.
func ToBookResponses(books []domain.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = BookResponse{BookID: b.BookID, BookName: b.BookName, CostCenter: b.CostCenter, Active: b.Active}
	}
	return out
}

// ToCounterpartyResponses converts domain counterparties to their API representation.
func ToCounterpartyResponses(cps []domain.Counterparty) []CounterpartyResponse {
	out := make([]CounterpartyResponse, len(cps))
	for i, cp := range cps {
		out[i] = CounterpartyResponse{CounterpartyID: cp.CounterpartyID, Name: cp.Name, Active: cp.Active}
	}
	return out
}
