package mapping

import (
	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/models"
)

// ToModelBook converts a domain Book to a model Book
func ToModelBook(d domain.Book) models.Book {
	return models.Book{
		BookID:      d.BookID,
		BookName:    d.BookName,
		CostCenter:  d.CostCenter,
		Active:      d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBook converts a model Book to a domain Book
func ToDomainBook(m models.Book) domain.Book {
	return domain.Book{
		BookID:      m.BookID,
		BookName:    m.BookName,
		CostCenter:  m.CostCenter,
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCounterparty converts a domain Counterparty to a model Counterparty
func ToModelCounterparty(d domain.Counterparty) models.Counterparty {
	return models.Counterparty{
		CounterpartyID: d.CounterpartyID,
		Name:           d.Name,
		Active:         d.Active,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCounterparty converts a model Counterparty to a domain Counterparty
func ToDomainCounterparty(m models.Counterparty) domain.Counterparty {
	return domain.Counterparty{
		CounterpartyID: m.CounterpartyID,
		Name:           m.Name,
		Active:         m.Active,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
