package mapping

import (
	"github.com/swapsdesk/tradebook/internal/core/domain"
	"github.com/swapsdesk/tradebook/internal/models"
)

// ToModelTrade converts a domain Trade to a model Trade. Legs are mapped
// separately; book and counterparty travel as foreign keys only.
func ToModelTrade(d domain.Trade) models.Trade {
	return models.Trade{
		ID:               d.ID,
		TradeID:          d.TradeID,
		Version:          d.Version,
		Active:           d.Active,
		Status:           models.TradeStatus(d.Status),
		TradeType:        d.TradeType,
		TradeDate:        d.TradeDate,
		StartDate:        d.StartDate,
		MaturityDate:     d.MaturityDate,
		BookID:           d.BookID,
		CounterpartyID:   d.CounterpartyID,
		TraderUserName:   d.TraderUserName,
		InputterUserName: d.InputterUserName,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrade converts a model Trade to a domain Trade. The book and
// counterparty names come from the reference-data join.
func ToDomainTrade(m models.Trade, bookName, counterpartyName string) domain.Trade {
	return domain.Trade{
		ID:               m.ID,
		TradeID:          m.TradeID,
		Version:          m.Version,
		Active:           m.Active,
		Status:           domain.TradeStatus(m.Status),
		TradeType:        m.TradeType,
		TradeDate:        m.TradeDate,
		StartDate:        m.StartDate,
		MaturityDate:     m.MaturityDate,
		BookID:           m.BookID,
		BookName:         bookName,
		CounterpartyID:   m.CounterpartyID,
		CounterpartyName: counterpartyName,
		TraderUserName:   m.TraderUserName,
		InputterUserName: m.InputterUserName,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTradeLeg converts a domain TradeLeg to a model TradeLeg
func ToModelTradeLeg(d domain.TradeLeg) models.TradeLeg {
	return models.TradeLeg{
		LegID:          d.LegID,
		TradeRowID:     d.TradeRowID,
		Notional:       d.Notional,
		Rate:           d.Rate,
		LegType:        string(d.LegType),
		PayReceiveFlag: string(d.PayReceiveFlag),
		IndexName:      d.IndexName,
		Currency:       d.Currency,
		Schedule:       d.Schedule,
	}
}

// ToDomainTradeLeg converts a model TradeLeg to a domain TradeLeg
func ToDomainTradeLeg(m models.TradeLeg) domain.TradeLeg {
	return domain.TradeLeg{
		LegID:          m.LegID,
		TradeRowID:     m.TradeRowID,
		Notional:       m.Notional,
		Rate:           m.Rate,
		LegType:        domain.LegType(m.LegType),
		PayReceiveFlag: domain.PayReceive(m.PayReceiveFlag),
		IndexName:      m.IndexName,
		Currency:       m.Currency,
		Schedule:       m.Schedule,
	}
}

// ToModelCashflow converts a domain Cashflow to a model Cashflow
func ToModelCashflow(d domain.Cashflow) models.Cashflow {
	return models.Cashflow{
		CashflowID:  d.CashflowID,
		LegID:       d.LegID,
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		Value:       d.Value,
		Currency:    d.Currency,
		RateFixed:   d.RateFixed,
	}
}

// ToDomainCashflow converts a model Cashflow to a domain Cashflow
func ToDomainCashflow(m models.Cashflow) domain.Cashflow {
	return domain.Cashflow{
		CashflowID:  m.CashflowID,
		LegID:       m.LegID,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		Value:       m.Value,
		Currency:    m.Currency,
		RateFixed:   m.RateFixed,
	}
}

// ToDomainCashflowSlice converts a slice of model Cashflows to domain Cashflows
func ToDomainCashflowSlice(ms []models.Cashflow) []domain.Cashflow {
	ds := make([]domain.Cashflow, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashflow(m)
	}
	return ds
}
