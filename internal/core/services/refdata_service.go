package services

import (
	"context"
	"fmt"

	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	portssvc "github.com/swapsdesk/tradebook/internal/core/ports/services"
)

// refDataService exposes book and counterparty reference data.
type refDataService struct {
	bookRepo portsrepo.BookRepository
	cptyRepo portsrepo.CounterpartyRepository
}

// NewRefDataService creates a reference-data service.
func NewRefDataService(bookRepo portsrepo.BookRepository, cptyRepo portsrepo.CounterpartyRepository) portssvc.RefDataSvcFacade {
	return &refDataService{bookRepo: bookRepo, cptyRepo: cptyRepo}
}

func (s *refDataService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookRepo.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	return books, nil
}

func (s *refDataService) ListCounterparties(ctx context.Context) ([]domain.Counterparty, error) {
	cptys, err := s.cptyRepo.ListCounterparties(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing counterparties: %w", err)
	}
	return cptys, nil
}
