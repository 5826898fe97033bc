package repositories

import (
	"context"

	"github.com/swapsdesk/tradebook/internal/core/domain"
)

// BookRepository defines operations over trading-book reference data.
type BookRepository interface {
	// FindBookByName resolves a book by name (case-insensitive).
	// Returns apperrors.ErrNotFound when no such book exists.
	FindBookByName(ctx context.Context, name string) (*domain.Book, error)

	// FindBookByID resolves a book by primary key.
	FindBookByID(ctx context.Context, bookID string) (*domain.Book, error)

	// ListBooks retrieves all books.
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// SaveBook inserts or updates a book.
	SaveBook(ctx context.Context, book domain.Book) error
}

// CounterpartyRepository defines operations over counterparty reference data.
type CounterpartyRepository interface {
	// FindCounterpartyByName resolves a counterparty by name (case-insensitive).
	// Returns apperrors.ErrNotFound when no such counterparty exists.
	FindCounterpartyByName(ctx context.Context, name string) (*domain.Counterparty, error)

	// ListCounterparties retrieves all counterparties.
	ListCounterparties(ctx context.Context) ([]domain.Counterparty, error)

	// SaveCounterparty inserts or updates a counterparty.
	SaveCounterparty(ctx context.Context, cp domain.Counterparty) error
}
