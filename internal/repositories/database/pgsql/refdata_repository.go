package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	"github.com/swapsdesk/tradebook/internal/models"
	"github.com/swapsdesk/tradebook/internal/utils/mapping"
)

type PgxBookRepository struct {
	BaseRepository
}

// NewPgxBookRepository creates a new repository for trading-book data.
func NewPgxBookRepository(pool *pgxpool.Pool) portsrepo.BookRepository {
	return &PgxBookRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookRepository = (*PgxBookRepository)(nil)

// FindBookByName resolves a book by name, case-insensitively.
func (r *PgxBookRepository) FindBookByName(ctx context.Context, name string) (*domain.Book, error) {
	query := `
		SELECT book_id, book_name, cost_center, active, created_at, created_by, last_updated_at, last_updated_by
		FROM books
		WHERE LOWER(book_name) = LOWER($1);
	`
	return r.scanBook(r.Pool.QueryRow(ctx, query, name), "name "+name)
}

// FindBookByID resolves a book by primary key.
func (r *PgxBookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	query := `
		SELECT book_id, book_name, cost_center, active, created_at, created_by, last_updated_at, last_updated_by
		FROM books
		WHERE book_id = $1;
	`
	return r.scanBook(r.Pool.QueryRow(ctx, query, bookID), "ID "+bookID)
}

// ListBooks retrieves all books ordered by name.
func (r *PgxBookRepository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	query := `
		SELECT book_id, book_name, cost_center, active, created_at, created_by, last_updated_at, last_updated_by
		FROM books
		ORDER BY book_name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query books", err)
	}
	defer rows.Close()

	books := []domain.Book{}
	for rows.Next() {
		book, err := scanBookRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan book row", err)
		}
		books = append(books, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating book rows", err)
	}
	return books, nil
}

// SaveBook inserts a book, or updates its mutable fields when the id exists.
func (r *PgxBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	modelBook := mapping.ToModelBook(book)
	query := `
		INSERT INTO books (book_id, book_name, cost_center, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (book_id) DO UPDATE
		SET book_name = EXCLUDED.book_name,
		    cost_center = EXCLUDED.cost_center,
		    active = EXCLUDED.active,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelBook.BookID,
		modelBook.BookName,
		nullableString(modelBook.CostCenter),
		modelBook.Active,
		modelBook.CreatedAt,
		modelBook.CreatedBy,
		modelBook.LastUpdatedAt,
		modelBook.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on book_name
			return fmt.Errorf("%w: book named %s already exists", apperrors.ErrDuplicate, modelBook.BookName)
		}
		return apperrors.NewAppError(500, "failed to save book "+modelBook.BookID, err)
	}
	return nil
}

func (r *PgxBookRepository) scanBook(row pgx.Row, descriptor string) (*domain.Book, error) {
	book, err := scanBookRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find book by "+descriptor, err)
	}
	return book, nil
}

func scanBookRow(row pgx.Row) (*domain.Book, error) {
	var m models.Book
	var costCenter sql.NullString
	err := row.Scan(
		&m.BookID,
		&m.BookName,
		&costCenter,
		&m.Active,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if costCenter.Valid {
		m.CostCenter = costCenter.String
	}
	book := mapping.ToDomainBook(m)
	return &book, nil
}

type PgxCounterpartyRepository struct {
	BaseRepository
}

// NewPgxCounterpartyRepository creates a new repository for counterparty data.
func NewPgxCounterpartyRepository(pool *pgxpool.Pool) portsrepo.CounterpartyRepository {
	return &PgxCounterpartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CounterpartyRepository = (*PgxCounterpartyRepository)(nil)

// FindCounterpartyByName resolves a counterparty by name, case-insensitively.
func (r *PgxCounterpartyRepository) FindCounterpartyByName(ctx context.Context, name string) (*domain.Counterparty, error) {
	query := `
		SELECT counterparty_id, name, active, created_at, created_by, last_updated_at, last_updated_by
		FROM counterparties
		WHERE LOWER(name) = LOWER($1);
	`
	var m models.Counterparty
	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&m.CounterpartyID,
		&m.Name,
		&m.Active,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find counterparty by name "+name, err)
	}
	cpty := mapping.ToDomainCounterparty(m)
	return &cpty, nil
}

// ListCounterparties retrieves all counterparties ordered by name.
func (r *PgxCounterpartyRepository) ListCounterparties(ctx context.Context) ([]domain.Counterparty, error) {
	query := `
		SELECT counterparty_id, name, active, created_at, created_by, last_updated_at, last_updated_by
		FROM counterparties
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query counterparties", err)
	}
	defer rows.Close()

	cptys := []domain.Counterparty{}
	for rows.Next() {
		var m models.Counterparty
		if err := rows.Scan(
			&m.CounterpartyID,
			&m.Name,
			&m.Active,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan counterparty row", err)
		}
		cptys = append(cptys, mapping.ToDomainCounterparty(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating counterparty rows", err)
	}
	return cptys, nil
}

// SaveCounterparty inserts a counterparty, or updates its mutable fields
// when the id exists.
func (r *PgxCounterpartyRepository) SaveCounterparty(ctx context.Context, cp domain.Counterparty) error {
	modelCpty := mapping.ToModelCounterparty(cp)
	query := `
		INSERT INTO counterparties (counterparty_id, name, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (counterparty_id) DO UPDATE
		SET name = EXCLUDED.name,
		    active = EXCLUDED.active,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCpty.CounterpartyID,
		modelCpty.Name,
		modelCpty.Active,
		modelCpty.CreatedAt,
		modelCpty.CreatedBy,
		modelCpty.LastUpdatedAt,
		modelCpty.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on name
			return fmt.Errorf("%w: counterparty named %s already exists", apperrors.ErrDuplicate, modelCpty.Name)
		}
		return apperrors.NewAppError(500, "failed to save counterparty "+modelCpty.CounterpartyID, err)
	}
	return nil
}
