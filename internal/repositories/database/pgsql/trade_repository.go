package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	"github.com/swapsdesk/tradebook/internal/models"
	"github.com/swapsdesk/tradebook/internal/utils/mapping"
	"github.com/swapsdesk/tradebook/internal/utils/pagination"
)

// tradeSelectColumns is the column list shared by every trade query. Book
// and counterparty names come from the reference-data join.
const tradeSelectColumns = `
	t.id, t.trade_id, t.version, t.active, t.status, t.trade_type,
	t.trade_date, t.start_date, t.maturity_date,
	t.book_id, b.book_name, t.counterparty_id, c.name,
	t.trader_user_name, t.inputter_user_name,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
`

const tradeFromClause = `
	FROM trades t
	JOIN books b ON t.book_id = b.book_id
	JOIN counterparties c ON t.counterparty_id = c.counterparty_id
`

type PgxTradeRepository struct {
	BaseRepository
}

// NewPgxTradeRepository creates a new repository for trade, leg and
// cashflow data.
func NewPgxTradeRepository(pool *pgxpool.Pool) portsrepo.TradeRepositoryFacade {
	return &PgxTradeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTradeRepository implements portsrepo.TradeRepositoryFacade
var _ portsrepo.TradeRepositoryFacade = (*PgxTradeRepository)(nil)

// NextTradeID allocates the next business key from the sequence.
func (r *PgxTradeRepository) NextTradeID(ctx context.Context) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `SELECT nextval('trade_business_id_seq');`).Scan(&id)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate trade id", err)
	}
	return id, nil
}

// SaveNewTrade persists the version row and its legs and cashflows in one
// database transaction.
func (r *PgxTradeRepository) SaveNewTrade(ctx context.Context, trade domain.Trade) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertTradeVersion(ctx, tx, trade); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// AmendTrade deactivates the previous version and inserts the amended one
// atomically. The deactivation is conditional on (trade_id, version,
// active); losing a concurrent amendment race yields ErrConflict and no
// rows are persisted.
func (r *PgxTradeRepository) AmendTrade(ctx context.Context, previous domain.Trade, amended domain.Trade) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deactivateQuery := `
		UPDATE trades
		SET active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE trade_id = $3 AND version = $4 AND active;
	`
	tag, err := tx.Exec(ctx, deactivateQuery,
		amended.CreatedAt,
		amended.CreatedBy,
		previous.TradeID,
		previous.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate trade version "+strconv.FormatInt(previous.TradeID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	if err := r.insertTradeVersion(ctx, tx, amended); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateTradeStatus transitions the status of the active version in place.
func (r *PgxTradeRepository) UpdateTradeStatus(ctx context.Context, tradeID int64, version int, status domain.TradeStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE trades
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE trade_id = $4 AND version = $5 AND active;
	`
	tag, err := r.Pool.Exec(ctx, query, status, updatedAt, updatedBy, tradeID, version)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of trade "+strconv.FormatInt(tradeID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// insertTradeVersion writes the trade row, then its legs and cashflows via
// a single batch, all on the supplied transaction.
func (r *PgxTradeRepository) insertTradeVersion(ctx context.Context, tx pgx.Tx, trade domain.Trade) error {
	modelTrade := mapping.ToModelTrade(trade)
	tradeQuery := `
		INSERT INTO trades (
			id, trade_id, version, active, status, trade_type,
			trade_date, start_date, maturity_date, book_id, counterparty_id,
			trader_user_name, inputter_user_name,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, tradeQuery,
		modelTrade.ID,
		modelTrade.TradeID,
		modelTrade.Version,
		modelTrade.Active,
		modelTrade.Status,
		nullableString(modelTrade.TradeType),
		modelTrade.TradeDate,
		modelTrade.StartDate,
		modelTrade.MaturityDate,
		modelTrade.BookID,
		modelTrade.CounterpartyID,
		modelTrade.TraderUserName,
		modelTrade.InputterUserName,
		modelTrade.CreatedAt,
		modelTrade.CreatedBy,
		modelTrade.LastUpdatedAt,
		modelTrade.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert trade "+modelTrade.ID, err)
	}

	batch := &pgx.Batch{}
	legQuery := `
		INSERT INTO trade_legs (leg_id, trade_row_id, notional, rate, leg_type, pay_receive_flag, index_name, currency, calculation_schedule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	cashflowQuery := `
		INSERT INTO cashflows (cashflow_id, leg_id, period_start, period_end, value, currency, rate_fixed)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, leg := range trade.Legs {
		modelLeg := mapping.ToModelTradeLeg(leg)
		batch.Queue(legQuery,
			modelLeg.LegID,
			modelLeg.TradeRowID,
			modelLeg.Notional,
			modelLeg.Rate,
			modelLeg.LegType,
			modelLeg.PayReceiveFlag,
			nullableString(modelLeg.IndexName),
			modelLeg.Currency,
			modelLeg.Schedule,
		)
		for _, cf := range leg.Cashflows {
			modelCf := mapping.ToModelCashflow(cf)
			batch.Queue(cashflowQuery,
				modelCf.CashflowID,
				modelCf.LegID,
				modelCf.PeriodStart,
				modelCf.PeriodEnd,
				modelCf.Value,
				modelCf.Currency,
				modelCf.RateFixed,
			)
		}
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute leg batch for trade "+modelTrade.ID, err)
	}
	return nil
}

// FindActiveByTradeID retrieves the single active version for a business
// key with its legs and cashflows.
func (r *PgxTradeRepository) FindActiveByTradeID(ctx context.Context, tradeID int64) (*domain.Trade, error) {
	query := `SELECT ` + tradeSelectColumns + tradeFromClause + `WHERE t.trade_id = $1 AND t.active;`

	row := r.Pool.QueryRow(ctx, query, tradeID)
	trade, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find trade "+strconv.FormatInt(tradeID, 10), err)
	}

	if err := r.attachLegs(ctx, []*domain.Trade{trade}); err != nil {
		return nil, err
	}
	return trade, nil
}

// ListActiveTrades retrieves a page of active trades ordered by business
// key, using token-based keyset pagination.
func (r *PgxTradeRepository) ListActiveTrades(ctx context.Context, limit int, nextToken *string) ([]domain.Trade, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row decides whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + tradeSelectColumns + tradeFromClause + `WHERE t.active`
	orderByClause := `ORDER BY t.trade_id ASC`

	args := []interface{}{}
	cursorClause := ""
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause = ` AND t.trade_id > $1`
		args = append(args, cursor.LastTradeID)
	}

	query := baseQuery + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list trades", err)
	}
	trades, err := collectTrades(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(trades) > limit {
		trades = trades[:limit]
		token, encodeErr := pagination.EncodeToken(pagination.TradeCursor{LastTradeID: trades[limit-1].TradeID})
		if encodeErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to encode pagination token", encodeErr)
		}
		nextTokenVal = &token
	}

	if err := r.attachLegsToSlice(ctx, trades); err != nil {
		return nil, nil, err
	}
	return trades, nextTokenVal, nil
}

// SearchTrades retrieves active trades matching the criteria. Supplied
// criteria are ANDed; name matches are case-insensitive.
func (r *PgxTradeRepository) SearchTrades(ctx context.Context, criteria portsrepo.TradeSearchCriteria) ([]domain.Trade, error) {
	query := `SELECT ` + tradeSelectColumns + tradeFromClause + `WHERE t.active`
	args := []interface{}{}

	// Each clause carries a single ? standing in for the next placeholder.
	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		placeholder := "$" + strconv.Itoa(len(args))
		query += " AND " + strings.Replace(clause, "?", placeholder, 1)
	}

	if criteria.CounterpartyName != "" {
		addCondition("LOWER(c.name) = LOWER(?)", criteria.CounterpartyName)
	}
	if criteria.BookName != "" {
		addCondition("LOWER(b.book_name) = LOWER(?)", criteria.BookName)
	}
	if criteria.Trader != "" {
		addCondition("LOWER(t.trader_user_name) = LOWER(?)", criteria.Trader)
	}
	if criteria.Status != "" {
		addCondition("UPPER(t.status) = UPPER(?)", criteria.Status)
	}
	if criteria.TradeDateStart != nil {
		addCondition("t.trade_date >= ?", *criteria.TradeDateStart)
	}
	if criteria.TradeDateEnd != nil {
		addCondition("t.trade_date <= ?", *criteria.TradeDateEnd)
	}

	query += " ORDER BY t.trade_id ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search trades", err)
	}
	trades, err := collectTrades(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachLegsToSlice(ctx, trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// FindActiveByTrader retrieves all active trades owned by a trader.
func (r *PgxTradeRepository) FindActiveByTrader(ctx context.Context, traderUserName string) ([]domain.Trade, error) {
	query := `SELECT ` + tradeSelectColumns + tradeFromClause + `
		WHERE t.active AND LOWER(t.trader_user_name) = LOWER($1)
		ORDER BY t.trade_id ASC;`

	rows, err := r.Pool.Query(ctx, query, traderUserName)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find trades for trader "+traderUserName, err)
	}
	trades, err := collectTrades(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachLegsToSlice(ctx, trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// FindActiveByBookID retrieves all active trades allocated to a book.
func (r *PgxTradeRepository) FindActiveByBookID(ctx context.Context, bookID string) ([]domain.Trade, error) {
	query := `SELECT ` + tradeSelectColumns + tradeFromClause + `
		WHERE t.active AND t.book_id = $1
		ORDER BY t.trade_id ASC;`

	rows, err := r.Pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find trades for book "+bookID, err)
	}
	trades, err := collectTrades(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachLegsToSlice(ctx, trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// CountByTraderAndTradeDate counts a trader's active trades dealt on a
// calendar date.
func (r *PgxTradeRepository) CountByTraderAndTradeDate(ctx context.Context, traderUserName string, tradeDate time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM trades t
		WHERE t.active AND LOWER(t.trader_user_name) = LOWER($1) AND t.trade_date::date = $2::date;
	`
	var count int64
	if err := r.Pool.QueryRow(ctx, query, traderUserName, tradeDate).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count trades for trader "+traderUserName, err)
	}
	return count, nil
}

// attachLegs loads legs and cashflows for the given trades in two queries.
func (r *PgxTradeRepository) attachLegs(ctx context.Context, trades []*domain.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	rowIDs := make([]string, len(trades))
	byRowID := make(map[string]*domain.Trade, len(trades))
	for i, t := range trades {
		rowIDs[i] = t.ID
		byRowID[t.ID] = t
	}

	legQuery := `
		SELECT leg_id, trade_row_id, notional, rate, leg_type, pay_receive_flag, index_name, currency, calculation_schedule
		FROM trade_legs
		WHERE trade_row_id = ANY($1)
		ORDER BY leg_id;
	`
	rows, err := r.Pool.Query(ctx, legQuery, rowIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query trade legs", err)
	}
	defer rows.Close()

	modelLegs := []models.TradeLeg{}
	legIDs := []string{}
	for rows.Next() {
		var m models.TradeLeg
		var indexName sql.NullString
		if err := rows.Scan(
			&m.LegID,
			&m.TradeRowID,
			&m.Notional,
			&m.Rate,
			&m.LegType,
			&m.PayReceiveFlag,
			&indexName,
			&m.Currency,
			&m.Schedule,
		); err != nil {
			return apperrors.NewAppError(500, "failed to scan trade leg row", err)
		}
		if indexName.Valid {
			m.IndexName = indexName.String
		}
		modelLegs = append(modelLegs, m)
		legIDs = append(legIDs, m.LegID)
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating trade leg rows", err)
	}
	if len(legIDs) == 0 {
		return nil
	}

	cashflowQuery := `
		SELECT cashflow_id, leg_id, period_start, period_end, value, currency, rate_fixed
		FROM cashflows
		WHERE leg_id = ANY($1)
		ORDER BY leg_id, period_start;
	`
	cfRows, err := r.Pool.Query(ctx, cashflowQuery, legIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query cashflows", err)
	}
	defer cfRows.Close()

	cashflowsByLeg := make(map[string][]domain.Cashflow)
	for cfRows.Next() {
		var m models.Cashflow
		if err := cfRows.Scan(
			&m.CashflowID,
			&m.LegID,
			&m.PeriodStart,
			&m.PeriodEnd,
			&m.Value,
			&m.Currency,
			&m.RateFixed,
		); err != nil {
			return apperrors.NewAppError(500, "failed to scan cashflow row", err)
		}
		cashflowsByLeg[m.LegID] = append(cashflowsByLeg[m.LegID], mapping.ToDomainCashflow(m))
	}
	if err := cfRows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating cashflow rows", err)
	}

	for _, m := range modelLegs {
		trade, ok := byRowID[m.TradeRowID]
		if !ok {
			continue
		}
		leg := mapping.ToDomainTradeLeg(m)
		leg.Cashflows = cashflowsByLeg[m.LegID]
		trade.Legs = append(trade.Legs, leg)
	}
	return nil
}

func (r *PgxTradeRepository) attachLegsToSlice(ctx context.Context, trades []domain.Trade) error {
	ptrs := make([]*domain.Trade, len(trades))
	for i := range trades {
		ptrs[i] = &trades[i]
	}
	return r.attachLegs(ctx, ptrs)
}

// scanTrade scans one joined trade row.
func scanTrade(row pgx.Row) (*domain.Trade, error) {
	var m models.Trade
	var bookName, counterpartyName string
	var tradeType sql.NullString

	err := row.Scan(
		&m.ID,
		&m.TradeID,
		&m.Version,
		&m.Active,
		&m.Status,
		&tradeType,
		&m.TradeDate,
		&m.StartDate,
		&m.MaturityDate,
		&m.BookID,
		&bookName,
		&m.CounterpartyID,
		&counterpartyName,
		&m.TraderUserName,
		&m.InputterUserName,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if tradeType.Valid {
		m.TradeType = tradeType.String
	}

	trade := mapping.ToDomainTrade(m, bookName, counterpartyName)
	return &trade, nil
}

// collectTrades scans and closes a joined trade result set.
func collectTrades(rows pgx.Rows) ([]domain.Trade, error) {
	defer rows.Close()

	trades := []domain.Trade{}
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trade row", err)
		}
		trades = append(trades, *trade)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trade rows", err)
	}
	return trades, nil
}

// nullableString maps the model's empty string to SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
