package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapsdesk/tradebook/internal/apperrors"
	"github.com/swapsdesk/tradebook/internal/core/domain"
	portsrepo "github.com/swapsdesk/tradebook/internal/core/ports/repositories"
	"github.com/swapsdesk/tradebook/internal/models"
	"github.com/swapsdesk/tradebook/internal/utils/mapping"
)

type PgxAdditionalInfoRepository struct {
	BaseRepository
}

// NewPgxAdditionalInfoRepository creates a new repository for key/value
// extension records.
func NewPgxAdditionalInfoRepository(pool *pgxpool.Pool) portsrepo.AdditionalInfoRepository {
	return &PgxAdditionalInfoRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdditionalInfoRepository = (*PgxAdditionalInfoRepository)(nil)

// FindActiveByEntityField retrieves the active record for an entity field.
func (r *PgxAdditionalInfoRepository) FindActiveByEntityField(ctx context.Context, entityType domain.EntityType, entityID int64, fieldName string) (*domain.AdditionalInfo, error) {
	query := `
		SELECT id, entity_type, entity_id, field_name, field_value, field_type, version, active, deactivated_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM additional_info
		WHERE entity_type = $1 AND entity_id = $2 AND field_name = $3 AND active;
	`
	var m models.AdditionalInfo
	var deactivated sql.NullTime
	err := r.Pool.QueryRow(ctx, query, entityType, entityID, fieldName).Scan(
		&m.ID,
		&m.EntityType,
		&m.EntityID,
		&m.FieldName,
		&m.FieldValue,
		&m.FieldType,
		&m.Version,
		&m.Active,
		&deactivated,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find additional info "+fieldName, err)
	}
	if deactivated.Valid {
		m.DeactivatedDate = &deactivated.Time
	}
	info := mapping.ToDomainAdditionalInfo(m)
	return &info, nil
}

// ReplaceFieldValue deactivates the previous record (when present) and
// inserts the next version in one transaction.
func (r *PgxAdditionalInfoRepository) ReplaceFieldValue(ctx context.Context, previous *domain.AdditionalInfo, next domain.AdditionalInfo) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if previous != nil {
		deactivateQuery := `
			UPDATE additional_info
			SET active = FALSE, deactivated_date = $1, last_updated_at = $1, last_updated_by = $2
			WHERE id = $3 AND active;
		`
		tag, err := tx.Exec(ctx, deactivateQuery, next.CreatedAt, next.CreatedBy, previous.ID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to deactivate additional info "+previous.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrConflict
		}
	}

	modelInfo := mapping.ToModelAdditionalInfo(next)
	insertQuery := `
		INSERT INTO additional_info (id, entity_type, entity_id, field_name, field_value, field_type, version, active,
		                             created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelInfo.ID,
		modelInfo.EntityType,
		modelInfo.EntityID,
		modelInfo.FieldName,
		modelInfo.FieldValue,
		modelInfo.FieldType,
		modelInfo.Version,
		modelInfo.Active,
		modelInfo.CreatedAt,
		modelInfo.CreatedBy,
		modelInfo.LastUpdatedAt,
		modelInfo.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert additional info "+modelInfo.ID, err)
	}

	return r.Commit(ctx, tx)
}
