package repositories

import (
	"context"

	"github.com/swapsdesk/tradebook/internal/core/domain"
)

// AdditionalInfoRepository defines operations over the generic key/value
// extension records attached to entities.
type AdditionalInfoRepository interface {
	// FindActiveByEntityField retrieves the active record for an entity field.
	// Returns apperrors.ErrNotFound when none exists.
	FindActiveByEntityField(ctx context.Context, entityType domain.EntityType, entityID int64, fieldName string) (*domain.AdditionalInfo, error)

	// ReplaceFieldValue deactivates the previous record (when present) and
	// inserts the next version in one transaction.
	ReplaceFieldValue(ctx context.Context, previous *domain.AdditionalInfo, next domain.AdditionalInfo) error
}
