package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/posdesk/backend/internal/domain/identity"
	"github.com/posdesk/backend/internal/domain/shared"
	"github.com/posdesk/backend/internal/infrastructure/persistence/models"
)

// OperatorRepository implements identity.OperatorRepository over the
// shared users table
type OperatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new OperatorRepository
func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// FindByID returns the operator with the given ID, or shared.ErrNotFound
func (r *OperatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Operator, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find operator: %w", err)
	}

	return model.ToDomain(), nil
}
