package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
	"github.com/posdesk/backend/internal/domain/shared"
	"github.com/posdesk/backend/internal/infrastructure/persistence/models"
)

// CashSessionRepository implements cashdrawer.SessionRepository using GORM
type CashSessionRepository struct {
	db *gorm.DB
}

// NewCashSessionRepository creates a new CashSessionRepository
func NewCashSessionRepository(db *gorm.DB) *CashSessionRepository {
	return &CashSessionRepository{db: db}
}

// Insert persists a new session. The partial unique index on open
// sessions makes this the arbiter between concurrent opens: the loser
// gets shared.ErrAlreadyExists.
func (r *CashSessionRepository) Insert(ctx context.Context, session *cashdrawer.CashSession) error {
	var model models.CashSessionModel
	model.FromDomain(session)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert cash session: %w", err)
	}

	return nil
}

// Update persists changes to an existing session with optimistic locking
func (r *CashSessionRepository) Update(ctx context.Context, session *cashdrawer.CashSession) error {
	var model models.CashSessionModel
	model.FromDomain(session)

	result := r.db.WithContext(ctx).
		Model(&models.CashSessionModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"status":                   model.Status,
			"closed_at":                model.ClosedAt,
			"theoretical_closing_cash": model.TheoreticalClosingCash,
			"actual_closing_cash":      model.ActualClosingCash,
			"variance":                 model.Variance,
			"stock_control_done":       model.StockControlDone,
			"updated_at":               model.UpdatedAt,
			"version":                  model.Version,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update cash session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}

	return nil
}

// FindOpen returns the single open session, or shared.ErrNotFound
func (r *CashSessionRepository) FindOpen(ctx context.Context) (*cashdrawer.CashSession, error) {
	var model models.CashSessionModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(cashdrawer.SessionStatusOpen)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open session: %w", err)
	}

	return model.ToDomain(), nil
}

// FindOpenByOperator returns the operator's open session, or shared.ErrNotFound
func (r *CashSessionRepository) FindOpenByOperator(ctx context.Context, operatorID uuid.UUID) (*cashdrawer.CashSession, error) {
	var model models.CashSessionModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND operator_id = ?", string(cashdrawer.SessionStatusOpen), operatorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open session for operator: %w", err)
	}

	return model.ToDomain(), nil
}

// FindLastClosed returns the most recently closed session by close time
func (r *CashSessionRepository) FindLastClosed(ctx context.Context) (*cashdrawer.CashSession, error) {
	var model models.CashSessionModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(cashdrawer.SessionStatusClosed)).
		Order("closed_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find last closed session: %w", err)
	}

	return model.ToDomain(), nil
}

// FindAll lists sessions matching the filter, newest first
func (r *CashSessionRepository) FindAll(ctx context.Context, filter cashdrawer.SessionFilter) ([]*cashdrawer.CashSession, error) {
	query := r.db.WithContext(ctx).Model(&models.CashSessionModel{})
	query = applySessionFilter(query, filter)

	limit := filter.Limit
	if limit <= 0 || limit > cashdrawer.DefaultHistoryLimit {
		limit = cashdrawer.DefaultHistoryLimit
	}

	var results []models.CashSessionModel
	err := query.Order("opened_at DESC").Limit(limit).Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*cashdrawer.CashSession, len(results))
	for i := range results {
		sessions[i] = results[i].ToDomain()
	}

	return sessions, nil
}

func applySessionFilter(query *gorm.DB, filter cashdrawer.SessionFilter) *gorm.DB {
	if filter.FromDate != nil {
		query = query.Where("opened_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("opened_at <= ?", *filter.ToDate)
	}
	if filter.OperatorID != nil {
		query = query.Where("operator_id = ?", *filter.OperatorID)
	}
	if filter.VarianceOnly {
		query = query.Where("variance <> 0")
	}
	if filter.StockControlDone != nil {
		query = query.Where("stock_control_done = ?", *filter.StockControlDone)
	}
	return query
}
