package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
	"github.com/posdesk/backend/internal/infrastructure/persistence/models"
)

// CashWithdrawalRepository implements cashdrawer.WithdrawalRepository using GORM
type CashWithdrawalRepository struct {
	db *gorm.DB
}

// NewCashWithdrawalRepository creates a new CashWithdrawalRepository
func NewCashWithdrawalRepository(db *gorm.DB) *CashWithdrawalRepository {
	return &CashWithdrawalRepository{db: db}
}

// Insert appends a withdrawal to the ledger
func (r *CashWithdrawalRepository) Insert(ctx context.Context, withdrawal *cashdrawer.CashWithdrawal) error {
	var model models.CashWithdrawalModel
	model.FromDomain(withdrawal)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to insert withdrawal: %w", err)
	}

	return nil
}

// SumInWindow returns the total withdrawn in the window
func (r *CashWithdrawalRepository) SumInWindow(ctx context.Context, window cashdrawer.Window) (valueobject.Money, error) {
	query := r.db.WithContext(ctx).Model(&models.CashWithdrawalModel{})
	query = applyWindow(query, "occurred_at", window)

	var total decimal.Decimal
	err := query.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	if err != nil {
		return valueobject.Money{}, fmt.Errorf("failed to sum withdrawals: %w", err)
	}

	return valueobject.NewMoney(total), nil
}

// applyWindow translates a Window's boundary convention into SQL
func applyWindow(query *gorm.DB, column string, window cashdrawer.Window) *gorm.DB {
	if window.ExclusiveFrom {
		query = query.Where(column+" > ?", window.From)
	} else {
		query = query.Where(column+" >= ?", window.From)
	}
	return query.Where(column+" <= ?", window.To)
}
