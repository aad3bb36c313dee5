package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
	"github.com/posdesk/backend/internal/infrastructure/persistence/models"
)

// PosSaleRepository implements cashdrawer.SalesReader over the sales
// table owned by the checkout subsystem. Read-only by design.
type PosSaleRepository struct {
	db *gorm.DB
}

// NewPosSaleRepository creates a new PosSaleRepository
func NewPosSaleRepository(db *gorm.DB) *PosSaleRepository {
	return &PosSaleRepository{db: db}
}

// CashTotalInWindow returns the total of cash-paid sales in the window
func (r *PosSaleRepository) CashTotalInWindow(ctx context.Context, window cashdrawer.Window) (valueobject.Money, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PosSaleModel{}).
		Where("payment_method = ?", string(cashdrawer.PaymentCash))
	query = applyWindow(query, "sold_at", window)

	var total decimal.Decimal
	err := query.Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error
	if err != nil {
		return valueobject.Money{}, fmt.Errorf("failed to sum cash sales: %w", err)
	}

	return valueobject.NewMoney(total), nil
}

// TotalsByMethod returns sales totals per payment method in the window
func (r *PosSaleRepository) TotalsByMethod(ctx context.Context, window cashdrawer.Window) (map[cashdrawer.PaymentMethod]valueobject.Money, error) {
	query := r.db.WithContext(ctx).Model(&models.PosSaleModel{})
	query = applyWindow(query, "sold_at", window)

	var rows []struct {
		PaymentMethod string
		Total         decimal.Decimal
	}
	err := query.
		Select("payment_method, COALESCE(SUM(total_amount), 0) AS total").
		Group("payment_method").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales by method: %w", err)
	}

	totals := make(map[cashdrawer.PaymentMethod]valueobject.Money, len(rows))
	for _, row := range rows {
		totals[cashdrawer.ParsePaymentMethod(row.PaymentMethod)] = valueobject.NewMoney(row.Total)
	}

	return totals, nil
}

// DailyTotals returns one sales total per calendar day in [from, to]
func (r *PosSaleRepository) DailyTotals(ctx context.Context, from, to time.Time) ([]cashdrawer.DailyTotal, error) {
	var rows []struct {
		Day   string
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.PosSaleModel{}).
		Where("sold_at >= ? AND sold_at <= ?", from, to).
		Select("DATE(sold_at) AS day, COALESCE(SUM(total_amount), 0) AS total").
		Group("DATE(sold_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily sales: %w", err)
	}

	totals := make([]cashdrawer.DailyTotal, 0, len(rows))
	for _, row := range rows {
		// DATE() renders at least "2006-01-02"; drivers may append a
		// time component
		raw := row.Day
		if len(raw) > 10 {
			raw = raw[:10]
		}
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse day %q: %w", row.Day, err)
		}
		totals = append(totals, cashdrawer.DailyTotal{
			Date:  day,
			Total: valueobject.NewMoney(row.Total),
		})
	}

	return totals, nil
}
