package cashdrawer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

// DefaultHistoryLimit caps session history pages
const DefaultHistoryLimit = 50

// SessionFilter narrows session history queries. All criteria are
// conjunctive; nil fields are ignored. ToDate is inclusive through the
// end of that day.
type SessionFilter struct {
	FromDate         *time.Time
	ToDate           *time.Time
	OperatorID       *uuid.UUID
	VarianceOnly     bool
	StockControlDone *bool
	Limit            int
}

// SessionRepository persists cash sessions.
//
// Insert must fail with shared.ErrAlreadyExists when an open session
// already exists anywhere; the storage layer enforces this so two
// concurrent opens cannot both commit.
type SessionRepository interface {
	Insert(ctx context.Context, session *CashSession) error
	Update(ctx context.Context, session *CashSession) error
	FindOpen(ctx context.Context) (*CashSession, error)
	FindOpenByOperator(ctx context.Context, operatorID uuid.UUID) (*CashSession, error)
	FindLastClosed(ctx context.Context) (*CashSession, error)
	FindAll(ctx context.Context, filter SessionFilter) ([]*CashSession, error)
}

// WithdrawalRepository persists the append-only withdrawal ledger
type WithdrawalRepository interface {
	Insert(ctx context.Context, withdrawal *CashWithdrawal) error
	SumInWindow(ctx context.Context, window Window) (valueobject.Money, error)
}

// DailyTotal is one day's sales total for dashboard series
type DailyTotal struct {
	Date  time.Time
	Total valueobject.Money
}

// SalesReader is the drawer's read-only view of the sales ledger,
// owned by the checkout subsystem.
type SalesReader interface {
	CashTotalInWindow(ctx context.Context, window Window) (valueobject.Money, error)
	TotalsByMethod(ctx context.Context, window Window) (map[PaymentMethod]valueobject.Money, error)
	DailyTotals(ctx context.Context, from, to time.Time) ([]DailyTotal, error)
}
