package cashdrawer

import (
	"context"
	"errors"
	"time"

	"github.com/posdesk/backend/internal/domain/shared"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

// Reconciler computes drawer balances from the sales and withdrawal
// ledgers. It is a pure domain service over the repository ports.
type Reconciler struct {
	sessions    SessionRepository
	withdrawals WithdrawalRepository
	sales       SalesReader
}

// NewReconciler creates a reconciler over the given ledgers
func NewReconciler(sessions SessionRepository, withdrawals WithdrawalRepository, sales SalesReader) *Reconciler {
	return &Reconciler{
		sessions:    sessions,
		withdrawals: withdrawals,
		sales:       sales,
	}
}

// OpeningBalance returns the cash a new session starts with: the counted
// close of the most recent session plus whatever moved through the drawer
// since then. With no prior session the drawer starts empty.
func (r *Reconciler) OpeningBalance(ctx context.Context, now time.Time) (valueobject.Money, error) {
	last, err := r.sessions.FindLastClosed(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return valueobject.Zero(), nil
		}
		return valueobject.Money{}, err
	}

	floating, err := r.netCashMovement(ctx, GapWindow(*last.ClosedAt, now))
	if err != nil {
		return valueobject.Money{}, err
	}

	return last.ActualClosingCash.Add(floating), nil
}

// TheoreticalClosing returns what the drawer should contain when the
// session closes at closeTime: opening cash plus cash sales minus
// withdrawals over the session window.
func (r *Reconciler) TheoreticalClosing(ctx context.Context, session *CashSession, closeTime time.Time) (valueobject.Money, error) {
	movement, err := r.netCashMovement(ctx, SessionWindow(session.OpenedAt, closeTime))
	if err != nil {
		return valueobject.Money{}, err
	}
	return session.OpeningCash.Add(movement), nil
}

// CashOnHand estimates the drawer's current contents: the running
// theoretical balance of the open session, or the opening balance a new
// session would start with when the drawer is idle.
func (r *Reconciler) CashOnHand(ctx context.Context, now time.Time) (valueobject.Money, error) {
	open, err := r.sessions.FindOpen(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return r.OpeningBalance(ctx, now)
		}
		return valueobject.Money{}, err
	}
	return r.TheoreticalClosing(ctx, open, now)
}

func (r *Reconciler) netCashMovement(ctx context.Context, window Window) (valueobject.Money, error) {
	sales, err := r.sales.CashTotalInWindow(ctx, window)
	if err != nil {
		return valueobject.Money{}, err
	}
	withdrawn, err := r.withdrawals.SumInWindow(ctx, window)
	if err != nil {
		return valueobject.Money{}, err
	}
	return sales.Subtract(withdrawn), nil
}
