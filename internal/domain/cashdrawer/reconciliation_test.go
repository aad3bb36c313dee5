package cashdrawer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/posdesk/backend/internal/domain/shared"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

func money(s string) valueobject.Money {
	m, err := valueobject.NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func closedSession(actual valueobject.Money, closedAt time.Time) *CashSession {
	s := NewCashSession(uuid.New(), "Ada", valueobject.Zero(), closedAt.Add(-8*time.Hour))
	if err := s.Close(actual, actual, closedAt); err != nil {
		panic(err)
	}
	return s
}

func TestOpeningBalanceFirstEver(t *testing.T) {
	sessions := new(mockSessionRepository)
	withdrawals := new(mockWithdrawalRepository)
	sales := new(mockSalesReader)

	sessions.On("FindLastClosed", mock.Anything).Return(nil, shared.ErrNotFound)

	r := NewReconciler(sessions, withdrawals, sales)
	balance, err := r.OpeningBalance(context.Background(), time.Now())

	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	sales.AssertNotCalled(t, "CashTotalInWindow")
}

func TestOpeningBalanceCarriesFloatingCash(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	closedAt := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)
	last := closedSession(money("200.00"), closedAt)

	sessions := new(mockSessionRepository)
	withdrawals := new(mockWithdrawalRepository)
	sales := new(mockSalesReader)

	gap := GapWindow(closedAt, now)
	sessions.On("FindLastClosed", mock.Anything).Return(last, nil)
	sales.On("CashTotalInWindow", mock.Anything, gap).Return(money("35.50"), nil)
	withdrawals.On("SumInWindow", mock.Anything, gap).Return(money("10.00"), nil)

	r := NewReconciler(sessions, withdrawals, sales)
	balance, err := r.OpeningBalance(context.Background(), now)

	require.NoError(t, err)
	// 200.00 + 35.50 - 10.00
	assert.Equal(t, "225.50", balance.String())
}

func TestTheoreticalClosing(t *testing.T) {
	openedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	closeTime := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)
	session := NewCashSession(uuid.New(), "Ada", money("150.00"), openedAt)

	sessions := new(mockSessionRepository)
	withdrawals := new(mockWithdrawalRepository)
	sales := new(mockSalesReader)

	window := SessionWindow(openedAt, closeTime)
	sales.On("CashTotalInWindow", mock.Anything, window).Return(money("480.25"), nil)
	withdrawals.On("SumInWindow", mock.Anything, window).Return(money("100.00"), nil)

	r := NewReconciler(sessions, withdrawals, sales)
	theoretical, err := r.TheoreticalClosing(context.Background(), session, closeTime)

	require.NoError(t, err)
	// 150.00 + 480.25 - 100.00
	assert.Equal(t, "530.25", theoretical.String())
}

func TestCashOnHandWithOpenSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	openedAt := now.Add(-3 * time.Hour)
	open := NewCashSession(uuid.New(), "Ada", money("100.00"), openedAt)

	sessions := new(mockSessionRepository)
	withdrawals := new(mockWithdrawalRepository)
	sales := new(mockSalesReader)

	window := SessionWindow(openedAt, now)
	sessions.On("FindOpen", mock.Anything).Return(open, nil)
	sales.On("CashTotalInWindow", mock.Anything, window).Return(money("60.00"), nil)
	withdrawals.On("SumInWindow", mock.Anything, window).Return(money("0"), nil)

	r := NewReconciler(sessions, withdrawals, sales)
	onHand, err := r.CashOnHand(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, "160.00", onHand.String())
}

func TestCashOnHandIdleDrawer(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	closedAt := now.Add(-12 * time.Hour)
	last := closedSession(money("80.00"), closedAt)

	sessions := new(mockSessionRepository)
	withdrawals := new(mockWithdrawalRepository)
	sales := new(mockSalesReader)

	gap := GapWindow(closedAt, now)
	sessions.On("FindOpen", mock.Anything).Return(nil, shared.ErrNotFound)
	sessions.On("FindLastClosed", mock.Anything).Return(last, nil)
	sales.On("CashTotalInWindow", mock.Anything, gap).Return(money("0"), nil)
	withdrawals.On("SumInWindow", mock.Anything, gap).Return(money("30.00"), nil)

	r := NewReconciler(sessions, withdrawals, sales)
	onHand, err := r.CashOnHand(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, "50.00", onHand.String())
}
