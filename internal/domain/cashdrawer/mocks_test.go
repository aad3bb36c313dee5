package cashdrawer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Insert(ctx context.Context, session *CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) Update(ctx context.Context, session *CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) FindOpen(ctx context.Context) (*CashSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CashSession), args.Error(1)
}

func (m *mockSessionRepository) FindOpenByOperator(ctx context.Context, operatorID uuid.UUID) (*CashSession, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CashSession), args.Error(1)
}

func (m *mockSessionRepository) FindLastClosed(ctx context.Context) (*CashSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CashSession), args.Error(1)
}

func (m *mockSessionRepository) FindAll(ctx context.Context, filter SessionFilter) ([]*CashSession, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*CashSession), args.Error(1)
}

type mockWithdrawalRepository struct {
	mock.Mock
}

func (m *mockWithdrawalRepository) Insert(ctx context.Context, withdrawal *CashWithdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

func (m *mockWithdrawalRepository) SumInWindow(ctx context.Context, window Window) (valueobject.Money, error) {
	args := m.Called(ctx, window)
	return args.Get(0).(valueobject.Money), args.Error(1)
}

type mockSalesReader struct {
	mock.Mock
}

func (m *mockSalesReader) CashTotalInWindow(ctx context.Context, window Window) (valueobject.Money, error) {
	args := m.Called(ctx, window)
	return args.Get(0).(valueobject.Money), args.Error(1)
}

func (m *mockSalesReader) TotalsByMethod(ctx context.Context, window Window) (map[PaymentMethod]valueobject.Money, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[PaymentMethod]valueobject.Money), args.Error(1)
}

func (m *mockSalesReader) DailyTotals(ctx context.Context, from, to time.Time) ([]DailyTotal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DailyTotal), args.Error(1)
}
