package cashdrawer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
	"github.com/posdesk/backend/internal/domain/identity"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Insert(ctx context.Context, session *cashdrawer.CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) Update(ctx context.Context, session *cashdrawer.CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) FindOpen(ctx context.Context) (*cashdrawer.CashSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cashdrawer.CashSession), args.Error(1)
}

func (m *mockSessionRepository) FindOpenByOperator(ctx context.Context, operatorID uuid.UUID) (*cashdrawer.CashSession, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cashdrawer.CashSession), args.Error(1)
}

func (m *mockSessionRepository) FindLastClosed(ctx context.Context) (*cashdrawer.CashSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cashdrawer.CashSession), args.Error(1)
}

func (m *mockSessionRepository) FindAll(ctx context.Context, filter cashdrawer.SessionFilter) ([]*cashdrawer.CashSession, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cashdrawer.CashSession), args.Error(1)
}

type mockWithdrawalRepository struct {
	mock.Mock
}

func (m *mockWithdrawalRepository) Insert(ctx context.Context, withdrawal *cashdrawer.CashWithdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

func (m *mockWithdrawalRepository) SumInWindow(ctx context.Context, window cashdrawer.Window) (valueobject.Money, error) {
	args := m.Called(ctx, window)
	return args.Get(0).(valueobject.Money), args.Error(1)
}

type mockSalesReader struct {
	mock.Mock
}

func (m *mockSalesReader) CashTotalInWindow(ctx context.Context, window cashdrawer.Window) (valueobject.Money, error) {
	args := m.Called(ctx, window)
	return args.Get(0).(valueobject.Money), args.Error(1)
}

func (m *mockSalesReader) TotalsByMethod(ctx context.Context, window cashdrawer.Window) (map[cashdrawer.PaymentMethod]valueobject.Money, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[cashdrawer.PaymentMethod]valueobject.Money), args.Error(1)
}

func (m *mockSalesReader) DailyTotals(ctx context.Context, from, to time.Time) ([]cashdrawer.DailyTotal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cashdrawer.DailyTotal), args.Error(1)
}

type mockOperatorRepository struct {
	mock.Mock
}

func (m *mockOperatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Operator), args.Error(1)
}

type mockSummaryCache struct {
	mock.Mock
}

func (m *mockSummaryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *mockSummaryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
