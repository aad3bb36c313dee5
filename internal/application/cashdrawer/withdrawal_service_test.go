package cashdrawer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
	"github.com/posdesk/backend/internal/domain/identity"
)

func TestRecordWithdrawal(t *testing.T) {
	withdrawals := new(mockWithdrawalRepository)
	operators := new(mockOperatorRepository)
	service := NewWithdrawalService(withdrawals, operators, zap.NewNop())

	op := &identity.Operator{ID: uuid.New(), Name: "Ada", Role: identity.RoleCashier}
	operators.On("FindByID", mock.Anything, op.ID).Return(op, nil)
	withdrawals.On("Insert", mock.Anything, mock.AnythingOfType("*cashdrawer.CashWithdrawal")).Return(nil)

	resp, err := service.Record(context.Background(), op.ID, RecordWithdrawalRequest{
		Amount: decimal.RequireFromString("75.00"),
		Reason: "bank deposit",
	})
	require.NoError(t, err)

	assert.Equal(t, op.ID, resp.OperatorID)
	assert.Equal(t, "75.00", resp.Amount.String())
	assert.Equal(t, "bank deposit", resp.Reason)
	assert.False(t, resp.OccurredAt.IsZero())
}

func TestRecordWithdrawalRejectsNonPositiveAmount(t *testing.T) {
	withdrawals := new(mockWithdrawalRepository)
	operators := new(mockOperatorRepository)
	service := NewWithdrawalService(withdrawals, operators, zap.NewNop())

	op := &identity.Operator{ID: uuid.New(), Name: "Ada", Role: identity.RoleCashier}
	operators.On("FindByID", mock.Anything, op.ID).Return(op, nil)

	_, err := service.Record(context.Background(), op.ID, RecordWithdrawalRequest{
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, cashdrawer.ErrAmountNotPositive)

	_, err = service.Record(context.Background(), op.ID, RecordWithdrawalRequest{
		Amount: decimal.RequireFromString("-10"),
	})
	assert.ErrorIs(t, err, cashdrawer.ErrAmountNotPositive)

	withdrawals.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
