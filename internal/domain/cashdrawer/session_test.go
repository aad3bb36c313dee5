package cashdrawer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

func TestNewCashSession(t *testing.T) {
	operatorID := uuid.New()
	openedAt := time.Now()
	opening := valueobject.NewMoneyFromFloat(150.00)

	s := NewCashSession(operatorID, "Ada", opening, openedAt)

	assert.Equal(t, SessionStatusOpen, s.Status)
	assert.True(t, s.IsOpen())
	assert.True(t, s.BelongsTo(operatorID))
	assert.False(t, s.BelongsTo(uuid.New()))
	assert.True(t, opening.Equals(s.OpeningCash))
	assert.Nil(t, s.ClosedAt)
	assert.Nil(t, s.TheoreticalClosingCash)
	assert.True(t, s.ActualClosingCash.IsZero())
	assert.True(t, s.Variance.IsZero())
	assert.False(t, s.StockControlDone)
	assert.Equal(t, 1, s.GetVersion())
}

func TestCashSessionClose(t *testing.T) {
	s := NewCashSession(uuid.New(), "Ada", valueobject.NewMoneyFromFloat(100), time.Now())

	theoretical := valueobject.NewMoneyFromFloat(180.50)
	actual := valueobject.NewMoneyFromFloat(179.00)
	closedAt := time.Now()

	require.NoError(t, s.Close(theoretical, actual, closedAt))

	assert.Equal(t, SessionStatusClosed, s.Status)
	require.NotNil(t, s.ClosedAt)
	assert.Equal(t, closedAt, *s.ClosedAt)
	require.NotNil(t, s.TheoreticalClosingCash)
	assert.True(t, theoretical.Equals(*s.TheoreticalClosingCash))
	assert.True(t, actual.Equals(s.ActualClosingCash))
	assert.Equal(t, "-1.50", s.Variance.String())
	assert.True(t, s.HasVariance())
	assert.Equal(t, 2, s.GetVersion())
}

func TestCashSessionCloseTwice(t *testing.T) {
	s := NewCashSession(uuid.New(), "Ada", valueobject.Zero(), time.Now())
	amount := valueobject.NewMoneyFromFloat(50)

	require.NoError(t, s.Close(amount, amount, time.Now()))
	assert.False(t, s.HasVariance())

	err := s.Close(amount, amount, time.Now())
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestCashSessionStockControl(t *testing.T) {
	s := NewCashSession(uuid.New(), "Ada", valueobject.Zero(), time.Now())

	require.NoError(t, s.MarkStockControlDone())
	assert.True(t, s.StockControlDone)

	amount := valueobject.Zero()
	require.NoError(t, s.Close(amount, amount, time.Now()))
	assert.ErrorIs(t, s.MarkStockControlDone(), ErrSessionClosed)
}

func TestNewCashWithdrawal(t *testing.T) {
	operatorID := uuid.New()
	now := time.Now()

	w, err := NewCashWithdrawal(operatorID, valueobject.NewMoneyFromFloat(20), "bank deposit", now)
	require.NoError(t, err)
	assert.Equal(t, operatorID, w.OperatorID)
	assert.Equal(t, now, w.OccurredAt)
	assert.Equal(t, "bank deposit", w.Reason)

	_, err = NewCashWithdrawal(operatorID, valueobject.Zero(), "", now)
	assert.ErrorIs(t, err, ErrAmountNotPositive)

	_, err = NewCashWithdrawal(operatorID, valueobject.NewMoneyFromFloat(-5), "", now)
	assert.ErrorIs(t, err, ErrAmountNotPositive)
}
