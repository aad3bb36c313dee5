package cashdrawer

import (
	"time"

	"github.com/google/uuid"
	"github.com/posdesk/backend/internal/domain/shared"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

// CashWithdrawal is an immutable record of cash taken out of the drawer.
// Withdrawals carry no session reference; they are attributed to sessions
// purely by time window, which keeps them valid even between sessions.
type CashWithdrawal struct {
	shared.BaseEntity
	OperatorID uuid.UUID
	Amount     valueobject.Money
	Reason     string
	OccurredAt time.Time
}

// NewCashWithdrawal records a withdrawal of a positive amount
func NewCashWithdrawal(operatorID uuid.UUID, amount valueobject.Money, reason string, occurredAt time.Time) (*CashWithdrawal, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	return &CashWithdrawal{
		BaseEntity: shared.NewBaseEntity(),
		OperatorID: operatorID,
		Amount:     amount,
		Reason:     reason,
		OccurredAt: occurredAt,
	}, nil
}
