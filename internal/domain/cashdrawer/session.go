package cashdrawer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/posdesk/backend/internal/domain/shared"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

// SessionStatus represents the lifecycle state of a cash session
type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "open"
	SessionStatusClosed SessionStatus = "closed"
)

// Domain errors specific to the cash drawer
var (
	ErrNoOpenSession      = shared.NewDomainError("NO_OPEN_SESSION", "No open cash session for this operator")
	ErrSessionOpen        = shared.NewDomainError("SESSION_OPEN", "A cash session is already open")
	ErrSessionClosed      = shared.NewDomainError("SESSION_CLOSED", "Cash session is already closed")
	ErrActualCashRequired = shared.NewDomainError("ACTUAL_CASH_REQUIRED", "Counted cash amount is required to close the session")
	ErrAmountNotPositive  = shared.NewDomainError("AMOUNT_NOT_POSITIVE", "Amount must be greater than zero")
)

// NewDrawerHeldError builds the conflict returned when another operator
// holds the drawer, naming the holder so the terminal can display it.
func NewDrawerHeldError(ownerName string) *shared.DomainError {
	return shared.NewDomainError("DRAWER_HELD", fmt.Sprintf("Cash drawer is held by %s", ownerName))
}

// CashSession represents one operator's shift at the cash drawer.
// It is the aggregate root for session-related operations.
//
// Opening cash is fixed at creation. Closing figures (closedAt,
// theoretical, actual, variance) are set together by Close and never
// individually.
type CashSession struct {
	shared.BaseAggregateRoot
	OperatorID             uuid.UUID
	OperatorName           string
	Status                 SessionStatus
	OpenedAt               time.Time
	ClosedAt               *time.Time
	OpeningCash            valueobject.Money
	TheoreticalClosingCash *valueobject.Money
	ActualClosingCash      valueobject.Money
	Variance               valueobject.Money
	StockControlDone       bool
}

// NewCashSession opens a new session with the given opening float
func NewCashSession(operatorID uuid.UUID, operatorName string, openingCash valueobject.Money, openedAt time.Time) *CashSession {
	return &CashSession{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OperatorID:        operatorID,
		OperatorName:      operatorName,
		Status:            SessionStatusOpen,
		OpenedAt:          openedAt,
		OpeningCash:       openingCash,
		ActualClosingCash: valueobject.Zero(),
		Variance:          valueobject.Zero(),
	}
}

// IsOpen reports whether the session is still open
func (s *CashSession) IsOpen() bool {
	return s.Status == SessionStatusOpen
}

// BelongsTo reports whether the session is held by the given operator
func (s *CashSession) BelongsTo(operatorID uuid.UUID) bool {
	return s.OperatorID == operatorID
}

// Close transitions the session to closed, recording the theoretical and
// counted amounts and the resulting variance in one step.
func (s *CashSession) Close(theoretical, actual valueobject.Money, closedAt time.Time) error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}

	variance := actual.Subtract(theoretical)

	s.Status = SessionStatusClosed
	s.ClosedAt = &closedAt
	s.TheoreticalClosingCash = &theoretical
	s.ActualClosingCash = actual
	s.Variance = variance
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// MarkStockControlDone flags the session as having completed a stock count
func (s *CashSession) MarkStockControlDone() error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}

	s.StockControlDone = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// HasVariance reports whether the counted cash differed from theoretical
func (s *CashSession) HasVariance() bool {
	return !s.Variance.IsZero()
}
