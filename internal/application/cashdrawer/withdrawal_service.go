package cashdrawer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
	"github.com/posdesk/backend/internal/domain/identity"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

// WithdrawalService records cash leaving the drawer
type WithdrawalService struct {
	withdrawals cashdrawer.WithdrawalRepository
	operators   identity.OperatorRepository
	logger      *zap.Logger
}

// NewWithdrawalService creates a new WithdrawalService
func NewWithdrawalService(
	withdrawals cashdrawer.WithdrawalRepository,
	operators identity.OperatorRepository,
	logger *zap.Logger,
) *WithdrawalService {
	return &WithdrawalService{
		withdrawals: withdrawals,
		operators:   operators,
		logger:      logger,
	}
}

// Record appends a withdrawal to the ledger. Withdrawals are valid with
// or without an open session; reconciliation attributes them by time.
func (s *WithdrawalService) Record(ctx context.Context, operatorID uuid.UUID, req RecordWithdrawalRequest) (*WithdrawalResponse, error) {
	operator, err := s.operators.FindByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	withdrawal, err := cashdrawer.NewCashWithdrawal(
		operator.ID,
		valueobject.NewMoney(req.Amount),
		req.Reason,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.withdrawals.Insert(ctx, withdrawal); err != nil {
		return nil, err
	}

	s.logger.Info("cash withdrawal recorded",
		zap.String("withdrawal_id", withdrawal.ID.String()),
		zap.String("operator", operator.Name),
		zap.String("amount", withdrawal.Amount.String()),
	)

	return toWithdrawalResponse(withdrawal), nil
}
