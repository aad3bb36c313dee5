package cashdrawer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
	"github.com/posdesk/backend/internal/domain/identity"
	"github.com/posdesk/backend/internal/domain/shared"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

// ShiftService provides application-level shift lifecycle operations
type ShiftService struct {
	sessions   cashdrawer.SessionRepository
	operators  identity.OperatorRepository
	guard      *cashdrawer.SessionGuard
	reconciler *cashdrawer.Reconciler
	logger     *zap.Logger
}

// NewShiftService creates a new ShiftService
func NewShiftService(
	sessions cashdrawer.SessionRepository,
	operators identity.OperatorRepository,
	guard *cashdrawer.SessionGuard,
	reconciler *cashdrawer.Reconciler,
	logger *zap.Logger,
) *ShiftService {
	return &ShiftService{
		sessions:   sessions,
		operators:  operators,
		guard:      guard,
		reconciler: reconciler,
		logger:     logger,
	}
}

// OpenOrResume is the terminal's entry point when an operator signs on.
// The caller gets their own open session back unchanged, a conflict
// naming the drawer's holder, or a freshly opened session. Privileged
// operators are never auto-opened; they get the observer outcome and
// must call OpenManual to take the drawer.
func (s *ShiftService) OpenOrResume(ctx context.Context, operatorID uuid.UUID) (*OpenShiftResult, error) {
	operator, err := s.operators.FindByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	result, err := s.guard.TryAcquire(ctx, operator)
	if err != nil {
		return nil, err
	}

	switch result.Outcome {
	case cashdrawer.OutcomeResumed:
		return &OpenShiftResult{Outcome: ShiftResumed, Session: toSessionResponse(result.Session)}, nil

	case cashdrawer.OutcomeDenied:
		return nil, cashdrawer.NewDrawerHeldError(result.Session.OperatorName)
	}

	if operator.IsPrivileged() {
		return &OpenShiftResult{Outcome: ShiftObserver}, nil
	}

	session, err := s.open(ctx, operator)
	if err != nil {
		return nil, err
	}

	return &OpenShiftResult{Outcome: ShiftOpened, Session: toSessionResponse(session)}, nil
}

// OpenManual explicitly opens a session for a privileged operator
func (s *ShiftService) OpenManual(ctx context.Context, operatorID uuid.UUID) (*SessionResponse, error) {
	operator, err := s.operators.FindByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if !operator.IsPrivileged() {
		return nil, shared.ErrForbidden
	}

	open, err := s.sessions.FindOpen(ctx)
	if err == nil {
		return nil, cashdrawer.NewDrawerHeldError(open.OperatorName)
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	session, err := s.open(ctx, operator)
	if err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (s *ShiftService) open(ctx context.Context, operator *identity.Operator) (*cashdrawer.CashSession, error) {
	now := time.Now()

	opening, err := s.reconciler.OpeningBalance(ctx, now)
	if err != nil {
		return nil, err
	}

	session := cashdrawer.NewCashSession(operator.ID, operator.Name, opening, now)

	if err := s.sessions.Insert(ctx, session); err != nil {
		// lost the race against a concurrent open
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, cashdrawer.ErrSessionOpen
		}
		return nil, err
	}

	s.logger.Info("cash session opened",
		zap.String("session_id", session.ID.String()),
		zap.String("operator", operator.Name),
		zap.String("opening_cash", opening.String()),
	)

	return session, nil
}

// Close reconciles and closes the caller's open session. One timestamp
// is taken up front and drives every window computation so the figures
// stay consistent no matter how long the queries take.
func (s *ShiftService) Close(ctx context.Context, operatorID uuid.UUID, req CloseShiftRequest) (*SessionResponse, error) {
	operator, err := s.operators.FindByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.FindOpenByOperator(ctx, operator.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, cashdrawer.ErrNoOpenSession
		}
		return nil, err
	}

	closeTime := time.Now()

	theoretical, err := s.reconciler.TheoreticalClosing(ctx, session, closeTime)
	if err != nil {
		return nil, err
	}

	var actual valueobject.Money
	switch {
	case req.ActualCash != nil:
		actual = valueobject.NewMoney(*req.ActualCash)
	case operator.IsPrivileged():
		// quick close: trust the books, variance is zero
		actual = theoretical
	default:
		return nil, cashdrawer.ErrActualCashRequired
	}

	if err := session.Close(theoretical, actual, closeTime); err != nil {
		return nil, err
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("cash session closed",
		zap.String("session_id", session.ID.String()),
		zap.String("operator", operator.Name),
		zap.String("theoretical", theoretical.String()),
		zap.String("actual", actual.String()),
		zap.String("variance", session.Variance.String()),
	)

	return toSessionResponse(session), nil
}

// MarkStockControlDone annotates the caller's open session. It is a
// silent no-op when the caller holds no session; the stock-count hook
// fires regardless of drawer state.
func (s *ShiftService) MarkStockControlDone(ctx context.Context, operatorID uuid.UUID) error {
	session, err := s.sessions.FindOpenByOperator(ctx, operatorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := session.MarkStockControlDone(); err != nil {
		return err
	}

	return s.sessions.Update(ctx, session)
}

// StockControlStatus reports the stock-count state of the caller's open session
func (s *ShiftService) StockControlStatus(ctx context.Context, operatorID uuid.UUID) (*StockControlStatusResponse, error) {
	session, err := s.sessions.FindOpenByOperator(ctx, operatorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &StockControlStatusResponse{}, nil
		}
		return nil, err
	}

	return &StockControlStatusResponse{SessionOpen: true, Done: session.StockControlDone}, nil
}

// Active reports whether the caller holds the open session
func (s *ShiftService) Active(ctx context.Context, operatorID uuid.UUID) (*ActiveResponse, error) {
	session, err := s.sessions.FindOpenByOperator(ctx, operatorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &ActiveResponse{}, nil
		}
		return nil, err
	}

	return &ActiveResponse{Active: true, Session: toSessionResponse(session)}, nil
}
