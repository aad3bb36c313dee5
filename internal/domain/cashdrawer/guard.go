package cashdrawer

import (
	"context"
	"errors"

	"github.com/posdesk/backend/internal/domain/identity"
	"github.com/posdesk/backend/internal/domain/shared"
)

// AcquireOutcome is the result of an operator approaching the drawer
type AcquireOutcome string

const (
	// OutcomeResumed means the operator already holds the open session
	OutcomeResumed AcquireOutcome = "resumed"
	// OutcomeDenied means another operator holds the drawer
	OutcomeDenied AcquireOutcome = "denied"
	// OutcomeEligible means the operator may open a session (or, for a
	// privileged operator, observe without taking the drawer)
	OutcomeEligible AcquireOutcome = "eligible"
)

// AcquireResult carries the outcome plus the open session when one exists
type AcquireResult struct {
	Outcome AcquireOutcome
	Session *CashSession
}

// SessionGuard decides who may work the drawer. The decision is
// check-then-act; SessionRepository.Insert is what finally arbitrates
// a race between two opens.
type SessionGuard struct {
	sessions SessionRepository
}

// NewSessionGuard creates a guard over the session repository
func NewSessionGuard(sessions SessionRepository) *SessionGuard {
	return &SessionGuard{sessions: sessions}
}

// TryAcquire resolves the operator's standing at the drawer. A privileged
// operator is never denied but is also never handed someone else's
// session; they stay eligible to observe.
func (g *SessionGuard) TryAcquire(ctx context.Context, operator *identity.Operator) (AcquireResult, error) {
	open, err := g.sessions.FindOpen(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return AcquireResult{Outcome: OutcomeEligible}, nil
		}
		return AcquireResult{}, err
	}

	if open.BelongsTo(operator.ID) {
		return AcquireResult{Outcome: OutcomeResumed, Session: open}, nil
	}

	if operator.IsPrivileged() {
		return AcquireResult{Outcome: OutcomeEligible, Session: open}, nil
	}

	return AcquireResult{Outcome: OutcomeDenied, Session: open}, nil
}
