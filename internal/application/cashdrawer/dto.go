package cashdrawer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
)

// SessionResponse represents a cash session in API responses
type SessionResponse struct {
	ID                     uuid.UUID        `json:"id"`
	OperatorID             uuid.UUID        `json:"operator_id"`
	OperatorName           string           `json:"operator_name"`
	Status                 string           `json:"status"`
	OpenedAt               time.Time        `json:"opened_at"`
	ClosedAt               *time.Time       `json:"closed_at,omitempty"`
	OpeningCash            decimal.Decimal  `json:"opening_cash"`
	TheoreticalClosingCash *decimal.Decimal `json:"theoretical_closing_cash,omitempty"`
	ActualClosingCash      decimal.Decimal  `json:"actual_closing_cash"`
	Variance               decimal.Decimal  `json:"variance"`
	StockControlDone       bool             `json:"stock_control_done"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
	Version                int              `json:"version"`
}

func toSessionResponse(s *cashdrawer.CashSession) *SessionResponse {
	resp := &SessionResponse{
		ID:                s.ID,
		OperatorID:        s.OperatorID,
		OperatorName:      s.OperatorName,
		Status:            string(s.Status),
		OpenedAt:          s.OpenedAt,
		ClosedAt:          s.ClosedAt,
		OpeningCash:       s.OpeningCash.Amount(),
		ActualClosingCash: s.ActualClosingCash.Amount(),
		Variance:          s.Variance.Amount(),
		StockControlDone:  s.StockControlDone,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		Version:           s.Version,
	}
	if s.TheoreticalClosingCash != nil {
		amount := s.TheoreticalClosingCash.Amount()
		resp.TheoreticalClosingCash = &amount
	}
	return resp
}

// Shift outcomes returned by OpenOrResume
const (
	ShiftOpened   = "opened"
	ShiftResumed  = "resumed"
	ShiftObserver = "observer"
)

// OpenShiftResult is the outcome of an operator approaching the drawer.
// Session is nil for the observer outcome: a privileged operator is not
// handed a session implicitly and must open one explicitly.
type OpenShiftResult struct {
	Outcome string           `json:"outcome"`
	Session *SessionResponse `json:"session,omitempty"`
}

// CloseShiftRequest carries the operator's counted cash. The amount is
// optional only for privileged operators (quick close at theoretical).
type CloseShiftRequest struct {
	ActualCash *decimal.Decimal `json:"actual_cash"`
}

// RecordWithdrawalRequest represents a request to take cash out of the drawer
type RecordWithdrawalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason string          `json:"reason"`
}

// WithdrawalResponse represents a withdrawal in API responses
type WithdrawalResponse struct {
	ID         uuid.UUID       `json:"id"`
	OperatorID uuid.UUID       `json:"operator_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func toWithdrawalResponse(w *cashdrawer.CashWithdrawal) *WithdrawalResponse {
	return &WithdrawalResponse{
		ID:         w.ID,
		OperatorID: w.OperatorID,
		Amount:     w.Amount.Amount(),
		Reason:     w.Reason,
		OccurredAt: w.OccurredAt,
	}
}

// HistoryFilter defines filtering options for session history queries
type HistoryFilter struct {
	FromDate         *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate           *time.Time `form:"to_date" time_format:"2006-01-02"`
	OperatorID       *uuid.UUID `form:"operator_id"`
	VarianceOnly     bool       `form:"variance_only"`
	StockControlDone *bool      `form:"stock_control_done"`
	Limit            int        `form:"limit"`
}

// StockControlStatusResponse reports the stock-count state of the
// caller's open session
type StockControlStatusResponse struct {
	SessionOpen bool `json:"session_open"`
	Done        bool `json:"done"`
}

// ActiveResponse reports whether the caller holds the open session
type ActiveResponse struct {
	Active  bool             `json:"active"`
	Session *SessionResponse `json:"session,omitempty"`
}

// DailySalesPoint is one day in the dashboard sales series
type DailySalesPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// SummaryResponse is the dashboard snapshot for today
type SummaryResponse struct {
	Date                string                     `json:"date"`
	TotalSales          decimal.Decimal            `json:"total_sales"`
	SalesByMethod       map[string]decimal.Decimal `json:"sales_by_method"`
	EstimatedCashOnHand decimal.Decimal            `json:"estimated_cash_on_hand"`
	DailySales          []DailySalesPoint          `json:"daily_sales"`
}
