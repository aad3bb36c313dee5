package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
	"github.com/posdesk/backend/internal/domain/shared/valueobject"
)

// CashSessionModel is the persistence model for cash sessions
type CashSessionModel struct {
	AggregateModel
	OperatorID             uuid.UUID        `gorm:"type:uuid;not null;index"`
	OperatorName           string           `gorm:"size:255;not null"`
	Status                 string           `gorm:"size:16;not null;index"`
	OpenedAt               time.Time        `gorm:"not null;index"`
	ClosedAt               *time.Time       `gorm:"index"`
	OpeningCash            decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	TheoreticalClosingCash *decimal.Decimal `gorm:"type:numeric(14,2)"`
	ActualClosingCash      decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	Variance               decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	StockControlDone       bool             `gorm:"not null;default:false"`
}

// TableName overrides the table name
func (CashSessionModel) TableName() string {
	return "cash_sessions"
}

// ToDomain converts the model to a domain CashSession
func (m *CashSessionModel) ToDomain() *cashdrawer.CashSession {
	session := &cashdrawer.CashSession{
		OperatorID:        m.OperatorID,
		OperatorName:      m.OperatorName,
		Status:            cashdrawer.SessionStatus(m.Status),
		OpenedAt:          m.OpenedAt,
		ClosedAt:          m.ClosedAt,
		OpeningCash:       valueobject.NewMoney(m.OpeningCash),
		ActualClosingCash: valueobject.NewMoney(m.ActualClosingCash),
		Variance:          valueobject.NewMoney(m.Variance),
		StockControlDone:  m.StockControlDone,
	}
	m.PopulateAggregateRoot(&session.BaseAggregateRoot)
	if m.TheoreticalClosingCash != nil {
		theoretical := valueobject.NewMoney(*m.TheoreticalClosingCash)
		session.TheoreticalClosingCash = &theoretical
	}
	return session
}

// FromDomain populates the model from a domain CashSession
func (m *CashSessionModel) FromDomain(s *cashdrawer.CashSession) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.OperatorID = s.OperatorID
	m.OperatorName = s.OperatorName
	m.Status = string(s.Status)
	m.OpenedAt = s.OpenedAt
	m.ClosedAt = s.ClosedAt
	m.OpeningCash = s.OpeningCash.Amount()
	m.ActualClosingCash = s.ActualClosingCash.Amount()
	m.Variance = s.Variance.Amount()
	m.StockControlDone = s.StockControlDone
	if s.TheoreticalClosingCash != nil {
		theoretical := s.TheoreticalClosingCash.Amount()
		m.TheoreticalClosingCash = &theoretical
	} else {
		m.TheoreticalClosingCash = nil
	}
}

// CashWithdrawalModel is the persistence model for the withdrawal ledger
type CashWithdrawalModel struct {
	BaseModel
	OperatorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Reason     string          `gorm:"size:500"`
	OccurredAt time.Time       `gorm:"not null;index"`
}

// TableName overrides the table name
func (CashWithdrawalModel) TableName() string {
	return "cash_withdrawals"
}

// ToDomain converts the model to a domain CashWithdrawal
func (m *CashWithdrawalModel) ToDomain() *cashdrawer.CashWithdrawal {
	return &cashdrawer.CashWithdrawal{
		BaseEntity: m.BaseModel.ToDomain(),
		OperatorID: m.OperatorID,
		Amount:     valueobject.NewMoney(m.Amount),
		Reason:     m.Reason,
		OccurredAt: m.OccurredAt,
	}
}

// FromDomain populates the model from a domain CashWithdrawal
func (m *CashWithdrawalModel) FromDomain(w *cashdrawer.CashWithdrawal) {
	m.FromDomainBaseEntity(w.BaseEntity)
	m.OperatorID = w.OperatorID
	m.Amount = w.Amount.Amount()
	m.Reason = w.Reason
	m.OccurredAt = w.OccurredAt
}

// PosSaleModel is the drawer's read-only view of the sales ledger. The
// checkout subsystem owns writes to this table.
type PosSaleModel struct {
	BaseModel
	OperatorID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentMethod string          `gorm:"size:32;not null;index"`
	SoldAt        time.Time       `gorm:"not null;index"`
}

// TableName overrides the table name
func (PosSaleModel) TableName() string {
	return "pos_sales"
}
