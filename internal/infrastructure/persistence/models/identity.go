package models

import (
	"github.com/posdesk/backend/internal/domain/identity"
)

// UserModel is a read model over the shared users table owned by the
// auth subsystem. The drawer only reads id, name and role.
type UserModel struct {
	BaseModel
	Name string `gorm:"size:255;not null"`
	Role string `gorm:"size:32;not null"`
}

// TableName overrides the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain Operator
func (m *UserModel) ToDomain() *identity.Operator {
	return &identity.Operator{
		ID:   m.ID,
		Name: m.Name,
		Role: identity.ParseRole(m.Role),
	}
}
