// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Direction    string          `gorm:"type:varchar(10);not null;index"`
	Details      string          `gorm:"type:varchar(500);not null"`
	Category     string          `gorm:"type:varchar(100)"`
	IsSimulation bool            `gorm:"not null;default:false"`
	Settled      bool            `gorm:"not null;default:false"`
	FixedCostID  *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Date:         calendar.Normalize(m.Date),
		Amount:       m.Amount,
		Direction:    entity.Direction(m.Direction),
		Details:      m.Details,
		Category:     m.Category,
		IsSimulation: m.IsSimulation,
		Settled:      m.Settled,
		FixedCostID:  m.FixedCostID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           t.ID,
		UserID:       t.UserID,
		Date:         calendar.Normalize(t.Date),
		Amount:       t.Amount,
		Direction:    string(t.Direction),
		Details:      t.Details,
		Category:     t.Category,
		IsSimulation: t.IsSimulation,
		Settled:      t.Settled,
		FixedCostID:  t.FixedCostID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
