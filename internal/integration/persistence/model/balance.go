// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// BalanceSnapshotModel represents the balance_snapshots table in the database.
type BalanceSnapshotModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_balance_user_date"`
	Date      time.Time       `gorm:"type:date;not null;index:idx_balance_user_date"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BalanceSnapshotModel.
func (BalanceSnapshotModel) TableName() string {
	return "balance_snapshots"
}

// ToEntity converts a BalanceSnapshotModel to a domain BalanceSnapshot entity.
func (m *BalanceSnapshotModel) ToEntity() *entity.BalanceSnapshot {
	return &entity.BalanceSnapshot{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      calendar.Normalize(m.Date),
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// BalanceSnapshotFromEntity creates a BalanceSnapshotModel from a domain BalanceSnapshot entity.
func BalanceSnapshotFromEntity(b *entity.BalanceSnapshot) *BalanceSnapshotModel {
	return &BalanceSnapshotModel{
		ID:        b.ID,
		UserID:    b.UserID,
		Date:      calendar.Normalize(b.Date),
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
	}
}
