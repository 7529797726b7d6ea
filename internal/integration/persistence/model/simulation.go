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

// SimulationModel represents the simulations table in the database.
type SimulationModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Direction string          `gorm:"type:varchar(10);not null"`
	Date      time.Time       `gorm:"type:date;not null"`
	Recurring bool            `gorm:"not null;default:false"`
	Interval  *string         `gorm:"type:varchar(20)"`
	EndDate   *time.Time      `gorm:"type:date"`
	Active    bool            `gorm:"not null"`
	Category  *string         `gorm:"type:varchar(100)"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the SimulationModel.
func (SimulationModel) TableName() string {
	return "simulations"
}

// ToEntity converts a SimulationModel to a domain Simulation entity.
func (m *SimulationModel) ToEntity() *entity.Simulation {
	var interval *entity.Rhythm
	if m.Interval != nil {
		r := entity.Rhythm(*m.Interval)
		interval = &r
	}

	return &entity.Simulation{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		Direction: entity.Direction(m.Direction),
		Date:      calendar.Normalize(m.Date),
		Recurring: m.Recurring,
		Interval:  interval,
		EndDate:   normalizePtr(m.EndDate),
		Active:    m.Active,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SimulationFromEntity creates a SimulationModel from a domain Simulation entity.
func SimulationFromEntity(s *entity.Simulation) *SimulationModel {
	var interval *string
	if s.Interval != nil {
		v := string(*s.Interval)
		interval = &v
	}

	return &SimulationModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		Amount:    s.Amount,
		Direction: string(s.Direction),
		Date:      calendar.Normalize(s.Date),
		Recurring: s.Recurring,
		Interval:  interval,
		EndDate:   normalizePtr(s.EndDate),
		Active:    s.Active,
		Category:  s.Category,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
