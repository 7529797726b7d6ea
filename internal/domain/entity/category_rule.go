// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// CategoryRule assigns a category to transactions whose details match a
// case-insensitive glob pattern (e.g. "*miete*").
type CategoryRule struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Pattern   string
	Category  string
	Priority  int // Higher priority rules are checked first
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategoryRule creates a new CategoryRule entity.
func NewCategoryRule(userID uuid.UUID, pattern, category string, priority int) *CategoryRule {
	now := time.Now().UTC()

	return &CategoryRule{
		ID:        uuid.New(),
		UserID:    userID,
		Pattern:   pattern,
		Category:  category,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Matches reports whether details match the rule's pattern.
func (r *CategoryRule) Matches(details string) bool {
	return glob.Glob(strings.ToLower(r.Pattern), strings.ToLower(details))
}
