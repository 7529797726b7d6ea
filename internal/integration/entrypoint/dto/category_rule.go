package dto

import (
	"time"

	categoryrule "github.com/liq-planung/backend/internal/application/usecase/category_rule"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// CreateCategoryRuleRequest represents the request body for category rule creation.
type CreateCategoryRuleRequest struct {
	Pattern  string `json:"pattern"`
	Category string `json:"category"`
	Priority *int   `json:"priority,omitempty"`
}

// TestPatternRequest represents the request body for pattern testing.
type TestPatternRequest struct {
	Pattern string `json:"pattern"`
	Limit   int    `json:"limit,omitempty"`
}

// CategoryRuleResponse represents a single category rule in API responses.
type CategoryRuleResponse struct {
	ID        string    `json:"id"`
	Pattern   string    `json:"pattern"`
	Category  string    `json:"category"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryRuleListResponse represents the response for listing category rules.
type CategoryRuleListResponse struct {
	Rules []CategoryRuleResponse `json:"rules"`
}

// TestPatternResponse represents the response for pattern testing.
type TestPatternResponse struct {
	MatchingTransactions []MatchingTransactionResponse `json:"matching_transactions"`
	MatchCount           int                           `json:"match_count"`
}

// MatchingTransactionResponse represents a matching transaction in the response.
type MatchingTransactionResponse struct {
	ID      string  `json:"id"`
	Details string  `json:"details"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
}

// ToCategoryRuleResponse converts a domain CategoryRule to a CategoryRuleResponse DTO.
func ToCategoryRuleResponse(rule *entity.CategoryRule) CategoryRuleResponse {
	return CategoryRuleResponse{
		ID:        rule.ID.String(),
		Pattern:   rule.Pattern,
		Category:  rule.Category,
		Priority:  rule.Priority,
		CreatedAt: rule.CreatedAt,
		UpdatedAt: rule.UpdatedAt,
	}
}

// ToCategoryRuleListResponse converts a list of domain CategoryRules.
func ToCategoryRuleListResponse(rules []*entity.CategoryRule) CategoryRuleListResponse {
	items := make([]CategoryRuleResponse, 0, len(rules))
	for _, rule := range rules {
		items = append(items, ToCategoryRuleResponse(rule))
	}
	return CategoryRuleListResponse{Rules: items}
}

// ToTestPatternResponse converts a TestPatternOutput to a TestPatternResponse DTO.
func ToTestPatternResponse(output *categoryrule.TestPatternOutput) TestPatternResponse {
	matches := make([]MatchingTransactionResponse, 0, len(output.MatchingTransactions))
	for _, txn := range output.MatchingTransactions {
		matches = append(matches, MatchingTransactionResponse{
			ID:      txn.ID.String(),
			Details: txn.Details,
			Amount:  Money(txn.SignedAmount()),
			Date:    Date(txn.Date),
		})
	}
	return TestPatternResponse{
		MatchingTransactions: matches,
		MatchCount:           output.MatchCount,
	}
}
