package projection

import (
	"sort"
	"strings"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// Categorizer assigns ledger categories to transactions.
type Categorizer struct {
	rules []*entity.CategoryRule
}

// NewCategorizer orders rules by descending priority; rules of equal
// priority keep their given order.
func NewCategorizer(rules []*entity.CategoryRule) Categorizer {
	ordered := make([]*entity.CategoryRule, 0, len(rules))
	for _, r := range rules {
		if r != nil && strings.TrimSpace(r.Pattern) != "" {
			ordered = append(ordered, r)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})
	return Categorizer{rules: ordered}
}

// Categorize returns the transaction's own category, the category of the
// first matching rule, or entity.UncategorizedCategory.
func (c Categorizer) Categorize(txn *entity.Transaction) string {
	if category := strings.TrimSpace(txn.Category); category != "" {
		return category
	}
	for _, r := range c.rules {
		if r.Matches(txn.Details) {
			return r.Category
		}
	}
	return entity.UncategorizedCategory
}
