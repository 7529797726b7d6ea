// Package categoryrule contains category rule-related use cases.
package categoryrule

import (
	"fmt"
	"strings"
	"unicode"

	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

const (
	// MaxPatternLength is the maximum allowed length for glob patterns.
	MaxPatternLength = 255
)

// validatePattern checks a glob pattern such as "*miete*".
func validatePattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return domainerror.NewCategoryRuleError(
			domainerror.ErrCodeMissingRuleFields,
			"pattern is required",
			domainerror.ErrCategoryRuleMissingFields,
		)
	}

	if len(pattern) > MaxPatternLength {
		return domainerror.NewCategoryRuleError(
			domainerror.ErrCodeInvalidPattern,
			fmt.Sprintf("pattern must not exceed %d characters", MaxPatternLength),
			domainerror.ErrInvalidPattern,
		)
	}

	for _, r := range pattern {
		if unicode.IsControl(r) {
			return domainerror.NewCategoryRuleError(
				domainerror.ErrCodeInvalidPattern,
				"pattern must not contain control characters",
				domainerror.ErrInvalidPattern,
			)
		}
	}

	return nil
}
