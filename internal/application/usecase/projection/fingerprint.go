package projection

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint returns a SHA-256 hex digest of the complete projection input:
// window, options, starting balance and every record. Two inputs with the
// same fingerprint project to the same ledger, so it is safe as a cache key.
func Fingerprint(input LedgerInput) (string, error) {
	// encoding/json emits struct fields in declaration order, which keeps
	// the encoding canonical for a given input.
	payload, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode projection input: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
