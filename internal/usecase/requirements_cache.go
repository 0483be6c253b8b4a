package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// JSONCache stores JSON-encoded values. Misses and outages both read as
// (false, nil) or an error the caller may ignore.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

const requirementsKeyPrefix = "extract:"

func normalizeMessage(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// RequirementsCacheKey identifies a request message independent of case and
// spacing.
func RequirementsCacheKey(message string) string {
	sum := sha256.Sum256([]byte(normalizeMessage(message)))
	return requirementsKeyPrefix + hex.EncodeToString(sum[:])
}
