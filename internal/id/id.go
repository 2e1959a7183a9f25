package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns an opaque token for bills and line items. The millisecond
// prefix makes tokens sort by creation order; the uuid suffix keeps them
// unique when several are minted in the same millisecond.
func New() string {
	return fmt.Sprintf("%013d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Timestamp extracts the creation time from a token.
func Timestamp(token string) (time.Time, error) {
	prefix, _, ok := strings.Cut(token, "-")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid token format: %q", token)
	}
	ms, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid token timestamp %q: %w", prefix, err)
	}
	return time.UnixMilli(ms), nil
}
