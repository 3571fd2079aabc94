package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates an opaque entity ID derived from the given creation time.
//
// The decimal nanosecond timestamp keeps IDs roughly sortable by creation
// order; the random suffix guarantees uniqueness when two creations land on
// the same clock tick. Callers must treat the result as an opaque string.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(now.UnixNano(), 10) + "-" + suffix
}
