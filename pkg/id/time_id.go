package id

import (
	"fmt"
	"time"
)

// TimeId returns a millisecond timestamp concatenated with a short random
// suffix. Sortable by creation time; the suffix keeps same-millisecond
// collisions negligible.
func TimeId() string {
	suffix := ShortId()
	if suffix == "" {
		suffix = GetUUIDWithoutDashes()[:9]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
