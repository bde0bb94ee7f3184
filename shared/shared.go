package shared

import (
	"math"
	"strings"
)

const cacheKeySeparator = ":"

// CalculateTotalPage returns the number of pages needed to hold total items,
// zero when there are no items at all.
func CalculateTotalPage(total, limit int) (res int) {
	if total <= 0 || limit <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// BuildCacheKey joins key parts into a single namespaced cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}
