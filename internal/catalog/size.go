package catalog

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders bytes in base-1024 units with at most two decimals.
// Zero renders as "-" so folders show no size.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "-"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
