package camera

import (
	"sort"
)

// SortByDepth orders points farthest-first so that nearer points and
// their connections are drawn last and occlude correctly. Stability is
// not required; ties draw in arbitrary order.
func SortByDepth(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Depth > points[j].Depth
	})
}
