package tesseract4d

import "sort"

func meanDepth(e Edge, pv []Projected) Real {
	return (pv[e.A].Depth + pv[e.B].Depth) * 0.5
}

// sortEdgesByDepth orders edges back-to-front for painter's-algorithm
// drawing: most negative (farthest) mean depth first, so nearer strokes
// overdraw farther ones. The sort is stable; edges with equal depth keep
// their generation order.
func sortEdgesByDepth(edges []Edge, pv []Projected) []Edge {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return meanDepth(sorted[i], pv) < meanDepth(sorted[j], pv)
	})
	return sorted
}
