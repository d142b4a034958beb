package tesseract4d

const (
	numVertices = 16
	numEdges    = 32
)

// Edge joins two indices into the vertex set. A and B always satisfy A < B.
type Edge struct {
	A, B int
}

// hypercubeVertices returns the 16 corners of the unit tesseract in a
// fixed order: bits 0..3 of the index select the sign of X,Y,Z,W
// (0 -> -1, 1 -> +1). Callers index vertices by position, so the order
// is part of the contract.
func hypercubeVertices() [numVertices]Point4 {
	var vs [numVertices]Point4
	for i := range vs {
		vs[i] = Point4{
			X: axisSign(i, 0),
			Y: axisSign(i, 1),
			Z: axisSign(i, 2),
			W: axisSign(i, 3),
		}
	}
	return vs
}

func axisSign(i, bit int) Real {
	if i&(1<<bit) != 0 {
		return 1
	}
	return -1
}

// hypercubeEdges pairs every two vertices that differ in exactly one
// coordinate. Each of the 16 vertices has degree 4, giving 32 edges.
func hypercubeEdges(vs [numVertices]Point4) []Edge {
	edges := make([]Edge, 0, numEdges)
	for a := 0; a < numVertices; a++ {
		for b := a + 1; b < numVertices; b++ {
			if coordDiff(vs[a], vs[b]) == 1 {
				edges = append(edges, Edge{A: a, B: b})
			}
		}
	}
	return edges
}

func coordDiff(p, q Point4) int {
	n := 0
	if p.X != q.X {
		n++
	}
	if p.Y != q.Y {
		n++
	}
	if p.Z != q.Z {
		n++
	}
	if p.W != q.W {
		n++
	}
	return n
}

// Generated once at package init and never mutated; per-frame rotation
// works on copies.
var (
	tesseractVertices = hypercubeVertices()
	tesseractEdges    = hypercubeEdges(tesseractVertices)
)
