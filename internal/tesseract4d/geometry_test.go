package tesseract4d

import "testing"

func TestHypercubeVertices(t *testing.T) {
	vs := hypercubeVertices()
	if len(vs) != 16 {
		t.Fatalf("expected 16 vertices, got %d", len(vs))
	}
	seen := map[Point4]bool{}
	for i, v := range vs {
		for _, c := range []Real{v.X, v.Y, v.Z, v.W} {
			if c != 1 && c != -1 {
				t.Fatalf("vertex %d has component %v outside {-1,+1}: %+v", i, c, v)
			}
		}
		if seen[v] {
			t.Fatalf("duplicate vertex %d: %+v", i, v)
		}
		seen[v] = true
	}
}

func TestHypercubeVerticesBitOrder(t *testing.T) {
	vs := hypercubeVertices()
	// bit 0 -> X, bit 3 -> W; 0 -> -1, 1 -> +1
	if (vs[0] != Point4{-1, -1, -1, -1}) {
		t.Fatalf("vertex 0: %+v", vs[0])
	}
	if (vs[1] != Point4{1, -1, -1, -1}) {
		t.Fatalf("vertex 1: %+v", vs[1])
	}
	if (vs[8] != Point4{-1, -1, -1, 1}) {
		t.Fatalf("vertex 8: %+v", vs[8])
	}
	if (vs[15] != Point4{1, 1, 1, 1}) {
		t.Fatalf("vertex 15: %+v", vs[15])
	}
}

func TestHypercubeEdges(t *testing.T) {
	vs := hypercubeVertices()
	edges := hypercubeEdges(vs)
	if len(edges) != 32 {
		t.Fatalf("expected 32 edges, got %d", len(edges))
	}
	degree := make([]int, 16)
	seen := map[Edge]bool{}
	for _, e := range edges {
		if e.A == e.B {
			t.Fatalf("self edge: %+v", e)
		}
		if e.A > e.B {
			t.Fatalf("edge indices not ordered: %+v", e)
		}
		if seen[e] {
			t.Fatalf("duplicate edge: %+v", e)
		}
		seen[e] = true
		if d := coordDiff(vs[e.A], vs[e.B]); d != 1 {
			t.Fatalf("edge %+v differs in %d coordinates, want 1", e, d)
		}
		degree[e.A]++
		degree[e.B]++
	}
	for i, d := range degree {
		if d != 4 {
			t.Fatalf("vertex %d has degree %d, want 4", i, d)
		}
	}
}
