package tesseract4d

// Projected is a vertex mapped to 2D. X and Y are in normalized space
// (screen mapping happens in the renderer); Depth keeps the pre-scaled
// 3D z for ordering and styling and is never projected further.
type Projected struct {
	X, Y  Real
	Depth Real
}

// projectTo3D drops the W axis with a perspective divide: larger W lands
// closer to the viewer. focalW must stay above the largest attainable
// |W| or the denominator collapses; Theme.validate enforces the margin.
func projectTo3D(p Point4, focalW Real) Point3 {
	s := focalW / (focalW - p.W)
	return Point3{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// projectTo2D repeats the divide using Z as depth. The returned Depth is
// the raw (unscaled) Z.
func projectTo2D(p Point3, focalZ Real) Projected {
	s := focalZ / (focalZ - p.Z)
	return Projected{X: p.X * s, Y: p.Y * s, Depth: p.Z}
}
