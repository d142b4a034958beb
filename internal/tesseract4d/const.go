package tesseract4d

const (
	// MaxFrameDelta caps the per-tick clock delta (seconds), so a surface
	// coming back from a long pause does not jump the animation.
	MaxFrameDelta = 0.05
	// MaxSpeed bounds the animation speed multiplier.
	MaxSpeed = 10.0

	// vertexRadius is |(±1,±1,±1,±1)| = 2; plane rotations preserve it,
	// so no rotated coordinate can exceed it.
	vertexRadius = 2.0
	// maxProjectedZ bounds |z·focalW/(focalW−w)| over the vertex sphere
	// at the default focal distance (maximum ≈ 2.31 at z=√3, w=1).
	maxProjectedZ = 2.31
	// focalMargin is the required gap between a focal distance and the
	// largest coordinate it may divide by.
	focalMargin = 0.5
)
