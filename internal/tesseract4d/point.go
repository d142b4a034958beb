package tesseract4d

type Real = float64

// Point4 represents a point in 4-dimensional space.
type Point4 struct {
	X, Y, Z, W Real
}

// Point3 is the intermediate point produced by the first projection stage.
type Point3 struct {
	X, Y, Z Real
}
