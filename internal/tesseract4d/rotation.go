package tesseract4d

import "math"

// SpinRates are angular velocities (radians per phase unit) for rotations
// in coordinate planes.
type SpinRates struct {
	XW Real `json:"xw"`
	YW Real `json:"yw"`
	ZW Real `json:"zw"`
	XY Real `json:"xy"`
	YZ Real `json:"yz"`
	XZ Real `json:"xz"`
}

// DefaultSpinRates produce the stock tumbling motion. The coefficients
// and the application order in spinMatrix are part of the visual
// contract: changing either changes the animation.
var DefaultSpinRates = SpinRates{XW: 0.7, YW: 0.5, ZW: 0.3, XY: 0.4, YZ: 0.35}

func rotXY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}
func rotXZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, -s
	M.M[2][0], M.M[2][2] = s, c
	return M
}
func rotXW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][3] = c, -s
	M.M[3][0], M.M[3][3] = s, c
	return M
}
func rotYZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}
func rotYW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][3] = c, -s
	M.M[3][1], M.M[3][3] = s, c
	return M
}
func rotZW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[2][2], M.M[2][3] = c, -s
	M.M[3][2], M.M[3][3] = s, c
	return M
}

// spinMatrix composes the rotation for phase t. Planes apply to the
// evolving vector in a fixed order (XW, YW, ZW, XY, YZ, XZ); plane
// rotations don't commute, so the order matters. XZ spins at rate 0 by
// default and then contributes an identity factor.
func spinMatrix(r SpinRates, t Real) Mat4 {
	R := I4()
	R = rotXW(r.XW * t).Mul(R)
	R = rotYW(r.YW * t).Mul(R)
	R = rotZW(r.ZW * t).Mul(R)
	R = rotXY(r.XY * t).Mul(R)
	R = rotYZ(r.YZ * t).Mul(R)
	R = rotXZ(r.XZ * t).Mul(R)
	return R
}
