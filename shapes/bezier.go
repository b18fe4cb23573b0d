package shapes

// bezier2 is a planar cubic Bezier segment.
type bezier2 [4][2]float32

// eval returns the point and the first derivative at u in [0, 1].
func (b bezier2) eval(u float32) (pt, d [2]float32) {
	v := 1 - u
	b0, b1, b2, b3 := v*v*v, 3*v*v*u, 3*v*u*u, u*u*u
	d0, d1, d2 := 3*v*v, 6*v*u, 3*u*u
	for k := 0; k < 2; k++ {
		pt[k] = b0*b[0][k] + b1*b[1][k] + b2*b[2][k] + b3*b[3][k]
		d[k] = d0*(b[1][k]-b[0][k]) + d1*(b[2][k]-b[1][k]) + d2*(b[3][k]-b[2][k])
	}
	return pt, d
}

// curve is a chain of Bezier segments sampled with a fixed number of
// steps per segment.
type curve []bezier2

// samples returns the number of points sample produces.
func (c curve) samples(steps int) int { return len(c)*steps + 1 }

// sample returns point k of c.samples(steps). Joints between segments are
// evaluated at the start of the following segment.
func (c curve) sample(k, steps int) (pt, d [2]float32) {
	seg := k / steps
	u := float32(k%steps) / float32(steps)
	if seg == len(c) {
		seg, u = len(c)-1, 1
	}
	return c[seg].eval(u)
}
