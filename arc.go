package svgpath

import "math"

// DefaultArcTolerance is the largest distance, in user units, between
// an elliptical arc and the cubic curves that replace it.
const DefaultArcTolerance = 1e-3

// arcTo appends the arc from the current point to p. An arc that ends
// where it starts draws nothing and an arc with a zero radius is a
// straight line, as is one whose radii are too large to compute with.
func (c *cursor) arcTo(rx, ry, rotation float64, large, sweep bool, p Tuple) {
	if p == c.cur {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		c.lineTo(p)
		return
	}

	e := centerArc(c.cur, rx, ry, rotation, large, sweep, p)
	if !finite(e.cx) || !finite(e.cy) || !finite(e.sweep) {
		c.lineTo(p)
		return
	}
	n := e.segments(c.tol)
	step := e.sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	theta := e.theta
	p0 := e.point(theta)
	for i := 0; i < n; i++ {
		next := theta + step
		p3 := e.point(next)
		if i == n-1 {
			p3 = p
		}
		d0, d1 := e.tangent(theta), e.tangent(next)
		c1 := Tuple{p0[0] + k*d0[0], p0[1] + k*d0[1]}
		c2 := Tuple{p3[0] - k*d1[0], p3[1] - k*d1[1]}
		c.cubicTo(c1, c2, p3)
		c.ctrl = c2
		theta, p0 = next, p3
	}
}

// ellipseArc is an arc in center parametrization: the points
// center + R(phi) * (rx cos t, ry sin t) for t from theta to
// theta+sweep.
type ellipseArc struct {
	cx, cy       float64
	rx, ry       float64
	sinPhi       float64
	cosPhi       float64
	theta, sweep float64
}

// centerArc converts an endpoint parametrized arc to center
// parametrization, scaling the radii up when they are too small to
// reach from start to end. Radii must be positive and start must
// differ from end.
func centerArc(start Tuple, rx, ry, rotation float64, large, sweep bool, end Tuple) ellipseArc {
	sinPhi, cosPhi := math.Sincos(rotation * math.Pi / 180)

	dx, dy := (start[0]-end[0])/2, (start[1]-end[1])/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := math.Max(rx2*ry2-rx2*y1*y1-ry2*x1*x1, 0)
	den := rx2*y1*y1 + ry2*x1*x1
	coef := math.Sqrt(num / den)
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	theta := angle(1, 0, ux, uy)
	delta := angle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return ellipseArc{
		cx:     cosPhi*cx1 - sinPhi*cy1 + (start[0]+end[0])/2,
		cy:     sinPhi*cx1 + cosPhi*cy1 + (start[1]+end[1])/2,
		rx:     rx,
		ry:     ry,
		sinPhi: sinPhi,
		cosPhi: cosPhi,
		theta:  theta,
		sweep:  delta,
	}
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// angle returns the signed angle from (ux, uy) to (vx, vy).
func angle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

func (e ellipseArc) rotate(x, y float64) Tuple {
	return Tuple{e.cosPhi*x - e.sinPhi*y, e.sinPhi*x + e.cosPhi*y}
}

func (e ellipseArc) point(t float64) Tuple {
	sin, cos := math.Sincos(t)
	p := e.rotate(e.rx*cos, e.ry*sin)
	return Tuple{e.cx + p[0], e.cy + p[1]}
}

// tangent is the derivative of point at t.
func (e ellipseArc) tangent(t float64) Tuple {
	sin, cos := math.Sincos(t)
	return e.rotate(-e.rx*sin, e.ry*cos)
}

// segments returns how many cubic curves approximate the arc within
// tol. The radial error of a cubic spanning an angle a grows as a^6,
// about 1.1163 * r / n^6 when a full turn is split into n curves.
// Never fewer than four per turn are used, so no curve spans more than
// a quarter turn.
func (e ellipseArc) segments(tol float64) int {
	scaled := math.Max(e.rx, e.ry) / tol
	perTurn := math.Max(math.Pow(1.1163*scaled, 1.0/6.0), 4)
	n := int(math.Ceil(perTurn * math.Abs(e.sweep) / (2 * math.Pi)))
	if n < 1 {
		n = 1
	}
	return n
}
