package svgpath

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// Matrix is a 2D affine transformation
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// mapping (x, y) to (a*x + c*y + e, b*x + d*y + f). Builder methods
// return a new Matrix that applies the added step first, the way SVG
// transform lists compose.
type Matrix struct {
	t mt.Transform
}

// Identity returns the matrix that leaves points unchanged.
func Identity() Matrix {
	return Matrix{t: mt.Identity()}
}

// NewMatrix returns the matrix with the given coefficients.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	t := mt.Identity()
	t[0][0], t[1][0] = a, b
	t[0][1], t[1][1] = c, d
	t[0][2], t[1][2] = e, f
	return Matrix{t: t}
}

// Coefficients returns a, b, c, d, e, f.
func (m Matrix) Coefficients() [6]float64 {
	return [6]float64{m.t[0][0], m.t[1][0], m.t[0][1], m.t[1][1], m.t[0][2], m.t[1][2]}
}

// Multiply returns m × o: o is applied first, then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{t: mt.MultiplyTransforms(m.t, o.t)}
}

func (m Matrix) Translate(tx, ty float64) Matrix {
	return m.Multiply(NewMatrix(1, 0, 0, 1, tx, ty))
}

func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Multiply(NewMatrix(sx, 0, 0, sy, 0, 0))
}

// Rotate rotates by deg degrees around the origin.
func (m Matrix) Rotate(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return m.Multiply(NewMatrix(cos, sin, -sin, cos, 0, 0))
}

// RotateAbout rotates by deg degrees around (cx, cy).
func (m Matrix) RotateAbout(deg, cx, cy float64) Matrix {
	return m.Translate(cx, cy).Rotate(deg).Translate(-cx, -cy)
}

func (m Matrix) SkewX(deg float64) Matrix {
	return m.Multiply(NewMatrix(1, 0, math.Tan(deg*math.Pi/180), 1, 0, 0))
}

func (m Matrix) SkewY(deg float64) Matrix {
	return m.Multiply(NewMatrix(1, math.Tan(deg*math.Pi/180), 0, 1, 0, 0))
}

// Apply maps t through m.
func (m Matrix) Apply(t Tuple) Tuple {
	x, y := m.t.Apply(t[0], t[1])
	return Tuple{x, y}
}

// Transform maps every coordinate of p through m in place and returns
// p.
func (p *SimplePath) Transform(m Matrix) *SimplePath {
	for i := range p.Instructions {
		for _, t := range p.Instructions[i].points() {
			*t = m.Apply(*t)
		}
	}
	return p
}
