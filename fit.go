package svgpath

import (
	"log/slog"
	"math"

	"github.com/vasalvit/svgpath/logging"
)

// Rect is a target region. Width and height are not validated; zero or
// negative sizes pass through to the fit.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromBBox returns the rectangle covered by b.
func RectFromBBox(b BBox) Rect {
	return Rect{X: b.MinX, Y: b.MinY, Width: b.Width(), Height: b.Height()}
}

// AffineTransform scales each axis and then translates.
type AffineTransform struct {
	ScaleX, ScaleY         float64
	TranslateX, TranslateY float64
}

// Apply maps t through a.
func (a AffineTransform) Apply(t Tuple) Tuple {
	return Tuple{t[0]*a.ScaleX + a.TranslateX, t[1]*a.ScaleY + a.TranslateY}
}

// Matrix returns a as a general Matrix.
func (a AffineTransform) Matrix() Matrix {
	return NewMatrix(a.ScaleX, 0, 0, a.ScaleY, a.TranslateX, a.TranslateY)
}

// FitTransform returns the transform that maps b onto r.
//
// Each axis is scaled by the ratio of the sizes of r and b. With lockX
// the X axis uses the Y scale instead, and with lockY the Y axis uses
// the X scale, which keeps the shape's proportions. With both set the
// smaller of the two scales is used for both axes. The translation puts
// the scaled min corner of b on the origin of r.
//
// An axis along which b has no extent cannot be scaled to r; its scale
// is 0 unless it is locked to the other axis. Callers should check for
// empty and flat paths before fitting.
func FitTransform(b BBox, r Rect, lockX, lockY bool) AffineTransform {
	return fitTransform(b, r, lockX, lockY, false)
}

// FitCenteredTransform is like FitTransform, but an axis whose scale
// ends up below the ratio of the sizes of r and b is centered in r
// instead of starting at its origin.
func FitCenteredTransform(b BBox, r Rect, lockX, lockY bool) AffineTransform {
	return fitTransform(b, r, lockX, lockY, true)
}

func fitTransform(b BBox, r Rect, lockX, lockY, centered bool) AffineTransform {
	freeX := axisScale(r.Width, b.Width())
	freeY := axisScale(r.Height, b.Height())
	sx, sy := freeX, freeY
	switch {
	case lockX && lockY:
		s := math.Min(sx, sy)
		sx, sy = s, s
	case lockX:
		sx = sy
	case lockY:
		sy = sx
	}
	a := AffineTransform{
		ScaleX:     sx,
		ScaleY:     sy,
		TranslateX: r.X - b.MinX*sx,
		TranslateY: r.Y - b.MinY*sy,
	}
	if centered {
		if b.Width() > 0 && sx < freeX {
			a.TranslateX += (r.Width - b.Width()*sx) / 2
		}
		if b.Height() > 0 && sy < freeY {
			a.TranslateY += (r.Height - b.Height()*sy) / 2
		}
	}
	return a
}

func axisScale(target, size float64) float64 {
	if size == 0 {
		return 0
	}
	return target / size
}

// Fit scales and translates p in place so that its bounding box lands
// on r, and returns p. See FitTransform for the meaning of lockX and
// lockY. Fitting an empty path does nothing.
func (p *SimplePath) Fit(r Rect, lockX, lockY bool) *SimplePath {
	return p.fit(r, lockX, lockY, false)
}

// FitCentered is like Fit, but centers the path in r along an axis it
// does not fill. See FitCenteredTransform.
func (p *SimplePath) FitCentered(r Rect, lockX, lockY bool) *SimplePath {
	return p.fit(r, lockX, lockY, true)
}

func (p *SimplePath) fit(r Rect, lockX, lockY, centered bool) *SimplePath {
	b := p.BBox()
	if b.IsEmpty() {
		return p
	}
	if b.Width() == 0 && !lockX || b.Height() == 0 && !lockY {
		logging.Logger().Debug("fitting a flat path",
			slog.Float64("width", b.Width()),
			slog.Float64("height", b.Height()))
	}
	a := fitTransform(b, r, lockX, lockY, centered)
	for i := range p.Instructions {
		for _, t := range p.Instructions[i].points() {
			*t = a.Apply(*t)
		}
	}
	return p
}
