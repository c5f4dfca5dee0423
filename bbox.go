package svgpath

import "math"

// BBox is an axis aligned bounding box.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBBox returns a box that contains nothing. Adding a point to it
// gives a box around that point.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether b contains no points.
func (b BBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the middle of b.
func (b BBox) Center() Tuple {
	return Tuple{b.MinX + b.Width()/2, b.MinY + b.Height()/2}
}

// Add grows b to contain t.
func (b *BBox) Add(t Tuple) {
	b.MinX = math.Min(b.MinX, t[0])
	b.MinY = math.Min(b.MinY, t[1])
	b.MaxX = math.Max(b.MaxX, t[0])
	b.MaxY = math.Max(b.MaxY, t[1])
}

// BBox returns the box around every anchor and control point of p. It
// contains the curves but is not tight around them. A path without
// instructions gives EmptyBBox().
func (p *SimplePath) BBox() BBox {
	b := EmptyBBox()
	for i := range p.Instructions {
		for _, t := range p.Instructions[i].points() {
			b.Add(*t)
		}
	}
	return b
}
