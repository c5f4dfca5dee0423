package svgpath

import (
	"iter"
	"strings"

	"github.com/chewxy/math32"
)

// SimplePath is a path made only of absolute moves, lines, cubic curves
// and closes. Every subpath starts with a move.
type SimplePath struct {
	Instructions []DrawingInstruction
}

// All returns the instructions in double precision. The sequence can be
// ranged over any number of times.
func (p *SimplePath) All() iter.Seq[DrawingInstruction] {
	return func(yield func(DrawingInstruction) bool) {
		for _, di := range p.Instructions {
			if !yield(di) {
				return
			}
		}
	}
}

// All32 returns the instructions narrowed to single precision.
func (p *SimplePath) All32() iter.Seq[DrawingInstruction32] {
	return func(yield func(DrawingInstruction32) bool) {
		for _, di := range p.Instructions {
			if !yield(di.Narrow()) {
				return
			}
		}
	}
}

// Transformed returns the instructions mapped through m without
// changing p.
func (p *SimplePath) Transformed(m Matrix) iter.Seq[DrawingInstruction] {
	return func(yield func(DrawingInstruction) bool) {
		for _, di := range p.Instructions {
			for _, t := range di.points() {
				*t = m.Apply(*t)
			}
			if !yield(di) {
				return
			}
		}
	}
}

// BBox32 is the tight bounding box of the single precision
// instructions, computed in single precision. Curves contribute their
// extreme points rather than their control points.
func (p *SimplePath) BBox32() (minX, minY, maxX, maxY float32) {
	minX, minY = math32.Inf(1), math32.Inf(1)
	maxX, maxY = math32.Inf(-1), math32.Inf(-1)
	add := func(x, y float32) {
		minX, maxX = math32.Min(minX, x), math32.Max(maxX, x)
		minY, maxY = math32.Min(minY, y), math32.Max(maxY, y)
	}
	var cur, start [2]float32
	for di := range p.All32() {
		switch di.Kind {
		case MoveInstruction:
			cur, start = di.T, di.T
			add(cur[0], cur[1])
		case LineInstruction:
			cur = di.T
			add(cur[0], cur[1])
		case CurveInstruction:
			add(di.T[0], di.T[1])
			for _, t := range cubicExtrema32(cur[0], di.C1[0], di.C2[0], di.T[0]) {
				add(cubic32(cur[0], di.C1[0], di.C2[0], di.T[0], t), cubic32(cur[1], di.C1[1], di.C2[1], di.T[1], t))
			}
			for _, t := range cubicExtrema32(cur[1], di.C1[1], di.C2[1], di.T[1]) {
				add(cubic32(cur[0], di.C1[0], di.C2[0], di.T[0], t), cubic32(cur[1], di.C1[1], di.C2[1], di.T[1], t))
			}
			cur = di.T
		case CloseInstruction:
			cur = start
		}
	}
	return minX, minY, maxX, maxY
}

// cubicExtrema32 returns the parameters in (0, 1) where the derivative
// of the one dimensional cubic Bézier p0 p1 p2 p3 vanishes.
func cubicExtrema32(p0, p1, p2, p3 float32) []float32 {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	var roots []float32
	keep := func(t float32) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}
	if a == 0 {
		if b != 0 {
			keep(-c / b)
		}
		return roots
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return roots
	}
	sq := math32.Sqrt(disc)
	keep((-b + sq) / (2 * a))
	keep((-b - sq) / (2 * a))
	return roots
}

func cubic32(p0, p1, p2, p3, t float32) float32 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

func (p *SimplePath) String() string {
	parts := make([]string, len(p.Instructions))
	for i, di := range p.Instructions {
		parts[i] = di.String()
	}
	return strings.Join(parts, " ")
}

// Split returns one SimplePath per subpath.
func (p *SimplePath) Split() []*SimplePath {
	var paths []*SimplePath
	for _, di := range p.Instructions {
		if di.Kind == MoveInstruction || len(paths) == 0 {
			paths = append(paths, &SimplePath{})
		}
		last := paths[len(paths)-1]
		last.Instructions = append(last.Instructions, di)
	}
	return paths
}

// Reverse returns a new path that traces every subpath of p backwards.
// Subpaths keep their order and a closed subpath stays closed.
func (p *SimplePath) Reverse() *SimplePath {
	r := &SimplePath{Instructions: make([]DrawingInstruction, 0, len(p.Instructions))}
	for _, sub := range p.Split() {
		r.Instructions = append(r.Instructions, reverseSubpath(sub.Instructions)...)
	}
	return r
}

func reverseSubpath(in []DrawingInstruction) []DrawingInstruction {
	// ends[i] is the current point after in[i].
	ends := make([]Tuple, len(in))
	var cur, start Tuple
	for i, di := range in {
		switch di.Kind {
		case MoveInstruction:
			cur, start = di.T, di.T
		case LineInstruction, CurveInstruction:
			cur = di.T
		case CloseInstruction:
			cur = start
		}
		ends[i] = cur
	}

	closed := in[len(in)-1].Kind == CloseInstruction
	last := ends[len(ends)-1]
	out := []DrawingInstruction{{Kind: MoveInstruction, T: last}}
	at := last
	for i := len(in) - 1; i > 0; i-- {
		from := ends[i-1]
		switch in[i].Kind {
		case LineInstruction, CloseInstruction:
			if from != at {
				out = append(out, DrawingInstruction{Kind: LineInstruction, T: from})
				at = from
			}
		case CurveInstruction:
			out = append(out, DrawingInstruction{Kind: CurveInstruction, C1: in[i].C2, C2: in[i].C1, T: from})
			at = from
		}
	}
	if closed {
		out = append(out, DrawingInstruction{Kind: CloseInstruction})
	}
	return out
}

// A Segment of a path is the list of connected points of one subpath,
// with curves flattened, and whether it forms a closed loop.
type Segment struct {
	Closed bool
	Points []Tuple
}

// Segments flattens p into one Segment per subpath, replacing every
// cubic curve by steps straight pieces. A closed segment ends with its
// first point.
func (p *SimplePath) Segments(steps int) []Segment {
	if steps < 1 {
		steps = 1
	}
	var segs []Segment
	var cur Tuple
	for _, di := range p.Instructions {
		if di.Kind == MoveInstruction {
			segs = append(segs, Segment{Points: []Tuple{di.T}})
			cur = di.T
			continue
		}
		if len(segs) == 0 {
			continue
		}
		s := &segs[len(segs)-1]
		switch di.Kind {
		case LineInstruction:
			s.Points = append(s.Points, di.T)
		case CurveInstruction:
			for i := 1; i <= steps; i++ {
				s.Points = append(s.Points, cubicPoint(cur, di.C1, di.C2, di.T, float64(i)/float64(steps)))
			}
		case CloseInstruction:
			s.Points = append(s.Points, s.Points[0])
			s.Closed = true
		}
		cur = s.Points[len(s.Points)-1]
	}
	return segs
}

// cubicPoint evaluates the cubic Bézier curve p0 c1 c2 p3 at t. The ends
// are returned exactly.
func cubicPoint(p0, c1, c2, p3 Tuple, t float64) Tuple {
	if t == 1 {
		return p3
	}
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Tuple{
		a*p0[0] + b*c1[0] + c*c2[0] + d*p3[0],
		a*p0[1] + b*c1[1] + c*c2[1] + d*p3[1],
	}
}
