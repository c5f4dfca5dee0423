package svgpath

// cursor is the state carried from one command to the next while a
// Path is simplified.
type cursor struct {
	cur   Tuple // current point
	start Tuple // first point of the current subpath
	ctrl  Tuple // last control point of the previous curve, for reflection
	prev  CommandKind
	open  bool // a subpath has been started and not closed

	out []DrawingInstruction
	tol float64
}

// Simplify converts p into a SimplePath made only of absolute moves,
// lines, cubic curves and closes. Arcs are approximated with cubic
// curves to within DefaultArcTolerance.
func (p *Path) Simplify() *SimplePath {
	return p.SimplifyTolerance(DefaultArcTolerance)
}

// SimplifyTolerance is like Simplify with a caller chosen arc
// tolerance. A tolerance that is not positive means
// DefaultArcTolerance.
func (p *Path) SimplifyTolerance(tol float64) *SimplePath {
	if tol <= 0 {
		tol = DefaultArcTolerance
	}
	c := &cursor{
		prev: ClosePath,
		out:  make([]DrawingInstruction, 0, len(p.Commands)),
		tol:  tol,
	}
	for _, cmd := range p.Commands {
		c.simplify(cmd)
		c.prev = cmd.Kind
	}
	return &SimplePath{Instructions: c.out}
}

// point returns the coordinate pair at Args[i], Args[i+1] made absolute.
func (c *cursor) point(cmd Command, i int) Tuple {
	t := Tuple{cmd.Args[i], cmd.Args[i+1]}
	if cmd.Rel {
		t[0] += c.cur[0]
		t[1] += c.cur[1]
	}
	return t
}

// reflect mirrors the previous control point through the current point
// when the previous command was one of kinds, and returns the current
// point otherwise.
func (c *cursor) reflect(kinds ...CommandKind) Tuple {
	for _, k := range kinds {
		if c.prev == k {
			return Tuple{2*c.cur[0] - c.ctrl[0], 2*c.cur[1] - c.ctrl[1]}
		}
	}
	return c.cur
}

// begin starts a subpath at the current point if a drawing command
// follows a close.
func (c *cursor) begin() {
	if c.open {
		return
	}
	c.out = append(c.out, DrawingInstruction{Kind: MoveInstruction, T: c.cur})
	c.start = c.cur
	c.open = true
}

func (c *cursor) lineTo(p Tuple) {
	c.begin()
	c.out = append(c.out, DrawingInstruction{Kind: LineInstruction, T: p})
	c.cur = p
}

func (c *cursor) cubicTo(c1, c2, p Tuple) {
	c.begin()
	c.out = append(c.out, DrawingInstruction{Kind: CurveInstruction, C1: c1, C2: c2, T: p})
	c.cur = p
}

// quadTo elevates the quadratic from the current point through q to p
// into the cubic with the same shape.
func (c *cursor) quadTo(q, p Tuple) {
	p0 := c.cur
	c1 := Tuple{p0[0] + 2.0/3.0*(q[0]-p0[0]), p0[1] + 2.0/3.0*(q[1]-p0[1])}
	c2 := Tuple{p[0] + 2.0/3.0*(q[0]-p[0]), p[1] + 2.0/3.0*(q[1]-p[1])}
	c.cubicTo(c1, c2, p)
}

func (c *cursor) simplify(cmd Command) {
	switch cmd.Kind {
	case MoveTo:
		p := c.point(cmd, 0)
		c.out = append(c.out, DrawingInstruction{Kind: MoveInstruction, T: p})
		c.cur, c.start, c.open = p, p, true

	case LineTo:
		c.lineTo(c.point(cmd, 0))

	case HLineTo:
		x := cmd.Args[0]
		if cmd.Rel {
			x += c.cur[0]
		}
		c.lineTo(Tuple{x, c.cur[1]})

	case VLineTo:
		y := cmd.Args[0]
		if cmd.Rel {
			y += c.cur[1]
		}
		c.lineTo(Tuple{c.cur[0], y})

	case CurveTo:
		c1, c2, p := c.point(cmd, 0), c.point(cmd, 2), c.point(cmd, 4)
		c.cubicTo(c1, c2, p)
		c.ctrl = c2

	case SmoothCurveTo:
		c1 := c.reflect(CurveTo, SmoothCurveTo)
		c2, p := c.point(cmd, 0), c.point(cmd, 2)
		c.cubicTo(c1, c2, p)
		c.ctrl = c2

	case QuadTo:
		q, p := c.point(cmd, 0), c.point(cmd, 2)
		c.quadTo(q, p)
		c.ctrl = q

	case SmoothQuadTo:
		q := c.reflect(QuadTo, SmoothQuadTo)
		p := c.point(cmd, 0)
		c.quadTo(q, p)
		c.ctrl = q

	case ArcTo:
		large, sweep := cmd.ArcFlags()
		p := c.point(cmd, 5)
		c.arcTo(cmd.Args[0], cmd.Args[1], cmd.Args[2], large, sweep, p)

	case ClosePath:
		// a repeated close is kept; it draws nothing
		c.out = append(c.out, DrawingInstruction{Kind: CloseInstruction})
		c.cur = c.start
		c.open = false
	}
}
