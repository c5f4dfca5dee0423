package svgpath

import "fmt"

// CircleElement is an SVG circle element
type CircleElement struct {
	ID              string `xml:"id,attr"`
	TransformString string `xml:"transform,attr"`
	Cx              string `xml:"cx,attr"`
	Cy              string `xml:"cy,attr"`
	Radius          string `xml:"r,attr"`

	element
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. A circle without a positive radius draws nothing.
func (c *CircleElement) ParseDrawingInstructions() (*SimplePath, error) {
	return ellipsePath("circle", c.ID, c.Cx, c.Cy, c.Radius, c.Radius, c.TransformString, c.element)
}

// EllipseElement is an SVG ellipse element
type EllipseElement struct {
	ID              string `xml:"id,attr"`
	TransformString string `xml:"transform,attr"`
	Cx              string `xml:"cx,attr"`
	Cy              string `xml:"cy,attr"`
	Rx              string `xml:"rx,attr"`
	Ry              string `xml:"ry,attr"`

	element
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface.
func (e *EllipseElement) ParseDrawingInstructions() (*SimplePath, error) {
	return ellipsePath("ellipse", e.ID, e.Cx, e.Cy, e.Rx, e.Ry, e.TransformString, e.element)
}

// ellipsePath draws the ellipse as two half arcs.
func ellipsePath(kind, id, cxs, cys, rxs, rys, transform string, e element) (*SimplePath, error) {
	var v [4]float64
	for i, s := range []string{cxs, cys, rxs, rys} {
		n, err := parseLength(s)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", kind, id, err)
		}
		v[i] = n
	}
	cx, cy, rx, ry := v[0], v[1], v[2], v[3]
	if rx <= 0 || ry <= 0 {
		return &SimplePath{}, nil
	}

	d := fmt.Sprintf("M%g %g A%g %g 0 1 0 %g %g A%g %g 0 1 0 %g %g Z",
		cx-rx, cy, rx, ry, cx+rx, cy, rx, ry, cx-rx, cy)
	return shapePath(kind, id, d, transform, e)
}
