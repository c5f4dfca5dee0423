package svgpath

import "strings"

// PolyLineElement is an SVG polyline, or polygon when closed: a set of
// connected line segments.
type PolyLineElement struct {
	ID              string `xml:"id,attr"`
	TransformString string `xml:"transform,attr"`
	Points          string `xml:"points,attr"`

	element
	closed bool
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. The points list has the syntax of the operands of a move
// followed by implicit lines.
func (pl *PolyLineElement) ParseDrawingInstructions() (*SimplePath, error) {
	kind := "polyline"
	if pl.closed {
		kind = "polygon"
	}
	if strings.TrimSpace(pl.Points) == "" {
		return &SimplePath{}, nil
	}
	d := "M" + pl.Points
	if pl.closed {
		d += "Z"
	}
	return shapePath(kind, pl.ID, d, pl.TransformString, pl.element)
}
