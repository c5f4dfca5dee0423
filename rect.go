package svgpath

import (
	"fmt"
	"math"
	"strings"
)

// RectElement is an SVG rect element, optionally with rounded corners.
type RectElement struct {
	ID              string `xml:"id,attr"`
	TransformString string `xml:"transform,attr"`
	X               string `xml:"x,attr"`
	Y               string `xml:"y,attr"`
	Width           string `xml:"width,attr"`
	Height          string `xml:"height,attr"`
	Rx              string `xml:"rx,attr"`
	Ry              string `xml:"ry,attr"`

	element
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. A rect without positive width and height draws nothing. A
// missing corner radius takes the value of the other one, and radii are
// clamped to half the size.
func (r *RectElement) ParseDrawingInstructions() (*SimplePath, error) {
	var v [6]float64
	for i, s := range []string{r.X, r.Y, r.Width, r.Height, r.Rx, r.Ry} {
		n, err := parseLength(s)
		if err != nil {
			return nil, fmt.Errorf("rect %q: %w", r.ID, err)
		}
		v[i] = n
	}
	x, y, w, h, rx, ry := v[0], v[1], v[2], v[3], v[4], v[5]
	if w <= 0 || h <= 0 {
		return &SimplePath{}, nil
	}
	if strings.TrimSpace(r.Rx) == "" {
		rx = ry
	}
	if strings.TrimSpace(r.Ry) == "" {
		ry = rx
	}
	rx = math.Min(math.Max(rx, 0), w/2)
	ry = math.Min(math.Max(ry, 0), h/2)

	var d string
	if rx == 0 || ry == 0 {
		d = fmt.Sprintf("M%g %g H%g V%g H%g Z", x, y, x+w, y+h, x)
	} else {
		d = fmt.Sprintf("M%g %g H%g A%g %g 0 0 1 %g %g V%g A%g %g 0 0 1 %g %g H%g A%g %g 0 0 1 %g %g V%g A%g %g 0 0 1 %g %g Z",
			x+rx, y,
			x+w-rx,
			rx, ry, x+w, y+ry,
			y+h-ry,
			rx, ry, x+w-rx, y+h,
			x+rx,
			rx, ry, x, y+h-ry,
			y+ry,
			rx, ry, x+rx, y)
	}
	return shapePath("rect", r.ID, d, r.TransformString, r.element)
}
