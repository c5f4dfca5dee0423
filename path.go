package svgpath

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vasalvit/svgpath/logging"
)

// PathElement is an SVG XML path element
type PathElement struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	TransformString string `xml:"transform,attr"`
	Fill            string `xml:"fill,attr"`
	Stroke          string `xml:"stroke,attr"`

	element
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. The path data is parsed, simplified and mapped through the
// element's transform and those of its groups and document. A path
// without data draws nothing.
func (p *PathElement) ParseDrawingInstructions() (*SimplePath, error) {
	if strings.Trim(p.D, " \t\n\r\f,") == "" {
		return &SimplePath{}, nil
	}
	return shapePath("path", p.ID, p.D, p.TransformString, p.element)
}

// shapePath runs path data through the pipeline for the element
// described by kind and id.
func shapePath(kind, id, d, transform string, e element) (*SimplePath, error) {
	parsed, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, id, err)
	}
	sp := parsed.Simplify()
	m := e.parentMatrix().Multiply(elementTransform(kind, id, transform))
	sp.Transform(m)

	logging.Logger().Debug("simplified element",
		slog.String("element", kind),
		slog.String("id", id),
		slog.Int("commands", len(parsed.Commands)),
		slog.Int("instructions", len(sp.Instructions)))
	return sp, nil
}
