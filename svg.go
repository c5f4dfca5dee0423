package svgpath

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/vasalvit/svgpath/logging"
)

// DrawingInstructionParser allow getting the simplified path of an SVG
// element. All supported SVG elements implement this interface.
type DrawingInstructionParser interface {
	ParseDrawingInstructions() (*SimplePath, error)
}

// Svg represents an SVG file containing groups and shapes
type Svg struct {
	Title    string
	Groups   []*Group // top level groups, also present in Elements
	Elements []DrawingInstructionParser
	Name     string

	// Transform maps user units to output units. ParseSvg sets it
	// from its scale argument.
	Transform Matrix
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	Stroke          string
	StrokeWidth     float64
	Fill            string
	FillRule        string
	Elements        []DrawingInstructionParser
	TransformString string
	Transform       Matrix
	Parent          *Group
	Owner           *Svg
}

// element is embedded by the shapes to find their place in the
// document.
type element struct {
	group *Group
	owner *Svg
}

// parentMatrix is the transform of everything enclosing the element.
func (e element) parentMatrix() Matrix {
	switch {
	case e.group != nil:
		return e.group.matrix()
	case e.owner != nil:
		return e.owner.Transform
	}
	return Identity()
}

// matrix maps the group's user units to output units.
func (g *Group) matrix() Matrix {
	m := Identity()
	switch {
	case g.Parent != nil:
		m = g.Parent.matrix()
	case g.Owner != nil:
		m = g.Owner.Transform
	}
	return m.Multiply(g.Transform)
}

// elementTransform parses a transform attribute. A malformed value is
// logged and treated as the identity.
func elementTransform(kind, id, s string) Matrix {
	if s == "" {
		return Identity()
	}
	m, err := ParseTransform(s)
	if err != nil {
		logging.Logger().Debug("ignoring transform",
			slog.String("element", kind),
			slog.String("id", id),
			slog.String("error", err.Error()))
	}
	return m
}

// parseLength reads a length attribute, allowing a "px" suffix. Empty
// means 0.
func parseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, nil
	}
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("bad length %q", s)
	}
	return f, nil
}

// collect appends the simplified paths of elements.
func collect(elements []DrawingInstructionParser) (*SimplePath, error) {
	sp := &SimplePath{}
	for _, e := range elements {
		p, err := e.ParseDrawingInstructions()
		if err != nil {
			return nil, err
		}
		sp.Instructions = append(sp.Instructions, p.Instructions...)
	}
	return sp, nil
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. It returns the paths of all elements in the group, in
// document order.
func (g *Group) ParseDrawingInstructions() (*SimplePath, error) {
	sp, err := collect(g.Elements)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", g.ID, err)
	}
	return sp, nil
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. It returns the paths of all elements in the document, in
// document order.
func (s *Svg) ParseDrawingInstructions() (*SimplePath, error) {
	return collect(s.Elements)
}

// newElement returns an empty shape for an SVG element name, or nil.
func newElement(name string, e element) DrawingInstructionParser {
	switch name {
	case "path":
		return &PathElement{element: e}
	case "rect":
		return &RectElement{element: e}
	case "circle":
		return &CircleElement{element: e}
	case "ellipse":
		return &EllipseElement{element: e}
	case "polyline":
		return &PolyLineElement{element: e}
	case "polygon":
		return &PolyLineElement{element: e, closed: true}
	}
	return nil
}

// decodeChildren decodes the children of the current element until its
// end tag, handing each decoded shape or group to add.
func decodeChildren(decoder *xml.Decoder, s *Svg, parent *Group, add func(DrawingInstructionParser)) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "title" && parent == nil {
				if err := decoder.DecodeElement(&s.Title, &tok); err != nil {
					return fmt.Errorf("error decoding title: %w", err)
				}
				continue
			}

			var elementStruct DrawingInstructionParser
			if tok.Name.Local == "g" {
				elementStruct = &Group{Parent: parent, Owner: s, Transform: Identity()}
			} else {
				elementStruct = newElement(tok.Name.Local, element{group: parent, owner: s})
			}
			if elementStruct == nil {
				logging.Logger().Debug("skipping element", slog.String("name", tok.Name.Local))
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err := decoder.DecodeElement(elementStruct, &tok); err != nil {
				return fmt.Errorf("error decoding %s element: %w", tok.Name.Local, err)
			}
			add(elementStruct)

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "stroke-width":
			w, err := parseLength(attr.Value)
			if err != nil {
				return fmt.Errorf("group %q stroke-width: %w", g.ID, err)
			}
			g.StrokeWidth = w
		case "fill":
			g.Fill = attr.Value
		case "fill-rule":
			g.FillRule = attr.Value
		case "transform":
			g.TransformString = attr.Value
		}
	}
	g.Transform = elementTransform("g", g.ID, g.TransformString)

	return decodeChildren(decoder, g.Owner, g, func(e DrawingInstructionParser) {
		g.Elements = append(g.Elements, e)
	})
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	return decodeChildren(decoder, s, nil, func(e DrawingInstructionParser) {
		s.Elements = append(s.Elements, e)
		if g, ok := e.(*Group); ok {
			s.Groups = append(s.Groups, g)
		}
	})
}

func newSvg(name string, scale float64) *Svg {
	svg := &Svg{Name: name, Transform: Identity()}
	if scale > 0 {
		svg.Transform = svg.Transform.Scale(scale, scale)
	}
	if scale < 0 {
		svg.Transform = svg.Transform.Scale(1.0/-scale, 1.0/-scale)
	}
	return svg
}

// ParseSvg parses an SVG string into an SVG struct. A positive scale
// multiplies all coordinates, a negative one divides them by -scale and
// zero leaves them unchanged.
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	svg := newSvg(name, scale)
	if err := xml.Unmarshal([]byte(str), svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return svg, nil
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	svg := newSvg(name, scale)
	if err := xml.NewDecoder(r).Decode(svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return svg, nil
}
