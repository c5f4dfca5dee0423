package svgpath

import "fmt"

// Tuple is an X,Y coordinate
type Tuple [2]float64

// InstructionType tells a rendering backend which primitive to draw.
type InstructionType int

// These are the only instruction types a SimplePath contains.
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	CurveInstruction
	CloseInstruction
)

func (t InstructionType) String() string {
	switch t {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case CurveInstruction:
		return "curve"
	case CloseInstruction:
		return "close"
	}
	return fmt.Sprintf("InstructionType(%d)", int(t))
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw the path. All coordinates are absolute.
//
// T is the anchor of moves, lines and curves. C1 and C2 are the control
// points of a cubic curve and are zero for other kinds. A close carries
// no coordinates.
type DrawingInstruction struct {
	Kind InstructionType
	C1   Tuple
	C2   Tuple
	T    Tuple
}

// points returns the coordinates the instruction carries.
func (di *DrawingInstruction) points() []*Tuple {
	switch di.Kind {
	case MoveInstruction, LineInstruction:
		return []*Tuple{&di.T}
	case CurveInstruction:
		return []*Tuple{&di.C1, &di.C2, &di.T}
	}
	return nil
}

func (di DrawingInstruction) String() string {
	switch di.Kind {
	case MoveInstruction:
		return "M " + formatNumber(di.T[0]) + " " + formatNumber(di.T[1])
	case LineInstruction:
		return "L " + formatNumber(di.T[0]) + " " + formatNumber(di.T[1])
	case CurveInstruction:
		return fmt.Sprintf("C %s %s,%s %s,%s %s",
			formatNumber(di.C1[0]), formatNumber(di.C1[1]),
			formatNumber(di.C2[0]), formatNumber(di.C2[1]),
			formatNumber(di.T[0]), formatNumber(di.T[1]))
	case CloseInstruction:
		return "Z"
	}
	return di.Kind.String()
}

// DrawingInstruction32 is a DrawingInstruction narrowed to single
// precision for backends that work in float32.
type DrawingInstruction32 struct {
	Kind InstructionType
	C1   [2]float32
	C2   [2]float32
	T    [2]float32
}

func narrow(t Tuple) [2]float32 {
	return [2]float32{float32(t[0]), float32(t[1])}
}

// Narrow converts di to single precision.
func (di DrawingInstruction) Narrow() DrawingInstruction32 {
	return DrawingInstruction32{
		Kind: di.Kind,
		C1:   narrow(di.C1),
		C2:   narrow(di.C2),
		T:    narrow(di.T),
	}
}
