package fontseq

import "fmt"

// Origin names an anchor point of a reference frame. Draw coordinates are
// relative to the anchor of the builder's current origin.
type Origin uint8

// Origin anchors.
const (
	OriginTopLeft Origin = iota
	OriginTopCenter
	OriginTopRight
	OriginCenterLeft
	OriginCenter
	OriginCenterRight
	OriginBottomLeft
	OriginBottomCenter
	OriginBottomRight

	originCount
)

var originNames = [originCount]string{
	OriginTopLeft:      "top-left",
	OriginTopCenter:    "top-center",
	OriginTopRight:     "top-right",
	OriginCenterLeft:   "center-left",
	OriginCenter:       "center",
	OriginCenterRight:  "center-right",
	OriginBottomLeft:   "bottom-left",
	OriginBottomCenter: "bottom-center",
	OriginBottomRight:  "bottom-right",
}

// String returns the anchor name, e.g. "top-left".
func (o Origin) String() string {
	if o >= originCount {
		return fmt.Sprintf("Origin(%d)", uint8(o))
	}
	return originNames[o]
}

// ParseOrigin returns the anchor with the given name.
func ParseOrigin(name string) (Origin, error) {
	for o, n := range originNames {
		if n == name {
			return Origin(o), nil
		}
	}
	return 0, fmt.Errorf("fontseq: unknown origin %q", name)
}

// fractions returns the anchor position as halves of the frame size.
func (o Origin) fractions() (fx, fy int) {
	if o >= originCount {
		return 0, 0
	}
	return int(o % 3), int(o / 3)
}

// OriginResolver maps an origin anchor to an absolute pixel offset from the
// start of the sequence. Implementations must be pure.
type OriginResolver interface {
	ResolveOrigin(o Origin) (dx, dy int)
}

// Frame is a rectangle positioned relative to the sequence start: Left is
// the horizontal distance from the starting cursor, Top the vertical
// distance from the baseline, growing downward.
//
// The zero Frame resolves every anchor to (0, 0).
type Frame struct {
	Left, Top     int
	Width, Height int
}

// ResolveOrigin implements OriginResolver. Center anchors round toward
// the top-left.
func (f Frame) ResolveOrigin(o Origin) (dx, dy int) {
	fx, fy := o.fractions()
	return f.Left + f.Width*fx/2, f.Top + f.Height*fy/2
}

// DefaultSlotSize is the pixel pitch of one inventory slot.
const DefaultSlotSize = 18

// Grid is a slot grid, such as the slots of an inventory screen, positioned
// relative to the sequence start. Components placed on the grid are measured
// in slots.
type Grid struct {
	Left, Top int

	// SlotSize is the slot pitch in pixels. Zero means DefaultSlotSize.
	SlotSize int
}

// Frame returns the pixel frame covering cols×rows slots starting at slot
// (col, row), counted from the top-left slot.
func (g Grid) Frame(col, row, cols, rows int) Frame {
	s := g.SlotSize
	if s == 0 {
		s = DefaultSlotSize
	}
	return Frame{
		Left:   g.Left + col*s,
		Top:    g.Top + row*s,
		Width:  cols * s,
		Height: rows * s,
	}
}
