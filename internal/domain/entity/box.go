package entity

// BoxKind tags a vulnerable box with the part it covers
type BoxKind uint8

const (
	KindBody BoxKind = iota
	KindLimb
)

// String returns the string representation of the box kind
func (k BoxKind) String() string {
	switch k {
	case KindBody:
		return "body"
	case KindLimb:
		return "limb"
	default:
		return "unknown"
	}
}

// Rect is a box rectangle relative to the fighter origin, in pixels.
// The origin sits at the fighter's feet; OffsetY is negative upward.
// OffsetX points toward the fighter's facing direction and is mirrored
// when transformed to world space for a left-facing fighter.
type Rect struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// WorldRect returns the rectangle in world pixel coordinates for a
// fighter standing at (px, py) with the given facing (+1 or -1).
func (r Rect) WorldRect(px, py, facing int) (x, y, w, h int) {
	if facing < 0 {
		return px - r.OffsetX - r.Width, py + r.OffsetY, r.Width, r.Height
	}
	return px + r.OffsetX, py + r.OffsetY, r.Width, r.Height
}

// AttackBox is an offensive box active for one or more frames of a move.
// Boxes are immutable once loaded into the move catalog.
type AttackBox struct {
	Rect
	Damage     int
	Hitstun    int
	Blockstun  int
	ChipDamage int
	StunDamage int
	Pushback   int // pixels applied to the defender on hit or block
	Height     GuardHeight
	MultiHit   bool // exempt from the hit-once-per-active-window rule
}

// BodyBox is a vulnerable box active for one or more frames of a state
type BodyBox struct {
	Rect
	Kind BoxKind
}

// RectsOverlap tests axis-aligned overlap between two world rectangles
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 int) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}

// OverlapCenter returns the center of the intersection of two
// overlapping world rectangles. Used as the reported hit point.
func OverlapCenter(x1, y1, w1, h1, x2, y2, w2, h2 int) (cx, cy int) {
	left := max(x1, x2)
	right := min(x1+w1, x2+w2)
	top := max(y1, y2)
	bottom := min(y1+h1, y2+h2)
	return (left + right) / 2, (top + bottom) / 2
}
