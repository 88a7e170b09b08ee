package entity

// Stage holds the playfield bounds for a match. Fighting stages are a
// flat floor between two walls; there is no tile geometry to collide
// with beyond the bounds.
type Stage struct {
	Width      int // pixels
	FloorY     int // pixels, fighters stand here
	WallMargin int // pixels a fighter origin must keep from each edge
}

// LeftBound returns the minimum fighter X in 100x scaled units
func (s *Stage) LeftBound() int {
	return s.WallMargin * PositionScale
}

// RightBound returns the maximum fighter X in 100x scaled units
func (s *Stage) RightBound() int {
	return (s.Width - s.WallMargin) * PositionScale
}

// ClampX clamps a scaled X coordinate to the stage bounds
func (s *Stage) ClampX(x int) int {
	if x < s.LeftBound() {
		return s.LeftBound()
	}
	if x > s.RightBound() {
		return s.RightBound()
	}
	return x
}

// AtWall reports whether a scaled X coordinate touches either wall
func (s *Stage) AtWall(x int) bool {
	return x <= s.LeftBound() || x >= s.RightBound()
}
