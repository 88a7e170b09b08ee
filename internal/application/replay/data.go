package replay

// PlayerFrame records one player's input state for a single frame.
// Fields are compact and omitted when false to keep files small.
type PlayerFrame struct {
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	B int  `json:"b,omitempty"` // Button bitmask
}

// FrameInput records both players' input for a single frame
type FrameInput struct {
	F  int         `json:"f"` // Frame number
	P1 PlayerFrame `json:"p1"`
	P2 PlayerFrame `json:"p2"`
}

// ReplayData contains all data needed to replay a match. The
// simulation is deterministic from inputs alone, so no seed is stored.
type ReplayData struct {
	Version    string       `json:"version"`
	Stage      string       `json:"stage"`
	Characters [2]string    `json:"characters"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}
