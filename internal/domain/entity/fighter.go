package entity

import "fmt"

// PositionScale is the internal position scale factor.
// 1 pixel = 100 internal units. Positions stay integer for
// bit-identical simulation runs; no float math touches them.
const PositionScale = 100

// Routine is the hierarchical per-fighter state record. It replaces
// a flat index array with named levels; transitions only happen
// through the methods below or the combat stepper.
type Routine struct {
	Phase        Phase
	Category     Category
	MoveIndex    int // selects which catalog entry applies
	SubFrame     int // current frame within the move, 0-based
	StunFrames   int // remaining hitstun or blockstun while Damaged/Blocking
	FreezeFrames int // frames this fighter is halted (parry disadvantage)
	JuggleCount  int
	Guard        GuardHeight // height currently guarded while Blocking
}

// Fighter is the per-player simulation record. It is owned exclusively
// by the combat stepper; nothing else mutates it during a step.
type Fighter struct {
	ID        PlayerID
	Character string

	Routine Routine

	Vitality    int
	MaxVitality int
	StunMeter   int

	X, Y   int // 100x scaled position (divide by PositionScale for pixels)
	Facing int // +1 facing right, -1 facing left

	ComboCount int // hits this fighter has landed in the current combo

	// MoveInstance increments every time a new move starts, so a single
	// active window spanning several frames can register at most one hit.
	MoveInstance  uint32
	MoveConnected bool // current move instance produced a non-whiff outcome

	// LastHitInstance records, per attacker, the move instance that last
	// registered against this fighter.
	LastHitInstance map[PlayerID]uint32
}

// NewFighter creates a fighter at the given pixel position.
func NewFighter(id PlayerID, character string, x, y, facing, maxVitality int) *Fighter {
	return &Fighter{
		ID:              id,
		Character:       character,
		Routine:         Routine{Phase: PhaseInMatch, Category: CategoryNeutral},
		Vitality:        maxVitality,
		MaxVitality:     maxVitality,
		X:               x * PositionScale,
		Y:               y * PositionScale,
		Facing:          facing,
		LastHitInstance: map[PlayerID]uint32{},
	}
}

// PixelX returns the pixel X position
func (f *Fighter) PixelX() int {
	return f.X / PositionScale
}

// PixelY returns the pixel Y position
func (f *Fighter) PixelY() int {
	return f.Y / PositionScale
}

// SetPixelPos sets the position from pixel coordinates
func (f *Fighter) SetPixelPos(x, y int) {
	f.X = x * PositionScale
	f.Y = y * PositionScale
}

// Category predicates. They derive from a single enum value, so
// exactly one of them is true at any frame.

func (f *Fighter) IsNeutral() bool   { return f.Routine.Category == CategoryNeutral }
func (f *Fighter) IsAttacking() bool { return f.Routine.Category == CategoryAttacking }
func (f *Fighter) IsBlocking() bool  { return f.Routine.Category == CategoryBlocking }
func (f *Fighter) IsDamaged() bool   { return f.Routine.Category == CategoryDamaged }
func (f *Fighter) IsThrown() bool    { return f.Routine.Category == CategoryThrown }

// InMatch reports whether combat logic applies to this fighter
func (f *Fighter) InMatch() bool {
	return f.Routine.Phase == PhaseInMatch
}

// CanAct reports whether the fighter may start a move or walk this frame
func (f *Fighter) CanAct() bool {
	return f.InMatch() && f.IsNeutral() && f.Routine.FreezeFrames == 0
}

// BeginAttack transitions into Attacking with the given move index.
// Legality (neutral start or open cancel window) is the stepper's
// responsibility; this only performs the bookkeeping.
func (f *Fighter) BeginAttack(moveIndex int) {
	f.Routine.Category = CategoryAttacking
	f.Routine.MoveIndex = moveIndex
	f.Routine.SubFrame = 0
	f.MoveInstance++
	f.MoveConnected = false
}

// ForceDamaged pre-empts whatever the fighter was doing with a hit
// reaction lasting the given number of hitstun frames.
func (f *Fighter) ForceDamaged(hitstun int) {
	f.Routine.Category = CategoryDamaged
	f.Routine.MoveIndex = 0
	f.Routine.SubFrame = 0
	f.Routine.StunFrames = hitstun
}

// EnterBlockstun puts the fighter into a guarded reaction
func (f *Fighter) EnterBlockstun(blockstun int, height GuardHeight) {
	f.Routine.Category = CategoryBlocking
	f.Routine.MoveIndex = 0
	f.Routine.SubFrame = 0
	f.Routine.StunFrames = blockstun
	f.Routine.Guard = height
}

// ReturnToNeutral is the recovery target for every reaction and move
func (f *Fighter) ReturnToNeutral() {
	f.Routine.Category = CategoryNeutral
	f.Routine.MoveIndex = 0
	f.Routine.SubFrame = 0
	f.Routine.StunFrames = 0
	f.Routine.JuggleCount = 0
}

// ApplyDamage subtracts damage from vitality, clamped at zero.
// Returns true when the fighter is defeated.
func (f *Fighter) ApplyDamage(damage int) bool {
	f.Vitality -= damage
	if f.Vitality < 0 {
		f.Vitality = 0
	}
	return f.Vitality == 0
}

// CheckInvariants aborts the step on states that indicate a core
// defect rather than bad external data.
func (f *Fighter) CheckInvariants() {
	if !f.Routine.Category.Valid() {
		panic(fmt.Sprintf("fighter %d: invalid category %d", f.ID, f.Routine.Category))
	}
	if f.Vitality < 0 {
		panic(fmt.Sprintf("fighter %d: vitality %d below floor", f.ID, f.Vitality))
	}
	if f.Facing != 1 && f.Facing != -1 {
		panic(fmt.Sprintf("fighter %d: facing %d", f.ID, f.Facing))
	}
}

// Snapshot is a plain-value copy of everything that must be
// bit-identical between two runs with the same inputs.
type Snapshot struct {
	ID           PlayerID
	Routine      Routine
	Vitality     int
	StunMeter    int
	X, Y         int
	Facing       int
	ComboCount   int
	MoveInstance uint32
}

// Snapshot captures the deterministic state of the fighter
func (f *Fighter) Snapshot() Snapshot {
	return Snapshot{
		ID:           f.ID,
		Routine:      f.Routine,
		Vitality:     f.Vitality,
		StunMeter:    f.StunMeter,
		X:            f.X,
		Y:            f.Y,
		Facing:       f.Facing,
		ComboCount:   f.ComboCount,
		MoveInstance: f.MoveInstance,
	}
}
