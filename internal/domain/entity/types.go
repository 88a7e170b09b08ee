package entity

// PlayerID identifies one of the two fighters in a match
type PlayerID uint8

const (
	Player1 PlayerID = 0
	Player2 PlayerID = 1
)

// Opponent returns the other player's id
func (id PlayerID) Opponent() PlayerID {
	return 1 - id
}

// Phase is the top level of the routine hierarchy.
// Combat logic only runs while both fighters are in PhaseInMatch.
type Phase uint8

const (
	PhasePreRound Phase = iota
	PhaseInMatch
	PhaseRoundOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhasePreRound:
		return "PreRound"
	case PhaseInMatch:
		return "InMatch"
	case PhaseRoundOver:
		return "RoundOver"
	default:
		return "Unknown"
	}
}

// Category is the second level of the routine hierarchy.
// Exactly one category is active per fighter per frame.
type Category uint8

const (
	CategoryNeutral Category = iota
	CategoryAttacking
	CategoryBlocking
	CategoryDamaged
	CategoryThrown
	categoryCount
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryNeutral:
		return "Neutral"
	case CategoryAttacking:
		return "Attacking"
	case CategoryBlocking:
		return "Blocking"
	case CategoryDamaged:
		return "Damaged"
	case CategoryThrown:
		return "Thrown"
	default:
		return "Unknown"
	}
}

// Valid reports whether the category is within the defined range
func (c Category) Valid() bool {
	return c < categoryCount
}

// GuardHeight classifies how an attack must be guarded
type GuardHeight uint8

const (
	GuardMid  GuardHeight = iota // blocked standing or crouching
	GuardHigh                    // must be blocked standing
	GuardLow                     // must be blocked crouching
)

// String returns the string representation of the guard height
func (g GuardHeight) String() string {
	switch g {
	case GuardMid:
		return "mid"
	case GuardHigh:
		return "high"
	case GuardLow:
		return "low"
	default:
		return "unknown"
	}
}
