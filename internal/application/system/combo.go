package system

import "github.com/younwookim/kumite/internal/domain/entity"

// DefaultScaleTable is the per-hit damage percentage by combo depth.
// Hits beyond the last entry repeat it.
var DefaultScaleTable = []int{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}

type comboKey struct {
	attacker entity.PlayerID
	defender entity.PlayerID
}

// ComboLedger tracks consecutive-hit counts per attacker/defender pair
// and computes scaled damage. Counts reset when the defender completes
// a recovery to neutral, not on a timer.
type ComboLedger struct {
	counts map[comboKey]int
	scale  []int
}

// NewComboLedger creates a ledger with the given scale table.
// A nil table selects the default.
func NewComboLedger(scale []int) *ComboLedger {
	if len(scale) == 0 {
		scale = DefaultScaleTable
	}
	return &ComboLedger{
		counts: make(map[comboKey]int),
		scale:  scale,
	}
}

// Count returns the current combo depth for the pair
func (l *ComboLedger) Count(attacker, defender entity.PlayerID) int {
	return l.counts[comboKey{attacker, defender}]
}

// ScaledDamage computes the damage of the next hit in the combo.
// The first hit is unmodified; later hits use the scale table with the
// index clamped to its last entry.
func (l *ComboLedger) ScaledDamage(attacker, defender entity.PlayerID, base int) int {
	count := l.Count(attacker, defender)
	if count == 0 {
		return base
	}
	idx := count
	if idx >= len(l.scale) {
		idx = len(l.scale) - 1
	}
	return base * l.scale[idx] / 100
}

// RecordHit increments the combo depth after damage is applied
func (l *ComboLedger) RecordHit(attacker, defender entity.PlayerID) {
	l.counts[comboKey{attacker, defender}]++
}

// ResetDefender clears every combo against the given defender. Called
// when the defender's category transitions back to neutral.
func (l *ComboLedger) ResetDefender(defender entity.PlayerID) {
	for k := range l.counts {
		if k.defender == defender {
			delete(l.counts, k)
		}
	}
}

// Reset clears all combos, e.g. between rounds
func (l *ComboLedger) Reset() {
	clear(l.counts)
}
