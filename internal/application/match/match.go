// Package match runs the fixed-timestep combat simulation for one
// two-fighter match. Step is the only mutation point: given both
// players' raw inputs it advances exactly one frame and returns the
// combat outcomes produced by that frame.
package match

import (
	"fmt"

	"github.com/younwookim/kumite/internal/application/system"
	"github.com/younwookim/kumite/internal/domain/catalog"
	"github.com/younwookim/kumite/internal/domain/entity"
	"github.com/younwookim/kumite/internal/infrastructure/config"
)

// OutcomeKind classifies what a resolved attack became
type OutcomeKind uint8

const (
	OutcomeHit OutcomeKind = iota
	OutcomeBlock
	OutcomeParry
	OutcomeWhiff
)

// String returns the string representation of the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeHit:
		return "Hit"
	case OutcomeBlock:
		return "Block"
	case OutcomeParry:
		return "Parry"
	case OutcomeWhiff:
		return "Whiff"
	default:
		return "Unknown"
	}
}

// Outcome is one resolved combat result for a single frame
type Outcome struct {
	Kind      OutcomeKind
	Frame     int
	Attacker  entity.PlayerID
	Defender  entity.PlayerID
	Damage    int // applied damage after combo scaling (chip on block)
	Hitstun   int
	Blockstun int
	Pushback  int
}

// Snapshot is the deterministic state of the whole match after a step.
// Two runs fed identical inputs produce identical snapshot sequences.
type Snapshot struct {
	Frame    int
	Fighters [2]entity.Snapshot
	Dropped  uint64
}

// Match owns all per-match simulation state. It is not safe for
// concurrent use; the caller drives it from a single loop.
type Match struct {
	cfg      *config.EngineConfig
	cat      *catalog.Catalog
	stage    *entity.Stage
	stageCfg *config.StageConfig

	fighters [2]*entity.Fighter
	chars    [2]*catalog.Character
	samplers [2]*system.InputSampler
	parry    [2]*system.ParryResolver

	queue    *system.HitQueue
	ledger   *system.ComboLedger
	resolver *system.CollisionResolver
	movement *system.MovementSystem

	frame  int
	winner int // fighter index, -1 while undecided or on a double KO
}

// NewMatch assembles a match from loaded config and catalog data.
// Both character names must exist in the catalog.
func NewMatch(cfg *config.EngineConfig, cat *catalog.Catalog, stage *config.StageConfig, p1Char, p2Char string) (*Match, error) {
	names := [2]string{p1Char, p2Char}
	var chars [2]*catalog.Character
	for i, name := range names {
		ch := cat.Character(name)
		if ch == nil {
			return nil, fmt.Errorf("unknown character %q", name)
		}
		chars[i] = ch
	}

	st := &entity.Stage{
		Width:      stage.Width,
		FloorY:     stage.FloorY,
		WallMargin: stage.WallMargin,
	}

	m := &Match{
		cfg:      cfg,
		cat:      cat,
		stage:    st,
		stageCfg: stage,
		chars:    chars,
		queue:    system.NewHitQueue(),
		ledger:   system.NewComboLedger(cfg.Combat.ScaleTable),
		resolver: system.NewCollisionResolver(cat),
		movement: system.NewMovementSystem(st),
		winner:   -1,
	}
	for i := range m.samplers {
		m.samplers[i] = system.NewInputSampler(cfg.Simulation.ChargeFrames, nil)
		m.parry[i] = system.NewParryResolver(cfg.Combat.ParryWindow, cfg.Combat.ParryAdvantage)
	}
	m.spawnFighters()
	return m, nil
}

func (m *Match) spawnFighters() {
	sp := m.stageCfg.Spawn
	m.fighters[0] = entity.NewFighter(entity.Player1, m.chars[0].Name, sp.P1X, sp.Y, 1, m.chars[0].MaxVitality)
	m.fighters[1] = entity.NewFighter(entity.Player2, m.chars[1].Name, sp.P2X, sp.Y, -1, m.chars[1].MaxVitality)
}

// ResetRound restores both fighters to their spawn state and clears
// all per-round bookkeeping. The frame counter restarts at zero.
func (m *Match) ResetRound() {
	m.spawnFighters()
	for i := range m.samplers {
		m.samplers[i].Reset()
		m.parry[i].Reset()
	}
	m.queue.Clear()
	m.ledger.Reset()
	m.frame = 0
	m.winner = -1
}

// Fighter returns the fighter at the given index (0 or 1)
func (m *Match) Fighter(i int) *entity.Fighter {
	return m.fighters[i]
}

// Character returns the catalog data for the fighter at the given index
func (m *Match) Character(i int) *catalog.Character {
	return m.chars[i]
}

// Stage returns the stage bounds
func (m *Match) Stage() *entity.Stage {
	return m.stage
}

// Catalog returns the move data the match was built from
func (m *Match) Catalog() *catalog.Catalog {
	return m.cat
}

// Frame returns the number of steps taken this round
func (m *Match) Frame() int {
	return m.frame
}

// Over reports whether the round has been decided
func (m *Match) Over() bool {
	return !m.fighters[0].InMatch()
}

// Winner returns the winning fighter index. ok is false while the
// round is running and on a double KO.
func (m *Match) Winner() (int, bool) {
	return m.winner, m.winner >= 0
}

// DroppedEvents returns the cumulative hit queue overflow count
func (m *Match) DroppedEvents() uint64 {
	return m.queue.Dropped()
}

// ComboCount returns the live combo depth for the given attacker index
func (m *Match) ComboCount(attacker int) int {
	return m.ledger.Count(m.fighters[attacker].ID, m.fighters[attacker].ID.Opponent())
}

// ParryPhase exposes the given fighter's parry window phase
func (m *Match) ParryPhase(i int) system.ParryPhase {
	return m.parry[i].Phase()
}

// Snapshot captures the deterministic match state
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Frame:    m.frame,
		Fighters: [2]entity.Snapshot{m.fighters[0].Snapshot(), m.fighters[1].Snapshot()},
		Dropped:  m.queue.Dropped(),
	}
}

// Step advances the simulation by exactly one frame. The order within
// a step is fixed: sample inputs, advance parry windows, advance
// fighter state machines, select new moves, move, collide, then
// resolve the hit queue in insertion order.
func (m *Match) Step(p1, p2 entity.RawInput) []Outcome {
	m.frame++

	raws := [2]entity.RawInput{p1, p2}
	for i := range m.fighters {
		m.samplers[i].Push(raws[i], m.fighters[i].Facing)
	}
	for i := range m.fighters {
		m.parry[i].Update(m.samplers[i], m.fighters[i].CanAct())
	}

	var outcomes []Outcome
	outcomes = m.advance(0, outcomes)
	outcomes = m.advance(1, outcomes)

	m.selectMove(0)
	m.selectMove(1)

	a, b := m.fighters[0], m.fighters[1]
	m.movement.Face(a, b)
	m.movement.Walk(a, m.chars[0], m.samplers[0].Direction())
	m.movement.Walk(b, m.chars[1], m.samplers[1].Direction())
	m.movement.Separate(a, b, m.chars[0].Width, m.chars[1].Width)

	for _, ev := range m.resolver.Resolve(m.frame, a, b) {
		m.queue.Push(ev)
	}
	outcomes = m.resolveQueue(outcomes)
	m.queue.Clear()

	a.CheckInvariants()
	b.CheckInvariants()

	m.checkRoundOver()
	return outcomes
}

// advance moves one fighter's state machine forward by a frame
func (m *Match) advance(i int, outcomes []Outcome) []Outcome {
	f := m.fighters[i]
	opp := m.fighters[1-i]
	if !f.InMatch() {
		return outcomes
	}
	if f.Routine.FreezeFrames > 0 {
		f.Routine.FreezeFrames--
		return outcomes
	}

	switch f.Routine.Category {
	case entity.CategoryAttacking:
		f.Routine.SubFrame++
		if f.Routine.SubFrame >= m.cat.Duration(f.Character, entity.CategoryAttacking, f.Routine.MoveIndex) {
			if !f.MoveConnected {
				outcomes = append(outcomes, Outcome{
					Kind:     OutcomeWhiff,
					Frame:    m.frame,
					Attacker: f.ID,
					Defender: opp.ID,
				})
			}
			f.ReturnToNeutral()
		}

	case entity.CategoryDamaged, entity.CategoryBlocking:
		f.Routine.StunFrames--
		f.Routine.SubFrame++
		if dur := m.cat.Duration(f.Character, f.Routine.Category, 0); dur > 0 {
			f.Routine.SubFrame %= dur
		} else {
			f.Routine.SubFrame = 0
		}
		if f.Routine.StunFrames <= 0 {
			// Recovery to neutral is what ends a combo, not a timer.
			f.ReturnToNeutral()
			m.ledger.ResetDefender(f.ID)
			opp.ComboCount = 0
		}

	case entity.CategoryNeutral:
		f.Routine.SubFrame++
		if dur := m.cat.Duration(f.Character, entity.CategoryNeutral, 0); dur > 0 {
			f.Routine.SubFrame %= dur
		} else {
			f.Routine.SubFrame = 0
		}
	}

	if f.Routine.Category != entity.CategoryDamaged && f.StunMeter > 0 {
		f.StunMeter -= m.cfg.Combat.StunDecay
		if f.StunMeter < 0 {
			f.StunMeter = 0
		}
	}
	return outcomes
}

// selectMove starts a new attack when a trigger matches this frame's
// input. Moves are checked in catalog order, so characters list their
// motion and charge moves before plain normals that share a button.
func (m *Match) selectMove(i int) {
	f := m.fighters[i]
	s := m.samplers[i]

	pressed := s.ButtonsPressed()
	if pressed == 0 {
		return
	}

	canCancel := false
	if f.InMatch() && f.IsAttacking() && f.Routine.FreezeFrames == 0 {
		fd, ok := m.cat.Frame(f.Character, entity.CategoryAttacking, f.Routine.MoveIndex, f.Routine.SubFrame)
		canCancel = ok && fd.Cancel
	}
	if !f.CanAct() && !canCancel {
		return
	}

	moves := m.chars[i].States[entity.CategoryAttacking]
	for idx := range moves {
		tr := moves[idx].Trigger
		if tr.Button == 0 || !pressed.Has(tr.Button) {
			continue
		}
		if tr.Motion != "" && !s.HasMotion(tr.Motion) {
			continue
		}
		if tr.Charge != "" && !s.ChargeReady(tr.Charge) {
			continue
		}
		f.BeginAttack(idx)
		return
	}
}

// resolveQueue drains the hit queue, turning each collision event into
// a parry, block or hit in strict insertion order.
func (m *Match) resolveQueue(outcomes []Outcome) []Outcome {
	var hitThisFrame [2]bool

	for {
		ev, ok := m.queue.Pop()
		if !ok {
			break
		}
		att := m.fighters[ev.Attacker]
		def := m.fighters[ev.Defender]

		// Re-check hit-once here: several boxes of the same swing can
		// queue events for the same instance in one frame.
		if !ev.Attack.MultiHit && def.LastHitInstance[att.ID] == ev.Instance {
			continue
		}
		def.LastHitInstance[att.ID] = ev.Instance
		att.MoveConnected = true

		if def.CanAct() && m.parry[ev.Defender].TryResolve(ev.Attack.Height) {
			// The parried attacker is frozen for a fixed advantage
			// independent of the parried move.
			att.Routine.FreezeFrames = m.parry[ev.Defender].Advantage()
			outcomes = append(outcomes, Outcome{
				Kind:     OutcomeParry,
				Frame:    ev.Frame,
				Attacker: ev.Attacker,
				Defender: ev.Defender,
			})
			continue
		}

		if m.guarded(ev.Defender, def, ev.Attack) {
			chip := ev.Attack.ChipDamage
			if chip > 0 {
				// Chip never closes a round.
				if def.Vitality-chip < 1 {
					chip = def.Vitality - 1
				}
				def.Vitality -= chip
			}
			def.EnterBlockstun(ev.Attack.Blockstun, ev.Attack.Height)
			m.movement.ApplyPushback(att, def, ev.Attack.Pushback)
			outcomes = append(outcomes, Outcome{
				Kind:      OutcomeBlock,
				Frame:     ev.Frame,
				Attacker:  ev.Attacker,
				Defender:  ev.Defender,
				Damage:    chip,
				Blockstun: ev.Attack.Blockstun,
				Pushback:  ev.Attack.Pushback,
			})
			continue
		}

		damage := m.ledger.ScaledDamage(ev.Attacker, ev.Defender, ev.Attack.Damage)
		def.ForceDamaged(ev.Attack.Hitstun)
		def.ApplyDamage(damage)
		def.StunMeter += ev.Attack.StunDamage

		if m.cfg.Combat.AiuchiCountsBoth || !hitThisFrame[ev.Attacker] {
			m.ledger.RecordHit(ev.Attacker, ev.Defender)
			att.ComboCount = m.ledger.Count(ev.Attacker, ev.Defender)
		}
		hitThisFrame[ev.Defender] = true

		m.movement.ApplyPushback(att, def, ev.Attack.Pushback)
		outcomes = append(outcomes, Outcome{
			Kind:     OutcomeHit,
			Frame:    ev.Frame,
			Attacker: ev.Attacker,
			Defender: ev.Defender,
			Damage:   damage,
			Hitstun:  ev.Attack.Hitstun,
			Pushback: ev.Attack.Pushback,
		})
	}
	return outcomes
}

// guarded reports whether the defender blocks the incoming attack.
// Blocking needs a held back direction and the right stance for the
// attack height: lows need down-back, highs need standing back, mids
// accept either.
func (m *Match) guarded(defIdx entity.PlayerID, def *entity.Fighter, atk entity.AttackBox) bool {
	if !def.InMatch() || def.Routine.FreezeFrames > 0 {
		return false
	}
	if !def.IsNeutral() && !def.IsBlocking() {
		return false
	}
	dir := m.samplers[defIdx].Direction()
	if !dir.HasBack() {
		return false
	}
	switch atk.Height {
	case entity.GuardLow:
		return dir.HasDown()
	case entity.GuardHigh:
		return !dir.HasDown()
	default:
		return true
	}
}

func (m *Match) checkRoundOver() {
	defeated := [2]bool{
		m.fighters[0].Vitality == 0,
		m.fighters[1].Vitality == 0,
	}
	if !defeated[0] && !defeated[1] {
		return
	}
	m.fighters[0].Routine.Phase = entity.PhaseRoundOver
	m.fighters[1].Routine.Phase = entity.PhaseRoundOver
	switch {
	case defeated[0] && defeated[1]:
		m.winner = -1 // double KO
	case defeated[0]:
		m.winner = 1
	default:
		m.winner = 0
	}
}
