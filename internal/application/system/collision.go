package system

import (
	"github.com/younwookim/kumite/internal/domain/catalog"
	"github.com/younwookim/kumite/internal/domain/entity"
)

// CollisionEvent records one attack-box/body-box overlap for the
// current frame. Events live for a single frame: created here,
// consumed once by hit queue processing, never persisted.
type CollisionEvent struct {
	Frame    int
	Attacker entity.PlayerID
	Defender entity.PlayerID
	Attack   entity.AttackBox // snapshot of the overlapping attack box
	Body     entity.BodyBox   // snapshot of the overlapping body box
	HitX     int              // world-space hit point, pixels
	HitY     int
	Instance uint32 // attacker's move instance id
}

// CollisionResolver computes box overlap between the two fighters'
// active boxes for the current frame.
type CollisionResolver struct {
	catalog *catalog.Catalog
}

// NewCollisionResolver creates a resolver over the given catalog
func NewCollisionResolver(cat *catalog.Catalog) *CollisionResolver {
	return &CollisionResolver{catalog: cat}
}

// Resolve emits collision events for both attack directions in fixed
// pair order (a attacking b, then b attacking a). Mutual overlap
// produces two independent events resolved in the same frame.
func (r *CollisionResolver) Resolve(frame int, a, b *entity.Fighter) []CollisionEvent {
	var events []CollisionEvent
	events = r.resolvePair(events, frame, a, b)
	events = r.resolvePair(events, frame, b, a)
	return events
}

func (r *CollisionResolver) resolvePair(events []CollisionEvent, frame int, att, def *entity.Fighter) []CollisionEvent {
	if !att.InMatch() || !def.InMatch() {
		return events
	}

	attFrame, ok := r.catalog.Frame(att.Character, att.Routine.Category, att.Routine.MoveIndex, att.Routine.SubFrame)
	if !ok || len(attFrame.Attack) == 0 {
		return events
	}

	defFrame, ok := r.catalog.Frame(def.Character, def.Routine.Category, def.Routine.MoveIndex, def.Routine.SubFrame)
	if !ok || defFrame.Invincible || len(defFrame.Body) == 0 {
		return events
	}

	for _, atk := range attFrame.Attack {
		// Hit-once rule: a single active window spanning several frames
		// registers at most one hit per defender, unless the box is
		// explicitly multi-hit.
		if !atk.MultiHit && def.LastHitInstance[att.ID] == att.MoveInstance {
			continue
		}

		ax, ay, aw, ah := atk.WorldRect(att.PixelX(), att.PixelY(), att.Facing)

		for _, body := range defFrame.Body {
			bx, by, bw, bh := body.WorldRect(def.PixelX(), def.PixelY(), def.Facing)
			if !entity.RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh) {
				continue
			}

			hx, hy := entity.OverlapCenter(ax, ay, aw, ah, bx, by, bw, bh)
			events = append(events, CollisionEvent{
				Frame:    frame,
				Attacker: att.ID,
				Defender: def.ID,
				Attack:   atk,
				Body:     body,
				HitX:     hx,
				HitY:     hy,
				Instance: att.MoveInstance,
			})
			// One event per attack box per frame is enough; resolution
			// decides what it becomes.
			break
		}
	}
	return events
}
