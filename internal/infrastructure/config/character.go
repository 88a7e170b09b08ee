package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/kumite/internal/domain/catalog"
	"github.com/younwookim/kumite/internal/domain/entity"
)

// CharacterSpec is the YAML schema for one character file. It is an
// authoring format: boxes are written per frame with an optional
// repeat count, and names are used for buttons, motions and heights.
type CharacterSpec struct {
	Name      string                `yaml:"name"`
	Vitality  int                   `yaml:"vitality"`
	WalkSpeed int                   `yaml:"walkSpeed"` // scaled units per frame
	BackSpeed int                   `yaml:"backSpeed"`
	Width     int                   `yaml:"width"` // pushbox width, pixels
	States    map[string][]MoveSpec `yaml:"states"`
}

type MoveSpec struct {
	Name    string      `yaml:"name"`
	Trigger TriggerSpec `yaml:"trigger"`
	Frames  []FrameSpec `yaml:"frames"`
}

type TriggerSpec struct {
	Button string `yaml:"button"` // light, heavy, kick, sweep
	Motion string `yaml:"motion"` // qcf, qcb, dp
	Charge string `yaml:"charge"` // back, down
}

type FrameSpec struct {
	Repeat     int             `yaml:"repeat"` // expand to this many identical frames
	Cancel     bool            `yaml:"cancel"`
	Invincible bool            `yaml:"invincible"`
	Attack     []AttackBoxSpec `yaml:"attack"`
	Body       []BodyBoxSpec   `yaml:"body"`
}

type AttackBoxSpec struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	W         int    `yaml:"w"`
	H         int    `yaml:"h"`
	Damage    int    `yaml:"damage"`
	Hitstun   int    `yaml:"hitstun"`
	Blockstun int    `yaml:"blockstun"`
	Chip      int    `yaml:"chip"`
	Stun      int    `yaml:"stun"`
	Pushback  int    `yaml:"pushback"`
	Height    string `yaml:"height"` // high, mid, low
	MultiHit  bool   `yaml:"multihit"`
}

type BodyBoxSpec struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
	Kind string `yaml:"kind"` // body (default), limb
}

// ParseCharacter unmarshals and validates a character YAML document
func ParseCharacter(data []byte) (*CharacterSpec, error) {
	var spec CharacterSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse character: %w", err)
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("character has no name")
	}
	if spec.Vitality <= 0 {
		return nil, fmt.Errorf("character %s: vitality must be positive", spec.Name)
	}
	return &spec, nil
}

// Build converts the authoring spec into the immutable catalog form
func (spec *CharacterSpec) Build() (*catalog.Character, error) {
	ch := &catalog.Character{
		Name:        spec.Name,
		MaxVitality: spec.Vitality,
		WalkSpeed:   spec.WalkSpeed,
		BackSpeed:   spec.BackSpeed,
		Width:       spec.Width,
		States:      make(map[entity.Category][]catalog.Move),
	}

	for stateName, moveSpecs := range spec.States {
		cat, err := parseCategory(stateName)
		if err != nil {
			return nil, fmt.Errorf("character %s: %w", spec.Name, err)
		}
		moves := make([]catalog.Move, 0, len(moveSpecs))
		for _, ms := range moveSpecs {
			move, err := ms.build()
			if err != nil {
				return nil, fmt.Errorf("character %s, state %s: %w", spec.Name, stateName, err)
			}
			moves = append(moves, move)
		}
		ch.States[cat] = moves
	}
	return ch, nil
}

func (ms MoveSpec) build() (catalog.Move, error) {
	move := catalog.Move{Name: ms.Name}

	button, err := parseButton(ms.Trigger.Button)
	if err != nil {
		return move, fmt.Errorf("move %s: %w", ms.Name, err)
	}
	move.Trigger = catalog.Trigger{
		Button: button,
		Motion: ms.Trigger.Motion,
		Charge: ms.Trigger.Charge,
	}

	for _, fs := range ms.Frames {
		fd := catalog.FrameData{
			Cancel:     fs.Cancel,
			Invincible: fs.Invincible,
		}
		for _, ab := range fs.Attack {
			height, err := parseHeight(ab.Height)
			if err != nil {
				return move, fmt.Errorf("move %s: %w", ms.Name, err)
			}
			fd.Attack = append(fd.Attack, entity.AttackBox{
				Rect:       entity.Rect{OffsetX: ab.X, OffsetY: ab.Y, Width: ab.W, Height: ab.H},
				Damage:     ab.Damage,
				Hitstun:    ab.Hitstun,
				Blockstun:  ab.Blockstun,
				ChipDamage: ab.Chip,
				StunDamage: ab.Stun,
				Pushback:   ab.Pushback,
				Height:     height,
				MultiHit:   ab.MultiHit,
			})
		}
		for _, bb := range fs.Body {
			kind, err := parseKind(bb.Kind)
			if err != nil {
				return move, fmt.Errorf("move %s: %w", ms.Name, err)
			}
			fd.Body = append(fd.Body, entity.BodyBox{
				Rect: entity.Rect{OffsetX: bb.X, OffsetY: bb.Y, Width: bb.W, Height: bb.H},
				Kind: kind,
			})
		}

		repeat := fs.Repeat
		if repeat <= 0 {
			repeat = 1
		}
		for i := 0; i < repeat; i++ {
			move.Frames = append(move.Frames, fd)
		}
	}

	if len(move.Frames) == 0 {
		return move, fmt.Errorf("move %s has no frames", ms.Name)
	}
	return move, nil
}

func parseCategory(name string) (entity.Category, error) {
	switch name {
	case "neutral":
		return entity.CategoryNeutral, nil
	case "attacking":
		return entity.CategoryAttacking, nil
	case "blocking":
		return entity.CategoryBlocking, nil
	case "damaged":
		return entity.CategoryDamaged, nil
	case "thrown":
		return entity.CategoryThrown, nil
	default:
		return 0, fmt.Errorf("unknown state category %q", name)
	}
}

func parseButton(name string) (entity.Buttons, error) {
	switch name {
	case "":
		return 0, nil
	case "light":
		return entity.ButtonLight, nil
	case "heavy":
		return entity.ButtonHeavy, nil
	case "kick":
		return entity.ButtonKick, nil
	case "sweep":
		return entity.ButtonSweep, nil
	default:
		return 0, fmt.Errorf("unknown button %q", name)
	}
}

func parseHeight(name string) (entity.GuardHeight, error) {
	switch name {
	case "", "mid":
		return entity.GuardMid, nil
	case "high":
		return entity.GuardHigh, nil
	case "low":
		return entity.GuardLow, nil
	default:
		return 0, fmt.Errorf("unknown guard height %q", name)
	}
}

func parseKind(name string) (entity.BoxKind, error) {
	switch name {
	case "", "body":
		return entity.KindBody, nil
	case "limb":
		return entity.KindLimb, nil
	default:
		return 0, fmt.Errorf("unknown box kind %q", name)
	}
}
