package config

// EngineConfig is the root config for engine.json
type EngineConfig struct {
	Display    DisplayConfig    `json:"display"`
	Simulation SimulationConfig `json:"simulation"`
	Combat     CombatConfig     `json:"combat"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type SimulationConfig struct {
	MotionWindow int `json:"motionWindow"` // max frames for a motion sequence
	ChargeFrames int `json:"chargeFrames"` // hold frames before a charge is ready
}

type CombatConfig struct {
	ParryWindow      int   `json:"parryWindow"`
	ParryAdvantage   int   `json:"parryAdvantage"`
	ScaleTable       []int `json:"scaleTable"`
	AiuchiCountsBoth bool  `json:"aiuchiCountsBoth"` // mutual hits increment both combos
	StunDecay        int   `json:"stunDecay"`        // stun meter decay per untouched frame
}

// DefaultEngine returns the engine configuration used when no file is
// loaded, e.g. in tests.
func DefaultEngine() *EngineConfig {
	return &EngineConfig{
		Display: DisplayConfig{
			ScreenWidth:  400,
			ScreenHeight: 240,
			Scale:        2,
			Framerate:    60,
		},
		Simulation: SimulationConfig{
			MotionWindow: 12,
			ChargeFrames: 45,
		},
		Combat: CombatConfig{
			ParryWindow:      7,
			ParryAdvantage:   8,
			ScaleTable:       []int{100, 90, 80, 70, 60, 50, 40, 30, 20, 10},
			AiuchiCountsBoth: true,
			StunDecay:        1,
		},
	}
}

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	FloorY     int         `json:"floorY"`
	WallMargin int         `json:"wallMargin"`
	Spawn      SpawnConfig `json:"spawn"`
}

type SpawnConfig struct {
	P1X int `json:"p1x"`
	P2X int `json:"p2x"`
	Y   int `json:"y"`
}
