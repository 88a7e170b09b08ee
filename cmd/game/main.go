package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/kumite/internal/application/match"
	"github.com/younwookim/kumite/internal/application/replay"
	"github.com/younwookim/kumite/internal/application/state"
	"github.com/younwookim/kumite/internal/domain/entity"
	"github.com/younwookim/kumite/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorFloor     = color.RGBA{80, 80, 100, 255}
	colorWall      = color.RGBA{60, 60, 80, 255}
	colorP1        = color.RGBA{100, 200, 100, 255}
	colorP2        = color.RGBA{200, 100, 100, 255}
	colorAttackBox = color.RGBA{255, 80, 80, 128}
	colorBodyBox   = color.RGBA{80, 80, 255, 96}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorStunFG    = color.RGBA{255, 215, 0, 255}
)

// keyMap binds one player's keyboard keys to raw input
type keyMap struct {
	up, down, left, right ebiten.Key
	light, heavy          ebiten.Key
	kick, sweep           ebiten.Key
}

var p1Keys = keyMap{
	up: ebiten.KeyW, down: ebiten.KeyS, left: ebiten.KeyA, right: ebiten.KeyD,
	light: ebiten.KeyU, heavy: ebiten.KeyI, kick: ebiten.KeyJ, sweep: ebiten.KeyK,
}

var p2Keys = keyMap{
	up: ebiten.KeyArrowUp, down: ebiten.KeyArrowDown, left: ebiten.KeyArrowLeft, right: ebiten.KeyArrowRight,
	light: ebiten.KeyZ, heavy: ebiten.KeyX, kick: ebiten.KeyC, sweep: ebiten.KeyV,
}

func (k keyMap) read() entity.RawInput {
	var in entity.RawInput
	in.Up = ebiten.IsKeyPressed(k.up)
	in.Down = ebiten.IsKeyPressed(k.down)
	in.Left = ebiten.IsKeyPressed(k.left)
	in.Right = ebiten.IsKeyPressed(k.right)
	if ebiten.IsKeyPressed(k.light) {
		in.Buttons |= entity.ButtonLight
	}
	if ebiten.IsKeyPressed(k.heavy) {
		in.Buttons |= entity.ButtonHeavy
	}
	if ebiten.IsKeyPressed(k.kick) {
		in.Buttons |= entity.ButtonKick
	}
	if ebiten.IsKeyPressed(k.sweep) {
		in.Buttons |= entity.ButtonSweep
	}
	return in
}

// Game implements ebiten.Game interface
type Game struct {
	cfg      *config.EngineConfig
	loader   *config.Loader
	stageCfg *config.StageConfig
	chars    [2]string

	m     *match.Match
	state state.GameState

	screenW int
	screenH int

	// Input recording / playback
	recorder       *replay.Recorder
	recordFilename string
	replayer       *replay.Replayer

	// Character file hot reload
	watcher *CharacterWatcher

	// Outcome banner, shown briefly after a resolved attack
	banner       string
	bannerFrames int
}

// NewGame creates a new game instance
func NewGame(cfg *config.EngineConfig, loader *config.Loader, stageCfg *config.StageConfig, p1Char, p2Char, recordFilename string) (*Game, error) {
	cat, err := loader.LoadCatalog()
	if err != nil {
		return nil, err
	}

	m, err := match.NewMatch(cfg, cat, stageCfg, p1Char, p2Char)
	if err != nil {
		return nil, err
	}

	game := &Game{
		cfg:            cfg,
		loader:         loader,
		stageCfg:       stageCfg,
		chars:          [2]string{p1Char, p2Char},
		m:              m,
		state:          state.StateMenu,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: recordFilename,
	}

	if recordFilename != "" {
		game.recorder = replay.NewRecorder(stageCfg.ID, game.chars)
		log.Printf("Recording enabled: %s", recordFilename)
	}

	return game, nil
}

// Update proceeds the game state
func (g *Game) Update() error {
	g.applyReload()

	switch g.state {
	case state.StateMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.state = state.StateFighting
		}
	case state.StateFighting:
		g.updateFighting()
	case state.StateReplay:
		g.updateReplay()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = state.StateFighting
		}
	case state.StateMatchOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.m.ResetRound()
			g.state = state.StateFighting
		}
	}

	return nil
}

func (g *Game) updateFighting() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.state = state.StatePaused
		return
	}

	// F5: save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && g.recorder != nil {
		g.saveRecording()
	}

	p1 := p1Keys.read()
	p2 := p2Keys.read()

	if g.recorder != nil {
		g.recorder.RecordFrame(p1, p2)
	}

	g.showOutcomes(g.m.Step(p1, p2))

	if g.m.Over() {
		g.state = state.StateMatchOver
		if g.recorder != nil {
			g.saveRecording()
		}
	}
}

func (g *Game) updateReplay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.state = state.StateMatchOver
		return
	}

	in, ok := g.replayer.GetInput()
	if !ok {
		g.state = state.StateMatchOver
		return
	}

	g.showOutcomes(g.m.Step(in[0], in[1]))
	if g.m.Over() {
		g.state = state.StateMatchOver
	}
}

func (g *Game) showOutcomes(outcomes []match.Outcome) {
	if g.bannerFrames > 0 {
		g.bannerFrames--
	}
	for _, o := range outcomes {
		switch o.Kind {
		case match.OutcomeParry:
			g.banner = fmt.Sprintf("P%d PARRY", o.Defender+1)
		case match.OutcomeHit:
			g.banner = fmt.Sprintf("P%d HIT %d", o.Attacker+1, o.Damage)
		case match.OutcomeBlock:
			g.banner = fmt.Sprintf("P%d BLOCK", o.Defender+1)
		default:
			continue
		}
		g.bannerFrames = 45
	}
}

// applyReload swaps in a freshly built match when a character file
// changed on disk. Mid-round state is discarded on purpose: edited
// frame data invalidates the running move timelines.
func (g *Game) applyReload() {
	if g.watcher == nil || !g.watcher.Dirty() {
		return
	}

	cat, err := g.loader.LoadCatalog()
	if err != nil {
		log.Printf("Reload failed, keeping old data: %v", err)
		return
	}
	m, err := match.NewMatch(g.cfg, cat, g.stageCfg, g.chars[0], g.chars[1])
	if err != nil {
		log.Printf("Reload failed, keeping old data: %v", err)
		return
	}
	g.m = m
	log.Printf("Character data reloaded")
}

func (g *Game) saveRecording() {
	if g.recorder == nil {
		return
	}

	filename := g.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := g.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, g.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	g.drawStage(screen)
	g.drawFighter(screen, 0, colorP1)
	g.drawFighter(screen, 1, colorP2)
	g.drawUI(screen)

	switch g.state {
	case state.StateMenu:
		g.drawMenuOverlay(screen)
	case state.StatePaused:
		g.drawPauseOverlay(screen)
	case state.StateMatchOver:
		g.drawMatchOverOverlay(screen)
	}
}

func (g *Game) drawStage(screen *ebiten.Image) {
	st := g.m.Stage()
	floorY := float64(st.FloorY)
	ebitenutil.DrawRect(screen, 0, floorY, float64(g.screenW), float64(g.screenH)-floorY, colorFloor)
	ebitenutil.DrawRect(screen, 0, 0, float64(st.WallMargin), floorY, colorWall)
	ebitenutil.DrawRect(screen, float64(st.Width-st.WallMargin), 0, float64(st.WallMargin), floorY, colorWall)
}

func (g *Game) drawFighter(screen *ebiten.Image, i int, c color.RGBA) {
	f := g.m.Fighter(i)
	ch := g.m.Character(i)

	// Core rect stands on the floor line, centered on the fighter.
	w := float64(ch.Width)
	h := 60.0
	x := float64(f.PixelX()) - w/2
	y := float64(f.PixelY()) - h

	body := c
	if f.IsDamaged() {
		body = color.RGBA{255, 255, 255, 255}
	} else if f.IsBlocking() {
		body = color.RGBA{c.R / 2, c.G / 2, 255, 255}
	}
	ebitenutil.DrawRect(screen, x, y, w, h, body)

	// Facing marker
	nose := float64(f.PixelX() + f.Facing*ch.Width/2)
	ebitenutil.DrawRect(screen, nose-2, y+10, 4, 4, color.RGBA{255, 255, 255, 255})

	// Box debug overlay
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		g.drawBoxes(screen, i)
	}
}

func (g *Game) drawBoxes(screen *ebiten.Image, i int) {
	f := g.m.Fighter(i)
	attack, body := g.m.Catalog().Boxes(f.Character, f.Routine.Category, f.Routine.MoveIndex, f.Routine.SubFrame)

	for _, bb := range body {
		bx, by, bw, bh := bb.WorldRect(f.PixelX(), f.PixelY(), f.Facing)
		ebitenutil.DrawRect(screen, float64(bx), float64(by), float64(bw), float64(bh), colorBodyBox)
	}
	for _, ab := range attack {
		ax, ay, aw, ah := ab.WorldRect(f.PixelX(), f.PixelY(), f.Facing)
		ebitenutil.DrawRect(screen, float64(ax), float64(ay), float64(aw), float64(ah), colorAttackBox)
	}
}

func (g *Game) drawUI(screen *ebiten.Image) {
	g.drawHealthBar(screen, 0, 10, false)
	g.drawHealthBar(screen, 1, float64(g.screenW)-150, true)

	for i := 0; i < 2; i++ {
		if combo := g.m.Fighter(i).ComboCount; combo > 1 {
			x := 10
			if i == 1 {
				x = g.screenW - 80
			}
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d HITS", combo), x, 40)
		}
	}

	if g.bannerFrames > 0 {
		ebitenutil.DebugPrintAt(screen, g.banner, g.screenW/2-30, 40)
	}

	controls := "P1: WASD+UIJK  P2: Arrows+ZXCV | Tab: Boxes | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 10, g.screenH-16)

	if dropped := g.m.DroppedEvents(); dropped > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("dropped events: %d", dropped), 10, g.screenH-32)
	}
}

func (g *Game) drawHealthBar(screen *ebiten.Image, i int, barX float64, rightAligned bool) {
	f := g.m.Fighter(i)
	barY := 10.0
	barW := 140.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	ratio := float64(f.Vitality) / float64(f.MaxVitality)
	fillX := barX
	if rightAligned {
		fillX = barX + barW*(1-ratio)
	}
	ebitenutil.DrawRect(screen, fillX, barY, barW*ratio, barH, colorHealthFG)

	// Stun meter underneath
	stun := float64(f.StunMeter) / 100.0
	if stun > 1 {
		stun = 1
	}
	ebitenutil.DrawRect(screen, barX, barY+barH+2, barW*stun, 3, colorStunFG)
}

func (g *Game) drawMenuOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(g.screenW), float64(g.screenH), overlay)

	text := fmt.Sprintf("KUMITE\n\n%s vs %s\n\nPress ENTER to fight", g.chars[0], g.chars[1])
	ebitenutil.DebugPrintAt(screen, text, g.screenW/2-60, g.screenH/2-30)
}

func (g *Game) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(g.screenW), float64(g.screenH), overlay)

	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", g.screenW/2-50, g.screenH/2-20)
}

func (g *Game) drawMatchOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(g.screenW), float64(g.screenH), overlay)

	result := "DOUBLE KO"
	if winner, ok := g.m.Winner(); ok {
		result = fmt.Sprintf("PLAYER %d WINS", winner+1)
	}
	text := fmt.Sprintf("%s\n\nPress ENTER for the next round", result)
	ebitenutil.DebugPrintAt(screen, text, g.screenW/2-70, g.screenH/2-20)
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

func main() {
	configDir := flag.String("config", "configs", "Config directory")
	stageName := flag.String("stage", "dojo", "Stage to load")
	p1Char := flag.String("p1", "ryo", "Player 1 character")
	p2Char := flag.String("p2", "kaede", "Player 2 character")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded file")
	watchFlag := flag.Bool("watch", true, "Reload character files on change")
	flag.Parse()

	loader := config.NewLoader(*configDir)
	cfg, err := loader.LoadEngine()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	stageCfg, err := loader.LoadStage(*stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	p1, p2 := *p1Char, *p2Char
	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		chars := replayer.Characters()
		p1, p2 = chars[0], chars[1]
		if stage := replayer.Stage(); stage != "" && stage != *stageName {
			stageCfg, err = loader.LoadStage(stage)
			if err != nil {
				log.Fatalf("Failed to load replay stage: %v", err)
			}
		}
		log.Printf("Replaying %s (%d frames)", *replayFlag, replayer.TotalFrames())
	}

	game, err := NewGame(cfg, loader, stageCfg, p1, p2, *recordFlag)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	if replayer != nil {
		game.replayer = replayer
		game.state = state.StateReplay
	}

	if *watchFlag && *replayFlag == "" {
		watcher, err := NewCharacterWatcher(*configDir)
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			game.watcher = watcher
		}
	}

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Kumite")
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
