//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
)

var patternKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// chunkImage is the GPU copy of one chunk surface
type chunkImage struct {
	img     *ebiten.Image
	version uint64
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	s      *session.Session
	images map[model.ChunkKey]*chunkImage

	width, height int
	last          time.Time
	showHUD       bool
}

// New constructs a Game for the provided session.
func New(s *session.Session, width, height int) *Game {
	return &Game{
		s:       s,
		images:  make(map[model.ChunkKey]*chunkImage),
		width:   width,
		height:  height,
		showHUD: true,
	}
}

// Update handles input, advances the session and syncs chunk images.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now
	g.s.Update(dt)

	report := g.s.Frame(float32(g.width), float32(g.height))
	for _, key := range report.Despawned {
		if ci, ok := g.images[key]; ok {
			ci.img.Deallocate()
			delete(g.images, key)
		}
	}
	g.uploadSurfaces()
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.s.Enqueue(session.ToggleRunning{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.s.Enqueue(session.Step{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.s.Enqueue(session.Reset{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.s.Enqueue(session.Clear{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.s.Enqueue(session.Slower{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.s.Enqueue(session.Faster{})
	}

	var pan mgl32.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		pan[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		pan[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pan[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pan[1]--
	}
	if pan.Len() > 0 {
		g.s.Enqueue(session.Pan{DX: pan.X(), DY: pan.Y()})
	}

	_, wheel := ebiten.Wheel()
	switch {
	case wheel > 0 || inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.s.Enqueue(session.Zoom{In: true})
	case wheel < 0 || inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.s.Enqueue(session.Zoom{In: false})
	}

	mx, my := ebiten.CursorPosition()
	cursor := g.s.Camera.ScreenToCell(mgl32.Vec2{float32(mx), float32(my)}, float32(g.width), float32(g.height))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.s.Enqueue(session.ToggleCell{X: cursor.X, Y: cursor.Y})
	}
	for i, key := range patternKeys {
		if inpututil.IsKeyJustPressed(key) {
			p := model.Patterns()[i]
			g.s.Enqueue(session.PlacePattern{Cells: p.At(cursor.X, cursor.Y)})
		}
	}
}

// uploadSurfaces copies every surface redrawn since the last frame to its image
func (g *Game) uploadSurfaces() {
	for _, key := range g.s.Cache.Keys() {
		surface, _ := g.s.Cache.Surface(key)
		ci, ok := g.images[key]
		if !ok {
			ci = &chunkImage{img: ebiten.NewImage(model.ChunkSize, model.ChunkSize)}
			g.images[key] = ci
		}
		if ci.version != surface.Version() {
			ci.img.WritePixels(surface.Pixels())
			ci.version = surface.Version()
		}
	}
}

// Draw renders every materialized chunk and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	var (
		cam   = g.s.Camera
		scale = float64(model.CellWorldSize / cam.Scale)
		w, h  = float32(g.width), float32(g.height)
	)
	screen.Fill(color.Gray{Y: 40})
	for key, ci := range g.images {
		pos := cam.ChunkToScreen(key, w, h)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(pos.X()), float64(pos.Y()))
		screen.DrawImage(ci.img, op)
	}
	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	var (
		s     = g.s
		state = "paused"
	)
	if s.Running() {
		state = "running"
	}
	lines := []string{
		fmt.Sprintf("gen %d  pop %d  %s  tick %v", s.World.Generation(), s.World.Population(), state, s.Timer.Interval()),
		fmt.Sprintf("chunks %d visible  %d redrawn  scale %.2f", s.Stats.VisibleChunks, s.Stats.SurfacesRedrawn, s.Camera.Scale),
		"space run  n step  r reset  c clear  1-6 patterns  h hud",
	}
	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*16, color.RGBA{R: 220, G: 40, B: 40, A: 255})
	}
}

// Layout tracks the window size so the viewport always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
