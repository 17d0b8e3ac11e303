package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/cyberguard/internal/application/state"
	"github.com/younwookim/cyberguard/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{10, 10, 26, 255}
	colorGrid     = color.RGBA{0, 255, 255, 20}
	colorPlayer   = color.RGBA{0, 200, 255, 255}
	colorVisor    = color.RGBA{255, 255, 255, 255}
	colorSpike    = color.RGBA{255, 0, 64, 255}
	colorSpikeTip = color.RGBA{255, 170, 190, 255}
	colorGoal     = color.RGBA{0, 255, 0, 255}
	colorGoalLock = color.RGBA{90, 90, 90, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 180}
	colorMessage  = color.RGBA{0, 0, 0, 200}
)

const gridSpacing = 50

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX := p.session.Camera.X
	camY := p.session.Camera.Y

	p.drawGrid(screen, camX)
	p.drawPlatforms(screen, camX, camY)
	p.drawHazards(screen, camX, camY)
	p.drawPickups(screen, camX, camY)
	p.drawGoal(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)

	p.drawUI(screen)
	p.drawMessage(screen)

	switch p.session.State {
	case state.StateStart:
		p.drawStartOverlay(screen)
	case state.StateGameOver:
		p.drawEndOverlay(screen, "SYSTEM COMPROMISED")
	case state.StateGameWin:
		p.drawEndOverlay(screen, "NETWORK SECURED!")
	}
}

func (p *Playing) drawGrid(screen *ebiten.Image, camX float64) {
	offset := float64(int(camX) % gridSpacing)
	for x := -offset; x < float64(p.screenW); x += gridSpacing {
		ebitenutil.DrawRect(screen, x, 0, 1, float64(p.screenH), colorGrid)
	}
}

// visibleRect converts r to screen space, reporting false when it is culled
func (p *Playing) visibleRect(r entity.Rect, camX, camY float64) (entity.Rect, bool) {
	if !p.session.Viewport.Visible(r) {
		return entity.Rect{}, false
	}
	return r.Offset(-camX, -camY), true
}

func (p *Playing) fillRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, c)
}

// drawSurface draws a platform body with a highlighted top edge
func (p *Playing) drawSurface(screen *ebiten.Image, r entity.Rect, kind entity.PlatformKind, alpha float64) {
	colors, ok := entity.PlatformColors[kind]
	if !ok {
		return
	}
	p.fillRect(screen, r, fade(colors[0], alpha))
	p.fillRect(screen, entity.Rect{X: r.X, Y: r.Y, W: r.W, H: 3}, fade(colors[1], alpha))
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, camX, camY float64) {
	w := p.session.World
	for _, pl := range w.Platforms {
		if r, ok := p.visibleRect(pl.Rect, camX, camY); ok {
			p.drawSurface(screen, r, entity.PlatformStatic, 1)
		}
	}
	for _, pl := range w.MovingPlatforms {
		if r, ok := p.visibleRect(pl.Rect, camX, camY); ok {
			p.drawSurface(screen, r, entity.PlatformMoving, 1)
		}
	}
	for _, pl := range w.FallingPlatforms {
		if r, ok := p.visibleRect(pl.Rect, camX, camY); ok {
			p.drawSurface(screen, r, entity.PlatformFalling, 1)
		}
	}
	for _, pl := range w.DisappearingPlatforms {
		if !pl.Visible {
			continue
		}
		if r, ok := p.visibleRect(pl.Rect, camX, camY); ok {
			p.drawSurface(screen, r, entity.PlatformDisappearing, pl.Alpha)
		}
	}
}

func (p *Playing) drawHazards(screen *ebiten.Image, camX, camY float64) {
	w := p.session.World
	for _, s := range w.Spikes {
		r, ok := p.visibleRect(s.Rect, camX, camY)
		if !ok {
			continue
		}
		// One tooth per spike height along the strip
		for x := r.X; x < r.Right(); x += entity.SpikeHeight {
			tooth := entity.Rect{X: x, Y: r.Y, W: min(entity.SpikeHeight, r.Right()-x), H: r.H}
			p.fillRect(screen, tooth, colorSpike)
			p.fillRect(screen, entity.Rect{X: tooth.CenterX() - 2, Y: tooth.Y, W: 4, H: 4}, colorSpikeTip)
		}
	}
	for _, c := range w.Chasers {
		col, ok := entity.ChaserColors[c.Kind]
		if !ok {
			continue
		}
		if r, ok := p.visibleRect(c.Rect, camX, camY); ok {
			p.fillRect(screen, r, col)
		}
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image, camX, camY float64) {
	w := p.session.World
	for _, c := range w.Collectibles {
		if c.Collected {
			continue
		}
		r, ok := p.visibleRect(c.Rect.Offset(0, c.BobY()), camX, camY)
		if !ok {
			continue
		}
		attrs := c.Kind.Attrs()
		p.fillRect(screen, r, attrs.Color)
		ebitenutil.DebugPrintAt(screen, attrs.Symbol, int(r.X)+7, int(r.Y)+2)
	}
	for _, t := range w.Teleporters {
		if t.Color == (color.RGBA{}) {
			continue
		}
		r, ok := p.visibleRect(t.Rect, camX, camY)
		if !ok {
			continue
		}
		alpha := t.Pulse()
		if !t.Ready() {
			alpha *= 0.4
		}
		p.fillRect(screen, r, fade(t.Color, alpha))
	}
}

func (p *Playing) drawGoal(screen *ebiten.Image, camX, camY float64) {
	g := p.session.World.Goal
	if g == nil {
		return
	}
	r, ok := p.visibleRect(g.Rect, camX, camY)
	if !ok {
		return
	}
	c := colorGoalLock
	if p.session.Progress().Remaining() == 0 {
		c = colorGoal
	}
	p.fillRect(screen, r, c)
	ebitenutil.DebugPrintAt(screen, "EXIT", int(r.X)+6, int(r.Y)+18)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY float64) {
	for _, e := range p.session.World.Enemies {
		r, ok := p.visibleRect(e.Rect, camX, camY)
		if !ok {
			continue
		}
		p.fillRect(screen, r, e.Kind.Attrs().Color)
		// Eye on the leading side
		eyeX := r.X + 4
		if e.Direction > 0 {
			eyeX = r.Right() - 8
		}
		p.fillRect(screen, entity.Rect{X: eyeX, Y: r.Y + 6, W: 4, H: 4}, colorVisor)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	player := p.session.Player
	// Blink while invulnerable
	if player.IsInvulnerable() && (p.session.Frame/4)%2 == 0 {
		return
	}

	r := player.Rect.Offset(-camX, -camY)
	p.fillRect(screen, r, colorPlayer)

	visorX := r.X + 12
	if player.Facing < 0 {
		visorX = r.X + 2
	}
	p.fillRect(screen, entity.Rect{X: visorX, Y: r.Y + 6, W: 10, H: 5}, colorVisor)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	s := p.session
	hud := fmt.Sprintf("Score: %d   Level: %d   Items: %d/%d   Time: %s",
		s.Score, s.Level, s.Collected, s.Total, s.ElapsedString())
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)
	ebitenutil.DebugPrintAt(screen, "Arrows/WASD: Move | Space: Jump | R: Restart | Q: Give up | ESC: Quit", 10, p.screenH-20)
}

func (p *Playing) drawMessage(screen *ebiten.Image) {
	text, ok := p.board.Current()
	if !ok {
		return
	}
	// DebugPrint glyphs are 6 px wide
	w := float64(len(text)*6 + 20)
	x := (float64(p.screenW) - w) / 2
	ebitenutil.DrawRect(screen, x, 40, w, 24, colorMessage)
	ebitenutil.DebugPrintAt(screen, text, int(x)+10, 45)
}

func (p *Playing) drawStartOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := "CYBERGUARD\n\nCollect every security tool, then reach the exit.\n\nPress ENTER to start"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-150, p.screenH/2-40)
}

func (p *Playing) drawEndOverlay(screen *ebiten.Image, title string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := fmt.Sprintf("%s\n\nFinal Score: %d\nTime: %s\n\nPress R to play again",
		title, p.session.Score, p.session.ElapsedString())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-80, p.screenH/2-40)
}

// fade scales a color's opacity by alpha in [0, 1]
func fade(c color.RGBA, alpha float64) color.NRGBA {
	alpha = max(0, min(alpha, 1))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}
