//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"badlands/internal/config"
	"badlands/internal/core"
	"badlands/internal/generate"
	"badlands/internal/logger"
	"badlands/internal/render"
	"badlands/internal/ui"
	"badlands/internal/world"
	"badlands/internal/worldfile"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the pixel width of the parameter panel.
const HUDWidth = 240

// Game adapts the world generator to the ebiten.Game interface.
type Game struct {
	base config.Config
	cfg  *config.Config
	log  *logger.Logger

	res     *generate.Result
	grid    *core.ByteGrid
	palette []color.RGBA
	buf     []byte
	img     *ebiten.Image

	hud     *ui.HUD
	overlay *ui.Overlay

	scale   int
	presets []string
	preset  int
	dirty   bool
}

// New generates the initial world from cfg and constructs the viewer around it.
func New(cfg *config.Config, log *logger.Logger) (*Game, error) {
	scale := cfg.Render.Scale
	if scale < 1 {
		scale = 1
	}
	g := &Game{
		base:    *cfg,
		cfg:     cfg,
		log:     log,
		scale:   scale,
		presets: generate.PresetNames(),
		dirty:   true,
	}
	for i, name := range g.presets {
		if name == cfg.Preset {
			g.preset = i
		}
	}
	gen, err := cfg.Generator()
	if err != nil {
		return nil, err
	}
	gen.Log = log
	res, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	size := res.World.Size()
	g.res = res
	g.grid = core.NewByteGrid(size, size)
	g.palette = render.TerrainPalette()
	g.buf = make([]byte, 4*size*size)
	g.img = ebiten.NewImage(size, size)
	g.overlay = ui.NewOverlay(res, scale)
	g.hud = ui.NewHUD("Badlands", HUDWidth, gen.Controls(), g.applyParam)
	g.refreshHUD(gen)
	return g, nil
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.cyclePreset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.savePNG()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.saveWorld()
	}
	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	return nil
}

// Draw renders the world, the overlay layers and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.repaint()
		g.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.res.World.Size()*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.res.World.Size()
	return size*g.scale + HUDWidth, size * g.scale
}

func (g *Game) viewWidth() int { return g.res.World.Size() * g.scale }

// applyParam is the HUD callback: set the key on the working config and
// regenerate with the current seed so the change is visible in isolation.
func (g *Game) applyParam(key, value string) bool {
	if err := g.cfg.Set(key, value); err != nil {
		g.log.Warnf("set %s=%s: %v", key, value, err)
		return false
	}
	return g.regenerate(g.cfg.Seed)
}

func (g *Game) regenerate(seed int64) bool {
	slaved := g.cfg.Noise.Seed == g.cfg.Seed
	g.cfg.Seed = seed
	if slaved {
		g.cfg.Noise.Seed = seed
	}
	gen, err := g.cfg.Generator()
	if err != nil {
		g.log.Errorf("configure: %v", err)
		return false
	}
	gen.Log = g.log
	res, err := gen.Generate()
	if err != nil {
		g.log.Errorf("generate: %v", err)
		return false
	}
	g.res = res
	g.overlay.SetResult(res)
	g.refreshHUD(gen)
	g.dirty = true
	return true
}

// cyclePreset rebuilds the working config from the launch config plus the next
// preset, keeping the current seed so presets can be compared side by side.
func (g *Game) cyclePreset() {
	g.preset = (g.preset + 1) % len(g.presets)
	name := g.presets[g.preset]
	seed := g.cfg.Seed
	*g.cfg = g.base
	if name != g.base.Preset {
		if err := g.cfg.Set("preset", name); err != nil {
			g.log.Errorf("preset %s: %v", name, err)
			return
		}
	}
	g.regenerate(seed)
}

func (g *Game) savePNG() {
	path := g.cfg.Render.PNG
	if path == "" {
		path = fmt.Sprintf("badlands_%d.png", g.res.Seed)
	}
	if err := render.WritePNG(path, g.res.World, g.res.Spawn, g.scale); err != nil {
		g.log.Errorf("write png: %v", err)
		return
	}
	g.log.Infof("wrote %s", path)
	g.hud.SetStatus("saved " + path)
}

func (g *Game) saveWorld() {
	path := fmt.Sprintf("badlands_%d.world", g.res.Seed)
	if err := worldfile.Save(path, g.res); err != nil {
		g.log.Errorf("write world: %v", err)
		return
	}
	g.log.Infof("wrote %s", path)
	g.hud.SetStatus("saved " + path)
}

func (g *Game) refreshHUD(gen *generate.Generator) {
	g.hud.SetSnapshot(gen.Snapshot())
	g.hud.SetShares(world.TerrainPercentage(g.res.World))
	g.hud.SetStatus(fmt.Sprintf("seed %d  %s", g.res.Seed, g.presets[g.preset]))
}

func (g *Game) repaint() {
	m := g.res.World
	size := m.Size()
	render.TerrainBytes(g.grid, m)
	render.FillPaletteRGBA(g.buf, g.grid.Cells(), g.palette)
	i := 0
	for _, row := range m {
		for _, tile := range row {
			if c, ok := render.ContentColor(tile.Content.Kind); ok {
				putRGBA(g.buf, i, c)
			}
			i++
		}
	}
	if m.InBounds(g.res.Spawn) {
		putRGBA(g.buf, g.res.Spawn.Row*size+g.res.Spawn.Col, render.SpawnMarker)
	}
	g.img.ReplacePixels(g.buf)
}

func putRGBA(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
