//go:build ebiten

package ui

import (
	"image/color"

	"badlands/internal/generate"
	"badlands/internal/render"
	"badlands/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws togglable diagnostic layers over the world view.
type Overlay struct {
	res   *generate.Result
	scale int

	showElevation bool
	showStreets   bool
	showWalkable  bool
	showContent   bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs an overlay over the given world.
func NewOverlay(res *generate.Result, scale int) *Overlay {
	return &Overlay{res: res, scale: scale}
}

// SetResult swaps the world backing the overlay after a regeneration.
func (o *Overlay) SetResult(res *generate.Result) { o.res = res }

// Update toggles layers: 1 elevation, 2 streets, 3 walkability, 4 contents.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showElevation = !o.showElevation
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStreets = !o.showStreets
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showWalkable = !o.showWalkable
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showContent = !o.showContent
	}
}

// Draw renders the enabled layers onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.res == nil {
		return
	}
	size := o.res.World.Size()
	if size <= 0 {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size {
		o.img = ebiten.NewImage(size, size)
		o.buf = make([]byte, 4*size*size)
	}

	if o.showElevation && o.res.Elevation != nil {
		render.FillElevationRGBA(o.buf, o.res.Elevation)
		o.fadeAlpha(200)
		o.blit(screen)
	}
	if o.showStreets {
		render.FillMaskRGBA(o.buf, o.res.World,
			func(t world.Tile) bool { return t.Type == world.Street },
			color.RGBA{R: 255, G: 255, B: 255, A: 210}, color.RGBA{})
		o.blit(screen)
	}
	if o.showWalkable {
		render.FillMaskRGBA(o.buf, o.res.World,
			func(t world.Tile) bool { return t.Type.Walkable() },
			color.RGBA{R: 60, G: 220, B: 90, A: 120}, color.RGBA{R: 220, G: 40, B: 40, A: 150})
		o.blit(screen)
	}
	if o.showContent {
		render.FillMaskRGBA(o.buf, o.res.World,
			func(t world.Tile) bool { return !t.Content.Empty() },
			color.RGBA{R: 250, G: 240, B: 60, A: 220}, color.RGBA{})
		o.blit(screen)
	}
}

func (o *Overlay) fadeAlpha(a uint8) {
	for i := 3; i < len(o.buf); i += 4 {
		o.buf[i] = a
	}
}

func (o *Overlay) blit(screen *ebiten.Image) {
	o.img.ReplacePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
