//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"badlands/internal/core"
	"badlands/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// ApplyFunc applies an adjusted parameter value. It returns false when the
// value was rejected and the control should keep its previous reading.
type ApplyFunc func(key, value string) bool

// HUD renders the parameter panel to the right of the world view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	apply        ApplyFunc
	panelOffsetX int
	title        string
	shares       []shareLine
	status       string

	pixel *ebiten.Image
}

type shareLine struct {
	name  string
	share float64
}

// NewHUD constructs a HUD with the given panel width and adjustable controls.
func NewHUD(title string, width int, controls []core.ParameterControl, apply ApplyFunc) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width, title: title, apply: apply}
	if h.title == "" {
		h.title = "Controls"
	}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	return h
}

// SetSnapshot replaces the parameter snapshot the panel reads values from.
func (h *HUD) SetSnapshot(s core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.snapshot = s
	h.refreshControlValues()
}

// SetShares replaces the terrain distribution readout.
func (h *HUD) SetShares(shares map[world.TileType]float64) {
	if h == nil {
		return
	}
	h.shares = h.shares[:0]
	for t := world.TileType(0); t < world.TileTypeCount; t++ {
		if s, ok := shares[t]; ok && s > 0 {
			h.shares = append(h.shares, shareLine{name: t.String(), share: s})
		}
	}
}

// SetStatus replaces the one-line status text under the title.
func (h *HUD) SetStatus(status string) {
	if h == nil {
		return
	}
	h.status = status
}

// Update handles HUD interactions for the current frame.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the world view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawShares()
	h.drawHelp(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	if len(h.controls) == 0 {
		return
	}
	paramMap := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := paramMap[state.control.Key]
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = h.formatFloat(state.control, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.apply == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if state == nil || direction == 0 {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		step := int(math.Round(state.control.Step))
		if step <= 0 {
			step = 1
		}
		target := state.intValue + direction*step
		if state.control.HasMin {
			min := int(math.Round(state.control.Min))
			if target < min {
				target = min
			}
		}
		if state.control.HasMax {
			max := int(math.Round(state.control.Max))
			if target > max {
				target = max
			}
		}
		if target == state.intValue {
			return
		}
		if h.apply(state.control.Key, strconv.Itoa(target)) {
			state.intValue = target
			state.floatValue = float64(target)
			state.value = strconv.Itoa(target)
		}
	case core.ParamTypeFloat:
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.floatValue + float64(direction)*step
		if state.control.HasMin && target < state.control.Min {
			target = state.control.Min
		}
		if state.control.HasMax && target > state.control.Max {
			target = state.control.Max
		}
		if math.Abs(target-state.floatValue) < 1e-9 {
			return
		}
		formatted := h.formatFloat(state.control, target)
		if h.apply(state.control.Key, formatted) {
			state.floatValue = target
			state.value = formatted
		}
	}
}

func (h *HUD) drawControls() {
	if h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, headerY+statusSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	if len(h.controls) == 0 {
		infoY := headerY + infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, infoY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		top := state.top
		labelY := top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		value := state.value
		bounds := text.BoundString(face, value)
		valueWidth := bounds.Dx()
		valueX := state.minusRect.Min.X - buttonGap - valueWidth
		valueY := top + labelBaseline
		text.Draw(h.panel, value, face, valueX, valueY, valueColor)

		enabled := state.hasValue && h.apply != nil
		h.drawButton(state.minusRect, "-", enabled)
		h.drawButton(state.plusRect, "+", enabled)
	}
}

func (h *HUD) drawShares() {
	if h.panel == nil || len(h.shares) == 0 {
		return
	}
	face := basicfont.Face7x13
	top := controlsTop + len(h.controls)*lineHeight + sectionGap
	text.Draw(h.panel, "Terrain mix", face, panelPadding, top, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, line := range h.shares {
		y := top + (i+1)*shareLineHeight
		label := fmt.Sprintf("%-13s %5.1f%%", line.name, line.share*100)
		text.Draw(h.panel, label, face, panelPadding, y, color.RGBA{R: 180, G: 180, B: 190, A: 255})
	}
}

func (h *HUD) drawHelp(height int) {
	if h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	lines := []string{
		"R new seed  P preset",
		"S png  W world  Q quit",
		"1-4 overlay layers",
	}
	base := height - panelPadding - (len(lines)-1)*shareLineHeight
	if base < panelPadding {
		return
	}
	for i, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, base+i*shareLineHeight, color.RGBA{R: 140, G: 140, B: 150, A: 255})
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func (h *HUD) formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding    = 12
	lineHeight      = 30
	buttonSize      = 22
	buttonGap       = 6
	headerBaseline  = 18
	labelBaseline   = 20
	infoSpacing     = 36
	statusSpacing   = 16
	sectionGap      = 24
	shareLineHeight = 15
	controlsTop     = panelPadding + headerBaseline + statusSpacing + 14
)
