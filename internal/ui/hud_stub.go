//go:build !ebiten

package ui

import (
	"badlands/internal/core"
	"badlands/internal/world"
)

// ApplyFunc applies an adjusted parameter value.
type ApplyFunc func(key, value string) bool

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(string, int, []core.ParameterControl, ApplyFunc) *HUD { return nil }

// SetSnapshot is a no-op in the headless build.
func (h *HUD) SetSnapshot(core.ParameterSnapshot) {}

// SetShares is a no-op in the headless build.
func (h *HUD) SetShares(map[world.TileType]float64) {}

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
