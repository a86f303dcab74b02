//go:build !ebiten

package ui

import "badlands/internal/generate"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*generate.Result, int) *Overlay { return &Overlay{} }

// SetResult is a no-op in headless builds.
func (o *Overlay) SetResult(*generate.Result) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
