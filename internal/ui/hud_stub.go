//go:build !ebiten

package ui

import "toruslife/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Width is always zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Capturing is always false in the headless build.
func (h *HUD) Capturing() bool { return false }

// SetMessage is a no-op in the headless build.
func (h *HUD) SetMessage(string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}

// Invalidate is a no-op in the headless build.
func (h *HUD) Invalidate() {}

// Query is always empty in the headless build.
func (h *HUD) Query() string { return "" }
