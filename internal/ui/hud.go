//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"toruslife/internal/core"
	"toruslife/internal/pattern"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type patternPicker interface {
	PatternNames(query string, limit int) []string
	SetCurrentConfig(name string) bool
	SetInsertingConfig(on bool)
}

type savedBrowser interface {
	SavedGames() ([]string, error)
	LoadSaved(name string) error
}

var (
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	accentColor = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders the side panel: parameter controls, the pattern list with its
// name filter, saved boards and status lines.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	title    string

	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	picker      patternPicker
	browser     savedBrowser

	offsetX   int
	filtering bool
	query     string
	patterns  []string
	saved     []string
	allSaved  []string
	status    []string
	message   string

	patternsTop int
	savedTop    int
	frames      int
}

// savedRefreshFrames is how often, in updates, the saved directory is listed.
const savedRefreshFrames = 30

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), frames: -1, title: fmt.Sprintf("%s controls", sim.Name())}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControls(provider.ParameterControls(), h.width)
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	h.picker, _ = sim.(patternPicker)
	h.browser, _ = sim.(savedBrowser)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Capturing reports whether the HUD is consuming typed characters for the
// pattern filter.
func (h *HUD) Capturing() bool { return h != nil && h.filtering }

// Query returns the text typed into the name filter.
func (h *HUD) Query() string {
	if h == nil {
		return ""
	}
	return h.query
}

// SetMessage replaces the one-line message shown at the bottom of the panel.
func (h *HUD) SetMessage(msg string) {
	if h != nil {
		h.message = msg
	}
}

// Update refreshes the cached parameter snapshot and lists and handles HUD
// interactions. panelOffsetX is the screen x of the panel's left edge.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	h.frames++
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	refresh(h.controls, h.snapshot)
	h.status = statusLines(h.snapshot, h.controls)
	h.handleTyping()
	if h.picker != nil {
		h.patterns = h.picker.PatternNames(h.query, listLimit)
	}
	if h.browser != nil && h.frames%savedRefreshFrames == 0 {
		names, err := h.browser.SavedGames()
		if err != nil {
			names = nil
		}
		h.allSaved = names
	}
	h.saved = pattern.FilterNames(h.allSaved, h.query, listLimit)
	h.patternsTop = controlsTop + len(h.controls)*lineHeight + statusSpacing
	h.savedTop = h.patternsTop + (len(h.patterns)+2)*statusSpacing
	h.handleClick()
}

func (h *HUD) handleTyping() {
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && !h.filtering {
		h.filtering = true
		return
	}
	if !h.filtering {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		h.filtering = false
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		if r := []rune(h.query); len(r) > 0 {
			h.query = string(r[:len(r)-1])
		}
		return
	}
	h.query += string(ebiten.AppendInputChars(nil))
}

func (h *HUD) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.adjust(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.adjust(state, 1)
			return
		}
	}
	if row := listRow(my, h.patternsTop+statusSpacing/2, len(h.patterns)); row >= 0 {
		name := h.patterns[row]
		if h.picker.SetCurrentConfig(name) {
			h.picker.SetInsertingConfig(true)
			h.message = "pattern: " + name
		}
		return
	}
	if row := listRow(my, h.savedTop+statusSpacing/2, len(h.saved)); row >= 0 {
		name := h.saved[row]
		if err := h.browser.LoadSaved(name); err != nil {
			h.message = err.Error()
			return
		}
		h.message = "loaded " + name
	}
}

// Invalidate forces the saved list to be re-read on the next Update.
func (h *HUD) Invalidate() {
	if h != nil {
		h.frames = -1
	}
}

func (h *HUD) adjust(state *controlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		target, ok := intTarget(state, direction)
		if !ok || h.intSetter == nil {
			return
		}
		if h.intSetter.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.value = fmt.Sprint(target)
		}
	case core.ParamTypeFloat:
		target, ok := floatTarget(state, direction)
		if !ok || h.floatSetter == nil {
			return
		}
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
		}
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	h.drawControls()

	header := "Patterns  (/ to filter)"
	if h.filtering || h.query != "" {
		header = "Patterns  /" + h.query
		if h.filtering {
			header += "_"
		}
	}
	y := h.patternsTop + statusSpacing/2
	text.Draw(h.panel, header, face, panelPadding, y, accentColor)
	for _, name := range h.patterns {
		y += statusSpacing
		text.Draw(h.panel, name, face, panelPadding*2, y, labelColor)
	}

	y = h.savedTop + statusSpacing/2
	text.Draw(h.panel, "Saved", face, panelPadding, y, accentColor)
	for _, name := range h.saved {
		y += statusSpacing
		text.Draw(h.panel, name, face, panelPadding*2, y, labelColor)
	}

	y += statusSpacing * 2
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += statusSpacing
	}
	if h.message != "" {
		text.Draw(h.panel, strings.TrimSpace(h.message), face, panelPadding, height-panelPadding, titleColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, canDown := h.target(state, -1)
		_, canUp := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDown)
		h.drawButton(state.plusRect, "+", state.hasValue && canUp)
	}
}

func (h *HUD) target(state *controlState, direction int) (float64, bool) {
	switch state.control.Type {
	case core.ParamTypeInt:
		v, ok := intTarget(state, direction)
		return float64(v), ok && h.intSetter != nil
	case core.ParamTypeFloat:
		v, ok := floatTarget(state, direction)
		return v, ok && h.floatSetter != nil
	}
	return 0, false
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
