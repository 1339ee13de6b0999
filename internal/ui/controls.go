package ui

import (
	"image"
	"math"
	"strconv"

	"toruslife/internal/core"
)

type controlState struct {
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
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	statusSpacing  = 16
	controlsTop    = panelPadding + headerBaseline + 14
	listLimit      = 12
)

func newControls(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	layoutControls(states, width)
	return states
}

func layoutControls(states []controlState, width int) {
	if width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
}

// refresh copies the snapshot values into the control states.
func refresh(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// intTarget returns the value one step in direction, clamped to the control's
// bounds. ok is false when the value would not change.
func intTarget(state *controlState, direction int) (int, bool) {
	step := int(math.Round(state.control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if state.control.HasMin {
		target = max(target, int(math.Round(state.control.Min)))
	}
	if state.control.HasMax {
		target = min(target, int(math.Round(state.control.Max)))
	}
	return target, target != state.intValue
}

func floatTarget(state *controlState, direction int) (float64, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(direction)*step
	if state.control.HasMin {
		target = math.Max(target, state.control.Min)
	}
	if state.control.HasMax {
		target = math.Min(target, state.control.Max)
	}
	// Keep tenths from drifting into 0.30000000000000004.
	target = math.Round(target*1e6) / 1e6
	return target, math.Abs(target-state.floatValue) >= 1e-9
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// statusLines renders the snapshot parameters that have no control.
func statusLines(snap core.ParameterSnapshot, states []controlState) []string {
	controlled := map[string]bool{}
	for _, s := range states {
		controlled[s.control.Key] = true
	}
	var lines []string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if controlled[p.Key] {
				continue
			}
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}

// listRow returns the index of the list entry under y for a list whose first
// row starts at top, or -1.
func listRow(y, top, n int) int {
	if y < top {
		return -1
	}
	row := (y - top) / statusSpacing
	if row >= n {
		return -1
	}
	return row
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
