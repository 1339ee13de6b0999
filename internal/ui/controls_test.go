package ui

import (
	"image"
	"testing"

	"toruslife/internal/core"
)

func TestIntTargetClamps(t *testing.T) {
	s := &controlState{
		control:  core.ParameterControl{Type: core.ParamTypeInt, Step: 10, Min: 10, Max: 40, HasMin: true, HasMax: true},
		intValue: 35,
	}
	if v, ok := intTarget(s, 1); !ok || v != 40 {
		t.Fatalf("up = %d,%v", v, ok)
	}
	s.intValue = 40
	if _, ok := intTarget(s, 1); ok {
		t.Fatal("at the maximum there is nothing to adjust")
	}
	s.intValue = 15
	if v, ok := intTarget(s, -1); !ok || v != 10 {
		t.Fatalf("down = %d,%v", v, ok)
	}
}

func TestFloatTargetRoundsSteps(t *testing.T) {
	s := &controlState{
		control:    core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 1, HasMin: true, HasMax: true},
		floatValue: 0.2,
	}
	v, ok := floatTarget(s, 1)
	if !ok || v != 0.3 {
		t.Fatalf("up = %v,%v", v, ok)
	}
	s.floatValue = 1
	if _, ok := floatTarget(s, 1); ok {
		t.Fatal("at the maximum there is nothing to adjust")
	}
	if got := formatFloat(s.control, 0.5); got != "0.5" {
		t.Fatalf("format = %q", got)
	}
}

func TestRefreshAndStatusLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Board",
		Params: []core.Parameter{
			{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Value: "20"},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: "7"},
			{Key: "current", Label: "Pattern", Type: core.ParamTypeText, Value: "glider"},
		},
	}}}
	states := newControls([]core.ParameterControl{
		{Key: "rows", Label: "rows", Type: core.ParamTypeInt, Step: 10},
		{Key: "missing", Label: "missing", Type: core.ParamTypeInt, Step: 1},
	}, 240)
	refresh(states, snap)
	if !states[0].hasValue || states[0].intValue != 20 {
		t.Fatalf("rows control = %+v", states[0])
	}
	if states[1].hasValue || states[1].value != "--" {
		t.Fatal("controls without a parameter show a placeholder")
	}
	lines := statusLines(snap, states)
	if len(lines) != 2 || lines[0] != "Generation: 7" || lines[1] != "Pattern: glider" {
		t.Fatalf("status lines = %v", lines)
	}
	if !pointInRect(states[0].plusRect.Min.X, states[0].plusRect.Min.Y, states[0].plusRect) {
		t.Fatal("plus button should contain its corner")
	}
	if states[1].top != states[0].top+lineHeight {
		t.Fatal("controls should stack one line apart")
	}
	if pointInRect(0, 0, image.Rectangle{}) {
		t.Fatal("empty rectangles contain nothing")
	}
}

func TestListRow(t *testing.T) {
	if listRow(5, 10, 3) != -1 || listRow(10, 10, 3) != 0 || listRow(10+statusSpacing*2+1, 10, 3) != 2 || listRow(10+statusSpacing*3, 10, 3) != -1 {
		t.Fatal("listRow maps rows incorrectly")
	}
}
