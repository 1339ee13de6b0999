package life

import (
	"strconv"

	"toruslife/internal/core"
)

// Parameters reports the session's tunables and status for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	current := "-"
	if s.current != nil {
		current = s.current.Name
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("rows", "Rows", s.grid.Rows()),
				intParam("cols", "Cols", s.grid.Cols()),
				intParam("generation", "Generation", s.generation),
				intParam("population", "Population", s.grid.Population()),
			},
		},
		{
			Name: "Iteration",
			Params: []core.Parameter{
				intParam("ms_per_iteration", "ms/i", s.clock.Millis()),
				boolParam("auto", "Iterating", s.clock.Enabled()),
				intParam("workers", "Workers", s.workers),
				intParam("active", "Active cells", s.grid.Active.Len()),
			},
		},
		{
			Name: "Editing",
			Params: []core.Parameter{
				floatParam("spawn_chance", "%alv.", s.cfg.SpawnChance),
				boolParam("inserting", "Insert", s.inserting),
				textParam("current", "Pattern", current),
				boolParam("motion", "Motion", s.motion),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rows", Label: "rows", Type: core.ParamTypeInt, Step: 10, Min: 10, Max: 600, HasMin: true, HasMax: true},
		{Key: "cols", Label: "cols", Type: core.ParamTypeInt, Step: 10, Min: 10, Max: 800, HasMin: true, HasMax: true},
		{Key: "ms_per_iteration", Label: "ms/i", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 1000, HasMin: true, HasMax: true},
		{Key: "workers", Label: "workers", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
		{Key: "spawn_chance", Label: "%alv.", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "rows":
		if value <= 0 {
			return false
		}
		s.SetDimension(value, s.grid.Cols())
	case "cols":
		if value <= 0 {
			return false
		}
		s.SetDimension(s.grid.Rows(), value)
	case "ms_per_iteration":
		if value < 0 {
			return false
		}
		s.SetMillisPerIteration(value)
	case "workers":
		if value < 1 {
			return false
		}
		s.SetWorkers(value)
	default:
		return false
	}
	return true
}

// SetFloatParameter applies a floating point HUD adjustment.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "spawn_chance":
		if value < 0 || value > 1 {
			return false
		}
		s.cfg.SpawnChance = value
		return true
	}
	return false
}

// SpawnChance returns the probability used by Reset.
func (s *Session) SpawnChance() float64 { return s.cfg.SpawnChance }

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
