package app

import (
	"errors"
	"fmt"
	"log"

	"toruslife/internal/lifefile"
	"toruslife/internal/pattern"
	"toruslife/internal/sims/life"
)

// Action is a keyboard command, independent of the key bound to it.
type Action int

const (
	ActionNone Action = iota
	ActionToggleAuto
	ActionStep
	ActionCopy
	ActionCut
	ActionDelete
	ActionFlipVertical
	ActionFlipHorizontal
	ActionRotate
	ActionToggleInsert
	ActionToggleMotion
	ActionSaveBoard
	ActionSavePattern
	ActionReset
	ActionClear
)

// Controller applies actions to a session and feeds it patterns from a
// watcher. It runs on the update goroutine.
type Controller struct {
	session *life.Session
	logger  *log.Logger
	seed    int64
}

// NewController wraps session. seed is used by ActionReset.
func NewController(session *life.Session, logger *log.Logger, seed int64) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{session: session, logger: logger, seed: seed}
}

// Apply runs the action and returns a short message for the HUD, or "" when
// there is nothing to report. name is used by ActionSavePattern.
func (c *Controller) Apply(a Action, name string) string {
	s := c.session
	switch a {
	case ActionToggleAuto:
		s.ToggleAutoIteration()
		if s.AutoIterating() {
			return "iterating"
		}
		return "paused"
	case ActionStep:
		s.Iterate()
	case ActionCopy:
		if s.Copy() {
			return "copied to current"
		}
	case ActionCut:
		if s.Cut() {
			return "cut to current"
		}
	case ActionDelete:
		if s.Delete() {
			return "deleted selection"
		}
	case ActionFlipVertical:
		s.Flip(pattern.Vertical)
	case ActionFlipHorizontal:
		s.Flip(pattern.Horizontal)
	case ActionRotate:
		s.Flip(pattern.Rotate)
	case ActionToggleInsert:
		s.SetInsertingConfig(!s.InsertingConfig())
		if s.InsertingConfig() && s.CurrentConfig() == nil {
			return "no pattern selected"
		}
	case ActionToggleMotion:
		s.SetHighlightMotion(!s.HighlightingMotion())
	case ActionSaveBoard:
		return c.save("", lifefile.KindSaved)
	case ActionSavePattern:
		if name == "" {
			return "type a pattern name with / first"
		}
		return c.save(name, lifefile.KindConfigs)
	case ActionReset:
		s.Reset(c.seed)
		c.seed++
	case ActionClear:
		s.Clear()
	}
	return ""
}

func (c *Controller) save(name string, kind lifefile.Kind) string {
	path, err := c.session.Save(name, kind)
	if err != nil {
		if errors.Is(err, life.ErrNoStore) {
			return "saving is disabled"
		}
		c.logger.Printf("save failed: %v", err)
		return err.Error()
	}
	return fmt.Sprintf("saved %s", path)
}

// Drain registers every pattern the watcher has delivered so far without
// blocking, logs watcher errors and returns the number registered.
func (c *Controller) Drain(w *lifefile.Watcher) int {
	if w == nil {
		return 0
	}
	n := 0
	for {
		select {
		case cfg, ok := <-w.Configs():
			if !ok {
				return n
			}
			c.session.Register(cfg)
			n++
		case err, ok := <-w.Errors():
			if !ok {
				return n
			}
			c.logger.Printf("watch: %v", err)
		default:
			return n
		}
	}
}
