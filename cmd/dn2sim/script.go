package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/dn2sim/internal/core"
)

// inputScript is a looping sequence of held-input frames for headless runs.
//
// Syntax: comma-separated steps, each "action[+action...][*count]", e.g.
// "right*20,right+jump*3,fire,none*10".
type inputScript struct {
	frames []core.InputFrame
}

var scriptActions = map[string]core.Action{
	"none":  core.ActionNone,
	"left":  core.ActionLeft,
	"right": core.ActionRight,
	"up":    core.ActionUp,
	"down":  core.ActionDown,
	"jump":  core.ActionJump,
	"fire":  core.ActionFire,
}

func parseScript(s string) (*inputScript, error) {
	sc := &inputScript{}
	s = strings.TrimSpace(s)
	if s == "" {
		return sc, nil
	}

	for _, step := range strings.Split(s, ",") {
		step = strings.TrimSpace(step)
		count := 1
		if name, n, ok := strings.Cut(step, "*"); ok {
			v, err := strconv.Atoi(strings.TrimSpace(n))
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("script step %q: bad repeat count", step)
			}
			step, count = strings.TrimSpace(name), v
		}

		var f core.InputFrame
		for _, name := range strings.Split(step, "+") {
			a, ok := scriptActions[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return nil, fmt.Errorf("script step %q: unknown action %q", step, name)
			}
			f.Set(a)
		}
		for iter := 0; iter < count; iter++ {
			sc.frames = append(sc.frames, f)
		}
	}
	return sc, nil
}

// At returns the input for frame i, looping over the script.
func (sc *inputScript) At(i int) core.InputFrame {
	if len(sc.frames) == 0 {
		return core.NewInputFrame()
	}
	return sc.frames[i%len(sc.frames)]
}

// Len returns the number of frames before the script loops.
func (sc *inputScript) Len() int {
	return len(sc.frames)
}
