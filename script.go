package gesture

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyScript is returned by LoadScript for a script without steps.
	ErrEmptyScript = errors.New("no steps")
	// ErrUnknownAction is returned by LoadScript for an unrecognised step action.
	ErrUnknownAction = errors.New("unknown action")
)

const defaultTapSpacing = 40.0

// scriptStep represents a single action in a replay script.
type scriptStep struct {
	Action   string  `yaml:"action"`
	Seq      uint64  `yaml:"seq,omitempty"`
	Seq2     uint64  `yaml:"seq2,omitempty"`
	X        float64 `yaml:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty"`
	ToX      float64 `yaml:"toX,omitempty"`
	ToY      float64 `yaml:"toY,omitempty"`
	FromDist float64 `yaml:"fromDist,omitempty"`
	ToDist   float64 `yaml:"toDist,omitempty"`
	Fingers  int     `yaml:"fingers,omitempty"`
	Spacing  float64 `yaml:"spacing,omitempty"`
	Steps    int     `yaml:"steps,omitempty"`
}

// script is the top-level structure of a replay script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// StepResult reports what one script step delivered.
type StepResult struct {
	Action   string
	Events   int
	Consumed int
}

// ScriptRunner replays a scripted touch session into an InputHandler, one
// step per call to Step.
//
// Supported actions: press, move, release (seq, x, y); tap (seq, fingers,
// x, y, spacing); drag (seq, x, y, toX, toY, steps); pinch (seq, seq2, x, y,
// fromDist, toDist, steps); suspend; resume.
type ScriptRunner struct {
	steps  []scriptStep
	cursor int
}

// LoadScript parses a YAML replay script. JSON is accepted as well.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "press", "move", "release", "tap", "drag", "pinch", "suspend", "resume":
		default:
			return nil, fmt.Errorf("parse script: step %d: %w %q", i, ErrUnknownAction, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Len returns the number of steps in the script.
func (r *ScriptRunner) Len() int {
	return len(r.steps)
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.cursor >= len(r.steps)
}

// Step executes the next step against h. It returns false once the script
// is exhausted.
func (r *ScriptRunner) Step(h InputHandler) (StepResult, bool) {
	if r.Done() {
		return StepResult{}, false
	}
	st := r.steps[r.cursor]
	r.cursor++

	res := StepResult{Action: st.Action}
	switch st.Action {
	case "suspend":
		h.OnSuspend()
		return res, true
	case "resume":
		h.OnResume()
		return res, true
	}

	events := st.events()
	res.Events = len(events)
	res.Consumed = Feed(h, events...)
	return res, true
}

// Run executes every remaining step and returns their results.
func (r *ScriptRunner) Run(h InputHandler) []StepResult {
	results := make([]StepResult, 0, len(r.steps)-r.cursor)
	for {
		res, ok := r.Step(h)
		if !ok {
			return results
		}
		results = append(results, res)
	}
}

// events expands a step into raw touch events. Single events keep seq 0 so
// scripts can exercise rejection; compound actions start at 1 by default.
func (st scriptStep) events() []Event {
	seq := Sequence(st.Seq)
	if seq == NoSequence && (st.Action == "tap" || st.Action == "drag" || st.Action == "pinch") {
		seq = 1
	}
	switch st.Action {
	case "press":
		return []Event{Press(seq, st.X, st.Y)}
	case "move":
		return []Event{Move(seq, st.X, st.Y)}
	case "release":
		return []Event{Release(seq, st.X, st.Y)}
	case "tap":
		fingers := max(st.Fingers, 1)
		spacing := st.Spacing
		if spacing == 0 {
			spacing = defaultTapSpacing
		}
		points := make([]Vec2, fingers)
		for i := range points {
			points[i] = Vec2{st.X + float64(i)*spacing, st.Y}
		}
		return Tap(seq, points...)
	case "drag":
		return Drag(seq, Vec2{st.X, st.Y}, Vec2{st.ToX, st.ToY}, st.Steps)
	case "pinch":
		seq2 := Sequence(st.Seq2)
		if seq2 == NoSequence {
			seq2 = seq + 1
		}
		return Pinch(seq, seq2, Vec2{st.X, st.Y}, st.FromDist, st.ToDist, st.Steps)
	}
	return nil
}
