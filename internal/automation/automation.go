package automation

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/circlefun/internal/engine"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

var ErrBadScenario = errors.New("automation: invalid scenario")

// Scenario is a scripted headless run loaded from YAML:
//
//	name: pulse
//	dt: 0.02
//	duration: 20
//	repel: [960, 540]
//	steps:
//	  - at: 5
//	    command: cycle-palette
//	  - at: 10
//	    command: resize
//	    n: 200
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Dt          float64        `yaml:"dt"`
	Duration    float64        `yaml:"duration"`
	Attract     []float64      `yaml:"attract"`
	Repel       []float64      `yaml:"repel"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep queues one command at a time offset in seconds.
type ScenarioStep struct {
	At      float64 `yaml:"at"`
	Command string  `yaml:"command"`
	N       int     `yaml:"n"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadScenario, path, err)
	}
	return &scenario, nil
}

// Script converts the scenario to an engine script. Each step lands on
// the tick nearest its offset.
func (s *Scenario) Script(startTime float64) (engine.Script, error) {
	script := engine.Script{Dt: s.Dt, Duration: s.Duration, StartTime: startTime}
	if s.Dt <= 0 || s.Duration <= 0 {
		return script, fmt.Errorf("%w: dt and duration must be positive", ErrBadScenario)
	}

	attract, err := point(s.Attract, "attract")
	if err != nil {
		return script, err
	}
	repel, err := point(s.Repel, "repel")
	if err != nil {
		return script, err
	}
	if attract != nil && repel != nil && *attract != *repel {
		return script, fmt.Errorf("%w: attract and repel must share a point", ErrBadScenario)
	}
	switch {
	case attract != nil:
		script.Mouse, script.Attract, script.Repel = attract, true, repel != nil
	case repel != nil:
		script.Mouse, script.Repel = repel, true
	}

	steps := script.Steps()
	for i, st := range s.Steps {
		kind, err := engine.ParseCommandKind(st.Command)
		if err != nil {
			return script, fmt.Errorf("%w: step %d: %v", ErrBadScenario, i+1, err)
		}
		tick := int(math.Round(st.At / s.Dt))
		if st.At < 0 || tick >= steps {
			return script, fmt.Errorf("%w: step %d at %.2fs is outside the run", ErrBadScenario, i+1, st.At)
		}
		if script.Schedule == nil {
			script.Schedule = make(map[int][]engine.Command)
		}
		script.Schedule[tick] = append(script.Schedule[tick], engine.Command{Kind: kind, N: st.N})
	}
	return script, nil
}

func point(v []float64, name string) (*r2.Vec, error) {
	switch len(v) {
	case 0:
		return nil, nil
	case 2:
		return &r2.Vec{X: v[0], Y: v[1]}, nil
	}
	return nil, fmt.Errorf("%w: %s needs [x, y], got %v", ErrBadScenario, name, v)
}
