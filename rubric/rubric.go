package rubric

import (
	_ "embed"
	"errors"
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/RobertCam/webscore/vo"
	"gopkg.in/yaml.v3"
)

//go:embed rubric.yaml
var defaultRubricYAML []byte

type Check struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label"`
	Weight float64 `yaml:"weight"`
}

type Category struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label"`
	Checks []Check `yaml:"checks"`
}

// Phase names a rollout stage. The active set for a phase is the union of
// its own check ids and those of every phase declared before it.
type Phase struct {
	Name   string   `yaml:"name"`
	Checks []string `yaml:"checks"`
}

// Rubric is the full declarative scoring table. It is loaded once at
// process start and treated as immutable afterwards.
type Rubric struct {
	Version    string     `yaml:"version"`
	Categories []Category `yaml:"categories"`
	AllowNA    []string   `yaml:"allowNa"`
	Phases     []Phase    `yaml:"phases"`

	allowNA map[string]bool
}

// Load parses and validates a rubric document.
func Load(data []byte) (*Rubric, error) {
	r := &Rubric{}
	errUnmarshal := yaml.Unmarshal(data, r)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	errValidate := r.validate()
	if errValidate != nil {
		return nil, errValidate
	}
	r.allowNA = map[string]bool{}
	for _, id := range r.AllowNA {
		r.allowNA[id] = true
	}
	return r, nil
}

// LoadFile loads a rubric from disk, like config.Get does for the service
// configuration.
func LoadFile(filename string) (*Rubric, error) {
	yamlBytes, errRead := ioutil.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}

// Default returns the embedded rubric. The embedded document is covered by
// tests, a failure to load it is a programming error.
func Default() *Rubric {
	r, errLoad := Load(defaultRubricYAML)
	if errLoad != nil {
		panic("embedded rubric is invalid: " + errLoad.Error())
	}
	return r
}

func (r *Rubric) validate() error {
	if r.Version == "" {
		return errors.New("rubric version is empty")
	}
	if len(r.Categories) == 0 {
		return errors.New("rubric has no categories")
	}
	seenCategories := map[string]bool{}
	seenChecks := map[string]bool{}
	for _, cat := range r.Categories {
		if cat.ID == "" {
			return errors.New("category with empty id")
		}
		if seenCategories[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seenCategories[cat.ID] = true
		for _, check := range cat.Checks {
			if check.ID == "" {
				return fmt.Errorf("category %q contains a check with empty id", cat.ID)
			}
			if seenChecks[check.ID] {
				return fmt.Errorf("check %q appears in more than one category", check.ID)
			}
			seenChecks[check.ID] = true
			if check.Weight <= 0 {
				return fmt.Errorf("check %q has non-positive weight %v", check.ID, check.Weight)
			}
		}
	}
	for _, id := range r.AllowNA {
		if !seenChecks[id] {
			return fmt.Errorf("allowNa references unknown check %q", id)
		}
	}
	if len(r.Phases) == 0 {
		return errors.New("rubric has no phases")
	}
	seenPhases := map[string]bool{}
	for _, phase := range r.Phases {
		if seenPhases[phase.Name] {
			return fmt.Errorf("duplicate phase %q", phase.Name)
		}
		seenPhases[phase.Name] = true
		for _, id := range phase.Checks {
			if !seenChecks[id] {
				return fmt.Errorf("phase %q references unknown check %q", phase.Name, id)
			}
		}
	}
	return nil
}

// CheckIDs returns every check id in the rubric, sorted.
func (r *Rubric) CheckIDs() []string {
	ids := []string{}
	for _, cat := range r.Categories {
		for _, check := range cat.Checks {
			ids = append(ids, check.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// ActiveChecks resolves a phase name to the set of check ids that count
// toward scoring. Phases are cumulative in declaration order.
func (r *Rubric) ActiveChecks(phase string) (map[string]bool, error) {
	active := map[string]bool{}
	for _, p := range r.Phases {
		for _, id := range p.Checks {
			active[id] = true
		}
		if p.Name == phase {
			return active, nil
		}
	}
	return nil, fmt.Errorf("unknown phase %q", phase)
}

// FinalPhase is the name of the last declared phase, with every check active.
func (r *Rubric) FinalPhase() string {
	return r.Phases[len(r.Phases)-1].Name
}

func (r *Rubric) AllowsNA(checkID string) bool {
	return r.allowNA[checkID]
}

// Score maps a check status and weight to points. Partial credit is a flat
// half of the weight for every check.
func Score(status vo.CheckStatus, weight float64) float64 {
	switch status {
	case vo.CheckStatusPass:
		return weight
	case vo.CheckStatusPartial:
		return weight * 0.5
	default:
		return 0
	}
}
