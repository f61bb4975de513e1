// Package cards loads plan content packs and attaches hook families to them by plan name.
package cards

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"mintworks/game"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed packs/*.yaml
var packFS embed.FS

var (
	ErrUnknownPack   = errors.New("unknown content pack")
	ErrUnknownFamily = errors.New("unknown hook family")
	ErrDuplicatePlan = errors.New("duplicate plan")
	ErrUnknownType   = errors.New("unknown plan type")
)

type HookSpec struct {
	Family string `yaml:"family"`
	Amount int    `yaml:"amount"`
	Type   string `yaml:"type"`
}

type PlanSpec struct {
	Name        string    `yaml:"name"`
	Cost        int       `yaml:"cost"`
	Stars       int       `yaml:"stars"`
	Types       []string  `yaml:"types"`
	Description string    `yaml:"description"`
	Location    string    `yaml:"location"`
	Hook        *HookSpec `yaml:"hook"`
}

// Pack is a named list of plans plus the hooks their families produce.
type Pack struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Plans       []PlanSpec `yaml:"plans"`

	plans []game.Plan
	hooks game.HookRegistry
}

// Load decodes and checks a pack.
func Load(r io.Reader) (*Pack, error) {
	var p Pack
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}
	if err := p.compile(); err != nil {
		return nil, fmt.Errorf("pack %s: %w", p.Name, err)
	}
	return &p, nil
}

func LoadFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Named returns one of the bundled packs.
func Named(name string) (*Pack, error) {
	f, err := packFS.Open("packs/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPack, name)
	}
	defer f.Close()
	return Load(f)
}

// Base returns the bundled base pack.
func Base() (*Pack, error) {
	return Named("base")
}

// Bundled lists the names of the bundled packs.
func Bundled() ([]string, error) {
	entries, err := packFS.ReadDir("packs")
	if err != nil {
		return nil, fmt.Errorf("read bundled packs: %w", err)
	}
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name()[:len(e.Name())-len(".yaml")])
	}
	sort.Strings(names)
	return names, nil
}

var planTypes = map[string]game.PlanType{
	"Culture":    game.Culture,
	"Production": game.Production,
	"Utility":    game.Utility,
	"Deed":       game.DeedType,
}

func (p *Pack) compile() error {
	p.plans = make([]game.Plan, 0, len(p.Plans))
	p.hooks = game.HookRegistry{}
	seen := map[string]bool{}

	for _, spec := range p.Plans {
		if seen[spec.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlan, spec.Name)
		}
		seen[spec.Name] = true

		plan := game.Plan{
			Name:        spec.Name,
			Cost:        spec.Cost,
			Stars:       spec.Stars,
			Types:       make([]game.PlanType, 0, len(spec.Types)),
			Description: spec.Description,
			Location:    spec.Location,
		}
		for _, t := range spec.Types {
			pt, ok := planTypes[t]
			if !ok {
				return fmt.Errorf("%s: %w: %s", spec.Name, ErrUnknownType, t)
			}
			plan.Types = append(plan.Types, pt)
		}
		p.plans = append(p.plans, plan)

		if spec.Hook == nil {
			continue
		}
		build, ok := families[spec.Hook.Family]
		if !ok {
			return fmt.Errorf("%s: %w: %s", spec.Name, ErrUnknownFamily, spec.Hook.Family)
		}
		hooks, err := build(*spec.Hook)
		if err != nil {
			return fmt.Errorf("%s: %w", spec.Name, err)
		}
		p.hooks[spec.Name] = hooks
	}
	return nil
}

// Deck returns fresh copies of the pack's plans in file order.
func (p *Pack) Deck() []game.Plan {
	out := make([]game.Plan, len(p.plans))
	for i, plan := range p.plans {
		out[i] = plan.Clone()
	}
	return out
}

func (p *Pack) Hooks() game.HookRegistry {
	return p.hooks.Merge(nil)
}

// Plan returns a plan of the pack by name.
func (p *Pack) Plan(name string) (game.Plan, bool) {
	for _, plan := range p.plans {
		if plan.Name == name {
			return plan.Clone(), true
		}
	}
	return game.Plan{}, false
}

// Combine merges packs into one deck and registry. Plan names must be unique across packs.
func Combine(packs ...*Pack) ([]game.Plan, game.HookRegistry, error) {
	deck := []game.Plan{}
	hooks := game.HookRegistry{}
	seen := map[string]string{}
	for _, p := range packs {
		for _, plan := range p.plans {
			if other, ok := seen[plan.Name]; ok {
				return nil, nil, fmt.Errorf("%w: %s in %s and %s", ErrDuplicatePlan, plan.Name, other, p.Name)
			}
			seen[plan.Name] = p.Name
			deck = append(deck, plan.Clone())
		}
		hooks = hooks.Merge(p.hooks)
	}
	return deck, hooks, nil
}
