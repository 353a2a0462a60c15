package match

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
)

// Scenario is a scripted match: a roster and the actions each hero takes
// on given ticks. Scripts only replay chosen actions.
type Scenario struct {
	Name     string           `yaml:"name"`
	MaxTicks int64            `yaml:"max_ticks"`
	Heroes   []HeroSpec       `yaml:"heroes"`
	Actions  []ScriptedAction `yaml:"actions"`
}

// HeroSpec places one hero. Zone defaults to the team base, Level to 1.
type HeroSpec struct {
	ID    model.ActorID `yaml:"id"`
	Name  string        `yaml:"name"`
	Kit   model.KitID   `yaml:"kit"`
	Team  string        `yaml:"team"`
	Zone  model.ZoneID  `yaml:"zone"`
	Level int32         `yaml:"level"`
}

// ScriptedAction is either a cast (slot letter) or a move (zone id).
type ScriptedAction struct {
	Tick   int64         `yaml:"tick"`
	Actor  model.ActorID `yaml:"actor"`
	Cast   string        `yaml:"cast,omitempty"`
	Move   model.ZoneID  `yaml:"move,omitempty"`
	Target *TargetSpec   `yaml:"target,omitempty"`
}

// TargetSpec is the YAML form of a target reference. Exactly one of Self,
// Hero, Creep, Tower or Zone is set; Creep also needs Zone.
type TargetSpec struct {
	Self  bool         `yaml:"self,omitempty"`
	Hero  string       `yaml:"hero,omitempty"`
	Creep *int         `yaml:"creep,omitempty"`
	Tower model.ZoneID `yaml:"tower,omitempty"`
	Zone  model.ZoneID `yaml:"zone,omitempty"`
}

// Script maps a tick to the actions submitted during it, in order.
type Script map[int64][]Action

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes a YAML scenario and compiles its actions once to
// catch malformed entries early.
func ParseScenario(raw []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, err
	}
	if len(sc.Heroes) == 0 {
		return nil, errors.New("scenario has no heroes")
	}
	if sc.MaxTicks < 0 {
		return nil, fmt.Errorf("negative max_ticks %d", sc.MaxTicks)
	}
	if _, err := sc.Script(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Build creates the opening snapshot on the loaded map: every zone with its
// tower and creep wave, and every hero at full hp and mana.
func (sc *Scenario) Build(src combat.TemplateSource) (*model.MatchState, error) {
	if src == nil {
		return nil, errors.New("no kit catalog")
	}
	zones := data.ZoneIDs()
	if len(zones) == 0 {
		return nil, errors.New("map zones are not loaded")
	}

	s := model.NewMatchState()
	for _, id := range zones {
		s.AddZone(data.InitialZoneState(id))
	}

	for i, h := range sc.Heroes {
		a, err := h.actor(src, s)
		if err != nil {
			return nil, fmt.Errorf("hero #%d: %w", i+1, err)
		}
		s.AddActor(a)
	}
	return s, nil
}

func (h HeroSpec) actor(src combat.TemplateSource, s *model.MatchState) (*model.ActorState, error) {
	if h.ID == "" {
		return nil, errors.New("empty id")
	}
	if s.Actor(h.ID) != nil {
		return nil, fmt.Errorf("duplicate id %q", h.ID)
	}
	tmpl := src.Template(h.Kit)
	if tmpl == nil {
		return nil, fmt.Errorf("%s: unknown kit %q", h.ID, h.Kit)
	}
	team := model.ParseTeam(h.Team)
	if team == model.TeamNone {
		return nil, fmt.Errorf("%s: unknown team %q", h.ID, h.Team)
	}

	zone := h.Zone
	if zone == "" {
		zone = data.SpawnZone(team)
	}
	if s.Zone(zone) == nil {
		return nil, fmt.Errorf("%s: unknown zone %q", h.ID, zone)
	}

	level := h.Level
	if level == 0 {
		level = 1
	}
	if level < 1 || level > data.MaxHeroLevel {
		return nil, fmt.Errorf("%s: level %d out of range", h.ID, level)
	}

	name := h.Name
	if name == "" {
		name = string(h.ID)
	}
	return combat.NewActor(tmpl, h.ID, name, team, zone, level), nil
}

// Script compiles the scripted actions into per-tick action lists.
// Actions of the same tick keep their file order.
func (sc *Scenario) Script() (Script, error) {
	ids := make([]model.ActorID, 0, len(sc.Heroes))
	for _, h := range sc.Heroes {
		ids = append(ids, h.ID)
	}

	script := make(Script)
	for i, sa := range sc.Actions {
		if !slices.Contains(ids, sa.Actor) {
			return nil, fmt.Errorf("action #%d: unknown actor %q", i+1, sa.Actor)
		}
		a, err := sa.compile()
		if err != nil {
			return nil, fmt.Errorf("action #%d (%s): %w", i+1, sa.Actor, err)
		}
		script[sa.Tick] = append(script[sa.Tick], a)
	}
	return script, nil
}

func (sa ScriptedAction) compile() (Action, error) {
	if sa.Tick < 0 {
		return nil, fmt.Errorf("negative tick %d", sa.Tick)
	}
	switch {
	case sa.Cast != "" && sa.Move != "":
		return nil, errors.New("both cast and move set")
	case sa.Move != "":
		if sa.Target != nil {
			return nil, errors.New("move takes no target")
		}
		return MoveAction{Actor: sa.Actor, To: sa.Move}, nil
	case sa.Cast != "":
		slot, err := model.ParseSlot(sa.Cast)
		if err != nil {
			return nil, err
		}
		cast := CastAction{Actor: sa.Actor, Slot: slot}
		if sa.Target != nil {
			ref, err := sa.Target.Ref()
			if err != nil {
				return nil, err
			}
			cast.Target = &ref
		}
		return cast, nil
	default:
		return nil, errors.New("neither cast nor move set")
	}
}

// Ref converts t to a target reference.
func (t TargetSpec) Ref() (model.TargetRef, error) {
	set := 0
	for _, ok := range []bool{t.Self, t.Hero != "", t.Creep != nil, t.Tower != ""} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return model.TargetRef{}, errors.New("target names more than one kind")
	}

	switch {
	case t.Self:
		return model.SelfTarget(), nil
	case t.Hero != "":
		return model.HeroTarget(t.Hero), nil
	case t.Creep != nil:
		if t.Zone == "" {
			return model.TargetRef{}, errors.New("creep target needs a zone")
		}
		return model.CreepTarget(t.Zone, *t.Creep), nil
	case t.Tower != "":
		return model.TowerTarget(t.Tower), nil
	case t.Zone != "":
		return model.ZoneTarget(t.Zone), nil
	default:
		return model.TargetRef{}, errors.New("empty target")
	}
}
