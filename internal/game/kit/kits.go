package kit

import (
	"fmt"

	"github.com/udisondev/skirmish/internal/game/skill"
)

// All returns every hero kit.
func All() []skill.Kit {
	return []skill.Kit{
		ironclad(),
		pyromancer(),
		shadowblade(),
		frostwarden(),
		warlord(),
		oracle(),
		marksman(),
		plaguebringer(),
		goldhand(),
		stormcaller(),
		tidecaller(),
		beastmaster(),
		spellthief(),
		gravekeeper(),
		sentinel(),
		berserker(),
		mesmer(),
		thornwarden(),
	}
}

// NewRegistry builds the registry of every kit. Called once at startup.
func NewRegistry() (*skill.Registry, error) {
	r, err := skill.NewRegistry(All()...)
	if err != nil {
		return nil, fmt.Errorf("registering kits: %w", err)
	}
	return r, nil
}
