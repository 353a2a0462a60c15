package data

import "github.com/udisondev/skirmish/internal/model"

// Kit identifiers.
const (
	KitIronclad      model.KitID = "ironclad"
	KitPyromancer    model.KitID = "pyromancer"
	KitShadowblade   model.KitID = "shadowblade"
	KitFrostwarden   model.KitID = "frostwarden"
	KitWarlord       model.KitID = "warlord"
	KitOracle        model.KitID = "oracle"
	KitMarksman      model.KitID = "marksman"
	KitPlaguebringer model.KitID = "plaguebringer"
	KitGoldhand      model.KitID = "goldhand"
	KitStormcaller   model.KitID = "stormcaller"
	KitTidecaller    model.KitID = "tidecaller"
	KitBeastmaster   model.KitID = "beastmaster"
	KitSpellthief    model.KitID = "spellthief"
	KitGravekeeper   model.KitID = "gravekeeper"
	KitSentinel      model.KitID = "sentinel"
	KitBerserker     model.KitID = "berserker"
	KitMesmer        model.KitID = "mesmer"
	KitThornwarden   model.KitID = "thornwarden"
)

// kitDefs содержит статические шаблоны всех героев матча.
var kitDefs = []KitTemplate{
	{
		ID:        KitIronclad,
		Name:      "Ironclad",
		Role:      "tank",
		Base:      Stats{HP: 620, Mana: 250, Attack: 55, Defense: 30, Resist: 20},
		Growth:    Stats{HP: 90, Mana: 30, Attack: 4, Defense: 3, Resist: 2},
		Abilities: [model.SlotCount]string{"Shield Bash", "Fortify", "Taunting Roar", "Unbreakable"},
		Passive:   "Retaliation",
	},
	{
		ID:        KitPyromancer,
		Name:      "Pyromancer",
		Role:      "mage",
		Base:      Stats{HP: 480, Mana: 400, Attack: 45, Defense: 15, Resist: 25},
		Growth:    Stats{HP: 70, Mana: 50, Attack: 3, Defense: 2, Resist: 2},
		Abilities: [model.SlotCount]string{"Fireball", "Ignite", "Flame Wall", "Inferno"},
		Passive:   "Kindling",
	},
	{
		ID:        KitShadowblade,
		Name:      "Shadowblade",
		Role:      "assassin",
		Base:      Stats{HP: 500, Mana: 280, Attack: 65, Defense: 18, Resist: 15},
		Growth:    Stats{HP: 75, Mana: 35, Attack: 5, Defense: 2, Resist: 1},
		Abilities: [model.SlotCount]string{"Backstab", "Shroud", "Shadow Step", "Assassinate"},
		Passive:   "Ambush",
	},
	{
		ID:        KitFrostwarden,
		Name:      "Frostwarden",
		Role:      "mage",
		Base:      Stats{HP: 520, Mana: 380, Attack: 48, Defense: 20, Resist: 30},
		Growth:    Stats{HP: 75, Mana: 45, Attack: 3, Defense: 2, Resist: 3},
		Abilities: [model.SlotCount]string{"Ice Shard", "Frost Nova", "Glacial Armor", "Blizzard"},
		Passive:   "Frostbite",
	},
	{
		ID:        KitWarlord,
		Name:      "Warlord",
		Role:      "fighter",
		Base:      Stats{HP: 600, Mana: 260, Attack: 60, Defense: 25, Resist: 18},
		Growth:    Stats{HP: 85, Mana: 30, Attack: 5, Defense: 3, Resist: 2},
		Abilities: [model.SlotCount]string{"Cleave", "Battle Cry", "Charge", "Decimate"},
		Passive:   "Bloodlust",
	},
	{
		ID:        KitOracle,
		Name:      "Oracle",
		Role:      "support",
		Base:      Stats{HP: 450, Mana: 450, Attack: 40, Defense: 15, Resist: 30},
		Growth:    Stats{HP: 65, Mana: 55, Attack: 3, Defense: 2, Resist: 3},
		Abilities: [model.SlotCount]string{"Smite", "Mend", "Purify", "Sanctuary"},
		Passive:   "Serenity",
	},
	{
		ID:        KitMarksman,
		Name:      "Marksman",
		Role:      "carry",
		Base:      Stats{HP: 470, Mana: 300, Attack: 62, Defense: 16, Resist: 16},
		Growth:    Stats{HP: 70, Mana: 35, Attack: 6, Defense: 2, Resist: 1},
		Abilities: [model.SlotCount]string{"Piercing Shot", "Volley", "Snare Trap", "Deadeye"},
		Passive:   "Steady Aim",
	},
	{
		ID:        KitPlaguebringer,
		Name:      "Plaguebringer",
		Role:      "mage",
		Base:      Stats{HP: 500, Mana: 360, Attack: 46, Defense: 18, Resist: 24},
		Growth:    Stats{HP: 72, Mana: 42, Attack: 3, Defense: 2, Resist: 2},
		Abilities: [model.SlotCount]string{"Toxic Spit", "Miasma", "Wither", "Pandemic"},
		Passive:   "Putrid Aura",
	},
	{
		ID:        KitGoldhand,
		Name:      "Goldhand",
		Role:      "fighter",
		Base:      Stats{HP: 540, Mana: 300, Attack: 52, Defense: 22, Resist: 20},
		Growth:    Stats{HP: 78, Mana: 35, Attack: 4, Defense: 2, Resist: 2},
		Abilities: [model.SlotCount]string{"Coin Toss", "Bribe", "Invest", "Jackpot"},
		Passive:   "Compound Interest",
	},
	{
		ID:        KitStormcaller,
		Name:      "Stormcaller",
		Role:      "mage",
		Base:      Stats{HP: 460, Mana: 420, Attack: 44, Defense: 14, Resist: 28},
		Growth:    Stats{HP: 68, Mana: 52, Attack: 3, Defense: 2, Resist: 3},
		Abilities: [model.SlotCount]string{"Lightning Bolt", "Chain Lightning", "Static Field", "Thunderstrike"},
		Passive:   "Static Charge",
	},
	{
		ID:        KitTidecaller,
		Name:      "Tidecaller",
		Role:      "support",
		Base:      Stats{HP: 530, Mana: 380, Attack: 47, Defense: 20, Resist: 26},
		Growth:    Stats{HP: 76, Mana: 45, Attack: 3, Defense: 2, Resist: 2},
		Abilities: [model.SlotCount]string{"Riptide", "Undertow", "Bubble", "Tsunami"},
		Passive:   "Tidal Ward",
	},
	{
		ID:        KitBeastmaster,
		Name:      "Beastmaster",
		Role:      "fighter",
		Base:      Stats{HP: 580, Mana: 270, Attack: 58, Defense: 24, Resist: 18},
		Growth:    Stats{HP: 82, Mana: 32, Attack: 5, Defense: 3, Resist: 2},
		Abilities: [model.SlotCount]string{"Maul", "Howl", "Pounce", "Primal Fury"},
		Passive:   "Pack Hunter",
	},
	{
		ID:        KitSpellthief,
		Name:      "Spellthief",
		Role:      "mage",
		Base:      Stats{HP: 470, Mana: 400, Attack: 45, Defense: 15, Resist: 25},
		Growth:    Stats{HP: 68, Mana: 48, Attack: 3, Defense: 2, Resist: 2},
		Abilities: [model.SlotCount]string{"Arcane Bolt", "Siphon", "Blink", "Mirror Swap"},
		Passive:   "Arcane Echo",
	},
	{
		ID:        KitGravekeeper,
		Name:      "Gravekeeper",
		Role:      "fighter",
		Base:      Stats{HP: 510, Mana: 340, Attack: 54, Defense: 20, Resist: 22},
		Growth:    Stats{HP: 74, Mana: 40, Attack: 4, Defense: 2, Resist: 2},
		Abilities: [model.SlotCount]string{"Bone Spear", "Dread", "Soul Harvest", "Reap"},
		Passive:   "Soul Collector",
	},
	{
		ID:        KitSentinel,
		Name:      "Sentinel",
		Role:      "tank",
		Base:      Stats{HP: 560, Mana: 320, Attack: 56, Defense: 26, Resist: 22},
		Growth:    Stats{HP: 80, Mana: 38, Attack: 4, Defense: 3, Resist: 2},
		Abilities: [model.SlotCount]string{"Spear Throw", "Watchtower", "Lockdown", "Siege Breaker"},
		Passive:   "Vigilance",
	},
	{
		ID:        KitBerserker,
		Name:      "Berserker",
		Role:      "fighter",
		Base:      Stats{HP: 590, Mana: 200, Attack: 64, Defense: 22, Resist: 16},
		Growth:    Stats{HP: 84, Mana: 20, Attack: 6, Defense: 2, Resist: 1},
		Abilities: [model.SlotCount]string{"Reckless Swing", "Frenzy", "Leap", "Rampage"},
		Passive:   "Blood Rage",
	},
	{
		ID:        KitMesmer,
		Name:      "Mesmer",
		Role:      "controller",
		Base:      Stats{HP: 450, Mana: 420, Attack: 42, Defense: 14, Resist: 28},
		Growth:    Stats{HP: 66, Mana: 50, Attack: 3, Defense: 2, Resist: 3},
		Abilities: [model.SlotCount]string{"Mind Spike", "Confuse", "Mass Hysteria", "Dominate"},
		Passive:   "Feedback",
	},
	{
		ID:        KitThornwarden,
		Name:      "Thornwarden",
		Role:      "tank",
		Base:      Stats{HP: 550, Mana: 330, Attack: 53, Defense: 24, Resist: 24},
		Growth:    Stats{HP: 80, Mana: 38, Attack: 4, Defense: 2, Resist: 2},
		Abilities: [model.SlotCount]string{"Thorn Lash", "Bramble", "Regrowth", "Overgrowth"},
		Passive:   "Thorns",
	},
}
