package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
)

// Map zone identifiers.
const (
	ZoneBlueBase   model.ZoneID = "blue-base"
	ZoneBlueTop    model.ZoneID = "blue-top"
	ZoneBlueMid    model.ZoneID = "blue-mid"
	ZoneBlueBot    model.ZoneID = "blue-bot"
	ZoneBlueJungle model.ZoneID = "blue-jungle"
	ZoneTopLane    model.ZoneID = "top-lane"
	ZoneMidLane    model.ZoneID = "mid-lane"
	ZoneBotLane    model.ZoneID = "bot-lane"
	ZoneRiver      model.ZoneID = "river"
	ZoneRedJungle  model.ZoneID = "red-jungle"
	ZoneRedTop     model.ZoneID = "red-top"
	ZoneRedMid     model.ZoneID = "red-mid"
	ZoneRedBot     model.ZoneID = "red-bot"
	ZoneRedBase    model.ZoneID = "red-base"
)

// Structure hp.
const (
	laneTowerHP = 1500
	baseTowerHP = 3000
	creepHP     = 120
	waveSize    = 3
)

// zoneDef описывает одну зону карты.
type zoneDef struct {
	id        model.ZoneID
	neighbors []model.ZoneID
	tower     *towerDef
	creeps    []model.Team // one lane wave per listed team
	spawnOf   model.Team   // team whose heroes respawn here
}

type towerDef struct {
	team model.Team
	hp   int32
	base bool
}

var zoneDefs = []zoneDef{
	{id: ZoneBlueBase, neighbors: []model.ZoneID{ZoneBlueTop, ZoneBlueMid, ZoneBlueBot}, tower: &towerDef{team: model.TeamBlue, hp: baseTowerHP, base: true}, spawnOf: model.TeamBlue},
	{id: ZoneBlueTop, neighbors: []model.ZoneID{ZoneBlueBase, ZoneTopLane}, tower: &towerDef{team: model.TeamBlue, hp: laneTowerHP}},
	{id: ZoneBlueMid, neighbors: []model.ZoneID{ZoneBlueBase, ZoneMidLane, ZoneBlueJungle}, tower: &towerDef{team: model.TeamBlue, hp: laneTowerHP}},
	{id: ZoneBlueBot, neighbors: []model.ZoneID{ZoneBlueBase, ZoneBotLane}, tower: &towerDef{team: model.TeamBlue, hp: laneTowerHP}},
	{id: ZoneBlueJungle, neighbors: []model.ZoneID{ZoneBlueMid, ZoneRiver}},
	{id: ZoneTopLane, neighbors: []model.ZoneID{ZoneBlueTop, ZoneRedTop, ZoneRiver}, creeps: []model.Team{model.TeamBlue, model.TeamRed}},
	{id: ZoneMidLane, neighbors: []model.ZoneID{ZoneBlueMid, ZoneRedMid, ZoneRiver}, creeps: []model.Team{model.TeamBlue, model.TeamRed}},
	{id: ZoneBotLane, neighbors: []model.ZoneID{ZoneBlueBot, ZoneRedBot, ZoneRiver}, creeps: []model.Team{model.TeamBlue, model.TeamRed}},
	{id: ZoneRiver, neighbors: []model.ZoneID{ZoneTopLane, ZoneMidLane, ZoneBotLane, ZoneBlueJungle, ZoneRedJungle}},
	{id: ZoneRedJungle, neighbors: []model.ZoneID{ZoneRedMid, ZoneRiver}},
	{id: ZoneRedTop, neighbors: []model.ZoneID{ZoneRedBase, ZoneTopLane}, tower: &towerDef{team: model.TeamRed, hp: laneTowerHP}},
	{id: ZoneRedMid, neighbors: []model.ZoneID{ZoneRedBase, ZoneMidLane, ZoneRedJungle}, tower: &towerDef{team: model.TeamRed, hp: laneTowerHP}},
	{id: ZoneRedBot, neighbors: []model.ZoneID{ZoneRedBase, ZoneBotLane}, tower: &towerDef{team: model.TeamRed, hp: laneTowerHP}},
	{id: ZoneRedBase, neighbors: []model.ZoneID{ZoneRedTop, ZoneRedMid, ZoneRedBot}, tower: &towerDef{team: model.TeamRed, hp: baseTowerHP, base: true}, spawnOf: model.TeamRed},
}

// ZoneTable содержит все зоны карты по ID.
var ZoneTable map[model.ZoneID]*zoneDef

// LoadZones загружает карту из Go-литералов и проверяет симметричность рёбер.
func LoadZones() error {
	table := make(map[model.ZoneID]*zoneDef, len(zoneDefs))
	for i := range zoneDefs {
		z := &zoneDefs[i]
		if _, dup := table[z.id]; dup {
			return fmt.Errorf("duplicate zone %q", z.id)
		}
		table[z.id] = z
	}

	for _, z := range table {
		for _, n := range z.neighbors {
			other, ok := table[n]
			if !ok {
				return fmt.Errorf("zone %q: unknown neighbor %q", z.id, n)
			}
			if !other.hasNeighbor(z.id) {
				return fmt.Errorf("zone %q: edge to %q is not symmetric", z.id, n)
			}
		}
	}

	ZoneTable = table
	slog.Info("loaded map zones", "count", len(ZoneTable))
	return nil
}

func (z *zoneDef) hasNeighbor(id model.ZoneID) bool {
	for _, n := range z.neighbors {
		if n == id {
			return true
		}
	}
	return false
}
