package data

import (
	"maps"
	"slices"

	"github.com/udisondev/skirmish/internal/model"
)

// ZoneIDs returns all loaded zone ids in sorted order.
func ZoneIDs() []model.ZoneID {
	return slices.Sorted(maps.Keys(ZoneTable))
}

// ZoneNeighbors returns the neighbors of a loaded zone.
func ZoneNeighbors(id model.ZoneID) []model.ZoneID {
	z, ok := ZoneTable[id]
	if !ok {
		return nil
	}
	return slices.Clone(z.neighbors)
}

// SpawnZone returns the zone where heroes of team respawn.
func SpawnZone(team model.Team) model.ZoneID {
	for _, id := range ZoneIDs() {
		if ZoneTable[id].spawnOf == team && team != model.TeamNone {
			return id
		}
	}
	return ""
}

// InitialZoneState builds the match-start content of a loaded zone:
// its tower at full hp and one creep wave per listed team.
func InitialZoneState(id model.ZoneID) *model.ZoneState {
	z, ok := ZoneTable[id]
	if !ok {
		return nil
	}
	zs := &model.ZoneState{ID: id}
	if z.tower != nil {
		zs.Tower = &model.Tower{Team: z.tower.team, HP: z.tower.hp, MaxHP: z.tower.hp, Base: z.tower.base}
	}
	for _, team := range z.creeps {
		for range waveSize {
			zs.Creeps = append(zs.Creeps, model.Creep{Team: team, HP: creepHP, MaxHP: creepHP})
		}
	}
	return zs
}
