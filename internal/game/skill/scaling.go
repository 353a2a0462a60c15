package skill

import "github.com/udisondev/skirmish/internal/model"

// Hero levels at which a basic slot reaches ability level 1, 2, 3 and 4.
var basicThresholds = [...]int32{1, 3, 5, 7}

// Hero levels at which the ultimate reaches ability level 1, 2 and 3.
var ultimateThresholds = [...]int32{6, 12, 18}

// AbilityLevel returns the unlocked tier of a slot for a hero level.
// Basic slots: 0 below level 1, then 1/2/3/4 from levels 1/3/5/7.
// Ultimate: 0 below level 6, then 1/2/3 from levels 6/12/18.
func AbilityLevel(actorLevel int32, slot model.Slot) int32 {
	if !slot.Valid() {
		return 0
	}
	thresholds := basicThresholds[:]
	if slot.IsUltimate() {
		thresholds = ultimateThresholds[:]
	}

	var lvl int32
	for _, t := range thresholds {
		if actorLevel < t {
			break
		}
		lvl++
	}
	return lvl
}

// Scale picks the per-tier value of a constant table.
// Level 0 (locked) yields 0; levels past the table reuse its last entry.
func Scale(table []int32, level int32) int32 {
	if level <= 0 || len(table) == 0 {
		return 0
	}
	idx := min(int(level)-1, len(table)-1)
	return table[idx]
}
