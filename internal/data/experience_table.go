package data

// MaxHeroLevel is the level cap inside a match.
const MaxHeroLevel = 18

// ExperienceTable holds cumulative XP required to reach each level.
// Index = level (0-19). Level 0 and 1 require 0 XP, index 19 is the overflow cap.
var ExperienceTable = [MaxHeroLevel + 2]int32{
	0,     // 0 (unused)
	0,     // 1
	200,   // 2
	500,   // 3
	900,   // 4
	1400,  // 5
	2000,  // 6
	2700,  // 7
	3500,  // 8
	4400,  // 9
	5400,  // 10
	6500,  // 11
	7700,  // 12
	9000,  // 13
	10400, // 14
	11900, // 15
	13500, // 16
	15200, // 17
	17000, // 18
	19000, // 19 (overflow cap)
}

// GetExpForLevel returns cumulative XP required to reach the given level.
// Returns 0 for level <= 1. Returns the cap for level > MaxHeroLevel.
func GetExpForLevel(level int32) int32 {
	if level <= 1 {
		return 0
	}
	if level > MaxHeroLevel+1 {
		level = MaxHeroLevel + 1
	}
	return ExperienceTable[level]
}

// GetLevelForExp returns the level corresponding to the given cumulative XP.
// Scans upward from startLevel to find the highest level whose threshold is <= exp.
func GetLevelForExp(exp int32, startLevel int32) int32 {
	if startLevel < 1 {
		startLevel = 1
	}
	level := startLevel
	for level < MaxHeroLevel {
		if ExperienceTable[level+1] > exp {
			break
		}
		level++
	}
	return level
}
