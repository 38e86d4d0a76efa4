package gamify

import "math"

// XPPerSession is awarded for every completed session, breaks included.
const XPPerSession = 10

// CalculateLevel returns the level for a cumulative XP total. Levels are
// unbounded integers >= 1 with boundaries at (L-1)^2 * 100 XP.
func CalculateLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

// XPProgress describes progress through the current level.
type XPProgress struct {
	Current    int
	Needed     int
	Percentage float64
}

// Progress returns XP earned within the current level, the level's total
// span, and the percentage toward the next level.
func Progress(xp int) XPProgress {
	level := CalculateLevel(xp)
	currentLevelXP := (level - 1) * (level - 1) * 100
	nextLevelXP := level * level * 100

	current := xp - currentLevelXP
	needed := nextLevelXP - currentLevelXP
	return XPProgress{
		Current:    current,
		Needed:     needed,
		Percentage: float64(current) / float64(needed) * 100,
	}
}
