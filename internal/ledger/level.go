package ledger

import (
	"math"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
)

// levelThresholds[i] is the total experience needed to reach level i+1.
// Index 0 (level 1) is always zero.
var levelThresholds = buildThresholds()

func buildThresholds() []int64 {
	thresholds := make([]int64, domain.MaxLevel)
	for lvl := 1; lvl < domain.MaxLevel; lvl++ {
		thresholds[lvl] = thresholds[lvl-1] + levelCost(lvl)
	}
	return thresholds
}

// levelCost is the experience needed to advance from level to level+1
func levelCost(level int) int64 {
	return int64(domain.LevelBaseExperience * math.Pow(float64(level), domain.LevelExponent))
}

// LevelForExperience returns the level reached with the given total
// experience. Negative input is treated as zero.
func LevelForExperience(xp int64) int {
	level := 1
	for level < domain.MaxLevel && xp >= levelThresholds[level] {
		level++
	}
	return level
}

// ExperienceForLevel returns the total experience required to reach level.
// Levels below 1 are clamped to 1 and levels above MaxLevel to MaxLevel.
func ExperienceForLevel(level int) int64 {
	switch {
	case level <= 1:
		return 0
	case level > domain.MaxLevel:
		level = domain.MaxLevel
	}
	return levelThresholds[level-1]
}

// Progress describes how far a player is into their current level
type Progress struct {
	Level       int   `json:"level"`
	Experience  int64 `json:"experience"`
	LevelStart  int64 `json:"level_start"`
	NextLevel   int64 `json:"next_level"`
	ToNextLevel int64 `json:"to_next_level"`
	AtMaxLevel  bool  `json:"at_max_level"`
}

// ProgressFor reports level progress for the given total experience
func ProgressFor(xp int64) Progress {
	level := LevelForExperience(xp)
	p := Progress{
		Level:      level,
		Experience: xp,
		LevelStart: ExperienceForLevel(level),
	}
	if level >= domain.MaxLevel {
		p.AtMaxLevel = true
		p.NextLevel = p.LevelStart
		return p
	}
	p.NextLevel = ExperienceForLevel(level + 1)
	p.ToNextLevel = p.NextLevel - xp
	return p
}
