package stat

import (
	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
)

// ApplyTickGain accumulates inc ticks onto a trainable stat. Every full ten
// ticks rolls into one level, capped at 99, and each roll awards the grade's
// experience. A single call handles multi-level rollover (7 ticks + 23 ends
// at 0 ticks and three extra levels).
func ApplyTickGain(ticks, level int64, grade string, inc int64) (newTicks, newLevel, expGain int64) {
	if inc < 0 {
		inc = 0
	}
	total := ticks + inc
	rolls := total / constant.TicksPerLevel
	newTicks = total % constant.TicksPerLevel

	newLevel = level
	if rolls > 0 {
		perLevel, ok := constant.GradeExp[grade]
		if !ok {
			perLevel = constant.DefaultGradeExp
		}
		expGain = perLevel * rolls
		newLevel = level + rolls
		if newLevel > constant.LevelCap {
			newLevel = constant.LevelCap
		}
	}
	return newTicks, newLevel, expGain
}

// ClampAxis applies delta to an alignment or evolution axis, clamped to [-5, 5].
func ClampAxis(value, delta int64) int64 {
	v := value + delta
	if v > constant.AxisMax {
		return constant.AxisMax
	}
	if v < constant.AxisMin {
		return constant.AxisMin
	}
	return v
}

// VitalGain is a saturating add for belly, happiness, energy and hp. It only
// raises the value and never past the cap of 10; negative deltas are ignored
// (decay goes through the scheduler, not through here).
func VitalGain(current, delta int64) int64 {
	if delta <= 0 {
		return current
	}
	v := current + delta
	if v > constant.VitalCap {
		return constant.VitalCap
	}
	return v
}

// TowardZero moves value count steps toward zero, used for the coupling
// between the run_power and swim_fly axes.
func TowardZero(value, count int64) int64 {
	if count < 0 {
		count = -count
	}
	for ; count > 0 && value != 0; count-- {
		if value > 0 {
			value--
		} else {
			value++
		}
	}
	return value
}
