package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTickGainRollover(t *testing.T) {
	cases := []struct {
		name      string
		ticks     int64
		level     int64
		grade     string
		inc       int64
		wantTicks int64
		wantLevel int64
		wantExp   int64
	}{
		{"no gain", 7, 3, "D", 0, 7, 3, 0},
		{"partial", 7, 3, "D", 2, 9, 3, 0},
		{"single roll", 9, 3, "D", 1, 0, 4, 3},
		{"multi roll 7+23", 7, 0, "D", 23, 0, 3, 9},
		{"grade X exp", 9, 0, "X", 1, 0, 1, 8},
		{"grade F exp", 9, 0, "F", 1, 0, 1, 1},
		{"unknown grade falls back to D", 9, 0, "??", 1, 0, 1, 3},
		{"level cap", 5, 98, "C", 25, 0, 99, 12},
		{"negative inc ignored", 5, 4, "B", -9, 5, 4, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ticks, level, exp := ApplyTickGain(c.ticks, c.level, c.grade, c.inc)
			assert.Equal(t, c.wantTicks, ticks)
			assert.Equal(t, c.wantLevel, level)
			assert.Equal(t, c.wantExp, exp)
		})
	}
}

func TestApplyTickGainIdempotentOnZeroDelta(t *testing.T) {
	ticks, level, exp := ApplyTickGain(4, 10, "A", 0)
	assert.Equal(t, int64(4), ticks)
	assert.Equal(t, int64(10), level)
	assert.Equal(t, int64(0), exp)

	ticks2, level2, exp2 := ApplyTickGain(ticks, level, "A", 0)
	assert.Equal(t, ticks, ticks2)
	assert.Equal(t, level, level2)
	assert.Equal(t, exp, exp2)
}

func TestClampAxis(t *testing.T) {
	assert.Equal(t, int64(5), ClampAxis(4, 3))
	assert.Equal(t, int64(-5), ClampAxis(-4, -3))
	assert.Equal(t, int64(0), ClampAxis(-1, 1))
	assert.Equal(t, int64(2), ClampAxis(2, 0))
}

func TestVitalGain(t *testing.T) {
	assert.Equal(t, int64(10), VitalGain(9, 4))
	assert.Equal(t, int64(10), VitalGain(10, 1), "cannot rise past cap")
	assert.Equal(t, int64(6), VitalGain(6, -3), "never decreases")
	assert.Equal(t, int64(3), VitalGain(1, 2))
}

func TestTowardZero(t *testing.T) {
	assert.Equal(t, int64(1), TowardZero(3, 2))
	assert.Equal(t, int64(-1), TowardZero(-3, 2))
	assert.Equal(t, int64(0), TowardZero(2, 5), "stops at zero")
	assert.Equal(t, int64(-2), TowardZero(-3, -1), "count sign ignored")
}
