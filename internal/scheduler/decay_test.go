package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
)

func stampedPet(at time.Time) *model.PetRecord {
	stamp := at.Format(constant.TimeLayout)
	return &model.PetRecord{
		OwnerID:        "owner-1",
		PetName:        "Cheese",
		BellyTicks:     5,
		BellyDecayAt:   stamp,
		HappinessTicks: 8,
		HappyDecayAt:   stamp,
		EnergyTicks:    10,
		EnergyDecayAt:  stamp,
		HPTicks:        10,
		HPDecayAt:      stamp,
	}
}

func TestDecayWholeBlocksOnly(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := stampedPet(base)

	// 6.5h elapsed: belly loses 2 blocks of 3h, the half hour carries over.
	now := base.Add(6*time.Hour + 30*time.Minute)
	res := decayPet(rec, now)

	assert.True(t, res.changed)
	assert.Equal(t, int64(3), rec.BellyTicks)
	assert.Equal(t, base.Add(6*time.Hour).Format(constant.TimeLayout), rec.BellyDecayAt)

	// happiness -1/4h, energy -2/4h: one block each.
	assert.Equal(t, int64(7), rec.HappinessTicks)
	assert.Equal(t, int64(8), rec.EnergyTicks)
}

func TestDecayBelowInterval(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := stampedPet(base)

	res := decayPet(rec, base.Add(time.Minute))
	// The HP clock refreshes every pass while the pet is healthy, but no
	// vital moves.
	assert.Equal(t, int64(5), rec.BellyTicks)
	assert.Equal(t, int64(8), rec.HappinessTicks)
	assert.Equal(t, int64(10), rec.EnergyTicks)
	assert.Equal(t, int64(10), rec.HPTicks)
	assert.True(t, res.changed)
	assert.Equal(t, base.Add(time.Minute).Format(constant.TimeLayout), rec.HPDecayAt)
}

func TestFirstPassInitializesTimestamps(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := &model.PetRecord{BellyTicks: 5, HappinessTicks: 8, EnergyTicks: 10, HPTicks: 10}

	res := decayPet(rec, now)

	require.True(t, res.changed)
	stamp := now.Format(constant.TimeLayout)
	assert.Equal(t, stamp, rec.BellyDecayAt)
	assert.Equal(t, stamp, rec.HappyDecayAt)
	assert.Equal(t, stamp, rec.EnergyDecayAt)
	assert.Equal(t, stamp, rec.HPDecayAt)
	assert.Equal(t, int64(5), rec.BellyTicks)
	assert.Equal(t, int64(10), rec.HPTicks)
	assert.Empty(t, res.hpCrossings)
}

func TestHPOnlyDecaysWhenAVitalIsEmpty(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	now := base.Add(13 * time.Hour)

	healthy := stampedPet(base)
	// Keep belly above zero after 13h (4 blocks of 1).
	healthy.BellyTicks = 10
	decayPet(healthy, now)
	assert.Equal(t, int64(10), healthy.HPTicks)
	assert.Equal(t, now.Format(constant.TimeLayout), healthy.HPDecayAt)

	starving := stampedPet(base)
	starving.BellyTicks = 0
	res := decayPet(starving, now)
	// One 12h block.
	assert.Equal(t, int64(9), starving.HPTicks)
	assert.Equal(t, base.Add(12*time.Hour).Format(constant.TimeLayout), starving.HPDecayAt)
	assert.Empty(t, res.hpCrossings)
}

func TestHPCrossingsNotifyOnceOnStrictDescent(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rec := stampedPet(base)
	rec.BellyTicks = 0
	rec.HPTicks = 3

	// 3 -> 2: no threshold strictly crossed, 3 was already at the boundary.
	res := decayPet(rec, base.Add(12*time.Hour))
	assert.Equal(t, int64(2), rec.HPTicks)
	assert.Empty(t, res.hpCrossings)

	// 2 -> 1: crosses the 1 threshold exactly once.
	res = decayPet(rec, base.Add(24*time.Hour))
	assert.Equal(t, int64(1), rec.HPTicks)
	assert.Equal(t, []int64{1}, res.hpCrossings)

	// 1 -> 0: crosses the 0 threshold.
	res = decayPet(rec, base.Add(36*time.Hour))
	assert.Equal(t, int64(0), rec.HPTicks)
	assert.Equal(t, []int64{0}, res.hpCrossings)

	// Stays at 0, never re-notifies.
	res = decayPet(rec, base.Add(48*time.Hour))
	assert.Equal(t, int64(0), rec.HPTicks)
	assert.Empty(t, res.hpCrossings)
}

func TestHPMultiBlockDropReportsEveryCrossing(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := stampedPet(base)
	rec.EnergyTicks = 0
	rec.EnergyDecayAt = base.Format(constant.TimeLayout)
	rec.HPTicks = 5

	// Five 12h blocks at once, 5 -> 0.
	res := decayPet(rec, base.Add(60*time.Hour))
	assert.Equal(t, int64(0), rec.HPTicks)
	assert.Equal(t, []int64{3, 1, 0}, res.hpCrossings)
}

func TestCorruptTimestampSelfHeals(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := stampedPet(now)
	rec.BellyDecayAt = "not a timestamp"

	res := decayPet(rec, now)

	assert.True(t, res.changed)
	// Reset, not decayed: corruption must not wipe out the vital.
	assert.Equal(t, int64(5), rec.BellyTicks)
	assert.Equal(t, now.Format(constant.TimeLayout), rec.BellyDecayAt)
}

func TestSweepEligibility(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	hatched := stampedPet(base)
	hatched.Hatched = constant.Hatched
	assert.True(t, sweepEligible(hatched))

	// A reincarnated egg waiting for Hatch must not decay toward death.
	egg := stampedPet(base)
	egg.Hatched = constant.NotHatched
	assert.False(t, sweepEligible(egg))

	dead := stampedPet(base)
	dead.Hatched = constant.Hatched
	dead.Dead = constant.Dead
	assert.False(t, sweepEligible(dead))

	wrapped := stampedPet(base)
	wrapped.Hatched = constant.Hatched
	wrapped.EvolveCacoon = 1
	assert.False(t, sweepEligible(wrapped))
}

func TestVitalFloorsAtZero(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := stampedPet(base)
	rec.BellyTicks = 2

	// Ten belly blocks would go to -8 unclamped.
	decayPet(rec, base.Add(30*time.Hour))
	assert.Equal(t, int64(0), rec.BellyTicks)
}
