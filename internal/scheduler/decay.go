package scheduler

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nickshouse/Chao-Bot-sub000/configs"
	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
)

// Per-vital decay rules: amount removed per whole elapsed interval. HP is
// not in this table because its decay is conditional on the other three.
// Intervals come from the chao config section, falling back to the built-in
// table when unset.
type vitalRule struct {
	kind     constant.VitalKind
	amount   int64
	interval time.Duration
}

var (
	vitalRules      []vitalRule
	hpDecayInterval time.Duration
)

func init() {
	chao := configs.GetGlobalConfig().ChaoConfig
	vitalRules = []vitalRule{
		{constant.VitalBelly, constant.BellyDecayAmount, minutesOr(chao.BellyDecayMinutes, constant.BellyDecayInterval)},
		{constant.VitalHappiness, constant.HappyDecayAmount, minutesOr(chao.HappinessDecayMinutes, constant.HappyDecayInterval)},
		{constant.VitalEnergy, constant.EnergyDecayAmount, minutesOr(chao.EnergyDecayMinutes, constant.EnergyDecayInterval)},
	}
	hpDecayInterval = minutesOr(chao.HPDecayMinutes, constant.HPDecayInterval)
}

func minutesOr(minutes int, def time.Duration) time.Duration {
	if minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return def
}

type decayResult struct {
	changed     bool
	hpCrossings []int64
}

// decayPet advances all elapsed-time decay on one record. Whole interval
// blocks only: the timestamp advances by exactly the consumed blocks, never
// past now, so partial intervals are carried to the next pass. A first-ever
// pass initializes timestamps without subtracting anything.
func decayPet(rec *model.PetRecord, now time.Time) decayResult {
	res := decayResult{}

	for _, rule := range vitalRules {
		if decayVital(rec, rule.kind, rule.amount, rule.interval, now) {
			res.changed = true
		}
	}

	// HP only decays while at least one of the other vitals is fully
	// depleted. While all three are healthy the HP clock is refreshed
	// instead, so no decay debt builds up.
	hp := rec.Vital(constant.VitalHP)
	healthy := rec.BellyTicks > 0 && rec.EnergyTicks > 0 && rec.HappinessTicks > 0
	if healthy {
		stamp := now.Format(constant.TimeLayout)
		if *hp.DecayAt != stamp {
			*hp.DecayAt = stamp
			res.changed = true
		}
		return res
	}

	before := *hp.Ticks
	if decayVital(rec, constant.VitalHP, constant.HPDecayAmount, hpDecayInterval, now) {
		res.changed = true
	}
	after := *hp.Ticks
	for _, threshold := range constant.HPNotifyThresholds {
		// Strict downward crossing only: being at or below the threshold
		// before this pass does not re-notify.
		if before > threshold && after <= threshold {
			res.hpCrossings = append(res.hpCrossings, threshold)
		}
	}
	return res
}

// decayVital applies one vital's rule. Returns true when the record changed
// (value, timestamp init, or corruption self-heal).
func decayVital(rec *model.PetRecord, kind constant.VitalKind, amount int64, interval time.Duration, now time.Time) bool {
	ref := rec.Vital(kind)
	if *ref.DecayAt == "" {
		*ref.DecayAt = now.Format(constant.TimeLayout)
		return true
	}
	last, err := time.Parse(constant.TimeLayout, *ref.DecayAt)
	if err != nil {
		log.Warnf("corrupt %s decay timestamp %q on %s/%s, resetting", kind, *ref.DecayAt, rec.OwnerID, rec.PetName)
		*ref.DecayAt = now.Format(constant.TimeLayout)
		return true
	}
	blocks := int64(now.Sub(last) / interval)
	if blocks < 1 {
		return false
	}
	*ref.Ticks -= amount * blocks
	if *ref.Ticks < 0 {
		*ref.Ticks = 0
	}
	*ref.DecayAt = last.Add(time.Duration(blocks) * interval).Format(constant.TimeLayout)
	return true
}
