package evolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTypeGrammar(t *testing.T) {
	cases := []struct {
		name     string
		in       Input
		wantType string
		wantForm int64
	}{
		{
			"fresh hatch",
			Input{Form: 1, Type: "neutral_normal_1"},
			"neutral_normal_1", 1,
		},
		{
			"form 1 to 2 at level 5",
			Input{Form: 1, Type: "neutral_normal_1", Run: 5},
			"neutral_normal_normal_2", 2,
		},
		{
			"form 2 suffix from run axis",
			Input{Form: 2, Type: "neutral_normal_normal_2", RunPower: -5, Run: 10},
			"neutral_normal_run_2", 2,
		},
		{
			"form 2 to 3 hero",
			Input{Form: 2, Type: "neutral_normal_normal_2", DarkHero: 5, SwimFly: 5, Fly: 20},
			"hero_fly_3", 3,
		},
		{
			"form 3 to 4 carries prefix",
			Input{Form: 3, Type: "dark_run_3", RunPower: 5, Power: 60},
			"dark_run_power_4", 4,
		},
		{
			"form 4 re-entry keeps prefix",
			Input{Form: 4, Type: "dark_run_power_4", SwimFly: -5, Power: 70},
			"dark_run_swim_4", 4,
		},
		{
			"no double promotion in one call",
			Input{Form: 1, Type: "neutral_normal_1", Stamina: 25},
			"neutral_normal_normal_2", 2,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := Resolve(c.in)
			assert.Equal(t, c.wantType, out.Type)
			assert.Equal(t, c.wantForm, out.Form)
		})
	}
}

func TestResolveIsPureAndIdempotent(t *testing.T) {
	in := Input{Form: 2, Type: "neutral_normal_normal_2", DarkHero: 3, RunPower: -2, Run: 12}
	first := Resolve(in)
	second := Resolve(in)
	assert.Equal(t, first, second, "same input must give same output")

	// Feed the resolved state back in: nothing should move.
	again := Resolve(Input{
		Form: first.Form, Type: first.Type,
		DarkHero: in.DarkHero, RunPower: in.RunPower, SwimFly: in.SwimFly,
		Swim: in.Swim, Fly: in.Fly, Run: in.Run, Power: in.Power, Stamina: in.Stamina,
	})
	assert.Equal(t, first.Type, again.Type)
	assert.Equal(t, first.Form, again.Form)
}

func TestAlignmentLockFromForm3(t *testing.T) {
	// Hero locked in at form 3; drifting dark_hero must not change it.
	out := Resolve(Input{Form: 3, Type: "hero_fly_3", DarkHero: -5, SwimFly: 5, Fly: 30})
	assert.Equal(t, "hero_fly_3", out.Type)
	assert.Equal(t, "hero", out.Alignment)

	out = Resolve(Input{Form: 4, Type: "hero_fly_fly_4", DarkHero: -5, SwimFly: 5})
	assert.Equal(t, "hero", out.Alignment)
}

func TestSuffixTieBreakPrefersRunPower(t *testing.T) {
	// Both axes at an extreme should not happen under the coupling rule, but
	// the run_power reading wins defensively.
	assert.Equal(t, "power", Suffix(5, 5))
	assert.Equal(t, "run", Suffix(-5, -5))
	assert.Equal(t, "fly", Suffix(0, 5))
	assert.Equal(t, "swim", Suffix(0, -5))
	assert.Equal(t, "normal", Suffix(4, -4))
}

func TestCarriedPrefix(t *testing.T) {
	assert.Equal(t, "run", CarriedPrefix("dark_run_3"))
	assert.Equal(t, "fly", CarriedPrefix("hero_fly_swim_4"))
	assert.Equal(t, "normal", CarriedPrefix("neutral_normal_1"))
	assert.Equal(t, "normal", CarriedPrefix("garbage"))
}

func TestSuffixStat(t *testing.T) {
	assert.Equal(t, "run", SuffixStat("run").String())
	assert.Equal(t, "stamina", SuffixStat("normal").String())
	assert.Equal(t, "stamina", SuffixStat("").String())
}
