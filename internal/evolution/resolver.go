package evolution

import (
	"strings"

	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
)

// Input is everything the resolver needs: the cached form and type string,
// the three axes, and the five trainable stat levels.
type Input struct {
	Form     int64
	Type     string
	DarkHero int64
	RunPower int64
	SwimFly  int64

	Swim    int64
	Fly     int64
	Run     int64
	Power   int64
	Stamina int64
}

// Output is the symbolic result. Sprite selection happens elsewhere; the
// resolver only produces the type key and the form number.
type Output struct {
	Type      string
	Form      int64
	Alignment string
	Suffix    string
}

// Resolve maps the current state to the next (Type, Form). It is a pure
// function: same input, same output, and resolving an already-resolved state
// is a no-op.
//
// Alignment is recomputed from the dark_hero axis while the chao is in form
// 1 or 2; from form 3 on, the alignment embedded in the current type string
// is reused and never changes again for the lineage.
func Resolve(in Input) Output {
	align := alignmentFor(in)
	suffix := Suffix(in.RunPower, in.SwimFly)
	form := promote(in.Form, maxLevel(in))

	var typ string
	switch form {
	case constant.Form1:
		typ = align + "_normal_1"
	case constant.Form2:
		typ = align + "_normal_" + suffix + "_2"
	case constant.Form3:
		typ = align + "_" + suffix + "_3"
	default:
		typ = align + "_" + CarriedPrefix(in.Type) + "_" + suffix + "_4"
	}

	return Output{Type: typ, Form: form, Alignment: align, Suffix: suffix}
}

func alignmentFor(in Input) string {
	if in.Form >= constant.Form3 {
		if a := AlignmentOf(in.Type); a != "" {
			return a
		}
		// Unparseable type on a locked form self-heals to neutral.
		return constant.AlignmentNeutral
	}
	switch {
	case in.DarkHero >= constant.HeroThreshold:
		return constant.AlignmentHero
	case in.DarkHero <= constant.DarkThreshold:
		return constant.AlignmentDark
	default:
		return constant.AlignmentNeutral
	}
}

// Suffix derives the shape suffix from the evolution axes. The coupling rule
// keeps the two axes from hitting their extremes at once; if that invariant
// is ever broken the run_power reading wins.
func Suffix(runPower, swimFly int64) string {
	switch {
	case runPower >= constant.AxisMax:
		return constant.SuffixPower
	case runPower <= constant.AxisMin:
		return constant.SuffixRun
	case swimFly >= constant.AxisMax:
		return constant.SuffixFly
	case swimFly <= constant.AxisMin:
		return constant.SuffixSwim
	default:
		return constant.SuffixNormal
	}
}

// promote advances the form by at most one step per call. Jumping two
// thresholds in one mutation takes two resolver calls, one per feed or decay
// event.
func promote(form, max int64) int64 {
	switch form {
	case constant.Form1:
		if max >= constant.Form2LevelThreshold {
			return constant.Form2
		}
	case constant.Form2:
		if max >= constant.Form3LevelThreshold {
			return constant.Form3
		}
	case constant.Form3:
		if max >= constant.Form4LevelThreshold {
			return constant.Form4
		}
	case constant.Form4:
		return constant.Form4
	default:
		return constant.Form1
	}
	return form
}

func maxLevel(in Input) int64 {
	max := in.Swim
	for _, v := range []int64{in.Fly, in.Run, in.Power, in.Stamina} {
		if v > max {
			max = v
		}
	}
	return max
}

// MaxLevel is the promotion-relevant level: the highest of the five stats.
func MaxLevel(swim, fly, run, power, stamina int64) int64 {
	return maxLevel(Input{Swim: swim, Fly: fly, Run: run, Power: power, Stamina: stamina})
}

// AlignmentOf extracts the alignment token from a type string, or "" if the
// string does not carry one.
func AlignmentOf(typ string) string {
	head, _, ok := strings.Cut(typ, "_")
	if !ok {
		return ""
	}
	switch head {
	case constant.AlignmentHero, constant.AlignmentDark, constant.AlignmentNeutral:
		return head
	}
	return ""
}

// SuffixOf extracts the shape suffix from a type string: the second-to-last
// token for form 2/3/4 keys, "normal" otherwise.
func SuffixOf(typ string) string {
	parts := strings.Split(typ, "_")
	if len(parts) < 3 {
		return constant.SuffixNormal
	}
	s := parts[len(parts)-2]
	switch s {
	case constant.SuffixRun, constant.SuffixPower, constant.SuffixSwim, constant.SuffixFly, constant.SuffixNormal:
		return s
	}
	return constant.SuffixNormal
}

// CarriedPrefix is the lineage token a form-4 type carries: the suffix the
// chao had at form 3, or its existing form-4 prefix on re-entry.
func CarriedPrefix(typ string) string {
	parts := strings.Split(typ, "_")
	switch {
	case len(parts) == 3 && parts[2] == "3":
		return normalizeShape(parts[1])
	case len(parts) == 4 && parts[3] == "4":
		return normalizeShape(parts[1])
	}
	return constant.SuffixNormal
}

func normalizeShape(s string) string {
	switch s {
	case constant.SuffixRun, constant.SuffixPower, constant.SuffixSwim, constant.SuffixFly:
		return s
	}
	return constant.SuffixNormal
}

// SuffixStat maps a shape suffix to the trainable stat whose grade promotes
// when the evolution cocoon opens. The normal shape trains stamina.
func SuffixStat(suffix string) constant.StatKind {
	switch suffix {
	case constant.SuffixRun:
		return constant.StatRun
	case constant.SuffixPower:
		return constant.StatPower
	case constant.SuffixSwim:
		return constant.StatSwim
	case constant.SuffixFly:
		return constant.StatFly
	}
	return constant.StatStamina
}
