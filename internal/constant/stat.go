package constant

// Trainable stats of a chao, in display order.
type StatKind int

const (
	StatSwim StatKind = iota
	StatFly
	StatRun
	StatPower
	StatStamina
)

var StatKinds = []StatKind{StatSwim, StatFly, StatRun, StatPower, StatStamina}

func (k StatKind) String() string {
	switch k {
	case StatSwim:
		return "swim"
	case StatFly:
		return "fly"
	case StatRun:
		return "run"
	case StatPower:
		return "power"
	case StatStamina:
		return "stamina"
	}
	return "unknown"
}

// ParseStatKind maps a user-supplied stat name onto its kind.
func ParseStatKind(s string) (StatKind, bool) {
	for _, k := range StatKinds {
		if k.String() == s {
			return k, true
		}
	}
	return StatStamina, false
}

type VitalKind int

const (
	VitalBelly VitalKind = iota
	VitalHappiness
	VitalEnergy
	VitalHP
)

var VitalKinds = []VitalKind{VitalBelly, VitalHappiness, VitalEnergy, VitalHP}

func (k VitalKind) String() string {
	switch k {
	case VitalBelly:
		return "belly"
	case VitalHappiness:
		return "happiness"
	case VitalEnergy:
		return "energy"
	case VitalHP:
		return "hp"
	}
	return "unknown"
}

const (
	TicksPerLevel = 10
	LevelCap      = 99
	VitalCap      = 10

	AxisMin = -5
	AxisMax = 5

	// Horizontal pixel step between tick marks on the rendered stat sheet.
	// The core hands the renderer offsets, never pixel logic.
	TickPixelStep = 24
)

// Grade ordinals, worst to best. Experience gained per level-up depends on
// the stat's grade.
var GradeOrder = []string{"F", "E", "D", "C", "B", "A", "S", "X"}

var GradeExp = map[string]int64{
	"F": 1,
	"E": 2,
	"D": 3,
	"C": 4,
	"B": 5,
	"A": 6,
	"S": 7,
	"X": 8,
}

// Unrecognized grades fall back to D.
const (
	DefaultGrade    = "D"
	DefaultGradeExp = 3
	TopGrade        = "X"
)

// NextGrade returns the grade one ordinal above g, capped at the top grade.
func NextGrade(g string) string {
	for i, cur := range GradeOrder {
		if cur == g {
			if i+1 < len(GradeOrder) {
				return GradeOrder[i+1]
			}
			return TopGrade
		}
	}
	return DefaultGrade
}
