package constant

import "time"

const (
	NotHatched = 0
	Hatched    = 1
	NotEvolved = 0
	Evolved    = 1
	Alive      = 0
	Dead       = 1
)

// Forms are the four evolutionary stages.
const (
	Form1 = 1
	Form2 = 2
	Form3 = 3
	Form4 = 4
)

// Alignment labels and the dark_hero axis thresholds that produce them.
const (
	AlignmentHero    = "hero"
	AlignmentDark    = "dark"
	AlignmentNeutral = "neutral"

	HeroThreshold = 5
	DarkThreshold = -5
)

// Shape suffixes derived from the run_power / swim_fly axes.
const (
	SuffixNormal = "normal"
	SuffixRun    = "run"
	SuffixPower  = "power"
	SuffixSwim   = "swim"
	SuffixFly    = "fly"
)

// Stat-level thresholds gating form promotion.
const (
	Form2LevelThreshold = 5
	Form3LevelThreshold = 20
	Form4LevelThreshold = 60
)

// EvolveTriggerLevel is the stat level at which a form-3 chao that has not
// evolved yet enters the evolution cocoon. ReincarnateLevel is the level at
// which a form-4 chao either reincarnates or dies, split on happiness.
const (
	EvolveTriggerLevel       = 20
	ReincarnateLevel         = 99
	ReincarnateHappinessOver = 5
)

const (
	DefaultCocoonSeconds = 60

	HatchBelly     = 5
	HatchHappiness = 10
	HatchEnergy    = 10
	HatchHP        = 10
)

// Timestamp formats stored on the pet record.
const (
	TimeLayout = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
)

// Vital decay defaults: amount removed per whole elapsed interval.
const (
	BellyDecayAmount     = 1
	BellyDecayInterval   = 180 * time.Minute
	HappyDecayAmount     = 1
	HappyDecayInterval   = 240 * time.Minute
	EnergyDecayAmount    = 2
	EnergyDecayInterval  = 240 * time.Minute
	HPDecayAmount        = 1
	HPDecayInterval      = 720 * time.Minute
	DefaultDecayTickSecs = 60
)

// HP thresholds whose strict downward crossing notifies the owner.
var HPNotifyThresholds = []int64{3, 1, 0}
