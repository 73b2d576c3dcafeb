package viewer

// Pet is the transfer shape handed to the api layer and the presentation
// adapter. It mirrors the latest snapshot plus a few derived fields.
type Pet struct {
	OwnerID string
	PetName string

	SwimTicks, SwimLevel, SwimExp                int64
	FlyTicks, FlyLevel, FlyExp                   int64
	RunTicks, RunLevel, RunExp                   int64
	PowerTicks, PowerLevel, PowerExp             int64
	StaminaTicks, StaminaLevel, StaminaExp       int64
	SwimGrade, FlyGrade, RunGrade                string
	PowerGrade, StaminaGrade                     string
	Belly, Happiness, Energy, HP                 int64
	DarkHero, RunPower, SwimFly                  int64
	Form                                         int64
	ChaoType, Alignment                          string
	Hatched, Evolved, Dead                       int64
	Reincarnations, Deaths                       int64
	BirthDate, DateOfDeath                       string
	InCocoon                                     bool
	CocoonKind                                   string
	CocoonSecondsLeft                            int64
}

// StatSheet carries the symbolic coordinates and values the renderer needs.
// Tick positions are pixel offsets; the core never touches pixels beyond
// computing them from tick counts.
type StatSheet struct {
	PetName       string
	Levels        map[string]int64
	Ticks         map[string]int64
	Exp           map[string]int64
	Grades        map[string]string
	TickPositions map[string]int64
	BodySprite    string
	EyesSprite    string
	MouthSprite   string
}
