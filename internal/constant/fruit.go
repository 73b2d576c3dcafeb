package constant

// FruitEffect is what one unit of a fruit does to a chao. Stat fields are
// tick gains, vital fields are saturating gains, axis fields are signed steps.
type FruitEffect struct {
	Swim    int64
	Fly     int64
	Run     int64
	Power   int64
	Stamina int64

	Belly     int64
	Happiness int64
	Energy    int64
	HP        int64

	DarkHero int64
	RunPower int64
	SwimFly  int64
}

const (
	ItemChaoEgg = "Chao Egg"
	ItemRings   = "Rings"
)

var Fruits = map[string]FruitEffect{
	"Swim Fruit":   {Swim: 3, Belly: 1, SwimFly: -1},
	"Fly Fruit":    {Fly: 3, Belly: 1, SwimFly: 1},
	"Run Fruit":    {Run: 3, Belly: 1, RunPower: -1},
	"Power Fruit":  {Power: 3, Belly: 1, RunPower: 1},
	"Strong Fruit": {Stamina: 3, Belly: 1},
	"Chao Fruit":   {Swim: 2, Fly: 2, Run: 2, Power: 2, Stamina: 2, Belly: 1, Happiness: 1},
	"Hero Fruit":   {Stamina: 1, Belly: 1, Happiness: 1, DarkHero: 1},
	"Dark Fruit":   {Stamina: 1, Belly: 1, Happiness: 1, DarkHero: -1},
	"Tasty Fruit":  {Belly: 3, Happiness: 2},
	"Heart Fruit":  {Belly: 1, Happiness: 3},
	"Round Fruit":  {Belly: 2, HP: 1},
	"Square Fruit": {Power: 1, Belly: 1, Energy: 2},
	"Orange Fruit": {Stamina: 1, Belly: 2},
	"Blue Fruit":   {Belly: 1, Energy: 3},
}
