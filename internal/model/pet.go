package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
)

// PetRecord is one dated snapshot of a chao. The latest row per
// (owner_id, pet_name) is the current state; older rows are history and are
// never rewritten.
type PetRecord struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID      string `gorm:"column:owner_id;type:varchar(64);not null;uniqueIndex:idx_owner_pet_date,priority:1" json:"owner_id"`
	PetName      string `gorm:"column:pet_name;type:varchar(64);not null;uniqueIndex:idx_owner_pet_date,priority:2" json:"pet_name"`
	SnapshotDate string `gorm:"column:snapshot_date;type:varchar(10);not null;uniqueIndex:idx_owner_pet_date,priority:3" json:"snapshot_date"`

	SwimTicks int64  `gorm:"column:swim_ticks;default:0;not null" json:"swim_ticks"`
	SwimLevel int64  `gorm:"column:swim_level;default:0;not null" json:"swim_level"`
	SwimExp   int64  `gorm:"column:swim_exp;default:0;not null" json:"swim_exp"`
	SwimGrade string `gorm:"column:swim_grade;type:varchar(2);default:D;not null" json:"swim_grade"`

	FlyTicks int64  `gorm:"column:fly_ticks;default:0;not null" json:"fly_ticks"`
	FlyLevel int64  `gorm:"column:fly_level;default:0;not null" json:"fly_level"`
	FlyExp   int64  `gorm:"column:fly_exp;default:0;not null" json:"fly_exp"`
	FlyGrade string `gorm:"column:fly_grade;type:varchar(2);default:D;not null" json:"fly_grade"`

	RunTicks int64  `gorm:"column:run_ticks;default:0;not null" json:"run_ticks"`
	RunLevel int64  `gorm:"column:run_level;default:0;not null" json:"run_level"`
	RunExp   int64  `gorm:"column:run_exp;default:0;not null" json:"run_exp"`
	RunGrade string `gorm:"column:run_grade;type:varchar(2);default:D;not null" json:"run_grade"`

	PowerTicks int64  `gorm:"column:power_ticks;default:0;not null" json:"power_ticks"`
	PowerLevel int64  `gorm:"column:power_level;default:0;not null" json:"power_level"`
	PowerExp   int64  `gorm:"column:power_exp;default:0;not null" json:"power_exp"`
	PowerGrade string `gorm:"column:power_grade;type:varchar(2);default:D;not null" json:"power_grade"`

	StaminaTicks int64  `gorm:"column:stamina_ticks;default:0;not null" json:"stamina_ticks"`
	StaminaLevel int64  `gorm:"column:stamina_level;default:0;not null" json:"stamina_level"`
	StaminaExp   int64  `gorm:"column:stamina_exp;default:0;not null" json:"stamina_exp"`
	StaminaGrade string `gorm:"column:stamina_grade;type:varchar(2);default:D;not null" json:"stamina_grade"`

	BellyTicks     int64  `gorm:"column:belly_ticks;default:0;not null" json:"belly_ticks"`
	BellyDecayAt   string `gorm:"column:belly_decay_at;type:varchar(19)" json:"belly_decay_at"`
	HappinessTicks int64  `gorm:"column:happiness_ticks;default:0;not null" json:"happiness_ticks"`
	HappyDecayAt   string `gorm:"column:happiness_decay_at;type:varchar(19)" json:"happiness_decay_at"`
	EnergyTicks    int64  `gorm:"column:energy_ticks;default:0;not null" json:"energy_ticks"`
	EnergyDecayAt  string `gorm:"column:energy_decay_at;type:varchar(19)" json:"energy_decay_at"`
	HPTicks        int64  `gorm:"column:hp_ticks;default:0;not null" json:"hp_ticks"`
	HPDecayAt      string `gorm:"column:hp_decay_at;type:varchar(19)" json:"hp_decay_at"`

	DarkHero int64 `gorm:"column:dark_hero;default:0;not null" json:"dark_hero"`
	RunPower int64 `gorm:"column:run_power;default:0;not null" json:"run_power"`
	SwimFly  int64 `gorm:"column:swim_fly;default:0;not null" json:"swim_fly"`

	Hatched        int64  `gorm:"column:hatched;type:tinyint unsigned;default:0;not null" json:"hatched"`
	Evolved        int64  `gorm:"column:evolved;type:tinyint unsigned;default:0;not null" json:"evolved"`
	Dead           int64  `gorm:"column:dead;type:tinyint unsigned;default:0;not null" json:"dead"`
	Reincarnations int64  `gorm:"column:reincarnations;default:0;not null" json:"reincarnations"`
	Deaths         int64  `gorm:"column:deaths;default:0;not null" json:"deaths"`
	BirthDate      string `gorm:"column:birth_date;type:varchar(19)" json:"birth_date"`
	DateOfDeath    string `gorm:"column:date_of_death;type:varchar(19)" json:"date_of_death"`
	LastFeedAt     string `gorm:"column:last_feed_at;type:varchar(19)" json:"last_feed_at"`

	EvolveCacoon      int64  `gorm:"column:evolve_cacoon;type:tinyint unsigned;default:0;not null" json:"evolve_cacoon"`
	ReincarnateCacoon int64  `gorm:"column:reincarnate_cacoon;type:tinyint unsigned;default:0;not null" json:"reincarnate_cacoon"`
	DeathCacoon       int64  `gorm:"column:death_cacoon;type:tinyint unsigned;default:0;not null" json:"death_cacoon"`
	CacoonEndAt       string `gorm:"column:cacoon_end_at;type:varchar(19)" json:"cacoon_end_at"`

	Form      int64          `gorm:"column:form;default:1;not null" json:"form"`
	ChaoType  string         `gorm:"column:chao_type;type:varchar(64);default:neutral_normal_1;not null" json:"chao_type"`
	Alignment string         `gorm:"column:alignment;type:varchar(16);default:neutral;not null" json:"alignment"`
	Face      datatypes.JSON `gorm:"column:face;type:json" json:"face"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (p *PetRecord) TableName() string {
	return "pet_record"
}

// StatRef points into one trainable stat's four columns, so callers address
// stats by kind instead of composing field names.
type StatRef struct {
	Ticks *int64
	Level *int64
	Exp   *int64
	Grade *string
}

func (p *PetRecord) Stat(k constant.StatKind) StatRef {
	switch k {
	case constant.StatSwim:
		return StatRef{&p.SwimTicks, &p.SwimLevel, &p.SwimExp, &p.SwimGrade}
	case constant.StatFly:
		return StatRef{&p.FlyTicks, &p.FlyLevel, &p.FlyExp, &p.FlyGrade}
	case constant.StatRun:
		return StatRef{&p.RunTicks, &p.RunLevel, &p.RunExp, &p.RunGrade}
	case constant.StatPower:
		return StatRef{&p.PowerTicks, &p.PowerLevel, &p.PowerExp, &p.PowerGrade}
	default:
		return StatRef{&p.StaminaTicks, &p.StaminaLevel, &p.StaminaExp, &p.StaminaGrade}
	}
}

// VitalRef points into one vital's ticks column and its decay timestamp.
type VitalRef struct {
	Ticks   *int64
	DecayAt *string
}

func (p *PetRecord) Vital(k constant.VitalKind) VitalRef {
	switch k {
	case constant.VitalBelly:
		return VitalRef{&p.BellyTicks, &p.BellyDecayAt}
	case constant.VitalHappiness:
		return VitalRef{&p.HappinessTicks, &p.HappyDecayAt}
	case constant.VitalEnergy:
		return VitalRef{&p.EnergyTicks, &p.EnergyDecayAt}
	default:
		return VitalRef{&p.HPTicks, &p.HPDecayAt}
	}
}

// InCocoon reports whether any of the three cocoon flags is set. At most one
// may ever be set at a time.
func (p *PetRecord) InCocoon() bool {
	return p.EvolveCacoon == 1 || p.ReincarnateCacoon == 1 || p.DeathCacoon == 1
}

// MaxLevel is the highest of the five trainable stat levels.
func (p *PetRecord) MaxLevel() int64 {
	max := p.SwimLevel
	for _, v := range []int64{p.FlyLevel, p.RunLevel, p.PowerLevel, p.StaminaLevel} {
		if v > max {
			max = v
		}
	}
	return max
}
