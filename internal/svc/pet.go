package svc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nickshouse/Chao-Bot-sub000/configs"
	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
	"github.com/nickshouse/Chao-Bot-sub000/internal/evolution"
	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
	"github.com/nickshouse/Chao-Bot-sub000/internal/render"
	"github.com/nickshouse/Chao-Bot-sub000/internal/repo"
	"github.com/nickshouse/Chao-Bot-sub000/internal/stat"
	"github.com/nickshouse/Chao-Bot-sub000/internal/viewer"
)

var petRepo *repo.PetRepo
var vsRepo *repo.ViewStateRepo
var conf *configs.GlobalConfig
var notifier render.Notifier

// nowFunc is swapped in tests.
var nowFunc = time.Now

func init() {
	petRepo = repo.NewPetRepo()
	vsRepo = repo.NewViewStateRepo()
	conf = configs.GetGlobalConfig()
	notifier = render.NewLogAdapter()
}

// SetNotifier installs the chat-platform notifier. The default logs.
func SetNotifier(n render.Notifier) {
	if n != nil {
		notifier = n
	}
}

// Hatch consumes one Chao Egg and brings a pet to life: either a brand-new
// record or a reincarnated record waiting under the same name.
func Hatch(ownerId, petName string) (viewer.Pet, error) {
	defer LockPet(ownerId, petName)()

	rec, err := petRepo.FindLatest(context.Background(), ownerId, petName)
	if err != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if rec != nil && rec.Dead == constant.Dead {
		return viewer.Pet{}, fmt.Errorf("%w: %s died on %s", ErrInvalidState, petName, rec.DateOfDeath)
	}
	if rec != nil && rec.Hatched == constant.Hatched {
		return viewer.Pet{}, fmt.Errorf("%w: %s is already hatched", ErrInvalidState, petName)
	}

	egg, err := invRepo.FindItem(context.Background(), ownerId, constant.ItemChaoEgg)
	if err != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if egg == nil || egg.Quantity < 1 {
		return viewer.Pet{}, fmt.Errorf("%w: no %s held", ErrInsufficientResource, constant.ItemChaoEgg)
	}

	now := nowFunc()
	if rec == nil {
		rec = &model.PetRecord{
			OwnerID: ownerId,
			PetName: petName,
			Form:    constant.Form1,
		}
		for _, k := range constant.StatKinds {
			*rec.Stat(k).Grade = constant.DefaultGrade
		}
	}
	rec.Hatched = constant.Hatched
	rec.BirthDate = now.Format(constant.TimeLayout)
	rec.LastFeedAt = now.Format(constant.TimeLayout)
	rec.BellyTicks = hatchVital(conf.ChaoConfig.HatchBelly, constant.HatchBelly)
	rec.HappinessTicks = hatchVital(conf.ChaoConfig.HatchHappiness, constant.HatchHappiness)
	rec.EnergyTicks = hatchVital(conf.ChaoConfig.HatchEnergy, constant.HatchEnergy)
	rec.HPTicks = hatchVital(conf.ChaoConfig.HatchHP, constant.HatchHP)
	// Fresh decay clocks: a reincarnated record must not inherit decay debt
	// from its previous life's timestamps.
	stamp := now.Format(constant.TimeLayout)
	rec.BellyDecayAt = stamp
	rec.HappyDecayAt = stamp
	rec.EnergyDecayAt = stamp
	rec.HPDecayAt = stamp
	applyResolver(rec)

	db := repo.GetDbCli()
	tx := db.Begin()
	if tx.Error != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if err := invRepo.AdjustItemWithTx(context.Background(), tx, ownerId, constant.ItemChaoEgg, -1); err != nil {
		tx.Rollback()
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := petRepo.SaveSnapshotWithTx(context.Background(), tx, rec); err != nil {
		tx.Rollback()
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := tx.Commit().Error; err != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Infof("hatched %s for %s", petName, ownerId)
	return toViewer(rec), nil
}

// Feed applies qty units of a fruit to a pet: belly bookkeeping, stat tick
// gains, vitals, axis drift, evolution resolution, then one all-or-nothing
// write of fruit stock plus snapshot, then the lifecycle post-check. The
// order is fixed; nothing here may be reordered.
func Feed(ownerId, petName, fruitName string, qty int64) (viewer.Pet, error) {
	if qty <= 0 {
		return viewer.Pet{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidState)
	}
	fruit, ok := constant.Fruits[fruitName]
	if !ok {
		return viewer.Pet{}, fmt.Errorf("%w: unknown fruit %q", ErrNotFound, fruitName)
	}

	defer LockPet(ownerId, petName)()

	rec, err := loadInteractivePet(ownerId, petName)
	if err != nil {
		return viewer.Pet{}, err
	}

	held, err := invRepo.FindItem(context.Background(), ownerId, fruitName)
	if err != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if held == nil || held.Quantity < qty {
		var have int64
		if held != nil {
			have = held.Quantity
		}
		return viewer.Pet{}, fmt.Errorf("%w: have %d of %q, need %d", ErrInsufficientResource, have, fruitName, qty)
	}

	now := nowFunc()
	applyBellyElapse(rec, now)

	for _, k := range constant.StatKinds {
		inc := fruitStatGain(fruit, k) * qty
		if inc == 0 {
			continue
		}
		ref := rec.Stat(k)
		ticks, level, exp := stat.ApplyTickGain(*ref.Ticks, *ref.Level, *ref.Grade, inc)
		*ref.Ticks = ticks
		*ref.Level = level
		*ref.Exp += exp
	}

	rec.BellyTicks = stat.VitalGain(rec.BellyTicks, fruit.Belly*qty)
	rec.HappinessTicks = stat.VitalGain(rec.HappinessTicks, fruit.Happiness*qty)
	rec.EnergyTicks = stat.VitalGain(rec.EnergyTicks, fruit.Energy*qty)
	rec.HPTicks = stat.VitalGain(rec.HPTicks, fruit.HP*qty)

	rec.DarkHero = stat.ClampAxis(rec.DarkHero, fruit.DarkHero*qty)
	if fruit.RunPower != 0 {
		rec.RunPower = stat.ClampAxis(rec.RunPower, fruit.RunPower*qty)
		rec.SwimFly = stat.TowardZero(rec.SwimFly, fruit.RunPower*qty)
	}
	if fruit.SwimFly != 0 {
		rec.SwimFly = stat.ClampAxis(rec.SwimFly, fruit.SwimFly*qty)
		rec.RunPower = stat.TowardZero(rec.RunPower, fruit.SwimFly*qty)
	}

	applyResolver(rec)

	db := repo.GetDbCli()
	tx := db.Begin()
	if tx.Error != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if err := invRepo.AdjustItemWithTx(context.Background(), tx, ownerId, fruitName, -qty); err != nil {
		tx.Rollback()
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := petRepo.SaveSnapshotWithTx(context.Background(), tx, rec); err != nil {
		tx.Rollback()
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := tx.Commit().Error; err != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := postMutationCheck(rec); err != nil {
		log.Errorf("post-feed lifecycle check %s/%s Error: %v", ownerId, petName, err)
	}
	return toViewer(rec), nil
}

// GetPet returns the latest snapshot as a viewer. Observation is allowed in
// any state, cocooned and dead included.
func GetPet(ownerId, petName string) (viewer.Pet, error) {
	rec, err := petRepo.FindLatest(context.Background(), ownerId, petName)
	if err != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if rec == nil {
		return viewer.Pet{}, fmt.Errorf("%w: pet %q", ErrNotFound, petName)
	}
	return toViewer(rec), nil
}

// ListPets returns all of one owner's pets, newest snapshot each.
func ListPets(ownerId string) ([]viewer.Pet, error) {
	recs, err := petRepo.FindLatestByOwner(context.Background(), ownerId)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	pets := make([]viewer.Pet, 0, len(recs))
	for i := range recs {
		pets = append(pets, toViewer(&recs[i]))
	}
	return pets, nil
}

// StatSheet builds the symbolic stat-sheet for the renderer.
func StatSheet(ownerId, petName string) (viewer.StatSheet, error) {
	rec, err := petRepo.FindLatest(context.Background(), ownerId, petName)
	if err != nil {
		return viewer.StatSheet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if rec == nil {
		return viewer.StatSheet{}, fmt.Errorf("%w: pet %q", ErrNotFound, petName)
	}

	sheet := viewer.StatSheet{
		PetName:       rec.PetName,
		Levels:        make(map[string]int64),
		Ticks:         make(map[string]int64),
		Exp:           make(map[string]int64),
		Grades:        make(map[string]string),
		TickPositions: make(map[string]int64),
	}
	for _, k := range constant.StatKinds {
		ref := rec.Stat(k)
		name := k.String()
		sheet.Levels[name] = *ref.Level
		sheet.Ticks[name] = *ref.Ticks
		sheet.Exp[name] = *ref.Exp
		sheet.Grades[name] = *ref.Grade
		sheet.TickPositions[name] = *ref.Ticks * constant.TickPixelStep
	}
	eyes, mouth := faceOf(rec)
	sprites := evolution.SpritesFor(rec.ChaoType, eyes, mouth)
	sheet.BodySprite = render.BodyKeyOrMissing(sprites.Body)
	sheet.EyesSprite = sprites.Eyes
	sheet.MouthSprite = sprites.Mouth
	return sheet, nil
}

// loadInteractivePet is the shared validation gate: the pet must exist, be
// hatched, be alive and not be in a cocoon. An overdue cocoon (e.g. the
// process restarted mid-countdown) is finalized first, then re-read. The
// caller holds the pet lock.
func loadInteractivePet(ownerId, petName string) (*model.PetRecord, error) {
	rec, err := petRepo.FindLatest(context.Background(), ownerId, petName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if rec == nil || rec.Hatched == constant.NotHatched {
		return nil, fmt.Errorf("%w: pet %q", ErrNotFound, petName)
	}
	if rec.Dead == constant.Dead {
		return nil, fmt.Errorf("%w: %s died on %s", ErrInvalidState, petName, rec.DateOfDeath)
	}
	if rec.InCocoon() {
		remaining := cocoonRemaining(rec, nowFunc())
		if remaining > 0 {
			return nil, &CocoonError{Kind: cocoonKindOf(rec).String(), RemainingSeconds: remaining}
		}
		if err := finalizeCocoon(ownerId, petName); err != nil {
			return nil, err
		}
		rec, err = petRepo.FindLatest(context.Background(), ownerId, petName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: pet %q", ErrNotFound, petName)
		}
		if rec.Dead == constant.Dead {
			return nil, fmt.Errorf("%w: %s died on %s", ErrInvalidState, petName, rec.DateOfDeath)
		}
	}
	return rec, nil
}

// applyBellyElapse runs the "days since last feed shrink the belly" rule
// before the feed adds back. A corrupt timestamp self-heals to now.
func applyBellyElapse(rec *model.PetRecord, now time.Time) {
	if rec.LastFeedAt != "" {
		last, err := time.Parse(constant.TimeLayout, rec.LastFeedAt)
		if err != nil {
			log.Warnf("corrupt last_feed_at %q on %s/%s, resetting", rec.LastFeedAt, rec.OwnerID, rec.PetName)
		} else {
			days := int64(now.Sub(last).Hours() / 24)
			if days > 0 {
				rec.BellyTicks -= days
				if rec.BellyTicks < 0 {
					rec.BellyTicks = 0
				}
			}
		}
	}
	rec.LastFeedAt = now.Format(constant.TimeLayout)
}

// applyResolver funnels every Type/Form derivation through the evolution
// resolver; no call site recomputes these by hand.
func applyResolver(rec *model.PetRecord) {
	out := evolution.Resolve(evolution.Input{
		Form:     rec.Form,
		Type:     rec.ChaoType,
		DarkHero: rec.DarkHero,
		RunPower: rec.RunPower,
		SwimFly:  rec.SwimFly,
		Swim:     rec.SwimLevel,
		Fly:      rec.FlyLevel,
		Run:      rec.RunLevel,
		Power:    rec.PowerLevel,
		Stamina:  rec.StaminaLevel,
	})
	rec.ChaoType = out.Type
	rec.Form = out.Form
	rec.Alignment = out.Alignment
}

// hatchVital reads a configured hatch value, falling back to the built-in
// default when the chao config section leaves it unset.
func hatchVital(configured int, def int64) int64 {
	if configured > 0 {
		return int64(configured)
	}
	return def
}

func fruitStatGain(f constant.FruitEffect, k constant.StatKind) int64 {
	switch k {
	case constant.StatSwim:
		return f.Swim
	case constant.StatFly:
		return f.Fly
	case constant.StatRun:
		return f.Run
	case constant.StatPower:
		return f.Power
	default:
		return f.Stamina
	}
}

type petFace struct {
	Eyes  string `json:"eyes"`
	Mouth string `json:"mouth"`
}

func faceOf(rec *model.PetRecord) (string, string) {
	if len(rec.Face) == 0 {
		return "", ""
	}
	var f petFace
	if err := json.Unmarshal(rec.Face, &f); err != nil {
		log.Warnf("corrupt face on %s/%s: %v", rec.OwnerID, rec.PetName, err)
		return "", ""
	}
	return f.Eyes, f.Mouth
}

func toViewer(rec *model.PetRecord) viewer.Pet {
	pet := viewer.Pet{
		OwnerID: rec.OwnerID,
		PetName: rec.PetName,

		SwimTicks: rec.SwimTicks, SwimLevel: rec.SwimLevel, SwimExp: rec.SwimExp,
		FlyTicks: rec.FlyTicks, FlyLevel: rec.FlyLevel, FlyExp: rec.FlyExp,
		RunTicks: rec.RunTicks, RunLevel: rec.RunLevel, RunExp: rec.RunExp,
		PowerTicks: rec.PowerTicks, PowerLevel: rec.PowerLevel, PowerExp: rec.PowerExp,
		StaminaTicks: rec.StaminaTicks, StaminaLevel: rec.StaminaLevel, StaminaExp: rec.StaminaExp,
		SwimGrade: rec.SwimGrade, FlyGrade: rec.FlyGrade, RunGrade: rec.RunGrade,
		PowerGrade: rec.PowerGrade, StaminaGrade: rec.StaminaGrade,

		Belly: rec.BellyTicks, Happiness: rec.HappinessTicks,
		Energy: rec.EnergyTicks, HP: rec.HPTicks,
		DarkHero: rec.DarkHero, RunPower: rec.RunPower, SwimFly: rec.SwimFly,

		Form: rec.Form, ChaoType: rec.ChaoType, Alignment: rec.Alignment,
		Hatched: rec.Hatched, Evolved: rec.Evolved, Dead: rec.Dead,
		Reincarnations: rec.Reincarnations, Deaths: rec.Deaths,
		BirthDate: rec.BirthDate, DateOfDeath: rec.DateOfDeath,
	}
	if rec.InCocoon() {
		pet.InCocoon = true
		pet.CocoonKind = cocoonKindOf(rec).String()
		pet.CocoonSecondsLeft = cocoonRemaining(rec, nowFunc())
	}
	return pet
}
