package svc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
	"github.com/nickshouse/Chao-Bot-sub000/internal/evolution"
	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
	"github.com/nickshouse/Chao-Bot-sub000/internal/repo"
)

// The three cocoon transitions share one countdown mechanism; only the flag
// set and the effect applied on opening differ.
type cocoonKind int

const (
	cocoonNone cocoonKind = iota
	cocoonEvolve
	cocoonReincarnate
	cocoonDeath
)

func (k cocoonKind) String() string {
	switch k {
	case cocoonEvolve:
		return "evolve"
	case cocoonReincarnate:
		return "reincarnate"
	case cocoonDeath:
		return "death"
	}
	return "none"
}

var (
	cocoonPool   *ants.Pool
	cocoonCtx    context.Context
	cocoonCancel context.CancelFunc
	cocoonOnce   sync.Once
)

func init() {
	var err error
	cocoonPool, err = ants.NewPool(16)
	if err != nil {
		panic("cocoon pool init error: " + err.Error())
	}
	cocoonCtx, cocoonCancel = context.WithCancel(context.Background())
}

// StopCocoonTimers cancels pending countdown waits. Persisted end
// timestamps survive; overdue cocoons are finalized by the decay scheduler
// or lazily on the next interaction.
func StopCocoonTimers() {
	cocoonOnce.Do(func() {
		cocoonCancel()
		if err := cocoonPool.Release(); err != nil {
			log.Errorf("StopCocoonTimers Error: %s", err.Error())
		}
	})
}

func cocoonKindOf(rec *model.PetRecord) cocoonKind {
	switch {
	case rec.EvolveCacoon == 1:
		return cocoonEvolve
	case rec.ReincarnateCacoon == 1:
		return cocoonReincarnate
	case rec.DeathCacoon == 1:
		return cocoonDeath
	}
	return cocoonNone
}

// cocoonRemaining returns whole seconds until the cocoon opens. A corrupt
// end timestamp counts as due now, so the pet can never wedge shut.
func cocoonRemaining(rec *model.PetRecord, now time.Time) int64 {
	end, err := time.Parse(constant.TimeLayout, rec.CacoonEndAt)
	if err != nil {
		log.Warnf("corrupt cacoon_end_at %q on %s/%s", rec.CacoonEndAt, rec.OwnerID, rec.PetName)
		return 0
	}
	remaining := int64(end.Sub(now).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// postMutationCheck runs after every persisted mutation, on the feed path,
// the admin force-check path and the decay loop alike, so the
// reincarnate-or-die happiness boundary cannot drift between call sites.
// At most one transition fires, in the listed priority order.
func postMutationCheck(rec *model.PetRecord) error {
	if rec.Dead == constant.Dead || rec.InCocoon() {
		return nil
	}
	max := rec.MaxLevel()
	switch {
	case rec.Form == constant.Form3 && rec.Evolved == constant.NotEvolved && max >= constant.EvolveTriggerLevel:
		return startCocoon(rec, cocoonEvolve)
	case rec.Form == constant.Form4 && rec.HappinessTicks > constant.ReincarnateHappinessOver && max >= constant.ReincarnateLevel:
		return startCocoon(rec, cocoonReincarnate)
	case rec.Form == constant.Form4 && rec.HappinessTicks <= constant.ReincarnateHappinessOver && max >= constant.ReincarnateLevel:
		return startCocoon(rec, cocoonDeath)
	case rec.HPTicks == 0 && rec.HappinessTicks <= constant.ReincarnateHappinessOver:
		// HP exhaustion at low happiness, reached by decay rather than by a
		// level threshold.
		return startCocoon(rec, cocoonDeath)
	}
	return nil
}

// LifecycleCheck exposes the post-mutation transition check to the decay
// scheduler, so the HP-exhaustion death path uses the exact same rules and
// happiness boundary as the feed path.
func LifecycleCheck(rec *model.PetRecord) error {
	return postMutationCheck(rec)
}

// startCocoon sets exactly one cocoon flag, persists the countdown and
// schedules its opening. A pet already in a cocoon is left alone.
func startCocoon(rec *model.PetRecord, kind cocoonKind) error {
	if rec.InCocoon() || kind == cocoonNone {
		return nil
	}
	seconds := conf.ChaoConfig.CocoonSeconds
	if seconds <= 0 {
		seconds = constant.DefaultCocoonSeconds
	}
	end := nowFunc().Add(time.Duration(seconds) * time.Second)

	switch kind {
	case cocoonEvolve:
		rec.EvolveCacoon = 1
	case cocoonReincarnate:
		rec.ReincarnateCacoon = 1
	case cocoonDeath:
		rec.DeathCacoon = 1
	}
	rec.CacoonEndAt = end.Format(constant.TimeLayout)

	if err := petRepo.SaveSnapshot(context.Background(), rec); err != nil {
		// Roll the in-memory flags back so the caller's view stays honest.
		rec.EvolveCacoon, rec.ReincarnateCacoon, rec.DeathCacoon = 0, 0, 0
		rec.CacoonEndAt = ""
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	payload, _ := json.Marshal(map[string]string{"kind": kind.String(), "end": rec.CacoonEndAt})
	if err := vsRepo.Upsert(context.Background(), rec.OwnerID, "cocoon:"+rec.PetName, datatypes.JSON(payload)); err != nil {
		log.Errorf("persist cocoon view state %s/%s Error: %v", rec.OwnerID, rec.PetName, err)
	}

	ownerId, petName := rec.OwnerID, rec.PetName
	err := cocoonPool.Submit(func() {
		timer := time.NewTimer(time.Until(end))
		defer timer.Stop()
		select {
		case <-cocoonCtx.Done():
			return
		case <-timer.C:
		}
		if err := FinalizeCocoon(ownerId, petName); err != nil {
			log.Errorf("finalize %s cocoon %s/%s Error: %v", kind, ownerId, petName, err)
		}
	})
	if err != nil {
		// Timer task rejected (shutdown): scheduler will finalize once due.
		log.Errorf("schedule %s cocoon %s/%s Error: %v", kind, ownerId, petName, err)
	}
	log.Infof("%s/%s entered %s cocoon until %s", ownerId, petName, kind, rec.CacoonEndAt)
	return nil
}

// FinalizeCocoon opens a due cocoon. It re-reads the latest snapshot (never
// trusts a cached record), applies the kind's effect, clears the flag and
// persists everything in one transaction. Not-due and no-cocoon calls are
// no-ops, so the timer goroutine, the decay scheduler and the lazy
// interaction path can all race onto it safely.
func FinalizeCocoon(ownerId, petName string) error {
	defer LockPet(ownerId, petName)()
	return finalizeCocoon(ownerId, petName)
}

// finalizeCocoon is the body of FinalizeCocoon; the caller holds the pet lock.
func finalizeCocoon(ownerId, petName string) error {
	rec, err := petRepo.FindLatest(context.Background(), ownerId, petName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if rec == nil || !rec.InCocoon() {
		return nil
	}
	if cocoonRemaining(rec, nowFunc()) > 0 {
		return nil
	}
	kind := cocoonKindOf(rec)

	var creditEgg bool
	switch kind {
	case cocoonEvolve:
		suffix := evolution.SuffixOf(rec.ChaoType)
		ref := rec.Stat(evolution.SuffixStat(suffix))
		*ref.Grade = constant.NextGrade(*ref.Grade)
		rec.Evolved = constant.Evolved
	case cocoonReincarnate:
		rec.Reincarnations++
		rec.Hatched = constant.NotHatched
		// A fresh life evolves again: the evolve-cocoon gate keys on this.
		rec.Evolved = constant.NotEvolved
		for _, k := range constant.StatKinds {
			ref := rec.Stat(k)
			*ref.Ticks, *ref.Level, *ref.Exp = 0, 0, 0
		}
		rec.Form = constant.Form1
		rec.HappinessTicks = constant.VitalCap
		rec.BirthDate = nowFunc().Format(constant.TimeLayout)
		applyResolver(rec)
		creditEgg = true
	case cocoonDeath:
		rec.Deaths++
		rec.Dead = constant.Dead
		rec.HPTicks = 0
		if rec.DateOfDeath == "" {
			rec.DateOfDeath = nowFunc().Format(constant.TimeLayout)
		}
	}

	rec.EvolveCacoon, rec.ReincarnateCacoon, rec.DeathCacoon = 0, 0, 0
	rec.CacoonEndAt = ""

	db := repo.GetDbCli()
	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if creditEgg {
		if err := invRepo.AdjustItemWithTx(context.Background(), tx, ownerId, constant.ItemChaoEgg, 1); err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}
	if err := petRepo.SaveSnapshotWithTx(context.Background(), tx, rec); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := vsRepo.Delete(context.Background(), ownerId, "cocoon:"+petName); err != nil {
		log.Errorf("clear cocoon view state %s/%s Error: %v", ownerId, petName, err)
	}
	notifier.NotifyCocoonDone(ownerId, petName, kind.String())
	log.Infof("%s/%s left %s cocoon", ownerId, petName, kind)
	return nil
}

// FinalizeOverdueCocoons is the scheduler's restart safety net: any cocoon
// whose end timestamp has passed is opened even if its in-process timer was
// lost.
func FinalizeOverdueCocoons(recs []model.PetRecord) {
	now := nowFunc()
	for i := range recs {
		rec := &recs[i]
		if !rec.InCocoon() || cocoonRemaining(rec, now) > 0 {
			continue
		}
		if err := FinalizeCocoon(rec.OwnerID, rec.PetName); err != nil {
			log.Errorf("finalize overdue cocoon %s/%s Error: %v", rec.OwnerID, rec.PetName, err)
		}
	}
}
