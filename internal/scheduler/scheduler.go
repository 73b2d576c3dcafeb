package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants"
	log "github.com/sirupsen/logrus"

	"github.com/nickshouse/Chao-Bot-sub000/configs"
	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
	"github.com/nickshouse/Chao-Bot-sub000/internal/render"
	"github.com/nickshouse/Chao-Bot-sub000/internal/repo"
	"github.com/nickshouse/Chao-Bot-sub000/internal/svc"
)

// DecayScheduler sweeps every latest pet snapshot on a fixed tick, applying
// elapsed-time vital decay and finalizing cocoons whose countdown expired
// while the process was down.
type DecayScheduler struct {
	ticker     time.Ticker
	once       sync.Once
	ctx        context.Context
	cancelFunc context.CancelFunc
	workerPool *ants.Pool
	petRepo    *repo.PetRepo
	notifier   render.Notifier
}

var conf *configs.GlobalConfig

// nowFunc is swapped in tests.
var nowFunc = time.Now

func init() {
	conf = configs.GetGlobalConfig()
}

func NewDecayScheduler(ctx context.Context, cancelFunc context.CancelFunc, notifier render.Notifier) *DecayScheduler {
	workerPool, err := ants.NewPool(5)
	if err != nil {
		log.Errorf("DecayScheduler NewDecayScheduler Error: %s", err.Error())
		return nil
	}
	tickSecond := conf.ScheduleConfig.TickSecond
	if tickSecond <= 0 {
		tickSecond = 60
	}
	return &DecayScheduler{
		ticker:     *time.NewTicker(time.Duration(tickSecond) * time.Second),
		once:       sync.Once{},
		ctx:        ctx,
		cancelFunc: cancelFunc,
		workerPool: workerPool,
		petRepo:    repo.NewPetRepo(),
		notifier:   notifier,
	}
}

func (s *DecayScheduler) Run() {
	err := s.workerPool.Submit(s.work)
	if err != nil {
		log.Errorf("DecayScheduler Run Error: %s", err.Error())
		return
	}
}

func (s *DecayScheduler) work() {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("DecayScheduler work panic: %v", r)
			s.Stop()
		}
	}()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.ticker.C:
			s.runPass()
		}
	}
}

func (s *DecayScheduler) Stop() {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("DecayScheduler Stop Error: %s", r)
		}
	}()

	s.once.Do(func() {
		s.ticker.Stop()
		s.cancelFunc()
		err := s.workerPool.Release()
		if err != nil {
			log.Errorf("DecayScheduler Stop Error: %s", err.Error())
			return
		}
	})
}

// runPass is one full sweep. A single bad record never aborts the pass.
func (s *DecayScheduler) runPass() {
	recs, err := s.petRepo.FindAllLatest(s.ctx)
	if err != nil {
		log.Errorf("DecayScheduler runPass Error: %s", err.Error())
		return
	}

	svc.FinalizeOverdueCocoons(recs)

	now := nowFunc()
	for i := range recs {
		s.sweepPet(recs[i].OwnerID, recs[i].PetName, now)
	}
}

// sweepPet decays one pet under its pet lock. The record is re-read inside
// the lock so a feed that committed after the batch scan is never
// overwritten by stale state.
func (s *DecayScheduler) sweepPet(ownerId, petName string, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("DecayScheduler sweepPet panic on %s/%s: %v", ownerId, petName, r)
		}
	}()

	unlock := svc.LockPet(ownerId, petName)
	defer unlock()

	rec, err := s.petRepo.FindLatest(s.ctx, ownerId, petName)
	if err != nil {
		log.Errorf("DecayScheduler sweepPet load %s/%s Error: %s", ownerId, petName, err.Error())
		return
	}
	if rec == nil || !sweepEligible(rec) {
		return
	}

	res := decayPet(rec, now)
	if !res.changed {
		return
	}
	if err := s.petRepo.SaveSnapshot(s.ctx, rec); err != nil {
		log.Errorf("DecayScheduler sweepPet save %s/%s Error: %s", rec.OwnerID, rec.PetName, err.Error())
		return
	}
	for _, threshold := range res.hpCrossings {
		if s.notifier != nil {
			s.notifier.NotifyHP(rec.OwnerID, rec.PetName, threshold)
		}
	}
	if rec.HPTicks == 0 {
		if err := svc.LifecycleCheck(rec); err != nil {
			log.Errorf("DecayScheduler sweepPet lifecycle %s/%s Error: %s", rec.OwnerID, rec.PetName, err.Error())
		}
	}
}

// sweepEligible reports whether a record decays at all: only hatched, living,
// non-cocooned pets do. A reincarnated egg waits for its next Hatch untouched.
func sweepEligible(rec *model.PetRecord) bool {
	return rec.Hatched == constant.Hatched &&
		rec.Dead != constant.Dead &&
		!rec.InCocoon()
}
