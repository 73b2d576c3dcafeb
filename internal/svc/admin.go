package svc

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
	"github.com/nickshouse/Chao-Bot-sub000/internal/viewer"
)

// Admin overrides. Every override that touches a field feeding the
// evolution resolver re-invokes it before persisting.

// ForceLifecycleCheck runs the same transition check the feed path runs,
// with the same happiness boundary.
func ForceLifecycleCheck(ownerId, petName string) (viewer.Pet, error) {
	defer LockPet(ownerId, petName)()

	rec, err := loadInteractivePet(ownerId, petName)
	if err != nil {
		return viewer.Pet{}, err
	}
	if err := postMutationCheck(rec); err != nil {
		return viewer.Pet{}, err
	}
	return toViewer(rec), nil
}

func SetHappiness(ownerId, petName string, value int64) (viewer.Pet, error) {
	if value < 0 || value > constant.VitalCap {
		return viewer.Pet{}, fmt.Errorf("%w: happiness must be in [0,%d]", ErrInvalidState, constant.VitalCap)
	}
	return adminMutate(ownerId, petName, false, func(rec *model.PetRecord) error {
		rec.HappinessTicks = value
		return nil
	})
}

func SetGrade(ownerId, petName, statName, grade string) (viewer.Pet, error) {
	kind, ok := constant.ParseStatKind(statName)
	if !ok {
		return viewer.Pet{}, fmt.Errorf("%w: unknown stat %q", ErrNotFound, statName)
	}
	if _, ok := constant.GradeExp[grade]; !ok {
		return viewer.Pet{}, fmt.Errorf("%w: unknown grade %q", ErrInvalidState, grade)
	}
	return adminMutate(ownerId, petName, false, func(rec *model.PetRecord) error {
		*rec.Stat(kind).Grade = grade
		return nil
	})
}

func SetExp(ownerId, petName, statName string, exp int64) (viewer.Pet, error) {
	kind, ok := constant.ParseStatKind(statName)
	if !ok {
		return viewer.Pet{}, fmt.Errorf("%w: unknown stat %q", ErrNotFound, statName)
	}
	if exp < 0 {
		return viewer.Pet{}, fmt.Errorf("%w: exp must be non-negative", ErrInvalidState)
	}
	return adminMutate(ownerId, petName, false, func(rec *model.PetRecord) error {
		*rec.Stat(kind).Exp = exp
		return nil
	})
}

// SetLevel changes a stat level, which can move Type/Form, so the resolver
// runs and the lifecycle check follows.
func SetLevel(ownerId, petName, statName string, level int64) (viewer.Pet, error) {
	kind, ok := constant.ParseStatKind(statName)
	if !ok {
		return viewer.Pet{}, fmt.Errorf("%w: unknown stat %q", ErrNotFound, statName)
	}
	if level < 0 || level > constant.LevelCap {
		return viewer.Pet{}, fmt.Errorf("%w: level must be in [0,%d]", ErrInvalidState, constant.LevelCap)
	}
	return adminMutate(ownerId, petName, true, func(rec *model.PetRecord) error {
		*rec.Stat(kind).Level = level
		return nil
	})
}

func SetFace(ownerId, petName, eyes, mouth string) (viewer.Pet, error) {
	face, err := json.Marshal(petFace{Eyes: eyes, Mouth: mouth})
	if err != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return adminMutate(ownerId, petName, false, func(rec *model.PetRecord) error {
		rec.Face = datatypes.JSON(face)
		return nil
	})
}

// adminMutate is the shared override path: load, mutate, optionally
// re-resolve, persist, then the lifecycle check. Runs under the pet lock.
func adminMutate(ownerId, petName string, resolve bool, mutate func(*model.PetRecord) error) (viewer.Pet, error) {
	defer LockPet(ownerId, petName)()

	rec, err := loadInteractivePet(ownerId, petName)
	if err != nil {
		return viewer.Pet{}, err
	}
	if err := mutate(rec); err != nil {
		return viewer.Pet{}, err
	}
	if resolve {
		applyResolver(rec)
	}
	if err := petRepo.SaveSnapshot(context.Background(), rec); err != nil {
		return viewer.Pet{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := postMutationCheck(rec); err != nil {
		log.Errorf("post-override lifecycle check %s/%s Error: %v", ownerId, petName, err)
	}
	return toViewer(rec), nil
}
