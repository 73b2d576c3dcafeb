package repo

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
)

type PetRepo struct {
}

func NewPetRepo() *PetRepo {
	return &PetRepo{}
}

// FindLatest returns the newest snapshot for (owner, pet), or nil when the
// pet has never existed. Not-found is not an application error here.
func (petRepo *PetRepo) FindLatest(_ context.Context, ownerId, petName string) (*model.PetRecord, error) {
	var rec model.PetRecord
	result := db.Where("owner_id = ? AND pet_name = ?", ownerId, petName).
		Order("snapshot_date DESC, id DESC").First(&rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Errorf("FindLatest pet %s/%s Error: %v", ownerId, petName, result.Error)
		return nil, result.Error
	}
	return &rec, nil
}

// FindAllLatest returns the newest snapshot of every pet across all owners,
// for the decay batch. Snapshots only ever append, so max id per pet is the
// latest row.
func (petRepo *PetRepo) FindAllLatest(_ context.Context) ([]model.PetRecord, error) {
	sub := db.Model(&model.PetRecord{}).Select("MAX(id)").Group("owner_id").Group("pet_name")
	var recs []model.PetRecord
	result := db.Where("id IN (?)", sub).Find(&recs)
	if result.Error != nil {
		log.Errorf("FindAllLatest Error: %v", result.Error)
		return nil, result.Error
	}
	return recs, nil
}

// FindLatestByOwner returns the newest snapshot of each of one owner's pets.
func (petRepo *PetRepo) FindLatestByOwner(_ context.Context, ownerId string) ([]model.PetRecord, error) {
	sub := db.Model(&model.PetRecord{}).Select("MAX(id)").
		Where("owner_id = ?", ownerId).Group("pet_name")
	var recs []model.PetRecord
	result := db.Where("id IN (?)", sub).Find(&recs)
	if result.Error != nil {
		log.Errorf("FindLatestByOwner %s Error: %v", ownerId, result.Error)
		return nil, result.Error
	}
	return recs, nil
}

// SaveSnapshot appends-or-updates the dated row for today: the first write
// of a day copies the record into a fresh row, later writes update it in
// place. History rows from earlier days are never touched.
func (petRepo *PetRepo) SaveSnapshot(ctx context.Context, rec *model.PetRecord) error {
	return petRepo.SaveSnapshotWithTx(ctx, db, rec)
}

func (petRepo *PetRepo) SaveSnapshotWithTx(_ context.Context, tx *gorm.DB, rec *model.PetRecord) error {
	today := time.Now().Format(constant.DateLayout)
	if rec.ID == 0 || rec.SnapshotDate != today {
		rec.ID = 0
		rec.SnapshotDate = today
		result := tx.Create(rec)
		if result.Error != nil {
			log.Errorf("SaveSnapshot create %s/%s Error: %v", rec.OwnerID, rec.PetName, result.Error)
			return result.Error
		}
		return nil
	}
	result := tx.Save(rec)
	if result.Error != nil {
		log.Errorf("SaveSnapshot update %s/%s Error: %v", rec.OwnerID, rec.PetName, result.Error)
		return result.Error
	}
	return nil
}
