package repo

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
)

type ViewStateRepo struct {
}

func NewViewStateRepo() *ViewStateRepo {
	return &ViewStateRepo{}
}

func (vsRepo *ViewStateRepo) Find(_ context.Context, ownerId, viewKey string) (*model.ViewState, error) {
	var vs model.ViewState
	result := db.Where("owner_id = ? AND view_key = ?", ownerId, viewKey).First(&vs)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Errorf("Find ViewState %s/%s Error: %v", ownerId, viewKey, result.Error)
		return nil, result.Error
	}
	return &vs, nil
}

func (vsRepo *ViewStateRepo) Upsert(_ context.Context, ownerId, viewKey string, payload datatypes.JSON) error {
	var vs model.ViewState
	result := db.Where("owner_id = ? AND view_key = ?", ownerId, viewKey).First(&vs)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Errorf("Upsert ViewState find %s/%s Error: %v", ownerId, viewKey, result.Error)
			return result.Error
		}
		vs = model.ViewState{OwnerID: ownerId, ViewKey: viewKey}
	}
	vs.Payload = payload
	if vs.ID == 0 {
		result = db.Create(&vs)
	} else {
		result = db.Save(&vs)
	}
	if result.Error != nil {
		log.Errorf("Upsert ViewState save %s/%s Error: %v", ownerId, viewKey, result.Error)
		return result.Error
	}
	return nil
}

func (vsRepo *ViewStateRepo) Delete(_ context.Context, ownerId, viewKey string) error {
	result := db.Where("owner_id = ? AND view_key = ?", ownerId, viewKey).Delete(&model.ViewState{})
	if result.Error != nil {
		log.Errorf("Delete ViewState %s/%s Error: %v", ownerId, viewKey, result.Error)
		return result.Error
	}
	return nil
}
