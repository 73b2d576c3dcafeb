package repo

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
)

type InventoryRepo struct {
}

func NewInventoryRepo() *InventoryRepo {
	return &InventoryRepo{}
}

func (invRepo *InventoryRepo) FindItems(_ context.Context, ownerId string) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	result := db.Where("owner_id = ?", ownerId).Find(&items)
	if result.Error != nil {
		log.Errorf("FindItems for %s Error: %v", ownerId, result.Error)
		return nil, result.Error
	}
	return items, nil
}

func (invRepo *InventoryRepo) FindItem(_ context.Context, ownerId, itemName string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	result := db.Where("owner_id = ? AND item_name = ?", ownerId, itemName).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Errorf("FindItem %s/%s Error: %v", ownerId, itemName, result.Error)
		return nil, result.Error
	}
	return &item, nil
}

// AdjustItemWithTx moves one item stack by delta inside the caller's
// transaction. A negative delta that would take the stack below zero fails
// without writing.
func (invRepo *InventoryRepo) AdjustItemWithTx(_ context.Context, tx *gorm.DB, ownerId, itemName string, delta int64) error {
	var item model.InventoryItem
	result := tx.Where("owner_id = ? AND item_name = ?", ownerId, itemName).First(&item)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Errorf("AdjustItem find %s/%s Error: %v", ownerId, itemName, result.Error)
			return result.Error
		}
		item = model.InventoryItem{OwnerID: ownerId, ItemName: itemName}
	}

	next := item.Quantity + delta
	if next < 0 {
		return fmt.Errorf("item %q of %s would go negative (%d%+d)", itemName, ownerId, item.Quantity, delta)
	}
	item.Quantity = next
	if item.ID == 0 {
		result = tx.Create(&item)
	} else {
		result = tx.Save(&item)
	}
	if result.Error != nil {
		log.Errorf("AdjustItem save %s/%s Error: %v", ownerId, itemName, result.Error)
		return result.Error
	}
	return nil
}

func (invRepo *InventoryRepo) FindWallet(_ context.Context, ownerId string) (*model.Wallet, error) {
	var w model.Wallet
	result := db.Where("owner_id = ?", ownerId).First(&w)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Errorf("FindWallet %s Error: %v", ownerId, result.Error)
		return nil, result.Error
	}
	return &w, nil
}

func (invRepo *InventoryRepo) AdjustRingsWithTx(_ context.Context, tx *gorm.DB, ownerId string, delta int64) error {
	var w model.Wallet
	result := tx.Where("owner_id = ?", ownerId).First(&w)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Errorf("AdjustRings find %s Error: %v", ownerId, result.Error)
			return result.Error
		}
		w = model.Wallet{OwnerID: ownerId}
	}
	next := w.Rings + delta
	if next < 0 {
		return fmt.Errorf("rings of %s would go negative (%d%+d)", ownerId, w.Rings, delta)
	}
	w.Rings = next
	if w.ID == 0 {
		result = tx.Create(&w)
	} else {
		result = tx.Save(&w)
	}
	if result.Error != nil {
		log.Errorf("AdjustRings save %s Error: %v", ownerId, result.Error)
		return result.Error
	}
	return nil
}
