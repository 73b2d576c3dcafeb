package svc

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/nickshouse/Chao-Bot-sub000/internal/constant"
	"github.com/nickshouse/Chao-Bot-sub000/internal/repo"
	"github.com/nickshouse/Chao-Bot-sub000/internal/viewer"
)

var invRepo *repo.InventoryRepo

func init() {
	invRepo = repo.NewInventoryRepo()
}

// GetBalanceAndItems returns an owner's ring balance and item stacks.
func GetBalanceAndItems(ownerId string) (viewer.Inventory, error) {
	inv := viewer.Inventory{OwnerID: ownerId, Items: make(map[string]int64)}

	wallet, err := invRepo.FindWallet(context.Background(), ownerId)
	if err != nil {
		return inv, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if wallet != nil {
		inv.Rings = wallet.Rings
	}

	items, err := invRepo.FindItems(context.Background(), ownerId)
	if err != nil {
		return inv, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	for _, item := range items {
		inv.Items[item.ItemName] = item.Quantity
	}
	return inv, nil
}

// AdjustInventory applies a map of deltas (rings under the "Rings" key,
// everything else as item stacks) atomically. A delta that would oversell
// fails the whole call before anything is written.
func AdjustInventory(ownerId string, deltas map[string]int64) error {
	// Validate against current holdings before opening the transaction.
	inv, err := GetBalanceAndItems(ownerId)
	if err != nil {
		return err
	}
	for name, delta := range deltas {
		if delta >= 0 {
			continue
		}
		held := inv.Items[name]
		if name == constant.ItemRings {
			held = inv.Rings
		}
		if held+delta < 0 {
			return fmt.Errorf("%w: %s has %d of %q, need %d", ErrInsufficientResource, ownerId, held, name, -delta)
		}
	}

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

	for name, delta := range deltas {
		if name == constant.ItemRings {
			err = invRepo.AdjustRingsWithTx(context.Background(), tx, ownerId, delta)
		} else {
			err = invRepo.AdjustItemWithTx(context.Background(), tx, ownerId, name, delta)
		}
		if err != nil {
			tx.Rollback()
			log.Errorf("AdjustInventory %s Error: %v", ownerId, err)
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		log.Errorf("AdjustInventory commit %s Error: %v", ownerId, err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
