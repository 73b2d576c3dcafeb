package model

import (
	"time"

	"gorm.io/gorm"
)

// InventoryItem is one stack of an item (fruit, Chao Egg) held by an owner.
type InventoryItem struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID  string `gorm:"column:owner_id;type:varchar(64);not null;uniqueIndex:idx_owner_item,priority:1" json:"owner_id"`
	ItemName string `gorm:"column:item_name;type:varchar(64);not null;uniqueIndex:idx_owner_item,priority:2" json:"item_name"`
	Quantity int64  `gorm:"column:quantity;default:0;not null" json:"quantity"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (i *InventoryItem) TableName() string {
	return "inventory_item"
}

// Wallet is the ring balance ledger, one row per owner.
type Wallet struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID string `gorm:"column:owner_id;type:varchar(64);not null;uniqueIndex" json:"owner_id"`
	Rings   int64  `gorm:"column:rings;default:0;not null" json:"rings"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) TableName() string {
	return "wallet"
}
