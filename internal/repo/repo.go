package repo

import (
	"gorm.io/gorm"

	"github.com/nickshouse/Chao-Bot-sub000/internal/model"
	"github.com/nickshouse/Chao-Bot-sub000/internal/pkg/gormcli"
)

var db *gorm.DB

func init() {
	db = gormcli.GetDb()
}

func GetDbCli() *gorm.DB {
	return db
}

// Migrate creates or updates the tables. Called once at bootstrap.
func Migrate() error {
	return db.AutoMigrate(
		&model.PetRecord{},
		&model.InventoryItem{},
		&model.Wallet{},
		&model.ViewState{},
	)
}
