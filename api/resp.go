package api

import (
	"github.com/nickshouse/Chao-Bot-sub000/internal/viewer"
)

type PetResp struct {
	Message string     `json:"message"`
	Pet     viewer.Pet `json:"pet"`
}

type PetListResp struct {
	Message string       `json:"message"`
	Pets    []viewer.Pet `json:"pets"`
}

type StatSheetResp struct {
	Message string           `json:"message"`
	Sheet   viewer.StatSheet `json:"sheet"`
}

type InventoryResp struct {
	Message   string           `json:"message"`
	Inventory viewer.Inventory `json:"inventory"`
}

type MessageResp struct {
	Message string `json:"message"`
}
