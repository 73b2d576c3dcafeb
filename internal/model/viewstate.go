package model

import (
	"time"

	"gorm.io/datatypes"
)

// ViewState stores the small resumable piece of a paginated or countdown
// view, keyed by owner and view name, so a process restart does not lose the
// user's place.
type ViewState struct {
	ID      int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID string         `gorm:"column:owner_id;type:varchar(64);not null;uniqueIndex:idx_owner_view,priority:1" json:"owner_id"`
	ViewKey string         `gorm:"column:view_key;type:varchar(64);not null;uniqueIndex:idx_owner_view,priority:2" json:"view_key"`
	Payload datatypes.JSON `gorm:"column:payload;type:json" json:"payload"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (v *ViewState) TableName() string {
	return "view_state"
}
